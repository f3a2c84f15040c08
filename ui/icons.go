package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/yllada/bitmask-shell/common"
)

// Symbol is the glyph drawn inside the shield.
type Symbol int

const (
	SymbolLock Symbol = iota
	SymbolCheckmark
	SymbolDots
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size        int
	FillColor   color.RGBA
	BorderColor color.RGBA
	AccentColor color.RGBA
	SymbolColor color.RGBA
	Symbol      Symbol
}

// OnIconConfig is used while the VPN is on.
func OnIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{56, 142, 60, 255},   // Dark green
		BorderColor: color.RGBA{76, 175, 80, 255},   // Green
		AccentColor: color.RGBA{200, 230, 201, 255}, // Light green
		SymbolColor: color.RGBA{255, 255, 255, 255},
		Symbol:      SymbolCheckmark,
	}
}

// OffIconConfig is used while the VPN is off.
func OffIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{117, 117, 117, 255}, // Dark gray
		BorderColor: color.RGBA{158, 158, 158, 255}, // Gray
		AccentColor: color.RGBA{189, 189, 189, 255}, // Light gray
		SymbolColor: color.RGBA{255, 255, 255, 255},
		Symbol:      SymbolLock,
	}
}

// WaitIconConfig is used while the VPN is starting or stopping.
func WaitIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{239, 108, 0, 255},   // Dark amber
		BorderColor: color.RGBA{255, 152, 0, 255},   // Amber
		AccentColor: color.RGBA{255, 224, 178, 255}, // Light amber
		SymbolColor: color.RGBA{255, 255, 255, 255},
		Symbol:      SymbolDots,
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate renders the icon as PNG bytes.
func (g *IconGenerator) Generate() []byte {
	img := g.Render()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		common.LogError("Failed to encode tray icon: %v", err)
		return nil
	}
	return buf.Bytes()
}

// Render draws the icon.
func (g *IconGenerator) Render() *image.RGBA {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	g.drawShield(img)

	switch g.config.Symbol {
	case SymbolCheckmark:
		g.drawCheckmark(img)
	case SymbolDots:
		g.drawDots(img)
	default:
		g.drawLock(img)
	}
	return img
}

// inShield reports whether (x, y) lies inside the shield outline.
func (g *IconGenerator) inShield(x, y float64) bool {
	size := float64(g.config.Size)
	centerX := size / 2
	topY := 1.0
	bottomY := size - 2
	shieldWidth := size - 4

	relY := (y - topY) / (bottomY - topY)
	if relY < 0 || relY > 1 {
		return false
	}

	var halfWidth float64
	if relY < 0.5 {
		halfWidth = shieldWidth/2 - relY*0.5
	} else {
		progress := (relY - 0.5) * 2
		halfWidth = (shieldWidth/2 - 0.25) * (1 - progress*progress)
	}
	return x >= centerX-halfWidth && x <= centerX+halfWidth
}

func (g *IconGenerator) drawShield(img *image.RGBA) {
	size := g.config.Size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if !g.inShield(fx, fy) {
				continue
			}

			border := !g.inShield(fx-1, fy) || !g.inShield(fx+1, fy) ||
				!g.inShield(fx, fy-1) || !g.inShield(fx, fy+1)
			switch {
			case border:
				img.Set(x, y, g.config.BorderColor)
			case float64(y)/float64(size) < 0.3:
				img.Set(x, y, g.config.AccentColor)
			default:
				img.Set(x, y, g.config.FillColor)
			}
		}
	}
}

// set plots a pixel, ignoring points outside the canvas.
func (g *IconGenerator) set(img *image.RGBA, x, y int) {
	if x >= 0 && x < g.config.Size && y >= 0 && y < g.config.Size {
		img.Set(x, y, g.config.SymbolColor)
	}
}

func (g *IconGenerator) drawCheckmark(img *image.RGBA) {
	points := []struct{ x, y int }{
		{6, 11}, {7, 11}, {7, 12}, {8, 12}, {8, 13}, {9, 13},
		{9, 12}, {10, 12}, {10, 11}, {11, 11}, {11, 10}, {12, 10},
		{12, 9}, {13, 9}, {13, 8}, {14, 8},
	}
	for _, p := range points {
		g.set(img, p.x, p.y)
	}
}

func (g *IconGenerator) drawLock(img *image.RGBA) {
	// Body
	for y := 10; y <= 15; y++ {
		for x := 8; x <= 14; x++ {
			if y == 10 || y == 15 || x == 8 || x == 14 {
				g.set(img, x, y)
			}
		}
	}

	// Shackle
	for y := 6; y <= 8; y++ {
		g.set(img, 9, y)
		g.set(img, 13, y)
	}
	for x := 9; x <= 13; x++ {
		g.set(img, x, 6)
	}
}

// drawDots draws three 2x2 dots across the middle of the shield.
func (g *IconGenerator) drawDots(img *image.RGBA) {
	mid := g.config.Size / 2
	for _, cx := range []int{mid - 4, mid - 1, mid + 2} {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				g.set(img, cx+dx, mid-1+dy)
			}
		}
	}
}

// GenerateOnIcon generates the VPN on icon.
func GenerateOnIcon() []byte {
	return NewIconGenerator(OnIconConfig()).Generate()
}

// GenerateOffIcon generates the VPN off icon.
func GenerateOffIcon() []byte {
	return NewIconGenerator(OffIconConfig()).Generate()
}

// GenerateWaitIcon generates the icon shown while the VPN changes state.
func GenerateWaitIcon() []byte {
	return NewIconGenerator(WaitIconConfig()).Generate()
}
