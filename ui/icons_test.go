package ui

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/yllada/bitmask-shell/common"
)

func TestGenerateIcons(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"on", GenerateOnIcon()},
		{"off", GenerateOffIcon()},
		{"wait", GenerateWaitIcon()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := png.Decode(bytes.NewReader(tt.data))
			if err != nil {
				t.Fatalf("png.Decode() error = %v", err)
			}
			b := img.Bounds()
			if b.Dx() != common.TrayIconSize || b.Dy() != common.TrayIconSize {
				t.Errorf("icon size = %dx%d, want %d", b.Dx(), b.Dy(), common.TrayIconSize)
			}
		})
	}
}

func TestIconGenerator_SymbolDrawn(t *testing.T) {
	cfg := WaitIconConfig()
	img := NewIconGenerator(cfg).Render()

	mid := cfg.Size / 2
	if got := img.RGBAAt(mid-4, mid-1); got != cfg.SymbolColor {
		t.Errorf("dot pixel = %v, want %v", got, cfg.SymbolColor)
	}

	// Corners are outside the shield.
	if got := img.RGBAAt(0, cfg.Size-1); got.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", got)
	}
}

func TestIconFor(t *testing.T) {
	tests := []struct {
		status common.VPNStatus
		want   []byte
	}{
		{common.VPNOn, iconOn},
		{common.VPNOff, iconOff},
		{common.VPNStarting, iconWait},
		{common.VPNStopping, iconWait},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := iconFor(tt.status); !bytes.Equal(got, tt.want) {
				t.Errorf("iconFor(%v) returned the wrong icon", tt.status)
			}
		})
	}
}

func TestStatusTitle(t *testing.T) {
	seen := make(map[string]common.VPNStatus)
	for _, s := range []common.VPNStatus{common.VPNOff, common.VPNOn, common.VPNStarting, common.VPNStopping} {
		title := statusTitle(s)
		if prev, dup := seen[title]; dup {
			t.Errorf("statusTitle(%v) = statusTitle(%v) = %q", s, prev, title)
		}
		seen[title] = s
	}
}
