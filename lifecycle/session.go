package lifecycle

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/yllada/bitmask-shell/common"
)

// session is one window with its web view.
type session struct {
	id     string
	url    string
	window Window
	view   WebView
}

func newSession(p Platform, title, url string, bridge Bridge) (*session, error) {
	w, err := p.BuildWindow(title)
	if err != nil {
		return nil, fmt.Errorf("build window: %w", err)
	}
	v, err := p.BuildWebView(w, url, bridge)
	if err != nil {
		_ = w.Destroy()
		return nil, fmt.Errorf("build web view: %w", err)
	}

	s := &session{
		id:     uuid.NewString(),
		url:    url,
		window: w,
		view:   v,
	}
	common.LogDebug("UI session %s opened for %s", s.id, redactToken(url))
	return s, nil
}

func (s *session) stop() error {
	err := errors.Join(s.view.Stop(), s.window.Destroy())
	common.LogDebug("UI session %s stopped", s.id)
	return err
}
