package main

// helpOverlay tracks whether the controls panel is up. Any click, h or
// Escape dismisses it.
type helpOverlay struct {
	visible bool
}

type helpKeys struct {
	Click  bool
	Toggle bool
	Escape bool
}

func (h *helpOverlay) Open() {
	h.visible = true
}

func (h *helpOverlay) Close() {
	h.visible = false
}

func (h *helpOverlay) Visible() bool {
	return h.visible
}

// Update applies this frame's keys and reports whether the panel closed.
func (h *helpOverlay) Update(k helpKeys) bool {
	if !h.visible {
		return false
	}
	if k.Click || k.Toggle || k.Escape {
		h.visible = false
		return true
	}
	return false
}

// CursorVisible reports whether the system cursor should show. The game
// draws its own crosshair otherwise.
func (h *helpOverlay) CursorVisible() bool {
	return h.visible
}
