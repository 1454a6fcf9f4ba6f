package dialog

// Focus targets that are not fields.
const (
	FocusClose  = "@close"
	FocusCancel = "@cancel"
	FocusSave   = "@save"
)

// focusRingLocked lists the tab stops in document order: the close button,
// every enabled field, cancel, and save while it is enabled.
func (d *Dialog) focusRingLocked() []string {
	ring := make([]string, 0, len(d.body.fields)+3)
	ring = append(ring, FocusClose)
	for _, f := range d.body.fields {
		if f.focusable() {
			ring = append(ring, f.Name)
		}
	}
	ring = append(ring, FocusCancel)
	if !d.saving {
		ring = append(ring, FocusSave)
	}
	return ring
}

// FocusRing returns the current tab stops.
func (d *Dialog) FocusRing() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.focusRingLocked()
}

// Focused returns the element holding focus.
func (d *Dialog) Focused() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.focus
}

// tabLocked moves focus one stop forward, or back with shift, wrapping at
// both ends so focus never leaves the dialog.
func (d *Dialog) tabLocked(shift bool) {
	ring := d.focusRingLocked()
	pos := -1
	for i, name := range ring {
		if name == d.focus {
			pos = i
			break
		}
	}

	switch {
	case pos < 0:
		pos = 0
		if shift {
			pos = len(ring) - 1
		}
	case shift:
		pos = (pos - 1 + len(ring)) % len(ring)
	default:
		pos = (pos + 1) % len(ring)
	}

	d.moveFocusLocked(ring[pos])
}

// moveFocusLocked blurs the old target and focuses the new one, running the
// currency mask hooks on both.
func (d *Dialog) moveFocusLocked(target string) {
	if d.focus == target {
		return
	}
	if f := d.body.byName[d.focus]; f != nil && f.currency != nil {
		f.currency.Blur()
	}
	d.focus = target
	if f := d.body.byName[target]; f != nil && f.currency != nil {
		f.currency.Focus()
	}
}
