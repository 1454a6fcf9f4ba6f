package dialog

import (
	"context"
	"fmt"
	"slices"

	"github.com/aussiebroadwan/pandda/pkg/moneyx"
)

// EventType names an operator interaction.
type EventType string

const (
	EventInput   EventType = "input"
	EventPaste   EventType = "paste"
	EventFocus   EventType = "focus"
	EventBlur    EventType = "blur"
	EventKey     EventType = "key"
	EventCheck   EventType = "check"
	EventAction  EventType = "action"
	EventSelect  EventType = "select_item"
	EventOverlay EventType = "overlay"
	EventClose   EventType = "close"
)

// Event is one interaction with the open dialog. Value carries typed text,
// the key name, the checkbox state ("true"/"false") or a list item ID.
type Event struct {
	Type  EventType `json:"type"`
	Field string    `json:"field,omitempty"`
	Value string    `json:"value,omitempty"`
	Shift bool      `json:"shift,omitempty"`
}

// Dispatch applies e to the dialog.
func (d *Dialog) Dispatch(ctx context.Context, e Event) error {
	switch e.Type {
	case EventClose:
		d.Cancel()
		return nil
	case EventOverlay:
		d.OverlayClick()
		return nil
	case EventKey:
		return d.Key(e.Field, e.Value, e.Shift)
	case EventAction:
		return d.Trigger(ctx, e.Field)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return ErrClosed
	}
	d.touch()

	f := d.body.byName[e.Field]
	if f == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, e.Field)
	}

	switch e.Type {
	case EventFocus:
		if f.focusable() {
			d.moveFocusLocked(f.Name)
		}
		return nil
	case EventBlur:
		if f.currency != nil {
			f.currency.Blur()
		}
		return nil
	case EventInput, EventPaste:
		if f.Disabled {
			return nil
		}
		d.moveFocusLocked(f.Name)
		switch {
		case f.currency != nil && e.Type == EventPaste:
			f.currency.Paste(e.Value)
		case f.currency != nil:
			f.currency.Type(e.Value)
		case f.Kind == KindSelect && !hasOption(f.Options, e.Value):
			return fmt.Errorf("dialog: %q is not an option of %s", e.Value, f.Name)
		default:
			f.Value = e.Value
		}
	case EventCheck:
		if f.Disabled {
			return nil
		}
		f.Checked = e.Value == "true"
	case EventSelect:
		if !slices.ContainsFunc(f.items, func(it Item) bool { return it.ID == e.Value }) {
			return fmt.Errorf("dialog: %q is not an item of %s", e.Value, f.Name)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
	}

	if f.OnChange != nil {
		f.OnChange(ctx, d.body, e.Value)
	}
	return nil
}

func hasOption(opts []Option, v string) bool {
	return slices.ContainsFunc(opts, func(o Option) bool { return o.Value == v })
}

// Key handles a key press while the dialog is open. Tab and Shift+Tab cycle
// focus inside the dialog; Escape closes it only with AllowEscape. On a
// currency field, other keys are checked against the mask and a disallowed
// key yields ErrKeyRejected.
func (d *Dialog) Key(field, key string, shift bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return ErrClosed
	}
	d.touch()

	switch key {
	case "Tab":
		d.tabLocked(shift)
		return nil
	case "Escape":
		if d.cfg.AllowEscape {
			d.closeLocked()
		}
		return nil
	}

	if f := d.body.byName[field]; f != nil && f.currency != nil && !moneyx.AllowKey(key) {
		return ErrKeyRejected
	}
	return nil
}

// Trigger presses an action button. Its error becomes the button feedback.
func (d *Dialog) Trigger(ctx context.Context, action string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return ErrClosed
	}
	d.touch()

	f := d.body.byName[action]
	if f == nil || f.Kind != KindAction {
		return fmt.Errorf("%w: %q", ErrUnknownField, action)
	}
	if f.Disabled || f.OnAction == nil {
		return nil
	}

	d.moveFocusLocked(f.Name)
	if err := f.OnAction(ctx, d.body); err != nil {
		f.feedback = err.Error()
		return nil
	}
	f.feedback = ""
	return nil
}
