package dialog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/pandda/pkg/moneyx"
)

// Kind is the widget type of a field.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindTel      Kind = "tel"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindPassword Kind = "password"
	KindTextArea Kind = "textarea"
	KindSelect   Kind = "select"
	KindCheckbox Kind = "checkbox"
	KindCurrency Kind = "currency"
	KindAction   Kind = "action"
	KindList     Kind = "list"
)

// Option is one entry of a select.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Item is one card of a list field.
type Item struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

// ChangeFunc runs after a field's value changes. For list fields value is
// the selected item ID.
type ChangeFunc func(ctx context.Context, c *Container, value string)

// ActionFunc runs when an action button is pressed. A returned error is
// shown as the button's feedback.
type ActionFunc func(ctx context.Context, c *Container) error

// Def declares a field.
type Def struct {
	Name        string
	Label       string
	Kind        Kind
	Value       string
	Placeholder string
	Required    bool
	Disabled    bool
	Checked     bool
	Options     []Option

	// RequireTouch makes save fail while a currency field was never
	// focused or typed into.
	RequireTouch bool

	// TouchMessage overrides the message shown for RequireTouch.
	TouchMessage string

	// Note is static helper text shown under the field.
	Note string

	OnChange ChangeFunc
	OnAction ActionFunc
}

// Field is a live widget inside a dialog body.
type Field struct {
	Def

	section  string
	feedback string
	items    []Item
	currency *moneyx.Input
}

func (f *Field) focusable() bool {
	return !f.Disabled && f.Kind != KindList
}

func (f *Field) value() string {
	if f.currency != nil {
		return f.currency.Value()
	}
	return f.Value
}

// Container is the dialog body. Its methods are not safe for concurrent use;
// the owning Dialog serialises every call into it.
type Container struct {
	fields  []*Field
	byName  map[string]*Field
	section string
	notices []string

	// CollectData gathers the form into the record passed to OnSave. The
	// content builder must set it.
	CollectData func() (any, error)
}

func newContainer() *Container {
	return &Container{byName: make(map[string]*Field)}
}

func (c *Container) add(d Def) *Field {
	if d.Kind == "" {
		d.Kind = KindText
	}
	f := &Field{Def: d, section: c.section}
	if d.Kind == KindCurrency {
		f.currency = moneyx.NewInput(d.Value)
		f.Value = ""
	}
	if _, dup := c.byName[d.Name]; !dup {
		c.fields = append(c.fields, f)
	}
	c.byName[d.Name] = f
	return f
}

// Field returns the named field or nil.
func (c *Container) Field(name string) *Field {
	return c.byName[name]
}

// Value returns the text of the named field, trimmed.
func (c *Container) Value(name string) string {
	f := c.byName[name]
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.value())
}

// Int parses the named field as an integer. Empty text yields def.
func (c *Container) Int(name string, def int) (int, error) {
	v := c.Value(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("dialog: field %s: %w", name, err)
	}
	return n, nil
}

// Checked reports the state of a checkbox.
func (c *Container) Checked(name string) bool {
	f := c.byName[name]
	return f != nil && f.Checked
}

// Currency returns the masked input behind a currency field.
func (c *Container) Currency(name string) *moneyx.Input {
	f := c.byName[name]
	if f == nil {
		return nil
	}
	return f.currency
}

// SetValue replaces the text of a field without firing its change hook.
func (c *Container) SetValue(name, v string) {
	f := c.byName[name]
	if f == nil {
		return
	}
	if f.currency != nil {
		f.currency = moneyx.NewInput(v)
		return
	}
	f.Value = v
}

// SetChecked sets a checkbox.
func (c *Container) SetChecked(name string, on bool) {
	if f := c.byName[name]; f != nil {
		f.Checked = on
	}
}

// SetOptions replaces the options of a select.
func (c *Container) SetOptions(name string, opts []Option) {
	if f := c.byName[name]; f != nil {
		f.Options = opts
	}
}

// SetItems replaces the cards of a list field.
func (c *Container) SetItems(name string, items []Item) {
	if f := c.byName[name]; f != nil {
		f.items = items
	}
}

// SetFeedback shows msg under a field; an empty msg clears it.
func (c *Container) SetFeedback(name, msg string) {
	if f := c.byName[name]; f != nil {
		f.feedback = msg
	}
}

// Feedback returns the inline message of a field.
func (c *Container) Feedback(name string) string {
	if f := c.byName[name]; f != nil {
		return f.feedback
	}
	return ""
}

// Notify surfaces a warning at the top of the dialog.
func (c *Container) Notify(msg string) {
	c.notices = append(c.notices, msg)
}

// Helpers are the widget factories handed to a content builder.
type Helpers struct {
	c *Container
}

// Section starts a titled group; following fields belong to it.
func (h Helpers) Section(title string) {
	h.c.section = title
}

// Input adds a text-like field. Kind defaults to text.
func (h Helpers) Input(d Def) *Field {
	return h.c.add(d)
}

// Select adds a select with the given options.
func (h Helpers) Select(d Def, opts []Option) *Field {
	d.Kind = KindSelect
	d.Options = opts
	return h.c.add(d)
}

// Checkbox adds a checkbox.
func (h Helpers) Checkbox(d Def) *Field {
	d.Kind = KindCheckbox
	return h.c.add(d)
}

// Currency adds a masked currency field.
func (h Helpers) Currency(d Def) *Field {
	d.Kind = KindCurrency
	return h.c.add(d)
}

// Action adds a button that runs fn when triggered.
func (h Helpers) Action(name, label string, fn ActionFunc) *Field {
	return h.c.add(Def{Name: name, Label: label, Kind: KindAction, OnAction: fn})
}

// List adds a list of selectable cards. onSelect receives the item ID.
func (h Helpers) List(name, label string, onSelect ChangeFunc) *Field {
	return h.c.add(Def{Name: name, Label: label, Kind: KindList, OnChange: onSelect})
}
