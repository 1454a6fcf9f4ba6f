package moneyx

import "errors"

// ErrUntouched is returned by Validate when the field must be interacted
// with before saving and never was.
var ErrUntouched = errors.New("moneyx: field was never touched")

// Input is the state of one masked currency field. It is not safe for
// concurrent use; the dialog that owns it serialises access.
type Input struct {
	raw     string
	touched bool
}

// NewInput returns a field showing initial. A prefilled field counts as
// touched.
func NewInput(initial string) *Input {
	in := &Input{raw: Sanitize(initial)}
	if in.raw != "" {
		in.touched = true
		in.reformat(false)
	}
	return in
}

// NewInputFromValue returns a field prefilled with v.
func NewInputFromValue(v float64) *Input {
	return &Input{raw: Format(v), touched: true}
}

// Type replaces the text as if the operator typed it.
func (in *Input) Type(raw string) {
	in.raw = Sanitize(raw)
	in.touched = true
}

// Paste replaces the text with sanitised clipboard contents and formats it
// when it parses.
func (in *Input) Paste(text string) {
	in.raw = Sanitize(text)
	in.touched = true
	in.reformat(false)
}

// Focus marks the field as touched and normalises a parseable value.
func (in *Input) Focus() {
	in.touched = true
	in.reformat(false)
}

// Blur formats the value to two decimals, clearing it when unparseable.
func (in *Input) Blur() {
	in.reformat(true)
}

func (in *Input) reformat(clearInvalid bool) {
	v, err := Parse(in.raw)
	if err != nil {
		if clearInvalid {
			in.raw = ""
		}
		return
	}
	in.raw = Format(v)
}

// Value returns the text currently shown in the field.
func (in *Input) Value() string { return in.raw }

// Touched reports whether the operator interacted with the field.
func (in *Input) Touched() bool { return in.touched }

// NumericValue returns the parsed amount, or false if the text does not
// parse.
func (in *Input) NumericValue() (float64, bool) {
	v, err := Parse(in.raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Validate returns the amount for saving. With requireTouch an untouched
// field is rejected before parsing.
func (in *Input) Validate(requireTouch bool) (float64, error) {
	if requireTouch && !in.touched {
		return 0, ErrUntouched
	}
	return Parse(in.raw)
}
