package dialog

// FieldState is the serialisable view of a field.
type FieldState struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Kind        Kind     `json:"kind"`
	Section     string   `json:"section,omitempty"`
	Value       string   `json:"value,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Disabled    bool     `json:"disabled,omitempty"`
	Checked     bool     `json:"checked,omitempty"`
	Touched     bool     `json:"touched,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Items       []Item   `json:"items,omitempty"`
	Note        string   `json:"note,omitempty"`
	Feedback    string   `json:"feedback,omitempty"`
}

// State is a point-in-time snapshot of a dialog.
type State struct {
	ID         string       `json:"id"`
	Kind       string       `json:"kind,omitempty"`
	RecordID   string       `json:"record_id,omitempty"`
	Title      string       `json:"title"`
	Open       bool         `json:"open"`
	Saving     bool         `json:"saving"`
	SaveText   string       `json:"save_text"`
	CancelText string       `json:"cancel_text"`
	Error      string       `json:"error,omitempty"`
	Notices    []string     `json:"notices,omitempty"`
	Fields     []FieldState `json:"fields"`
	Focus      string       `json:"focus"`
	FocusRing  []string     `json:"focus_ring"`
}

// Snapshot returns the dialog state.
func (d *Dialog) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := State{
		ID:         d.id,
		Kind:       d.cfg.Kind,
		RecordID:   d.cfg.RecordID,
		Title:      d.cfg.Title,
		Open:       d.open,
		Saving:     d.saving,
		SaveText:   d.cfg.SaveText,
		CancelText: d.cfg.CancelText,
		Error:      d.err,
		Notices:    append([]string(nil), d.body.notices...),
		Focus:      d.focus,
		FocusRing:  d.focusRingLocked(),
		Fields:     make([]FieldState, 0, len(d.body.fields)),
	}
	if d.saving {
		st.SaveText = d.cfg.SavingText
	}

	for _, f := range d.body.fields {
		fs := FieldState{
			Name:        f.Name,
			Label:       f.Label,
			Kind:        f.Kind,
			Section:     f.section,
			Value:       f.value(),
			Placeholder: f.Placeholder,
			Required:    f.Required,
			Disabled:    f.Disabled,
			Checked:     f.Checked,
			Options:     f.Options,
			Items:       f.items,
			Note:        f.Note,
			Feedback:    f.feedback,
		}
		if f.currency != nil {
			fs.Touched = f.currency.Touched()
		}
		st.Fields = append(st.Fields, fs)
	}
	return st
}
