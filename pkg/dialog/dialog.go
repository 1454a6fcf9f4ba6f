// Package dialog is a headless modal form engine. A Manager holds at most one
// open Dialog; the dialog's body is built by a caller supplied content
// builder from declarative fields, and saving runs an async callback whose
// error is shown inline without closing the dialog.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aussiebroadwan/pandda/pkg/idx"
	"github.com/aussiebroadwan/pandda/pkg/moneyx"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
)

const (
	DefaultSaveText   = "Salvar"
	DefaultCancelText = "Cancelar"
	DefaultSavingText = "Salvando..."

	msgBuildFailed   = "Erro ao montar conteúdo do modal."
	msgCollectMissed = "Erro ao coletar dados do formulário"
	msgTouchDefault  = "Você precisa clicar e informar o valor do campo %s antes de salvar."
)

var (
	// ErrSaveInProgress is returned by Save while a previous save has not
	// resolved.
	ErrSaveInProgress = errors.New("dialog: save already in progress")

	// ErrClosed is returned when acting on a dialog that is no longer open.
	ErrClosed = errors.New("dialog: closed")

	// ErrNoDialog is returned when a Manager has no open dialog.
	ErrNoDialog = errors.New("dialog: no active dialog")

	// ErrUnknownField is returned by events naming a field that does not exist.
	ErrUnknownField = errors.New("dialog: unknown field")

	// ErrUnknownEvent is returned by Dispatch for unsupported event types.
	ErrUnknownEvent = errors.New("dialog: unknown event")

	// ErrKeyRejected is returned when the currency mask refuses a key.
	ErrKeyRejected = errors.New("dialog: key rejected")
)

// Config describes a dialog to open.
type Config struct {
	Title      string
	SaveText   string
	CancelText string
	SavingText string

	// Kind and RecordID identify what the dialog edits, for clients that
	// reattach to it.
	Kind     string
	RecordID string

	InitialData any

	// ContentBuilder populates the body and must set c.CollectData.
	ContentBuilder func(ctx context.Context, c *Container, data any, h Helpers) error

	// OnSave persists the collected record. An error keeps the dialog open.
	OnSave func(ctx context.Context, collected any) (any, error)

	// OnDone runs after a successful save closed the dialog.
	OnDone func(ctx context.Context, result any)

	// OnCancel runs when the operator dismisses the dialog with the close
	// or cancel control.
	OnCancel func()

	AllowEscape         bool
	CloseOnOverlayClick bool
}

// Dialog is one open modal.
type Dialog struct {
	id  string
	cfg Config

	mu         sync.Mutex
	body       *Container
	saving     bool
	open       bool
	err        string
	focus      string
	result     any
	lastActive time.Time

	now     func() time.Time
	onClose func(*Dialog)
}

// ID returns the dialog identifier.
func (d *Dialog) ID() string { return d.id }

// Config returns the configuration the dialog was opened with.
func (d *Dialog) Config() Config { return d.cfg }

// IsOpen reports whether the dialog is still showing.
func (d *Dialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Result returns what OnSave produced once the dialog closed on save.
func (d *Dialog) Result() any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result
}

// LastActive returns when the operator last interacted with the dialog.
func (d *Dialog) LastActive() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastActive
}

func (d *Dialog) touch() { d.lastActive = d.now() }

// Save collects the form and runs OnSave. The save control stays disabled
// until OnSave returns; a concurrent call gets ErrSaveInProgress. On failure
// the error message is kept as the dialog's inline error and returned.
func (d *Dialog) Save(ctx context.Context) error {
	d.mu.Lock()
	if !d.open {
		d.mu.Unlock()
		return ErrClosed
	}
	if d.saving {
		d.mu.Unlock()
		return ErrSaveInProgress
	}
	d.saving = true
	d.touch()

	collected, err := d.collectLocked()
	d.mu.Unlock()

	var result any
	if err == nil && d.cfg.OnSave != nil {
		result, err = d.cfg.OnSave(ctx, collected)
	}

	d.mu.Lock()
	d.saving = false
	if err != nil {
		d.err = err.Error()
		d.mu.Unlock()
		return err
	}
	d.err = ""
	d.result = result
	d.closeLocked()
	d.mu.Unlock()

	if d.cfg.OnDone != nil {
		d.cfg.OnDone(ctx, result)
	}
	return nil
}

func (d *Dialog) collectLocked() (any, error) {
	for _, f := range d.body.fields {
		if f.currency == nil || !f.RequireTouch {
			continue
		}
		if _, err := f.currency.Validate(true); errors.Is(err, moneyx.ErrUntouched) {
			msg := f.TouchMessage
			if msg == "" {
				msg = fmt.Sprintf(msgTouchDefault, f.Label)
			}
			return nil, errors.New(msg)
		}
	}

	if d.body.CollectData == nil {
		return nil, errors.New(msgCollectMissed)
	}
	return d.body.CollectData()
}

// Cancel runs OnCancel and closes the dialog. It backs both the close (X)
// and the cancel controls.
func (d *Dialog) Cancel() {
	d.mu.Lock()
	if !d.open {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	if d.cfg.OnCancel != nil {
		d.cfg.OnCancel()
	}

	d.mu.Lock()
	d.closeLocked()
	d.mu.Unlock()
}

// Close shuts the dialog without running OnCancel.
func (d *Dialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeLocked()
}

func (d *Dialog) closeLocked() {
	if !d.open {
		return
	}
	d.open = false
	if d.onClose != nil {
		d.onClose(d)
	}
}

// OverlayClick handles a click outside the dialog. It closes the dialog only
// when CloseOnOverlayClick is set and reports whether it did.
func (d *Dialog) OverlayClick() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open || !d.cfg.CloseOnOverlayClick {
		return false
	}
	d.closeLocked()
	return true
}

// Manager owns the single active dialog of one operator.
type Manager struct {
	mu     sync.Mutex
	active *Dialog
	now    func() time.Time
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{now: time.Now}
}

// Open builds and shows a dialog, closing any dialog already open. A content
// builder error is logged and shown inline; the dialog still opens.
func (m *Manager) Open(ctx context.Context, cfg Config) *Dialog {
	if cfg.SaveText == "" {
		cfg.SaveText = DefaultSaveText
	}
	if cfg.CancelText == "" {
		cfg.CancelText = DefaultCancelText
	}
	if cfg.SavingText == "" {
		cfg.SavingText = DefaultSavingText
	}

	d := &Dialog{
		id:      idx.NewPrefixed(idx.PrefixDialog),
		cfg:     cfg,
		body:    newContainer(),
		open:    true,
		now:     m.now,
		onClose: m.release,
	}
	d.touch()

	if cfg.ContentBuilder != nil {
		if err := cfg.ContentBuilder(ctx, d.body, cfg.InitialData, Helpers{c: d.body}); err != nil {
			slogx.FromContext(ctx).Error("dialog content builder failed", "title", cfg.Title, "err", err)
			d.err = msgBuildFailed
		}
	}
	d.body.section = ""

	if ring := d.focusRingLocked(); len(ring) > 0 {
		d.focus = ring[0]
	}

	m.mu.Lock()
	prev := m.active
	m.active = d
	m.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
	return d
}

// Active returns the open dialog or ErrNoDialog.
func (m *Manager) Active() (*Dialog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil, ErrNoDialog
	}
	return m.active, nil
}

// Close shuts the active dialog, if any, without running OnCancel.
func (m *Manager) Close() {
	m.mu.Lock()
	d := m.active
	m.mu.Unlock()
	if d != nil {
		d.Close()
	}
}

func (m *Manager) release(d *Dialog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == d {
		m.active = nil
	}
}
