package service

import (
	"errors"

	"github.com/aussiebroadwan/pandda/internal/panel/store"
)

// Sentinel errors carry the message shown to the operator; dialogs surface
// err.Error() verbatim.
var (
	ErrNotFound            = errors.New("Registro não encontrado")
	ErrInUse               = errors.New("Registro em uso por outros cadastros")
	ErrAlreadyExists       = errors.New("Registro já existe")
	ErrInvalidCredentials  = errors.New("Credenciais inválidas")
	ErrConnectionsMismatch = errors.New("A soma de conexões dos pontos precisa ser igual ao número de telas.")
	ErrUnknownApp          = errors.New("App inválido")
	ErrUnknownPlan         = errors.New("Plano inválido")
	ErrUnknownServer       = errors.New("Servidor inválido")
)

// ValidationError is a rule violation tied to one input field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

func invalidErr(field string, err error) error {
	return &ValidationError{Field: field, Message: err.Error(), Err: err}
}

// mapStoreErr translates driver sentinels into service sentinels and leaves
// anything else untouched.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrInUse):
		return ErrInUse
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrAlreadyExists
	default:
		return err
	}
}
