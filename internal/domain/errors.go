package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidReference = errors.New("referencia a un recurso inexistente")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
)

// DomainError acompaña a un error centinela con el mensaje que ve el cliente.
// errors.Is sigue funcionando contra el centinela.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Kind }

// Duplicate construye un ErrDuplicate con mensaje propio ("Ingredient name already exists.").
func Duplicate(msg string) error { return &DomainError{Kind: ErrDuplicate, Message: msg} }

// NotFound construye un ErrNotFound con mensaje propio.
func NotFound(msg string) error { return &DomainError{Kind: ErrNotFound, Message: msg} }

// Invalid construye un ErrInvalidInput con mensaje propio.
func Invalid(msg string) error { return &DomainError{Kind: ErrInvalidInput, Message: msg} }

// Message devuelve el texto para el cliente si err es un DomainError; si no, fallback.
func Message(err error, fallback string) string {
	var de *DomainError
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return fallback
}

// IsNotFound indica si err es (o envuelve) ErrNotFound o ErrUserNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrUserNotFound)
}
