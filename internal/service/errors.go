package service

import "errors"

// Domain error taxonomy. Handlers map these onto HTTP statuses; nothing in
// this layer is fatal and nothing is retried.
var (
	// ErrNoEncontrado: the referenced id no longer exists in its registry.
	ErrNoEncontrado = errors.New("recurso no encontrado")
	// ErrCredenciales: the login pair matches no entry in the fixed user
	// list. Deliberately generic — unknown email and wrong password read
	// the same.
	ErrCredenciales = errors.New("credenciales invalidas")
)

// ValidacionError reports a rejected write. The pending change is always
// discarded; state is never mutated on a validation failure.
type ValidacionError struct {
	Detalle string
}

func (e *ValidacionError) Error() string { return e.Detalle }

func errValidacion(detalle string) error {
	return &ValidacionError{Detalle: detalle}
}
