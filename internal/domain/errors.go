package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los adaptadores de persistencia clasifican los errores del store hacia estos
// centinelas; la capa HTTP los traduce a códigos de estado.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)
