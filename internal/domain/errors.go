package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cada capa envuelve con %w para no perder la causa; el handler HTTP
// los traduce a códigos de estado con errors.Is.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrCreateFailed = errors.New("el almacén rechazó la inserción")
	ErrConflict     = errors.New("conflicto con el estado actual")
)
