package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrConversion        = errors.New("valor de columna no convertible")
	ErrUnsupportedFilter = errors.New("filtro no soportado")
	ErrInvalidSort       = errors.New("campo de ordenamiento inválido")
)
