// Package rowmapper convierte filas crudas de la base de datos en entidades.
// Las funciones son puras: sin I/O ni estado compartido.
package rowmapper

import (
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/join-catalogo/internal/domain"
)

// Row fila cruda indexada por nombre de columna del result set.
// Una clave ausente significa que la consulta no proyectó esa columna;
// un valor nil es un NULL de la base de datos.
type Row map[string]any

// Scalar tipos destino admitidos por el conversor.
type Scalar interface {
	int64 | int32 | int | string | bool | float64 | time.Time
}

// ConversionError el valor almacenado no puede representarse en el tipo pedido.
type ConversionError struct {
	Column string
	Target string
	Value  any
	Reason string
}

func (e *ConversionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("columna %s -> %s: %s", e.Column, e.Target, e.Reason)
	}
	return fmt.Sprintf("columna %s: no se puede convertir %T(%v) a %s", e.Column, e.Value, e.Value, e.Target)
}

func (e *ConversionError) Unwrap() error { return domain.ErrConversion }

// FromRow extrae un valor obligatorio. NULL o columna ausente son errores.
func FromRow[T Scalar](row Row, column string) (T, error) {
	var zero T
	raw, ok := row[column]
	if !ok {
		return zero, &ConversionError{Column: column, Target: targetName[T](), Reason: "columna ausente"}
	}
	if raw == nil {
		return zero, &ConversionError{Column: column, Target: targetName[T](), Reason: "NULL en campo obligatorio"}
	}
	v, ok := convert[T](raw)
	if !ok {
		return zero, &ConversionError{Column: column, Target: targetName[T](), Value: raw}
	}
	return v, nil
}

// NullableFromRow extrae un valor opcional. NULL o columna ausente devuelven nil.
func NullableFromRow[T Scalar](row Row, column string) (*T, error) {
	raw, ok := row[column]
	if !ok || raw == nil {
		return nil, nil
	}
	v, ok := convert[T](raw)
	if !ok {
		return nil, &ConversionError{Column: column, Target: targetName[T](), Value: raw}
	}
	return &v, nil
}

// convert no coerciona entre familias (texto -> número, etc.); solo amplía o
// reduce enteros cuando el valor cabe en el destino.
func convert[T Scalar](raw any) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *int64:
		n, ok := toInt64(raw)
		if !ok {
			return out, false
		}
		*p = n
	case *int32:
		n, ok := toInt64(raw)
		if !ok || n < math.MinInt32 || n > math.MaxInt32 {
			return out, false
		}
		*p = int32(n)
	case *int:
		n, ok := toInt64(raw)
		if !ok || n < math.MinInt || n > math.MaxInt {
			return out, false
		}
		*p = int(n)
	case *string:
		s, ok := raw.(string)
		if !ok {
			return out, false
		}
		*p = s
	case *bool:
		b, ok := raw.(bool)
		if !ok {
			return out, false
		}
		*p = b
	case *float64:
		switch v := raw.(type) {
		case float64:
			*p = v
		case float32:
			*p = float64(v)
		default:
			return out, false
		}
	case *time.Time:
		t, ok := raw.(time.Time)
		if !ok {
			return out, false
		}
		*p = t
	default:
		return out, false
	}
	return out, true
}

func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case int:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	default:
		return 0, false
	}
}

func targetName[T Scalar]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
