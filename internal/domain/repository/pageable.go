package repository

import (
	"fmt"
	"math"
	"strings"

	"github.com/jhoicas/join-catalogo/internal/domain"
)

// Direction sentido de ordenamiento.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order criterio de ordenamiento sobre una propiedad de la entidad.
type Order struct {
	Property  string
	Direction Direction
}

// Pageable describe una porción acotada y ordenada del resultado.
// Un *Pageable nil significa sin límite y orden natural.
type Pageable struct {
	Page int // base 0
	Size int // 0 = sin límite
	Sort []Order
}

// Offset devuelve el desplazamiento de filas correspondiente a la página.
func (p *Pageable) Offset() int {
	if p == nil || p.Size <= 0 || p.Page <= 0 {
		return 0
	}
	return p.Page * p.Size
}

// Validate rechaza página o tamaño negativos y páginas cuyo desplazamiento no cabe en int.
func (p *Pageable) Validate() error {
	if p == nil {
		return nil
	}
	if p.Page < 0 || p.Size < 0 {
		return fmt.Errorf("%w: page=%d size=%d", domain.ErrInvalidInput, p.Page, p.Size)
	}
	if p.Size > 0 && p.Page > math.MaxInt/p.Size {
		return fmt.Errorf("%w: page %d fuera de rango para size %d", domain.ErrInvalidInput, p.Page, p.Size)
	}
	return nil
}

// Paged indica si se debe aplicar LIMIT/OFFSET.
func (p *Pageable) Paged() bool {
	return p != nil && p.Size > 0
}

// ParseOrder interpreta "prop" o "prop,asc|desc" (formato de query param sort).
func ParseOrder(raw string) (Order, error) {
	parts := strings.Split(raw, ",")
	prop := strings.TrimSpace(parts[0])
	if prop == "" || len(parts) > 2 {
		return Order{}, fmt.Errorf("%w: %q", domain.ErrInvalidSort, raw)
	}
	o := Order{Property: prop, Direction: Asc}
	if len(parts) == 2 {
		switch strings.ToUpper(strings.TrimSpace(parts[1])) {
		case "ASC", "":
		case "DESC":
			o.Direction = Desc
		default:
			return Order{}, fmt.Errorf("%w: dirección %q", domain.ErrInvalidSort, parts[1])
		}
	}
	return o, nil
}
