package postgres

import (
	"fmt"

	"github.com/jhoicas/join-catalogo/internal/domain"
	"github.com/jhoicas/join-catalogo/internal/domain/repository"
	"github.com/jhoicas/join-catalogo/internal/infrastructure/postgres/sqlbuilder"
)

// EntityManager convierte un SELECT base más filtro y paginación en la sentencia final.
// No tiene estado; se comparte entre repositorios.
type EntityManager struct{}

// NewEntityManager construye el EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{}
}

// ToStatement aplica, en este orden, WHERE, ORDER BY y LIMIT/OFFSET sobre una copia de base.
// Las propiedades de orden deben corresponder a columnas declaradas de la entidad.
// page nil significa sin límite y orden natural.
func (m *EntityManager) ToStatement(base *sqlbuilder.Select, page *repository.Pageable, where *sqlbuilder.Condition) (string, []any, error) {
	if err := page.Validate(); err != nil {
		return "", nil, err
	}
	sel := base.Clone()
	if where != nil {
		sel.Where(*where)
	}
	if page != nil {
		table := sel.Table()
		for _, o := range page.Sort {
			col, ok := table.ColumnForProperty(o.Property)
			if !ok {
				return "", nil, fmt.Errorf("%w: %q no es una columna de %s", domain.ErrInvalidSort, o.Property, table.Name)
			}
			sel.OrderBy(sqlbuilder.OrderTerm{Column: col.Name, Desc: o.Direction == repository.Desc})
		}
		if page.Paged() {
			sel.Limit(page.Size, page.Offset())
		}
	}
	return sel.Render()
}
