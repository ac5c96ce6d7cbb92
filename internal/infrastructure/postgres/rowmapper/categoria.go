package rowmapper

import "github.com/jhoicas/join-catalogo/internal/domain/entity"

// NewCategoriaMapper campos de Categoria en orden de columnas de la tabla categoria.
func NewCategoriaMapper() *Mapper[entity.Categoria] {
	return New(
		Required("id", func(c *entity.Categoria, v int64) { c.ID = v }),
		Required("nome", func(c *entity.Categoria, v string) { c.Nome = v }),
	)
}
