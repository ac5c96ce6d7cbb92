package dto

import "github.com/jhoicas/join-catalogo/internal/domain/entity"

// CategoriaDTO entrada y salida de una categoría. Los punteros distinguen
// "no enviado" de valor cero (necesario para PATCH).
type CategoriaDTO struct {
	ID   *int64  `json:"id"`
	Nome *string `json:"nome" validate:"required"`
}

// CategoriaListResponse lista paginada de categorías.
type CategoriaListResponse struct {
	Items []CategoriaDTO `json:"items"`
	Total int64          `json:"total"`
}

// ToEntity copia el DTO a una entidad nueva.
func (d CategoriaDTO) ToEntity() *entity.Categoria {
	c := &entity.Categoria{}
	if d.ID != nil {
		c.ID = *d.ID
	}
	if d.Nome != nil {
		c.Nome = *d.Nome
	}
	return c
}

// ApplyTo copia sobre c solo los campos enviados.
func (d CategoriaDTO) ApplyTo(c *entity.Categoria) {
	if d.Nome != nil {
		c.Nome = *d.Nome
	}
}

// CategoriaFromEntity construye el DTO de salida; nil si c es nil.
func CategoriaFromEntity(c *entity.Categoria) *CategoriaDTO {
	if c == nil {
		return nil
	}
	id, nome := c.ID, c.Nome
	return &CategoriaDTO{ID: &id, Nome: &nome}
}
