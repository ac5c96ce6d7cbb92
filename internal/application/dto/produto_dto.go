package dto

import "github.com/jhoicas/join-catalogo/internal/domain/entity"

// ProdutoDTO entrada y salida de un producto. La categoría se referencia por ID.
type ProdutoDTO struct {
	ID         *int64        `json:"id"`
	Nome       *string       `json:"nome" validate:"required"`
	Quantidade *int32        `json:"quantidade" validate:"required"`
	Categoria  *CategoriaDTO `json:"categoria" validate:"-"`
}

// ProdutoListResponse lista paginada de productos.
type ProdutoListResponse struct {
	Items []ProdutoDTO `json:"items"`
	Total int64        `json:"total"`
}

// ToEntity copia el DTO a una entidad nueva.
func (d ProdutoDTO) ToEntity() *entity.Produto {
	p := &entity.Produto{}
	if d.ID != nil {
		p.ID = *d.ID
	}
	d.ApplyTo(p)
	return p
}

// ApplyTo copia sobre p solo los campos enviados. La categoría se referencia solo
// por ID (relación lazy); una categoría sin ID se ignora.
func (d ProdutoDTO) ApplyTo(p *entity.Produto) {
	if d.Nome != nil {
		p.Nome = *d.Nome
	}
	if d.Quantidade != nil {
		p.Quantidade = *d.Quantidade
	}
	if d.Categoria != nil && d.Categoria.ID != nil {
		p.SetCategoriaID(d.Categoria.ID)
	}
}

// ProdutoFromEntity construye el DTO de salida. Sin relación cargada, la
// categoría se informa solo con su ID.
func ProdutoFromEntity(p *entity.Produto) *ProdutoDTO {
	if p == nil {
		return nil
	}
	id, nome, qtd := p.ID, p.Nome, p.Quantidade
	out := &ProdutoDTO{ID: &id, Nome: &nome, Quantidade: &qtd}
	switch {
	case p.Categoria() != nil:
		out.Categoria = CategoriaFromEntity(p.Categoria())
	case p.CategoriaID() != nil:
		out.Categoria = &CategoriaDTO{ID: p.CategoriaID()}
	}
	return out
}
