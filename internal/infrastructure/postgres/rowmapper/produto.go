package rowmapper

import "github.com/jhoicas/join-catalogo/internal/domain/entity"

// NewProdutoMapper campos de Produto. categoria_id es anulable (relación lazy).
func NewProdutoMapper() *Mapper[entity.Produto] {
	return New(
		Required("id", func(p *entity.Produto, v int64) { p.ID = v }),
		Required("nome", func(p *entity.Produto, v string) { p.Nome = v }),
		Required("quantidade", func(p *entity.Produto, v int32) { p.Quantidade = v }),
		Optional("categoria_id", func(p *entity.Produto, v *int64) { p.SetCategoriaID(v) }),
	)
}
