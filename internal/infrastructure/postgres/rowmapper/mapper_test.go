package rowmapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/join-catalogo/internal/domain"
	"github.com/jhoicas/join-catalogo/internal/infrastructure/postgres/rowmapper"
	"github.com/jhoicas/join-catalogo/internal/infrastructure/postgres/sqlbuilder"
)

var (
	produtoTable = sqlbuilder.NewTable("produto", "e",
		sqlbuilder.Column{Name: "id", Property: "id"},
		sqlbuilder.Column{Name: "nome", Property: "nome"},
		sqlbuilder.Column{Name: "quantidade", Property: "quantidade"},
		sqlbuilder.Column{Name: "categoria_id", Property: "categoriaId"},
	)
	categoriaTable = sqlbuilder.NewTable("categoria", "categoria",
		sqlbuilder.Column{Name: "id", Property: "id"},
		sqlbuilder.Column{Name: "nome", Property: "nome"},
	)
)

func TestProdutoMapper_Map(t *testing.T) {
	m := rowmapper.NewProdutoMapper().MustBind(produtoTable.Projection())
	p, err := m.Map(rowmapper.Row{
		"e_id": int64(10), "e_nome": "Refrigerante", "e_quantidade": int32(5), "e_categoria_id": int64(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.ID)
	assert.Equal(t, "Refrigerante", p.Nome)
	assert.Equal(t, int32(5), p.Quantidade)
	require.NotNil(t, p.CategoriaID())
	assert.Equal(t, int64(1), *p.CategoriaID())
	assert.Nil(t, p.Categoria())
}

func TestProdutoMapper_CategoriaNula(t *testing.T) {
	m := rowmapper.NewProdutoMapper().MustBind(produtoTable.Projection())
	p, err := m.Map(rowmapper.Row{
		"e_id": int64(11), "e_nome": "Caneta", "e_quantidade": int32(3), "e_categoria_id": nil,
	})
	require.NoError(t, err)
	assert.Nil(t, p.CategoriaID())
}

func TestProdutoMapper_ErrorNoDevuelveEntidadParcial(t *testing.T) {
	m := rowmapper.NewProdutoMapper().MustBind(produtoTable.Projection())
	p, err := m.Map(rowmapper.Row{
		"e_id": int64(11), "e_nome": "Caneta", "e_quantidade": "tres",
	})
	assert.ErrorIs(t, err, domain.ErrConversion)
	assert.Nil(t, p)
}

func TestCategoriaMapper_MapOptional(t *testing.T) {
	m := rowmapper.NewCategoriaMapper().MustBind(categoriaTable.Projection())

	c, err := m.MapOptional(rowmapper.Row{"categoria_id": nil, "categoria_nome": nil})
	require.NoError(t, err)
	assert.Nil(t, c, "identidad NULL => relación ausente")

	c, err = m.MapOptional(rowmapper.Row{"categoria_id": int64(1), "categoria_nome": "Bebidas"})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Bebidas", c.Nome)
}

func TestBind_ColumnaNoProyectada(t *testing.T) {
	_, err := rowmapper.NewProdutoMapper().Bind(categoriaTable.Projection())
	assert.Error(t, err)

	_, err = rowmapper.New[struct{}]().Bind(categoriaTable.Projection())
	assert.Error(t, err)

	assert.Panics(t, func() { rowmapper.NewProdutoMapper().MustBind(categoriaTable.Projection()) })
}
