package postgres

import "github.com/jhoicas/join-catalogo/internal/infrastructure/postgres/sqlbuilder"

// entityAlias alias de la tabla principal de cada consulta.
const entityAlias = "e"

var (
	categoriaColumns = []sqlbuilder.Column{
		{Name: "id", Property: "id"},
		{Name: "nome", Property: "nome"},
	}
	produtoColumns = []sqlbuilder.Column{
		{Name: "id", Property: "id"},
		{Name: "nome", Property: "nome"},
		{Name: "quantidade", Property: "quantidade"},
		{Name: "categoria_id", Property: "categoriaId"},
	}

	categoriaTable = sqlbuilder.NewTable("categoria", entityAlias, categoriaColumns...)
	produtoTable   = sqlbuilder.NewTable("produto", entityAlias, produtoColumns...)
	// categoria unida desde produto; alias propio para no colisionar con e_*.
	categoriaJoinTable = sqlbuilder.NewTable("categoria", "categoria", categoriaColumns...)
)
