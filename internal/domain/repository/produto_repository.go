package repository

import (
	"context"
	"iter"

	"github.com/jhoicas/join-catalogo/internal/domain/entity"
)

// ProdutoRepository define el puerto de persistencia para Produto (DIP).
// Las lecturas hacen LEFT JOIN con categoria y devuelven la relación poblada.
type ProdutoRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Produto, error)
	FindAll(ctx context.Context) iter.Seq2[*entity.Produto, error]
	FindAllPaged(ctx context.Context, page *Pageable) iter.Seq2[*entity.Produto, error]
	FindOneWithEagerRelationships(ctx context.Context, id int64) (*entity.Produto, error)
	FindAllWithEagerRelationships(ctx context.Context, page *Pageable) iter.Seq2[*entity.Produto, error]
	FindByCategoria(ctx context.Context, categoriaID int64) iter.Seq2[*entity.Produto, error]
	FindAllWhereCategoriaIsNull(ctx context.Context) iter.Seq2[*entity.Produto, error]
	Save(ctx context.Context, p *entity.Produto) (*entity.Produto, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// Collect consume una secuencia y devuelve el primer error encontrado.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
