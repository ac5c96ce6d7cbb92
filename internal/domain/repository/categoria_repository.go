package repository

import (
	"context"
	"iter"

	"github.com/jhoicas/join-catalogo/internal/domain/entity"
)

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
// FindByID devuelve (nil, nil) cuando no existe.
type CategoriaRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Categoria, error)
	FindAll(ctx context.Context) iter.Seq2[*entity.Categoria, error]
	FindAllPaged(ctx context.Context, page *Pageable) iter.Seq2[*entity.Categoria, error]
	Save(ctx context.Context, c *entity.Categoria) (*entity.Categoria, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
