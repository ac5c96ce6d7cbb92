package usecase

import (
	"context"

	"github.com/jhoicas/join-catalogo/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una única transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categorias repository.CategoriaRepository,
		produtos repository.ProdutoRepository,
	) error) error
}
