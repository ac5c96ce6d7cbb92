package http

import (
	"context"

	"github.com/jhoicas/join-catalogo/internal/application/dto"
	"github.com/jhoicas/join-catalogo/internal/domain/repository"
)

// CategoriaService operaciones de categoría expuestas por HTTP (implementado por usecase.CategoriaUseCase).
type CategoriaService interface {
	Create(ctx context.Context, in dto.CategoriaDTO) (*dto.CategoriaDTO, error)
	Update(ctx context.Context, id int64, in dto.CategoriaDTO) (*dto.CategoriaDTO, error)
	PartialUpdate(ctx context.Context, id int64, in dto.CategoriaDTO) (*dto.CategoriaDTO, error)
	FindAll(ctx context.Context, page *repository.Pageable) (*dto.CategoriaListResponse, error)
	FindOne(ctx context.Context, id int64) (*dto.CategoriaDTO, error)
	Delete(ctx context.Context, id int64) error
}

// ProdutoService operaciones de producto expuestas por HTTP (implementado por usecase.ProdutoUseCase).
type ProdutoService interface {
	Create(ctx context.Context, in dto.ProdutoDTO) (*dto.ProdutoDTO, error)
	Update(ctx context.Context, id int64, in dto.ProdutoDTO) (*dto.ProdutoDTO, error)
	PartialUpdate(ctx context.Context, id int64, in dto.ProdutoDTO) (*dto.ProdutoDTO, error)
	FindAll(ctx context.Context, page *repository.Pageable) (*dto.ProdutoListResponse, error)
	FindOne(ctx context.Context, id int64) (*dto.ProdutoDTO, error)
	Delete(ctx context.Context, id int64) error
}
