package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/join-catalogo/internal/application/dto"
	"github.com/jhoicas/join-catalogo/internal/domain"
	"github.com/jhoicas/join-catalogo/internal/domain/entity"
	"github.com/jhoicas/join-catalogo/internal/domain/repository"
	"github.com/jhoicas/join-catalogo/pkg/logger"
)

// ProdutoUseCase casos de uso CRUD para productos. Las lecturas incluyen la categoría.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
	tx   TxRunner
	log  *logger.Logger
}

// NewProdutoUseCase construye el caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository, tx TxRunner, log *logger.Logger) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo, tx: tx, log: log}
}

// Create persiste un producto nuevo. No debe traer ID.
func (uc *ProdutoUseCase) Create(ctx context.Context, in dto.ProdutoDTO) (*dto.ProdutoDTO, error) {
	uc.log.Debug().Interface("produto", in).Msg("solicitud para guardar produto")
	if in.ID != nil {
		return nil, fmt.Errorf("%w: un produto nuevo no puede tener ID", domain.ErrInvalidInput)
	}
	saved, err := uc.repo.Save(ctx, in.ToEntity())
	if err != nil {
		return nil, err
	}
	return dto.ProdutoFromEntity(saved), nil
}

// Update reemplaza todos los campos de un producto existente.
func (uc *ProdutoUseCase) Update(ctx context.Context, id int64, in dto.ProdutoDTO) (*dto.ProdutoDTO, error) {
	uc.log.Debug().Int64("id", id).Interface("produto", in).Msg("solicitud para actualizar produto")
	exists, err := uc.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	p := in.ToEntity()
	p.ID = id
	saved, err := uc.repo.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	return dto.ProdutoFromEntity(saved), nil
}

// PartialUpdate aplica solo los campos enviados, leyendo y guardando en la misma transacción.
func (uc *ProdutoUseCase) PartialUpdate(ctx context.Context, id int64, in dto.ProdutoDTO) (*dto.ProdutoDTO, error) {
	uc.log.Debug().Int64("id", id).Interface("produto", in).Msg("solicitud para actualizar parcialmente produto")
	var out *entity.Produto
	err := uc.tx.Run(ctx, func(_ repository.CategoriaRepository, produtos repository.ProdutoRepository) error {
		existing, err := produtos.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		in.ApplyTo(existing)
		out, err = produtos.Save(ctx, existing)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.ProdutoFromEntity(out), nil
}

// FindAll lista una página de productos junto con el total de filas.
func (uc *ProdutoUseCase) FindAll(ctx context.Context, page *repository.Pageable) (*dto.ProdutoListResponse, error) {
	uc.log.Debug().Msg("solicitud para listar produtos")
	var (
		total int64
		list  []*entity.Produto
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = uc.repo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		list, err = repository.Collect(uc.repo.FindAllWithEagerRelationships(gctx, page))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoDTO, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ProdutoFromEntity(p))
	}
	return &dto.ProdutoListResponse{Items: items, Total: total}, nil
}

// FindOne obtiene un producto con su categoría; (nil, nil) si no existe.
func (uc *ProdutoUseCase) FindOne(ctx context.Context, id int64) (*dto.ProdutoDTO, error) {
	uc.log.Debug().Int64("id", id).Msg("solicitud para obtener produto")
	p, err := uc.repo.FindOneWithEagerRelationships(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ProdutoFromEntity(p), nil
}

// Delete elimina un producto por ID.
func (uc *ProdutoUseCase) Delete(ctx context.Context, id int64) error {
	uc.log.Debug().Int64("id", id).Msg("solicitud para eliminar produto")
	return uc.repo.DeleteByID(ctx, id)
}
