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

// CategoriaUseCase casos de uso CRUD para categorías.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
	tx   TxRunner
	log  *logger.Logger
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository, tx TxRunner, log *logger.Logger) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo, tx: tx, log: log}
}

// Create persiste una categoría nueva. No debe traer ID.
func (uc *CategoriaUseCase) Create(ctx context.Context, in dto.CategoriaDTO) (*dto.CategoriaDTO, error) {
	uc.log.Debug().Interface("categoria", in).Msg("solicitud para guardar categoria")
	if in.ID != nil {
		return nil, fmt.Errorf("%w: una categoria nueva no puede tener ID", domain.ErrInvalidInput)
	}
	saved, err := uc.repo.Save(ctx, in.ToEntity())
	if err != nil {
		return nil, err
	}
	return dto.CategoriaFromEntity(saved), nil
}

// Update reemplaza todos los campos de una categoría existente.
func (uc *CategoriaUseCase) Update(ctx context.Context, id int64, in dto.CategoriaDTO) (*dto.CategoriaDTO, error) {
	uc.log.Debug().Int64("id", id).Interface("categoria", in).Msg("solicitud para actualizar categoria")
	exists, err := uc.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	c := in.ToEntity()
	c.ID = id
	saved, err := uc.repo.Save(ctx, c)
	if err != nil {
		return nil, err
	}
	return dto.CategoriaFromEntity(saved), nil
}

// PartialUpdate aplica solo los campos enviados, leyendo y guardando en la misma transacción.
func (uc *CategoriaUseCase) PartialUpdate(ctx context.Context, id int64, in dto.CategoriaDTO) (*dto.CategoriaDTO, error) {
	uc.log.Debug().Int64("id", id).Interface("categoria", in).Msg("solicitud para actualizar parcialmente categoria")
	var out *entity.Categoria
	err := uc.tx.Run(ctx, func(categorias repository.CategoriaRepository, _ repository.ProdutoRepository) error {
		existing, err := categorias.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		in.ApplyTo(existing)
		out, err = categorias.Save(ctx, existing)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.CategoriaFromEntity(out), nil
}

// FindAll lista una página de categorías junto con el total de filas.
// La cuenta y la página se consultan en paralelo.
func (uc *CategoriaUseCase) FindAll(ctx context.Context, page *repository.Pageable) (*dto.CategoriaListResponse, error) {
	uc.log.Debug().Msg("solicitud para listar categorias")
	var (
		total int64
		list  []*entity.Categoria
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = uc.repo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		list, err = repository.Collect(uc.repo.FindAllPaged(gctx, page))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaDTO, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.CategoriaFromEntity(c))
	}
	return &dto.CategoriaListResponse{Items: items, Total: total}, nil
}

// FindOne obtiene una categoría por ID; (nil, nil) si no existe.
func (uc *CategoriaUseCase) FindOne(ctx context.Context, id int64) (*dto.CategoriaDTO, error) {
	uc.log.Debug().Int64("id", id).Msg("solicitud para obtener categoria")
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.CategoriaFromEntity(c), nil
}

// Delete elimina una categoría por ID.
func (uc *CategoriaUseCase) Delete(ctx context.Context, id int64) error {
	uc.log.Debug().Int64("id", id).Msg("solicitud para eliminar categoria")
	return uc.repo.DeleteByID(ctx, id)
}
