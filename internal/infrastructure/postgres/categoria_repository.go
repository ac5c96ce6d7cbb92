package postgres

import (
	"context"
	"fmt"
	"iter"

	"github.com/jhoicas/join-catalogo/internal/domain"
	"github.com/jhoicas/join-catalogo/internal/domain/entity"
	"github.com/jhoicas/join-catalogo/internal/domain/repository"
	"github.com/jhoicas/join-catalogo/internal/infrastructure/postgres/rowmapper"
	"github.com/jhoicas/join-catalogo/internal/infrastructure/postgres/sqlbuilder"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL (usable con pool o tx).
type CategoriaRepo struct {
	q      Querier
	em     *EntityManager
	mapper *rowmapper.Bound[entity.Categoria]
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier, em *EntityManager) *CategoriaRepo {
	return &CategoriaRepo{
		q:      q,
		em:     em,
		mapper: rowmapper.NewCategoriaMapper().MustBind(categoriaTable.Projection()),
	}
}

func (r *CategoriaRepo) query(ctx context.Context, op string, page *repository.Pageable, where *sqlbuilder.Condition) iter.Seq2[*entity.Categoria, error] {
	sql, args, err := r.em.ToStatement(sqlbuilder.From(categoriaTable), page, where)
	if err != nil {
		return failed[entity.Categoria](fmt.Errorf("%s: %w", op, err))
	}
	return stream(ctx, r.q, op, sql, args, r.mapper.Map)
}

// FindByID obtiene una categoría por ID; (nil, nil) si no existe.
func (r *CategoriaRepo) FindByID(ctx context.Context, id int64) (*entity.Categoria, error) {
	where := sqlbuilder.Eq(categoriaTable.PrimaryKey(), id)
	return first(r.query(ctx, "get categoria", nil, &where))
}

// FindAll todas las categorías en orden natural.
func (r *CategoriaRepo) FindAll(ctx context.Context) iter.Seq2[*entity.Categoria, error] {
	return r.FindAllPaged(ctx, nil)
}

// FindAllPaged categorías de la página pedida.
func (r *CategoriaRepo) FindAllPaged(ctx context.Context, page *repository.Pageable) iter.Seq2[*entity.Categoria, error] {
	return r.query(ctx, "list categorias", page, nil)
}

// Save inserta si la categoría no tiene ID; si lo tiene, actualiza todas las columnas.
func (r *CategoriaRepo) Save(ctx context.Context, c *entity.Categoria) (*entity.Categoria, error) {
	if c.IsNew() {
		if err := r.q.QueryRow(ctx, sqlbuilder.Insert(categoriaTable), c.Nome).Scan(&c.ID); err != nil {
			return nil, wrapWriteErr("insert categoria", err)
		}
		return c, nil
	}
	cmd, err := r.q.Exec(ctx, sqlbuilder.Update(categoriaTable), c.ID, c.Nome)
	if err != nil {
		return nil, wrapWriteErr("update categoria", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, fmt.Errorf("update categoria %d: %w", c.ID, domain.ErrNotFound)
	}
	return c, nil
}

// DeleteByID elimina por ID. Borrar un ID inexistente no es error.
func (r *CategoriaRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, sqlbuilder.Delete(categoriaTable), id); err != nil {
		return wrapWriteErr("delete categoria", err)
	}
	return nil
}

// Count total de categorías.
func (r *CategoriaRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, sqlbuilder.Count(categoriaTable)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categorias: %w", err)
	}
	return n, nil
}

// ExistsByID indica si existe una categoría con ese ID.
func (r *CategoriaRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, sqlbuilder.Exists(categoriaTable), id).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists categoria: %w", err)
	}
	return ok, nil
}
