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

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementación del puerto ProdutoRepository sobre PostgreSQL (usable con pool o tx).
// Toda lectura hace LEFT OUTER JOIN con categoria para poblar la relación.
type ProdutoRepo struct {
	q         Querier
	em        *EntityManager
	produto   *rowmapper.Bound[entity.Produto]
	categoria *rowmapper.Bound[entity.Categoria]
}

// NewProdutoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProdutoRepository(q Querier, em *EntityManager) *ProdutoRepo {
	return &ProdutoRepo{
		q:         q,
		em:        em,
		produto:   rowmapper.NewProdutoMapper().MustBind(produtoTable.Projection()),
		categoria: rowmapper.NewCategoriaMapper().MustBind(categoriaJoinTable.Projection()),
	}
}

func (r *ProdutoRepo) selectBase() *sqlbuilder.Select {
	return sqlbuilder.From(produtoTable).LeftOuterJoin(categoriaJoinTable, "categoria_id")
}

// process mapea las columnas e_* al producto y las categoria_* a su relación.
// Una categoría con ID NULL deja la relación ausente.
func (r *ProdutoRepo) process(row rowmapper.Row) (*entity.Produto, error) {
	p, err := r.produto.Map(row)
	if err != nil {
		return nil, err
	}
	c, err := r.categoria.MapOptional(row)
	if err != nil {
		return nil, err
	}
	if c != nil {
		p.SetCategoria(c)
	}
	return p, nil
}

func (r *ProdutoRepo) query(ctx context.Context, op string, page *repository.Pageable, where *sqlbuilder.Condition) iter.Seq2[*entity.Produto, error] {
	sql, args, err := r.em.ToStatement(r.selectBase(), page, where)
	if err != nil {
		return failed[entity.Produto](fmt.Errorf("%s: %w", op, err))
	}
	return stream(ctx, r.q, op, sql, args, r.process)
}

// FindByID obtiene un producto con su categoría; (nil, nil) si no existe.
func (r *ProdutoRepo) FindByID(ctx context.Context, id int64) (*entity.Produto, error) {
	where := sqlbuilder.Eq(produtoTable.PrimaryKey(), id)
	return first(r.query(ctx, "get produto", nil, &where))
}

// FindAll todos los productos en orden natural.
func (r *ProdutoRepo) FindAll(ctx context.Context) iter.Seq2[*entity.Produto, error] {
	return r.FindAllPaged(ctx, nil)
}

// FindAllPaged productos de la página pedida.
func (r *ProdutoRepo) FindAllPaged(ctx context.Context, page *repository.Pageable) iter.Seq2[*entity.Produto, error] {
	return r.query(ctx, "list produtos", page, nil)
}

// FindOneWithEagerRelationships equivale a FindByID (la lectura ya es eager).
func (r *ProdutoRepo) FindOneWithEagerRelationships(ctx context.Context, id int64) (*entity.Produto, error) {
	return r.FindByID(ctx, id)
}

// FindAllWithEagerRelationships equivale a FindAllPaged.
func (r *ProdutoRepo) FindAllWithEagerRelationships(ctx context.Context, page *repository.Pageable) iter.Seq2[*entity.Produto, error] {
	return r.FindAllPaged(ctx, page)
}

// FindByCategoria productos de una categoría, en orden natural.
func (r *ProdutoRepo) FindByCategoria(ctx context.Context, categoriaID int64) iter.Seq2[*entity.Produto, error] {
	return r.queryByParent(ctx, "list produtos por categoria", &categoriaID)
}

// FindAllWhereCategoriaIsNull productos sin categoría.
func (r *ProdutoRepo) FindAllWhereCategoriaIsNull(ctx context.Context) iter.Seq2[*entity.Produto, error] {
	return r.queryByParent(ctx, "list produtos sin categoria", nil)
}

func (r *ProdutoRepo) queryByParent(ctx context.Context, op string, categoriaID *int64) iter.Seq2[*entity.Produto, error] {
	sql, args, err := r.em.ToStatement(r.selectBase().WhereParent(categoriaID), nil, nil)
	if err != nil {
		return failed[entity.Produto](fmt.Errorf("%s: %w", op, err))
	}
	return stream(ctx, r.q, op, sql, args, r.process)
}

// Save inserta si el producto no tiene ID; si lo tiene, actualiza todas las columnas.
func (r *ProdutoRepo) Save(ctx context.Context, p *entity.Produto) (*entity.Produto, error) {
	if p.IsNew() {
		err := r.q.QueryRow(ctx, sqlbuilder.Insert(produtoTable), p.Nome, p.Quantidade, p.CategoriaID()).Scan(&p.ID)
		if err != nil {
			return nil, wrapWriteErr("insert produto", err)
		}
		return p, nil
	}
	cmd, err := r.q.Exec(ctx, sqlbuilder.Update(produtoTable), p.ID, p.Nome, p.Quantidade, p.CategoriaID())
	if err != nil {
		return nil, wrapWriteErr("update produto", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, fmt.Errorf("update produto %d: %w", p.ID, domain.ErrNotFound)
	}
	return p, nil
}

// DeleteByID elimina por ID. Borrar un ID inexistente no es error.
func (r *ProdutoRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, sqlbuilder.Delete(produtoTable), id); err != nil {
		return wrapWriteErr("delete produto", err)
	}
	return nil
}

// Count total de productos.
func (r *ProdutoRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, sqlbuilder.Count(produtoTable)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count produtos: %w", err)
	}
	return n, nil
}

// ExistsByID indica si existe un producto con ese ID.
func (r *ProdutoRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, sqlbuilder.Exists(produtoTable), id).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists produto: %w", err)
	}
	return ok, nil
}
