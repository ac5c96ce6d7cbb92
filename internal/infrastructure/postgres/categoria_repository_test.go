package postgres_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/join-catalogo/internal/domain"
	"github.com/jhoicas/join-catalogo/internal/domain/entity"
	"github.com/jhoicas/join-catalogo/internal/domain/repository"
	"github.com/jhoicas/join-catalogo/internal/infrastructure/postgres"
)

const categoriaSelect = "SELECT e.id AS e_id, e.nome AS e_nome FROM categoria e"

var categoriaCols = []string{"e_id", "e_nome"}

func newCategoriaRepo() (*postgres.CategoriaRepo, *MockQuerier) {
	q := new(MockQuerier)
	return postgres.NewCategoriaRepository(q, postgres.NewEntityManager()), q
}

func TestCategoriaRepo_FindByID(t *testing.T) {
	repo, q := newCategoriaRepo()
	rows := newRows(categoriaCols, []any{int64(1), "Bebidas"})
	q.On("Query", categoriaSelect+" WHERE e.id = $1", []any{int64(1)}).Return(rows, nil)

	c, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, &entity.Categoria{ID: 1, Nome: "Bebidas"}, c)
	assert.True(t, rows.closed, "las filas deben cerrarse para devolver la conexión")
	q.AssertExpectations(t)
}

func TestCategoriaRepo_FindByID_NoEncontrado(t *testing.T) {
	repo, q := newCategoriaRepo()
	rows := newRows(categoriaCols)
	q.On("Query", categoriaSelect+" WHERE e.id = $1", []any{int64(99)}).Return(rows, nil)

	c, err := repo.FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.True(t, rows.closed)
}

func TestCategoriaRepo_FindAll(t *testing.T) {
	repo, q := newCategoriaRepo()
	rows := newRows(categoriaCols, []any{int64(1), "Bebidas"}, []any{int64(2), "Papelaria"})
	q.On("Query", categoriaSelect, mock.Anything).Return(rows, nil)

	list, err := repository.Collect(repo.FindAll(context.Background()))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Papelaria", list[1].Nome)
}

func TestCategoriaRepo_FindAllPaged(t *testing.T) {
	repo, q := newCategoriaRepo()
	rows := newRows(categoriaCols, []any{int64(3), "C"}, []any{int64(4), "D"})
	q.On("Query", categoriaSelect+" ORDER BY e.nome DESC LIMIT $1 OFFSET $2", []any{2, 2}).Return(rows, nil)

	page := &repository.Pageable{Page: 1, Size: 2, Sort: []repository.Order{{Property: "nome", Direction: repository.Desc}}}
	list, err := repository.Collect(repo.FindAllPaged(context.Background(), page))
	require.NoError(t, err)
	assert.Len(t, list, 2)
	q.AssertExpectations(t)
}

func TestCategoriaRepo_FindAllPaged_OrdenInvalidoNoConsulta(t *testing.T) {
	repo, q := newCategoriaRepo()
	page := &repository.Pageable{Size: 5, Sort: []repository.Order{{Property: "nome; DROP TABLE categoria"}}}

	_, err := repository.Collect(repo.FindAllPaged(context.Background(), page))
	assert.ErrorIs(t, err, domain.ErrInvalidSort)
	q.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
}

func TestCategoriaRepo_FindAllPaged_PaginaDesbordadaNoConsulta(t *testing.T) {
	repo, q := newCategoriaRepo()
	page := &repository.Pageable{Page: math.MaxInt / 10, Size: 20}

	_, err := repository.Collect(repo.FindAllPaged(context.Background(), page))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	q.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
}

func TestCategoriaRepo_CorteAnticipadoCierraFilas(t *testing.T) {
	repo, q := newCategoriaRepo()
	rows := newRows(categoriaCols, []any{int64(1), "A"}, []any{int64(2), "B"}, []any{int64(3), "C"})
	q.On("Query", categoriaSelect, mock.Anything).Return(rows, nil)

	seen := 0
	for c, err := range repo.FindAll(context.Background()) {
		require.NoError(t, err)
		require.NotNil(t, c)
		seen++
		break
	}
	assert.Equal(t, 1, seen)
	assert.True(t, rows.closed)
}

func TestCategoriaRepo_ErrorDeConversionSePropaga(t *testing.T) {
	repo, q := newCategoriaRepo()
	rows := newRows(categoriaCols, []any{int64(1), "A"}, []any{"dos", "B"})
	q.On("Query", categoriaSelect, mock.Anything).Return(rows, nil)

	list, err := repository.Collect(repo.FindAll(context.Background()))
	assert.ErrorIs(t, err, domain.ErrConversion)
	assert.Nil(t, list)
	assert.True(t, rows.closed)
}

func TestCategoriaRepo_ErrorDeConsultaSePropaga(t *testing.T) {
	repo, q := newCategoriaRepo()
	boom := errors.New("syntax error")
	q.On("Query", categoriaSelect, mock.Anything).Return(nil, boom)

	_, err := repository.Collect(repo.FindAll(context.Background()))
	assert.ErrorIs(t, err, boom)
}

func TestCategoriaRepo_ErrorAlFinalDelCursor(t *testing.T) {
	repo, q := newCategoriaRepo()
	rows := newRows(categoriaCols, []any{int64(1), "A"})
	rows.err = errors.New("conexión perdida")
	q.On("Query", categoriaSelect, mock.Anything).Return(rows, nil)

	_, err := repository.Collect(repo.FindAll(context.Background()))
	assert.ErrorIs(t, err, rows.err)
}

func TestCategoriaRepo_SaveInserta(t *testing.T) {
	repo, q := newCategoriaRepo()
	q.On("QueryRow", "INSERT INTO categoria (nome) VALUES ($1) RETURNING id", []any{"Bebidas"}).
		Return(fakeRow{vals: []any{int64(7)}})

	c, err := repo.Save(context.Background(), &entity.Categoria{Nome: "Bebidas"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)
	assert.False(t, c.IsNew())
}

func TestCategoriaRepo_SaveActualiza(t *testing.T) {
	repo, q := newCategoriaRepo()
	q.On("Exec", "UPDATE categoria SET nome = $2 WHERE id = $1", []any{int64(7), "Bebidas frias"}).
		Return(pgconn.NewCommandTag("UPDATE 1"), nil)

	c, err := repo.Save(context.Background(), &entity.Categoria{ID: 7, Nome: "Bebidas frias"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)
	q.AssertExpectations(t)
}

func TestCategoriaRepo_SaveActualizaInexistente(t *testing.T) {
	repo, q := newCategoriaRepo()
	q.On("Exec", "UPDATE categoria SET nome = $2 WHERE id = $1", mock.Anything).
		Return(pgconn.NewCommandTag("UPDATE 0"), nil)

	_, err := repo.Save(context.Background(), &entity.Categoria{ID: 70, Nome: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoriaRepo_DeleteIdempotente(t *testing.T) {
	repo, q := newCategoriaRepo()
	q.On("Exec", "DELETE FROM categoria WHERE id = $1", []any{int64(404)}).
		Return(pgconn.NewCommandTag("DELETE 0"), nil)

	assert.NoError(t, repo.DeleteByID(context.Background(), 404))
}

func TestCategoriaRepo_DeleteReferenciada(t *testing.T) {
	repo, q := newCategoriaRepo()
	q.On("Exec", "DELETE FROM categoria WHERE id = $1", []any{int64(1)}).
		Return(pgconn.CommandTag{}, &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	err := repo.DeleteByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCategoriaRepo_CountYExists(t *testing.T) {
	repo, q := newCategoriaRepo()
	q.On("QueryRow", "SELECT COUNT(*) FROM categoria", mock.Anything).Return(fakeRow{vals: []any{int64(3)}})
	q.On("QueryRow", "SELECT EXISTS (SELECT 1 FROM categoria WHERE id = $1)", []any{int64(1)}).
		Return(fakeRow{vals: []any{true}})

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	ok, err := repo.ExistsByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCategoriaRepo_CountError(t *testing.T) {
	repo, q := newCategoriaRepo()
	boom := errors.New("timeout")
	q.On("QueryRow", "SELECT COUNT(*) FROM categoria", mock.Anything).Return(fakeRow{err: boom})

	_, err := repo.Count(context.Background())
	assert.ErrorIs(t, err, boom)
}
