package usecase_test

import (
	"context"
	"iter"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/join-catalogo/internal/domain/entity"
	"github.com/jhoicas/join-catalogo/internal/domain/repository"
)

func seqOf[E any](items []*E, err error) iter.Seq2[*E, error] {
	return func(yield func(*E, error) bool) {
		for _, it := range items {
			if !yield(it, nil) {
				return
			}
		}
		if err != nil {
			yield(nil, err)
		}
	}
}

// MockCategoriaRepo es un mock de repository.CategoriaRepository.
type MockCategoriaRepo struct {
	mock.Mock
}

func (m *MockCategoriaRepo) FindByID(ctx context.Context, id int64) (*entity.Categoria, error) {
	a := m.Called(id)
	c, _ := a.Get(0).(*entity.Categoria)
	return c, a.Error(1)
}

func (m *MockCategoriaRepo) FindAll(ctx context.Context) iter.Seq2[*entity.Categoria, error] {
	return m.FindAllPaged(ctx, nil)
}

func (m *MockCategoriaRepo) FindAllPaged(ctx context.Context, page *repository.Pageable) iter.Seq2[*entity.Categoria, error] {
	a := m.Called(page)
	items, _ := a.Get(0).([]*entity.Categoria)
	return seqOf(items, a.Error(1))
}

func (m *MockCategoriaRepo) Save(ctx context.Context, c *entity.Categoria) (*entity.Categoria, error) {
	a := m.Called(c)
	saved, _ := a.Get(0).(*entity.Categoria)
	return saved, a.Error(1)
}

func (m *MockCategoriaRepo) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockCategoriaRepo) Count(ctx context.Context) (int64, error) {
	a := m.Called()
	return a.Get(0).(int64), a.Error(1)
}

func (m *MockCategoriaRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	a := m.Called(id)
	return a.Bool(0), a.Error(1)
}

// MockProdutoRepo es un mock de repository.ProdutoRepository.
type MockProdutoRepo struct {
	mock.Mock
}

func (m *MockProdutoRepo) FindByID(ctx context.Context, id int64) (*entity.Produto, error) {
	a := m.Called(id)
	p, _ := a.Get(0).(*entity.Produto)
	return p, a.Error(1)
}

func (m *MockProdutoRepo) FindAll(ctx context.Context) iter.Seq2[*entity.Produto, error] {
	return m.FindAllPaged(ctx, nil)
}

func (m *MockProdutoRepo) FindAllPaged(ctx context.Context, page *repository.Pageable) iter.Seq2[*entity.Produto, error] {
	a := m.Called(page)
	items, _ := a.Get(0).([]*entity.Produto)
	return seqOf(items, a.Error(1))
}

func (m *MockProdutoRepo) FindOneWithEagerRelationships(ctx context.Context, id int64) (*entity.Produto, error) {
	return m.FindByID(ctx, id)
}

func (m *MockProdutoRepo) FindAllWithEagerRelationships(ctx context.Context, page *repository.Pageable) iter.Seq2[*entity.Produto, error] {
	return m.FindAllPaged(ctx, page)
}

func (m *MockProdutoRepo) FindByCategoria(ctx context.Context, categoriaID int64) iter.Seq2[*entity.Produto, error] {
	a := m.Called(categoriaID)
	items, _ := a.Get(0).([]*entity.Produto)
	return seqOf(items, a.Error(1))
}

func (m *MockProdutoRepo) FindAllWhereCategoriaIsNull(ctx context.Context) iter.Seq2[*entity.Produto, error] {
	a := m.Called()
	items, _ := a.Get(0).([]*entity.Produto)
	return seqOf(items, a.Error(1))
}

func (m *MockProdutoRepo) Save(ctx context.Context, p *entity.Produto) (*entity.Produto, error) {
	a := m.Called(p)
	saved, _ := a.Get(0).(*entity.Produto)
	return saved, a.Error(1)
}

func (m *MockProdutoRepo) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockProdutoRepo) Count(ctx context.Context) (int64, error) {
	a := m.Called()
	return a.Get(0).(int64), a.Error(1)
}

func (m *MockProdutoRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	a := m.Called(id)
	return a.Bool(0), a.Error(1)
}

// fakeTx ejecuta fn directamente con los mocks y cuenta las invocaciones.
type fakeTx struct {
	categorias repository.CategoriaRepository
	produtos   repository.ProdutoRepository
	runs       int
}

func (f *fakeTx) Run(ctx context.Context, fn func(repository.CategoriaRepository, repository.ProdutoRepository) error) error {
	f.runs++
	return fn(f.categorias, f.produtos)
}
