package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/join-catalogo/internal/application/dto"
	"github.com/jhoicas/join-catalogo/internal/domain/repository"
)

type mockCategoriaSvc struct{ mock.Mock }

func (m *mockCategoriaSvc) Create(ctx context.Context, in dto.CategoriaDTO) (*dto.CategoriaDTO, error) {
	a := m.Called(in)
	out, _ := a.Get(0).(*dto.CategoriaDTO)
	return out, a.Error(1)
}

func (m *mockCategoriaSvc) Update(ctx context.Context, id int64, in dto.CategoriaDTO) (*dto.CategoriaDTO, error) {
	a := m.Called(id, in)
	out, _ := a.Get(0).(*dto.CategoriaDTO)
	return out, a.Error(1)
}

func (m *mockCategoriaSvc) PartialUpdate(ctx context.Context, id int64, in dto.CategoriaDTO) (*dto.CategoriaDTO, error) {
	a := m.Called(id, in)
	out, _ := a.Get(0).(*dto.CategoriaDTO)
	return out, a.Error(1)
}

func (m *mockCategoriaSvc) FindAll(ctx context.Context, page *repository.Pageable) (*dto.CategoriaListResponse, error) {
	a := m.Called(page)
	out, _ := a.Get(0).(*dto.CategoriaListResponse)
	return out, a.Error(1)
}

func (m *mockCategoriaSvc) FindOne(ctx context.Context, id int64) (*dto.CategoriaDTO, error) {
	a := m.Called(id)
	out, _ := a.Get(0).(*dto.CategoriaDTO)
	return out, a.Error(1)
}

func (m *mockCategoriaSvc) Delete(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}

type mockProdutoSvc struct{ mock.Mock }

func (m *mockProdutoSvc) Create(ctx context.Context, in dto.ProdutoDTO) (*dto.ProdutoDTO, error) {
	a := m.Called(in)
	out, _ := a.Get(0).(*dto.ProdutoDTO)
	return out, a.Error(1)
}

func (m *mockProdutoSvc) Update(ctx context.Context, id int64, in dto.ProdutoDTO) (*dto.ProdutoDTO, error) {
	a := m.Called(id, in)
	out, _ := a.Get(0).(*dto.ProdutoDTO)
	return out, a.Error(1)
}

func (m *mockProdutoSvc) PartialUpdate(ctx context.Context, id int64, in dto.ProdutoDTO) (*dto.ProdutoDTO, error) {
	a := m.Called(id, in)
	out, _ := a.Get(0).(*dto.ProdutoDTO)
	return out, a.Error(1)
}

func (m *mockProdutoSvc) FindAll(ctx context.Context, page *repository.Pageable) (*dto.ProdutoListResponse, error) {
	a := m.Called(page)
	out, _ := a.Get(0).(*dto.ProdutoListResponse)
	return out, a.Error(1)
}

func (m *mockProdutoSvc) FindOne(ctx context.Context, id int64) (*dto.ProdutoDTO, error) {
	a := m.Called(id)
	out, _ := a.Get(0).(*dto.ProdutoDTO)
	return out, a.Error(1)
}

func (m *mockProdutoSvc) Delete(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}
