package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/join-catalogo/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoriaSvc    CategoriaService
	ProdutoSvc      ProdutoService
	Log             *logger.Logger
	DefaultPageSize int
	MaxPageSize     int
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}

	pager := Paginator{DefaultSize: deps.DefaultPageSize, MaxSize: deps.MaxPageSize}
	api := app.Group("/api")

	categorias := api.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaSvc, pager)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Patch("/:id", categoriaHandler.PartialUpdate)
	categorias.Delete("/:id", categoriaHandler.Delete)

	produtos := api.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoSvc, pager)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Patch("/:id", produtoHandler.PartialUpdate)
	produtos.Delete("/:id", produtoHandler.Delete)
}
