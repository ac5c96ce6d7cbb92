// seed carga un catálogo de categorias y produtos en la base configurada.
//
// Uso: go run ./cmd/seed [ruta/catalogo.csv [charset]]
// El CSV usa ';' con cabecera categoria;produto;quantidade. charset admite utf-8 (por defecto),
// iso-8859-1 y windows-1252. Sin archivo carga un catálogo mínimo de ejemplo.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/join-catalogo/internal/domain/entity"
	"github.com/jhoicas/join-catalogo/internal/domain/repository"
	"github.com/jhoicas/join-catalogo/internal/infrastructure/postgres"
	"github.com/jhoicas/join-catalogo/pkg/config"
	"github.com/jhoicas/join-catalogo/pkg/logger"
)

func main() {
	items, err := loadItems(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	tx := postgres.NewTxRunner(pool, postgres.NewEntityManager())
	var categorias, produtos int
	err = tx.Run(ctx, func(cr repository.CategoriaRepository, pr repository.ProdutoRepository) error {
		var err error
		categorias, produtos, err = seed(ctx, cr, pr, items)
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}
	log.Info().Int("categorias", categorias).Int("produtos", produtos).Msg("catálogo cargado")
}

func loadItems(args []string) ([]itemCatalogo, error) {
	if len(args) == 0 {
		return catalogoPorDefecto, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	charset := ""
	if len(args) > 1 {
		charset = args[1]
	}
	r, err := decoderFor(charset, f)
	if err != nil {
		return nil, err
	}
	return parseCatalogo(r)
}

// seed inserta cada categoría distinta una vez y luego los produtos que la referencian.
func seed(ctx context.Context, cr repository.CategoriaRepository, pr repository.ProdutoRepository, items []itemCatalogo) (int, int, error) {
	byName := make(map[string]*entity.Categoria)
	for _, it := range items {
		if it.Categoria == "" || byName[it.Categoria] != nil {
			continue
		}
		c, err := cr.Save(ctx, &entity.Categoria{Nome: it.Categoria})
		if err != nil {
			return 0, 0, fmt.Errorf("categoria %q: %w", it.Categoria, err)
		}
		byName[it.Categoria] = c
	}
	for _, it := range items {
		p := &entity.Produto{Nome: it.Produto, Quantidade: it.Quantidade}
		p.SetCategoria(byName[it.Categoria])
		if _, err := pr.Save(ctx, p); err != nil {
			return 0, 0, fmt.Errorf("produto %q: %w", it.Produto, err)
		}
	}
	return len(byName), len(items), nil
}
