package postgres

import (
	"context"
	"fmt"
	"iter"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/join-catalogo/internal/infrastructure/postgres/rowmapper"
)

// Querier subconjunto común de *pgxpool.Pool y pgx.Tx usado por los repositorios.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanRow lee la fila actual indexada por el nombre de columna del result set.
func scanRow(rows pgx.Rows) (rowmapper.Row, error) {
	vals, err := rows.Values()
	if err != nil {
		return nil, fmt.Errorf("leer fila: %w", err)
	}
	fds := rows.FieldDescriptions()
	row := make(rowmapper.Row, len(fds))
	for i, fd := range fds {
		row[fd.Name] = vals[i]
	}
	return row, nil
}

// stream ejecuta la consulta al iterar y entrega cada fila mapeada.
// Las filas se cierran (y la conexión vuelve al pool) al terminar, ante un error
// o cuando el consumidor corta la iteración.
func stream[E any](ctx context.Context, q Querier, op, sql string, args []any, mapRow func(rowmapper.Row) (*E, error)) iter.Seq2[*E, error] {
	return func(yield func(*E, error) bool) {
		rows, err := q.Query(ctx, sql, args...)
		if err != nil {
			yield(nil, fmt.Errorf("%s: %w", op, err))
			return
		}
		defer rows.Close()
		for rows.Next() {
			row, err := scanRow(rows)
			if err != nil {
				yield(nil, fmt.Errorf("%s: %w", op, err))
				return
			}
			e, err := mapRow(row)
			if err != nil {
				yield(nil, fmt.Errorf("%s: %w", op, err))
				return
			}
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("%s: %w", op, err))
		}
	}
}

// failed secuencia que solo entrega el error dado.
func failed[E any](err error) iter.Seq2[*E, error] {
	return func(yield func(*E, error) bool) {
		yield(nil, err)
	}
}

// first consume como máximo una fila; (nil, nil) si la secuencia está vacía.
func first[E any](seq iter.Seq2[*E, error]) (*E, error) {
	for e, err := range seq {
		return e, err
	}
	return nil, nil
}
