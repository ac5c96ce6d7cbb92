package rowmapper

import (
	"fmt"

	"github.com/jhoicas/join-catalogo/internal/infrastructure/postgres/sqlbuilder"
)

// Field par (columna, asignación) de una entidad E.
type Field[E any] struct {
	Column string
	set    func(e *E, row Row, key string) error
}

// Required campo obligatorio de tipo T.
func Required[E any, T Scalar](column string, set func(*E, T)) Field[E] {
	return Field[E]{Column: column, set: func(e *E, row Row, key string) error {
		v, err := FromRow[T](row, key)
		if err != nil {
			return err
		}
		set(e, v)
		return nil
	}}
}

// Optional campo anulable de tipo T; NULL o ausente se asigna como nil.
func Optional[E any, T Scalar](column string, set func(*E, *T)) Field[E] {
	return Field[E]{Column: column, set: func(e *E, row Row, key string) error {
		v, err := NullableFromRow[T](row, key)
		if err != nil {
			return err
		}
		set(e, v)
		return nil
	}}
}

// Mapper lista ordenada de campos de una entidad. El primer campo es la identidad.
type Mapper[E any] struct {
	fields []Field[E]
}

// New construye un mapper con los campos en orden de declaración.
func New[E any](fields ...Field[E]) *Mapper[E] {
	return &Mapper[E]{fields: fields}
}

// Bind resuelve cada campo contra el nombre que tendrá en el result set.
func (m *Mapper[E]) Bind(p sqlbuilder.Projection) (*Bound[E], error) {
	if len(m.fields) == 0 {
		return nil, fmt.Errorf("rowmapper: mapper sin campos")
	}
	keys := make([]string, len(m.fields))
	for i, f := range m.fields {
		as, ok := p.As(f.Column)
		if !ok {
			return nil, fmt.Errorf("rowmapper: columna %q no proyectada", f.Column)
		}
		keys[i] = as
	}
	return &Bound[E]{fields: m.fields, keys: keys}, nil
}

// MustBind como Bind pero entra en pánico; para metadatos declarados al iniciar.
func (m *Mapper[E]) MustBind(p sqlbuilder.Projection) *Bound[E] {
	b, err := m.Bind(p)
	if err != nil {
		panic(err)
	}
	return b
}

// Bound mapper con los nombres de columna ya resueltos.
type Bound[E any] struct {
	fields []Field[E]
	keys   []string
}

// Map construye una entidad completa o falla; nunca devuelve entidades a medias.
func (b *Bound[E]) Map(row Row) (*E, error) {
	e := new(E)
	for i, f := range b.fields {
		if err := f.set(e, row, b.keys[i]); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// MapOptional devuelve nil cuando la identidad es NULL (relación ausente en un LEFT JOIN).
func (b *Bound[E]) MapOptional(row Row) (*E, error) {
	if v, ok := row[b.keys[0]]; !ok || v == nil {
		return nil, nil
	}
	return b.Map(row)
}
