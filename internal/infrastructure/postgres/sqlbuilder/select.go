package sqlbuilder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/join-catalogo/internal/domain"
)

// Join LEFT OUTER JOIN de la tabla padre sobre from.ForeignKey = padre.PK.
// Las filas hijas sin padre se conservan con columnas del padre en NULL.
type Join struct {
	Parent     Table
	ForeignKey string
}

// Condition filtro de igualdad. Solo se admite igualdad sobre la clave primaria
// de la tabla principal; cualquier otra columna se rechaza al renderizar.
type Condition struct {
	Column string
	Value  any
}

// Eq construye una condición de igualdad.
func Eq(column string, value any) Condition {
	return Condition{Column: column, Value: value}
}

// OrderTerm término de ORDER BY sobre una columna de la tabla principal.
type OrderTerm struct {
	Column string
	Desc   bool
}

// parentFilter filtro sobre la FK del join: igualdad con el ID del padre o IS NULL.
type parentFilter struct {
	id *int64
}

// Select representación tipada de un SELECT.
type Select struct {
	from    Table
	join    *Join
	where   *Condition
	parent  *parentFilter
	orderBy []OrderTerm
	limit   int
	offset  int
	paged   bool
}

// From inicia un SELECT sobre la tabla dada proyectando todas sus columnas.
func From(t Table) *Select {
	return &Select{from: t}
}

// Table devuelve la tabla principal.
func (s *Select) Table() Table {
	return s.from
}

// LeftOuterJoin agrega la tabla padre unida por la FK de la tabla principal.
func (s *Select) LeftOuterJoin(parent Table, foreignKey string) *Select {
	s.join = &Join{Parent: parent, ForeignKey: foreignKey}
	return s
}

// Where fija el filtro.
func (s *Select) Where(c Condition) *Select {
	s.where = &c
	return s
}

// WhereParent filtra por la FK del join declarado: igual a id, o IS NULL si id es nil.
// Es la única navegación de relación admitida además de la igualdad por PK.
func (s *Select) WhereParent(id *int64) *Select {
	f := &parentFilter{}
	if id != nil {
		v := *id
		f.id = &v
	}
	s.parent = f
	return s
}

// OrderBy agrega términos de orden.
func (s *Select) OrderBy(terms ...OrderTerm) *Select {
	s.orderBy = append(s.orderBy, terms...)
	return s
}

// Limit fija LIMIT/OFFSET.
func (s *Select) Limit(limit, offset int) *Select {
	s.limit, s.offset, s.paged = limit, offset, true
	return s
}

// Clone copia superficial para reutilizar una base entre consultas.
func (s *Select) Clone() *Select {
	c := *s
	c.orderBy = append([]OrderTerm(nil), s.orderBy...)
	if s.where != nil {
		w := *s.where
		c.where = &w
	}
	return &c
}

// Render produce el texto SQL parametrizado y sus argumentos.
// Orden fijo: proyección, FROM, JOIN, WHERE, ORDER BY, LIMIT/OFFSET.
func (s *Select) Render() (string, []any, error) {
	var (
		b    strings.Builder
		args []any
	)
	cols := s.from.Projection()
	if s.join != nil {
		if _, ok := s.from.Column(s.join.ForeignKey); !ok {
			return "", nil, fmt.Errorf("sqlbuilder: FK %q no declarada en %s", s.join.ForeignKey, s.from.Name)
		}
		cols = append(cols, s.join.Parent.Projection()...)
	}

	b.WriteString("SELECT ")
	for i, c := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s.%s AS %s", c.Table, c.Column, c.As)
	}
	fmt.Fprintf(&b, " FROM %s %s", s.from.Name, s.from.Alias)

	if s.join != nil {
		p := s.join.Parent
		fmt.Fprintf(&b, " LEFT OUTER JOIN %s %s ON %s.%s = %s.%s",
			p.Name, p.Alias, s.from.Alias, s.join.ForeignKey, p.Alias, p.PrimaryKey())
	}

	var preds []string
	if s.where != nil {
		if s.where.Column != s.from.PrimaryKey() {
			return "", nil, fmt.Errorf("%w: igualdad sobre %q (solo %s.%s)",
				domain.ErrUnsupportedFilter, s.where.Column, s.from.Name, s.from.PrimaryKey())
		}
		args = append(args, s.where.Value)
		preds = append(preds, fmt.Sprintf("%s.%s = $%d", s.from.Alias, s.where.Column, len(args)))
	}
	if s.parent != nil {
		if s.join == nil {
			return "", nil, fmt.Errorf("%w: filtro por padre sin join", domain.ErrUnsupportedFilter)
		}
		if s.parent.id == nil {
			preds = append(preds, fmt.Sprintf("%s.%s IS NULL", s.from.Alias, s.join.ForeignKey))
		} else {
			args = append(args, *s.parent.id)
			preds = append(preds, fmt.Sprintf("%s.%s = $%d", s.from.Alias, s.join.ForeignKey, len(args)))
		}
	}
	if len(preds) > 0 {
		b.WriteString(" WHERE " + strings.Join(preds, " AND "))
	}

	if len(s.orderBy) > 0 {
		b.WriteString(" ORDER BY ")
		for i, o := range s.orderBy {
			if _, ok := s.from.Column(o.Column); !ok {
				return "", nil, fmt.Errorf("%w: columna %q", domain.ErrInvalidSort, o.Column)
			}
			if i > 0 {
				b.WriteString(", ")
			}
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			fmt.Fprintf(&b, "%s.%s %s", s.from.Alias, o.Column, dir)
		}
	}

	if s.paged {
		args = append(args, s.limit, s.offset)
		b.WriteString(" LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args)))
	}
	return b.String(), args, nil
}
