// Package sqlbuilder construye sentencias SQL a partir de una representación tipada
// (tabla, columnas con alias, join, filtro, orden y paginación) y las renderiza
// como texto parametrizado para PostgreSQL.
//
// Los identificadores provienen siempre de metadatos declarados en código; los
// valores de usuario viajan solo como argumentos ($n).
package sqlbuilder

import (
	"fmt"
)

// Column columna declarada de una tabla. Property es el nombre de la propiedad
// de la entidad (se usa para validar campos de ordenamiento).
type Column struct {
	Name     string
	Property string
}

// Table metadatos de una tabla con alias. La primera columna es la clave primaria.
type Table struct {
	Name    string
	Alias   string
	Columns []Column
}

// NewTable valida identificadores y construye la tabla. Entra en pánico ante
// metadatos inválidos: se declaran una sola vez al iniciar.
func NewTable(name, alias string, columns ...Column) Table {
	if len(columns) == 0 {
		panic(fmt.Sprintf("sqlbuilder: tabla %s sin columnas", name))
	}
	for _, id := range append([]string{name, alias}, columnNames(columns)...) {
		if !validIdentifier(id) {
			panic(fmt.Sprintf("sqlbuilder: identificador inválido %q", id))
		}
	}
	return Table{Name: name, Alias: alias, Columns: columns}
}

// PrimaryKey devuelve la columna de identidad.
func (t Table) PrimaryKey() string {
	return t.Columns[0].Name
}

// Column busca una columna declarada por nombre.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnForProperty resuelve una propiedad (o nombre de columna) a su columna declarada.
func (t Table) ColumnForProperty(prop string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Property == prop || c.Name == prop {
			return c, true
		}
	}
	return Column{}, false
}

// Projection lista ordenada de (columna, nombre en el result set) de la tabla.
// Es el único lugar donde se deriva el alias <tabla>_<columna>.
func (t Table) Projection() Projection {
	p := make(Projection, 0, len(t.Columns))
	for _, c := range t.Columns {
		p = append(p, ProjectedColumn{Table: t.Alias, Column: c.Name, As: t.Alias + "_" + c.Name})
	}
	return p
}

// ProjectedColumn columna seleccionada con su alias en el resultado.
type ProjectedColumn struct {
	Table  string
	Column string
	As     string
}

// Projection columnas seleccionadas de una tabla, en orden de declaración.
type Projection []ProjectedColumn

// As devuelve el nombre en el result set de una columna de la proyección.
func (p Projection) As(column string) (string, bool) {
	for _, c := range p {
		if c.Column == column {
			return c.As, true
		}
	}
	return "", false
}

func columnNames(cols []Column) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.Name)
	}
	return out
}

// validIdentifier acepta [a-z_][a-z0-9_]*.
func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
