package sqlbuilder

import (
	"fmt"
	"strings"
)

// Insert INSERT de todas las columnas salvo la PK, devolviendo la PK asignada.
// Los argumentos se esperan en el orden de declaración de las columnas.
func Insert(t Table) string {
	cols := t.Columns[1:]
	names := make([]string, 0, len(cols))
	params := make([]string, 0, len(cols))
	for i, c := range cols {
		names = append(names, c.Name)
		params = append(params, fmt.Sprintf("$%d", i+1))
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Name, strings.Join(names, ", "), strings.Join(params, ", "), t.PrimaryKey())
}

// Update UPDATE de todas las columnas por PK. $1 es la PK; el resto sigue el orden de declaración.
func Update(t Table) string {
	sets := make([]string, 0, len(t.Columns)-1)
	for i, c := range t.Columns[1:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", c.Name, i+2))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1", t.Name, strings.Join(sets, ", "), t.PrimaryKey())
}

// Delete DELETE por PK.
func Delete(t Table) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.Name, t.PrimaryKey())
}

// Count total de filas sin filtro.
func Count(t Table) string {
	return "SELECT COUNT(*) FROM " + t.Name
}

// Exists existencia por PK.
func Exists(t Table) string {
	return fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", t.Name, t.PrimaryKey())
}
