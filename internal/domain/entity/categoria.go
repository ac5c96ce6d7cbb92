package entity

import "fmt"

// Categoria agrupa productos. ID es asignado por la base de datos; 0 indica entidad transitoria.
type Categoria struct {
	ID   int64
	Nome string
}

// IsNew indica si la categoría aún no fue persistida.
func (c *Categoria) IsNew() bool {
	return c == nil || c.ID == 0
}

// Equal compara por identidad. Dos entidades sin ID nunca son iguales.
func (c *Categoria) Equal(other *Categoria) bool {
	if c.IsNew() || other.IsNew() {
		return false
	}
	return c.ID == other.ID
}

func (c *Categoria) String() string {
	if c == nil {
		return "Categoria{}"
	}
	return fmt.Sprintf("Categoria{id=%d, nome='%s'}", c.ID, c.Nome)
}
