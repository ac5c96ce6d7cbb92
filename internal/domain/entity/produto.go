package entity

import "fmt"

// Produto pertenece opcionalmente a una Categoria.
// categoriaID es la FK persistida; categoria es la referencia en memoria, poblada solo por carga eager.
// Ambos se modifican únicamente vía SetCategoria / SetCategoriaID para que nunca discrepen.
type Produto struct {
	ID         int64
	Nome       string
	Quantidade int32

	categoriaID *int64
	categoria   *Categoria
}

// IsNew indica si el producto aún no fue persistido.
func (p *Produto) IsNew() bool {
	return p == nil || p.ID == 0
}

// Equal compara por identidad. Dos entidades sin ID nunca son iguales.
func (p *Produto) Equal(other *Produto) bool {
	if p.IsNew() || other.IsNew() {
		return false
	}
	return p.ID == other.ID
}

// Categoria devuelve la categoría cargada en memoria (nil si no se cargó o no existe).
func (p *Produto) Categoria() *Categoria {
	return p.categoria
}

// SetCategoria asigna la relación y sincroniza la FK con el ID de la categoría (nil la limpia).
func (p *Produto) SetCategoria(c *Categoria) {
	p.categoria = c
	if c == nil {
		p.categoriaID = nil
		return
	}
	id := c.ID
	p.categoriaID = &id
}

// CategoriaID devuelve la FK (nil si el producto no tiene categoría).
func (p *Produto) CategoriaID() *int64 {
	if p.categoriaID == nil {
		return nil
	}
	id := *p.categoriaID
	return &id
}

// SetCategoriaID asigna la FK sin hidratar la relación (relación lazy).
// Si la categoría cargada no corresponde al nuevo ID, se descarta.
func (p *Produto) SetCategoriaID(id *int64) {
	if id == nil {
		p.categoriaID = nil
		p.categoria = nil
		return
	}
	v := *id
	p.categoriaID = &v
	if p.categoria != nil && p.categoria.ID != v {
		p.categoria = nil
	}
}

func (p *Produto) String() string {
	if p == nil {
		return "Produto{}"
	}
	cat := "null"
	if p.categoriaID != nil {
		cat = fmt.Sprintf("%d", *p.categoriaID)
	}
	return fmt.Sprintf("Produto{id=%d, nome='%s', quantidade=%d, categoriaId=%s}", p.ID, p.Nome, p.Quantidade, cat)
}
