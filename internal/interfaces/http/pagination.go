package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/join-catalogo/internal/application/dto"
	"github.com/jhoicas/join-catalogo/internal/domain/repository"
)

// HeaderTotalCount cabecera con el total de filas del listado.
const HeaderTotalCount = "X-Total-Count"

// Paginator lee page/size/sort de la query y escribe las cabeceras de paginación.
type Paginator struct {
	DefaultSize int
	MaxSize     int
}

// Parse construye el Pageable. size fuera de rango se acota a [1, MaxSize].
func (p Paginator) Parse(c *fiber.Ctx) (*repository.Pageable, error) {
	req := dto.PageRequest{
		Page: c.QueryInt("page", 0),
		Size: c.QueryInt("size", p.DefaultSize),
	}
	for _, raw := range c.Context().QueryArgs().PeekMulti("sort") {
		req.Sort = append(req.Sort, string(raw))
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	page := &repository.Pageable{Page: req.Page, Size: req.Size}
	if page.Size == 0 {
		page.Size = p.DefaultSize
	}
	if p.MaxSize > 0 && page.Size > p.MaxSize {
		page.Size = p.MaxSize
	}
	for _, raw := range req.Sort {
		o, err := repository.ParseOrder(raw)
		if err != nil {
			return nil, err
		}
		page.Sort = append(page.Sort, o)
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}

// WriteHeaders escribe X-Total-Count y Link (RFC 5988) con first, prev, next y last.
func (p Paginator) WriteHeaders(c *fiber.Ctx, page *repository.Pageable, total int64) {
	c.Set(HeaderTotalCount, strconv.FormatInt(total, 10))

	totalPages := 1
	if page.Size > 0 && total > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}
	links := make([]string, 0, 4)
	if page.Page < totalPages-1 {
		links = append(links, pageLink(c, page.Page+1, page.Size, "next"))
	}
	if page.Page > 0 {
		links = append(links, pageLink(c, page.Page-1, page.Size, "prev"))
	}
	links = append(links,
		pageLink(c, totalPages-1, page.Size, "last"),
		pageLink(c, 0, page.Size, "first"),
	)
	c.Set(fiber.HeaderLink, strings.Join(links, ","))
}

// pageLink conserva los demás parámetros de la petición (sort incluido) y reemplaza page y size.
func pageLink(c *fiber.Ctx, page, size int, rel string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<%s?page=%d&size=%d", c.Path(), page, size)
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		key := string(k)
		if key == "page" || key == "size" {
			return
		}
		b.WriteString("&" + queryEscape(key) + "=" + queryEscape(string(v)))
	})
	fmt.Fprintf(&b, `>; rel="%s"`, rel)
	return b.String()
}

// queryEscape escapa como url.QueryEscape pero deja la coma de "prop,dir" legible.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%2C", ",")
}
