package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/join-catalogo/internal/application/dto"
)

// ProdutoHandler maneja las peticiones HTTP para Produto. Las lecturas incluyen la categoría.
type ProdutoHandler struct {
	svc   ProdutoService
	pager Paginator
}

// NewProdutoHandler construye el handler.
func NewProdutoHandler(svc ProdutoService, pager Paginator) *ProdutoHandler {
	return &ProdutoHandler{svc: svc, pager: pager}
}

// Create godoc
// @Summary      Crear produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProdutoDTO  true  "Datos del produto"
// @Success      201   {object}  dto.ProdutoDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "categoria inexistente"
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProdutoDTO
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.ID != nil {
		return badRequest(c, "ID_EXISTS", "un produto nuevo no puede tener id")
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Location("/api/produtos/" + formatID(out.ID))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del produto"
// @Param        body  body  dto.ProdutoDTO  true  "Datos del produto"
// @Success      200   {object}  dto.ProdutoDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.ProdutoDTO
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if e := bodyIDError(in.ID, id); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PartialUpdate godoc
// @Summary      Actualizar parcialmente produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del produto"
// @Param        body  body  dto.ProdutoDTO  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProdutoDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [patch]
func (h *ProdutoHandler) PartialUpdate(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.ProdutoDTO
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if e := bodyIDError(in.ID, id); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.svc.PartialUpdate(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar produtos
// @Tags         produtos
// @Produce      json
// @Param        page  query  int     false  "Página (base 0)"  default(0)
// @Param        size  query  int     false  "Tamaño de página"
// @Param        sort  query  string  false  "prop,asc|desc"
// @Success      200   {object}  dto.ProdutoListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	page, err := h.pager.Parse(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.FindAll(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	h.pager.WriteHeaders(c, page, out.Total)
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener produto por ID
// @Tags         produtos
// @Produce      json
// @Param        id   path  int  true  "ID del produto"
// @Success      200  {object}  dto.ProdutoDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	out, err := h.svc.FindOne(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar produto
// @Tags         produtos
// @Param        id   path  int  true  "ID del produto"
// @Success      204
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
