package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/join-catalogo/internal/application/dto"
)

// CategoriaHandler maneja las peticiones HTTP para Categoria.
type CategoriaHandler struct {
	svc   CategoriaService
	pager Paginator
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(svc CategoriaService, pager Paginator) *CategoriaHandler {
	return &CategoriaHandler{svc: svc, pager: pager}
}

// Create godoc
// @Summary      Crear categoria
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriaDTO  true  "Datos de la categoria"
// @Success      201   {object}  dto.CategoriaDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoriaDTO
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.ID != nil {
		return badRequest(c, "ID_EXISTS", "una categoria nueva no puede tener id")
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Location("/api/categorias/" + formatID(out.ID))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar categoria
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la categoria"
// @Param        body  body  dto.CategoriaDTO  true  "Datos de la categoria"
// @Success      200   {object}  dto.CategoriaDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [put]
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.CategoriaDTO
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
// @Summary      Actualizar parcialmente categoria
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la categoria"
// @Param        body  body  dto.CategoriaDTO  true  "Campos a actualizar"
// @Success      200   {object}  dto.CategoriaDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [patch]
func (h *CategoriaHandler) PartialUpdate(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.CategoriaDTO
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
// @Summary      Listar categorias
// @Tags         categorias
// @Produce      json
// @Param        page  query  int     false  "Página (base 0)"  default(0)
// @Param        size  query  int     false  "Tamaño de página"
// @Param        sort  query  string  false  "prop,asc|desc"
// @Success      200   {object}  dto.CategoriaListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categorias [get]
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener categoria por ID
// @Tags         categorias
// @Produce      json
// @Param        id   path  int  true  "ID de la categoria"
// @Success      200  {object}  dto.CategoriaDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [get]
func (h *CategoriaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	out, err := h.svc.FindOne(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoria no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoria
// @Tags         categorias
// @Param        id   path  int  true  "ID de la categoria"
// @Success      204
// @Router       /api/categorias/{id} [delete]
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
