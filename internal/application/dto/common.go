package dto

// PageRequest paginación para listados (page base 0, sort "prop,asc|desc").
type PageRequest struct {
	Page int      `query:"page" validate:"min=0"`
	Size int      `query:"size" validate:"min=0"`
	Sort []string `query:"sort"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
