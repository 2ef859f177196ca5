package dto

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ErrorResponse é o corpo devolvido em qualquer falha da API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse monta o corpo de erro; details costuma ser o texto do erro original
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message, Details: details}
}

// ActionResponse confirma uma operação que não devolve um recurso
type ActionResponse struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func NewActionResponse(message string, data map[string]any) ActionResponse {
	return ActionResponse{Message: message, Data: data}
}

// PageQuery traz a paginação da query string. Zero significa "usar o padrão".
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1"`
}

// Normalize preenche os padrões e limita o tamanho da página a maxPageSize
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	switch {
	case q.PageSize < 1:
		q.PageSize = defaultPageSize
	case q.PageSize > maxPageSize:
		q.PageSize = maxPageSize
	}
	return q
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// PageMeta acompanha as listagens paginadas
type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPageMeta calcula o total de páginas para a consulta já normalizada.
// Uma listagem vazia tem zero páginas.
func NewPageMeta(total int, q PageQuery) PageMeta {
	meta := PageMeta{Total: total, Page: q.Page, PageSize: q.PageSize}
	if q.PageSize > 0 {
		meta.TotalPages = (total + q.PageSize - 1) / q.PageSize
	}
	return meta
}
