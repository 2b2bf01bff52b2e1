package dto

// PageRequest paginación para listados (el dealer-hub pagina por página/límite).
type PageRequest struct {
	Page  int    `query:"page"`
	Limit int    `query:"limit" validate:"min=1,max=100"`
	Query string `query:"q"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
}

// PageResponse metadatos de página en respuestas. Total refleja lo que
// reporta el backend cuando su sobre trae paginación; 0 si no la trae.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
