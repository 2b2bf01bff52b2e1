package dto

import "github.com/shopspring/decimal"

// QuotationSummary fila del listado GET /api/quotations.
type QuotationSummary struct {
	ID          string           `json:"id"`
	Code        string           `json:"code"`
	Status      string           `json:"status"`
	ValidUntil  string           `json:"valid_until,omitempty"` // RFC 3339
	ItemCount   int              `json:"item_count"`
	FinalAmount *decimal.Decimal `json:"final_amount,omitempty"` // cifra del backend, solo display
}

// QuotationListResponse respuesta paginada del listado.
type QuotationListResponse struct {
	Quotations []QuotationSummary `json:"quotations"`
	Pagination PageResponse       `json:"pagination"`
}

// BillingRowDTO línea de la tabla de facturación derivada.
type BillingRowDTO struct {
	Sequence       int             `json:"sequence"`
	Label          string          `json:"label"`
	Unit           string          `json:"unit"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	LineTotal      decimal.Decimal `json:"line_total"`
	LineTotalText  string          `json:"line_total_text"` // formateado en VND
}

// QuotationDetailResponse detalle con tabla de facturación para
// GET /api/quotations/:id. GrandTotal siempre es el recalculado por el
// agregador; el final_amount del backend viaja aparte como referencia.
type QuotationDetailResponse struct {
	ID             string           `json:"id"`
	Code           string           `json:"code"`
	Status         string           `json:"status"`
	ValidUntil     string           `json:"valid_until,omitempty"`
	CanCancel      bool             `json:"can_cancel"`
	CanConvert     bool             `json:"can_convert"`
	Rows           []BillingRowDTO  `json:"rows"`
	GrandTotal     decimal.Decimal  `json:"grand_total"`
	GrandTotalText string           `json:"grand_total_text"`
	BackendAmount  *decimal.Decimal `json:"backend_amount,omitempty"`
}

// EligibilityResponse respuesta de GET /api/quotations/:id/eligibility.
// Reason va vacío cuando la acción procede.
type EligibilityResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	CanCancel     bool   `json:"can_cancel"`
	CancelReason  string `json:"cancel_reason,omitempty"`
	CanConvert    bool   `json:"can_convert"`
	ConvertReason string `json:"convert_reason,omitempty"`
}

// CancelResponse respuesta de POST /api/quotations/:id/cancel.
type CancelResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"` // "canceled" tras un cancel exitoso
}
