package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización reportados por el backend dealer-hub.
// El backend histórico escribe "canceled" o "cancelled" según la versión;
// ambos significan lo mismo. Un status vacío se trata como "valid" para
// cancelación, pero NO para conversión (ver domain/quotation).
const (
	StatusValid      = "valid"
	StatusExpired    = "expired"
	StatusCanceled   = "canceled"
	StatusCancelled  = "cancelled" // alias histórico
	StatusInvalid    = "invalid"
	StatusUsed       = "used"
	StatusConverted  = "converted"
)

// Quotation cotización de venta tal como la entrega el dealer-hub.
// El portal solo la lee y proyecta; la única mutación permitida es marcar
// Status como canceled tras un cancel exitoso en el backend.
type Quotation struct {
	ID         string
	Code       string
	Status     string // vacío cuando el backend no lo envía
	ValidUntil *time.Time
	Items      []QuotationItem

	// FinalAmount es el total que reporta el backend. Solo para display:
	// el total aritmético siempre se recalcula con el agregador.
	FinalAmount *decimal.Decimal
}

// QuotationItem línea de vehículo dentro de una cotización, con sus add-ons.
type QuotationItem struct {
	VehicleRef  string
	VehicleName string
	Color       string
	Quantity    int64

	// VehiclePrice es el precio unitario principal; UnitPrice es el campo
	// alterno que algunas versiones del backend envían en su lugar.
	VehiclePrice *decimal.Decimal
	UnitPrice    *decimal.Decimal

	Accessories []LineAddOn
	Options     []LineAddOn
}

// LineAddOn accesorio u opción adjunta a una línea de vehículo.
// PriceFields conserva los campos de precio crudos del backend
// (price, unit_price, amount, value, cost); el resolver de precios
// los recorre en orden fijo con accessors tipados.
type LineAddOn struct {
	RefID    string
	Name     string
	Quantity *int64 // nil cuando el backend no lo envía

	PriceFields map[string]any

	// Campos resueltos por el resolver; tras la resolución ResolvedPrice
	// es >= 0 y ResolvedQuantity >= 1 siempre.
	ResolvedPrice    decimal.Decimal
	ResolvedQuantity int64
}
