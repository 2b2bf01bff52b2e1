package entity

import "github.com/shopspring/decimal"

// Unidades fijas de la tabla de facturación.
const (
	UnitVehicle = "vehículo"
	UnitPiece   = "unidad"
)

// BillingRow una línea imprimible de la tabla de precios derivada.
// Es una proyección pura de la cotización: se recalcula en cada vista
// y nunca se persiste ni se cachea entre cotizaciones.
type BillingRow struct {
	Sequence  int
	Label     string
	Unit      string
	Quantity  int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}
