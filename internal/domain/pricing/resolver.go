package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/minhlahunday/dealer-portal-api/internal/domain/entity"
)

// Cadena de prioridad de los campos de precio embebidos en un add-on.
// Primer campo que coaccione a un número > 0 gana; el catálogo de referencia
// es el siguiente escalón y 0 el último recurso.
var priceFieldOrder = []string{"price", "unit_price", "amount", "value", "cost"}

// Resolve determina el precio unitario efectivo y la cantidad de un add-on.
// Nunca falla: siempre devuelve un par concreto (precio >= 0, cantidad >= 1).
//
// Cantidad: presente y estrictamente > 0 se respeta; ausente, nula o 0 se
// normaliza a 1. El backend no distingue "cero explícito" de "sin dato",
// así que un 0 se trata como no informado (decisión de producto heredada,
// ver DESIGN.md).
func Resolve(addOn entity.LineAddOn, catalog entity.CatalogIndex) (decimal.Decimal, int64) {
	qty := int64(1)
	if addOn.Quantity != nil && *addOn.Quantity > 0 {
		qty = *addOn.Quantity
	}

	for _, field := range priceFieldOrder {
		v, ok := addOn.PriceFields[field]
		if !ok {
			continue
		}
		if p, ok := toDecimal(v); ok && p.GreaterThan(decimal.Zero) {
			return p, qty
		}
	}

	if addOn.RefID != "" {
		if p, ok := catalog.Price(addOn.RefID); ok {
			return p, qty
		}
	}

	return decimal.Zero, qty
}

// ResolveInto resuelve y adjunta los campos al add-on (para display).
// Es la misma resolución de Resolve; la tabla de facturación y el total
// independiente deben coincidir siempre.
func ResolveInto(addOn *entity.LineAddOn, catalog entity.CatalogIndex) {
	addOn.ResolvedPrice, addOn.ResolvedQuantity = Resolve(*addOn, catalog)
}
