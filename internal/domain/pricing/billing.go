package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/minhlahunday/dealer-portal-api/internal/domain/entity"
)

// BuildBillingTable proyecta una cotización en su tabla de facturación plana
// y el gran total. Por cada ítem en orden: la fila del vehículo, luego sus
// accesorios en orden, luego sus opciones en orden. Sequence es un contador
// único que arranca en 1 e incrementa por fila emitida, vehículos incluidos.
//
// El total NO sale del final_amount del backend (solo display): se deriva
// recorriendo los ítems con el mismo resolver que arma la tabla, de modo que
// tabla y total no pueden divergir. Cotización sin ítems devuelve tabla
// vacía y total cero, nunca un error.
func BuildBillingTable(q entity.Quotation, accessories, options entity.CatalogIndex) ([]entity.BillingRow, decimal.Decimal) {
	rows := make([]entity.BillingRow, 0)
	total := decimal.Zero
	seq := 0

	emit := func(label, unit string, qty int64, unitPrice decimal.Decimal) {
		seq++
		lineTotal := unitPrice.Mul(decimal.NewFromInt(qty))
		rows = append(rows, entity.BillingRow{
			Sequence:  seq,
			Label:     label,
			Unit:      unit,
			Quantity:  qty,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	for _, item := range q.Items {
		emit(vehicleLabel(item), entity.UnitVehicle, itemQuantity(item), vehicleUnitPrice(item))
		for _, acc := range item.Accessories {
			p, n := Resolve(acc, accessories)
			emit(addOnLabel(acc), entity.UnitPiece, n, p)
		}
		for _, opt := range item.Options {
			p, n := Resolve(opt, options)
			emit(addOnLabel(opt), entity.UnitPiece, n, p)
		}
	}

	return rows, total
}

// GrandTotal recalcula el total recorriendo los ítems de forma independiente
// de la tabla (validación cruzada). Debe coincidir siempre con la suma de
// LineTotal de BuildBillingTable.
func GrandTotal(q entity.Quotation, accessories, options entity.CatalogIndex) decimal.Decimal {
	total := decimal.Zero
	for _, item := range q.Items {
		total = total.Add(vehicleUnitPrice(item).Mul(decimal.NewFromInt(itemQuantity(item))))
		for _, acc := range item.Accessories {
			p, n := Resolve(acc, accessories)
			total = total.Add(p.Mul(decimal.NewFromInt(n)))
		}
		for _, opt := range item.Options {
			p, n := Resolve(opt, options)
			total = total.Add(p.Mul(decimal.NewFromInt(n)))
		}
	}
	return total
}

// vehicleLabel arma la etiqueta: nombre del vehículo más sufijo de color
// cuando está informado.
func vehicleLabel(item entity.QuotationItem) string {
	if item.Color != "" {
		return item.VehicleName + " - " + item.Color
	}
	return item.VehicleName
}

// addOnLabel usa el nombre y cae al ref id cuando el backend no envía nombre.
func addOnLabel(a entity.LineAddOn) string {
	if a.Name != "" {
		return a.Name
	}
	return a.RefID
}

// itemQuantity aplica a la línea de vehículo la misma normalización de
// cantidad que el resolver: > 0 se respeta, lo demás vale 1.
func itemQuantity(item entity.QuotationItem) int64 {
	if item.Quantity > 0 {
		return item.Quantity
	}
	return 1
}

// vehicleUnitPrice precio del vehículo con caída al campo alterno unit_price.
func vehicleUnitPrice(item entity.QuotationItem) decimal.Decimal {
	if item.VehiclePrice != nil {
		return *item.VehiclePrice
	}
	if item.UnitPrice != nil {
		return *item.UnitPrice
	}
	return decimal.Zero
}
