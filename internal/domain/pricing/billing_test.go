package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhlahunday/dealer-portal-api/internal/domain/entity"
	"github.com/minhlahunday/dealer-portal-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del agregador: numeración corrida, orden vehículo → accesorios →
// opciones, y la propiedad de consistencia triple (suma de filas == total de
// la tabla == recálculo independiente). Si esas tres cifras divergen hay un
// bug de resolución, no de redondeo.
// ──────────────────────────────────────────────────────────────────────────────

func dec(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// Escenario de referencia: un vehículo de 500000000 y un accesorio de
// 1000000 x2 → 2 filas y gran total 502000000.
func TestBuildBillingTable_VehiculoMasAccesorio(t *testing.T) {
	q := entity.Quotation{
		Items: []entity.QuotationItem{{
			VehicleName:  "VF 8 Plus",
			VehiclePrice: dec(500000000),
			Quantity:     1,
			Accessories: []entity.LineAddOn{{
				Name:        "Kit remolque",
				Quantity:    qty(2),
				PriceFields: map[string]any{"price": float64(1000000)},
			}},
		}},
	}

	rows, total := pricing.BuildBillingTable(q, entity.CatalogIndex{}, entity.CatalogIndex{})

	require.Len(t, rows, 2)
	assert.True(t, total.Equal(vnd(502000000)),
		"el gran total debe ser 502000000, got %s", total)

	assert.Equal(t, 1, rows[0].Sequence)
	assert.Equal(t, entity.UnitVehicle, rows[0].Unit)
	assert.True(t, rows[0].LineTotal.Equal(vnd(500000000)))

	assert.Equal(t, 2, rows[1].Sequence)
	assert.Equal(t, entity.UnitPiece, rows[1].Unit)
	assert.True(t, rows[1].LineTotal.Equal(vnd(2000000)),
		"accesorio: 1000000 x 2 = 2000000, got %s", rows[1].LineTotal)
}

// El orden de emisión es: por ítem, vehículo, accesorios en orden de origen,
// opciones en orden de origen; Sequence es un contador único desde 1.
func TestBuildBillingTable_OrdenYSecuencia(t *testing.T) {
	q := entity.Quotation{
		Items: []entity.QuotationItem{
			{
				VehicleName:  "VF 6",
				VehiclePrice: dec(300),
				Quantity:     1,
				Accessories: []entity.LineAddOn{
					{Name: "acc-1", PriceFields: map[string]any{"price": float64(1)}},
					{Name: "acc-2", PriceFields: map[string]any{"price": float64(2)}},
				},
				Options: []entity.LineAddOn{
					{Name: "opt-1", PriceFields: map[string]any{"price": float64(3)}},
				},
			},
			{
				VehicleName:  "VF 9",
				VehiclePrice: dec(900),
				Quantity:     2,
			},
		},
	}

	rows, _ := pricing.BuildBillingTable(q, entity.CatalogIndex{}, entity.CatalogIndex{})

	require.Len(t, rows, 5)
	wantLabels := []string{"VF 6", "acc-1", "acc-2", "opt-1", "VF 9"}
	for i, row := range rows {
		assert.Equal(t, i+1, row.Sequence, "la secuencia debe ser corrida y arrancar en 1")
		assert.Equal(t, wantLabels[i], row.Label)
	}
}

// Propiedad de consistencia triple, con catálogos de por medio y un
// final_amount del backend deliberadamente mentiroso que debe ignorarse.
func TestBuildBillingTable_ConsistenciaDeTotales(t *testing.T) {
	accIdx := entity.CatalogIndex{"ACC-1": vnd(150000)}
	optIdx := entity.CatalogIndex{"OPT-1": vnd(2500000)}
	lie := decimal.NewFromInt(1) // final_amount corrupto
	q := entity.Quotation{
		FinalAmount: &lie,
		Items: []entity.QuotationItem{{
			VehicleName:  "VF 8",
			VehiclePrice: dec(650000000),
			Quantity:     1,
			Accessories: []entity.LineAddOn{
				{RefID: "ACC-1", Quantity: qty(2)},
				{Name: "tapetes", PriceFields: map[string]any{"amount": "450000"}},
			},
			Options: []entity.LineAddOn{
				{RefID: "OPT-1"},
				{RefID: "OPT-404"}, // sin catálogo ni embebido: fila en cero
			},
		}},
	}

	rows, total := pricing.BuildBillingTable(q, accIdx, optIdx)

	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.LineTotal)
	}
	independent := pricing.GrandTotal(q, accIdx, optIdx)

	assert.True(t, total.Equal(sum),
		"el total de la tabla debe igualar la suma de filas: %s vs %s", total, sum)
	assert.True(t, total.Equal(independent),
		"el total debe igualar el recálculo independiente: %s vs %s", total, independent)
	assert.False(t, total.Equal(lie),
		"el final_amount del backend no participa en la aritmética")
}

// Cotización sin ítems → tabla vacía y total cero, sin error.
func TestBuildBillingTable_SinItems(t *testing.T) {
	rows, total := pricing.BuildBillingTable(entity.Quotation{}, nil, nil)

	assert.Empty(t, rows)
	assert.True(t, total.IsZero())
}

// Etiqueta del vehículo con sufijo de color, y caída al campo alterno de
// precio unitario cuando vehicle_price no viene.
func TestBuildBillingTable_EtiquetaColorYPrecioAlterno(t *testing.T) {
	q := entity.Quotation{
		Items: []entity.QuotationItem{{
			VehicleName: "VF 7",
			Color:       "Rojo Córdoba",
			UnitPrice:   dec(720000000), // solo el campo alterno
			Quantity:    1,
		}},
	}

	rows, total := pricing.BuildBillingTable(q, nil, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "VF 7 - Rojo Córdoba", rows[0].Label)
	assert.True(t, total.Equal(vnd(720000000)),
		"sin vehicle_price debe usarse el campo alterno unit_price")
}

// Cantidad de ítem en cero se normaliza a 1 igual que en los add-ons.
func TestBuildBillingTable_CantidadDeItemCero(t *testing.T) {
	q := entity.Quotation{
		Items: []entity.QuotationItem{{
			VehicleName:  "VF 5",
			VehiclePrice: dec(458000000),
			Quantity:     0,
		}},
	}

	rows, total := pricing.BuildBillingTable(q, nil, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].Quantity)
	assert.True(t, total.Equal(vnd(458000000)))
}
