package dealerhub

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minhlahunday/dealer-portal-api/internal/domain/entity"
)

// Mapping de registros sueltos del backend a entidades tipadas. Este es el
// único lugar donde se permite el sondeo duck-typed de campos: aguas arriba
// el sobre ya fue normalizado y aguas abajo todo es tipado.

// Campos de precio embebido que se conservan crudos para el resolver.
var addOnPriceKeys = []string{"price", "unit_price", "amount", "value", "cost"}

// Formatos de fecha que el backend ha usado en valid_until.
var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// mapQuotation convierte un registro suelto en una Quotation.
func mapQuotation(m map[string]any) entity.Quotation {
	q := entity.Quotation{
		ID:     stringField(m, "_id", "id", "quotation_id"),
		Code:   stringField(m, "code", "quotation_code", "quote_no"),
		Status: strings.ToLower(strings.TrimSpace(stringField(m, "status"))),
	}
	if t, ok := dateField(m, "valid_until", "validUntil", "expired_at", "expiry_date"); ok {
		q.ValidUntil = &t
	}
	if d, ok := decimalField(m, "final_amount", "finalAmount", "total_amount"); ok {
		q.FinalAmount = &d
	}
	if items, ok := m["items"].([]any); ok {
		for _, it := range items {
			if im, ok := it.(map[string]any); ok {
				q.Items = append(q.Items, mapItem(im))
			}
		}
	}
	return q
}

func mapItem(m map[string]any) entity.QuotationItem {
	item := entity.QuotationItem{
		VehicleRef:  stringField(m, "vehicle_id", "vehicle_ref", "vehicleId"),
		VehicleName: stringField(m, "vehicle_name", "vehicleName", "name"),
		Color:       stringField(m, "color"),
	}
	if n, ok := intField(m, "quantity"); ok {
		item.Quantity = n
	}
	if d, ok := decimalField(m, "vehicle_price", "vehiclePrice", "price"); ok {
		item.VehiclePrice = &d
	}
	if d, ok := decimalField(m, "unit_price", "unitPrice"); ok {
		item.UnitPrice = &d
	}
	item.Accessories = mapAddOns(m["accessories"], "accessory_id")
	item.Options = mapAddOns(m["options"], "option_id")
	return item
}

func mapAddOns(raw any, domainIDKey string) []entity.LineAddOn {
	arr, ok := raw.([]any)
	if !ok {
		return nil
	}
	addOns := make([]entity.LineAddOn, 0, len(arr))
	for _, a := range arr {
		m, ok := a.(map[string]any)
		if !ok {
			continue
		}
		addOn := entity.LineAddOn{
			RefID: stringField(m, "_id", "id", domainIDKey),
			Name:  stringField(m, "name", "label"),
		}
		if n, ok := intField(m, "quantity"); ok {
			addOn.Quantity = &n
		}
		// Conservar los campos de precio crudos: la cadena de prioridad
		// la aplica el resolver, no el mapping.
		for _, key := range addOnPriceKeys {
			if v, ok := m[key]; ok {
				if addOn.PriceFields == nil {
					addOn.PriceFields = map[string]any{}
				}
				addOn.PriceFields[key] = v
			}
		}
		addOns = append(addOns, addOn)
	}
	return addOns
}

// ── accessors tipados sobre el registro suelto ────────────────────────────────

func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

func intField(m map[string]any, key string) (int64, bool) {
	switch x := m[key].(type) {
	case float64:
		return int64(x), true
	case int:
		return int64(x), true
	case int64:
		return x, true
	case json.Number:
		n, err := x.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}

func decimalField(m map[string]any, keys ...string) (decimal.Decimal, bool) {
	for _, k := range keys {
		switch x := m[k].(type) {
		case float64:
			return decimal.NewFromFloat(x), true
		case json.Number:
			if d, err := decimal.NewFromString(x.String()); err == nil {
				return d, true
			}
		case string:
			if s := strings.TrimSpace(x); s != "" {
				if d, err := decimal.NewFromString(s); err == nil {
					return d, true
				}
			}
		}
	}
	return decimal.Zero, false
}

func dateField(m map[string]any, keys ...string) (time.Time, bool) {
	for _, k := range keys {
		s, ok := m[k].(string)
		if !ok || s == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
