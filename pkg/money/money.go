package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Los montos del portal están en VND (đồng vietnamita): sin decimales,
// agrupación de miles. El printer de x/text aplica la agrupación según el locale.
var printer = message.NewPrinter(language.Vietnamese)

// FormatVND formatea un monto en VND para visualización ("502.000.000 ₫").
// Redondea a la unidad; el đồng no maneja fracciones en precios de venta.
func FormatVND(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	return printer.Sprintf("%d ₫", n)
}

// FormatAmount formatea un monto sin símbolo de moneda (para tablas).
func FormatAmount(amount decimal.Decimal) string {
	return printer.Sprintf("%d", amount.Round(0).IntPart())
}
