package entity

import "github.com/shopspring/decimal"

// CatalogEntry entrada del catálogo de referencia (accesorios u opciones).
type CatalogEntry struct {
	ID    string
	Price decimal.Decimal
}

// CatalogIndex índice id -> precio de referencia. Se construye completo en
// cada sesión de detalle (sin actualización incremental ni caché global).
// Un índice vacío es válido: equivale a "catálogo no cargado".
type CatalogIndex map[string]decimal.Decimal

// Price devuelve el precio de referencia y si el id existe en el índice.
// La existencia distingue un precio legítimamente cero de una ausencia.
func (idx CatalogIndex) Price(id string) (decimal.Decimal, bool) {
	p, ok := idx[id]
	return p, ok
}
