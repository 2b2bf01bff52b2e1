package quotation

import (
	"context"

	"github.com/minhlahunday/dealer-portal-api/internal/domain/entity"
)

// CatalogKind catálogos de referencia disponibles en el dealer-hub.
type CatalogKind string

const (
	CatalogAccessories CatalogKind = "accessories"
	CatalogOptions     CatalogKind = "options"
)

// ListFilter filtro del listado remoto de cotizaciones.
type ListFilter struct {
	Page  int
	Limit int
	Query string
}

// ListResult resultado del listado. Malformed indica que el sobre de la
// respuesta no se reconoció: el gateway ya degradó a lista vacía y el caso
// de uso solo lo registra (no es un error duro).
type ListResult struct {
	Quotations []entity.Quotation
	Total      int
	Malformed  bool
}

// QuotationGateway puerto hacia el almacén remoto de cotizaciones.
// Los errores de transporte se propagan; las formas raras de sobre no.
type QuotationGateway interface {
	FetchByFilter(ctx context.Context, filter ListFilter) (ListResult, error)
	FetchByID(ctx context.Context, id string) (*entity.Quotation, error)
	Cancel(ctx context.Context, id string) error
}

// CatalogGateway puerto hacia los catálogos de referencia de precios.
type CatalogGateway interface {
	FetchCatalog(ctx context.Context, kind CatalogKind) (entity.CatalogIndex, error)
}
