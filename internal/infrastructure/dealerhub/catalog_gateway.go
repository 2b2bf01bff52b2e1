package dealerhub

import (
	"context"
	"fmt"

	appquotation "github.com/minhlahunday/dealer-portal-api/internal/application/quotation"
	"github.com/minhlahunday/dealer-portal-api/internal/domain/entity"
	"github.com/minhlahunday/dealer-portal-api/internal/domain/pricing"
	"github.com/minhlahunday/dealer-portal-api/pkg/logger"
)

// Verificar en tiempo de compilación que CatalogGateway implementa el puerto.
var _ appquotation.CatalogGateway = (*CatalogGateway)(nil)

// CatalogGateway adaptador REST contra los catálogos de referencia de
// precios (accesorios y opciones).
type CatalogGateway struct {
	client *Client
	log    *logger.Logger
}

// NewCatalogGateway construye el adaptador.
func NewCatalogGateway(client *Client, log *logger.Logger) *CatalogGateway {
	return &CatalogGateway{client: client, log: log}
}

// FetchCatalog trae el catálogo indicado y construye su índice id -> precio.
// El índice se arma completo en cada llamada: no hay caché entre sesiones de
// detalle. Un sobre sin arreglo reconocible produce índice vacío (BuildIndex
// nunca falla); solo el transporte puede devolver error.
func (g *CatalogGateway) FetchCatalog(ctx context.Context, kind appquotation.CatalogKind) (entity.CatalogIndex, error) {
	switch kind {
	case appquotation.CatalogAccessories, appquotation.CatalogOptions:
	default:
		return nil, fmt.Errorf("catálogo desconocido: %q", kind)
	}

	raw, _, err := g.client.getJSON(ctx, "/catalogs/"+string(kind), nil)
	if err != nil {
		return nil, fmt.Errorf("consultar catálogo %s: %w", kind, err)
	}

	idx := pricing.BuildIndex(raw)
	if len(idx) == 0 {
		g.log.Warn().Str("catalog", string(kind)).
			Msg("catálogo sin entradas indexables; las líneas caerán a precio embebido o cero")
	}
	return idx, nil
}
