package dealerhub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	appquotation "github.com/minhlahunday/dealer-portal-api/internal/application/quotation"
	"github.com/minhlahunday/dealer-portal-api/internal/domain/entity"
	"github.com/minhlahunday/dealer-portal-api/pkg/logger"
)

// Verificar en tiempo de compilación que QuotationGateway implementa el puerto.
var _ appquotation.QuotationGateway = (*QuotationGateway)(nil)

// QuotationGateway adaptador REST contra el almacén de cotizaciones del
// dealer-hub.
type QuotationGateway struct {
	client *Client
	log    *logger.Logger
}

// NewQuotationGateway construye el adaptador.
func NewQuotationGateway(client *Client, log *logger.Logger) *QuotationGateway {
	return &QuotationGateway{client: client, log: log}
}

// FetchByFilter lista cotizaciones paginadas. Un sobre irreconocible no es
// error: se marca Malformed y se devuelve lista vacía (el caso de uso lo
// registra para diagnóstico).
func (g *QuotationGateway) FetchByFilter(ctx context.Context, filter appquotation.ListFilter) (appquotation.ListResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(filter.Page))
	query.Set("limit", strconv.Itoa(filter.Limit))
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}

	raw, _, err := g.client.getJSON(ctx, "/quotations", query)
	if err != nil {
		return appquotation.ListResult{}, fmt.Errorf("listar cotizaciones: %w", err)
	}

	items, total, ok := ExtractList(raw)
	if !ok {
		return appquotation.ListResult{Malformed: true}, nil
	}

	quotations := make([]entity.Quotation, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			quotations = append(quotations, mapQuotation(m))
		}
	}
	return appquotation.ListResult{Quotations: quotations, Total: total}, nil
}

// FetchByID trae una cotización completa para la vista de detalle.
// 404 o registro irreconocible → nil (el caso de uso lo traduce a not found).
func (g *QuotationGateway) FetchByID(ctx context.Context, id string) (*entity.Quotation, error) {
	raw, status, err := g.client.getJSON(ctx, "/quotations/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("consultar cotización %s: %w", id, err)
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	record, ok := ExtractRecord(raw)
	if !ok {
		g.log.Warn().Str("quotation_id", id).
			Msg("detalle de cotización: sobre de respuesta irreconocible")
		return nil, nil
	}

	q := mapQuotation(record)
	return &q, nil
}

// Cancel ejecuta la transición de cancelación en el backend. El gate de
// elegibilidad es responsabilidad del caso de uso; acá solo viaja la llamada.
func (g *QuotationGateway) Cancel(ctx context.Context, id string) error {
	_, status, err := g.client.postJSON(ctx, "/quotations/"+url.PathEscape(id)+"/cancel", nil)
	if err != nil {
		return fmt.Errorf("cancelar cotización %s: %w", id, err)
	}
	if status >= http.StatusBadRequest {
		return fmt.Errorf("cancelar cotización %s: el backend rechazó con HTTP %d", id, status)
	}
	return nil
}
