package quotation

import (
	"context"
	"sync"
	"time"

	"github.com/minhlahunday/dealer-portal-api/internal/application/dto"
	"github.com/minhlahunday/dealer-portal-api/internal/domain"
	"github.com/minhlahunday/dealer-portal-api/internal/domain/entity"
	"github.com/minhlahunday/dealer-portal-api/internal/domain/pricing"
	domquotation "github.com/minhlahunday/dealer-portal-api/internal/domain/quotation"
	"github.com/minhlahunday/dealer-portal-api/pkg/logger"
	"github.com/minhlahunday/dealer-portal-api/pkg/money"
)

// UseCase orquesta el motor de precios y el ciclo de vida de cotizaciones
// sobre los puertos al dealer-hub. No guarda estado entre sesiones de vista:
// cada detalle reconstruye sus índices de catálogo desde cero.
type UseCase struct {
	quotations QuotationGateway
	catalogs   CatalogGateway
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(quotations QuotationGateway, catalogs CatalogGateway, log *logger.Logger) *UseCase {
	return &UseCase{quotations: quotations, catalogs: catalogs, log: log}
}

// ListQuotations lista cotizaciones paginadas. Un sobre malformado del
// backend degrada a lista vacía con warn; no bloquea la vista.
func (uc *UseCase) ListQuotations(ctx context.Context, req dto.PageRequest) (*dto.QuotationListResponse, error) {
	req.DefaultPage()
	result, err := uc.quotations.FetchByFilter(ctx, ListFilter{
		Page:  req.Page,
		Limit: req.Limit,
		Query: req.Query,
	})
	if err != nil {
		return nil, err
	}
	if result.Malformed {
		uc.log.Warn().
			Int("page", req.Page).
			Msg("listado de cotizaciones: sobre de respuesta irreconocible, se degrada a lista vacía")
	}

	summaries := make([]dto.QuotationSummary, 0, len(result.Quotations))
	for _, q := range result.Quotations {
		summaries = append(summaries, dto.QuotationSummary{
			ID:          q.ID,
			Code:        q.Code,
			Status:      q.Status,
			ValidUntil:  formatDate(q.ValidUntil),
			ItemCount:   len(q.Items),
			FinalAmount: q.FinalAmount,
		})
	}
	return &dto.QuotationListResponse{
		Quotations: summaries,
		Pagination: dto.PageResponse{Page: req.Page, Limit: req.Limit, Total: result.Total},
	}, nil
}

// GetQuotation arma el detalle: trae la cotización, carga ambos catálogos en
// paralelo, resuelve precios y proyecta la tabla de facturación.
func (uc *UseCase) GetQuotation(ctx context.Context, id string) (*dto.QuotationDetailResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	q, err := uc.quotations.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrQuotationNotFound
	}

	accIdx, optIdx := uc.loadCatalogs(ctx)

	// Adjuntar los campos resueltos a los add-ons (display) con el mismo
	// resolver que usa el agregador: ambos caminos quedan garantizado iguales.
	for i := range q.Items {
		for j := range q.Items[i].Accessories {
			pricing.ResolveInto(&q.Items[i].Accessories[j], accIdx)
		}
		for j := range q.Items[i].Options {
			pricing.ResolveInto(&q.Items[i].Options[j], optIdx)
		}
	}

	rows, total := pricing.BuildBillingTable(*q, accIdx, optIdx)

	rowDTOs := make([]dto.BillingRowDTO, 0, len(rows))
	for _, r := range rows {
		rowDTOs = append(rowDTOs, dto.BillingRowDTO{
			Sequence:      r.Sequence,
			Label:         r.Label,
			Unit:          r.Unit,
			Quantity:      r.Quantity,
			UnitPrice:     r.UnitPrice,
			LineTotal:     r.LineTotal,
			LineTotalText: money.FormatVND(r.LineTotal),
		})
	}

	return &dto.QuotationDetailResponse{
		ID:             q.ID,
		Code:           q.Code,
		Status:         q.Status,
		ValidUntil:     formatDate(q.ValidUntil),
		CanCancel:      domquotation.CanCancel(*q, time.Now()),
		CanConvert:     domquotation.CanConvert(*q),
		Rows:           rowDTOs,
		GrandTotal:     total,
		GrandTotalText: money.FormatVND(total),
		BackendAmount:  q.FinalAmount,
	}, nil
}

// CancelQuotation cancela una cotización. El gate se evalúa contra estado
// recién consultado (nunca contra un chequeo previo); el rechazo advisory
// viaja como error de dominio y el 5xx del backend se propaga sin tocar.
// Tras un cancel exitoso el status en memoria queda canceled sin re-consultar.
func (uc *UseCase) CancelQuotation(ctx context.Context, id string) (*dto.CancelResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	q, err := uc.quotations.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrQuotationNotFound
	}

	if ok, reason := domquotation.CancelEligibility(*q, time.Now()); !ok {
		switch reason {
		case domquotation.ReasonAlreadyCanceled:
			return nil, domain.ErrQuotationCanceled
		case domquotation.ReasonExpired:
			return nil, domain.ErrQuotationExpired
		default:
			return nil, domain.ErrQuotationNotValid
		}
	}

	if err := uc.quotations.Cancel(ctx, id); err != nil {
		return nil, err
	}

	q.Status = entity.StatusCanceled
	uc.log.Info().Str("quotation_id", id).Msg("cotización cancelada")
	return &dto.CancelResponse{ID: q.ID, Status: q.Status}, nil
}

// CheckEligibility reporta si cancelar/convertir proceden y por qué no.
func (uc *UseCase) CheckEligibility(ctx context.Context, id string) (*dto.EligibilityResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	q, err := uc.quotations.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrQuotationNotFound
	}

	canCancel, cancelReason := domquotation.CancelEligibility(*q, time.Now())
	canConvert, convertReason := domquotation.ConvertEligibility(*q)
	return &dto.EligibilityResponse{
		ID:            q.ID,
		Status:        q.Status,
		CanCancel:     canCancel,
		CancelReason:  string(cancelReason),
		CanConvert:    canConvert,
		ConvertReason: string(convertReason),
	}, nil
}

// loadCatalogs trae accesorios y opciones en paralelo (lecturas
// independientes). Un catálogo caído degrada a índice vacío con warn y no
// bloquea al otro: "no cargado" y "vacío" son indistinguibles aguas abajo.
func (uc *UseCase) loadCatalogs(ctx context.Context) (entity.CatalogIndex, entity.CatalogIndex) {
	var wg sync.WaitGroup
	var accIdx, optIdx entity.CatalogIndex

	fetch := func(kind CatalogKind, dst *entity.CatalogIndex) {
		defer wg.Done()
		idx, err := uc.catalogs.FetchCatalog(ctx, kind)
		if err != nil {
			uc.log.Warn().Err(err).Str("catalog", string(kind)).
				Msg("catálogo no disponible, se continúa sin precios de referencia")
			*dst = entity.CatalogIndex{}
			return
		}
		*dst = idx
	}

	wg.Add(2)
	go fetch(CatalogAccessories, &accIdx)
	go fetch(CatalogOptions, &optIdx)
	wg.Wait()

	return accIdx, optIdx
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
