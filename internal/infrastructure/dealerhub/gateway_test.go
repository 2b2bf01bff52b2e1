package dealerhub_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appquotation "github.com/minhlahunday/dealer-portal-api/internal/application/quotation"
	"github.com/minhlahunday/dealer-portal-api/internal/domain"
	"github.com/minhlahunday/dealer-portal-api/internal/infrastructure/dealerhub"
	"github.com/minhlahunday/dealer-portal-api/pkg/config"
	"github.com/minhlahunday/dealer-portal-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de los gateways contra un dealer-hub simulado con httptest. Cubren el
// contrato de transporte: headers, 404, 5xx y sobres raros de punta a punta.
// ──────────────────────────────────────────────────────────────────────────────

func newBackend(t *testing.T, handler http.HandlerFunc) *dealerhub.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return dealerhub.NewClient(config.DealerHubConfig{
		BaseURL:        srv.URL,
		APIKey:         "clave-de-prueba",
		TimeoutSeconds: 2,
	})
}

func TestQuotationGateway_FetchByFilter_SobreAnidado(t *testing.T) {
	var gotPath, gotAPIKey, gotRequestID string
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("x-api-key")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"quotes": [
					{"_id":"q-1","code":"COT-001","status":"valid"},
					{"_id":"q-2","code":"COT-002","status":"expired"},
					{"_id":"q-3","code":"COT-003"}
				],
				"pagination": {"total": 3}
			}
		}`))
	})
	g := dealerhub.NewQuotationGateway(client, logger.Nop())

	result, err := g.FetchByFilter(context.Background(), appquotation.ListFilter{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, "/quotations", gotPath)
	assert.Equal(t, "clave-de-prueba", gotAPIKey, "la api key debe viajar en cada llamada")
	assert.NotEmpty(t, gotRequestID, "cada llamada sale con su X-Request-ID")
	assert.False(t, result.Malformed)
	require.Len(t, result.Quotations, 3)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, "COT-002", result.Quotations[1].Code)
}

func TestQuotationGateway_FetchByFilter_SobreMalformado(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})
	g := dealerhub.NewQuotationGateway(client, logger.Nop())

	result, err := g.FetchByFilter(context.Background(), appquotation.ListFilter{Page: 1, Limit: 20})

	require.NoError(t, err, "la forma rara del sobre no es un error de transporte")
	assert.True(t, result.Malformed)
	assert.Empty(t, result.Quotations)
}

func TestQuotationGateway_FetchByID_NoEncontrada(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	g := dealerhub.NewQuotationGateway(client, logger.Nop())

	q, err := g.FetchByID(context.Background(), "q-404")

	require.NoError(t, err)
	assert.Nil(t, q, "404 se traduce a nil, no a error")
}

func TestQuotationGateway_FetchByID_EnvueltaEnData(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"_id":"q-1","code":"COT-001","status":"valid"}}`))
	})
	g := dealerhub.NewQuotationGateway(client, logger.Nop())

	q, err := g.FetchByID(context.Background(), "q-1")

	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, "COT-001", q.Code)
}

// El 5xx del backend se clasifica como ErrBackendUnavailable y se propaga.
func TestQuotationGateway_Cancel_ErrorDeServidor(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	g := dealerhub.NewQuotationGateway(client, logger.Nop())

	err := g.Cancel(context.Background(), "q-1")

	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestQuotationGateway_Cancel_Exitoso(t *testing.T) {
	var gotMethod, gotPath string
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"data":{"status":"canceled"}}`))
	})
	g := dealerhub.NewQuotationGateway(client, logger.Nop())

	err := g.Cancel(context.Background(), "q-1")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/quotations/q-1/cancel", gotPath)
}

func TestCatalogGateway_FetchCatalog(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/catalogs/accessories", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"_id":"A1","price":100000},{"_id":"SIN","price":"gratis"}]}`))
	})
	g := dealerhub.NewCatalogGateway(client, logger.Nop())

	idx, err := g.FetchCatalog(context.Background(), appquotation.CatalogAccessories)

	require.NoError(t, err)
	require.Len(t, idx, 1, "la entrada con precio no numérico se omite del índice")
	p, ok := idx.Price("A1")
	require.True(t, ok)
	assert.Equal(t, "100000", p.String())
}

func TestCatalogGateway_KindDesconocido(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no debe llegar ninguna llamada al backend")
	})
	g := dealerhub.NewCatalogGateway(client, logger.Nop())

	_, err := g.FetchCatalog(context.Background(), appquotation.CatalogKind("colores"))

	assert.Error(t, err)
}
