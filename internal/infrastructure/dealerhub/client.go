package dealerhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/minhlahunday/dealer-portal-api/internal/domain"
	"github.com/minhlahunday/dealer-portal-api/pkg/config"
)

// Client cliente HTTP base hacia el dealer-hub. Usa net/http de la librería
// estándar; el backend no publica SDK. Cada llamada sale con un X-Request-ID
// propio para poder correlacionar en los logs del backend.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient construye el cliente a partir de la configuración.
func NewClient(cfg config.DealerHubConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// getJSON hace GET y decodifica el cuerpo como JSON suelto (any).
// Devuelve el status HTTP para que el gateway interprete 404 y similares;
// solo los fallos de transporte y los 5xx se reportan como error.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) (any, int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("dealerhub: crear request GET %s: %w", path, err)
	}
	return c.do(req)
}

// postJSON hace POST con cuerpo JSON (nil = sin cuerpo).
func (c *Client) postJSON(ctx context.Context, path string, body any) (any, int, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("dealerhub: serializar request: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("dealerhub: crear request POST %s: %w", path, err)
	}
	req.Header.Set("content-type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (any, int, error) {
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: leer respuesta: %v", domain.ErrBackendUnavailable, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, resp.StatusCode, fmt.Errorf("%w: HTTP %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}

	// Cuerpo vacío o no-JSON no es fatal aquí: el normalizador de sobres
	// decide si la forma es utilizable.
	var decoded any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return decoded, resp.StatusCode, nil
}
