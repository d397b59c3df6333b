// Package supabase adaptador de la tienda de tablas sobre la API REST (PostgREST) de Supabase.
//
// Solo lectura. Usa net/http igual que los demás adaptadores REST del proyecto; no requiere el SDK.
package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lewistwins/websites/internal/domain"
)

const (
	restPath = "/rest/v1/"

	// Accept que obliga a PostgREST a devolver un solo objeto (406 si hay 0 o >1 filas).
	singleObjectMIME = "application/vnd.pgrst.object+json"

	// Códigos de error PostgREST / PostgreSQL que significan "no existe".
	codeNoRows        = "PGRST116" // .single() sin filas
	codeInvalidSyntax = "22P02"    // id con formato inválido para la columna
)

// Client cliente HTTP mínimo para PostgREST. Se construye una vez y se comparte.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL es la URL del proyecto (https://xyz.supabase.co).
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError respuesta no-2xx de PostgREST.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Code == "" && e.Message == "" {
		return fmt.Sprintf("supabase: HTTP %d", e.Status)
	}
	return fmt.Sprintf("supabase: HTTP %d %s: %s", e.Status, e.Code, e.Message)
}

// Unwrap traduce la respuesta a un error de dominio para que los casos de uso usen errors.Is.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusNotAcceptable || e.Code == codeNoRows || e.Code == codeInvalidSyntax {
		return domain.ErrNotFound
	}
	return domain.ErrStoreUnavailable
}

func (c *Client) newRequest(ctx context.Context, method, table string, query url.Values) (*http.Request, error) {
	endpoint := c.baseURL + restPath + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("supabase: crear request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase: %s %s: %w: %w", req.Method, req.URL.Path, domain.ErrStoreUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		apiErr := &APIError{Status: resp.StatusCode}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		_ = json.Unmarshal(body, apiErr) // HEAD y algunos proxies no devuelven cuerpo
		return nil, apiErr
	}
	return resp, nil
}

// selectRows GET /rest/v1/{table}; decodifica en out (slice u objeto si single).
func (c *Client) selectRows(ctx context.Context, table string, query url.Values, single bool, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, table, query)
	if err != nil {
		return err
	}
	if single {
		req.Header.Set("Accept", singleObjectMIME)
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("supabase: decodificar %s: %w", table, err)
	}
	return nil
}

// count HEAD con Prefer: count=exact; el total viene en Content-Range ("0-2/3" o "*/0").
func (c *Client) count(ctx context.Context, table string, query url.Values) (int, error) {
	req, err := c.newRequest(ctx, http.MethodHead, table, query)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")
	resp, err := c.do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return parseContentRange(resp.Header.Get("Content-Range"))
}

func parseContentRange(v string) (int, error) {
	i := strings.LastIndexByte(v, '/')
	if i < 0 {
		return 0, fmt.Errorf("supabase: Content-Range inválido %q", v)
	}
	n, err := strconv.Atoi(v[i+1:])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("supabase: total desconocido en Content-Range %q", v)
	}
	return n, nil
}

// eq construye el filtro PostgREST "eq.<valor>".
func eq(v string) string { return "eq." + v }

// flexID acepta ids numéricos o de texto (bigint, uuid) y los normaliza a string.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	switch {
	case string(b) == "null":
		*f = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return errors.New("supabase: id no es número ni texto")
		}
		*f = flexID(n.String())
	}
	return nil
}
