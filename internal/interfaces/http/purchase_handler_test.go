package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boleteria-api/internal/application/sales"
	"github.com/jhoicas/boleteria-api/internal/application/usecase"
	"github.com/jhoicas/boleteria-api/internal/domain/entity"
	"github.com/jhoicas/boleteria-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/boleteria-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubPDF evita depender del render PDF real en los tests HTTP.
type stubPDF struct{}

func (stubPDF) GenerateReceiptPDF(_ context.Context, p *entity.Purchase) ([]byte, error) {
	return []byte("%PDF " + p.Code), nil
}

// buildTestApp construye la aplicación Fiber completa con repositorios en
// memoria vacíos, igual que el wiring de cmd/api.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	customerRepo := memory.NewCustomerRepository()
	ticketRepo := memory.NewTicketRepository()
	purchaseRepo := memory.NewPurchaseRepository()

	purchaseUC := sales.NewPurchaseUseCase(customerRepo, ticketRepo, purchaseRepo, sales.NewCodeSequence())
	receiptUC := sales.NewReceiptUseCase(purchaseRepo, stubPDF{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC: usecase.NewCustomerUseCase(customerRepo),
		TicketUC:   usecase.NewTicketUseCase(ticketRepo),
		PurchaseUC: purchaseUC,
		ReceiptUC:  receiptUC,
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// seed crea el cliente y los tipos de boleta del escenario de referencia.
func seed(t *testing.T, app *fiber.App) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/customers",
		map[string]any{"name": "Ana Pérez", "email": "ana@example.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/tickets",
		map[string]any{"name": "Pista", "price": "120.00", "available": 100})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/tickets",
		map[string]any{"name": "VIP", "price": "200.00", "available": 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests flujo de venta vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_FlujoDeVentaCompleto(t *testing.T) {
	app := buildTestApp(t)
	seed(t, app)

	// Iniciar compra
	resp := doJSON(t, app, http.MethodPost, "/api/purchases",
		map[string]any{"customer_email": "ana@example.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var purchase map[string]any
	decode(t, resp, &purchase)
	code := purchase["code"].(string)
	assert.Equal(t, "C0001", code)
	assert.Equal(t, "OPEN", purchase["status"])

	// Agregar 2 de Pista
	resp = doJSON(t, app, http.MethodPost, "/api/purchases/"+code+"/items",
		map[string]any{"ticket": "Pista", "quantity": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &purchase)
	assert.Equal(t, "240", purchase["total"])

	// Agregar 1 más
	resp = doJSON(t, app, http.MethodPost, "/api/purchases/"+code+"/items",
		map[string]any{"ticket": "Pista", "quantity": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &purchase)
	assert.Equal(t, "360", purchase["total"])

	// Finalizar
	resp = doJSON(t, app, http.MethodPost, "/api/purchases/"+code+"/finalize", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &purchase)
	assert.Equal(t, "FINALIZED", purchase["status"])
	assert.Equal(t, "360", purchase["total"])

	// El stock quedó en 97
	resp = doJSON(t, app, http.MethodGet, "/api/tickets/Pista", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ticket map[string]any
	decode(t, resp, &ticket)
	assert.Equal(t, float64(97), ticket["available"])

	// Total de ventas finalizadas
	resp = doJSON(t, app, http.MethodGet, "/api/purchases/total", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var total map[string]any
	decode(t, resp, &total)
	assert.Equal(t, "360", total["total"])
}

func TestHTTP_StockInsuficiente_Retorna409(t *testing.T) {
	app := buildTestApp(t)
	seed(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/purchases",
		map[string]any{"customer_email": "ana@example.com"})
	var purchase map[string]any
	decode(t, resp, &purchase)
	code := purchase["code"].(string)

	resp = doJSON(t, app, http.MethodPost, "/api/purchases/"+code+"/items",
		map[string]any{"ticket": "VIP", "quantity": 2})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "INSUFFICIENT_STOCK")

	// El stock del VIP sigue en 1 y la compra sin items
	resp = doJSON(t, app, http.MethodGet, "/api/tickets/VIP", nil)
	var ticket map[string]any
	decode(t, resp, &ticket)
	assert.Equal(t, float64(1), ticket["available"])

	resp = doJSON(t, app, http.MethodGet, "/api/purchases/"+code, nil)
	decode(t, resp, &purchase)
	assert.Empty(t, purchase["items"])
}

func TestHTTP_FinalizarCompraVacia_Retorna422(t *testing.T) {
	app := buildTestApp(t)
	seed(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/purchases",
		map[string]any{"customer_email": "ana@example.com"})
	var purchase map[string]any
	decode(t, resp, &purchase)
	code := purchase["code"].(string)

	resp = doJSON(t, app, http.MethodPost, "/api/purchases/"+code+"/finalize", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "EMPTY_PURCHASE")
}

func TestHTTP_AgregarTrasFinalizar_Retorna409(t *testing.T) {
	app := buildTestApp(t)
	seed(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/purchases",
		map[string]any{"customer_email": "ana@example.com"})
	var purchase map[string]any
	decode(t, resp, &purchase)
	code := purchase["code"].(string)

	resp = doJSON(t, app, http.MethodPost, "/api/purchases/"+code+"/items",
		map[string]any{"ticket": "Pista", "quantity": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/purchases/"+code+"/finalize", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/purchases/"+code+"/items",
		map[string]any{"ticket": "Pista", "quantity": 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "PURCHASE_FINALIZED")
}

func TestHTTP_CompraDesconocida_Retorna404(t *testing.T) {
	app := buildTestApp(t)
	seed(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/purchases/C9999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestHTTP_ClienteDuplicado_Retorna409(t *testing.T) {
	app := buildTestApp(t)
	seed(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/customers",
		map[string]any{"name": "Otra Ana", "email": "ana@example.com"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "DUPLICATE")
}

func TestHTTP_TirillaDeCompraAbierta_Retorna404(t *testing.T) {
	app := buildTestApp(t)
	seed(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/purchases",
		map[string]any{"customer_email": "ana@example.com"})
	var purchase map[string]any
	decode(t, resp, &purchase)
	code := purchase["code"].(string)

	resp = doJSON(t, app, http.MethodGet, "/api/purchases/"+code+"/receipt", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
