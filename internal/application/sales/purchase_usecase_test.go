package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boleteria-api/internal/application/sales"
	"github.com/jhoicas/boleteria-api/internal/domain"
	"github.com/jhoicas/boleteria-api/internal/domain/entity"
	"github.com/jhoicas/boleteria-api/internal/infrastructure/memory"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type fixture struct {
	uc           *sales.PurchaseUseCase
	customerRepo *memory.CustomerRepository
	ticketRepo   *memory.TicketRepository
	purchaseRepo *memory.PurchaseRepository
}

// buildFixture arma el coordinador con repositorios en memoria, un cliente
// y los tipos de boleta del escenario de referencia.
func buildFixture(t *testing.T) *fixture {
	t.Helper()
	customerRepo := memory.NewCustomerRepository()
	ticketRepo := memory.NewTicketRepository()
	purchaseRepo := memory.NewPurchaseRepository()

	require.NoError(t, customerRepo.Save(&entity.Customer{Name: "Ana", Email: "ana@example.com"}))

	pista, err := entity.NewTicket("Pista", decimal.NewFromFloat(120.00), 100)
	require.NoError(t, err)
	require.NoError(t, ticketRepo.Save(pista))

	vip, err := entity.NewTicket("VIP", decimal.NewFromFloat(200.00), 1)
	require.NoError(t, err)
	require.NoError(t, ticketRepo.Save(vip))

	return &fixture{
		uc:           sales.NewPurchaseUseCase(customerRepo, ticketRepo, purchaseRepo, sales.NewCodeSequence()),
		customerRepo: customerRepo,
		ticketRepo:   ticketRepo,
		purchaseRepo: purchaseRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests secuencia de códigos
// ──────────────────────────────────────────────────────────────────────────────

func TestCodeSequence_Consecutiva(t *testing.T) {
	seq := sales.NewCodeSequence()
	assert.Equal(t, "C0001", seq.Next())
	assert.Equal(t, "C0002", seq.Next())
	assert.Equal(t, "C0003", seq.Next())
}

func TestStart_AsignaCodigosConsecutivos(t *testing.T) {
	f := buildFixture(t)

	p1, err := f.uc.Start("ana@example.com")
	require.NoError(t, err)
	p2, err := f.uc.Start("ana@example.com")
	require.NoError(t, err)

	assert.Equal(t, "C0001", p1.Code)
	assert.Equal(t, "C0002", p2.Code)
	assert.Equal(t, entity.PurchaseStatusOpen, p1.Status)
}

func TestStart_ClienteDesconocido(t *testing.T) {
	f := buildFixture(t)
	_, err := f.uc.Start("nadie@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Iniciar una compra no la persiste: el repositorio solo la recibe al
// finalizar con éxito.
func TestStart_NoPersisteTodavia(t *testing.T) {
	f := buildFixture(t)
	p, err := f.uc.Start("ana@example.com")
	require.NoError(t, err)

	stored, err := f.purchaseRepo.GetByCode(p.Code)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests flujo de venta completo
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoDeVenta_Completo(t *testing.T) {
	f := buildFixture(t)

	p, err := f.uc.Start("ana@example.com")
	require.NoError(t, err)

	p, err = f.uc.AddItem(p.Code, "Pista", 2)
	require.NoError(t, err)
	require.Len(t, p.Items, 1)
	assert.True(t, p.Items[0].Subtotal.Equal(decimal.NewFromFloat(240.00)))

	p, err = f.uc.AddItem(p.Code, "Pista", 1)
	require.NoError(t, err)
	assert.True(t, p.Total.Equal(decimal.NewFromFloat(360.00)))

	p, err = f.uc.Finalize(p.Code)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusFinalized, p.Status)

	// Persistida y visible en el listado
	stored, err := f.purchaseRepo.GetByCode(p.Code)
	require.NoError(t, err)
	require.NotNil(t, stored)

	list, err := f.uc.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// El stock quedó descontado
	pista, err := f.ticketRepo.GetByName("Pista")
	require.NoError(t, err)
	assert.Equal(t, 97, pista.Available())
}

func TestAddItem_ErroresDeNegocio(t *testing.T) {
	f := buildFixture(t)
	p, err := f.uc.Start("ana@example.com")
	require.NoError(t, err)

	_, err = f.uc.AddItem(p.Code, "VIP", 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = f.uc.AddItem(p.Code, "Pista", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.uc.AddItem(p.Code, "Palco", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound, "tipo de boleta desconocido")

	_, err = f.uc.AddItem("C9999", "Pista", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound, "compra desconocida")
}

func TestFinalize_CompraVacia_NoPersiste(t *testing.T) {
	f := buildFixture(t)
	p, err := f.uc.Start("ana@example.com")
	require.NoError(t, err)

	_, err = f.uc.Finalize(p.Code)
	assert.ErrorIs(t, err, domain.ErrEmptyPurchase)

	stored, err := f.purchaseRepo.GetByCode(p.Code)
	require.NoError(t, err)
	assert.Nil(t, stored, "una finalización fallida no persiste nada")

	// La compra sigue abierta y utilizable
	got, err := f.uc.Get(p.Code)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusOpen, got.Status)
}

func TestFinalize_Doble_ReportaFinalizada(t *testing.T) {
	f := buildFixture(t)
	p, err := f.uc.Start("ana@example.com")
	require.NoError(t, err)
	_, err = f.uc.AddItem(p.Code, "Pista", 1)
	require.NoError(t, err)
	_, err = f.uc.Finalize(p.Code)
	require.NoError(t, err)

	_, err = f.uc.Finalize(p.Code)
	assert.ErrorIs(t, err, domain.ErrPurchaseFinalized,
		"el segundo Finalize reporta finalizada, no ausente")

	_, err = f.uc.AddItem(p.Code, "Pista", 1)
	assert.ErrorIs(t, err, domain.ErrPurchaseFinalized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests agregado de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalizedTotal_SoloCompraFinalizadas(t *testing.T) {
	f := buildFixture(t)

	// Compra finalizada de 360.00
	p1, err := f.uc.Start("ana@example.com")
	require.NoError(t, err)
	_, err = f.uc.AddItem(p1.Code, "Pista", 3)
	require.NoError(t, err)
	_, err = f.uc.Finalize(p1.Code)
	require.NoError(t, err)

	// Compra abierta con items: no cuenta
	p2, err := f.uc.Start("ana@example.com")
	require.NoError(t, err)
	_, err = f.uc.AddItem(p2.Code, "Pista", 5)
	require.NoError(t, err)

	total, err := f.uc.FinalizedTotal()
	require.NoError(t, err)
	assert.True(t, total.Total.Equal(decimal.NewFromFloat(360.00)),
		"total esperado 360.00, obtenido %s", total.Total)
}

func TestFinalizedTotal_SinVentas_EsCero(t *testing.T) {
	f := buildFixture(t)
	total, err := f.uc.FinalizedTotal()
	require.NoError(t, err)
	assert.True(t, total.Total.IsZero())
}
