package fulfillment_test

import (
	"testing"
	"time"

	"erp-backend/internal/fulfillment"
	"erp-backend/internal/models"
	"erp-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.Local)

func setup(t *testing.T) (fulfillment.Service, *store.Store, *mockDispatcher) {
	t.Helper()
	st := store.New()
	dispatcher := &mockDispatcher{}
	svc := fulfillment.NewService(st, dispatcher, func() time.Time { return fixedNow })

	st.AddSupplier(models.Supplier{ID: "SUP-001", Name: "Test Tedarik A.Ş."})
	st.AddCustomer(models.Customer{ID: "CUST-001", Name: "Mehmet Yılmaz"})
	st.AddProduct(models.Product{ID: "1", Name: "MacBook Pro M3", Category: "Elektronik", Quantity: 45, Price: 59900})

	return svc, st, dispatcher
}

func seedDraftPO(st *store.Store) {
	_ = st.Update(func(d *store.Data) error {
		d.PurchaseOrders["PO-1"] = &models.PurchaseOrder{
			ID: "PO-1", SupplierID: "SUP-001", ProductID: "1",
			Quantity: 10, UnitPrice: 50000, Date: fixedNow, Status: models.PurchaseOrderStatusDraft,
		}
		return nil
	})
}

func seedPendingOrder(st *store.Store, quantity int, total float64) {
	_ = st.Update(func(d *store.Data) error {
		d.Orders["ORD-1"] = &models.Order{
			ID: "ORD-1", CustomerID: "CUST-001", ProductID: "1",
			Quantity: quantity, Date: fixedNow, Total: total, Status: models.OrderStatusPending,
		}
		return nil
	})
}

func TestReceivePurchaseOrder(t *testing.T) {
	svc, st, dispatcher := setup(t)
	seedDraftPO(st)

	require.NoError(t, svc.ReceivePurchaseOrder("PO-1"))

	product, ok := st.FindProduct("1")
	require.True(t, ok)
	assert.Equal(t, 55, product.Quantity)

	po, ok := st.FindPurchaseOrder("PO-1")
	require.True(t, ok)
	assert.Equal(t, models.PurchaseOrderStatusReceived, po.Status)

	txs := st.ListTransactions(models.TransactionTypeExpense)
	require.Len(t, txs, 1)
	assert.Equal(t, 500000.0, txs[0].Amount)
	assert.Equal(t, models.CategoryProcurementReceipt, txs[0].Category)
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local), txs[0].Date)

	require.Len(t, dispatcher.events, 1)
	received, ok := dispatcher.events[0].(fulfillment.PurchaseOrderReceived)
	require.True(t, ok)
	assert.Equal(t, 500000.0, received.Amount)
}

func TestReceivePurchaseOrderTwice(t *testing.T) {
	svc, st, _ := setup(t)
	seedDraftPO(st)

	require.NoError(t, svc.ReceivePurchaseOrder("PO-1"))

	// İkinci çağrı durum hatası döner ve hiçbir kaydı değiştirmez
	err := svc.ReceivePurchaseOrder("PO-1")
	assert.ErrorIs(t, err, fulfillment.ErrInvalidStateTransition)

	product, _ := st.FindProduct("1")
	assert.Equal(t, 55, product.Quantity)
	assert.Len(t, st.ListTransactions(""), 1)
}

func TestReceivePurchaseOrderNotFound(t *testing.T) {
	svc, st, _ := setup(t)

	err := svc.ReceivePurchaseOrder("PO-404")
	assert.ErrorIs(t, err, fulfillment.ErrPurchaseOrderNotFound)

	product, _ := st.FindProduct("1")
	assert.Equal(t, 45, product.Quantity)
}

func TestShipOrder(t *testing.T) {
	svc, st, dispatcher := setup(t)
	seedPendingOrder(st, 1, 59900)

	require.NoError(t, svc.ShipOrder("ORD-1", "Hızlı Kargo", "TRK1"))

	product, _ := st.FindProduct("1")
	assert.Equal(t, 44, product.Quantity)

	order, ok := st.FindOrder("ORD-1")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
	require.NotNil(t, order.Logistics)
	assert.Equal(t, "Hızlı Kargo", order.Logistics.Carrier)
	assert.Equal(t, "TRK1", order.Logistics.TrackingNo)
	assert.Equal(t, fixedNow, order.Logistics.ShippedAt)

	invoices := st.ListInvoices()
	require.Len(t, invoices, 1)
	assert.Equal(t, "ORD-1", invoices[0].OrderID)
	assert.Equal(t, 59900.0, invoices[0].Amount)
	assert.Equal(t, 2995.0, invoices[0].Tax)
	assert.Equal(t, "Mehmet Yılmaz", invoices[0].CustomerName)

	incomes := st.ListTransactions(models.TransactionTypeIncome)
	require.Len(t, incomes, 1)
	assert.Equal(t, 59900.0, incomes[0].Amount)
	assert.Equal(t, models.CategorySalesShipment, incomes[0].Category)

	require.Len(t, dispatcher.events, 1)
	shipped, ok := dispatcher.events[0].(fulfillment.OrderShipped)
	require.True(t, ok)
	assert.Equal(t, invoices[0].ID, shipped.Invoice.ID)
}

func TestShipOrderInsufficientStock(t *testing.T) {
	svc, st, dispatcher := setup(t)
	seedPendingOrder(st, 50, 2995000)

	err := svc.ShipOrder("ORD-1", "X", "Y")

	var stockErr *fulfillment.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 45, stockErr.Available)
	assert.Equal(t, 50, stockErr.Required)

	// Hiçbir kayıt değişmemiş olmalı
	product, _ := st.FindProduct("1")
	assert.Equal(t, 45, product.Quantity)
	order, _ := st.FindOrder("ORD-1")
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Nil(t, order.Logistics)
	assert.Empty(t, st.ListInvoices())
	assert.Empty(t, st.ListTransactions(""))
	assert.Empty(t, dispatcher.events)
}

func TestShipOrderNotPending(t *testing.T) {
	svc, st, _ := setup(t)
	seedPendingOrder(st, 1, 59900)
	require.NoError(t, svc.ShipOrder("ORD-1", "Hızlı Kargo", "TRK1"))

	err := svc.ShipOrder("ORD-1", "Hızlı Kargo", "TRK2")
	assert.ErrorIs(t, err, fulfillment.ErrInvalidStateTransition)

	// Stok ve fatura ikinci çağrıdan etkilenmez
	product, _ := st.FindProduct("1")
	assert.Equal(t, 44, product.Quantity)
	assert.Len(t, st.ListInvoices(), 1)
}

func TestShipOrderNotFound(t *testing.T) {
	svc, _, _ := setup(t)
	err := svc.ShipOrder("ORD-404", "X", "Y")
	assert.ErrorIs(t, err, fulfillment.ErrOrderNotFound)
}

func TestShipOrderUnknownCustomerName(t *testing.T) {
	svc, st, _ := setup(t)
	_ = st.Update(func(d *store.Data) error {
		d.Orders["ORD-2"] = &models.Order{
			ID: "ORD-2", CustomerID: "CUST-SILINMIS", ProductID: "1",
			Quantity: 1, Date: fixedNow, Total: 59900, Status: models.OrderStatusPending,
		}
		return nil
	})

	require.NoError(t, svc.ShipOrder("ORD-2", "X", "Y"))

	invoices := st.ListInvoices()
	require.Len(t, invoices, 1)
	assert.Equal(t, "Bilinmeyen müşteri", invoices[0].CustomerName)
}

func TestMarkOrderDelivered(t *testing.T) {
	svc, st, dispatcher := setup(t)
	seedPendingOrder(st, 1, 59900)

	// PENDING sipariş teslim edilemez
	err := svc.MarkOrderDelivered("ORD-1")
	assert.ErrorIs(t, err, fulfillment.ErrInvalidStateTransition)

	require.NoError(t, svc.ShipOrder("ORD-1", "Hızlı Kargo", "TRK1"))
	dispatcher.Reset()

	require.NoError(t, svc.MarkOrderDelivered("ORD-1"))
	order, _ := st.FindOrder("ORD-1")
	assert.Equal(t, models.OrderStatusDelivered, order.Status)

	// Teslimatın finansal yan etkisi yok
	assert.Len(t, st.ListInvoices(), 1)
	assert.Len(t, st.ListTransactions(""), 1)

	require.Len(t, dispatcher.events, 1)
	_, ok := dispatcher.events[0].(fulfillment.OrderDelivered)
	assert.True(t, ok)
}

func TestCreatePurchaseOrder(t *testing.T) {
	svc, _, dispatcher := setup(t)

	t.Run("Success", func(t *testing.T) {
		po, err := svc.CreatePurchaseOrder(fulfillment.CreatePurchaseOrderInput{
			SupplierID: "SUP-001", ProductID: "1", Quantity: 10, UnitPrice: 50000,
		})
		require.NoError(t, err)
		assert.Equal(t, "PO-0001", po.ID)
		assert.Equal(t, models.PurchaseOrderStatusDraft, po.Status)

		require.Len(t, dispatcher.events, 1)
		_, ok := dispatcher.events[0].(fulfillment.PurchaseOrderCreated)
		assert.True(t, ok)
	})

	t.Run("Fail on invalid quantity", func(t *testing.T) {
		_, err := svc.CreatePurchaseOrder(fulfillment.CreatePurchaseOrderInput{
			SupplierID: "SUP-001", ProductID: "1", Quantity: 0, UnitPrice: 50000,
		})
		assert.ErrorIs(t, err, fulfillment.ErrInvalidQuantity)
	})

	t.Run("Fail on negative unit price", func(t *testing.T) {
		_, err := svc.CreatePurchaseOrder(fulfillment.CreatePurchaseOrderInput{
			SupplierID: "SUP-001", ProductID: "1", Quantity: 1, UnitPrice: -1,
		})
		assert.ErrorIs(t, err, fulfillment.ErrInvalidUnitPrice)
	})

	t.Run("Fail on unknown supplier", func(t *testing.T) {
		_, err := svc.CreatePurchaseOrder(fulfillment.CreatePurchaseOrderInput{
			SupplierID: "SUP-404", ProductID: "1", Quantity: 1, UnitPrice: 100,
		})
		assert.ErrorIs(t, err, fulfillment.ErrSupplierNotFound)
	})
}

func TestCreateSalesOrder(t *testing.T) {
	svc, st, _ := setup(t)

	order, err := svc.CreateSalesOrder(fulfillment.CreateSalesOrderInput{
		CustomerID: "CUST-001", ProductID: "1", Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-0001", order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 119800.0, order.Total)

	// Sonraki fiyat değişikliği mevcut siparişin tutarını etkilemez
	_, ok := st.UpdateProduct("1", func(p *models.Product) { p.Price = 64900 })
	require.True(t, ok)

	stored, ok := st.FindOrder("ORD-0001")
	require.True(t, ok)
	assert.Equal(t, 119800.0, stored.Total)
}

func TestCreateSalesOrderValidation(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.CreateSalesOrder(fulfillment.CreateSalesOrderInput{
		CustomerID: "CUST-001", ProductID: "1", Quantity: 0,
	})
	assert.ErrorIs(t, err, fulfillment.ErrInvalidQuantity)

	_, err = svc.CreateSalesOrder(fulfillment.CreateSalesOrderInput{
		CustomerID: "CUST-404", ProductID: "1", Quantity: 1,
	})
	assert.ErrorIs(t, err, fulfillment.ErrCustomerNotFound)

	_, err = svc.CreateSalesOrder(fulfillment.CreateSalesOrderInput{
		CustomerID: "CUST-001", ProductID: "404", Quantity: 1,
	})
	assert.ErrorIs(t, err, fulfillment.ErrProductNotFound)
}

// Her mal kabulü / sevkiyat dizisinin sonunda stok asla negatif olamaz:
// yetersiz stokta sevkiyat reddedilir.
func TestQuantityNeverNegative(t *testing.T) {
	svc, st, _ := setup(t)

	for i := 0; i < 3; i++ {
		order, err := svc.CreateSalesOrder(fulfillment.CreateSalesOrderInput{
			CustomerID: "CUST-001", ProductID: "1", Quantity: 20,
		})
		require.NoError(t, err)

		err = svc.ShipOrder(order.ID, "X", order.ID)
		product, _ := st.FindProduct("1")
		if err != nil {
			var stockErr *fulfillment.InsufficientStockError
			require.ErrorAs(t, err, &stockErr)
			assert.Equal(t, product.Quantity, stockErr.Available)
		}
		assert.GreaterOrEqual(t, product.Quantity, 0)
	}

	product, _ := st.FindProduct("1")
	assert.Equal(t, 5, product.Quantity) // 45 - 20 - 20, üçüncü sevkiyat reddedildi
}

var _ fulfillment.EventDispatcher = &mockDispatcher{}

type mockDispatcher struct {
	events []fulfillment.Event
}

func (m *mockDispatcher) Dispatch(event fulfillment.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockDispatcher) Reset() {
	m.events = nil
}
