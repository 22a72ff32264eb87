package store_test

import (
	"testing"
	"time"

	"erp-backend/internal/models"
	"erp-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDocumentNo(t *testing.T) {
	st := store.New()

	var first, second, other string
	require.NoError(t, st.Update(func(d *store.Data) error {
		first = d.NextDocumentNo("PO")
		second = d.NextDocumentNo("PO")
		other = d.NextDocumentNo("ORD")
		return nil
	}))

	assert.Equal(t, "PO-0001", first)
	assert.Equal(t, "PO-0002", second)
	// Sayaçlar önek başına bağımsızdır
	assert.Equal(t, "ORD-0001", other)
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := store.NewID("PRD")
		assert.True(t, len(id) > len("PRD-"))
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestSeedDemoData(t *testing.T) {
	st := store.New()
	st.SeedDemoData()

	products := st.ListProducts()
	require.Len(t, products, 4)
	assert.Equal(t, "MacBook Pro M3", products[0].Name)
	assert.Equal(t, 45, products[0].Quantity)

	assert.Len(t, st.ListSuppliers(), 2)
	assert.Len(t, st.ListCustomers(), 2)
	assert.Len(t, st.ListWarehouseLocations(), 2)
	assert.Len(t, st.ListPurchaseOrders(""), 1)
	assert.Len(t, st.ListOrders(""), 1)
	assert.Len(t, st.ListInvoices(), 1)
	assert.Len(t, st.ListTransactions(""), 1)

	// Belge sayaçları mevcut demo kayıtlarının devamından başlar
	require.NoError(t, st.Update(func(d *store.Data) error {
		assert.Equal(t, "PO-0002", d.NextDocumentNo("PO"))
		assert.Equal(t, "ORD-0002", d.NextDocumentNo("ORD"))
		assert.Equal(t, "INV-0002", d.NextDocumentNo("INV"))
		assert.Equal(t, "T-0002", d.NextDocumentNo("T"))
		return nil
	}))
}

func TestAddProductGeneratesID(t *testing.T) {
	st := store.New()

	created := st.AddProduct(models.Product{Name: "Monitör", Category: "Elektronik", Quantity: 5, Price: 12000})
	assert.NotEmpty(t, created.ID)

	found, ok := st.FindProduct(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Monitör", found.Name)
}

func TestUpdateProduct(t *testing.T) {
	st := store.New()
	st.AddProduct(models.Product{ID: "1", Name: "MacBook Pro M3", Price: 59900})

	updated, ok := st.UpdateProduct("1", func(p *models.Product) { p.Price = 64900 })
	require.True(t, ok)
	assert.Equal(t, 64900.0, updated.Price)

	found, _ := st.FindProduct("1")
	assert.Equal(t, 64900.0, found.Price)

	_, ok = st.UpdateProduct("404", func(p *models.Product) { p.Price = 1 })
	assert.False(t, ok)
}

func TestListOrdersReturnsCopies(t *testing.T) {
	st := store.New()
	shippedAt := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.Local)
	require.NoError(t, st.Update(func(d *store.Data) error {
		d.Orders["ORD-1"] = &models.Order{
			ID: "ORD-1", CustomerID: "CUST-001", ProductID: "1",
			Quantity: 1, Total: 59900, Status: models.OrderStatusShipped,
			Logistics: &models.Logistics{Carrier: "Hızlı Kargo", TrackingNo: "TRK1", ShippedAt: shippedAt},
		}
		return nil
	}))

	orders := st.ListOrders("")
	require.Len(t, orders, 1)

	// Kopya üzerindeki değişiklik store'a yansımamalı
	orders[0].Status = models.OrderStatusDelivered
	orders[0].Logistics.TrackingNo = "DEGISTI"

	stored, ok := st.FindOrder("ORD-1")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusShipped, stored.Status)
	assert.Equal(t, "TRK1", stored.Logistics.TrackingNo)
}

func TestListOrdersStatusFilter(t *testing.T) {
	st := store.New()
	require.NoError(t, st.Update(func(d *store.Data) error {
		d.Orders["ORD-1"] = &models.Order{ID: "ORD-1", Status: models.OrderStatusPending}
		d.Orders["ORD-2"] = &models.Order{ID: "ORD-2", Status: models.OrderStatusShipped}
		d.Orders["ORD-3"] = &models.Order{ID: "ORD-3", Status: models.OrderStatusPending}
		return nil
	}))

	pending := st.ListOrders(models.OrderStatusPending)
	require.Len(t, pending, 2)
	assert.Equal(t, "ORD-1", pending[0].ID)
	assert.Equal(t, "ORD-3", pending[1].ID)

	assert.Len(t, st.ListOrders(models.OrderStatusDelivered), 0)
}

func TestListTransactionsTypeFilter(t *testing.T) {
	st := store.New()
	require.NoError(t, st.Update(func(d *store.Data) error {
		d.Transactions = append(d.Transactions,
			models.Transaction{ID: "T-0001", Type: models.TransactionTypeIncome, Amount: 100},
			models.Transaction{ID: "T-0002", Type: models.TransactionTypeExpense, Amount: 40},
			models.Transaction{ID: "T-0003", Type: models.TransactionTypeIncome, Amount: 60},
		)
		return nil
	}))

	incomes := st.ListTransactions(models.TransactionTypeIncome)
	require.Len(t, incomes, 2)
	assert.Equal(t, 100.0, incomes[0].Amount)

	assert.Len(t, st.ListTransactions(""), 3)
}

func TestAppendAuditLog(t *testing.T) {
	st := store.New()

	first := st.AppendAuditLog(models.AuditLog{Action: models.AuditActionCreate, Description: "test"})
	second := st.AppendAuditLog(models.AuditLog{Action: models.AuditActionShip, Description: "test"})

	assert.Equal(t, "LOG-0001", first.ID)
	assert.Equal(t, "LOG-0002", second.ID)
	assert.Len(t, st.ListAuditLogs(), 2)
}
