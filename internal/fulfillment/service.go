package fulfillment

import (
	"errors"
	"fmt"
	"math"
	"time"

	"erp-backend/internal/models"
	"erp-backend/internal/store"
)

// Satış faturalarına uygulanan sabit vergi oranı (%5)
const TaxRate = 0.05

var (
	ErrPurchaseOrderNotFound  = errors.New("satın alma siparişi bulunamadı")
	ErrOrderNotFound          = errors.New("satış siparişi bulunamadı")
	ErrProductNotFound        = errors.New("ürün bulunamadı")
	ErrSupplierNotFound       = errors.New("tedarikçi bulunamadı")
	ErrCustomerNotFound       = errors.New("müşteri bulunamadı")
	ErrInvalidStateTransition = errors.New("sipariş durumu bu işleme izin vermiyor")
	ErrInvalidQuantity        = errors.New("miktar 0'dan büyük olmalı")
	ErrInvalidUnitPrice       = errors.New("birim fiyat negatif olamaz")
)

// InsufficientStockError - Sevkiyat için eldeki stok yetersiz.
// Mevcut ve gereken miktarları taşır; hiçbir kayıt değiştirilmemiştir.
type InsufficientStockError struct {
	Available int
	Required  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stok yetersiz: mevcut %d, gereken %d", e.Available, e.Required)
}

type CreatePurchaseOrderInput struct {
	SupplierID string
	ProductID  string
	Quantity   int
	UnitPrice  float64
}

type CreateSalesOrderInput struct {
	CustomerID string
	ProductID  string
	Quantity   int
}

// Service - Sipariş/stok/defter tutarlılık motoru. Her işlem, etkilediği tüm
// kayıtları store kilidi altında tek birim olarak değiştirir; ara durum
// hiçbir okuyucuya görünmez.
type Service interface {
	CreatePurchaseOrder(in CreatePurchaseOrderInput) (*models.PurchaseOrder, error)
	CreateSalesOrder(in CreateSalesOrderInput) (*models.Order, error)
	ReceivePurchaseOrder(poID string) error
	ShipOrder(orderID, carrier, trackingNo string) error
	MarkOrderDelivered(orderID string) error
}

// NewService - dispatcher nil olabilir; now nil ise time.Now kullanılır.
func NewService(st *store.Store, dispatcher EventDispatcher, now func() time.Time) Service {
	if dispatcher == nil {
		dispatcher = noopDispatcher{}
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: st, dispatcher: dispatcher, now: now}
}

type service struct {
	store      *store.Store
	dispatcher EventDispatcher
	now        func() time.Time
}

func (s *service) CreatePurchaseOrder(in CreatePurchaseOrderInput) (*models.PurchaseOrder, error) {
	if in.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if in.UnitPrice < 0 {
		return nil, ErrInvalidUnitPrice
	}

	var created models.PurchaseOrder
	err := s.store.Update(func(d *store.Data) error {
		if _, ok := d.Suppliers[in.SupplierID]; !ok {
			return ErrSupplierNotFound
		}
		if _, ok := d.Products[in.ProductID]; !ok {
			return ErrProductNotFound
		}

		po := &models.PurchaseOrder{
			ID:         d.NextDocumentNo("PO"),
			SupplierID: in.SupplierID,
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			UnitPrice:  in.UnitPrice,
			Date:       dateOnly(s.now()),
			Status:     models.PurchaseOrderStatusDraft,
		}
		d.PurchaseOrders[po.ID] = po
		created = *po
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(PurchaseOrderCreated{PurchaseOrder: created})
	return &created, nil
}

func (s *service) CreateSalesOrder(in CreateSalesOrderInput) (*models.Order, error) {
	if in.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var created models.Order
	err := s.store.Update(func(d *store.Data) error {
		if _, ok := d.Customers[in.CustomerID]; !ok {
			return ErrCustomerNotFound
		}
		product, ok := d.Products[in.ProductID]
		if !ok {
			return ErrProductNotFound
		}

		// Tutar oluşturma anındaki fiyattan kopyalanır; sonraki fiyat
		// değişiklikleri bu siparişi etkilemez.
		order := &models.Order{
			ID:         d.NextDocumentNo("ORD"),
			CustomerID: in.CustomerID,
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			Date:       dateOnly(s.now()),
			Total:      product.Price * float64(in.Quantity),
			Status:     models.OrderStatusPending,
		}
		d.Orders[order.ID] = order
		created = *order
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(SalesOrderCreated{Order: created})
	return &created, nil
}

// ReceivePurchaseOrder - Mal kabulü: stok artar, sipariş RECEIVED olur,
// deftere gider işlenir. Sipariş zaten RECEIVED ise hiçbir kayıt değişmez ve
// ErrInvalidStateTransition döner (ikinci çağrının stok etkisi sıfırdır).
func (s *service) ReceivePurchaseOrder(poID string) error {
	var (
		received models.PurchaseOrder
		amount   float64
	)
	err := s.store.Update(func(d *store.Data) error {
		po, ok := d.PurchaseOrders[poID]
		if !ok {
			return ErrPurchaseOrderNotFound
		}
		if po.Status != models.PurchaseOrderStatusDraft {
			return ErrInvalidStateTransition
		}
		product, ok := d.Products[po.ProductID]
		if !ok {
			return ErrProductNotFound
		}

		now := s.now()
		product.Quantity += po.Quantity
		po.Status = models.PurchaseOrderStatusReceived

		amount = float64(po.Quantity) * po.UnitPrice
		d.Transactions = append(d.Transactions, models.Transaction{
			ID:          d.NextDocumentNo("T"),
			Date:        dateOnly(now),
			Type:        models.TransactionTypeExpense,
			Category:    models.CategoryProcurementReceipt,
			Amount:      amount,
			Description: fmt.Sprintf("Satın alma siparişi %s mal kabulü gideri", po.ID),
		})

		received = *po
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(PurchaseOrderReceived{PurchaseOrder: received, Amount: amount})
	return nil
}

// ShipOrder - Sevkiyat: stok düşer, siparişe kargo bilgisi iliştirilir,
// fatura ve gelir kaydı düşülür. Stok yetersizse hiçbir kayıt değişmeden
// *InsufficientStockError döner.
func (s *service) ShipOrder(orderID, carrier, trackingNo string) error {
	var (
		shipped models.Order
		invoice models.Invoice
	)
	err := s.store.Update(func(d *store.Data) error {
		order, ok := d.Orders[orderID]
		if !ok {
			return ErrOrderNotFound
		}
		if order.Status != models.OrderStatusPending {
			return ErrInvalidStateTransition
		}
		product, ok := d.Products[order.ProductID]
		if !ok {
			return ErrProductNotFound
		}
		if product.Quantity < order.Quantity {
			return &InsufficientStockError{Available: product.Quantity, Required: order.Quantity}
		}

		now := s.now()
		product.Quantity -= order.Quantity
		order.Status = models.OrderStatusShipped
		order.Logistics = &models.Logistics{
			Carrier:    carrier,
			TrackingNo: trackingNo,
			ShippedAt:  now,
		}

		// Müşteri adı fatura anında kopyalanır (denetim kaydı), canlı
		// referans değildir.
		customerName := "Bilinmeyen müşteri"
		if c, ok := d.Customers[order.CustomerID]; ok {
			customerName = c.Name
		}

		inv := models.Invoice{
			ID:           d.NextDocumentNo("INV"),
			OrderID:      order.ID,
			CustomerName: customerName,
			Amount:       order.Total,
			Date:         dateOnly(now),
			Tax:          roundCurrency(order.Total * TaxRate),
		}
		d.Invoices = append(d.Invoices, inv)

		d.Transactions = append(d.Transactions, models.Transaction{
			ID:          d.NextDocumentNo("T"),
			Date:        dateOnly(now),
			Type:        models.TransactionTypeIncome,
			Category:    models.CategorySalesShipment,
			Amount:      order.Total,
			Description: fmt.Sprintf("Sipariş %s sevkiyat geliri", order.ID),
		})

		shipped = *order
		invoice = inv
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(OrderShipped{Order: shipped, Invoice: invoice})
	return nil
}

// MarkOrderDelivered - Teslimat bildirimi dış kaynaklıdır (kargo firması);
// finansal yan etkisi yoktur.
func (s *service) MarkOrderDelivered(orderID string) error {
	var delivered models.Order
	err := s.store.Update(func(d *store.Data) error {
		order, ok := d.Orders[orderID]
		if !ok {
			return ErrOrderNotFound
		}
		if order.Status != models.OrderStatusShipped {
			return ErrInvalidStateTransition
		}
		order.Status = models.OrderStatusDelivered
		delivered = *order
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(OrderDelivered{Order: delivered})
	return nil
}

// roundCurrency - Kuruş hassasiyetine yuvarlama (yarım yukarı). Vergi
// hesabındaki kayan nokta kalıntısının defterlere birikmesini önler.
func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

// dateOnly - Defter kayıtları gün hassasiyetinde tarihlenir.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
