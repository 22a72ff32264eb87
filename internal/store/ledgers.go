package store

import (
	"sort"

	"erp-backend/internal/models"
)

// Defter okuma yardımcıları. Dönen dilimler kopyadır; çağıran tarafın
// değişiklikleri store'a yansımaz.

func (s *Store) FindPurchaseOrder(id string) (models.PurchaseOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	po, ok := s.data.PurchaseOrders[id]
	if !ok {
		return models.PurchaseOrder{}, false
	}
	return *po, true
}

// ListPurchaseOrders - status boş değilse yalnızca o durumdakiler döner.
func (s *Store) ListPurchaseOrders(status models.PurchaseOrderStatus) []models.PurchaseOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PurchaseOrder, 0, len(s.data.PurchaseOrders))
	for _, po := range s.data.PurchaseOrders {
		if status != "" && po.Status != status {
			continue
		}
		out = append(out, *po)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) FindOrder(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.data.Orders[id]
	if !ok {
		return models.Order{}, false
	}
	return cloneOrder(o), true
}

// ListOrders - status boş değilse yalnızca o durumdakiler döner.
func (s *Store) ListOrders(status models.OrderStatus) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, 0, len(s.data.Orders))
	for _, o := range s.data.Orders {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) ListInvoices() []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Invoice, len(s.data.Invoices))
	copy(out, s.data.Invoices)
	return out
}

// ListTransactions - typ boş değilse yalnızca o yöndekiler döner.
func (s *Store) ListTransactions(typ models.TransactionType) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, 0, len(s.data.Transactions))
	for _, t := range s.data.Transactions {
		if typ != "" && t.Type != typ {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *Store) AppendAuditLog(entry models.AuditLog) models.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = s.data.NextDocumentNo("LOG")
	}
	s.data.AuditLogs = append(s.data.AuditLogs, entry)
	return entry
}

func (s *Store) ListAuditLogs() []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AuditLog, len(s.data.AuditLogs))
	copy(out, s.data.AuditLogs)
	return out
}

// cloneOrder - Logistics işaretçisini de kopyalar; dışarı sızan kopya
// üzerinden iç durumun değişmesini engeller.
func cloneOrder(o *models.Order) models.Order {
	clone := *o
	if o.Logistics != nil {
		l := *o.Logistics
		clone.Logistics = &l
	}
	return clone
}
