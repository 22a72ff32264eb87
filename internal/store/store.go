package store

import (
	"fmt"
	"sync"

	"erp-backend/internal/models"

	"github.com/google/uuid"
)

// Store - Tüm kayıt koleksiyonlarının tek sahibi. Kalıcı bir veritabanı yok;
// her şey süreç belleğinde yaşar ve oturumla birlikte kaybolur.
//
// Motorun "üç mutasyon tek birim" garantisi buradaki kilide dayanır: bir
// Update çalışırken hiçbir okuyucu ara durumu göremez.
type Store struct {
	mu   sync.RWMutex
	data Data
}

// Data - Süreç genelindeki kayıt koleksiyonları. Yalnızca Store kilidi
// altında (View/Update içinde) erişilir.
type Data struct {
	Products           map[string]*models.Product
	Suppliers          map[string]*models.Supplier
	Customers          map[string]*models.Customer
	WarehouseLocations map[string]*models.WarehouseLocation
	PurchaseOrders     map[string]*models.PurchaseOrder
	Orders             map[string]*models.Order

	// Yalnızca eklenen defterler
	Invoices     []models.Invoice
	Transactions []models.Transaction
	AuditLogs    []models.AuditLog

	seq map[string]int // belge numarası sayaçları (önek -> son numara)
}

func New() *Store {
	return &Store{
		data: Data{
			Products:           make(map[string]*models.Product),
			Suppliers:          make(map[string]*models.Supplier),
			Customers:          make(map[string]*models.Customer),
			WarehouseLocations: make(map[string]*models.WarehouseLocation),
			PurchaseOrders:     make(map[string]*models.PurchaseOrder),
			Orders:             make(map[string]*models.Order),
			seq:                make(map[string]int),
		},
	}
}

// View - Kilit altında salt okuma. fn içinde koleksiyonlar değiştirilmemeli.
func (s *Store) View(fn func(d *Data)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// Update - Kilit altında yazma. fn hata dönerse yapılan atamalar geri
// alınmaz; bu yüzden fn önce tüm ön koşulları doğrulamalı, mutasyonları en
// sona bırakmalı.
func (s *Store) Update(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// NextDocumentNo - Önek bazlı artan belge numarası üretir: "PO-0001" gibi.
// Yalnızca Update içinde çağrılmalı.
func (d *Data) NextDocumentNo(prefix string) string {
	d.seq[prefix]++
	return fmt.Sprintf("%s-%04d", prefix, d.seq[prefix])
}

// NewID - Katalog kayıtları için çakışma riski taşımayan kimlik üretir.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
