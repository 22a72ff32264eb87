package store

import (
	"sort"

	"erp-backend/internal/models"
)

// Katalog (ana veri) yardımcıları. Hepsi kendi kilidini alır; motorun çok
// adımlı işlemleri bunları değil, doğrudan Update'i kullanır.

func (s *Store) AddProduct(p models.Product) models.Product {
	if p.ID == "" {
		p.ID = NewID("PRD")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Products[p.ID] = &p
	return p
}

func (s *Store) FindProduct(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data.Products[id]
	if !ok {
		return models.Product{}, false
	}
	return *p, true
}

// UpdateProduct - Ürün ana verisini kilit altında günceller. Ürün yoksa
// false döner, fn çağrılmaz.
func (s *Store) UpdateProduct(id string, fn func(p *models.Product)) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data.Products[id]
	if !ok {
		return models.Product{}, false
	}
	fn(p)
	return *p, true
}

func (s *Store) ListProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.data.Products))
	for _, p := range s.data.Products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) AddSupplier(sup models.Supplier) models.Supplier {
	if sup.ID == "" {
		sup.ID = NewID("SUP")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Suppliers[sup.ID] = &sup
	return sup
}

func (s *Store) ListSuppliers() []models.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Supplier, 0, len(s.data.Suppliers))
	for _, sup := range s.data.Suppliers {
		out = append(out, *sup)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) AddCustomer(c models.Customer) models.Customer {
	if c.ID == "" {
		c.ID = NewID("CUST")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Customers[c.ID] = &c
	return c
}

func (s *Store) ListCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, 0, len(s.data.Customers))
	for _, c := range s.data.Customers {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) AddWarehouseLocation(w models.WarehouseLocation) models.WarehouseLocation {
	if w.ID == "" {
		w.ID = NewID("WH")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.WarehouseLocations[w.ID] = &w
	return w
}

func (s *Store) ListWarehouseLocations() []models.WarehouseLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WarehouseLocation, 0, len(s.data.WarehouseLocations))
	for _, w := range s.data.WarehouseLocations {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
