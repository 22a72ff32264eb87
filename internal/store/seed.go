package store

import (
	"time"

	"erp-backend/internal/models"
)

// SeedDemoData - Demo oturumu için başlangıç kayıtları. Belge sayaçları
// mevcut kayıtların devamından başlayacak şekilde kurulur.
func (s *Store) SeedDemoData() {
	mayFirst := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local)
	mayTenth := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.Local)

	_ = s.Update(func(d *Data) error {
		d.Suppliers["SUP-001"] = &models.Supplier{
			ID: "SUP-001", Name: "Akıllı Elektronik Tedarik A.Ş.", Contact: "Kerem Aydın",
			Phone: "0212-345-6789", Email: "satis@akillitedarik.com", Address: "İstanbul, Maslak Büyükdere Cad. 100",
		}
		d.Suppliers["SUP-002"] = &models.Supplier{
			ID: "SUP-002", Name: "Hassas Sanayi Ürünleri Ltd.", Contact: "Elif Demir",
			Phone: "0312-567-8901", Email: "iletisim@hassassanayi.com.tr", Address: "Ankara, OSTİM Sanayi Sitesi 1. Cad.",
		}

		d.Customers["CUST-001"] = &models.Customer{
			ID: "CUST-001", Name: "Mehmet Yılmaz", Contact: "Mehmet Yılmaz",
			Phone: "0532-345-6789", Email: "mehmet@gmail.com", Address: "İzmir, Karşıyaka Cemal Gürsel Cad.",
		}
		d.Customers["CUST-002"] = &models.Customer{
			ID: "CUST-002", Name: "Dijital Atölye Tasarım", Contact: "Deniz Kaya",
			Phone: "0216-888-9999", Email: "info@dijitalatolye.io", Address: "İstanbul, Kadıköy Bağdat Cad.",
		}

		d.WarehouseLocations["WH-001"] = &models.WarehouseLocation{
			ID: "WH-001", Name: "Merkez Depo", Location: "Kocaeli, Gebze", Manager: "Hasan Usta", Type: models.WarehouseTypeMain,
		}
		d.WarehouseLocations["WH-002"] = &models.WarehouseLocation{
			ID: "WH-002", Name: "Güney Lojistik Merkezi", Location: "Mersin, Akdeniz", Manager: "Ayşe Hanım", Type: models.WarehouseTypeBuffer,
		}

		d.Products["1"] = &models.Product{ID: "1", Name: "MacBook Pro M3", Category: "Elektronik", Quantity: 45, Price: 59900, Description: "Yüksek performanslı dizüstü bilgisayar"}
		d.Products["2"] = &models.Product{ID: "2", Name: "iPhone 15 Pro", Category: "Elektronik", Quantity: 120, Price: 36900, Description: "Amiral gemisi akıllı telefon"}
		d.Products["3"] = &models.Product{ID: "3", Name: "Ergonomik Sandalye", Category: "Mobilya", Quantity: 30, Price: 8500, Description: "Ergonomik ofis sandalyesi"}
		d.Products["4"] = &models.Product{ID: "4", Name: "Mekanik Klavye", Category: "Aksesuar", Quantity: 85, Price: 3200, Description: "Üst segment mekanik klavye"}

		d.PurchaseOrders["PO-0001"] = &models.PurchaseOrder{
			ID: "PO-0001", SupplierID: "SUP-001", ProductID: "1",
			Quantity: 10, UnitPrice: 50000, Date: mayFirst, Status: models.PurchaseOrderStatusReceived,
		}
		d.seq["PO"] = 1

		d.Orders["ORD-0001"] = &models.Order{
			ID: "ORD-0001", CustomerID: "CUST-001", ProductID: "1",
			Quantity: 1, Date: mayTenth, Total: 59900, Status: models.OrderStatusDelivered,
			Logistics: &models.Logistics{Carrier: "Hızlı Kargo", TrackingNo: "TRK-10000001", ShippedAt: mayTenth},
		}
		d.seq["ORD"] = 1

		d.Invoices = append(d.Invoices, models.Invoice{
			ID: "INV-0001", OrderID: "ORD-0001", CustomerName: "Mehmet Yılmaz",
			Amount: 59900, Date: mayTenth, Tax: 2995,
		})
		d.seq["INV"] = 1

		d.Transactions = append(d.Transactions, models.Transaction{
			ID: "T-0001", Date: mayFirst, Type: models.TransactionTypeIncome,
			Category: "sales", Amount: 450000, Description: "Mayıs ilk hafta satış geliri",
		})
		d.seq["T"] = 1

		return nil
	})
}
