package models

// WarehouseType - Depo tipi
type WarehouseType string

const (
	WarehouseTypeMain   WarehouseType = "MAIN"   // ana depo
	WarehouseTypeCold   WarehouseType = "COLD"   // soğuk hava deposu
	WarehouseTypeBuffer WarehouseType = "BUFFER" // tampon depo
)

// WarehouseLocation - Depo lokasyonu ana verisi
type WarehouseLocation struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Location string        `json:"location"`
	Manager  string        `json:"manager"`
	Type     WarehouseType `json:"type"`
}
