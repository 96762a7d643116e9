package entity

import "github.com/shopspring/decimal"

func init() {
	// prices are plain JSON numbers on the wire
	decimal.MarshalJSONWithoutQuotes = true
}

// Item is a supplier's priced registration of a SKU.
type Item struct {
	ID          uint            `json:"id" gorm:"primaryKey;autoIncrement:false"`
	SupplierID  uint            `json:"supplierId" gorm:"primaryKey;autoIncrement:false;uniqueIndex:idx_wms_items_supplier_sku"`
	SKUID       uint            `json:"SKUId" gorm:"column:sku_id;not null;uniqueIndex:idx_wms_items_supplier_sku"`
	Description string          `json:"description" gorm:"size:255"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
}

func (Item) TableName() string {
	return "wms_items"
}

// ItemKey identifies an item within a supplier's catalogue.
type ItemKey struct {
	ID         uint
	SupplierID uint
}
