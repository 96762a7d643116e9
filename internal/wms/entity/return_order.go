package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnOrder sends failed units of a restock order back to the supplier.
type ReturnOrder struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ReturnDate     time.Time `json:"returnDate" gorm:"not null"`
	RestockOrderID uint      `json:"restockOrderId" gorm:"not null;index"`
	CreatedAt      time.Time `json:"-"`
}

func (ReturnOrder) TableName() string {
	return "wms_return_orders"
}

// ReturnOrderProduct is one returned unit.
type ReturnOrderProduct struct {
	ID            uint            `json:"-" gorm:"primaryKey"`
	ReturnOrderID uint            `json:"-" gorm:"not null;index"`
	SKUID         uint            `json:"SKUId" gorm:"column:sku_id;not null"`
	ItemID        uint            `json:"itemId"`
	Description   string          `json:"description" gorm:"size:255"`
	Price         decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	RFID          string          `json:"RFID" gorm:"column:rfid;size:32;not null"`
}

func (ReturnOrderProduct) TableName() string {
	return "wms_return_order_products"
}

// All returns every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&SKU{},
		&SKUItem{},
		&TestResult{},
		&Item{},
		&RestockOrder{},
		&RestockOrderItem{},
		&InternalOrder{},
		&InternalOrderProduct{},
		&InternalOrderSKUItem{},
		&ReturnOrder{},
		&ReturnOrderProduct{},
	}
}
