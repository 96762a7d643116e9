package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SKU is a product type definition.
type SKU struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	Description       string          `json:"description" gorm:"size:255"`
	Weight            float64         `json:"weight"`
	Volume            float64         `json:"volume"`
	Notes             string          `json:"notes" gorm:"type:text"`
	Price             decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	AvailableQuantity int             `json:"availableQuantity" gorm:"default:0"`
}

func (SKU) TableName() string {
	return "wms_skus"
}

// SKUItem is one physical, RFID tagged unit of a SKU.
type SKUItem struct {
	RFID           string     `json:"RFID" gorm:"column:rfid;primaryKey;size:32"`
	SKUID          uint       `json:"SKUId" gorm:"column:sku_id;not null;index"`
	Available      bool       `json:"Available" gorm:"not null;default:false"`
	RestockOrderID *uint      `json:"restockOrderId" gorm:"index"`
	DateOfStock    *time.Time `json:"DateOfStock"`
}

func (SKUItem) TableName() string {
	return "wms_sku_items"
}

// TestResult is the outcome of one quality test on a SKU item.
type TestResult struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	TestDescriptorID uint      `json:"idTestDescriptor" gorm:"not null"`
	RFID             string    `json:"rfid" gorm:"column:rfid;size:32;not null;index"`
	Date             time.Time `json:"Date" gorm:"not null"`
	Result           bool      `json:"Result"`
}

func (TestResult) TableName() string {
	return "wms_test_results"
}
