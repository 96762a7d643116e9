package entity

import "time"

// InternalOrder is a customer picking order served from stock.
type InternalOrder struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	IssueDate  time.Time `json:"issueDate" gorm:"not null"`
	State      string    `json:"state" gorm:"size:20;not null;index"`
	CustomerID uint      `json:"customerId" gorm:"not null;index"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (InternalOrder) TableName() string {
	return "wms_internal_orders"
}

// Internal order states
const (
	InternalStateIssued    = "ISSUED"
	InternalStateAccepted  = "ACCEPTED"
	InternalStateRefused   = "REFUSED"
	InternalStateCanceled  = "CANCELED"
	InternalStateCompleted = "COMPLETED"
)

// InternalTransitions is checked before every internal order state change.
var InternalTransitions = Transitions{
	InternalStateIssued:    {InternalStateAccepted, InternalStateRefused, InternalStateCanceled},
	InternalStateAccepted:  {InternalStateCompleted},
	InternalStateRefused:   {},
	InternalStateCanceled:  {},
	InternalStateCompleted: {},
}

// InternalOrderProduct is a requested line (SKU and quantity).
type InternalOrderProduct struct {
	ID              uint `gorm:"primaryKey"`
	InternalOrderID uint `gorm:"not null;index"`
	SKUID           uint `gorm:"column:sku_id;not null"`
	Quantity        int  `gorm:"not null"`
}

func (InternalOrderProduct) TableName() string {
	return "wms_internal_order_products"
}

// InternalOrderSKUItem is a fulfilled line (SKU and the unit handed out).
type InternalOrderSKUItem struct {
	ID              uint   `gorm:"primaryKey"`
	InternalOrderID uint   `gorm:"not null;index"`
	SKUID           uint   `gorm:"column:sku_id;not null"`
	RFID            string `gorm:"column:rfid;size:32;not null;index"`
}

func (InternalOrderSKUItem) TableName() string {
	return "wms_internal_order_sku_items"
}
