package entity

import "time"

// RestockOrder is a replenishment order placed with a supplier.
type RestockOrder struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	IssueDate    time.Time  `json:"issueDate" gorm:"not null"`
	State        string     `json:"state" gorm:"size:20;not null;index"`
	SupplierID   uint       `json:"supplierId" gorm:"not null;index"`
	DeliveryDate *time.Time `json:"deliveryDate"` // transport note, nil until set
	TransportDoc string     `json:"transportDoc" gorm:"size:255"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}

func (RestockOrder) TableName() string {
	return "wms_restock_orders"
}

// Restock order states
const (
	RestockStateIssued          = "ISSUED"
	RestockStateDelivery        = "DELIVERY"
	RestockStateDelivered       = "DELIVERED"
	RestockStateTested          = "TESTED"
	RestockStateCompletedReturn = "COMPLETEDRETURN"
	RestockStateCompleted       = "COMPLETED"
)

// RestockTransitions is checked before every restock order state change.
var RestockTransitions = Transitions{
	RestockStateIssued:          {RestockStateDelivery},
	RestockStateDelivery:        {RestockStateDelivered},
	RestockStateDelivered:       {RestockStateTested},
	RestockStateTested:          {RestockStateCompletedReturn, RestockStateCompleted},
	RestockStateCompletedReturn: {RestockStateCompleted},
	RestockStateCompleted:       {},
}

// RestockOrderItem is one ordered line of a restock order.
type RestockOrderItem struct {
	ID             uint `json:"id" gorm:"primaryKey"`
	RestockOrderID uint `json:"restockOrderId" gorm:"not null;index"`
	ItemID         uint `json:"itemId" gorm:"not null"`
	SKUID          uint `json:"SKUId" gorm:"column:sku_id;not null"`
	Quantity       int  `json:"qty" gorm:"not null"`
}

func (RestockOrderItem) TableName() string {
	return "wms_restock_order_items"
}
