package entity

// User types
const (
	UserTypeCustomer         = "customer"
	UserTypeSupplier         = "supplier"
	UserTypeClerk            = "clerk"
	UserTypeQualityEmployee  = "qualityEmployee"
	UserTypeDeliveryEmployee = "deliveryEmployee"
	UserTypeManager          = "manager"
)

// User is a warehouse account. The same email may hold one row per type.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"email" gorm:"size:128;not null;uniqueIndex:idx_wms_users_username_type"`
	Name     string `json:"name" gorm:"size:64"`
	Surname  string `json:"surname" gorm:"size:64"`
	Type     string `json:"type" gorm:"size:20;not null;uniqueIndex:idx_wms_users_username_type"`
	Password string `json:"-" gorm:"size:255"`
}

func (User) TableName() string {
	return "wms_users"
}
