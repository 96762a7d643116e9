package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories groups every warehouse repository over one *gorm.DB.
type Repositories struct {
	db *gorm.DB

	RestockOrder  *RestockOrderRepository
	InternalOrder *InternalOrderRepository
	ReturnOrder   *ReturnOrderRepository
	Item          *ItemRepository
	SKU           *SKURepository
	SKUItem       *SKUItemRepository
	TestResult    *TestResultRepository
	User          *UserRepository
}

// NewRepositories builds the repository set.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:            db,
		RestockOrder:  NewRestockOrderRepository(db),
		InternalOrder: NewInternalOrderRepository(db),
		ReturnOrder:   NewReturnOrderRepository(db),
		Item:          NewItemRepository(db),
		SKU:           NewSKURepository(db),
		SKUItem:       NewSKUItemRepository(db),
		TestResult:    NewTestResultRepository(db),
		User:          NewUserRepository(db),
	}
}

// Transaction runs fn with a repository set bound to a single transaction.
// Any error returned by fn rolls the transaction back.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
