package repository

import (
	"context"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InternalOrderRepository persists internal order headers, requested lines
// and fulfilled lines.
type InternalOrderRepository struct {
	db *gorm.DB
}

func NewInternalOrderRepository(db *gorm.DB) *InternalOrderRepository {
	return &InternalOrderRepository{db: db}
}

// Create inserts the header and fills its generated ID.
func (r *InternalOrderRepository) Create(ctx context.Context, order *entity.InternalOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// CreateProducts inserts requested lines.
func (r *InternalOrderRepository) CreateProducts(ctx context.Context, products []entity.InternalOrderProduct) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&products).Error
}

// CreateSKUItems inserts fulfilled lines.
func (r *InternalOrderRepository) CreateSKUItems(ctx context.Context, items []entity.InternalOrderSKUItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// FindByID reads one header.
func (r *InternalOrderRepository) FindByID(ctx context.Context, id uint) (*entity.InternalOrder, error) {
	var order entity.InternalOrder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &order, nil
}

// FindByIDForUpdate reads the header with a row lock. Call inside a transaction.
func (r *InternalOrderRepository) FindByIDForUpdate(ctx context.Context, id uint) (*entity.InternalOrder, error) {
	var order entity.InternalOrder
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &order, nil
}

func (r *InternalOrderRepository) FindAll(ctx context.Context) ([]entity.InternalOrder, error) {
	var orders []entity.InternalOrder
	err := r.db.WithContext(ctx).Order("id ASC").Find(&orders).Error
	return orders, err
}

func (r *InternalOrderRepository) FindByState(ctx context.Context, state string) ([]entity.InternalOrder, error) {
	var orders []entity.InternalOrder
	err := r.db.WithContext(ctx).Where("state = ?", state).Order("id ASC").Find(&orders).Error
	return orders, err
}

// FindProducts returns the requested lines of the given orders.
func (r *InternalOrderRepository) FindProducts(ctx context.Context, orderIDs []uint) ([]entity.InternalOrderProduct, error) {
	var products []entity.InternalOrderProduct
	if len(orderIDs) == 0 {
		return products, nil
	}
	err := r.db.WithContext(ctx).
		Where("internal_order_id IN ?", orderIDs).
		Order("internal_order_id ASC, id ASC").
		Find(&products).Error
	return products, err
}

// FindSKUItems returns the fulfilled lines of the given orders.
func (r *InternalOrderRepository) FindSKUItems(ctx context.Context, orderIDs []uint) ([]entity.InternalOrderSKUItem, error) {
	var items []entity.InternalOrderSKUItem
	if len(orderIDs) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).
		Where("internal_order_id IN ?", orderIDs).
		Order("internal_order_id ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *InternalOrderRepository) UpdateState(ctx context.Context, id uint, state string) error {
	return r.db.WithContext(ctx).Model(&entity.InternalOrder{}).
		Where("id = ?", id).
		Update("state", state).Error
}

// DeleteLines removes requested and fulfilled lines of an order.
func (r *InternalOrderRepository) DeleteLines(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("internal_order_id = ?", id).Delete(&entity.InternalOrderProduct{}).Error; err != nil {
		return err
	}
	return db.Where("internal_order_id = ?", id).Delete(&entity.InternalOrderSKUItem{}).Error
}

// Delete removes the header only.
func (r *InternalOrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.InternalOrder{}).Error
}
