package repository

import (
	"context"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"gorm.io/gorm"
)

// ReturnOrderRepository persists return orders and their products.
type ReturnOrderRepository struct {
	db *gorm.DB
}

func NewReturnOrderRepository(db *gorm.DB) *ReturnOrderRepository {
	return &ReturnOrderRepository{db: db}
}

func (r *ReturnOrderRepository) Create(ctx context.Context, order *entity.ReturnOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *ReturnOrderRepository) CreateProducts(ctx context.Context, products []entity.ReturnOrderProduct) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&products).Error
}

func (r *ReturnOrderRepository) FindByID(ctx context.Context, id uint) (*entity.ReturnOrder, error) {
	var order entity.ReturnOrder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &order, nil
}

func (r *ReturnOrderRepository) FindAll(ctx context.Context) ([]entity.ReturnOrder, error) {
	var orders []entity.ReturnOrder
	err := r.db.WithContext(ctx).Order("id ASC").Find(&orders).Error
	return orders, err
}

// FindProducts returns the returned units of the given orders.
func (r *ReturnOrderRepository) FindProducts(ctx context.Context, orderIDs []uint) ([]entity.ReturnOrderProduct, error) {
	var products []entity.ReturnOrderProduct
	if len(orderIDs) == 0 {
		return products, nil
	}
	err := r.db.WithContext(ctx).
		Where("return_order_id IN ?", orderIDs).
		Order("return_order_id ASC, id ASC").
		Find(&products).Error
	return products, err
}

// Delete removes the order and its products.
func (r *ReturnOrderRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("return_order_id = ?", id).Delete(&entity.ReturnOrderProduct{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&entity.ReturnOrder{}).Error
}
