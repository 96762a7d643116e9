package repository

import (
	"context"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"gorm.io/gorm"
)

// SKUItemRepository is the narrow SKU item contract used by the order engines.
type SKUItemRepository struct {
	db *gorm.DB
}

func NewSKUItemRepository(db *gorm.DB) *SKUItemRepository {
	return &SKUItemRepository{db: db}
}

func (r *SKUItemRepository) FindByRFID(ctx context.Context, rfid string) (*entity.SKUItem, error) {
	var item entity.SKUItem
	if err := r.db.WithContext(ctx).Where("rfid = ?", rfid).First(&item).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &item, nil
}

// FindByRFIDs returns the units that exist among rfids.
func (r *SKUItemRepository) FindByRFIDs(ctx context.Context, rfids []string) ([]entity.SKUItem, error) {
	var items []entity.SKUItem
	if len(rfids) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).Where("rfid IN ?", rfids).Find(&items).Error
	return items, err
}

// FindByRestockOrders returns the units received against the given orders.
func (r *SKUItemRepository) FindByRestockOrders(ctx context.Context, orderIDs []uint) ([]entity.SKUItem, error) {
	var items []entity.SKUItem
	if len(orderIDs) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).
		Where("restock_order_id IN ?", orderIDs).
		Order("rfid ASC").
		Find(&items).Error
	return items, err
}

// Save inserts or updates a unit.
func (r *SKUItemRepository) Save(ctx context.Context, item *entity.SKUItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// SetAvailable flips the availability flag of the given units.
func (r *SKUItemRepository) SetAvailable(ctx context.Context, rfids []string, available bool) error {
	if len(rfids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.SKUItem{}).
		Where("rfid IN ?", rfids).
		Update("available", available).Error
}

// Unbind clears the restock order reference of every unit of an order.
func (r *SKUItemRepository) Unbind(ctx context.Context, restockOrderID uint) error {
	return r.db.WithContext(ctx).Model(&entity.SKUItem{}).
		Where("restock_order_id = ?", restockOrderID).
		Update("restock_order_id", nil).Error
}
