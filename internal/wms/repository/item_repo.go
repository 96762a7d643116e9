package repository

import (
	"context"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"gorm.io/gorm"
)

// ItemRepository persists supplier items.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]entity.Item, error) {
	var items []entity.Item
	err := r.db.WithContext(ctx).Order("supplier_id ASC, id ASC").Find(&items).Error
	return items, err
}

// FindByKey looks an item up by (id, supplierId).
func (r *ItemRepository) FindByKey(ctx context.Context, id, supplierID uint) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).
		Where("id = ? AND supplier_id = ?", id, supplierID).
		First(&item).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &item, nil
}

// FindBySupplier returns the supplier's items whose id is in ids.
func (r *ItemRepository) FindBySupplier(ctx context.Context, supplierID uint, ids []uint) ([]entity.Item, error) {
	var items []entity.Item
	if len(ids) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).
		Where("supplier_id = ? AND id IN ?", supplierID, ids).
		Find(&items).Error
	return items, err
}

// FindBySupplierAndSKU looks up the supplier's item for a SKU.
func (r *ItemRepository) FindBySupplierAndSKU(ctx context.Context, supplierID, skuID uint) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).
		Where("supplier_id = ? AND sku_id = ?", supplierID, skuID).
		First(&item).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &item, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update saves description and price.
func (r *ItemRepository) Update(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("id = ? AND supplier_id = ?", item.ID, item.SupplierID).
		Updates(map[string]interface{}{
			"description": item.Description,
			"price":       item.Price,
		}).Error
}

// Delete removes an item and reports whether a row existed.
func (r *ItemRepository) Delete(ctx context.Context, id, supplierID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND supplier_id = ?", id, supplierID).
		Delete(&entity.Item{})
	return res.RowsAffected > 0, res.Error
}
