package repository

import (
	"context"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"gorm.io/gorm"
)

// SKURepository is the narrow SKU contract used by the order engines.
type SKURepository struct {
	db *gorm.DB
}

func NewSKURepository(db *gorm.DB) *SKURepository {
	return &SKURepository{db: db}
}

func (r *SKURepository) FindByID(ctx context.Context, id uint) (*entity.SKU, error) {
	var sku entity.SKU
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&sku).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &sku, nil
}

// FindByIDs returns the SKUs that exist among ids.
func (r *SKURepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.SKU, error) {
	var skus []entity.SKU
	if len(ids) == 0 {
		return skus, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&skus).Error
	return skus, err
}

// AdjustAvailable adds delta to the available quantity, never below zero.
func (r *SKURepository) AdjustAvailable(ctx context.Context, id uint, delta int) error {
	if delta == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.SKU{}).
		Where("id = ?", id).
		Update("available_quantity", gorm.Expr("GREATEST(available_quantity + ?, 0)", delta)).Error
}
