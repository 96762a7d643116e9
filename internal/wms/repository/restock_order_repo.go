package repository

import (
	"context"
	"time"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestockOrderRepository persists restock order headers and their lines.
type RestockOrderRepository struct {
	db *gorm.DB
}

func NewRestockOrderRepository(db *gorm.DB) *RestockOrderRepository {
	return &RestockOrderRepository{db: db}
}

// Create inserts the header and fills its generated ID.
func (r *RestockOrderRepository) Create(ctx context.Context, order *entity.RestockOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// CreateItems inserts order lines.
func (r *RestockOrderRepository) CreateItems(ctx context.Context, items []entity.RestockOrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// FindByID reads one header.
func (r *RestockOrderRepository) FindByID(ctx context.Context, id uint) (*entity.RestockOrder, error) {
	var order entity.RestockOrder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &order, nil
}

// FindByIDForUpdate reads the header with a row lock. Call inside a transaction.
func (r *RestockOrderRepository) FindByIDForUpdate(ctx context.Context, id uint) (*entity.RestockOrder, error) {
	var order entity.RestockOrder
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &order, nil
}

// FindAll lists every order by ID.
func (r *RestockOrderRepository) FindAll(ctx context.Context) ([]entity.RestockOrder, error) {
	var orders []entity.RestockOrder
	err := r.db.WithContext(ctx).Order("id ASC").Find(&orders).Error
	return orders, err
}

// FindByState lists orders in the given state.
func (r *RestockOrderRepository) FindByState(ctx context.Context, state string) ([]entity.RestockOrder, error) {
	var orders []entity.RestockOrder
	err := r.db.WithContext(ctx).Where("state = ?", state).Order("id ASC").Find(&orders).Error
	return orders, err
}

// FindItems returns the lines of the given orders.
func (r *RestockOrderRepository) FindItems(ctx context.Context, orderIDs []uint) ([]entity.RestockOrderItem, error) {
	var items []entity.RestockOrderItem
	if len(orderIDs) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).
		Where("restock_order_id IN ?", orderIDs).
		Order("restock_order_id ASC, id ASC").
		Find(&items).Error
	return items, err
}

// UpdateState overwrites the state column. Legality is checked by the caller.
func (r *RestockOrderRepository) UpdateState(ctx context.Context, id uint, state string) error {
	return r.db.WithContext(ctx).Model(&entity.RestockOrder{}).
		Where("id = ?", id).
		Update("state", state).Error
}

// UpdateTransportNote stores the delivery date of the transport note.
func (r *RestockOrderRepository) UpdateTransportNote(ctx context.Context, id uint, deliveryDate time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.RestockOrder{}).
		Where("id = ?", id).
		Update("delivery_date", deliveryDate).Error
}

// UpdateTransportDoc stores the object key of the scanned transport note.
func (r *RestockOrderRepository) UpdateTransportDoc(ctx context.Context, id uint, key string) error {
	return r.db.WithContext(ctx).Model(&entity.RestockOrder{}).
		Where("id = ?", id).
		Update("transport_doc", key).Error
}

// DeleteItems removes every line of an order.
func (r *RestockOrderRepository) DeleteItems(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("restock_order_id = ?", id).Delete(&entity.RestockOrderItem{}).Error
}

// Delete removes the header only.
func (r *RestockOrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.RestockOrder{}).Error
}
