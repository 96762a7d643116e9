package service

import (
	"context"
	"errors"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ItemService manages supplier items.
type ItemService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

func NewItemService(repos *repository.Repositories, logger *zap.Logger) *ItemService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemService{repos: repos, logger: logger}
}

type CreateItemRequest struct {
	ID          uint            `json:"id"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	SKUID       uint            `json:"SKUId" binding:"required"`
	SupplierID  uint            `json:"supplierId" binding:"required"`
}

type UpdateItemRequest struct {
	NewDescription string          `json:"newDescription" binding:"required"`
	NewPrice       decimal.Decimal `json:"newPrice"`
}

func (s *ItemService) List(ctx context.Context) ([]entity.Item, error) {
	items, err := s.repos.Item.FindAll(ctx)
	if err != nil {
		return nil, storeError("list items", err)
	}
	return items, nil
}

func (s *ItemService) Get(ctx context.Context, id, supplierID uint) (*entity.Item, error) {
	item, err := s.repos.Item.FindByKey(ctx, id, supplierID)
	if err != nil {
		return nil, lookupError(err, "item %d of supplier %d", id, supplierID)
	}
	return item, nil
}

// Create registers an item. A supplier may sell each SKU through one item only.
func (s *ItemService) Create(ctx context.Context, req *CreateItemRequest) (*entity.Item, error) {
	if req.Price.IsNegative() {
		return nil, validationf("price must not be negative")
	}
	item := &entity.Item{
		ID:          req.ID,
		SupplierID:  req.SupplierID,
		SKUID:       req.SKUID,
		Description: req.Description,
		Price:       req.Price,
	}
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.SKU.FindByID(ctx, req.SKUID); err != nil {
			return lookupError(err, "SKU %d", req.SKUID)
		}
		if _, err := tx.Item.FindByKey(ctx, req.ID, req.SupplierID); err == nil {
			return validationf("supplier %d already has item %d", req.SupplierID, req.ID)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return storeError("find item", err)
		}
		if _, err := tx.Item.FindBySupplierAndSKU(ctx, req.SupplierID, req.SKUID); err == nil {
			return validationf("supplier %d already sells SKU %d", req.SupplierID, req.SKUID)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return storeError("find item", err)
		}
		if err := tx.Item.Create(ctx, item); err != nil {
			return storeError("create item", err)
		}
		return nil
	})
	if err != nil {
		return nil, asStoreError("create item", err)
	}
	s.logger.Info("item created",
		zap.Uint("id", item.ID),
		zap.Uint("supplier_id", item.SupplierID),
		zap.Uint("sku_id", item.SKUID),
	)
	return item, nil
}

// Update changes description and price.
func (s *ItemService) Update(ctx context.Context, id, supplierID uint, req *UpdateItemRequest) (*entity.Item, error) {
	if req.NewPrice.IsNegative() {
		return nil, validationf("price must not be negative")
	}
	item, err := s.repos.Item.FindByKey(ctx, id, supplierID)
	if err != nil {
		return nil, lookupError(err, "item %d of supplier %d", id, supplierID)
	}
	item.Description = req.NewDescription
	item.Price = req.NewPrice
	if err := s.repos.Item.Update(ctx, item); err != nil {
		return nil, storeError("update item", err)
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, id, supplierID uint) error {
	deleted, err := s.repos.Item.Delete(ctx, id, supplierID)
	if err != nil {
		return storeError("delete item", err)
	}
	if !deleted {
		return notFoundf("item %d of supplier %d", id, supplierID)
	}
	s.logger.Info("item deleted", zap.Uint("id", id), zap.Uint("supplier_id", supplierID))
	return nil
}
