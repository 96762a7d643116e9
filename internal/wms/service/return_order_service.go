package service

import (
	"context"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/shared/notify"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReturnOrderService sends failed units back to their supplier.
type ReturnOrderService struct {
	repos  *repository.Repositories
	events eventSink
	logger *zap.Logger
}

func NewReturnOrderService(repos *repository.Repositories, events Notifier, logger *zap.Logger) *ReturnOrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReturnOrderService{
		repos:  repos,
		events: eventSink{n: events},
		logger: logger,
	}
}

type CreateReturnOrderRequest struct {
	ReturnDate     string               `json:"returnDate" binding:"required,wmsdate"`
	Products       []ReturnProductInput `json:"products" binding:"required,min=1,dive"`
	RestockOrderID uint                 `json:"restockOrderId" binding:"required"`
}

type ReturnProductInput struct {
	SKUID       uint            `json:"SKUId" binding:"required"`
	ItemID      uint            `json:"itemId"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	RFID        string          `json:"RFID" binding:"required,rfid"`
}

type ReturnOrderView struct {
	ID             uint                        `json:"id"`
	ReturnDate     string                      `json:"returnDate"`
	Products       []entity.ReturnOrderProduct `json:"products"`
	RestockOrderID uint                        `json:"restockOrderId"`
}

// Create returns units received with a COMPLETEDRETURN restock order. The
// units leave available stock.
func (s *ReturnOrderService) Create(ctx context.Context, req *CreateReturnOrderRequest) (uint, error) {
	returnDate, err := ParseDate(req.ReturnDate)
	if err != nil {
		return 0, validationf("invalid returnDate %q", req.ReturnDate)
	}
	if len(req.Products) == 0 {
		return 0, validationf("return order needs at least one product")
	}
	rfids := make([]string, 0, len(req.Products))
	for _, p := range req.Products {
		if !ValidRFID(p.RFID) {
			return 0, validationf("invalid RFID %q", p.RFID)
		}
		rfids = append(rfids, p.RFID)
	}

	order := entity.ReturnOrder{ReturnDate: returnDate, RestockOrderID: req.RestockOrderID}
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		restock, err := tx.RestockOrder.FindByIDForUpdate(ctx, req.RestockOrderID)
		if err != nil {
			return lookupError(err, "restock order %d", req.RestockOrderID)
		}
		if restock.State != entity.RestockStateCompletedReturn {
			return invalidStatef("restock order %d is %s, returns need %s",
				restock.ID, restock.State, entity.RestockStateCompletedReturn)
		}
		units, err := tx.SKUItem.FindByRFIDs(ctx, rfids)
		if err != nil {
			return storeError("find units", err)
		}
		if err := checkReturnedUnits(restock.ID, units, req.Products); err != nil {
			return err
		}

		if err := tx.ReturnOrder.Create(ctx, &order); err != nil {
			return storeError("create return order", err)
		}
		products := make([]entity.ReturnOrderProduct, 0, len(req.Products))
		for _, p := range req.Products {
			products = append(products, entity.ReturnOrderProduct{
				ReturnOrderID: order.ID,
				SKUID:         p.SKUID,
				ItemID:        p.ItemID,
				Description:   p.Description,
				Price:         p.Price,
				RFID:          p.RFID,
			})
		}
		if err := tx.ReturnOrder.CreateProducts(ctx, products); err != nil {
			return storeError("create return order products", err)
		}

		leaving := make(map[uint]int)
		for _, u := range units {
			if u.Available {
				leaving[u.SKUID]++
			}
		}
		if err := tx.SKUItem.SetAvailable(ctx, rfids, false); err != nil {
			return storeError("withdraw returned units", err)
		}
		for skuID, n := range leaving {
			if err := tx.SKU.AdjustAvailable(ctx, skuID, -n); err != nil {
				return storeError("adjust SKU availability", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, asStoreError("create return order", err)
	}

	unitsMoved.WithLabelValues("returned").Add(float64(len(rfids)))
	s.logger.Info("return order created",
		zap.Uint("id", order.ID),
		zap.Uint("restock_order_id", order.RestockOrderID),
		zap.Int("units", len(rfids)),
	)
	s.events.publish(ctx, notify.ReturnOrderCreated, order.ID, "")
	return order.ID, nil
}

// checkReturnedUnits requires each unit to exist, match its SKU and belong
// to the restock order.
func checkReturnedUnits(restockOrderID uint, units []entity.SKUItem, products []ReturnProductInput) error {
	known := make(map[string]entity.SKUItem, len(units))
	for _, u := range units {
		known[u.RFID] = u
	}
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if seen[p.RFID] {
			return validationf("RFID %s listed more than once", p.RFID)
		}
		seen[p.RFID] = true
		u, ok := known[p.RFID]
		if !ok {
			return validationf("RFID %s is unknown", p.RFID)
		}
		if u.RestockOrderID == nil || *u.RestockOrderID != restockOrderID {
			return validationf("RFID %s was not received with restock order %d", p.RFID, restockOrderID)
		}
		if u.SKUID != p.SKUID {
			return validationf("RFID %s belongs to SKU %d, not SKU %d", p.RFID, u.SKUID, p.SKUID)
		}
	}
	return nil
}

func (s *ReturnOrderService) Get(ctx context.Context, id uint) (*ReturnOrderView, error) {
	order, err := s.repos.ReturnOrder.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "return order %d", id)
	}
	views, err := s.assemble(ctx, []entity.ReturnOrder{*order})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *ReturnOrderService) List(ctx context.Context) ([]ReturnOrderView, error) {
	orders, err := s.repos.ReturnOrder.FindAll(ctx)
	if err != nil {
		return nil, storeError("list return orders", err)
	}
	return s.assemble(ctx, orders)
}

func (s *ReturnOrderService) assemble(ctx context.Context, orders []entity.ReturnOrder) ([]ReturnOrderView, error) {
	ids := orderIDs(orders, func(o entity.ReturnOrder) uint { return o.ID })
	products, err := s.repos.ReturnOrder.FindProducts(ctx, ids)
	if err != nil {
		return nil, storeError("find return order products", err)
	}
	byOrder := make(map[uint][]entity.ReturnOrderProduct)
	for _, p := range products {
		byOrder[p.ReturnOrderID] = append(byOrder[p.ReturnOrderID], p)
	}
	views := make([]ReturnOrderView, 0, len(orders))
	for _, o := range orders {
		lines := byOrder[o.ID]
		if lines == nil {
			lines = []entity.ReturnOrderProduct{}
		}
		views = append(views, ReturnOrderView{
			ID:             o.ID,
			ReturnDate:     FormatDate(o.ReturnDate),
			Products:       lines,
			RestockOrderID: o.RestockOrderID,
		})
	}
	return views, nil
}

// Delete removes the return order. Returned units stay withdrawn.
func (s *ReturnOrderService) Delete(ctx context.Context, id uint) error {
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.ReturnOrder.FindByID(ctx, id); err != nil {
			return lookupError(err, "return order %d", id)
		}
		if err := tx.ReturnOrder.Delete(ctx, id); err != nil {
			return storeError("delete return order", err)
		}
		return nil
	})
	if err != nil {
		return asStoreError("delete return order", err)
	}
	s.logger.Info("return order deleted", zap.Uint("id", id))
	s.events.publish(ctx, notify.ReturnOrderDeleted, id, "")
	return nil
}
