package service

import (
	"context"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/shared/notify"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InternalOrderService drives internal orders from request to fulfillment.
type InternalOrderService struct {
	repos  *repository.Repositories
	events eventSink
	logger *zap.Logger
}

func NewInternalOrderService(repos *repository.Repositories, events Notifier, logger *zap.Logger) *InternalOrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InternalOrderService{
		repos:  repos,
		events: eventSink{n: events},
		logger: logger,
	}
}

type CreateInternalOrderRequest struct {
	IssueDate  string                 `json:"issueDate" binding:"required,wmsdate"`
	Products   []InternalProductInput `json:"products" binding:"required,min=1,dive"`
	CustomerID uint                   `json:"customerId" binding:"required"`
}

type InternalProductInput struct {
	SKUID       uint            `json:"SKUId" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Qty         int             `json:"qty" binding:"required,gt=0"`
}

// SetInternalOrderStateRequest carries the fulfillment list when NewState is
// COMPLETED. Products are ignored for any other state.
type SetInternalOrderStateRequest struct {
	NewState string             `json:"newState" binding:"required"`
	Products []FulfillmentInput `json:"products"`
}

// FulfillmentInput names the unit handed out for a SKU. JSON keys match
// case-insensitively, so both "SKUId" and "SkuID" decode.
type FulfillmentInput struct {
	SKUID uint   `json:"SKUId"`
	RFID  string `json:"RFID"`
}

type InternalOrderView struct {
	ID         uint                       `json:"id"`
	IssueDate  string                     `json:"issueDate"`
	State      string                     `json:"state"`
	Products   []entity.InternalOrderLine `json:"products"`
	CustomerID uint                       `json:"customerId"`
}

// Create stores a new ISSUED order for an existing customer.
func (s *InternalOrderService) Create(ctx context.Context, req *CreateInternalOrderRequest) (uint, error) {
	issueDate, err := ParseDate(req.IssueDate)
	if err != nil {
		return 0, validationf("invalid issueDate %q", req.IssueDate)
	}
	if len(req.Products) == 0 {
		return 0, validationf("internal order needs at least one product")
	}
	skuIDs := make([]uint, 0, len(req.Products))
	seen := make(map[uint]bool)
	for _, p := range req.Products {
		if p.Qty <= 0 {
			return 0, validationf("SKU %d: quantity must be positive", p.SKUID)
		}
		if !seen[p.SKUID] {
			seen[p.SKUID] = true
			skuIDs = append(skuIDs, p.SKUID)
		}
	}

	order := entity.InternalOrder{
		IssueDate:  issueDate,
		State:      entity.InternalStateIssued,
		CustomerID: req.CustomerID,
	}
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.User.FindByIDAndType(ctx, req.CustomerID, entity.UserTypeCustomer); err != nil {
			return lookupError(err, "customer %d", req.CustomerID)
		}
		if err := requireSKUs(ctx, tx, skuIDs); err != nil {
			return err
		}
		if err := tx.InternalOrder.Create(ctx, &order); err != nil {
			return storeError("create internal order", err)
		}
		products := make([]entity.InternalOrderProduct, 0, len(req.Products))
		for _, p := range req.Products {
			products = append(products, entity.InternalOrderProduct{
				InternalOrderID: order.ID,
				SKUID:           p.SKUID,
				Quantity:        p.Qty,
			})
		}
		if err := tx.InternalOrder.CreateProducts(ctx, products); err != nil {
			return storeError("create internal order products", err)
		}
		return nil
	})
	if err != nil {
		return 0, asStoreError("create internal order", err)
	}

	s.logger.Info("internal order created",
		zap.Uint("id", order.ID),
		zap.Uint("customer_id", order.CustomerID),
		zap.Int("lines", len(req.Products)),
	)
	s.events.publish(ctx, notify.InternalOrderCreated, order.ID, order.State)
	return order.ID, nil
}

func (s *InternalOrderService) Get(ctx context.Context, id uint) (*InternalOrderView, error) {
	order, err := s.repos.InternalOrder.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "internal order %d", id)
	}
	views, err := s.assemble(ctx, []entity.InternalOrder{*order})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *InternalOrderService) List(ctx context.Context) ([]InternalOrderView, error) {
	orders, err := s.repos.InternalOrder.FindAll(ctx)
	if err != nil {
		return nil, storeError("list internal orders", err)
	}
	return s.assemble(ctx, orders)
}

func (s *InternalOrderService) ListIssued(ctx context.Context) ([]InternalOrderView, error) {
	return s.listByState(ctx, entity.InternalStateIssued)
}

func (s *InternalOrderService) ListAccepted(ctx context.Context) ([]InternalOrderView, error) {
	return s.listByState(ctx, entity.InternalStateAccepted)
}

func (s *InternalOrderService) listByState(ctx context.Context, state string) ([]InternalOrderView, error) {
	orders, err := s.repos.InternalOrder.FindByState(ctx, state)
	if err != nil {
		return nil, storeError("list internal orders", err)
	}
	return s.assemble(ctx, orders)
}

func (s *InternalOrderService) assemble(ctx context.Context, orders []entity.InternalOrder) ([]InternalOrderView, error) {
	ids := orderIDs(orders, func(o entity.InternalOrder) uint { return o.ID })
	requested, err := s.repos.InternalOrder.FindProducts(ctx, ids)
	if err != nil {
		return nil, storeError("find internal order products", err)
	}
	fulfilled, err := s.repos.InternalOrder.FindSKUItems(ctx, ids)
	if err != nil {
		return nil, storeError("find internal order units", err)
	}

	seen := make(map[uint]bool)
	var skuIDs []uint
	for _, p := range requested {
		if !seen[p.SKUID] {
			seen[p.SKUID] = true
			skuIDs = append(skuIDs, p.SKUID)
		}
	}
	for _, f := range fulfilled {
		if !seen[f.SKUID] {
			seen[f.SKUID] = true
			skuIDs = append(skuIDs, f.SKUID)
		}
	}
	found, err := s.repos.SKU.FindByIDs(ctx, skuIDs)
	if err != nil {
		return nil, storeError("find SKUs", err)
	}
	skus := make(map[uint]entity.SKU, len(found))
	for _, sku := range found {
		skus[sku.ID] = sku
	}
	return assembleInternalOrders(orders, requested, fulfilled, skus), nil
}

// assembleInternalOrders picks the line variant by state: Fulfilled for
// COMPLETED orders, Requested otherwise.
func assembleInternalOrders(
	orders []entity.InternalOrder,
	requested []entity.InternalOrderProduct,
	fulfilled []entity.InternalOrderSKUItem,
	skus map[uint]entity.SKU,
) []InternalOrderView {
	reqByOrder := make(map[uint][]entity.InternalOrderProduct)
	for _, p := range requested {
		reqByOrder[p.InternalOrderID] = append(reqByOrder[p.InternalOrderID], p)
	}
	fulByOrder := make(map[uint][]entity.InternalOrderSKUItem)
	for _, f := range fulfilled {
		fulByOrder[f.InternalOrderID] = append(fulByOrder[f.InternalOrderID], f)
	}

	views := make([]InternalOrderView, 0, len(orders))
	for _, o := range orders {
		v := InternalOrderView{
			ID:         o.ID,
			IssueDate:  FormatDate(o.IssueDate),
			State:      o.State,
			CustomerID: o.CustomerID,
			Products:   []entity.InternalOrderLine{},
		}
		if o.State == entity.InternalStateCompleted {
			for _, f := range fulByOrder[o.ID] {
				sku := skus[f.SKUID]
				v.Products = append(v.Products, entity.Fulfilled{
					SKUID:       f.SKUID,
					Description: sku.Description,
					Price:       sku.Price,
					RFID:        f.RFID,
				})
			}
		} else {
			for _, p := range reqByOrder[o.ID] {
				sku := skus[p.SKUID]
				v.Products = append(v.Products, entity.Requested{
					SKUID:       p.SKUID,
					Description: sku.Description,
					Price:       sku.Price,
					Qty:         p.Quantity,
				})
			}
		}
		views = append(views, v)
	}
	return views
}

// SetState moves the order to newState if the transition table allows it.
// Completing an order consumes the listed units: they become unavailable and
// replace the requested lines in the order's view.
func (s *InternalOrderService) SetState(ctx context.Context, id uint, newState string, products []FulfillmentInput) error {
	if !entity.InternalTransitions.Known(newState) {
		return validationf("unknown internal order state %q", newState)
	}
	completing := newState == entity.InternalStateCompleted
	if completing {
		if len(products) == 0 {
			return validationf("completing internal order %d needs the delivered units", id)
		}
		for _, p := range products {
			if !ValidRFID(p.RFID) {
				return validationf("invalid RFID %q", p.RFID)
			}
		}
	}

	var from string
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		order, err := tx.InternalOrder.FindByIDForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, "internal order %d", id)
		}
		if !entity.InternalTransitions.Allows(order.State, newState) {
			return invalidStatef("internal order %d cannot move from %s to %s", id, order.State, newState)
		}
		from = order.State

		if completing {
			if err := s.fulfill(ctx, tx, id, products); err != nil {
				return err
			}
		}
		if err := tx.InternalOrder.UpdateState(ctx, id, newState); err != nil {
			return storeError("update internal order state", err)
		}
		return nil
	})
	if err != nil {
		return asStoreError("set internal order state", err)
	}

	orderTransitions.WithLabelValues("internal", from, newState).Inc()
	if completing {
		unitsMoved.WithLabelValues("consumed").Add(float64(len(products)))
	}
	s.logger.Info("internal order state changed",
		zap.Uint("id", id),
		zap.String("from", from),
		zap.String("to", newState),
		zap.Int("units", len(products)),
	)
	s.events.publish(ctx, notify.InternalOrderStateChanged, id, newState)
	return nil
}

func (s *InternalOrderService) fulfill(ctx context.Context, tx *repository.Repositories, id uint, products []FulfillmentInput) error {
	requested, err := tx.InternalOrder.FindProducts(ctx, []uint{id})
	if err != nil {
		return storeError("find internal order products", err)
	}
	rfids := make([]string, 0, len(products))
	for _, p := range products {
		rfids = append(rfids, p.RFID)
	}
	units, err := tx.SKUItem.FindByRFIDs(ctx, rfids)
	if err != nil {
		return storeError("find units", err)
	}
	if err := reconcileFulfillment(requested, units, products); err != nil {
		return err
	}

	if err := tx.SKUItem.SetAvailable(ctx, rfids, false); err != nil {
		return storeError("consume units", err)
	}
	consumed := make(map[uint]int)
	lines := make([]entity.InternalOrderSKUItem, 0, len(products))
	for _, p := range products {
		consumed[p.SKUID]++
		lines = append(lines, entity.InternalOrderSKUItem{
			InternalOrderID: id,
			SKUID:           p.SKUID,
			RFID:            p.RFID,
		})
	}
	for skuID, n := range consumed {
		if err := tx.SKU.AdjustAvailable(ctx, skuID, -n); err != nil {
			return storeError("adjust SKU availability", err)
		}
	}
	if err := tx.InternalOrder.CreateSKUItems(ctx, lines); err != nil {
		return storeError("store fulfilled lines", err)
	}
	return nil
}

// reconcileFulfillment checks every handed out unit: it must exist, be
// available, be of the declared SKU, and that SKU must have been requested
// in at least that quantity.
func reconcileFulfillment(requested []entity.InternalOrderProduct, units []entity.SKUItem, inputs []FulfillmentInput) error {
	wanted := make(map[uint]int)
	for _, p := range requested {
		wanted[p.SKUID] += p.Quantity
	}
	known := make(map[string]entity.SKUItem, len(units))
	for _, u := range units {
		known[u.RFID] = u
	}

	seen := make(map[string]bool, len(inputs))
	taken := make(map[uint]int)
	for _, in := range inputs {
		if seen[in.RFID] {
			return validationf("RFID %s listed more than once", in.RFID)
		}
		seen[in.RFID] = true

		unit, ok := known[in.RFID]
		if !ok {
			return notFoundf("SKU item %s", in.RFID)
		}
		if unit.SKUID != in.SKUID {
			return validationf("RFID %s belongs to SKU %d, not SKU %d", in.RFID, unit.SKUID, in.SKUID)
		}
		if !unit.Available {
			return validationf("RFID %s is not available", in.RFID)
		}
		if wanted[in.SKUID] == 0 {
			return validationf("SKU %d was not requested", in.SKUID)
		}
		taken[in.SKUID]++
		if taken[in.SKUID] > wanted[in.SKUID] {
			return validationf("SKU %d: %d units handed out, %d requested", in.SKUID, taken[in.SKUID], wanted[in.SKUID])
		}
	}
	return nil
}

// Delete removes the order with its requested and fulfilled lines.
func (s *InternalOrderService) Delete(ctx context.Context, id uint) error {
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.InternalOrder.FindByIDForUpdate(ctx, id); err != nil {
			return lookupError(err, "internal order %d", id)
		}
		if err := tx.InternalOrder.DeleteLines(ctx, id); err != nil {
			return storeError("delete internal order lines", err)
		}
		if err := tx.InternalOrder.Delete(ctx, id); err != nil {
			return storeError("delete internal order", err)
		}
		return nil
	})
	if err != nil {
		return asStoreError("delete internal order", err)
	}

	s.logger.Info("internal order deleted", zap.Uint("id", id))
	s.events.publish(ctx, notify.InternalOrderDeleted, id, "")
	return nil
}
