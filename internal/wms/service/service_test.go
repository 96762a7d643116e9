package service

import (
	"context"
	"testing"
	"time"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/shared/notify"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/repository"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

const (
	rfidA = "12345678901234567890123456789016"
	rfidB = "12345678901234567890123456789038"
	rfidC = "12345678901234567890123456789044"

	supplierID uint = 5
	customerID uint = 1
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Publish(ctx context.Context, ev notify.Event) {
	m.Called(ctx, ev)
}

func eventOf(typ string, id uint) interface{} {
	return mock.MatchedBy(func(ev notify.Event) bool {
		return ev.Type == typ && ev.OrderID == id
	})
}

type testEnv struct {
	db       *gorm.DB
	repos    *repository.Repositories
	events   *mockNotifier
	restock  *RestockOrderService
	internal *InternalOrderService
	returns  *ReturnOrderService
	items    *ItemService
}

// setupEnv seeds a supplier (5), a customer (1), SKUs 12 and 180 and the
// supplier's items 10 -> SKU 12 and 18 -> SKU 180.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	testutil.SeedUser(t, db, supplierID, entity.UserTypeSupplier)
	testutil.SeedUser(t, db, customerID, entity.UserTypeCustomer)
	testutil.SeedSKU(t, db, 12, "a product", "10.99")
	testutil.SeedSKU(t, db, 180, "another product", "11.99")
	testutil.SeedItem(t, db, 10, supplierID, 12, "a new item", "10.99")
	testutil.SeedItem(t, db, 18, supplierID, 180, "another item", "12.50")

	events := &mockNotifier{}
	events.On("Publish", mock.Anything, mock.Anything).Return()

	logger := zaptest.NewLogger(t)
	repos := repository.NewRepositories(db)
	return &testEnv{
		db:       db,
		repos:    repos,
		events:   events,
		restock:  NewRestockOrderService(repos, events, logger),
		internal: NewInternalOrderService(repos, events, logger),
		returns:  NewReturnOrderService(repos, events, logger),
		items:    NewItemService(repos, logger),
	}
}

func (e *testEnv) newRestockOrder(t *testing.T) uint {
	t.Helper()
	id, err := e.restock.Create(context.Background(), &CreateRestockOrderRequest{
		IssueDate:  "2021/11/29 09:33",
		SupplierID: supplierID,
		Products: []RestockProductInput{
			{SKUID: 12, ItemID: 10, Qty: 2},
			{SKUID: 180, ItemID: 18, Qty: 1},
		},
	})
	require.NoError(t, err)
	return id
}

func (e *testEnv) advanceRestock(t *testing.T, id uint, states ...string) {
	t.Helper()
	for _, s := range states {
		require.NoError(t, e.restock.SetState(context.Background(), id, s), "move to %s", s)
	}
}

func (e *testEnv) unit(t *testing.T, rfid string) entity.SKUItem {
	t.Helper()
	var u entity.SKUItem
	require.NoError(t, e.db.Where("rfid = ?", rfid).First(&u).Error)
	return u
}

func (e *testEnv) sku(t *testing.T, id uint) entity.SKU {
	t.Helper()
	var s entity.SKU
	require.NoError(t, e.db.Where("id = ?", id).First(&s).Error)
	return s
}

func day(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
