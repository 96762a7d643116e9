package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/shared/notify"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/shared/sse"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/service"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		method string
		err    error
		status int
		code   int
	}{
		{"validation", http.MethodPost, fmt.Errorf("%w: bad qty", service.ErrValidation), http.StatusUnprocessableEntity, CodeValidation},
		{"invalid state", http.MethodPut, fmt.Errorf("%w: order is ISSUED", service.ErrInvalidState), http.StatusUnprocessableEntity, CodeInvalidState},
		{"not found", http.MethodGet, fmt.Errorf("%w: restock order 3", service.ErrNotFound), http.StatusNotFound, CodeNotFound},
		{"store failure on read", http.MethodGet, fmt.Errorf("%w: list", service.ErrStore), http.StatusInternalServerError, CodeInternal},
		{"store failure on write", http.MethodDelete, fmt.Errorf("%w: delete", service.ErrStore), http.StatusServiceUnavailable, CodeUnavailable},
		{"untyped failure on write", http.MethodPost, errors.New("boom"), http.StatusServiceUnavailable, CodeUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testutil.SetupRouter()
			r.Handle(tt.method, "/x", func(c *gin.Context) { respondError(c, tt.err) })

			w := testutil.DoRequest(r, tt.method, "/x", nil)
			assert.Equal(t, tt.status, w.Code)
			resp := testutil.ParseResponse(w)
			assert.Equal(t, float64(tt.code), resp["code"])
		})
	}
}

// offlineRouter mounts every route over services that are never reached:
// each request below is rejected before the service is called.
func offlineRouter(t *testing.T, events EventSource) *gin.Engine {
	t.Helper()
	r := testutil.SetupRouter()
	h := NewHandlers(service.NewServices(nil, nil, nil, nil), events, nil)
	require.NoError(t, RegisterRoutes(r, h))
	return r
}

func TestRequestValidation(t *testing.T) {
	r := offlineRouter(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"restock order without products", http.MethodPost, "/api/restockOrder", map[string]interface{}{
			"issueDate": "2021/11/29 09:33", "products": []interface{}{}, "supplierId": 1,
		}},
		{"restock order with bad date", http.MethodPost, "/api/restockOrder", map[string]interface{}{
			"issueDate": "29-11-2021", "supplierId": 1,
			"products": []map[string]interface{}{{"SKUId": 12, "itemId": 10, "qty": 1}},
		}},
		{"restock line with zero qty", http.MethodPost, "/api/restockOrder", map[string]interface{}{
			"issueDate": "2021/11/29", "supplierId": 1,
			"products": []map[string]interface{}{{"SKUId": 12, "itemId": 10, "qty": 0}},
		}},
		{"short RFID", http.MethodPut, "/api/restockOrder/1/skuItems", map[string]interface{}{
			"skuItems": []map[string]interface{}{{"SKUId": 12, "rfid": "1234"}},
		}},
		{"empty sku item list", http.MethodPut, "/api/restockOrder/1/skuItems", map[string]interface{}{
			"skuItems": []interface{}{},
		}},
		{"transport note without date", http.MethodPut, "/api/restockOrder/1/transportNote", map[string]interface{}{
			"transportNote": map[string]interface{}{},
		}},
		{"missing new state", http.MethodPut, "/api/restockOrder/1", map[string]interface{}{}},
		{"non numeric id", http.MethodGet, "/api/restockOrders/abc", nil},
		{"negative id", http.MethodDelete, "/api/internalOrders/-1", nil},
		{"internal order without customer", http.MethodPost, "/api/internalOrders", map[string]interface{}{
			"issueDate": "2021/11/29", "products": []map[string]interface{}{{"SKUId": 12, "qty": 1}},
		}},
		{"return order with bad RFID", http.MethodPost, "/api/returnOrder", map[string]interface{}{
			"returnDate": "2021/11/29", "restockOrderId": 1,
			"products": []map[string]interface{}{{"SKUId": 12, "RFID": "x"}},
		}},
		{"item without SKU", http.MethodPost, "/api/item", map[string]interface{}{
			"id": 1, "description": "d", "price": 1.5, "supplierId": 5,
		}},
		{"item with bad supplier id", http.MethodGet, "/api/items/1/abc", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.DoRequest(r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
			assert.Equal(t, float64(CodeValidation), testutil.ParseResponse(w)["code"])
		})
	}
}

type stubEvents struct {
	asked  int64
	events []notify.Event
	err    error
}

func (s *stubEvents) Recent(_ context.Context, n int64) ([]notify.Event, error) {
	s.asked = n
	return s.events, s.err
}

func TestRecentEvents(t *testing.T) {
	w := testutil.DoRequest(offlineRouter(t, nil), http.MethodGet, "/api/orderEvents", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	src := &stubEvents{events: []notify.Event{{Type: notify.RestockOrderCreated, OrderID: 4, State: "ISSUED"}}}
	r := offlineRouter(t, src)

	w = testutil.DoRequest(r, http.MethodGet, "/api/orderEvents?limit=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), src.asked)
	list := testutil.ParseList(w)
	require.Len(t, list, 1)
	assert.Equal(t, notify.RestockOrderCreated, list[0]["type"])

	testutil.DoRequest(r, http.MethodGet, "/api/orderEvents?limit=5000", nil)
	assert.Equal(t, int64(50), src.asked)

	src.err = errors.New("redis down")
	w = testutil.DoRequest(r, http.MethodGet, "/api/orderEvents", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestEventStream(t *testing.T) {
	w := testutil.DoRequest(offlineRouter(t, nil), http.MethodGet, "/api/orderEvents/stream", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	hub := sse.NewHub(nil)
	r := testutil.SetupRouter()
	require.NoError(t, RegisterRoutes(r, NewHandlers(service.NewServices(nil, nil, nil, nil), nil, hub)))

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/orderEvents/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		r.ServeHTTP(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)
	hub.Publish(context.Background(), notify.Event{Type: notify.RestockOrderCreated, OrderID: 8, State: "ISSUED"})
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, 0, hub.Count())
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "event: connected")
	assert.Contains(t, body, "event: "+notify.RestockOrderCreated)
	assert.Contains(t, body, `"orderId":8`)
}
