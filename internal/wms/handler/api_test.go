package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/repository"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/service"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

const (
	rfid1 = "12345678901234567890123456789016"
	rfid2 = "12345678901234567890123456789038"
)

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	testutil.SeedUser(t, db, 1, entity.UserTypeCustomer)
	testutil.SeedUser(t, db, 5, entity.UserTypeSupplier)
	testutil.SeedSKU(t, db, 12, "a product", "10.99")
	testutil.SeedSKU(t, db, 180, "another product", "11.99")
	testutil.SeedItem(t, db, 10, 5, 12, "a new item", "10.99")

	svcs := service.NewServices(repository.NewRepositories(db), nil, nil, zaptest.NewLogger(t))
	r := testutil.SetupRouter()
	require.NoError(t, RegisterRoutes(r, NewHandlers(svcs, nil, nil)))
	return r, db
}

func createdID(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := testutil.ParseResponse(w)
	id, ok := body["id"].(float64)
	require.True(t, ok, "missing id in %v", body)
	return int(id)
}

func TestRestockOrderAPI(t *testing.T) {
	r, _ := setupAPI(t)

	w := testutil.DoRequest(r, http.MethodPost, "/api/restockOrder", map[string]interface{}{
		"issueDate":  "2021/11/29 09:33",
		"supplierId": 5,
		"products": []map[string]interface{}{
			{"SKUId": 12, "itemId": 10, "description": "a new item", "price": 10.99, "qty": 2},
		},
	})
	id := createdID(t, w)
	base := fmt.Sprintf("/api/restockOrder/%d", id)

	w = testutil.DoRequest(r, http.MethodGet, fmt.Sprintf("/api/restockOrders/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{
		"id": %d,
		"issueDate": "2021/11/29 09:33",
		"state": "ISSUED",
		"products": [{"SKUId": 12, "itemId": 10, "description": "a new item", "price": 10.99, "qty": 2}],
		"supplierId": 5,
		"transportNote": {},
		"skuItems": []
	}`, id), w.Body.String())

	w = testutil.DoRequest(r, http.MethodPut, base, map[string]string{"newState": "DELIVERED"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, float64(CodeInvalidState), testutil.ParseResponse(w)["code"])

	w = testutil.DoRequest(r, http.MethodPut, base, map[string]string{"newState": "DELIVERY"})
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoRequest(r, http.MethodPut, base+"/transportNote", map[string]interface{}{
		"transportNote": map[string]string{"deliveryDate": "2021/12/03"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoRequest(r, http.MethodPut, base, map[string]string{"newState": "DELIVERED"})
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoRequest(r, http.MethodPut, base+"/skuItems", map[string]interface{}{
		"skuItems": []map[string]interface{}{{"SKUId": 12, "rfid": rfid1}, {"SKUId": 12, "rfid": rfid2}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testutil.DoRequest(r, http.MethodGet, fmt.Sprintf("/api/restockOrders/%d", id), nil)
	resp := testutil.ParseResponse(w)
	assert.Equal(t, map[string]interface{}{"deliveryDate": "2021/12/03"}, resp["transportNote"])
	assert.Len(t, resp["skuItems"], 2)

	w = testutil.DoRequest(r, http.MethodGet, fmt.Sprintf("/api/restockOrders/%d/returnItems", id), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = testutil.DoRequest(r, http.MethodGet, "/api/restockOrdersIssued", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = testutil.DoRequest(r, http.MethodGet, "/api/restockOrders/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "restock_orders_")

	w = testutil.DoRequest(r, http.MethodGet, base+"/transportNote/document", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = testutil.DoRequest(r, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = testutil.DoRequest(r, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = testutil.DoRequest(r, http.MethodGet, fmt.Sprintf("/api/restockOrders/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInternalOrderAPI(t *testing.T) {
	r, db := setupAPI(t)
	testutil.SeedSKUItem(t, db, rfid1, 12, true)
	testutil.SeedSKUItem(t, db, rfid2, 180, true)

	w := testutil.DoRequest(r, http.MethodPost, "/api/internalOrders", map[string]interface{}{
		"issueDate":  "2021/11/29 09:33",
		"customerId": 1,
		"products": []map[string]interface{}{
			{"SKUId": 12, "description": "a product", "price": 10.99, "qty": 3},
			{"SKUId": 180, "description": "another product", "price": 11.99, "qty": 3},
		},
	})
	id := createdID(t, w)
	path := fmt.Sprintf("/api/internalOrders/%d", id)

	w = testutil.DoRequest(r, http.MethodPut, path, map[string]string{"newState": "ACCEPTED"})
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoRequest(r, http.MethodGet, "/api/internalOrdersAccepted", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, testutil.ParseList(w), 1)

	w = testutil.DoRequest(r, http.MethodPut, path, map[string]interface{}{
		"newState": "COMPLETED",
		"products": []map[string]interface{}{
			{"SkuID": 12, "RFID": rfid1},
			{"SkuID": 180, "RFID": rfid2},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testutil.DoRequest(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{
		"id": %d,
		"issueDate": "2021/11/29 09:33",
		"state": "COMPLETED",
		"products": [
			{"SKUId": 12, "description": "a product", "price": 10.99, "RFID": "%s"},
			{"SKUId": 180, "description": "another product", "price": 11.99, "RFID": "%s"}
		],
		"customerId": 1
	}`, id, rfid1, rfid2), w.Body.String())

	w = testutil.DoRequest(r, http.MethodPost, "/api/internalOrders", map[string]interface{}{
		"issueDate":  "2021/11/29",
		"customerId": 99,
		"products":   []map[string]interface{}{{"SKUId": 12, "qty": 1}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemAPI(t *testing.T) {
	r, _ := setupAPI(t)

	w := testutil.DoRequest(r, http.MethodPost, "/api/item", map[string]interface{}{
		"id": 20, "description": "item", "price": 4.5, "SKUId": 180, "supplierId": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = testutil.DoRequest(r, http.MethodPost, "/api/item", map[string]interface{}{
		"id": 21, "description": "dup", "price": 4.5, "SKUId": 180, "supplierId": 5,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = testutil.DoRequest(r, http.MethodPut, "/api/item/20/5", map[string]interface{}{
		"newDescription": "renamed", "newPrice": 5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoRequest(r, http.MethodGet, "/api/items/20/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "renamed", testutil.ParseResponse(w)["description"])

	w = testutil.DoRequest(r, http.MethodDelete, "/api/items/20/5", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = testutil.DoRequest(r, http.MethodGet, "/api/items/20/5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
