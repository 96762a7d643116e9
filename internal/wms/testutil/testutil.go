package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const TestSchema = "test_wms"

// projectRoot returns the project root directory by looking for go.mod
func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func loadEnv() {
	if root := projectRoot(); root != "" {
		godotenv.Load(filepath.Join(root, ".env"))
	}
}

// SetupTestDB opens a connection bound to a fresh schema holding every
// warehouse table. The schema is dropped when the test ends. The test is
// skipped when no database is reachable, or fails when DB_REQUIRED is set.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	loadEnv()

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "ezwh")
	password := getEnv("DB_PASSWORD", "ezwh")
	dbname := getEnv("DB_NAME", "ezwh")

	baseDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable connect_timeout=3",
		host, port, user, password, dbname)

	schemaName := fmt.Sprintf("%s_%d", TestSchema, time.Now().UnixNano()%1000000000)

	setupDB, err := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		unavailable(t, "postgres not available: %v", err)
	}
	if err := setupDB.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName)).Error; err != nil {
		unavailable(t, "cannot create test schema: %v", err)
	}
	sqlSetup, _ := setupDB.DB()
	sqlSetup.Close()

	// search_path in the DSN so every pooled connection uses the test schema
	testDSN := fmt.Sprintf("%s search_path=%s", baseDSN, schemaName)
	db, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		cleanDB, cleanErr := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if cleanErr == nil {
			cleanDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
			if sqlClean, _ := cleanDB.DB(); sqlClean != nil {
				sqlClean.Close()
			}
		}
	})

	if err := db.AutoMigrate(entity.All()...); err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}
	return db
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse decodes a JSON object body
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// ParseList decodes a JSON array body
func ParseList(w *httptest.ResponseRecorder) []map[string]interface{} {
	var result []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// SeedUser creates a user of the given type
func SeedUser(t *testing.T, db *gorm.DB, id uint, userType string) *entity.User {
	t.Helper()
	u := &entity.User{
		ID:       id,
		Username: fmt.Sprintf("user%d@ezwh.com", id),
		Name:     "Name",
		Surname:  "Surname",
		Type:     userType,
		Password: "testpassword",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return u
}

// SeedSKU creates a SKU
func SeedSKU(t *testing.T, db *gorm.DB, id uint, description string, price string) *entity.SKU {
	t.Helper()
	sku := &entity.SKU{
		ID:          id,
		Description: description,
		Weight:      100,
		Volume:      50,
		Price:       decimal.RequireFromString(price),
	}
	if err := db.Create(sku).Error; err != nil {
		t.Fatalf("Failed to seed SKU: %v", err)
	}
	return sku
}

// SeedItem creates a supplier item
func SeedItem(t *testing.T, db *gorm.DB, id, supplierID, skuID uint, description, price string) *entity.Item {
	t.Helper()
	item := &entity.Item{
		ID:          id,
		SupplierID:  supplierID,
		SKUID:       skuID,
		Description: description,
		Price:       decimal.RequireFromString(price),
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("Failed to seed item: %v", err)
	}
	return item
}

// SeedSKUItem creates a physical unit
func SeedSKUItem(t *testing.T, db *gorm.DB, rfid string, skuID uint, available bool) *entity.SKUItem {
	t.Helper()
	now := time.Now()
	unit := &entity.SKUItem{
		RFID:        rfid,
		SKUID:       skuID,
		Available:   available,
		DateOfStock: &now,
	}
	if err := db.Create(unit).Error; err != nil {
		t.Fatalf("Failed to seed SKU item: %v", err)
	}
	return unit
}

// SeedTestResult records a test outcome for a unit
func SeedTestResult(t *testing.T, db *gorm.DB, rfid string, date time.Time, passed bool) *entity.TestResult {
	t.Helper()
	r := &entity.TestResult{
		TestDescriptorID: 1,
		RFID:             rfid,
		Date:             date,
		Result:           passed,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("Failed to seed test result: %v", err)
	}
	return r
}

// dbRequired reports whether DB_REQUIRED asks for a real database, as in CI.
func dbRequired() bool {
	required, _ := strconv.ParseBool(os.Getenv("DB_REQUIRED"))
	return required
}

func unavailable(t testing.TB, format string, args ...interface{}) {
	t.Helper()
	if dbRequired() {
		t.Fatalf(format, args...)
	}
	t.Skipf(format, args...)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
