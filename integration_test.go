package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/acme-gaming/acme-store-api/config"
	"github.com/acme-gaming/acme-store-api/models"
)

// setupIntegrationRouter builds the full application router against an
// in-memory database for integration testing
func setupIntegrationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.Product{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := models.SeedProducts(db); err != nil {
		t.Fatalf("Failed to seed test catalog: %v", err)
	}
	config.SetDB(db)

	cfg := &config.Config{
		GoEnv:             "test",
		Auth0Domain:       "test.auth0.com",
		Auth0Audience:     "https://api.test.com",
		BankName:          "BDO Unibank",
		BankAccountName:   "ACME Gaming Store",
		BankAccountNumber: "1234-5678-9012",
		GCashNumber:       "0917-123-4567",
		GCashAccountName:  "ACME Gaming Store",
		PaymentsEmail:     "orders@acmestore.com",
	}
	config.SetConfig(cfg)

	return setupRouter(cfg)
}

// TestHealthEndpointIntegration tests the /api/v1/health endpoint with full routing
func TestHealthEndpointIntegration(t *testing.T) {
	router := setupIntegrationRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Expected status 200 OK")

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
}

// TestCatalogEndpointIntegration verifies the seeded catalog is served
// through the full router
func TestCatalogEndpointIntegration(t *testing.T) {
	router := setupIntegrationRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].([]interface{})
	assert.Equal(t, len(models.DefaultCatalog), len(data))
}

// TestAdminRoutesRequireAuth verifies the back-office routes reject
// unauthenticated requests through the full middleware chain
func TestAdminRoutesRequireAuth(t *testing.T) {
	router := setupIntegrationRouter(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/admin/orders"},
		{http.MethodGet, "/api/v1/admin/orders/1"},
		{http.MethodPatch, "/api/v1/admin/orders/1/status"},
	} {
		req, _ := http.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s should require a token", route.method, route.path)
	}
}

// TestMetricsEndpointIntegration verifies the Prometheus scrape endpoint
func TestMetricsEndpointIntegration(t *testing.T) {
	router := setupIntegrationRouter(t)

	req, _ := http.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "acmestore_api_http_requests_total")
}
