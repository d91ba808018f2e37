package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"marketplace/internal/config"
	"marketplace/internal/routes"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	return routes.SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerAndLogin runs the full auth round trip and returns a token.
func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Api Tester", "email": email, "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	form := url.Values{"username": {email}, "password": {"hunter22"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, req)
	require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

	body := decode(t, lw)
	assert.Equal(t, "bearer", body["token_type"])
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegister_ResponseOmitsPassword(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Alice", "email": "alice@api.test", "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter22")
	assert.NotContains(t, w.Body.String(), `"password"`)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r := setupAPI(t)

	first := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "A", "email": "dup@api.test", "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "B", "email": "dup@api.test", "password": "pw123456",
	})
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	r := setupAPI(t)
	registerAndLogin(t, r, "bob@api.test")

	form := url.Values{"username": {"bob@api.test"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/users", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := registerAndLogin(t, r, "carol@api.test")
	w = doJSON(t, r, http.MethodGet, "/api/v1/users", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// End-to-end: supplier, consumer, link approval, then chat access.
func TestLinkApprovalUnlocksChat(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "owner@api.test")

	w := doJSON(t, r, http.MethodPost, "/api/v1/suppliers", token, gin.H{"company_name": "Green Growers"})
	require.Equal(t, http.StatusCreated, w.Code)
	supplierID := decode(t, w)["supplier"].(map[string]any)["ID"].(float64)

	w = doJSON(t, r, http.MethodPost, "/api/v1/consumers", token, gin.H{"company_name": "City Diner", "type": "Restaurant"})
	require.Equal(t, http.StatusCreated, w.Code)
	consumerID := decode(t, w)["consumer"].(map[string]any)["ID"].(float64)

	w = doJSON(t, r, http.MethodPost, "/api/v1/links", token, gin.H{
		"supplier_id": supplierID, "consumer_id": consumerID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	link := decode(t, w)["link"].(map[string]any)
	linkID := link["ID"].(float64)
	assert.Equal(t, "Pending", link["status"])

	// duplicate pair is rejected
	w = doJSON(t, r, http.MethodPost, "/api/v1/links", token, gin.H{
		"supplier_id": supplierID, "consumer_id": consumerID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// chat is forbidden while pending
	chatPath := fmt.Sprintf("/api/v1/chat/link/%.0f", linkID)
	w = doJSON(t, r, http.MethodGet, chatPath, token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/links/%.0f", linkID), token, gin.H{"status": "Approved"})
	require.Equal(t, http.StatusOK, w.Code)
	approved := decode(t, w)["link"].(map[string]any)
	assert.Equal(t, "Approved", approved["status"])
	assert.NotNil(t, approved["approved_at"])

	w = doJSON(t, r, http.MethodGet, chatPath, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListFilters_RejectMalformedIDs(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "dave@api.test")

	for _, path := range []string{
		"/api/v1/products?supplier_id=abc",
		"/api/v1/links?consumer_id=12x",
		"/api/v1/orders?supplier_id=-1",
		"/api/v1/complaints?order_id=abc",
	} {
		w := doJSON(t, r, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "invalid")
	}

	// well-formed filters still list normally
	w := doJSON(t, r, http.MethodGet, "/api/v1/products?supplier_id=1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateOrder_InsufficientStockHTTP(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "buyer@api.test")

	w := doJSON(t, r, http.MethodPost, "/api/v1/suppliers", token, gin.H{"company_name": "Green Growers"})
	require.Equal(t, http.StatusCreated, w.Code)
	supplierID := decode(t, w)["supplier"].(map[string]any)["ID"].(float64)

	w = doJSON(t, r, http.MethodPost, "/api/v1/consumers", token, gin.H{"company_name": "City Diner"})
	require.Equal(t, http.StatusCreated, w.Code)
	consumer := decode(t, w)["consumer"].(map[string]any)
	consumerID := consumer["ID"].(float64)

	w = doJSON(t, r, http.MethodGet, "/api/v1/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	userID := decode(t, w)["data"].([]any)[0].(map[string]any)["ID"].(float64)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/consumers/%.0f/staff", consumerID), token, gin.H{
		"user_id": userID, "role": "Staff",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	staffID := decode(t, w)["staff"].(map[string]any)["ID"].(float64)

	w = doJSON(t, r, http.MethodPost, "/api/v1/products", token, gin.H{
		"supplier_id": supplierID, "name": "Eggs", "price": 0.4, "stock": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	productID := decode(t, w)["product"].(map[string]any)["ID"].(float64)

	orderPath := fmt.Sprintf("/api/v1/orders?consumer_staff_id=%.0f", staffID)
	w = doJSON(t, r, http.MethodPost, orderPath, token, gin.H{
		"supplier_id": supplierID,
		"consumer_id": consumerID,
		"items":       []gin.H{{"product_id": productID, "quantity": 10}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient stock")

	// nothing was created
	w = doJSON(t, r, http.MethodGet, "/api/v1/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["data"])
}
