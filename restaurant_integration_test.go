package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/savoria/restaurant-backend/config"
	"github.com/savoria/restaurant-backend/database"
	"github.com/savoria/restaurant-backend/router"
	"github.com/savoria/restaurant-backend/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the whole guest flow through the real router:
// browse the menu and gallery, leave a review, book a table, subscribe to the
// newsletter, place an order and track it.
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationStore(t)
	r := router.SetupRouter(db)

	checkHealthTest(t, r)
	browseCatalogTest(t, r)
	leaveReviewTest(t, r)
	bookTableTest(t, r)
	subscribeTest(t, r)

	orderID := placeOrderTest(t, r)
	trackOrderTest(t, r, orderID)
}

func setupIntegrationStore(t *testing.T) *gorm.DB {
	db, err := config.InitDB()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	return db
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		b, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func checkHealthTest(t *testing.T, r *gin.Engine) {
	w := doJSON(t, r, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])
}

func browseCatalogTest(t *testing.T, r *gin.Engine) {
	w := doJSON(t, r, "GET", "/api/menu?category=desserts", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var menu []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &menu))
	assert.Len(t, menu, 2)

	w = doJSON(t, r, "GET", "/api/gallery", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var gallery []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &gallery))
	assert.Len(t, gallery, 6)
}

func leaveReviewTest(t *testing.T, r *gin.Engine) {
	w := doJSON(t, r, "POST", "/api/reviews", map[string]interface{}{
		"name":    "Walk-in Guest",
		"email":   "guest@example.com",
		"rating":  5,
		"comment": "The tasting menu was superb.",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "GET", "/api/reviews", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var reviews []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	assert.Len(t, reviews, 4)
}

func bookTableTest(t *testing.T, r *gin.Engine) {
	w := doJSON(t, r, "POST", "/api/reservations", map[string]interface{}{
		"name":   "Walk-in Guest",
		"email":  "guest@example.com",
		"phone":  "+8801712345678",
		"guests": 2,
		"date":   "2026-12-24",
		"time":   "19:30",
		"notes":  "Window seat, please",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Reservation confirmed", resp["message"])
	reservation := resp["reservation"].(map[string]interface{})
	assert.Equal(t, "Window seat, please", reservation["notes"])
}

func subscribeTest(t *testing.T, r *gin.Engine) {
	w := doJSON(t, r, "POST", "/api/newsletter", map[string]interface{}{
		"email": "Guest@Example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same address in a different case is a conflict.
	w = doJSON(t, r, "POST", "/api/newsletter", map[string]interface{}{
		"email": "guest@example.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func placeOrderTest(t *testing.T, r *gin.Engine) string {
	w := doJSON(t, r, "POST", "/api/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": 4, "quantity": 1},
			{"id": 7, "quantity": 2},
		},
		"customer": map[string]interface{}{
			"name":  "Walk-in Guest",
			"email": "guest@example.com",
			"phone": "+8801712345678",
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	order := resp["order"].(map[string]interface{})
	// 29.99 + 13.99*2 against the seed menu.
	assert.Equal(t, 57.97, order["total"])
	return order["id"].(string)
}

func trackOrderTest(t *testing.T, r *gin.Engine, orderID string) {
	w := doJSON(t, r, "GET", "/api/orders/"+orderID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var view map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Order Confirmed", view["status"])

	items := view["items"].([]interface{})
	assert.Len(t, items, 2)

	w = doJSON(t, r, "GET", "/api/orders/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
