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
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/reservation-api/models"
	"github.com/yeremiapane/reservation-api/router"
	"github.com/yeremiapane/reservation-api/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupIntegrationDB -> migrasi model di SQLite in-memory
func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.User{}, &models.Table{}, &models.Reservation{}); err != nil {
		panic(err)
	}
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM tables")
	db.Exec("DELETE FROM reservations")
	return db
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf *bytes.Buffer
	if payload != nil {
		body, err := json.Marshal(payload)
		assert.NoError(t, err)
		buf = bytes.NewBuffer(body)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &response)
	}
	return w, response
}

// TestGlobalRateLimit memastikan limiter per-IP benar-benar dieksekusi di
// chain router (limit 50 request/detik).
func TestGlobalRateLimit(t *testing.T) {
	db := setupIntegrationDB()
	r := router.SetupRouter(db)

	status := make(map[int]int)
	for i := 0; i < 60; i++ {
		req, err := http.NewRequest("GET", "/ping", nil)
		assert.NoError(t, err)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		status[w.Code]++
	}

	assert.Equal(t, 50, status[http.StatusOK])
	assert.Equal(t, 10, status[http.StatusTooManyRequests])
}

// TestEndToEndReservationFlow menguji flow utama:
// 1. Register meja
// 2. Reserve slot -> dapat reservationId
// 3. Slot beririsan -> ditolak
// 4. Slot back-to-back -> diterima
// 5. Proyeksi list tables & reservations
func TestEndToEndReservationFlow(t *testing.T) {
	db := setupIntegrationDB()
	r := router.SetupRouter(db)

	// 1. Register meja
	w, resp := doJSON(t, r, "POST", "/tables", map[string]interface{}{
		"id":       17,
		"number":   17,
		"capacity": 4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(17), resp["data"].(map[string]interface{})["id"])

	// 2. Reserve slot kosong
	w, resp = doJSON(t, r, "POST", "/reservations", map[string]interface{}{
		"tableNumber":   17,
		"date":          "2024-06-01",
		"slotTimeStart": "10:00",
		"slotTimeEnd":   "11:00",
		"clientName":    "Budi",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	reservationID := resp["data"].(map[string]interface{})["reservationId"].(string)
	assert.NotEmpty(t, reservationID)

	// 3. Slot beririsan -> 400
	w, _ = doJSON(t, r, "POST", "/reservations", map[string]interface{}{
		"tableNumber":   17,
		"date":          "2024-06-01",
		"slotTimeStart": "10:30",
		"slotTimeEnd":   "11:30",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 4. Back-to-back -> 200
	w, _ = doJSON(t, r, "POST", "/reservations", map[string]interface{}{
		"tableNumber":   17,
		"date":          "2024-06-01",
		"slotTimeStart": "11:00",
		"slotTimeEnd":   "12:00",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// 5a. List tables: number tidak pernah bocor
	w, resp = doJSON(t, r, "GET", "/tables", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	tables := resp["data"].(map[string]interface{})["tables"].([]interface{})
	assert.Len(t, tables, 1)
	_, hasNumber := tables[0].(map[string]interface{})["number"]
	assert.False(t, hasNumber)

	// 5b. List reservations: tanpa id & reservationDate
	w, resp = doJSON(t, r, "GET", "/reservations", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	reservations := resp["data"].(map[string]interface{})["reservations"].([]interface{})
	assert.Len(t, reservations, 2)
	for _, raw := range reservations {
		item := raw.(map[string]interface{})
		_, hasID := item["id"]
		assert.False(t, hasID)
		_, hasDate := item["reservationDate"]
		assert.False(t, hasDate)
	}

	// Get table by id
	w, resp = doJSON(t, r, "GET", "/tables/17", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(17), resp["data"].(map[string]interface{})["id"])

	// Get table yang tidak ada -> 404
	w, _ = doJSON(t, r, "GET", "/tables/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
