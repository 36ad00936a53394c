package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/reservation-api/models"
)

func TestTableView(t *testing.T) {
	view := tableView(models.Table{
		ID:          "12",
		TableNumber: 12,
		Attrs:       models.Attrs{"capacity": 4, "location": "terrace"},
	})

	assert.Equal(t, 12, view["id"])
	assert.Equal(t, 4, view["capacity"])
	assert.Equal(t, "terrace", view["location"])

	// Field internal tidak boleh bocor ke client
	_, hasNumber := view["number"]
	assert.False(t, hasNumber)
	_, hasTableNumber := view["tableNumber"]
	assert.False(t, hasTableNumber)
}

func TestTableViewNonNumericID(t *testing.T) {
	// Id non-numerik tidak boleh bikin proyeksi gagal
	view := tableView(models.Table{ID: "meja-vip", TableNumber: 1})
	assert.Equal(t, "meja-vip", view["id"])
}

func TestReservationListView(t *testing.T) {
	view := reservationListView(models.Reservation{
		ID:              "abc-123",
		TableNumber:     5,
		ReservationDate: "2024-06-01",
		SlotTimeStart:   "10:00",
		SlotTimeEnd:     "11:00",
		Attrs:           models.Attrs{"clientName": "Budi"},
	})

	assert.Equal(t, 5, view["tableNumber"])
	assert.Equal(t, "10:00", view["slotTimeStart"])
	assert.Equal(t, "11:00", view["slotTimeEnd"])
	assert.Equal(t, "Budi", view["clientName"])

	// id dan reservationDate di-strip; alias "date" tidak dikembalikan
	_, hasID := view["id"]
	assert.False(t, hasID)
	_, hasDate := view["reservationDate"]
	assert.False(t, hasDate)
	_, hasAlias := view["date"]
	assert.False(t, hasAlias)
}

func TestJSONCoercions(t *testing.T) {
	s, ok := asString(float64(12))
	assert.True(t, ok)
	assert.Equal(t, "12", s)

	s, ok = asString("tbl-1")
	assert.True(t, ok)
	assert.Equal(t, "tbl-1", s)

	_, ok = asString(nil)
	assert.False(t, ok)

	n, ok := asInt(float64(7))
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	n, ok = asInt("7")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = asInt("tujuh")
	assert.False(t, ok)

	// Pecahan tidak boleh dipotong jadi nomor meja lain
	_, ok = asInt(float64(5.7))
	assert.False(t, ok)
}
