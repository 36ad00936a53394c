package controllers

import (
	"math"
	"strconv"

	"github.com/yeremiapane/reservation-api/models"
)

// Proyeksi read dibuat eksplisit dan bernama supaya aturan strip field
// tidak tersebar sebagai side effect di handler.

// tableView: seluruh atribut bebas + id dalam bentuk numerik.
// TableNumber TIDAK pernah ikut.
func tableView(t models.Table) map[string]interface{} {
	view := make(map[string]interface{}, len(t.Attrs)+1)
	for k, v := range t.Attrs {
		view[k] = v
	}
	if n, err := strconv.Atoi(t.ID); err == nil {
		view["id"] = n
	} else {
		// id non-numerik dibiarkan apa adanya daripada bikin handler panik
		view["id"] = t.ID
	}
	return view
}

// reservationListView: tableNumber, slot, dan atribut bebas.
// ID dan reservationDate di-strip, dan alias input "date" tidak
// dikembalikan — asimetri ini disengaja (perilaku sumber dipertahankan).
func reservationListView(r models.Reservation) map[string]interface{} {
	view := make(map[string]interface{}, len(r.Attrs)+3)
	for k, v := range r.Attrs {
		view[k] = v
	}
	view["tableNumber"] = r.TableNumber
	view["slotTimeStart"] = r.SlotTimeStart
	view["slotTimeEnd"] = r.SlotTimeEnd
	return view
}

// asString meniru coercion longgar milik sumber (id boleh string atau angka).
func asString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		return "", false
	}
}

func asInt(v interface{}) (int, bool) {
	switch val := v.(type) {
	case float64:
		// Angka pecahan ditolak, jangan diam-diam dipotong
		if val != math.Trunc(val) {
			return 0, false
		}
		return int(val), true
	case string:
		if n, err := strconv.Atoi(val); err == nil {
			return n, true
		}
	}
	return 0, false
}
