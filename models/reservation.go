package models

import "time"

// Reservation merepresentasikan satu booking meja untuk rentang waktu
// half-open [SlotTimeStart, SlotTimeEnd) pada tanggal tertentu.
// ReservationDate dan ID tidak pernah muncul di response list (lihat
// proyeksi di controllers).
type Reservation struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)"`
	TableNumber     int       `gorm:"index:idx_reservation_slot;not null"`
	ReservationDate string    `gorm:"index:idx_reservation_slot;type:varchar(32);not null"`
	SlotTimeStart   string    `gorm:"type:varchar(8);not null"`
	SlotTimeEnd     string    `gorm:"type:varchar(8);not null"`
	Attrs           Attrs     `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// Overlaps menguji iris dua interval half-open pada meja/tanggal yang sama:
// [s1,e1) dan [s2,e2) beririsan iff s1 < e2 && s2 < e1. Slot yang
// back-to-back (e1 == s2) tidak dianggap bentrok.
func Overlaps(s1, e1, s2, e2 string) bool {
	return s1 < e2 && s2 < e1
}
