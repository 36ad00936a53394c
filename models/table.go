package models

import "time"

// Table merepresentasikan satu meja fisik.
// TableNumber hanya dipakai internal untuk pencocokan reservasi,
// tidak pernah dikirim ke client.
type Table struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)"`
	TableNumber int       `gorm:"index;not null"`
	Attrs       Attrs     `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
