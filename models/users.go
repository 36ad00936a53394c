package models

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"type:varchar(255); not null"`
	Email     string `gorm:"type:varchar(255); unique;not null"`
	Password  string `gorm:"type:varchar(255); not null"`
	Role      string `gorm:"type:varchar(50); not null; default:'staff'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
