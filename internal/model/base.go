package model

import "time"

// BaseModel handles the serial ID and audit timestamps shared by mutable tables
type BaseModel struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

// AllModels lists every table in migration order (members first for the FKs)
func AllModels() []interface{} {
	return []interface{}{
		&Member{},
		&Savings{},
		&Loan{},
		&Transaction{},
		&Notification{},
		&Product{},
	}
}
