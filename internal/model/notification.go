package model

import "time"

type Notification struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	MemberID  int       `gorm:"not null;index" json:"member_id"`
	Member    *Member   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
