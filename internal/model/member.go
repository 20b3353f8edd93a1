package model

import "golang.org/x/crypto/bcrypt"

// Member is a cooperative participant and the root of every per-member record
type Member struct {
	BaseModel
	MemberNumber string  `gorm:"type:text;uniqueIndex;not null" json:"member_number"`
	Name         string  `gorm:"type:text;not null" json:"name"`
	Phone        *string `gorm:"type:text" json:"phone"`
	Email        *string `gorm:"type:text" json:"email"`
	PinHash      string  `gorm:"type:text;not null;default:''" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

// SetPin hashes and sets the member's login PIN
func (m *Member) SetPin(pin string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.PinHash = string(hashed)
	return nil
}

// CheckPin reports whether pin matches the stored hash. Members without a PIN cannot log in.
func (m *Member) CheckPin(pin string) bool {
	if m.PinHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(m.PinHash), []byte(pin)) == nil
}
