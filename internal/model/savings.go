package model

type SavingsType string

const (
	SimpananPokok    SavingsType = "simpanan_pokok"
	SimpananWajib    SavingsType = "simpanan_wajib"
	SimpananSukarela SavingsType = "simpanan_sukarela"
)

func (t SavingsType) Valid() bool {
	switch t {
	case SimpananPokok, SimpananWajib, SimpananSukarela:
		return true
	}
	return false
}

type Savings struct {
	BaseModel
	MemberID int         `gorm:"not null;index" json:"member_id"`
	Member   *Member     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Type     SavingsType `gorm:"type:varchar(20);not null;check:chk_savings_type,type IN ('simpanan_pokok','simpanan_wajib','simpanan_sukarela')" json:"type"`
	Amount   Amount      `gorm:"type:numeric(15,2);not null;check:chk_savings_amount,amount >= 0" json:"amount"`
}

func (Savings) TableName() string {
	return "savings"
}

// SavingsBreakdown is the per-type sum of a member's savings rows
type SavingsBreakdown struct {
	Type   SavingsType `json:"type"`
	Amount Amount      `json:"amount"`
}
