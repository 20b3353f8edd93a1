package model

type LoanStatus string

const (
	LoanActive    LoanStatus = "active"
	LoanCompleted LoanStatus = "completed"
	LoanOverdue   LoanStatus = "overdue"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanActive, LoanCompleted, LoanOverdue:
		return true
	}
	return false
}

// Loan balances are written by the back office; remaining_amount never exceeds the principal.
type Loan struct {
	BaseModel
	MemberID        int        `gorm:"not null;index" json:"member_id"`
	Member          *Member    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name            string     `gorm:"type:text;not null" json:"name"`
	Amount          Amount     `gorm:"type:numeric(15,2);not null" json:"amount"`
	RemainingAmount Amount     `gorm:"type:numeric(15,2);not null;check:chk_loans_remaining,remaining_amount <= amount" json:"remaining_amount"`
	MonthlyPayment  Amount     `gorm:"type:numeric(15,2);not null" json:"monthly_payment"`
	Status          LoanStatus `gorm:"type:varchar(10);not null;default:'active';check:chk_loans_status,status IN ('active','completed','overdue')" json:"status"`
}

func (Loan) TableName() string {
	return "loans"
}
