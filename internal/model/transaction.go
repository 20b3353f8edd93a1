package model

import "time"

type TransactionType string

const (
	TxIncome  TransactionType = "income"
	TxExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TxIncome || t == TxExpense
}

type TransactionCategory string

const (
	CategoryLoanPayment      TransactionCategory = "loan_payment"
	CategorySavingsDeposit   TransactionCategory = "savings_deposit"
	CategoryLoanDisbursement TransactionCategory = "loan_disbursement"
	CategoryWithdrawal       TransactionCategory = "withdrawal"
)

func (c TransactionCategory) Valid() bool {
	switch c {
	case CategoryLoanPayment, CategorySavingsDeposit, CategoryLoanDisbursement, CategoryWithdrawal:
		return true
	}
	return false
}

// Transaction rows are immutable once written, so there is no updated_at.
type Transaction struct {
	ID        int                 `gorm:"primaryKey" json:"id"`
	MemberID  int                 `gorm:"not null;index" json:"member_id"`
	Member    *Member             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Type      TransactionType     `gorm:"type:varchar(10);not null;check:chk_transactions_type,type IN ('income','expense')" json:"type"`
	Category  TransactionCategory `gorm:"type:varchar(20);not null;check:chk_transactions_category,category IN ('loan_payment','savings_deposit','loan_disbursement','withdrawal')" json:"category"`
	Title     string              `gorm:"type:text;not null" json:"title"`
	Subtitle  *string             `gorm:"type:text" json:"subtitle"`
	Amount    Amount              `gorm:"type:numeric(15,2);not null" json:"amount"`
	CreatedAt time.Time           `gorm:"not null;default:now();index" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
