package model

// Dashboard is the composite home-screen view for one member
type Dashboard struct {
	Member              Member             `json:"member"`
	TotalSavings        Amount             `json:"totalSavings"`
	SavingsBreakdown    []SavingsBreakdown `json:"savingsBreakdown"`
	TotalLoans          Amount             `json:"totalLoans"`
	Loans               []Loan             `json:"loans"`
	RecentTransactions  []Transaction      `json:"recentTransactions"`
	UnreadNotifications int64              `json:"unreadNotifications"`
}
