package model

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
)

// Amount is a fixed-precision money value stored as numeric(15,2).
// It always marshals to a bare JSON number, never a quoted decimal string.
type Amount struct {
	decimal.Decimal
}

func NewAmount(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

// MustAmount is for seed data and fixtures
func MustAmount(value string) Amount {
	return Amount{decimal.RequireFromString(value)}
}

func AmountFromInt(value int64) Amount {
	return Amount{decimal.NewFromInt(value)}
}

func (a Amount) Add(other Amount) Amount {
	return Amount{a.Decimal.Add(other.Decimal)}
}

func (a Amount) Equal(other Amount) bool {
	return a.Decimal.Equal(other.Decimal)
}

// Float64 is lossy and only meant for display/tests
func (a Amount) Float64() float64 {
	return a.Decimal.InexactFloat64()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

func (a Amount) Value() (driver.Value, error) {
	return a.Decimal.Value()
}

func (a *Amount) Scan(value interface{}) error {
	if value == nil {
		a.Decimal = decimal.Zero
		return nil
	}
	return a.Decimal.Scan(value)
}

// SumAmounts adds values exactly; an empty input sums to zero
func SumAmounts(values ...Amount) Amount {
	total := Amount{decimal.Zero}
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
