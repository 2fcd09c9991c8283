package service

import "github.com/shopspring/decimal"

// SplitBill returns the share each person pays, rounded to cents.
func SplitBill(total decimal.Decimal, people int) (decimal.Decimal, error) {
	if people < 1 || total.IsNegative() {
		return decimal.Zero, ErrInvalidSplit
	}
	return total.Div(decimal.NewFromInt(int64(people))).Round(2), nil
}
