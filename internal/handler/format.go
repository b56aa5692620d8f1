package handler

import (
	"math/big"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// coins renders an amount with digit grouping, e.g. "12,500 coins"
func coins(amount int64) string {
	if amount == 1 {
		return printer.Sprintf("%d coin", amount)
	}
	return printer.Sprintf("%d coins", amount)
}

// bigCoins groups an arbitrary precision amount by hand since the printer only groups machine ints
func bigCoins(amount *big.Int) string {
	if amount.IsInt64() {
		return coins(amount.Int64())
	}
	digits := new(big.Int).Abs(amount).String()
	out := make([]byte, 0, len(digits)+len(digits)/3+1)
	if amount.Sign() < 0 {
		out = append(out, '-')
	}
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return string(out) + " coins"
}

// displayName turns a feature or game key into a user-facing title
func displayName(key string) string {
	return titler.String(key)
}
