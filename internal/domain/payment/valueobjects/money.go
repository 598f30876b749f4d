package valueobjects

import "fmt"

type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	if currency == "" {
		currency = "INR"
	}
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	return m.currency
}

// FormatAmount renders the amount as a fixed-point decimal string with
// exactly 2 fraction digits, the format the gateway wire protocol requires.
func (m Money) FormatAmount() string {
	return fmt.Sprintf("%d.%02d", m.amountInCents/100, m.amountInCents%100)
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.currency == other.currency
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.FormatAmount(), m.currency)
}
