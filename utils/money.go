package utils

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MoneyFormatter renders minor-unit amounts for display. The API stores and
// returns integer pence everywhere; formatting is presentation only.
type MoneyFormatter interface {
	Format(amountInMinorUnits int) string
	CurrencyCode() string
	Symbol() string
}

type localeMoneyFormatter struct {
	unit    currency.Unit
	symbol  string
	printer *message.Printer
}

// NewMoneyFormatter returns a formatter for the given ISO currency code.
// Only GBP is supported for now; others can be added in due course.
func NewMoneyFormatter(currencyCode string) (MoneyFormatter, error) {
	switch strings.ToUpper(currencyCode) {
	case "GBP":
		return &localeMoneyFormatter{
			unit:    currency.GBP,
			symbol:  "£",
			printer: message.NewPrinter(language.BritishEnglish),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported currency: %s", currencyCode)
	}
}

func (f *localeMoneyFormatter) Format(amountInMinorUnits int) string {
	return f.printer.Sprintf("%s%.2f", f.symbol, float64(amountInMinorUnits)/100)
}

func (f *localeMoneyFormatter) CurrencyCode() string {
	return f.unit.String()
}

func (f *localeMoneyFormatter) Symbol() string {
	return f.symbol
}
