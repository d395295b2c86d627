package models

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	hundred = decimal.NewFromInt(100)
	printer = message.NewPrinter(language.Dutch)
)

// Amounts are the financial roll-ups for a set of payments.
type Amounts struct {
	Awarded    decimal.Decimal `json:"awarded" example:"10000"`    // Sum of all income
	Expenses   decimal.Decimal `json:"expenses" example:"5145.6"`  // Sum of all expenses, positive
	Insourcing decimal.Decimal `json:"insourcing" example:"0"`     // Sum of all insourcing, positive
	Spent      decimal.Decimal `json:"spent" example:"5145.6"`     // Expenses, plus insourcing if there is a budget
	Left       decimal.Decimal `json:"left" example:"4854"`        // Budget (or awarded if there is none) minus spent, rounded to whole euros
	LeftText   string          `json:"leftText" example:"€ 4.854"` // Left, formatted for display
	Percentage int64           `json:"percentage" example:"51"`    // Part of the budget (or awarded) that has been spent, 0 to 100
	Budget     int64           `json:"budget" example:"0"`         // The budget the amounts were calculated for
}

// CalculateAmounts calculates the roll-ups for the payments. budget is the
// budget of the project or subproject in whole euros, 0 if it has none.
//
// Signs are not checked, so the sums are exactly what the payments say.
func CalculateAmounts(payments []Payment, budget int64) Amounts {
	a := Amounts{
		Awarded:    decimal.Zero,
		Expenses:   decimal.Zero,
		Insourcing: decimal.Zero,
		Budget:     budget,
	}

	for _, p := range payments {
		switch p.Route {
		case RouteIncome:
			a.Awarded = a.Awarded.Add(p.Amount)
		case RouteExpense:
			a.Expenses = a.Expenses.Sub(p.Amount)
		case RouteInsourcing:
			a.Insourcing = a.Insourcing.Sub(p.Amount)
		}
	}

	a.Spent = a.Expenses
	if budget > 0 {
		a.Spent = a.Spent.Add(a.Insourcing)
	}

	base := a.Awarded
	if budget > 0 {
		base = decimal.NewFromInt(budget)
	}

	a.Left = base.Sub(a.Spent).Round(0)
	a.LeftText = FormatEuro(a.Left)

	if !base.IsZero() {
		percentage := a.Spent.Div(base).Mul(hundred).Round(0).IntPart()
		a.Percentage = min(max(percentage, 0), 100)
	}

	return a
}

// FormatEuro formats the amount in whole euros the Dutch way, e.g. "€ 4.854".
func FormatEuro(amount decimal.Decimal) string {
	return "€ " + printer.Sprintf("%d", amount.Round(0).IntPart())
}
