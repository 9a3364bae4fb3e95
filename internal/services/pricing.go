package services

import (
	"github.com/shopspring/decimal"

	"marketplace/internal/domain"
)

var categoryBaseline = map[domain.Category]decimal.Decimal{
	domain.Electronics: decimal.NewFromInt(300),
	domain.Books:       decimal.NewFromInt(20),
	domain.Furniture:   decimal.NewFromInt(150),
	domain.Fashion:     decimal.NewFromInt(50),
	domain.Sports:      decimal.NewFromInt(80),
	domain.Home:        decimal.NewFromInt(60),
	domain.Toys:        decimal.NewFromInt(25),
	domain.Others:      decimal.NewFromInt(40),
}

var conditionMultiplier = map[domain.Condition]decimal.Decimal{
	domain.New:        decimal.RequireFromString("1.00"),
	domain.LikeNew:    decimal.RequireFromString("0.90"),
	domain.VeryGood:   decimal.RequireFromString("0.80"),
	domain.Good:       decimal.RequireFromString("0.65"),
	domain.Acceptable: decimal.RequireFromString("0.50"),
}

var (
	lowFactor  = decimal.RequireFromString("0.9")
	highFactor = decimal.RequireFromString("1.1")
)

type PriceSuggestion struct {
	Suggested decimal.Decimal
	Low       decimal.Decimal
	High      decimal.Decimal
}

// SuggestPrice is advisory only; CreateListing accepts any positive price.
// Unknown categories use the Others baseline, unknown conditions price as GOOD.
func SuggestPrice(category domain.Category, condition domain.Condition) PriceSuggestion {
	base, ok := categoryBaseline[category]
	if !ok {
		base = categoryBaseline[domain.Others]
	}
	mult, ok := conditionMultiplier[condition]
	if !ok {
		mult = conditionMultiplier[domain.Good]
	}
	suggested := base.Mul(mult).Round(2)
	return PriceSuggestion{
		Suggested: suggested,
		Low:       suggested.Mul(lowFactor).Round(2),
		High:      suggested.Mul(highFactor).Round(2),
	}
}
