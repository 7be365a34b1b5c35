package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SymbolPosition string

const (
	SymbolPositionBefore SymbolPosition = "before"
	SymbolPositionAfter  SymbolPosition = "after"
)

type Currency struct {
	Id            uuid.UUID
	Name          string
	Code          string // ISO 4217, e.g. "USD"
	Symbol        string
	DecimalPlaces int
	Position      SymbolPosition
	ThousandsSep  string
	DecimalSep    string
	IsDefault     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Format renders an amount using the currency's separators and symbol
// position. Formatting is a render-time concern; amounts are stored raw.
func (c *Currency) Format(amount float64) string {
	fixed := strconv.FormatFloat(amount, 'f', c.DecimalPlaces, 64)

	intPart := fixed
	fracPart := ""
	if idx := strings.Index(fixed, "."); idx >= 0 {
		intPart = fixed[:idx]
		fracPart = fixed[idx+1:]
	}

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	number := strings.Join(groups, c.ThousandsSep)
	if fracPart != "" {
		number += c.DecimalSep + fracPart
	}
	if negative {
		number = "-" + number
	}

	if c.Position == SymbolPositionAfter {
		return fmt.Sprintf("%s%s", number, c.Symbol)
	}
	return fmt.Sprintf("%s%s", c.Symbol, number)
}
