// Package moneyx parses and formats Brazilian real amounts the way operators
// type them ("1.234,56", "39,90", "29.9").
package moneyx

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	// ErrEmpty is returned when there is nothing to parse.
	ErrEmpty = errors.New("moneyx: empty amount")

	// ErrMalformed is returned when the text is not a number in any accepted
	// notation.
	ErrMalformed = errors.New("moneyx: malformed amount")
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Sanitize removes every rune that cannot appear in an amount. Digits, the
// comma, the dot and the minus sign survive.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

var navigationKeys = map[string]struct{}{
	"Backspace":  {},
	"Delete":     {},
	"Tab":        {},
	"Escape":     {},
	"Enter":      {},
	"ArrowLeft":  {},
	"ArrowRight": {},
	"Home":       {},
	"End":        {},
}

// AllowKey reports whether a key press may reach a currency field. Key names
// follow KeyboardEvent.key.
func AllowKey(key string) bool {
	if _, ok := navigationKeys[key]; ok {
		return true
	}
	if len(key) != 1 {
		return false
	}
	c := key[0]
	return (c >= '0' && c <= '9') || c == '.' || c == ','
}

// Parse reads an amount. When both separators appear the dots group
// thousands and the comma is decimal; a lone comma is decimal; otherwise the
// text is a plain number. The result is rounded to cents.
func Parse(s string) (float64, error) {
	cleaned := Sanitize(strings.TrimSpace(s))
	if cleaned == "" {
		if strings.TrimSpace(s) == "" {
			return 0, ErrEmpty
		}
		return 0, ErrMalformed
	}

	hasComma := strings.Contains(cleaned, ",")
	hasDot := strings.Contains(cleaned, ".")

	normalized := cleaned
	switch {
	case hasComma && hasDot:
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.Replace(normalized, ",", ".", 1)
	case hasComma:
		normalized = strings.Replace(normalized, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrMalformed
	}
	return Round(v), nil
}

// Round rounds v to two decimal places, half away from zero.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// Format renders v with pt-BR separators and exactly two decimals.
func Format(v float64) string {
	return printer.Sprint(number.Decimal(Round(v), number.Scale(2)))
}

// FormatBRL renders v as a price label, e.g. "R$ 29,90".
func FormatBRL(v float64) string {
	return "R$ " + Format(v)
}
