// Package format renders numbers for display. Functions are pure: a
// Formatter is immutable after construction and never panics on odd input.
package format

import (
	"fmt"
	"math"

	"github.com/rotisserie/eris"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders currency and percentage values under a single locale
// convention. The same locale applies to every monetary field so grouping
// stays consistent across the whole surface.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New builds a Formatter for a BCP 47 locale such as "en-IN" or "en-US".
// The currency symbol is derived from the locale's region.
func New(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, eris.Wrapf(err, "format: parse locale %q", locale)
	}

	unit := currency.USD
	if region, conf := tag.Region(); conf >= language.High {
		if u, ok := currency.FromRegion(region); ok {
			unit = u
		}
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbolFor(unit),
	}, nil
}

// symbolFor returns the display symbol for a currency unit. Units without a
// dedicated glyph fall back to their ISO code.
func symbolFor(unit currency.Unit) string {
	switch unit {
	case currency.INR:
		return "₹"
	case currency.USD:
		return "$"
	case currency.EUR:
		return "€"
	case currency.GBP:
		return "£"
	default:
		return unit.String()
	}
}

// Currency renders a monetary amount with the locale's thousands grouping,
// zero decimal places, and the locale's currency symbol. NaN and infinities
// render as zero.
func (f *Formatter) Currency(amount float64) string {
	amount = sanitize(amount)
	return f.symbol + f.printer.Sprint(number.Decimal(amount,
		number.MaxFractionDigits(0),
	))
}

// Percent renders a value already scaled to percentage units (0-100).
func (f *Formatter) Percent(pct float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f%%", decimals, sanitize(pct))
}

// PercentFromFraction renders a [0,1] fraction as a percentage. Which
// fields arrive as fractions versus pre-scaled percentages is fixed by the
// API contract, not auto-detected.
func (f *Formatter) PercentFromFraction(frac float64, decimals int) string {
	return f.Percent(sanitize(frac)*100, decimals)
}

// Score renders a priority score with two decimal places.
func (f *Formatter) Score(v float64) string {
	return fmt.Sprintf("%.2f", sanitize(v))
}

// Count renders a non-negative integer counter.
func (f *Formatter) Count(n int) string {
	return fmt.Sprintf("%d", n)
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
