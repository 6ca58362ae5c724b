// Package format renders halving values for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is an abbreviated month, numeric day and numeric year.
const DateLayout = "Jan 2, 2006"

// Formatter formats numbers using the conventions of a locale.
type Formatter struct {
	printer *message.Printer
}

// New returns a Formatter for the BCP 47 tag, falling back to English.
func New(tag string) *Formatter {
	lang, err := language.Parse(tag)
	if err != nil {
		lang = language.English
	}
	return &Formatter{printer: message.NewPrinter(lang)}
}

// Number formats n with locale thousands separators.
func (f *Formatter) Number(n uint64) string {
	return f.printer.Sprintf("%d", n)
}

// Percent formats p with two decimals and a percent sign. Values are
// truncated so an unfinished epoch never reads 100%.
func (f *Formatter) Percent(p float64) string {
	return f.printer.Sprintf("%.2f%%", math.Floor(p*100)/100)
}

// Reward formats a block reward in BTC. Values of at least one keep up to
// three decimals, smaller values up to eight; trailing zeros are trimmed.
func Reward(reward float64) string {
	if reward >= 1 {
		if reward == math.Trunc(reward) {
			return strconv.FormatFloat(reward, 'f', -1, 64)
		}
		return trimZeros(strconv.FormatFloat(reward, 'f', 3, 64))
	}
	return trimZeros(strconv.FormatFloat(reward, 'f', 8, 64))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}

// Date formats t in DateLayout.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// Ordinal returns the English ordinal suffix of n.
func Ordinal(n uint64) string {
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// PadZero left pads n with zeros to two digits.
func PadZero(n int64) string {
	return fmt.Sprintf("%02d", n)
}
