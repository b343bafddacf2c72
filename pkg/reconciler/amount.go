package reconciler

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

const amountChars = "-0123456789.,"

// parseLocalizedAmount turns a metadata value like "1.234,56 €" into a
// decimal, honoring the locale's separator convention. Everything that
// is not a digit, sign or separator is dropped first.
func parseLocalizedAmount(raw, locale string) (decimal.Decimal, error) {
	var sb strings.Builder
	for _, r := range raw {
		if strings.ContainsRune(amountChars, r) {
			sb.WriteRune(r)
		}
	}

	filtered := sb.String()
	if filtered == "" {
		return decimal.Decimal{}, errors.Newf("no amount found in %q", raw)
	}

	if usesDecimalComma(locale) {
		filtered = strings.ReplaceAll(filtered, ".", "")
		filtered = strings.ReplaceAll(filtered, ",", ".")
	} else {
		filtered = strings.ReplaceAll(filtered, ",", "")
	}

	amount, err := decimal.NewFromString(filtered)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "failed to parse amount %q", raw)
	}

	return amount, nil
}

func usesDecimalComma(locale string) bool {
	lang := strings.ToLower(strings.SplitN(locale, "_", 2)[0])

	switch lang {
	case "de", "fr", "es", "it", "nl", "pt", "fi", "sv", "da", "nb", "no", "pl", "cs", "tr", "ru":
		return true
	default:
		return false
	}
}
