package ownership

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

var one = decimal.NewFromInt(1)

// ParseQuota reads a share written either as a fraction "n/d" with
// 0 < n <= d, or as a decimal in (0, 1]. A comma is accepted as decimal
// separator.
func ParseQuota(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, catasto.DataError("quota is empty")
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := decimal.NewFromString(strings.TrimSpace(num))
		if err != nil || !n.IsInteger() {
			return decimal.Zero, catasto.DataError("quota %q: invalid numerator", raw)
		}

		d, err := decimal.NewFromString(strings.TrimSpace(den))
		if err != nil || !d.IsInteger() {
			return decimal.Zero, catasto.DataError("quota %q: invalid denominator", raw)
		}

		if !n.IsPositive() || !d.IsPositive() || n.GreaterThan(d) {
			return decimal.Zero, catasto.DataError("quota %q must satisfy 0 < n <= d", raw)
		}

		return n.DivRound(d, 16), nil
	}

	v, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, catasto.DataError("quota %q is neither a fraction nor a decimal", raw)
	}

	if !v.IsPositive() || v.GreaterThan(one) {
		return decimal.Zero, catasto.DataError("quota %q must lie in (0, 1]", raw)
	}

	return v, nil
}

// normalizeQuota validates an optional quota. Blank input means exclusive
// ownership and is stored as nil.
func normalizeQuota(q *string) (*string, error) {
	q = catasto.OptionalString(q)
	if q == nil {
		return nil, nil
	}

	if _, err := ParseQuota(*q); err != nil {
		return nil, err
	}

	return q, nil
}

// SumQuote adds up the parseable quotas in legami. Unparseable and missing
// quotas are skipped.
func SumQuote(legami []*catasto.PartitaPossessore) decimal.Decimal {
	total := decimal.Zero

	for _, l := range legami {
		if l.Quota == nil {
			continue
		}

		if v, err := ParseQuota(*l.Quota); err == nil {
			total = total.Add(v)
		}
	}

	return total
}

// ExceedsWhole reports whether total is more than one whole share, with
// tolerance for repeating fractions such as three thirds.
func ExceedsWhole(total decimal.Decimal) bool {
	return total.Sub(one).GreaterThan(decimal.New(1, -9))
}
