package pricing

import "github.com/shopspring/decimal"

// distributionShares computes each product's proportional share of the total
// purchase value. The shares are the only mechanism by which quote-level
// costs reach individual products, so they sum to one by construction.
func distributionShares(values []decimal.Decimal) ([]decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	if total.IsZero() {
		return nil, ErrDegenerateQuote
	}
	shares := make([]decimal.Decimal, len(values))
	for i, v := range values {
		shares[i] = v.Div(total)
	}
	return shares, nil
}
