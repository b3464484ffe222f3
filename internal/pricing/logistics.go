package pricing

import "github.com/shopspring/decimal"

// LogisticsCosts is the per-product slice of delivery and brokerage spend.
// SupplierToHub is the first leg; it later feeds the customs base and the
// supplier payment amount.
type LogisticsCosts struct {
	SupplierToHub   decimal.Decimal
	HubToCustoms    decimal.Decimal
	CustomsToClient decimal.Decimal
	Brokerage       decimal.Decimal
	Handling        decimal.Decimal
	Total           decimal.Decimal
}

// logisticsCosts assigns each of the five cost fields: a per-product
// override is taken as the product's own amount, otherwise the quote-level
// total is spread by distribution share. An absent field costs nothing.
func logisticsCosts(p *Product, d *QuoteDefaults, share decimal.Decimal) LogisticsCosts {
	alloc := func(override, quoteTotal *decimal.Decimal) decimal.Decimal {
		if override != nil {
			return *override
		}
		if quoteTotal != nil {
			return quoteTotal.Mul(share)
		}
		return decimal.Zero
	}

	lc := LogisticsCosts{
		SupplierToHub:   alloc(p.SupplierToHubCost, d.SupplierToHubCost),
		HubToCustoms:    alloc(p.HubToCustomsCost, d.HubToCustomsCost),
		CustomsToClient: alloc(p.CustomsToClientCost, d.CustomsToClientCost),
		Brokerage:       alloc(p.CustomsBrokerageFee, d.CustomsBrokerageFee),
		Handling:        alloc(p.WarehouseHandlingFee, d.WarehouseHandlingFee),
	}
	lc.Total = lc.SupplierToHub.Add(lc.HubToCustoms).Add(lc.CustomsToClient).Add(lc.Brokerage).Add(lc.Handling)
	return lc
}
