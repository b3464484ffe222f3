package pricing

import "github.com/shopspring/decimal"

// PurchasePrice is the VAT-stripped, discounted, currency-converted cost of
// one product line.
type PurchasePrice struct {
	SupplierCountry Country
	SupplierVATRate decimal.Decimal
	// UnitPriceExVAT is per unit in the supplier currency, after the VAT
	// strip and supplier discount.
	UnitPriceExVAT decimal.Decimal
	// UnitPriceQuote is per unit in the quote currency.
	UnitPriceQuote decimal.Decimal
	// Value is the extended purchase value (unit price times quantity).
	Value decimal.Decimal
}

// purchasePrice strips the supplier country's VAT from the list price,
// applies the supplier discount and converts into the quote currency.
// Countries without a VAT table entry are treated as quoting VAT-exclusive
// prices already.
func purchasePrice(r *Resolver, p *Product) (PurchasePrice, error) {
	country, err := r.SupplierCountry()
	if err != nil {
		return PurchasePrice{}, err
	}
	vatRate := SupplierVATRate(country)
	exVAT := p.BasePriceWithVAT.Div(one.Add(vatRate))

	discount := r.DiscountPct()
	if !discount.IsZero() {
		exVAT = exVAT.Mul(one.Sub(discount.Div(hundred)))
	}

	rate, err := r.ExchangeRate()
	if err != nil {
		return PurchasePrice{}, err
	}
	unitQuote := exVAT.Mul(rate)

	return PurchasePrice{
		SupplierCountry: country,
		SupplierVATRate: vatRate,
		UnitPriceExVAT:  exVAT,
		UnitPriceQuote:  unitQuote,
		Value:           unitQuote.Mul(p.Quantity),
	}, nil
}
