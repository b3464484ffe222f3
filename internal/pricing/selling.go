package pricing

import "github.com/shopspring/decimal"

// salePrice applies the markup. Supply and export deals mark up the fully
// loaded cost; transit deals do not bear the internal cost structure and
// mark up the original purchase value instead.
func salePrice(saleType SaleType, cogs, purchaseValue, markupPct decimal.Decimal) decimal.Decimal {
	base := cogs
	if saleType.IsTransit() {
		base = purchaseValue
	}
	return base.Mul(one.Add(markupPct.Div(hundred)))
}

// vatAmounts computes sales VAT and the net position after deducting import
// VAT. Exports are zero-rated. A negative net is a genuine refund position:
// it is flagged for review, never clamped.
func vatAmounts(saleType SaleType, region SellerRegion, price, importVAT decimal.Decimal) (salesVAT, netVAT decimal.Decimal, refund bool) {
	if saleType != SaleTypeExport {
		salesVAT = price.Mul(DestinationVATRate(region))
	}
	netVAT = salesVAT.Sub(importVAT)
	return salesVAT, netVAT, netVAT.IsNegative()
}

// transitCommission pays the intermediary a share of the resale margin on
// transit deals. Other sale types carry no commission, and a loss-making
// line earns none.
func transitCommission(saleType SaleType, commissionPct, price, purchaseValue decimal.Decimal) decimal.Decimal {
	if !saleType.IsTransit() {
		return decimal.Zero
	}
	margin := price.Sub(purchaseValue)
	if margin.IsNegative() {
		return decimal.Zero
	}
	return margin.Mul(commissionPct.Div(hundred))
}
