package pricing

import "github.com/shopspring/decimal"

// CustomsCharges covers the internal transfer price and everything owed at
// the destination border for one product.
type CustomsCharges struct {
	// InternalPrice is the purchase value marked up by the route-dependent
	// internal transfer margin.
	InternalPrice decimal.Decimal
	DutyBase      decimal.Decimal
	ImportDuty    decimal.Decimal
	ExciseTax     decimal.Decimal
	// ImportVAT is deductible against sales VAT later in the pipeline.
	ImportVAT decimal.Decimal
}

// customsCharges computes duty, excise and deductible import VAT. When the
// buyer clears import (EXW-group incoterms) or the deal is an export, the
// selling entity never touches destination customs and everything past the
// internal price stays zero. Whether the first logistics leg enters the
// bases is an admin-level decision kept in sync with the legacy workbook.
func customsCharges(r *Resolver, region SellerRegion, d *QuoteDefaults, admin AdminSettings, purchaseValue, firstLeg decimal.Decimal) (CustomsCharges, error) {
	internal := purchaseValue.Mul(one.Add(InternalMarkupPct(region).Div(hundred)))
	cc := CustomsCharges{InternalPrice: internal}

	if d.Incoterms.BuyerClearsImport() || d.SaleType == SaleTypeExport {
		return cc, nil
	}

	base := internal
	if admin.DutyBaseIncludesFirstLeg {
		base = base.Add(firstLeg)
	}
	cc.DutyBase = base

	tariff, err := r.ImportTariffPct()
	if err != nil {
		return CustomsCharges{}, err
	}
	cc.ImportDuty = base.Mul(tariff.Div(hundred))
	cc.ExciseTax = base.Mul(r.ExciseRatePct().Div(hundred))

	vatBase := base.Add(cc.ImportDuty).Add(cc.ExciseTax)
	cc.ImportVAT = vatBase.Mul(DestinationVATRate(region))
	return cc, nil
}
