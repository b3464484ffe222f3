package pricing

import "github.com/shopspring/decimal"

// supplierVATRates holds the VAT fraction included in supplier list prices,
// keyed by country exactly as spelled in the legacy workbook.
var supplierVATRates = map[Country]decimal.Decimal{
	CountryTurkey:     decimal.NewFromFloat(0.20),
	CountryChina:      decimal.NewFromFloat(0.13),
	CountryRussia:     decimal.NewFromFloat(0.20),
	CountryKazakhstan: decimal.NewFromFloat(0.12),
	CountryGermany:    decimal.NewFromFloat(0.19),
	CountryItaly:      decimal.NewFromFloat(0.22),
	CountryUAE:        decimal.NewFromFloat(0.05),
}

// SupplierVATRate returns the VAT fraction to strip from a supplier price.
// Countries outside the table quote VAT-exclusive prices, so the rate is zero.
func SupplierVATRate(c Country) decimal.Decimal {
	if rate, ok := supplierVATRates[c]; ok {
		return rate
	}
	return decimal.Zero
}

var sellerRegions = map[SellerCompany]SellerRegion{
	SellerMeridianRU: RegionRU,
	SellerMeridianTR: RegionTR,
	SellerMeridianCN: RegionCN,
}

// RegionForSeller maps a selling entity to its region. Entities outside the
// registry have no pricing rules and must be rejected, not guessed at.
func RegionForSeller(c SellerCompany) (SellerRegion, error) {
	region, ok := sellerRegions[c]
	if !ok {
		return "", &UnknownLookupKeyError{Kind: "seller_company", Key: string(c)}
	}
	return region, nil
}

var destinationVATRates = map[SellerRegion]decimal.Decimal{
	RegionRU: decimal.NewFromFloat(0.20),
	RegionTR: decimal.NewFromFloat(0.20),
	RegionCN: decimal.NewFromFloat(0.13),
}

// DestinationVATRate returns the VAT fraction charged in the seller's market.
func DestinationVATRate(r SellerRegion) decimal.Decimal {
	return destinationVATRates[r]
}

// internalMarkups holds the route-dependent internal transfer margin, percent.
var internalMarkups = map[SellerRegion]decimal.Decimal{
	RegionRU: decimal.NewFromInt(3),
	RegionTR: decimal.NewFromInt(5),
	RegionCN: decimal.NewFromInt(4),
}

// InternalMarkupPct returns the transfer margin applied when goods move onto
// the selling entity's books.
func InternalMarkupPct(r SellerRegion) decimal.Decimal {
	return internalMarkups[r]
}
