package pricing

// SaleType selects which cost bases and fees apply to a quotation.
type SaleType string

const (
	SaleTypeSupply           SaleType = "supply"
	SaleTypeTransit          SaleType = "transit"
	SaleTypeFinancialTransit SaleType = "financial_transit"
	SaleTypeExport           SaleType = "export"
)

// Valid reports whether the sale type is a known variant.
func (s SaleType) Valid() bool {
	switch s {
	case SaleTypeSupply, SaleTypeTransit, SaleTypeFinancialTransit, SaleTypeExport:
		return true
	}
	return false
}

// IsTransit reports whether the deal is priced off the purchase value
// instead of the fully loaded cost.
func (s SaleType) IsTransit() bool {
	return s == SaleTypeTransit || s == SaleTypeFinancialTransit
}

// Incoterms determines which party bears customs clearance at destination.
type Incoterms string

const (
	IncotermsEXW Incoterms = "EXW"
	IncotermsFCA Incoterms = "FCA"
	IncotermsFOB Incoterms = "FOB"
	IncotermsCIF Incoterms = "CIF"
	IncotermsCIP Incoterms = "CIP"
	IncotermsDAP Incoterms = "DAP"
	IncotermsDDP Incoterms = "DDP"
)

// Valid reports whether the incoterms code is supported.
func (i Incoterms) Valid() bool {
	switch i {
	case IncotermsEXW, IncotermsFCA, IncotermsFOB, IncotermsCIF, IncotermsCIP, IncotermsDAP, IncotermsDDP:
		return true
	}
	return false
}

// BuyerClearsImport reports whether the customer handles import clearance,
// in which case duty, excise and import VAT never enter the quote.
func (i Incoterms) BuyerClearsImport() bool {
	return i == IncotermsEXW || i == IncotermsFCA
}

// SellerRegion identifies which legal entity group issues the quote.
type SellerRegion string

const (
	RegionRU SellerRegion = "RU"
	RegionTR SellerRegion = "TR"
	RegionCN SellerRegion = "CN"
)

// SellerCompany is a selling legal entity registered in the group.
type SellerCompany string

const (
	SellerMeridianRU SellerCompany = "ООО Меридиан Трейд"
	SellerMeridianTR SellerCompany = "Meridian Dış Ticaret A.Ş."
	SellerMeridianCN SellerCompany = "Meridian Trading (Shanghai) Co."
)

// Country is a supplier country as named in the legacy workbook.
type Country string

const (
	CountryTurkey     Country = "Турция"
	CountryChina      Country = "Китай"
	CountryRussia     Country = "Россия"
	CountryKazakhstan Country = "Казахстан"
	CountryGermany    Country = "Германия"
	CountryItaly      Country = "Италия"
	CountryUAE        Country = "ОАЭ"
)

// FeeType distinguishes how the delivery manager fee is expressed.
type FeeType string

const (
	FeeTypePercent FeeType = "percent"
	FeeTypeFixed   FeeType = "fixed"
)

// Valid reports whether the fee type is known. The empty value means no fee.
func (f FeeType) Valid() bool {
	return f == "" || f == FeeTypePercent || f == FeeTypeFixed
}
