package pricing

import "github.com/shopspring/decimal"

// Product is one quotation line item. Pointer fields override the matching
// quote-level default when set; nil falls through to QuoteDefaults.
type Product struct {
	SKU   string
	Brand string
	Name  string

	BasePriceWithVAT decimal.Decimal
	Quantity         decimal.Decimal
	WeightKg         decimal.Decimal

	Currency           *string
	SupplierCountry    *Country
	DiscountPct        *decimal.Decimal
	ExchangeRate       *decimal.Decimal
	CustomsCode        *string
	ImportTariffPct    *decimal.Decimal
	ExciseRatePct      *decimal.Decimal
	MarkupPct          *decimal.Decimal
	DeliveryDays       *int
	SupplierAdvancePct *decimal.Decimal

	SupplierToHubCost    *decimal.Decimal
	HubToCustomsCost     *decimal.Decimal
	CustomsToClientCost  *decimal.Decimal
	CustomsBrokerageFee  *decimal.Decimal
	WarehouseHandlingFee *decimal.Decimal
}

// AdvanceStage is one step of the client advance payment schedule.
type AdvanceStage struct {
	Percent   decimal.Decimal
	AfterDays int
}

// MaxAdvanceStages caps the advance payment schedule length.
const MaxAdvanceStages = 5

// QuoteDefaults carries quote-wide commercial terms and the default value for
// every field a product may override. The five logistics cost defaults are
// quote totals spread across products by distribution share; a per-product
// override replaces the allocated amount outright.
type QuoteDefaults struct {
	SellerCompany SellerCompany
	SaleType      SaleType
	Incoterms     Incoterms
	Currency      string

	SupplierCountry    *Country
	DiscountPct        *decimal.Decimal
	ExchangeRate       *decimal.Decimal
	CustomsCode        *string
	ImportTariffPct    *decimal.Decimal
	ExciseRatePct      *decimal.Decimal
	MarkupPct          *decimal.Decimal
	DeliveryDays       *int
	SupplierAdvancePct *decimal.Decimal

	SupplierToHubCost    *decimal.Decimal
	HubToCustomsCost     *decimal.Decimal
	CustomsToClientCost  *decimal.Decimal
	CustomsBrokerageFee  *decimal.Decimal
	WarehouseHandlingFee *decimal.Decimal

	AdvanceStages []AdvanceStage

	DeliveryManagerFeeType  FeeType
	DeliveryManagerFeeValue decimal.Decimal
	UtilizationFeePct       decimal.Decimal
	TransitCommissionPct    decimal.Decimal
}

// AdvanceTotalPct sums the scheduled advance percentages.
func (d *QuoteDefaults) AdvanceTotalPct() decimal.Decimal {
	total := decimal.Zero
	for _, stage := range d.AdvanceStages {
		total = total.Add(stage.Percent)
	}
	return total
}

// AdminSettings are organization-wide constants, loaded by the caller and
// never editable per quote.
type AdminSettings struct {
	ForexRiskReservePct         decimal.Decimal
	FinancingAgentCommissionPct decimal.Decimal
	AnnualInterestRatePct       decimal.Decimal
	FixedPaymentTermDays        int

	// DutyBaseIncludesFirstLeg controls whether transport to the customs
	// border enters the duty and import VAT base (workbook revision Y16/AO16).
	DutyBaseIncludesFirstLeg bool
}

var daysPerYear = decimal.NewFromInt(365)

// DailyRate converts the annual loan rate to a simple daily rate fraction.
func (a AdminSettings) DailyRate() decimal.Decimal {
	return a.AnnualInterestRatePct.Div(hundred).Div(daysPerYear)
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)
