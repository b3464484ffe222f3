package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductBreakdown holds every intermediate and final value computed for one
// product, in pipeline order, so a reviewer can trace each figure back to
// the workbook column it mirrors.
type ProductBreakdown struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Quantity decimal.Decimal `json:"quantity"`

	SupplierCountry Country         `json:"supplier_country"`
	SupplierVATRate decimal.Decimal `json:"supplier_vat_rate"`
	UnitPriceExVAT  decimal.Decimal `json:"unit_price_ex_vat"`
	UnitPriceQuote  decimal.Decimal `json:"unit_price_quote"`
	PurchaseValue   decimal.Decimal `json:"purchase_value"`

	DistributionShare decimal.Decimal `json:"distribution_share"`

	Logistics LogisticsCosts `json:"logistics"`

	InternalPrice decimal.Decimal `json:"internal_price"`
	ImportDuty    decimal.Decimal `json:"import_duty"`
	ExciseTax     decimal.Decimal `json:"excise_tax"`
	ImportVAT     decimal.Decimal `json:"import_vat"`

	FinancingAllocated decimal.Decimal `json:"financing_allocated"`

	COGS     decimal.Decimal `json:"cogs"`
	UnitCOGS decimal.Decimal `json:"unit_cogs"`

	MarkupPct     decimal.Decimal `json:"markup_pct"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	UnitSalePrice decimal.Decimal `json:"unit_sale_price"`
	Margin        decimal.Decimal `json:"margin"`

	SalesVAT          decimal.Decimal `json:"sales_vat"`
	NetVAT            decimal.Decimal `json:"net_vat"`
	VATRefundPosition bool            `json:"vat_refund_position"`

	TransitCommission decimal.Decimal `json:"transit_commission"`
}

// QuoteTotals aggregates the quote-level phases and the column sums.
type QuoteTotals struct {
	PurchaseValue decimal.Decimal `json:"purchase_value"`
	Logistics     decimal.Decimal `json:"logistics"`
	ImportDuty    decimal.Decimal `json:"import_duty"`
	ExciseTax     decimal.Decimal `json:"excise_tax"`
	ImportVAT     decimal.Decimal `json:"import_vat"`

	SupplierPayment       decimal.Decimal `json:"supplier_payment"`
	AgentCommissionPct    decimal.Decimal `json:"agent_commission_pct"`
	PaymentSchedule       []PaymentStage  `json:"payment_schedule"`
	RevenueEstimate       decimal.Decimal `json:"revenue_estimate"`
	SupplierInterest      decimal.Decimal `json:"supplier_interest"`
	CreditInterest        decimal.Decimal `json:"credit_interest"`
	ForexReserve          decimal.Decimal `json:"forex_reserve"`
	Overheads             decimal.Decimal `json:"overheads"`
	FinancingTotal        decimal.Decimal `json:"financing_total"`
	SettlementHorizonDays int             `json:"settlement_horizon_days"`

	COGS              decimal.Decimal `json:"cogs"`
	Revenue           decimal.Decimal `json:"revenue"`
	Margin            decimal.Decimal `json:"margin"`
	SalesVAT          decimal.Decimal `json:"sales_vat"`
	NetVATPayable     decimal.Decimal `json:"net_vat_payable"`
	VATRefundPosition bool            `json:"vat_refund_position"`
	TransitCommission decimal.Decimal `json:"transit_commission"`
}

// CalculationResult is the full engine output: one breakdown per product in
// input order plus the quote aggregates. It is never mutated after
// Calculate returns.
type CalculationResult struct {
	ID       uuid.UUID          `json:"id"`
	Version  string             `json:"engine_version"`
	Currency string             `json:"currency"`
	SaleType SaleType           `json:"sale_type"`
	Region   SellerRegion       `json:"seller_region"`
	Products []ProductBreakdown `json:"products"`
	Totals   QuoteTotals        `json:"totals"`
}
