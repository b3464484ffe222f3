package pricing

import "github.com/shopspring/decimal"

// Validate checks every range and enum constraint on the inputs before any
// phase runs. It returns all violations it finds; callers use it as an
// advisory pre-flight, and Calculate re-runs it as the actual gate.
func Validate(products []Product, defaults *QuoteDefaults) []error {
	var errs []error

	if !defaults.SaleType.Valid() {
		errs = append(errs, &UnknownLookupKeyError{Kind: "sale_type", Key: string(defaults.SaleType)})
	}
	if !defaults.Incoterms.Valid() {
		errs = append(errs, &UnknownLookupKeyError{Kind: "incoterms", Key: string(defaults.Incoterms)})
	}
	if _, err := RegionForSeller(defaults.SellerCompany); err != nil {
		errs = append(errs, err)
	}
	if !defaults.DeliveryManagerFeeType.Valid() {
		errs = append(errs, &UnknownLookupKeyError{Kind: "delivery_manager_fee_type", Key: string(defaults.DeliveryManagerFeeType)})
	}

	errs = append(errs, validateDefaults(defaults)...)
	errs = append(errs, validateAdvanceSchedule(defaults.AdvanceStages)...)

	for i := range products {
		errs = append(errs, validateProduct(&products[i], i)...)
	}
	return errs
}

func validateDefaults(d *QuoteDefaults) []error {
	var errs []error
	errs = appendPctCheck(errs, "discount_pct", -1, d.DiscountPct)
	errs = appendPctCheck(errs, "import_tariff_pct", -1, d.ImportTariffPct)
	errs = appendPctCheck(errs, "excise_rate_pct", -1, d.ExciseRatePct)
	errs = appendPctCheck(errs, "markup_pct", -1, d.MarkupPct)
	errs = appendPctCheck(errs, "supplier_advance_pct", -1, d.SupplierAdvancePct)
	errs = appendPctCheck(errs, "utilization_fee_pct", -1, &d.UtilizationFeePct)
	errs = appendPctCheck(errs, "transit_commission_pct", -1, &d.TransitCommissionPct)
	if d.DeliveryManagerFeeValue.IsNegative() {
		errs = append(errs, &InvalidRangeError{Field: "delivery_manager_fee_value", ProductIndex: -1, Reason: "must not be negative"})
	} else if d.DeliveryManagerFeeType == FeeTypePercent && d.DeliveryManagerFeeValue.GreaterThan(hundred) {
		errs = append(errs, &InvalidRangeError{Field: "delivery_manager_fee_value", ProductIndex: -1, Reason: "percentage above 100"})
	}
	if d.ExchangeRate != nil && !d.ExchangeRate.IsPositive() {
		errs = append(errs, &InvalidRangeError{Field: "exchange_rate", ProductIndex: -1, Reason: "must be positive"})
	}
	if d.DeliveryDays != nil && *d.DeliveryDays < 0 {
		errs = append(errs, &InvalidRangeError{Field: "delivery_days", ProductIndex: -1, Reason: "must not be negative"})
	}
	errs = appendCostCheck(errs, "supplier_to_hub_cost", -1, d.SupplierToHubCost)
	errs = appendCostCheck(errs, "hub_to_customs_cost", -1, d.HubToCustomsCost)
	errs = appendCostCheck(errs, "customs_to_client_cost", -1, d.CustomsToClientCost)
	errs = appendCostCheck(errs, "customs_brokerage_fee", -1, d.CustomsBrokerageFee)
	errs = appendCostCheck(errs, "warehouse_handling_fee", -1, d.WarehouseHandlingFee)
	return errs
}

func validateAdvanceSchedule(stages []AdvanceStage) []error {
	var errs []error
	if len(stages) > MaxAdvanceStages {
		errs = append(errs, &InvalidRangeError{Field: "advance_stages", ProductIndex: -1, Reason: "more than 5 stages"})
	}
	total := decimal.Zero
	prevDay := 0
	for i, stage := range stages {
		if stage.Percent.IsNegative() || stage.Percent.GreaterThan(hundred) {
			errs = append(errs, &InvalidRangeError{Field: "advance_stages.percent", ProductIndex: -1, Reason: "stage percentage outside [0,100]"})
		}
		if stage.AfterDays < 0 {
			errs = append(errs, &InvalidRangeError{Field: "advance_stages.after_days", ProductIndex: -1, Reason: "negative day offset"})
		}
		if i > 0 && stage.AfterDays < prevDay {
			errs = append(errs, &InvalidRangeError{Field: "advance_stages.after_days", ProductIndex: -1, Reason: "day offsets must not decrease"})
		}
		prevDay = stage.AfterDays
		total = total.Add(stage.Percent)
	}
	if total.GreaterThan(hundred) {
		errs = append(errs, &InvalidRangeError{Field: "advance_stages", ProductIndex: -1, Reason: "stage percentages sum above 100"})
	}
	return errs
}

func validateProduct(p *Product, index int) []error {
	var errs []error
	if !p.Quantity.IsPositive() {
		errs = append(errs, &InvalidRangeError{Field: "quantity", ProductIndex: index, Reason: "must be positive"})
	}
	if p.BasePriceWithVAT.IsNegative() {
		errs = append(errs, &InvalidRangeError{Field: "base_price_with_vat", ProductIndex: index, Reason: "must not be negative"})
	}
	if p.WeightKg.IsNegative() {
		errs = append(errs, &InvalidRangeError{Field: "weight_kg", ProductIndex: index, Reason: "must not be negative"})
	}
	errs = appendPctCheck(errs, "discount_pct", index, p.DiscountPct)
	errs = appendPctCheck(errs, "import_tariff_pct", index, p.ImportTariffPct)
	errs = appendPctCheck(errs, "excise_rate_pct", index, p.ExciseRatePct)
	errs = appendPctCheck(errs, "markup_pct", index, p.MarkupPct)
	errs = appendPctCheck(errs, "supplier_advance_pct", index, p.SupplierAdvancePct)
	if p.ExchangeRate != nil && !p.ExchangeRate.IsPositive() {
		errs = append(errs, &InvalidRangeError{Field: "exchange_rate", ProductIndex: index, Reason: "must be positive"})
	}
	if p.DeliveryDays != nil && *p.DeliveryDays < 0 {
		errs = append(errs, &InvalidRangeError{Field: "delivery_days", ProductIndex: index, Reason: "must not be negative"})
	}
	errs = appendCostCheck(errs, "supplier_to_hub_cost", index, p.SupplierToHubCost)
	errs = appendCostCheck(errs, "hub_to_customs_cost", index, p.HubToCustomsCost)
	errs = appendCostCheck(errs, "customs_to_client_cost", index, p.CustomsToClientCost)
	errs = appendCostCheck(errs, "customs_brokerage_fee", index, p.CustomsBrokerageFee)
	errs = appendCostCheck(errs, "warehouse_handling_fee", index, p.WarehouseHandlingFee)
	return errs
}

func validateAdmin(a AdminSettings) []error {
	var errs []error
	if a.ForexRiskReservePct.IsNegative() || a.ForexRiskReservePct.GreaterThan(hundred) {
		errs = append(errs, &InvalidRangeError{Field: "forex_risk_reserve_pct", ProductIndex: -1, Reason: "outside [0,100]"})
	}
	if a.FinancingAgentCommissionPct.IsNegative() || a.FinancingAgentCommissionPct.GreaterThan(hundred) {
		errs = append(errs, &InvalidRangeError{Field: "financing_agent_commission_pct", ProductIndex: -1, Reason: "outside [0,100]"})
	}
	if a.AnnualInterestRatePct.IsNegative() {
		errs = append(errs, &InvalidRangeError{Field: "annual_interest_rate_pct", ProductIndex: -1, Reason: "must not be negative"})
	}
	if a.FixedPaymentTermDays < 0 {
		errs = append(errs, &InvalidRangeError{Field: "fixed_payment_term_days", ProductIndex: -1, Reason: "must not be negative"})
	}
	return errs
}

func appendPctCheck(errs []error, field string, index int, v *decimal.Decimal) []error {
	if v == nil {
		return errs
	}
	if v.IsNegative() || v.GreaterThan(hundred) {
		errs = append(errs, &InvalidRangeError{Field: field, ProductIndex: index, Reason: "outside [0,100]"})
	}
	return errs
}

func appendCostCheck(errs []error, field string, index int, v *decimal.Decimal) []error {
	if v != nil && v.IsNegative() {
		errs = append(errs, &InvalidRangeError{Field: field, ProductIndex: index, Reason: "must not be negative"})
	}
	return errs
}
