package pricing

import "github.com/shopspring/decimal"

// PaymentStage is one row of the supplier payment schedule presented with
// the quote.
type PaymentStage struct {
	Percent      decimal.Decimal
	DueAfterDays int
	Amount       decimal.Decimal
}

// supplierPayment aggregates everything owed around the supplier leg: the
// purchase total plus first-leg transport, grossed up by the financing
// agent's commission, plus all border charges. Turkish sellers settle
// suppliers directly and exports never route through the agent, so the
// commission drops to zero on those branches.
func supplierPayment(region SellerRegion, saleType SaleType, admin AdminSettings, totalPurchase, totalFirstLeg, totalDuty, totalExcise, totalImportVAT decimal.Decimal) (amount, commissionPct decimal.Decimal) {
	commissionPct = admin.FinancingAgentCommissionPct
	if region == RegionTR || saleType == SaleTypeExport {
		commissionPct = decimal.Zero
	}
	financed := totalPurchase.Add(totalFirstLeg).Mul(one.Add(commissionPct.Div(hundred)))
	amount = financed.Add(totalDuty).Add(totalExcise).Add(totalImportVAT)
	return amount, commissionPct
}

// paymentSchedule prices each advance stage against the supplier payment
// amount. The unscheduled remainder, if any, is due at settlement.
func paymentSchedule(amount decimal.Decimal, stages []AdvanceStage, settlementDays int) []PaymentStage {
	schedule := make([]PaymentStage, 0, len(stages)+1)
	scheduled := decimal.Zero
	for _, stage := range stages {
		schedule = append(schedule, PaymentStage{
			Percent:      stage.Percent,
			DueAfterDays: stage.AfterDays,
			Amount:       amount.Mul(stage.Percent.Div(hundred)),
		})
		scheduled = scheduled.Add(stage.Percent)
	}
	remainder := hundred.Sub(scheduled)
	if remainder.IsPositive() {
		schedule = append(schedule, PaymentStage{
			Percent:      remainder,
			DueAfterDays: settlementDays,
			Amount:       amount.Mul(remainder.Div(hundred)),
		})
	}
	return schedule
}

// revenueEstimate sizes the expected proceeds at markup. It exists purely to
// scale financing exposure and fees; the final sale prices come later from
// the loaded cost.
func revenueEstimate(purchases []PurchasePrice, markups []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for i, pp := range purchases {
		total = total.Add(pp.Value.Mul(one.Add(markups[i].Div(hundred))))
	}
	return total
}

// financingCost accrues simple interest on the outstanding supplier payment
// balance: full balance from contract signing until the first client
// advance, the reduced balance between subsequent stages, and the remainder
// until the settlement horizon. Simple, not compound - the legacy model
// accrues per-day on the nominal balance.
func financingCost(amount decimal.Decimal, stages []AdvanceStage, horizonDays int, admin AdminSettings) (interest, forexReserve decimal.Decimal) {
	daily := admin.DailyRate()
	balance := amount
	interest = decimal.Zero
	day := 0
	for _, stage := range stages {
		if stage.AfterDays > day {
			span := decimal.NewFromInt(int64(stage.AfterDays - day))
			interest = interest.Add(balance.Mul(daily).Mul(span))
			day = stage.AfterDays
		}
		balance = balance.Sub(amount.Mul(stage.Percent.Div(hundred)))
		if balance.IsNegative() {
			balance = decimal.Zero
		}
	}
	if horizonDays > day {
		span := decimal.NewFromInt(int64(horizonDays - day))
		interest = interest.Add(balance.Mul(daily).Mul(span))
	}
	forexReserve = amount.Mul(admin.ForexRiskReservePct.Div(hundred))
	return interest, forexReserve
}

// creditInterest finances the receivable gap: the share of revenue the
// client has not advanced is effectively lent to them for the fixed payment
// term after delivery.
func creditInterest(revenue, advanceTotalPct decimal.Decimal, admin AdminSettings) decimal.Decimal {
	outstanding := revenue.Mul(one.Sub(advanceTotalPct.Div(hundred)))
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	term := decimal.NewFromInt(int64(admin.FixedPaymentTermDays))
	return outstanding.Mul(admin.DailyRate()).Mul(term)
}

// quoteOverheads prices the delivery manager fee and the utilization fee
// from the revenue estimate. Both are quote-level and reach products through
// the distribution share.
func quoteOverheads(d *QuoteDefaults, revenue decimal.Decimal) decimal.Decimal {
	overheads := revenue.Mul(d.UtilizationFeePct.Div(hundred))
	switch d.DeliveryManagerFeeType {
	case FeeTypePercent:
		overheads = overheads.Add(revenue.Mul(d.DeliveryManagerFeeValue.Div(hundred)))
	case FeeTypeFixed:
		overheads = overheads.Add(d.DeliveryManagerFeeValue)
	}
	return overheads
}
