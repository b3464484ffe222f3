package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 36.5% annual is exactly 0.1% per day, which keeps the expected interest
// readable by hand.
func interestAdmin() AdminSettings {
	return AdminSettings{
		AnnualInterestRatePct: dec("36.5"),
		ForexRiskReservePct:   dec("5"),
		FixedPaymentTermDays:  14,
	}
}

func TestDailyRate(t *testing.T) {
	assert.True(t, interestAdmin().DailyRate().Equal(dec("0.001")))
}

func TestFinancingCostTwoStage(t *testing.T) {
	amount := dec("1000")
	stages := []AdvanceStage{{Percent: dec("30"), AfterDays: 10}}

	interest, reserve := financingCost(amount, stages, 30, interestAdmin())

	// 1000 * 0.001 * 10 on the full balance, then 700 * 0.001 * 20.
	assert.True(t, interest.Equal(dec("24")), "got %s", interest)
	assert.True(t, reserve.Equal(dec("50")), "got %s", reserve)
}

func TestFinancingCostNoAdvances(t *testing.T) {
	interest, _ := financingCost(dec("1000"), nil, 30, interestAdmin())
	assert.True(t, interest.Equal(dec("30")), "got %s", interest)
}

func TestFinancingCostFullAdvanceStopsAccrual(t *testing.T) {
	stages := []AdvanceStage{{Percent: dec("100"), AfterDays: 0}}
	interest, _ := financingCost(dec("1000"), stages, 45, interestAdmin())
	assert.True(t, interest.IsZero(), "got %s", interest)
}

func TestCreditInterest(t *testing.T) {
	got := creditInterest(dec("2000"), dec("30"), interestAdmin())
	// 70% of 2000 outstanding for 14 days at 0.1%/day.
	assert.True(t, got.Equal(dec("19.6")), "got %s", got)
}

func TestSupplierPaymentCommissionBranches(t *testing.T) {
	admin := AdminSettings{FinancingAgentCommissionPct: dec("10")}
	purchase, firstLeg := dec("100"), dec("10")
	duty, excise, vat := dec("5"), dec("1"), dec("2")

	amount, pct := supplierPayment(RegionRU, SaleTypeSupply, admin, purchase, firstLeg, duty, excise, vat)
	assert.True(t, pct.Equal(dec("10")))
	assert.True(t, amount.Equal(dec("129")), "got %s", amount)

	_, pct = supplierPayment(RegionTR, SaleTypeSupply, admin, purchase, firstLeg, duty, excise, vat)
	assert.True(t, pct.IsZero(), "turkish sellers settle without the agent")

	_, pct = supplierPayment(RegionRU, SaleTypeExport, admin, purchase, firstLeg, duty, excise, vat)
	assert.True(t, pct.IsZero(), "exports never route through the agent")
}

func TestPaymentScheduleAddsRemainderStage(t *testing.T) {
	stages := []AdvanceStage{
		{Percent: dec("30"), AfterDays: 0},
		{Percent: dec("40"), AfterDays: 20},
	}

	schedule := paymentSchedule(dec("1000"), stages, 45)
	require.Len(t, schedule, 3)

	assert.True(t, schedule[0].Amount.Equal(dec("300")))
	assert.True(t, schedule[1].Amount.Equal(dec("400")))
	assert.True(t, schedule[2].Percent.Equal(dec("30")))
	assert.True(t, schedule[2].Amount.Equal(dec("300")))
	assert.Equal(t, 45, schedule[2].DueAfterDays)

	total := decimal.Zero
	for _, stage := range schedule {
		total = total.Add(stage.Amount)
	}
	assert.True(t, total.Equal(dec("1000")))
}

func TestRevenueEstimate(t *testing.T) {
	purchases := []PurchasePrice{{Value: dec("100")}, {Value: dec("200")}}
	markups := []decimal.Decimal{dec("10"), dec("20")}

	got := revenueEstimate(purchases, markups)
	assert.True(t, got.Equal(dec("350")), "got %s", got)
}

func TestQuoteOverheads(t *testing.T) {
	d := testDefaults()
	d.UtilizationFeePct = dec("1")
	d.DeliveryManagerFeeType = FeeTypePercent
	d.DeliveryManagerFeeValue = dec("2")
	assert.True(t, quoteOverheads(&d, dec("1000")).Equal(dec("30")))

	d.DeliveryManagerFeeType = FeeTypeFixed
	d.DeliveryManagerFeeValue = dec("55")
	assert.True(t, quoteOverheads(&d, dec("1000")).Equal(dec("65")))
}
