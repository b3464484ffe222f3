package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findRangeError(t *testing.T, errs []error, field string) *InvalidRangeError {
	t.Helper()
	for _, err := range errs {
		var rangeErr *InvalidRangeError
		if errors.As(err, &rangeErr) && rangeErr.Field == field {
			return rangeErr
		}
	}
	t.Fatalf("no range error for field %q in %v", field, errs)
	return nil
}

func TestValidateAcceptsMinimalQuote(t *testing.T) {
	defaults := testDefaults()
	defaults.SupplierCountry = countryPtr(CountryTurkey)
	products := []Product{{SKU: "A", Name: "A", BasePriceWithVAT: dec("10"), Quantity: dec("1")}}

	assert.Empty(t, Validate(products, &defaults))
}

func TestValidateProductRanges(t *testing.T) {
	defaults := testDefaults()
	products := []Product{{
		SKU:              "A",
		Name:             "A",
		BasePriceWithVAT: dec("-5"),
		Quantity:         dec("0"),
		DiscountPct:      decPtr("150"),
		ExchangeRate:     decPtr("0"),
	}}

	errs := Validate(products, &defaults)
	require.NotEmpty(t, errs)

	assert.Equal(t, 0, findRangeError(t, errs, "quantity").ProductIndex)
	findRangeError(t, errs, "base_price_with_vat")
	findRangeError(t, errs, "discount_pct")
	findRangeError(t, errs, "exchange_rate")
}

func TestValidateAdvanceSchedule(t *testing.T) {
	tests := []struct {
		name   string
		stages []AdvanceStage
		field  string
	}{
		{
			name: "sum above 100",
			stages: []AdvanceStage{
				{Percent: dec("60"), AfterDays: 0},
				{Percent: dec("60"), AfterDays: 10},
			},
			field: "advance_stages",
		},
		{
			name: "too many stages",
			stages: []AdvanceStage{
				{Percent: dec("10")}, {Percent: dec("10"), AfterDays: 1},
				{Percent: dec("10"), AfterDays: 2}, {Percent: dec("10"), AfterDays: 3},
				{Percent: dec("10"), AfterDays: 4}, {Percent: dec("10"), AfterDays: 5},
			},
			field: "advance_stages",
		},
		{
			name: "decreasing offsets",
			stages: []AdvanceStage{
				{Percent: dec("20"), AfterDays: 15},
				{Percent: dec("20"), AfterDays: 5},
			},
			field: "advance_stages.after_days",
		},
		{
			name:   "stage percent out of range",
			stages: []AdvanceStage{{Percent: dec("130"), AfterDays: 0}},
			field:  "advance_stages.percent",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defaults := testDefaults()
			defaults.SupplierCountry = countryPtr(CountryTurkey)
			defaults.AdvanceStages = tc.stages
			errs := Validate(nil, &defaults)
			findRangeError(t, errs, tc.field)
		})
	}
}

func TestValidateUnknownEnums(t *testing.T) {
	defaults := testDefaults()
	defaults.SaleType = SaleType("barter")
	defaults.Incoterms = Incoterms("XYZ")
	defaults.SellerCompany = SellerCompany("ООО Ромашка")

	errs := Validate(nil, &defaults)
	require.NotEmpty(t, errs)

	kinds := map[string]bool{}
	for _, err := range errs {
		var unknown *UnknownLookupKeyError
		if errors.As(err, &unknown) {
			kinds[unknown.Kind] = true
		}
	}
	assert.True(t, kinds["sale_type"])
	assert.True(t, kinds["incoterms"])
	assert.True(t, kinds["seller_company"])
}

func TestValidateAdminSettings(t *testing.T) {
	admin := AdminSettings{
		ForexRiskReservePct:         dec("120"),
		FinancingAgentCommissionPct: dec("-1"),
		FixedPaymentTermDays:        -5,
	}

	errs := validateAdmin(admin)
	findRangeError(t, errs, "forex_risk_reserve_pct")
	findRangeError(t, errs, "financing_agent_commission_pct")
	findRangeError(t, errs, "fixed_payment_term_days")
}
