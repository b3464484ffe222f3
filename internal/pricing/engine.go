package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EngineVersion identifies the calculation rules in effect. Bump it whenever
// a phase formula or lookup table changes, so stored results stay auditable.
const EngineVersion = "1.0.0"

// Calculate runs the full quotation pipeline: value resolution, the
// distribution base, the per-product cost phases, the quote-level financing
// phases, and final pricing. Quote-level values are computed exactly once
// and fed into every product through its distribution share. Any failure
// aborts the whole calculation; there is no partial result.
func Calculate(products []Product, defaults QuoteDefaults, admin AdminSettings) (*CalculationResult, error) {
	if errs := Validate(products, &defaults); len(errs) > 0 {
		return nil, phaseErr(PhaseValidation, -1, errs[0])
	}
	if errs := validateAdmin(admin); len(errs) > 0 {
		return nil, phaseErr(PhaseValidation, -1, errs[0])
	}

	region, err := RegionForSeller(defaults.SellerCompany)
	if err != nil {
		return nil, phaseErr(PhaseValidation, -1, err)
	}

	n := len(products)
	resolvers := make([]*Resolver, n)
	for i := range products {
		resolvers[i] = NewResolver(&products[i], &defaults, i)
	}

	// Purchase prices, then the distribution base derived from them.
	purchases := make([]PurchasePrice, n)
	values := make([]decimal.Decimal, n)
	for i := range products {
		pp, err := purchasePrice(resolvers[i], &products[i])
		if err != nil {
			return nil, phaseErr(PhasePurchasePrice, i, err)
		}
		purchases[i] = pp
		values[i] = pp.Value
	}

	shares, err := distributionShares(values)
	if err != nil {
		return nil, phaseErr(PhaseDistribution, -1, err)
	}

	logistics := make([]LogisticsCosts, n)
	for i := range products {
		logistics[i] = logisticsCosts(&products[i], &defaults, shares[i])
	}

	customs := make([]CustomsCharges, n)
	for i := range products {
		cc, err := customsCharges(resolvers[i], region, &defaults, admin, purchases[i].Value, logistics[i].SupplierToHub)
		if err != nil {
			return nil, phaseErr(PhaseCustoms, i, err)
		}
		customs[i] = cc
	}

	totals := QuoteTotals{}
	totalFirstLeg := decimal.Zero
	for i := range products {
		totals.PurchaseValue = totals.PurchaseValue.Add(purchases[i].Value)
		totals.Logistics = totals.Logistics.Add(logistics[i].Total)
		totalFirstLeg = totalFirstLeg.Add(logistics[i].SupplierToHub)
		totals.ImportDuty = totals.ImportDuty.Add(customs[i].ImportDuty)
		totals.ExciseTax = totals.ExciseTax.Add(customs[i].ExciseTax)
		totals.ImportVAT = totals.ImportVAT.Add(customs[i].ImportVAT)
	}

	// Markups and delivery horizons are needed by the quote-level phases
	// before the per-product pricing loop runs.
	markups := make([]decimal.Decimal, n)
	horizon := 0
	for i := range products {
		m, err := resolvers[i].MarkupPct()
		if err != nil {
			return nil, phaseErr(PhaseRevenueEstimate, i, err)
		}
		markups[i] = m
		days, err := resolvers[i].DeliveryDays()
		if err != nil {
			return nil, phaseErr(PhaseFinancing, i, err)
		}
		if days > horizon {
			horizon = days
		}
	}

	totals.SupplierPayment, totals.AgentCommissionPct = supplierPayment(
		region, defaults.SaleType, admin,
		totals.PurchaseValue, totalFirstLeg, totals.ImportDuty, totals.ExciseTax, totals.ImportVAT,
	)
	totals.PaymentSchedule = paymentSchedule(totals.SupplierPayment, defaults.AdvanceStages, horizon)
	totals.SettlementHorizonDays = horizon

	totals.RevenueEstimate = revenueEstimate(purchases, markups)
	totals.SupplierInterest, totals.ForexReserve = financingCost(totals.SupplierPayment, defaults.AdvanceStages, horizon, admin)
	totals.CreditInterest = creditInterest(totals.RevenueEstimate, defaults.AdvanceTotalPct(), admin)
	totals.Overheads = quoteOverheads(&defaults, totals.RevenueEstimate)
	totals.FinancingTotal = totals.SupplierInterest.Add(totals.CreditInterest).Add(totals.ForexReserve).Add(totals.Overheads)

	result := &CalculationResult{
		ID:       uuid.New(),
		Version:  EngineVersion,
		Currency: defaults.Currency,
		SaleType: defaults.SaleType,
		Region:   region,
		Products: make([]ProductBreakdown, n),
	}

	for i := range products {
		p := &products[i]
		allocated := shares[i].Mul(totals.FinancingTotal)
		cogs := purchases[i].Value.
			Add(logistics[i].Total).
			Add(customs[i].ImportDuty).
			Add(customs[i].ExciseTax).
			Add(customs[i].ImportVAT).
			Add(allocated)

		price := salePrice(defaults.SaleType, cogs, purchases[i].Value, markups[i])
		salesVAT, netVAT, refund := vatAmounts(defaults.SaleType, region, price, customs[i].ImportVAT)
		commission := transitCommission(defaults.SaleType, defaults.TransitCommissionPct, price, purchases[i].Value)

		result.Products[i] = ProductBreakdown{
			SKU:      p.SKU,
			Name:     p.Name,
			Currency: resolvers[i].Currency(),
			Quantity: p.Quantity,

			SupplierCountry: purchases[i].SupplierCountry,
			SupplierVATRate: purchases[i].SupplierVATRate,
			UnitPriceExVAT:  purchases[i].UnitPriceExVAT,
			UnitPriceQuote:  purchases[i].UnitPriceQuote,
			PurchaseValue:   purchases[i].Value,

			DistributionShare: shares[i],
			Logistics:         logistics[i],

			InternalPrice: customs[i].InternalPrice,
			ImportDuty:    customs[i].ImportDuty,
			ExciseTax:     customs[i].ExciseTax,
			ImportVAT:     customs[i].ImportVAT,

			FinancingAllocated: allocated,

			COGS:     cogs,
			UnitCOGS: cogs.Div(p.Quantity),

			MarkupPct:     markups[i],
			SalePrice:     price,
			UnitSalePrice: price.Div(p.Quantity),
			Margin:        price.Sub(cogs),

			SalesVAT:          salesVAT,
			NetVAT:            netVAT,
			VATRefundPosition: refund,

			TransitCommission: commission,
		}

		totals.COGS = totals.COGS.Add(cogs)
		totals.Revenue = totals.Revenue.Add(price)
		totals.SalesVAT = totals.SalesVAT.Add(salesVAT)
		totals.NetVATPayable = totals.NetVATPayable.Add(netVAT)
		totals.TransitCommission = totals.TransitCommission.Add(commission)
	}
	totals.Margin = totals.Revenue.Sub(totals.COGS)
	totals.VATRefundPosition = totals.NetVATPayable.IsNegative()

	result.Totals = totals
	return result, nil
}
