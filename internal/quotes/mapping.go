package quotes

import (
	"errors"

	"github.com/meridian-trade/meridian/internal/pricing"
)

// EngineInputs converts a wire request into the engine's typed inputs.
func EngineInputs(req CalculateRequest) ([]pricing.Product, pricing.QuoteDefaults) {
	products := make([]pricing.Product, len(req.Products))
	for i, p := range req.Products {
		products[i] = toProduct(p)
	}
	return products, toDefaults(req.Defaults)
}

func toProduct(req ProductRequest) pricing.Product {
	p := pricing.Product{
		SKU:              req.SKU,
		Brand:            req.Brand,
		Name:             req.Name,
		BasePriceWithVAT: req.BasePriceWithVAT,
		Quantity:         req.Quantity,
		WeightKg:         req.WeightKg,

		Currency:           req.Currency,
		DiscountPct:        req.DiscountPct,
		ExchangeRate:       req.ExchangeRate,
		CustomsCode:        req.CustomsCode,
		ImportTariffPct:    req.ImportTariffPct,
		ExciseRatePct:      req.ExciseRatePct,
		MarkupPct:          req.MarkupPct,
		DeliveryDays:       req.DeliveryDays,
		SupplierAdvancePct: req.SupplierAdvancePct,

		SupplierToHubCost:    req.SupplierToHubCost,
		HubToCustomsCost:     req.HubToCustomsCost,
		CustomsToClientCost:  req.CustomsToClientCost,
		CustomsBrokerageFee:  req.CustomsBrokerageFee,
		WarehouseHandlingFee: req.WarehouseHandlingFee,
	}
	if req.SupplierCountry != nil {
		country := pricing.Country(*req.SupplierCountry)
		p.SupplierCountry = &country
	}
	return p
}

func toDefaults(req QuoteDefaultsRequest) pricing.QuoteDefaults {
	d := pricing.QuoteDefaults{
		SellerCompany: pricing.SellerCompany(req.SellerCompany),
		SaleType:      pricing.SaleType(req.SaleType),
		Incoterms:     pricing.Incoterms(req.Incoterms),
		Currency:      req.Currency,

		DiscountPct:        req.DiscountPct,
		ExchangeRate:       req.ExchangeRate,
		CustomsCode:        req.CustomsCode,
		ImportTariffPct:    req.ImportTariffPct,
		ExciseRatePct:      req.ExciseRatePct,
		MarkupPct:          req.MarkupPct,
		DeliveryDays:       req.DeliveryDays,
		SupplierAdvancePct: req.SupplierAdvancePct,

		SupplierToHubCost:    req.SupplierToHubCost,
		HubToCustomsCost:     req.HubToCustomsCost,
		CustomsToClientCost:  req.CustomsToClientCost,
		CustomsBrokerageFee:  req.CustomsBrokerageFee,
		WarehouseHandlingFee: req.WarehouseHandlingFee,

		DeliveryManagerFeeType:  pricing.FeeType(req.DeliveryManagerFeeType),
		DeliveryManagerFeeValue: req.DeliveryManagerFeeValue,
		UtilizationFeePct:       req.UtilizationFeePct,
		TransitCommissionPct:    req.TransitCommissionPct,
	}
	if req.SupplierCountry != nil {
		country := pricing.Country(*req.SupplierCountry)
		d.SupplierCountry = &country
	}
	for _, stage := range req.AdvanceStages {
		d.AdvanceStages = append(d.AdvanceStages, pricing.AdvanceStage{
			Percent:   stage.Percent,
			AfterDays: stage.AfterDays,
		})
	}
	return d
}

// toIssue flattens a typed engine error into its wire form.
func toIssue(err error) ValidationIssue {
	var missing *pricing.MissingRequiredFieldError
	if errors.As(err, &missing) {
		return ValidationIssue{
			Code:         "missing_required_field",
			Field:        missing.Field,
			ProductIndex: indexPtr(missing.ProductIndex),
			Message:      missing.Error(),
		}
	}
	var rangeErr *pricing.InvalidRangeError
	if errors.As(err, &rangeErr) {
		return ValidationIssue{
			Code:         "invalid_range",
			Field:        rangeErr.Field,
			ProductIndex: indexPtr(rangeErr.ProductIndex),
			Message:      rangeErr.Error(),
		}
	}
	var unknown *pricing.UnknownLookupKeyError
	if errors.As(err, &unknown) {
		return ValidationIssue{
			Code:    "unknown_lookup_key",
			Field:   unknown.Kind,
			Message: unknown.Error(),
		}
	}
	return ValidationIssue{Code: "invalid_input", Message: err.Error()}
}

func toCalculationError(perr *pricing.PhaseError) CalculationErrorResponse {
	resp := CalculationErrorResponse{
		Phase:        string(perr.Phase),
		ProductIndex: indexPtr(perr.ProductIndex),
		Message:      perr.Err.Error(),
	}
	var missing *pricing.MissingRequiredFieldError
	if errors.As(perr.Err, &missing) {
		resp.Field = missing.Field
	}
	var rangeErr *pricing.InvalidRangeError
	if errors.As(perr.Err, &rangeErr) {
		resp.Field = rangeErr.Field
	}
	return resp
}

func indexPtr(i int) *int {
	if i < 0 {
		return nil
	}
	return &i
}
