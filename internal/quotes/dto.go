package quotes

import (
	"github.com/shopspring/decimal"

	"github.com/meridian-trade/meridian/internal/pricing"
)

// CalculateRequest is the wire form of one calculation call.
type CalculateRequest struct {
	Defaults QuoteDefaultsRequest `json:"defaults" validate:"required"`
	Products []ProductRequest     `json:"products" validate:"required,min=1,dive"`
}

// ProductRequest mirrors pricing.Product; pointer fields are per-product
// overrides of the quote defaults.
type ProductRequest struct {
	SKU   string `json:"sku" validate:"required,max=64"`
	Brand string `json:"brand,omitempty"`
	Name  string `json:"name" validate:"required,max=256"`

	BasePriceWithVAT decimal.Decimal `json:"base_price_with_vat"`
	Quantity         decimal.Decimal `json:"quantity"`
	WeightKg         decimal.Decimal `json:"weight_kg"`

	Currency           *string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	SupplierCountry    *string          `json:"supplier_country,omitempty"`
	DiscountPct        *decimal.Decimal `json:"discount_pct,omitempty"`
	ExchangeRate       *decimal.Decimal `json:"exchange_rate,omitempty"`
	CustomsCode        *string          `json:"customs_code,omitempty" validate:"omitempty,max=16"`
	ImportTariffPct    *decimal.Decimal `json:"import_tariff_pct,omitempty"`
	ExciseRatePct      *decimal.Decimal `json:"excise_rate_pct,omitempty"`
	MarkupPct          *decimal.Decimal `json:"markup_pct,omitempty"`
	DeliveryDays       *int             `json:"delivery_days,omitempty"`
	SupplierAdvancePct *decimal.Decimal `json:"supplier_advance_pct,omitempty"`

	SupplierToHubCost    *decimal.Decimal `json:"supplier_to_hub_cost,omitempty"`
	HubToCustomsCost     *decimal.Decimal `json:"hub_to_customs_cost,omitempty"`
	CustomsToClientCost  *decimal.Decimal `json:"customs_to_client_cost,omitempty"`
	CustomsBrokerageFee  *decimal.Decimal `json:"customs_brokerage_fee,omitempty"`
	WarehouseHandlingFee *decimal.Decimal `json:"warehouse_handling_fee,omitempty"`
}

// AdvanceStageRequest is one client advance payment step.
type AdvanceStageRequest struct {
	Percent   decimal.Decimal `json:"percent"`
	AfterDays int             `json:"after_days" validate:"gte=0"`
}

// QuoteDefaultsRequest carries the quote-wide terms and default values.
type QuoteDefaultsRequest struct {
	SellerCompany string `json:"seller_company" validate:"required"`
	SaleType      string `json:"sale_type" validate:"required,oneof=supply transit financial_transit export"`
	Incoterms     string `json:"incoterms" validate:"required,oneof=EXW FCA FOB CIF CIP DAP DDP"`
	Currency      string `json:"currency" validate:"required,len=3"`

	SupplierCountry    *string          `json:"supplier_country,omitempty"`
	DiscountPct        *decimal.Decimal `json:"discount_pct,omitempty"`
	ExchangeRate       *decimal.Decimal `json:"exchange_rate,omitempty"`
	CustomsCode        *string          `json:"customs_code,omitempty" validate:"omitempty,max=16"`
	ImportTariffPct    *decimal.Decimal `json:"import_tariff_pct,omitempty"`
	ExciseRatePct      *decimal.Decimal `json:"excise_rate_pct,omitempty"`
	MarkupPct          *decimal.Decimal `json:"markup_pct,omitempty"`
	DeliveryDays       *int             `json:"delivery_days,omitempty"`
	SupplierAdvancePct *decimal.Decimal `json:"supplier_advance_pct,omitempty"`

	SupplierToHubCost    *decimal.Decimal `json:"supplier_to_hub_cost,omitempty"`
	HubToCustomsCost     *decimal.Decimal `json:"hub_to_customs_cost,omitempty"`
	CustomsToClientCost  *decimal.Decimal `json:"customs_to_client_cost,omitempty"`
	CustomsBrokerageFee  *decimal.Decimal `json:"customs_brokerage_fee,omitempty"`
	WarehouseHandlingFee *decimal.Decimal `json:"warehouse_handling_fee,omitempty"`

	AdvanceStages []AdvanceStageRequest `json:"advance_stages,omitempty" validate:"max=5,dive"`

	DeliveryManagerFeeType  string          `json:"delivery_manager_fee_type,omitempty" validate:"omitempty,oneof=percent fixed"`
	DeliveryManagerFeeValue decimal.Decimal `json:"delivery_manager_fee_value"`
	UtilizationFeePct       decimal.Decimal `json:"utilization_fee_pct"`
	TransitCommissionPct    decimal.Decimal `json:"transit_commission_pct"`
}

// CalculateResponse wraps the engine output.
type CalculateResponse struct {
	Calculation *pricing.CalculationResult `json:"calculation"`
}

// ValidationIssue is one rejected input value in wire form. ProductIndex is
// null for quote-level fields.
type ValidationIssue struct {
	Code         string `json:"code"`
	Field        string `json:"field,omitempty"`
	ProductIndex *int   `json:"product_index,omitempty"`
	Message      string `json:"message"`
}

// ValidateResponse reports the advisory pre-flight outcome.
type ValidateResponse struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationIssue `json:"errors"`
}

// CalculationErrorResponse describes an aborted calculation.
type CalculationErrorResponse struct {
	Phase        string `json:"phase"`
	ProductIndex *int   `json:"product_index,omitempty"`
	Field        string `json:"field,omitempty"`
	Message      string `json:"message"`
}
