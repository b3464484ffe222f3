package pricing

import "github.com/shopspring/decimal"

// Resolver answers "what is the effective value of this field for this
// product": the product override when set, else the quote default. Every
// dual-level field is resolved through its own accessor so override
// semantics stay auditable per field.
type Resolver struct {
	product  *Product
	defaults *QuoteDefaults
	index    int
}

// NewResolver binds a product (by its position in the quote) to the quote
// defaults. The resolver holds no state beyond the two inputs.
func NewResolver(product *Product, defaults *QuoteDefaults, index int) *Resolver {
	return &Resolver{product: product, defaults: defaults, index: index}
}

func resolveRequired[T any](field string, index int, override, fallback *T) (T, error) {
	if override != nil {
		return *override, nil
	}
	if fallback != nil {
		return *fallback, nil
	}
	var zero T
	return zero, &MissingRequiredFieldError{Field: field, ProductIndex: index}
}

func resolveOrZero(override, fallback *decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	if fallback != nil {
		return *fallback
	}
	return decimal.Zero
}

// SupplierCountry is required: without it the VAT strip rate is unknowable.
func (r *Resolver) SupplierCountry() (Country, error) {
	return resolveRequired("supplier_country", r.index, r.product.SupplierCountry, r.defaults.SupplierCountry)
}

// ExchangeRate is required: purchase values must land in the quote currency.
func (r *Resolver) ExchangeRate() (decimal.Decimal, error) {
	return resolveRequired("exchange_rate", r.index, r.product.ExchangeRate, r.defaults.ExchangeRate)
}

// MarkupPct is required wherever a sale price is produced.
func (r *Resolver) MarkupPct() (decimal.Decimal, error) {
	return resolveRequired("markup_pct", r.index, r.product.MarkupPct, r.defaults.MarkupPct)
}

// ImportTariffPct is required only when the seller clears import customs.
func (r *Resolver) ImportTariffPct() (decimal.Decimal, error) {
	return resolveRequired("import_tariff_pct", r.index, r.product.ImportTariffPct, r.defaults.ImportTariffPct)
}

// DeliveryDays is required to size the financing horizon.
func (r *Resolver) DeliveryDays() (int, error) {
	return resolveRequired("delivery_days", r.index, r.product.DeliveryDays, r.defaults.DeliveryDays)
}

// DiscountPct defaults to zero: an absent discount is no discount.
func (r *Resolver) DiscountPct() decimal.Decimal {
	return resolveOrZero(r.product.DiscountPct, r.defaults.DiscountPct)
}

// ExciseRatePct defaults to zero: most customs codes carry no excise.
func (r *Resolver) ExciseRatePct() decimal.Decimal {
	return resolveOrZero(r.product.ExciseRatePct, r.defaults.ExciseRatePct)
}

// SupplierAdvancePct defaults to zero.
func (r *Resolver) SupplierAdvancePct() decimal.Decimal {
	return resolveOrZero(r.product.SupplierAdvancePct, r.defaults.SupplierAdvancePct)
}

// Currency falls back to the quote currency when neither level names one.
func (r *Resolver) Currency() string {
	if r.product.Currency != nil {
		return *r.product.Currency
	}
	return r.defaults.Currency
}

// CustomsCode may be empty; classification is advisory for the calculation.
func (r *Resolver) CustomsCode() string {
	if r.product.CustomsCode != nil {
		return *r.product.CustomsCode
	}
	if r.defaults.CustomsCode != nil {
		return *r.defaults.CustomsCode
	}
	return ""
}
