package pricing

import (
	"errors"
	"fmt"
)

// Phase identifies one step of the calculation pipeline, in the order the
// orchestrator runs them.
type Phase string

const (
	PhaseValidation       Phase = "validation"
	PhasePurchasePrice    Phase = "purchase_price"
	PhaseDistribution     Phase = "distribution_base"
	PhaseLogistics        Phase = "logistics"
	PhaseCustoms          Phase = "customs"
	PhaseSupplierPayment  Phase = "supplier_payment"
	PhaseRevenueEstimate  Phase = "revenue_estimate"
	PhaseFinancing        Phase = "financing"
	PhaseCreditInterest   Phase = "credit_interest"
	PhaseFinancingSplit   Phase = "financing_distribution"
	PhaseCOGS             Phase = "cogs"
	PhaseSalePrice        Phase = "sale_price"
	PhaseVAT              Phase = "vat"
	PhaseTransitFee       Phase = "transit_commission"
)

// ErrDegenerateQuote signals a quote whose total purchase value is zero, so
// no distribution base exists.
var ErrDegenerateQuote = errors.New("pricing: total purchase value is zero, distribution base undefined")

// MissingRequiredFieldError reports a field with no value at either the
// product or the quote-default level. ProductIndex is -1 for quote-level
// fields.
type MissingRequiredFieldError struct {
	Field        string
	ProductIndex int
}

func (e *MissingRequiredFieldError) Error() string {
	if e.ProductIndex < 0 {
		return fmt.Sprintf("pricing: required field %q has no value", e.Field)
	}
	return fmt.Sprintf("pricing: required field %q has no value for product %d", e.Field, e.ProductIndex)
}

// InvalidRangeError reports an input value outside its permitted range.
// ProductIndex is -1 for quote-level fields.
type InvalidRangeError struct {
	Field        string
	ProductIndex int
	Reason       string
}

func (e *InvalidRangeError) Error() string {
	if e.ProductIndex < 0 {
		return fmt.Sprintf("pricing: field %q out of range: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("pricing: field %q out of range for product %d: %s", e.Field, e.ProductIndex, e.Reason)
}

// UnknownLookupKeyError reports a key with no branch in the legacy model.
// Defaulting silently would produce a wrong but plausible price, so the
// engine refuses instead.
type UnknownLookupKeyError struct {
	Kind string
	Key  string
}

func (e *UnknownLookupKeyError) Error() string {
	return fmt.Sprintf("pricing: unknown %s %q", e.Kind, e.Key)
}

// PhaseError wraps any failure with the phase and product it occurred in.
// ProductIndex is -1 for quote-level phases.
type PhaseError struct {
	Phase        Phase
	ProductIndex int
	Err          error
}

func (e *PhaseError) Error() string {
	if e.ProductIndex < 0 {
		return fmt.Sprintf("pricing: phase %s: %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("pricing: phase %s, product %d: %v", e.Phase, e.ProductIndex, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }

func phaseErr(phase Phase, productIndex int, err error) error {
	return &PhaseError{Phase: phase, ProductIndex: productIndex, Err: err}
}
