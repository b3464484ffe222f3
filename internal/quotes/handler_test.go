package quotes

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-trade/meridian/internal/pricing"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	handler := NewHandler(slog.Default(), pricing.AdminSettings{DutyBaseIncludesFirstLeg: true}, nil)
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		handler.MountRoutes(r)
	})
	return r
}

func testRequest() CalculateRequest {
	return CalculateRequest{
		Defaults: QuoteDefaultsRequest{
			SellerCompany:   string(pricing.SellerMeridianRU),
			SaleType:        "supply",
			Incoterms:       "EXW",
			Currency:        "RUB",
			SupplierCountry: strPtr("Турция"),
			ExchangeRate:    decPtr("0.0105"),
			MarkupPct:       decPtr("20"),
			DeliveryDays:    intPtr(30),
		},
		Products: []ProductRequest{{
			SKU:              "TR-001",
			Name:             "Valve block",
			BasePriceWithVAT: dec("1200"),
			Quantity:         dec("10"),
		}},
	}
}

func postJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCalculateEndpointReturnsBreakdown(t *testing.T) {
	router := testRouter(t)

	rr := postJSON(t, router, "/v1/quotations/calculate", testRequest())
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp CalculateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Calculation)
	require.Len(t, resp.Calculation.Products, 1)

	line := resp.Calculation.Products[0]
	assert.True(t, line.UnitPriceExVAT.Equal(dec("1000")), "got %s", line.UnitPriceExVAT)
	assert.True(t, line.PurchaseValue.Equal(dec("105")), "got %s", line.PurchaseValue)
	assert.NotEmpty(t, resp.Calculation.ID)
}

func TestCalculateEndpointRejectsEngineErrors(t *testing.T) {
	router := testRouter(t)

	req := testRequest()
	req.Products[0].Quantity = dec("-1")

	rr := postJSON(t, router, "/v1/quotations/calculate", req)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())

	var resp struct {
		Error CalculationErrorResponse `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "validation", resp.Error.Phase)
	assert.Equal(t, "quantity", resp.Error.Field)
}

func TestCalculateEndpointRejectsMalformedBody(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/quotations/calculate", bytes.NewReader([]byte("{")))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCalculateEndpointRejectsMissingProducts(t *testing.T) {
	router := testRouter(t)

	req := testRequest()
	req.Products = nil

	rr := postJSON(t, router, "/v1/quotations/calculate", req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCalculateEndpointRejectsUnknownSaleType(t *testing.T) {
	router := testRouter(t)

	req := testRequest()
	req.Defaults.SaleType = "barter"

	rr := postJSON(t, router, "/v1/quotations/calculate", req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestValidateEndpointReportsAllIssues(t *testing.T) {
	router := testRouter(t)

	req := testRequest()
	req.Products[0].Quantity = dec("0")
	req.Products[0].DiscountPct = decPtr("150")

	rr := postJSON(t, router, "/v1/quotations/validate", req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	require.Len(t, resp.Errors, 2)

	fields := map[string]bool{}
	for _, issue := range resp.Errors {
		assert.Equal(t, "invalid_range", issue.Code)
		fields[issue.Field] = true
		require.NotNil(t, issue.ProductIndex)
		assert.Equal(t, 0, *issue.ProductIndex)
	}
	assert.True(t, fields["quantity"])
	assert.True(t, fields["discount_pct"])
}

func TestValidateEndpointAcceptsCleanQuote(t *testing.T) {
	router := testRouter(t)

	rr := postJSON(t, router, "/v1/quotations/validate", testRequest())
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Errors)
}
