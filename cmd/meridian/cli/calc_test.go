package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/meridian-trade/meridian/internal/pricing"
)

const calcRequestJSON = `{
  "defaults": {
    "seller_company": "ООО Меридиан Трейд",
    "sale_type": "supply",
    "incoterms": "EXW",
    "currency": "RUB",
    "supplier_country": "Турция",
    "exchange_rate": "0.0105",
    "markup_pct": "20",
    "delivery_days": 30
  },
  "products": [
    {
      "sku": "TR-001",
      "name": "Valve block",
      "base_price_with_vat": "1200",
      "quantity": "10"
    }
  ]
}`

func testAdmin() pricing.AdminSettings {
	return pricing.AdminSettings{
		ForexRiskReservePct:         decimal.RequireFromString("2"),
		FinancingAgentCommissionPct: decimal.RequireFromString("1.5"),
		AnnualInterestRatePct:       decimal.RequireFromString("24"),
		FixedPaymentTermDays:        30,
		DutyBaseIncludesFirstLeg:    true,
	}
}

func TestCalcCommandFromStdin(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := RunCalc(CalcOptions{
		InputPath: "-",
		Admin:     testAdmin(),
		Stdin:     strings.NewReader(calcRequestJSON),
		Stdout:    stdout,
		Stderr:    stderr,
	})
	require.Equal(t, 0, exitCode, stderr.String())

	var result pricing.CalculationResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	require.Len(t, result.Products, 1)
	require.True(t, result.Products[0].PurchaseValue.Equal(decimal.RequireFromString("105")),
		"got %s", result.Products[0].PurchaseValue)
}

func TestCalcCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quote.json")
	require.NoError(t, os.WriteFile(path, []byte(calcRequestJSON), 0o600))

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := RunCalc(CalcOptions{
		InputPath: path,
		Pretty:    true,
		Admin:     testAdmin(),
		Stdout:    stdout,
		Stderr:    stderr,
	})
	require.Equal(t, 0, exitCode, stderr.String())
	require.Contains(t, stdout.String(), "\"totals\"")
}

func TestCalcCommandDecodeFailure(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := RunCalc(CalcOptions{
		InputPath: "-",
		Admin:     testAdmin(),
		Stdin:     strings.NewReader("{"),
		Stdout:    stdout,
		Stderr:    stderr,
	})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr.String(), "decode request")
}

func TestCalcCommandReportsPhase(t *testing.T) {
	broken := strings.Replace(calcRequestJSON, `"quantity": "10"`, `"quantity": "0"`, 1)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := RunCalc(CalcOptions{
		InputPath: "-",
		Admin:     testAdmin(),
		Stdin:     strings.NewReader(broken),
		Stdout:    stdout,
		Stderr:    stderr,
	})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr.String(), "phase validation")
}
