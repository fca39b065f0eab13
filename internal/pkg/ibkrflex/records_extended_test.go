// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibkrflex

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/bufdev/ibflex/internal/standard/xtime"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseActivityStatementExtendedSections(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		section    string
		element    string
		attributes map[string]string
		required   []string
		check      func(*testing.T, *Statement)
	}{
		{
			section: "OptionEAE",
			element: "OptionEAE",
			attributes: map[string]string{
				"accountId":     "U1",
				"type":          "Assignment",
				"date":          "20250117",
				"symbol":        "AAPL250117C200",
				"assetCategory": "OPT",
				"quantity":      "-1",
				"strike":        "200",
				"putCall":       "C",
			},
			required: []string{"accountId", "date", "symbol", "quantity"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.OptionEAE, 1)
				record := statement.OptionEAE[0]
				require.Equal(t, "U1", record.AccountID)
				require.Equal(t, "AAPL250117C200", record.Symbol)
				requireDecimalEqual(t, "-1", record.Quantity)
				requireDecimal(t, "200", record.Strike)
				require.False(t, record.TradePrice.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 17}, record.Date)
				require.Equal(t, OptionActionAssignment, record.Type)
				require.Equal(t, AssetCategoryOption, record.AssetCategory)
				require.Equal(t, PutCallCall, record.PutCall)
			},
		},
		{
			section: "FxTransactions",
			element: "FxTransaction",
			attributes: map[string]string{
				"accountId":     "U1",
				"reportDate":    "20250115",
				"fromCurrency":  "EUR",
				"toCurrency":    "USD",
				"quantity":      "100",
				"proceeds":      "108.5",
				"cost":          "-100.2",
				"levelOfDetail": "Execution",
			},
			required: []string{"accountId", "fromCurrency", "toCurrency", "quantity", "proceeds"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.FxTransactions, 1)
				record := statement.FxTransactions[0]
				require.Equal(t, "EUR", record.FromCurrency)
				require.Equal(t, "USD", record.ToCurrency)
				requireDecimalEqual(t, "100", record.Quantity)
				requireDecimalEqual(t, "108.5", record.Proceeds)
				requireDecimal(t, "-100.2", record.Cost)
				require.False(t, record.RealizedPL.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 15}, record.ReportDate)
				require.Equal(t, LevelOfDetailExecution, record.LevelOfDetail)
			},
		},
		{
			section: "ChangeInDividendAccruals",
			element: "ChangeInDividendAccrual",
			attributes: map[string]string{
				"accountId":      "U1",
				"symbol":         "MSFT",
				"assetCategory":  "STK",
				"securityIDType": "ISIN",
				"exDate":         "20250220",
				"payDate":        "20250313",
				"grossRate":      "0.83",
				"grossAmount":    "83",
				"netAmount":      "70.55",
			},
			required: []string{"accountId", "symbol", "exDate", "grossRate", "netAmount"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.ChangeInDividendAccruals, 1)
				record := statement.ChangeInDividendAccruals[0]
				require.Equal(t, "MSFT", record.Symbol)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.February, Day: 20}, record.ExDate)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.March, Day: 13}, record.PayDate)
				requireDecimalEqual(t, "0.83", record.GrossRate)
				requireDecimalEqual(t, "70.55", record.NetAmount)
				requireDecimal(t, "83", record.GrossAmount)
				require.False(t, record.Tax.Valid)
				require.Equal(t, SecurityIDTypeISIN, record.SecurityIDType)
				require.Equal(t, AssetCategoryStock, record.AssetCategory)
			},
		},
		{
			section: "OpenDividendAccruals",
			element: "OpenDividendAccrual",
			attributes: map[string]string{
				"accountId":      "U1",
				"symbol":         "MSFT",
				"securityIDType": "CUSIP",
				"exDate":         "20250220",
				"payDate":        "20250313",
				"quantity":       "100",
				"grossRate":      "0.83",
				"netAmount":      "70.55",
			},
			required: []string{"accountId", "symbol", "exDate", "quantity", "grossRate"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.OpenDividendAccruals, 1)
				record := statement.OpenDividendAccruals[0]
				require.Equal(t, "MSFT", record.Symbol)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.February, Day: 20}, record.ExDate)
				requireDecimalEqual(t, "100", record.Quantity)
				requireDecimalEqual(t, "0.83", record.GrossRate)
				requireDecimal(t, "70.55", record.NetAmount)
				require.False(t, record.GrossAmount.Valid)
				require.Equal(t, SecurityIDTypeCUSIP, record.SecurityIDType)
			},
		},
		{
			section: "InterestAccruals",
			element: "InterestAccrualsCurrency",
			attributes: map[string]string{
				"accountId":              "U1",
				"currency":               "USD",
				"fromDate":               "20250101",
				"toDate":                 "20250131",
				"startingAccrualBalance": "1.5",
				"interestAccrued":        "2.25",
				"endingAccrualBalance":   "3.75",
			},
			required: []string{
				"accountId",
				"currency",
				"fromDate",
				"toDate",
				"startingAccrualBalance",
				"interestAccrued",
				"endingAccrualBalance",
			},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.InterestAccruals, 1)
				record := statement.InterestAccruals[0]
				require.Equal(t, "USD", record.Currency)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 1}, record.FromDate)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 31}, record.ToDate)
				requireDecimalEqual(t, "1.5", record.StartingAccrualBalance)
				requireDecimalEqual(t, "2.25", record.InterestAccrued)
				requireDecimalEqual(t, "3.75", record.EndingAccrualBalance)
			},
		},
		{
			section: "Transfers",
			element: "Transfer",
			attributes: map[string]string{
				"accountId":     "U1",
				"type":          "ACATS",
				"direction":     "IN",
				"toFrom":        "From",
				"symbol":        "VTI",
				"assetCategory": "STK",
				"quantity":      "50",
				"transferPrice": "101.25",
				"date":          "20250110",
			},
			required: []string{"accountId", "symbol", "quantity", "date"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.Transfers, 1)
				record := statement.Transfers[0]
				require.Equal(t, "VTI", record.Symbol)
				requireDecimalEqual(t, "50", record.Quantity)
				requireDecimal(t, "101.25", record.TransferPrice)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 10}, record.Date)
				require.Equal(t, TransferTypeACATS, record.Type)
				require.Equal(t, InOutIn, record.Direction)
				require.Equal(t, ToFromFrom, record.ToFrom)
			},
		},
		{
			section: "MTMPerformanceSummaryInBase",
			element: "MTMPerformanceSummaryUnderlying",
			attributes: map[string]string{
				"accountId":      "U1",
				"reportDate":     "20250131",
				"symbol":         "AAPL",
				"assetCategory":  "STK",
				"transactionMtm": "12.5",
				"levelOfDetail":  "SUMMARY",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.MTMPerformanceSummaryInBase, 1)
				record := statement.MTMPerformanceSummaryInBase[0]
				require.Equal(t, "AAPL", record.Symbol)
				requireDecimal(t, "12.5", record.TransactionMtm)
				require.False(t, record.Commissions.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 31}, record.ReportDate)
				require.Equal(t, LevelOfDetailSummaryUpper, record.LevelOfDetail)
			},
		},
		{
			section: "FIFOPerformanceSummaryInBase",
			element: "FIFOPerformanceSummaryUnderlying",
			attributes: map[string]string{
				"accountId":        "U1",
				"reportDate":       "20250131",
				"assetCategory":    "OPT",
				"realizedTotalPnl": "300.1",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.FIFOPerformanceSummaryInBase, 1)
				record := statement.FIFOPerformanceSummaryInBase[0]
				requireDecimal(t, "300.1", record.RealizedTotalPnl)
				require.False(t, record.TotalIncome.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 31}, record.ReportDate)
				require.Equal(t, AssetCategoryOption, record.AssetCategory)
			},
		},
		{
			section: "MTDYTDPerformanceSummary",
			element: "MTDYTDPerformanceSummaryUnderlying",
			attributes: map[string]string{
				"accountId":      "U1",
				"symbol":         "AAPL",
				"assetCategory":  "STK",
				"mtdRealizedPnl": "-4.5",
				"levelOfDetail":  "Summary",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.MTDYTDPerformanceSummary, 1)
				record := statement.MTDYTDPerformanceSummary[0]
				require.Equal(t, "AAPL", record.Symbol)
				requireDecimal(t, "-4.5", record.MtdRealizedPnl)
				require.False(t, record.YtdRealizedPnl.Valid)
				require.Equal(t, AssetCategoryStock, record.AssetCategory)
				require.Equal(t, LevelOfDetailSummary, record.LevelOfDetail)
			},
		},
		{
			section: "StmtFunds",
			element: "StatementOfFundsLine",
			attributes: map[string]string{
				"accountId":     "U1",
				"reportDate":    "20250115",
				"date":          "20250114",
				"activityCode":  "DEP",
				"amount":        "1000",
				"balance":       "2500",
				"levelOfDetail": "BaseCurrency",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.StmtFunds, 1)
				record := statement.StmtFunds[0]
				require.Equal(t, "DEP", record.ActivityCode)
				requireDecimal(t, "1000", record.Amount)
				requireDecimal(t, "2500", record.Balance)
				require.False(t, record.Debit.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 14}, record.Date)
				require.Equal(t, LevelOfDetailBaseCurrency, record.LevelOfDetail)
			},
		},
		{
			section: "ChangeInPositionValues",
			element: "ChangeInPositionValue",
			attributes: map[string]string{
				"accountId":        "U1",
				"reportDate":       "20250131",
				"assetCategory":    "STK",
				"priorPeriodValue": "100",
				"endingValue":      "150",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.ChangeInPositionValues, 1)
				record := statement.ChangeInPositionValues[0]
				requireDecimal(t, "100", record.PriorPeriodValue)
				requireDecimal(t, "150", record.EndingValue)
				require.False(t, record.Transactions.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 31}, record.ReportDate)
				require.Equal(t, AssetCategoryStock, record.AssetCategory)
			},
		},
		{
			section: "UnbundledCommissionDetails",
			element: "UnbundledCommissionDetail",
			attributes: map[string]string{
				"accountId":       "U1",
				"assetCategory":   "FUT",
				"execID":          "0001",
				"dateTime":        "20250115;093015",
				"quantity":        "2",
				"totalCommission": "-1.05",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.UnbundledCommissionDetails, 1)
				record := statement.UnbundledCommissionDetails[0]
				require.Equal(t, "0001", record.ExecID)
				requireDecimal(t, "-1.05", record.TotalCommission)
				require.False(t, record.Price.Valid)
				require.True(t, time.Date(2025, time.January, 15, 9, 30, 15, 0, time.UTC).Equal(record.DateTime))
				require.Equal(t, AssetCategoryFuture, record.AssetCategory)
			},
		},
		{
			section: "ClientFees",
			element: "ClientFee",
			attributes: map[string]string{
				"accountId": "U1",
				"date":      "20250131",
				"currency":  "USD",
				"revenue":   "5",
				"net":       "3",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.ClientFees, 1)
				record := statement.ClientFees[0]
				require.Equal(t, "USD", record.Currency)
				requireDecimal(t, "5", record.Revenue)
				requireDecimal(t, "3", record.Net)
				require.False(t, record.Expense.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 31}, record.Date)
			},
		},
		{
			section: "ClientFeesDetails",
			element: "ClientFeesDetail",
			attributes: map[string]string{
				"accountId": "U1",
				"date":      "20250131",
				"feeType":   "Advisory",
				"revenue":   "5",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.ClientFeesDetails, 1)
				record := statement.ClientFeesDetails[0]
				require.Equal(t, "Advisory", record.FeeType)
				requireDecimal(t, "5", record.Revenue)
				require.False(t, record.Net.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 31}, record.Date)
			},
		},
		{
			section: "SLBActivities",
			element: "SLBActivity",
			attributes: map[string]string{
				"accountId":     "U1",
				"symbol":        "GME",
				"assetCategory": "STK",
				"date":          "20250120",
				"type":          "ManualLoan",
				"quantity":      "100",
				"feeRate":       "0.25",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.SLBActivities, 1)
				record := statement.SLBActivities[0]
				require.Equal(t, "ManualLoan", record.Type)
				requireDecimal(t, "0.25", record.FeeRate)
				require.False(t, record.NetLendFee.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 20}, record.Date)
				require.Equal(t, AssetCategoryStock, record.AssetCategory)
			},
		},
		{
			section: "SLBFees",
			element: "SLBFee",
			attributes: map[string]string{
				"accountId":     "U1",
				"symbol":        "GME",
				"assetCategory": "STK",
				"valueDate":     "20250121",
				"startDate":     "20250120",
				"fee":           "-0.42",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.SLBFees, 1)
				record := statement.SLBFees[0]
				require.Equal(t, "GME", record.Symbol)
				requireDecimal(t, "-0.42", record.Fee)
				require.False(t, record.FeeRate.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 21}, record.ValueDate)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 20}, record.StartDate)
				require.Equal(t, AssetCategoryStock, record.AssetCategory)
			},
		},
		{
			section: "HardToBorrowDetails",
			element: "HardToBorrowDetail",
			attributes: map[string]string{
				"accountId":     "U1",
				"symbol":        "GME",
				"assetCategory": "STK",
				"valueDate":     "20250121",
				"borrowFee":     "-1.1",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.HardToBorrowDetails, 1)
				record := statement.HardToBorrowDetails[0]
				requireDecimal(t, "-1.1", record.BorrowFee)
				require.False(t, record.BorrowFeeRate.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 21}, record.ValueDate)
				require.Equal(t, AssetCategoryStock, record.AssetCategory)
			},
		},
		{
			section: "FxLots",
			element: "FxLot",
			attributes: map[string]string{
				"accountId":     "U1",
				"assetCategory": "CASH",
				"reportDate":    "20250131",
				"fxCurrency":    "EUR",
				"quantity":      "250",
				"levelOfDetail": "Lot",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.FxLots, 1)
				record := statement.FxLots[0]
				require.Equal(t, "EUR", record.FXCurrency)
				requireDecimal(t, "250", record.Quantity)
				require.False(t, record.UnrealizedPL.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 31}, record.ReportDate)
				require.Equal(t, AssetCategoryCash, record.AssetCategory)
				require.Equal(t, LevelOfDetailLot, record.LevelOfDetail)
			},
		},
		{
			section: "UnsettledTransfers",
			element: "UnsettledTransfer",
			attributes: map[string]string{
				"accountId":     "U1",
				"symbol":        "VTI",
				"assetCategory": "STK",
				"direction":     "OUT",
				"date":          "20250129",
				"expectedDate":  "20250203",
				"quantity":      "10",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.UnsettledTransfers, 1)
				record := statement.UnsettledTransfers[0]
				require.Equal(t, "VTI", record.Symbol)
				requireDecimal(t, "10", record.Quantity)
				require.False(t, record.FXRateToBase.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.February, Day: 3}, record.ExpectedDate)
				require.Equal(t, InOutOut, record.Direction)
			},
		},
		{
			section: "TradeTransfers",
			element: "TradeTransfer",
			attributes: map[string]string{
				"accountId":         "U1",
				"symbol":            "VTI",
				"assetCategory":     "STK",
				"transferType":      "INTERNAL",
				"direction":         "IN",
				"deliveredReceived": "Received",
				"date":              "20250110",
				"quantity":          "5",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.TradeTransfers, 1)
				record := statement.TradeTransfers[0]
				requireDecimal(t, "5", record.Quantity)
				require.False(t, record.TransferPrice.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 10}, record.Date)
				require.Equal(t, TransferTypeInternal, record.TransferType)
				require.Equal(t, InOutIn, record.Direction)
				require.Equal(t, DeliveredReceivedReceived, record.DeliveredReceived)
			},
		},
		{
			section: "PriorPeriodPositions",
			element: "PriorPeriodPosition",
			attributes: map[string]string{
				"accountId":     "U1",
				"symbol":        "AAPL",
				"assetCategory": "STK",
				"date":          "20250131",
				"priorMtmPnl":   "17.3",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.PriorPeriodPositions, 1)
				record := statement.PriorPeriodPositions[0]
				requireDecimal(t, "17.3", record.PriorMtmPnl)
				require.False(t, record.Price.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 31}, record.Date)
				require.Equal(t, AssetCategoryStock, record.AssetCategory)
			},
		},
		{
			section: "TierInterestDetails",
			element: "TierInterestDetail",
			attributes: map[string]string{
				"accountId":     "U1",
				"currency":      "USD",
				"interestType":  "Debit Interest",
				"reportDate":    "20250131",
				"valueDate":     "20250130",
				"rate":          "5.83",
				"totalInterest": "-2.47",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.TierInterestDetails, 1)
				record := statement.TierInterestDetails[0]
				require.Equal(t, "Debit Interest", record.InterestType)
				requireDecimal(t, "5.83", record.Rate)
				requireDecimal(t, "-2.47", record.TotalInterest)
				require.False(t, record.Balance.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 30}, record.ValueDate)
			},
		},
		{
			section: "DebitCardActivities",
			element: "DebitCardActivity",
			attributes: map[string]string{
				"accountId": "U1",
				"date":      "20250112",
				"merchant":  "Coffee Shop",
				"status":    "Posted",
				"amount":    "-4.75",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.DebitCardActivities, 1)
				record := statement.DebitCardActivities[0]
				require.Equal(t, "Coffee Shop", record.Merchant)
				require.Equal(t, "Posted", record.Status)
				requireDecimal(t, "-4.75", record.Amount)
				require.False(t, record.FXRateToBase.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 12}, record.Date)
			},
		},
		{
			section: "SalesTaxes",
			element: "SalesTax",
			attributes: map[string]string{
				"accountId": "U1",
				"date":      "20250131",
				"taxType":   "VAT",
				"taxAmount": "0.19",
			},
			required: []string{"accountId"},
			check: func(t *testing.T, statement *Statement) {
				require.Len(t, statement.SalesTaxes, 1)
				record := statement.SalesTaxes[0]
				require.Equal(t, "VAT", record.TaxType)
				requireDecimal(t, "0.19", record.TaxAmount)
				require.False(t, record.Proceeds.Valid)
				require.Equal(t, xtime.Date{Year: 2025, Month: time.January, Day: 31}, record.Date)
			},
		},
	} {
		t.Run(test.element, func(t *testing.T) {
			t.Parallel()
			response, err := ParseActivityStatement([]byte(newActivityDocument(newSectionElement(test.section, test.element, test.attributes, ""))))
			require.NoError(t, err)
			require.Len(t, response.Statements, 1)
			test.check(t, response.Statements[0])
			for _, field := range test.required {
				_, err := ParseActivityStatement([]byte(newActivityDocument(newSectionElement(test.section, test.element, test.attributes, field))))
				require.ErrorIs(t, err, ErrMissingField, "field %s", field)
				var missingFieldError *MissingFieldError
				require.True(t, errors.As(err, &missingFieldError), "field %s", field)
				require.Equal(t, test.element, missingFieldError.Entity)
				require.Equal(t, field, missingFieldError.Field)
			}
		})
	}
}

// newSectionElement renders one section holding one record with the given
// attributes, leaving out omit.
func newSectionElement(section string, element string, attributes map[string]string, omit string) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "<%s><%s", section, element)
	for _, name := range slices.Sorted(maps.Keys(attributes)) {
		if name == omit {
			continue
		}
		fmt.Fprintf(&builder, ` %s="%s"`, name, attributes[name])
	}
	fmt.Fprintf(&builder, "/></%s>", section)
	return builder.String()
}

func requireDecimal(t *testing.T, want string, got decimal.NullDecimal) {
	t.Helper()
	require.True(t, got.Valid, "want %s, got absent", want)
	requireDecimalEqual(t, want, got.Decimal)
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}
