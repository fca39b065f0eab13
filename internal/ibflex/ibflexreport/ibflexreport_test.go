// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibflexreport

import (
	"testing"

	"github.com/bufdev/ibflex/internal/ibflex/ibflexload"
	"github.com/bufdev/ibflex/internal/pkg/ibkrflex"
	"github.com/stretchr/testify/require"
)

const (
	testActivityDocument = `<FlexQueryResponse queryName="q" type="AF"><FlexStatements count="1">` +
		`<FlexStatement accountId="U1" fromDate="2025-01-01" toDate="2025-01-31" whenGenerated="2025-02-01;083015">` +
		`<Trades>` +
		`<Trade accountId="U1" conid="265598" symbol="AAPL" assetCategory="STK" currency="USD" tradeDate="2025-01-20" dateTime="2025-01-20;100000" buySell="BUY" quantity="10" tradePrice="150.5" proceeds="-1505" ibCommission="-1" notes="P" />` +
		`<Trade accountId="U1" conid="495512557" symbol="AAPL  250221C00200000" assetCategory="OPT" currency="USD" tradeDate="2025-01-15" dateTime="2025-01-15;141500" buySell="SELL" quantity="-1" tradePrice="3.2" strike="200" expiry="2025-02-21" putCall="C" underlyingSymbol="AAPL" underlyingConid="265598" notes="C;W" />` +
		`<Trade accountId="U1" conid="272093" symbol="MSFT" assetCategory="STK" currency="USD" dateTime="2025-01-02;093000" buySell="BUY" quantity="5" />` +
		`</Trades>` +
		`<CashTransactions>` +
		`<CashTransaction accountId="U1" type="Dividends" symbol="AAPL" description="AAPL CASH DIVIDEND" amount="25.00" currency="USD" dateTime="2025-01-16" />` +
		`<CashTransaction accountId="U1" type="WithholdingTax" symbol="AAPL" amount="-3.75" currency="USD" dateTime="2025-01-16;000000" />` +
		`<CashTransaction accountId="U1" type="Deposits &amp; Withdrawals" amount="1000" currency="EUR" reportDate="2025-01-03" />` +
		`</CashTransactions>` +
		`<ConversionRates />` +
		`</FlexStatement></FlexStatements></FlexQueryResponse>`
	testTradeConfirmationDocument = `<TradeConfirmationStatement accountId="U2">` +
		`<Trades><Trade accountId="U2" conid="551601561" symbol="ESH5" assetCategory="FUT" currency="USD" tradeDate="2025-01-17" buySell="BUY" quantity="1" expiry="2025-03-21" underlyingSymbol="ES" /></Trades>` +
		`</TradeConfirmationStatement>`
)

func TestGetStatementSummaries(t *testing.T) {
	t.Parallel()
	summaries := GetStatementSummaries(newTestFiles(t))
	require.Len(t, summaries, 2)
	require.Equal(
		t,
		&StatementSummary{
			Path:          "activity.xml",
			Kind:          "activity",
			AccountID:     "U1",
			FromDate:      "2025-01-01",
			ToDate:        "2025-01-31",
			WhenGenerated: "2025-02-01T08:30:15Z",
			Records:       6,
			Sections: []ibkrflex.SectionCount{
				{Section: "Trades", Records: 3},
				{Section: "CashTransactions", Records: 3},
			},
		},
		summaries[0],
	)
	require.Equal(
		t,
		[]string{"confirmation.xml", "trade_confirmation", "U2", "", "", "1", "Trades=1"},
		summaries.Rows()[1],
	)
	require.Len(t, summaries.Headers(), len(summaries.Rows()[0]))
}

func TestGetTrades(t *testing.T) {
	t.Parallel()
	files := newTestFiles(t)
	trades := GetTrades(files, TradeFilter{})
	require.Len(t, trades, 4)
	symbols := make([]string, 0, len(trades))
	for _, trade := range trades {
		symbols = append(symbols, trade.Symbol)
	}
	require.Equal(t, []string{"MSFT", "AAPL  250221C00200000", "ESH5", "AAPL"}, symbols)
	require.Equal(t, "2025-01-02", trades[0].TradeDate)
	require.Equal(t, "", trades[0].Price)
	option := trades[1]
	require.Equal(t, "option AAPL 2025-02-21 200 C", option.Derivative)
	require.Equal(t, "C;W", option.Notes)
	require.Equal(t, "-1", option.Quantity)
	require.Equal(t, "3.2", option.Price)
	require.Equal(t, "future ES 2025-03-21", trades[2].Derivative)
	require.Equal(
		t,
		[]string{"U1", "2025-01-20", "AAPL", "STK", "BUY", "10", "150.5", "-1505", "-1", "USD", "", "P"},
		trades.Rows()[3],
	)

	trades = GetTrades(files, TradeFilter{Symbol: "AAPL"})
	require.Len(t, trades, 2)
	trades = GetTrades(files, TradeFilter{Symbol: "AAPL", AssetCategory: ibkrflex.AssetCategoryStock})
	require.Len(t, trades, 1)
	require.Equal(t, "AAPL", trades[0].Symbol)
	require.Empty(t, GetTrades(files, TradeFilter{AssetCategory: ibkrflex.AssetCategoryBond}))
}

func TestGetCashTransactions(t *testing.T) {
	t.Parallel()
	files := newTestFiles(t)
	cashTransactions := GetCashTransactions(files, CashTransactionFilter{})
	require.Len(t, cashTransactions, 3)
	require.Equal(
		t,
		[]string{"U1", "2025-01-03", "Deposits & Withdrawals", "", "", "1000", "EUR"},
		cashTransactions.Rows()[0],
	)
	require.Equal(t, "25", cashTransactions[1].Amount)
	require.Equal(t, "2025-01-16", cashTransactions[2].Date)
	require.Equal(
		t,
		[]*CashTotal{
			{Currency: "EUR", Amount: "1000"},
			{Currency: "USD", Amount: "21.25"},
		},
		ComputeCashTotals(cashTransactions),
	)

	cashTransactions = GetCashTransactions(files, CashTransactionFilter{Type: ibkrflex.CashTransactionTypeWithholdingTax})
	require.Len(t, cashTransactions, 1)
	require.Equal(t, "-3.75", cashTransactions[0].Amount)
}

func TestDescribeDerivative(t *testing.T) {
	t.Parallel()
	require.Equal(t, "", DescribeDerivative(ibkrflex.Derivative{}))
	require.Equal(t, "warrant", DescribeDerivative(ibkrflex.Derivative{Kind: ibkrflex.DerivativeKindWarrant}))
}

func newTestFiles(t *testing.T) []*ibflexload.File {
	t.Helper()
	activity, err := ibkrflex.ParseActivityStatement([]byte(testActivityDocument))
	require.NoError(t, err)
	tradeConfirmation, err := ibkrflex.ParseTradeConfirmationStatement([]byte(testTradeConfirmationDocument))
	require.NoError(t, err)
	return []*ibflexload.File{
		{
			Path:     "activity.xml",
			Kind:     ibkrflex.DocumentKindActivity,
			Activity: activity,
		},
		{
			Path:              "confirmation.xml",
			Kind:              ibkrflex.DocumentKindTradeConfirmation,
			TradeConfirmation: tradeConfirmation,
		},
	}
}
