// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibkrflex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		name  string
		parse func(string) string
		known map[string]string
	}{
		{
			name:  "asset_category",
			parse: func(s string) string { return string(ParseAssetCategory(s)) },
			known: map[string]string{
				"STK":  string(AssetCategoryStock),
				"OPT":  string(AssetCategoryOption),
				"FOP":  string(AssetCategoryFutureOption),
				"IOPT": string(AssetCategoryStructured),
				"BAG":  string(AssetCategoryCombo),
				"EC":   string(AssetCategoryEventContract),
			},
		},
		{
			name:  "buy_sell",
			parse: func(s string) string { return string(ParseBuySell(s)) },
			known: map[string]string{
				"BUY":        string(BuySellBuy),
				"SELL (Ca.)": string(BuySellCancelledSell),
			},
		},
		{
			name:  "open_close",
			parse: func(s string) string { return string(ParseOpenClose(s)) },
			known: map[string]string{
				"O":   string(OpenCloseOpen),
				"C;O": string(OpenCloseCloseAndOpen),
			},
		},
		{
			name:  "order_type",
			parse: func(s string) string { return string(ParseOrderType(s)) },
			known: map[string]string{
				"STP LMT": string(OrderTypeStopLimit),
				"MIDPX":   string(OrderTypeMidPrice),
			},
		},
		{
			name:  "cash_transaction_type",
			parse: func(s string) string { return string(ParseCashTransactionType(s)) },
			known: map[string]string{
				"Deposits & Withdrawals":       string(CashTransactionTypeDepositsWithdrawals),
				"Payment In Lieu Of Dividends": string(CashTransactionTypePaymentInLieuOfDividends),
			},
		},
		{
			name:  "corporate_action_type",
			parse: func(s string) string { return string(ParseCorporateActionType(s)) },
			known: map[string]string{
				"Forward Split (Issue)": string(CorporateActionTypeForwardSplitIssue),
				"T-Bill Maturity":       string(CorporateActionTypeTBillMaturity),
			},
		},
		{
			name:  "level_of_detail",
			parse: func(s string) string { return string(ParseLevelOfDetail(s)) },
			known: map[string]string{
				"Execution":  string(LevelOfDetailExecution),
				"EXECUTION":  string(LevelOfDetailExecutionUpper),
				"CLOSED_LOT": string(LevelOfDetailClosedLot),
			},
		},
		{
			name:  "in_out",
			parse: func(s string) string { return string(ParseInOut(s)) },
			known: map[string]string{
				"IN":  string(InOutIn),
				"OUT": string(InOutOut),
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			require.Empty(t, test.parse(""))
			for token, want := range test.known {
				require.Equal(t, want, test.parse(token))
				require.Equal(t, token, want)
			}
			for _, token := range []string{"NOPE", "stk", " BUY", "Unknown2"} {
				require.Equal(t, "Unknown", test.parse(token), "token %q", token)
			}
		})
	}
}

func TestParseTransactionCodes(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		value string
		want  []TransactionCode
	}{
		{
			value: "",
			want:  nil,
		},
		{
			value: "C;P;W",
			want:  []TransactionCode{TransactionCodeClosing, TransactionCodeOpening, TransactionCodeWashSale},
		},
		{
			value: "P;P",
			want:  []TransactionCode{TransactionCodeOpening, TransactionCodeOpening},
		},
		{
			value: "C;;W;",
			want:  []TransactionCode{TransactionCodeClosing, TransactionCodeWashSale},
		},
		{
			value: "Ep;C",
			want:  []TransactionCode{TransactionCodeUnknown, TransactionCodeClosing},
		},
		{
			value: ";",
			want:  nil,
		},
	} {
		t.Run(test.value, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, test.want, ParseTransactionCodes(test.value))
		})
	}
}
