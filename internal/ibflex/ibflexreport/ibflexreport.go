// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ibflexreport builds tabular views of loaded Flex statements.
//
// Every view is a slice of overview structs with string fields, ordered
// deterministically, and implements Headers and Rows for table and CSV output.
package ibflexreport

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bufdev/ibflex/internal/ibflex/ibflexload"
	"github.com/bufdev/ibflex/internal/pkg/ibkrflex"
	"github.com/bufdev/ibflex/internal/standard/xtime"
	"github.com/shopspring/decimal"
)

// StatementSummary summarizes one statement of a loaded file.
type StatementSummary struct {
	// Path is the file the statement was loaded from.
	Path string `json:"path" yaml:"path"`
	// Kind is the document kind of the file.
	Kind string `json:"kind" yaml:"kind"`
	// AccountID is the statement's account.
	AccountID string `json:"account_id" yaml:"account_id"`
	// FromDate is the first day of the statement period, if known.
	FromDate string `json:"from_date,omitempty" yaml:"from_date,omitempty"`
	// ToDate is the last day of the statement period, if known.
	ToDate string `json:"to_date,omitempty" yaml:"to_date,omitempty"`
	// WhenGenerated is when IBKR generated the statement, if known.
	WhenGenerated string `json:"when_generated,omitempty" yaml:"when_generated,omitempty"`
	// Records is the total number of records across all sections.
	Records int `json:"records" yaml:"records"`
	// Sections are the record counts of the non-empty sections.
	Sections []ibkrflex.SectionCount `json:"sections" yaml:"sections"`
}

// StatementSummaries is a list of StatementSummary.
type StatementSummaries []*StatementSummary

// Headers returns the column headers for table/CSV output.
func (s StatementSummaries) Headers() []string {
	return []string{"PATH", "KIND", "ACCOUNT", "FROM", "TO", "RECORDS", "SECTIONS"}
}

// Rows returns the rows for table/CSV output.
func (s StatementSummaries) Rows() [][]string {
	rows := make([][]string, 0, len(s))
	for _, summary := range s {
		sections := make([]string, 0, len(summary.Sections))
		for _, sectionCount := range summary.Sections {
			sections = append(sections, sectionCount.Section+"="+strconv.Itoa(sectionCount.Records))
		}
		rows = append(rows, []string{
			summary.Path,
			summary.Kind,
			summary.AccountID,
			summary.FromDate,
			summary.ToDate,
			strconv.Itoa(summary.Records),
			strings.Join(sections, " "),
		})
	}
	return rows
}

// GetStatementSummaries returns one summary per statement, in file and then
// document order.
func GetStatementSummaries(files []*ibflexload.File) StatementSummaries {
	var summaries StatementSummaries
	for _, file := range files {
		switch {
		case file.Activity != nil:
			for _, statement := range file.Activity.Statements {
				summaries = append(summaries, newStatementSummary(
					file,
					statement.AccountID,
					statement.FromDate,
					statement.ToDate,
					statement.WhenGenerated,
					statement.SectionCounts(),
				))
			}
		case file.TradeConfirmation != nil:
			statement := file.TradeConfirmation
			summaries = append(summaries, newStatementSummary(
				file,
				statement.AccountID,
				statement.FromDate,
				statement.ToDate,
				statement.WhenGenerated,
				statement.SectionCounts(),
			))
		}
	}
	return summaries
}

// TradeOverview is a single trade for display.
type TradeOverview struct {
	AccountID     string `json:"account_id" yaml:"account_id"`
	TradeDate     string `json:"trade_date" yaml:"trade_date"`
	Symbol        string `json:"symbol" yaml:"symbol"`
	AssetCategory string `json:"asset_category" yaml:"asset_category"`
	BuySell       string `json:"buy_sell,omitempty" yaml:"buy_sell,omitempty"`
	Quantity      string `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Price         string `json:"price,omitempty" yaml:"price,omitempty"`
	Proceeds      string `json:"proceeds,omitempty" yaml:"proceeds,omitempty"`
	Commission    string `json:"commission,omitempty" yaml:"commission,omitempty"`
	Currency      string `json:"currency" yaml:"currency"`
	// Derivative describes the contract if the trade is in a derivative, e.g.
	// "option AAPL 2025-03-21 200 C".
	Derivative string `json:"derivative,omitempty" yaml:"derivative,omitempty"`
	// Notes are the transaction codes joined by ";".
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	sortTime time.Time
}

// TradeOverviews is a list of TradeOverview.
type TradeOverviews []*TradeOverview

// Headers returns the column headers for table/CSV output.
func (t TradeOverviews) Headers() []string {
	return []string{"ACCOUNT", "DATE", "SYMBOL", "CATEGORY", "SIDE", "QUANTITY", "PRICE", "PROCEEDS", "COMMISSION", "CURRENCY", "DERIVATIVE", "NOTES"}
}

// Rows returns the rows for table/CSV output.
func (t TradeOverviews) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, trade := range t {
		rows = append(rows, []string{
			trade.AccountID,
			trade.TradeDate,
			trade.Symbol,
			trade.AssetCategory,
			trade.BuySell,
			trade.Quantity,
			trade.Price,
			trade.Proceeds,
			trade.Commission,
			trade.Currency,
			trade.Derivative,
			trade.Notes,
		})
	}
	return rows
}

// TradeFilter selects trades. Zero fields match everything.
type TradeFilter struct {
	Symbol        string
	AssetCategory ibkrflex.AssetCategory
}

// GetTrades returns the trades of every file that match the filter, ordered by
// execution time. Trades with equal times keep their file and document order.
func GetTrades(files []*ibflexload.File, filter TradeFilter) TradeOverviews {
	var trades TradeOverviews
	for _, file := range files {
		for _, trade := range fileTrades(file) {
			if filter.Symbol != "" && trade.Symbol != filter.Symbol && trade.UnderlyingSymbol != filter.Symbol {
				continue
			}
			if filter.AssetCategory != "" && trade.AssetCategory != filter.AssetCategory {
				continue
			}
			trades = append(trades, newTradeOverview(trade))
		}
	}
	slices.SortStableFunc(trades, func(a *TradeOverview, b *TradeOverview) int {
		return a.sortTime.Compare(b.sortTime)
	})
	return trades
}

// CashTransactionOverview is a single cash transaction for display.
type CashTransactionOverview struct {
	AccountID   string `json:"account_id" yaml:"account_id"`
	Date        string `json:"date" yaml:"date"`
	Type        string `json:"type" yaml:"type"`
	Symbol      string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Amount      string `json:"amount" yaml:"amount"`
	Currency    string `json:"currency" yaml:"currency"`

	amount   decimal.Decimal
	sortDate xtime.Date
}

// CashTransactionOverviews is a list of CashTransactionOverview.
type CashTransactionOverviews []*CashTransactionOverview

// Headers returns the column headers for table/CSV output.
func (c CashTransactionOverviews) Headers() []string {
	return []string{"ACCOUNT", "DATE", "TYPE", "SYMBOL", "DESCRIPTION", "AMOUNT", "CURRENCY"}
}

// Rows returns the rows for table/CSV output.
func (c CashTransactionOverviews) Rows() [][]string {
	rows := make([][]string, 0, len(c))
	for _, cashTransaction := range c {
		rows = append(rows, []string{
			cashTransaction.AccountID,
			cashTransaction.Date,
			cashTransaction.Type,
			cashTransaction.Symbol,
			cashTransaction.Description,
			cashTransaction.Amount,
			cashTransaction.Currency,
		})
	}
	return rows
}

// CashTransactionFilter selects cash transactions. Zero fields match everything.
type CashTransactionFilter struct {
	Type ibkrflex.CashTransactionType
}

// GetCashTransactions returns the cash transactions of every activity file
// that match the filter, ordered by date. Transactions on the same date keep
// their file and document order.
func GetCashTransactions(files []*ibflexload.File, filter CashTransactionFilter) CashTransactionOverviews {
	var cashTransactions CashTransactionOverviews
	for _, file := range files {
		if file.Activity == nil {
			continue
		}
		for _, statement := range file.Activity.Statements {
			for _, cashTransaction := range statement.CashTransactions {
				if filter.Type != "" && cashTransaction.Type != filter.Type {
					continue
				}
				cashTransactions = append(cashTransactions, newCashTransactionOverview(cashTransaction))
			}
		}
	}
	slices.SortStableFunc(cashTransactions, func(a *CashTransactionOverview, b *CashTransactionOverview) int {
		return a.sortDate.Compare(b.sortDate)
	})
	return cashTransactions
}

// CashTotal is the sum of cash transaction amounts in one currency.
type CashTotal struct {
	Currency string `json:"currency" yaml:"currency"`
	Amount   string `json:"amount" yaml:"amount"`
}

// ComputeCashTotals sums amounts per currency, ordered by currency.
func ComputeCashTotals(cashTransactions CashTransactionOverviews) []*CashTotal {
	sums := make(map[string]decimal.Decimal)
	for _, cashTransaction := range cashTransactions {
		sums[cashTransaction.Currency] = sums[cashTransaction.Currency].Add(cashTransaction.amount)
	}
	totals := make([]*CashTotal, 0, len(sums))
	for currency, sum := range sums {
		totals = append(totals, &CashTotal{Currency: currency, Amount: sum.String()})
	}
	slices.SortFunc(totals, func(a *CashTotal, b *CashTotal) int {
		return cmp.Compare(a.Currency, b.Currency)
	})
	return totals
}

// DescribeDerivative returns a one-line description of d, or "" if d is not
// a derivative. Absent fields are left out.
func DescribeDerivative(d ibkrflex.Derivative) string {
	if !d.IsDerivative() {
		return ""
	}
	parts := []string{d.Kind.String()}
	if d.UnderlyingSymbol != "" {
		parts = append(parts, d.UnderlyingSymbol)
	}
	if !d.Expiry.IsZero() {
		parts = append(parts, d.Expiry.String())
	}
	if d.Strike.Valid {
		parts = append(parts, d.Strike.Decimal.String())
	}
	if d.PutCall != "" {
		parts = append(parts, string(d.PutCall))
	}
	return strings.Join(parts, " ")
}

// *** PRIVATE ***

func newStatementSummary(
	file *ibflexload.File,
	accountID string,
	fromDate xtime.Date,
	toDate xtime.Date,
	whenGenerated time.Time,
	sectionCounts []ibkrflex.SectionCount,
) *StatementSummary {
	summary := &StatementSummary{
		Path:          file.Path,
		Kind:          file.Kind.String(),
		AccountID:     accountID,
		FromDate:      dateString(fromDate),
		ToDate:        dateString(toDate),
		WhenGenerated: timeString(whenGenerated),
		Sections:      []ibkrflex.SectionCount{},
	}
	for _, sectionCount := range sectionCounts {
		if sectionCount.Records == 0 {
			continue
		}
		summary.Records += sectionCount.Records
		summary.Sections = append(summary.Sections, sectionCount)
	}
	return summary
}

func fileTrades(file *ibflexload.File) []ibkrflex.Trade {
	switch {
	case file.Activity != nil:
		var trades []ibkrflex.Trade
		for _, statement := range file.Activity.Statements {
			trades = append(trades, statement.Trades...)
		}
		return trades
	case file.TradeConfirmation != nil:
		return file.TradeConfirmation.Trades
	default:
		return nil
	}
}

func newTradeOverview(trade ibkrflex.Trade) *TradeOverview {
	tradeDate := trade.TradeDate
	sortTime := trade.DateTime
	if tradeDate.IsZero() && !trade.DateTime.IsZero() {
		tradeDate = xtime.TimeToDate(trade.DateTime)
	}
	if sortTime.IsZero() && !tradeDate.IsZero() {
		sortTime = tradeDate.In(time.UTC)
	}
	notes := make([]string, 0, len(trade.Notes))
	for _, note := range trade.Notes {
		notes = append(notes, string(note))
	}
	return &TradeOverview{
		AccountID:     trade.AccountID,
		TradeDate:     dateString(tradeDate),
		Symbol:        trade.Symbol,
		AssetCategory: string(trade.AssetCategory),
		BuySell:       string(trade.BuySell),
		Quantity:      nullDecimalString(trade.Quantity),
		Price:         nullDecimalString(trade.TradePrice),
		Proceeds:      nullDecimalString(trade.Proceeds),
		Commission:    nullDecimalString(trade.IBCommission),
		Currency:      trade.Currency,
		Derivative:    DescribeDerivative(trade.Derivative()),
		Notes:         strings.Join(notes, ";"),
		sortTime:      sortTime,
	}
}

func newCashTransactionOverview(cashTransaction ibkrflex.CashTransaction) *CashTransactionOverview {
	date := cashTransaction.Date
	if date.IsZero() && !cashTransaction.DateTime.IsZero() {
		date = xtime.TimeToDate(cashTransaction.DateTime)
	}
	if date.IsZero() {
		date = cashTransaction.ReportDate
	}
	return &CashTransactionOverview{
		AccountID:   cashTransaction.AccountID,
		Date:        dateString(date),
		Type:        string(cashTransaction.Type),
		Symbol:      cashTransaction.Symbol,
		Description: cashTransaction.Description,
		Amount:      cashTransaction.Amount.String(),
		Currency:    cashTransaction.Currency,
		amount:      cashTransaction.Amount,
		sortDate:    date,
	}
}

func nullDecimalString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func dateString(d xtime.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func timeString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
