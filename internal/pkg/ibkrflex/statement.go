// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibkrflex

import (
	"encoding/xml"
	"errors"
	"time"

	"github.com/bufdev/ibflex/internal/standard/xtime"
)

var errDateRangeInverted = errors.New("toDate is before fromDate")

// Response is a decoded activity document.
type Response struct {
	// QueryName is the name of the Flex query that produced the document.
	QueryName string
	// Type is the query type, e.g. "AF" for activity.
	Type    string
	Version SchemaVersion
	// Statements has one Statement per FlexStatement element, in document order.
	// It is never empty.
	Statements []*Statement
	// WhenGenerated is the generation time of the first statement.
	WhenGenerated time.Time
}

// Statement is one account's activity over a date range.
//
// All list fields are non-nil. A section that was absent from the document and
// a section that was present but empty are both an empty slice.
type Statement struct {
	AccountID     string
	FromDate      xtime.Date
	ToDate        xtime.Date
	WhenGenerated time.Time

	// AccountInformation is nil if the section was absent.
	AccountInformation *AccountInformation
	// ChangeInNAV is nil if the section was absent.
	ChangeInNAV *ChangeInNAV

	Trades          []Trade
	WashSales       []Trade
	Lots            []Trade
	Orders          []Order
	SymbolSummaries []SymbolSummary
	AssetSummaries  []AssetSummary

	OpenPositions    []Position
	CashTransactions []CashTransaction
	CorporateActions []CorporateAction
	SecuritiesInfo   []SecurityInfo
	ConversionRates  []ConversionRate

	EquitySummaryInBase          []EquitySummaryByReportDateInBase
	CashReport                   []CashReportCurrency
	TradeConfirms                []TradeConfirm
	OptionEAE                    []OptionEAE
	FxTransactions               []FxTransaction
	ChangeInDividendAccruals     []ChangeInDividendAccrual
	OpenDividendAccruals         []OpenDividendAccrual
	InterestAccruals             []InterestAccrualsCurrency
	Transfers                    []Transfer
	MTMPerformanceSummaryInBase  []MTMPerformanceSummaryUnderlying
	FIFOPerformanceSummaryInBase []FIFOPerformanceSummaryUnderlying
	MTDYTDPerformanceSummary     []MTDYTDPerformanceSummary
	StmtFunds                    []StatementOfFundsLine
	ChangeInPositionValues       []ChangeInPositionValue
	UnbundledCommissionDetails   []UnbundledCommissionDetail
	ClientFees                   []ClientFee
	ClientFeesDetails            []ClientFeesDetail
	SLBActivities                []SLBActivity
	SLBFees                      []SLBFee
	HardToBorrowDetails          []HardToBorrowDetail
	FxLots                       []FxLot
	UnsettledTransfers           []UnsettledTransfer
	TradeTransfers               []TradeTransfer
	PriorPeriodPositions         []PriorPeriodPosition
	TierInterestDetails          []TierInterestDetail
	DebitCardActivities          []DebitCardActivity
	SalesTaxes                   []SalesTax
}

// TradeConfirmationStatement is a decoded trade confirmation document.
//
// Both list fields are non-nil.
type TradeConfirmationStatement struct {
	AccountID string
	// FromDate is zero if absent.
	FromDate xtime.Date
	// ToDate is zero if absent.
	ToDate        xtime.Date
	WhenGenerated time.Time
	Trades        []Trade
	TradeConfirms []TradeConfirm
}

// SectionCount is the number of records a statement holds for one list section.
type SectionCount struct {
	// Section is the section element name, e.g. "CashTransactions".
	Section string `json:"section" yaml:"section"`
	// Records is the number of records in the section.
	Records int `json:"records" yaml:"records"`
}

// SectionCounts returns the record count of every list section, in a fixed order.
//
// Absent and empty sections have a count of zero.
func (s *Statement) SectionCounts() []SectionCount {
	return s.sections().counts()
}

// SectionCounts returns the record count of every list section, in a fixed order.
func (s *TradeConfirmationStatement) SectionCounts() []SectionCount {
	return s.sections().counts()
}

// *** PRIVATE ***

func (s *Statement) sections() sectionSet {
	return sectionSet{
		newSection(
			"Trades",
			newRecordList("Trade", decodeTrade, &s.Trades),
			newRecordList("WashSale", decodeTrade, &s.WashSales),
			newRecordList("Lot", decodeTrade, &s.Lots),
			newRecordList("Order", decodeOrder, &s.Orders),
			newRecordList("SymbolSummary", decodeSymbolSummary, &s.SymbolSummaries),
			newRecordList("AssetSummary", decodeAssetSummary, &s.AssetSummaries),
		),
		newSection("OpenPositions", newRecordList("OpenPosition", decodePosition, &s.OpenPositions)),
		newSection("CashTransactions", newRecordList("CashTransaction", decodeCashTransaction, &s.CashTransactions)),
		newSection("CorporateActions", newRecordList("CorporateAction", decodeCorporateAction, &s.CorporateActions)),
		newSection("SecuritiesInfo", newRecordList("SecurityInfo", decodeSecurityInfo, &s.SecuritiesInfo)),
		newSection("ConversionRates", newRecordList("ConversionRate", decodeConversionRate, &s.ConversionRates)),
		newSection("EquitySummaryInBase", newRecordList("EquitySummaryByReportDateInBase", decodeEquitySummaryByReportDateInBase, &s.EquitySummaryInBase)),
		newSection("CashReport", newRecordList("CashReportCurrency", decodeCashReportCurrency, &s.CashReport)),
		newSection("TradeConfirms", newRecordList("TradeConfirm", decodeTradeConfirm, &s.TradeConfirms)),
		newSection("OptionEAE", newRecordList("OptionEAE", decodeOptionEAE, &s.OptionEAE)),
		newSection("FxTransactions", newRecordList("FxTransaction", decodeFxTransaction, &s.FxTransactions)),
		newSection("ChangeInDividendAccruals", newRecordList("ChangeInDividendAccrual", decodeChangeInDividendAccrual, &s.ChangeInDividendAccruals)),
		newSection("OpenDividendAccruals", newRecordList("OpenDividendAccrual", decodeOpenDividendAccrual, &s.OpenDividendAccruals)),
		newSection("InterestAccruals", newRecordList("InterestAccrualsCurrency", decodeInterestAccrualsCurrency, &s.InterestAccruals)),
		newSection("Transfers", newRecordList("Transfer", decodeTransfer, &s.Transfers)),
		newSection("MTMPerformanceSummaryInBase", newRecordList("MTMPerformanceSummaryUnderlying", decodeMTMPerformanceSummaryUnderlying, &s.MTMPerformanceSummaryInBase)),
		newSection("FIFOPerformanceSummaryInBase", newRecordList("FIFOPerformanceSummaryUnderlying", decodeFIFOPerformanceSummaryUnderlying, &s.FIFOPerformanceSummaryInBase)),
		newSection("MTDYTDPerformanceSummary", newRecordList("MTDYTDPerformanceSummaryUnderlying", decodeMTDYTDPerformanceSummary, &s.MTDYTDPerformanceSummary)),
		newSection("StmtFunds", newRecordList("StatementOfFundsLine", decodeStatementOfFundsLine, &s.StmtFunds)),
		newSection("ChangeInPositionValues", newRecordList("ChangeInPositionValue", decodeChangeInPositionValue, &s.ChangeInPositionValues)),
		newSection("UnbundledCommissionDetails", newRecordList("UnbundledCommissionDetail", decodeUnbundledCommissionDetail, &s.UnbundledCommissionDetails)),
		newSection("ClientFees", newRecordList("ClientFee", decodeClientFee, &s.ClientFees)),
		newSection("ClientFeesDetails", newRecordList("ClientFeesDetail", decodeClientFeesDetail, &s.ClientFeesDetails)),
		newSection("SLBActivities", newRecordList("SLBActivity", decodeSLBActivity, &s.SLBActivities)),
		newSection("SLBFees", newRecordList("SLBFee", decodeSLBFee, &s.SLBFees)),
		newSection("HardToBorrowDetails", newRecordList("HardToBorrowDetail", decodeHardToBorrowDetail, &s.HardToBorrowDetails)),
		newSection("FxLots", newRecordList("FxLot", decodeFxLot, &s.FxLots)),
		newSection("UnsettledTransfers", newRecordList("UnsettledTransfer", decodeUnsettledTransfer, &s.UnsettledTransfers)),
		newSection("TradeTransfers", newRecordList("TradeTransfer", decodeTradeTransfer, &s.TradeTransfers)),
		newSection("PriorPeriodPositions", newRecordList("PriorPeriodPosition", decodePriorPeriodPosition, &s.PriorPeriodPositions)),
		newSection("TierInterestDetails", newRecordList("TierInterestDetail", decodeTierInterestDetail, &s.TierInterestDetails)),
		newSection("DebitCardActivities", newRecordList("DebitCardActivity", decodeDebitCardActivity, &s.DebitCardActivities)),
		newSection("SalesTaxes", newRecordList("SalesTax", decodeSalesTax, &s.SalesTaxes)),
	}
}

func (s *TradeConfirmationStatement) sections() sectionSet {
	return sectionSet{
		newSection("Trades", newRecordList("Trade", decodeTrade, &s.Trades)),
		newSection("TradeConfirms", newRecordList("TradeConfirm", decodeTradeConfirm, &s.TradeConfirms)),
	}
}

// decodeResponse decodes the children of a FlexQueryResponse root.
func decodeResponse(decoder *xml.Decoder, root xml.StartElement, options *parseOptions) (*Response, error) {
	response := &Response{
		QueryName: attributeValue(root, "queryName"),
		Type:      attributeValue(root, "type"),
	}
	version := attributeValue(root, "version")
	decodeStatementElement := func(start xml.StartElement) error {
		if version == "" {
			version = attributeValue(start, "version")
		}
		statement, err := decodeStatement(decoder, start, options)
		if err != nil {
			return err
		}
		response.Statements = append(response.Statements, statement)
		return nil
	}
	if err := forEachChild(decoder, func(start xml.StartElement) error {
		switch start.Name.Local {
		case "FlexStatements":
			return forEachChild(decoder, func(start xml.StartElement) error {
				if start.Name.Local == "FlexStatement" {
					return decodeStatementElement(start)
				}
				return skip(decoder)
			})
		case "FlexStatement":
			return decodeStatementElement(start)
		default:
			return skip(decoder)
		}
	}); err != nil {
		return nil, err
	}
	if len(response.Statements) == 0 {
		return nil, &MissingFieldError{Entity: root.Name.Local, Field: "FlexStatement"}
	}
	response.Version = parseSchemaVersion(version, options)
	response.WhenGenerated = response.Statements[0].WhenGenerated
	return response, nil
}

// decodeStatement decodes a FlexStatement element through its end element.
func decodeStatement(decoder *xml.Decoder, start xml.StartElement, options *parseOptions) (*Statement, error) {
	reader := newAttributeReader(start, options)
	statement := &Statement{
		AccountID:     reader.required("accountId"),
		FromDate:      reader.requiredDate("fromDate"),
		ToDate:        reader.requiredDate("toDate"),
		WhenGenerated: reader.optionalDateTime("whenGenerated"),
	}
	if reader.err == nil && statement.ToDate.Before(statement.FromDate) {
		reader.setInvalid("toDate", reader.values["toDate"], errDateRangeInverted)
	}
	if reader.err != nil {
		return nil, reader.err
	}
	sections := statement.sections()
	if err := forEachChild(decoder, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "AccountInformation":
			childReader := newAttributeReader(child, options)
			if childReader.hasAttributes() {
				accountInformation := decodeAccountInformation(childReader)
				if childReader.err != nil {
					return wrapSectionError(statement.AccountID, child.Name.Local, childReader.err)
				}
				statement.AccountInformation = &accountInformation
			}
			return skip(decoder)
		case "ChangeInNAV":
			childReader := newAttributeReader(child, options)
			if childReader.hasAttributes() {
				changeInNAV := decodeChangeInNAV(childReader)
				if childReader.err != nil {
					return wrapSectionError(statement.AccountID, child.Name.Local, childReader.err)
				}
				statement.ChangeInNAV = &changeInNAV
			}
			return skip(decoder)
		}
		section := sections.get(child.Name.Local)
		if section == nil {
			options.logger.Debug("skipping unknown section", "account_id", statement.AccountID, "section", child.Name.Local)
			return skip(decoder)
		}
		if err := section.decode(decoder, options); err != nil {
			return wrapSectionError(statement.AccountID, child.Name.Local, err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	sections.finish(options, statement.AccountID)
	return statement, nil
}

// decodeTradeConfirmationStatement decodes a TradeConfirmationStatement root
// through its end element.
func decodeTradeConfirmationStatement(decoder *xml.Decoder, root xml.StartElement, options *parseOptions) (*TradeConfirmationStatement, error) {
	reader := newAttributeReader(root, options)
	statement := &TradeConfirmationStatement{
		AccountID:     reader.required("accountId"),
		FromDate:      reader.optionalDate("fromDate"),
		ToDate:        reader.optionalDate("toDate"),
		WhenGenerated: reader.optionalDateTime("whenGenerated"),
	}
	if reader.err == nil && !statement.FromDate.IsZero() && !statement.ToDate.IsZero() && statement.ToDate.Before(statement.FromDate) {
		reader.setInvalid("toDate", reader.values["toDate"], errDateRangeInverted)
	}
	if reader.err != nil {
		return nil, reader.err
	}
	sections := statement.sections()
	if err := forEachChild(decoder, func(child xml.StartElement) error {
		section := sections.get(child.Name.Local)
		if section == nil {
			options.logger.Debug("skipping unknown section", "account_id", statement.AccountID, "section", child.Name.Local)
			return skip(decoder)
		}
		if err := section.decode(decoder, options); err != nil {
			return wrapSectionError(statement.AccountID, child.Name.Local, err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	sections.finish(options, statement.AccountID)
	return statement, nil
}
