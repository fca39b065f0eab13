// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibkrflex

import (
	"time"

	"github.com/bufdev/ibflex/internal/standard/xtime"
	"github.com/shopspring/decimal"
)

// AccountInformation is the account metadata from the AccountInformation section.
type AccountInformation struct {
	AccountID           string
	AccountType         string
	AcctAlias           string
	Currency            string
	Name                string
	MasterName          string
	CustomerType        string
	DateOpened          xtime.Date
	DateFunded          xtime.Date
	DateClosed          xtime.Date
	PrimaryEmail        string
	StreetAddress       string
	StreetAddress2      string
	City                string
	State               string
	Country             string
	PostalCode          string
	AccountCapabilities string
	TradingPermissions  string
	RegisteredRepName   string
	RegisteredRepPhone  string
	IBEntity            string
	Model               string
}

func decodeAccountInformation(r *attributeReader) AccountInformation {
	return AccountInformation{
		AccountID:           r.required("accountId"),
		AccountType:         r.optional("accountType"),
		AcctAlias:           r.optional("acctAlias"),
		Currency:            r.optional("currency"),
		Name:                r.optional("name"),
		MasterName:          r.optional("masterName"),
		CustomerType:        r.optional("customerType"),
		DateOpened:          r.optionalDate("dateOpened"),
		DateFunded:          r.optionalDate("dateFunded"),
		DateClosed:          r.optionalDate("dateClosed"),
		PrimaryEmail:        r.optional("primaryEmail"),
		StreetAddress:       r.optional("streetAddress"),
		StreetAddress2:      r.optional("streetAddress2"),
		City:                r.optional("city"),
		State:               r.optional("state"),
		Country:             r.optional("country"),
		PostalCode:          r.optional("postalCode"),
		AccountCapabilities: r.optional("accountCapabilities"),
		TradingPermissions:  r.optional("tradingPermissions"),
		RegisteredRepName:   r.optional("registeredRepName"),
		RegisteredRepPhone:  r.optional("registeredRepPhone"),
		IBEntity:            r.optional("ibEntity"),
		Model:               r.optional("model"),
	}
}

// ChangeInNAV breaks the change in net asset value over the statement period
// into its components.
type ChangeInNAV struct {
	AccountID                string
	AcctAlias                string
	Model                    string
	Currency                 string
	FromDate                 xtime.Date
	ToDate                   xtime.Date
	StartingValue            decimal.Decimal
	EndingValue              decimal.Decimal
	Mtm                      decimal.NullDecimal
	Realized                 decimal.NullDecimal
	ChangeInUnrealized       decimal.NullDecimal
	DepositsWithdrawals      decimal.NullDecimal
	Dividends                decimal.NullDecimal
	WithholdingTax           decimal.NullDecimal
	ChangeInDividendAccruals decimal.NullDecimal
	Interest                 decimal.NullDecimal
	ChangeInInterestAccruals decimal.NullDecimal
	AdvisorFees              decimal.NullDecimal
	ClientFees               decimal.NullDecimal
	OtherFees                decimal.NullDecimal
	Commissions              decimal.NullDecimal
	FXTranslation            decimal.NullDecimal
	// TWR is the time-weighted return for the period, in percent.
	TWR                     decimal.NullDecimal
	CorporateActionProceeds decimal.NullDecimal
}

func decodeChangeInNAV(r *attributeReader) ChangeInNAV {
	return ChangeInNAV{
		AccountID:                r.required("accountId"),
		AcctAlias:                r.optional("acctAlias"),
		Model:                    r.optional("model"),
		Currency:                 r.optional("currency"),
		FromDate:                 r.requiredDate("fromDate"),
		ToDate:                   r.requiredDate("toDate"),
		StartingValue:            r.requiredDecimal("startingValue"),
		EndingValue:              r.requiredDecimal("endingValue"),
		Mtm:                      r.optionalDecimal("mtm"),
		Realized:                 r.optionalDecimal("realized"),
		ChangeInUnrealized:       r.optionalDecimal("changeInUnrealized"),
		DepositsWithdrawals:      r.optionalDecimal("depositsWithdrawals"),
		Dividends:                r.optionalDecimal("dividends"),
		WithholdingTax:           r.optionalDecimal("withholdingTax"),
		ChangeInDividendAccruals: r.optionalDecimal("changeInDividendAccruals"),
		Interest:                 r.optionalDecimal("interest"),
		ChangeInInterestAccruals: r.optionalDecimal("changeInInterestAccruals"),
		AdvisorFees:              r.optionalDecimal("advisorFees"),
		ClientFees:               r.optionalDecimal("clientFees"),
		OtherFees:                r.optionalDecimal("otherFees"),
		Commissions:              r.optionalDecimal("commissions"),
		FXTranslation:            r.optionalDecimal("fxTranslation"),
		TWR:                      r.optionalDecimal("twr"),
		CorporateActionProceeds:  r.optionalDecimal("corporateActionProceeds"),
	}
}

// EquitySummaryByReportDateInBase is the equity of the account on one report
// date, in the base currency.
type EquitySummaryByReportDateInBase struct {
	AccountID                       string
	AcctAlias                       string
	Model                           string
	ReportDate                      xtime.Date
	Cash                            decimal.NullDecimal
	CashLong                        decimal.NullDecimal
	CashShort                       decimal.NullDecimal
	SettledCash                     decimal.NullDecimal
	SLBCashCollateral               decimal.NullDecimal
	Stock                           decimal.NullDecimal
	StockLong                       decimal.NullDecimal
	StockShort                      decimal.NullDecimal
	SLBDirectSecuritiesBorrowed     decimal.NullDecimal
	SLBDirectSecuritiesLent         decimal.NullDecimal
	Options                         decimal.NullDecimal
	OptionsLong                     decimal.NullDecimal
	OptionsShort                    decimal.NullDecimal
	Bonds                           decimal.NullDecimal
	BondsLong                       decimal.NullDecimal
	BondsShort                      decimal.NullDecimal
	Notes                           decimal.NullDecimal
	Funds                           decimal.NullDecimal
	Futures                         decimal.NullDecimal
	FuturesLong                     decimal.NullDecimal
	FuturesShort                    decimal.NullDecimal
	Commodities                     decimal.NullDecimal
	Total                           decimal.NullDecimal
	TotalLong                       decimal.NullDecimal
	TotalShort                      decimal.NullDecimal
	InterestAccruals                decimal.NullDecimal
	DividendAccruals                decimal.NullDecimal
	AccruedInterest                 decimal.NullDecimal
	AccruedDividend                 decimal.NullDecimal
	SoftDollars                     decimal.NullDecimal
	ForexCFDUnrealizedPl            decimal.NullDecimal
	CFDUnrealizedPl                 decimal.NullDecimal
	BrokerCashComponent             decimal.NullDecimal
	BrokerInterestAccrualsComponent decimal.NullDecimal
	GrossPositionValue              decimal.NullDecimal
	NetLiquidation                  decimal.NullDecimal
	NetLiquidationUncertainty       decimal.NullDecimal
}

func decodeEquitySummaryByReportDateInBase(r *attributeReader) EquitySummaryByReportDateInBase {
	return EquitySummaryByReportDateInBase{
		AccountID:                       r.required("accountId"),
		AcctAlias:                       r.optional("acctAlias"),
		Model:                           r.optional("model"),
		ReportDate:                      r.requiredDate("reportDate"),
		Cash:                            r.optionalDecimal("cash"),
		CashLong:                        r.optionalDecimal("cashLong"),
		CashShort:                       r.optionalDecimal("cashShort"),
		SettledCash:                     r.optionalDecimal("settledCash"),
		SLBCashCollateral:               r.optionalDecimal("slbCashCollateral"),
		Stock:                           r.optionalDecimal("stock"),
		StockLong:                       r.optionalDecimal("stockLong"),
		StockShort:                      r.optionalDecimal("stockShort"),
		SLBDirectSecuritiesBorrowed:     r.optionalDecimal("slbDirectSecuritiesBorrowed"),
		SLBDirectSecuritiesLent:         r.optionalDecimal("slbDirectSecuritiesLent"),
		Options:                         r.optionalDecimal("options"),
		OptionsLong:                     r.optionalDecimal("optionsLong"),
		OptionsShort:                    r.optionalDecimal("optionsShort"),
		Bonds:                           r.optionalDecimal("bonds"),
		BondsLong:                       r.optionalDecimal("bondsLong"),
		BondsShort:                      r.optionalDecimal("bondsShort"),
		Notes:                           r.optionalDecimal("notes"),
		Funds:                           r.optionalDecimal("funds"),
		Futures:                         r.optionalDecimal("futures"),
		FuturesLong:                     r.optionalDecimal("futuresLong"),
		FuturesShort:                    r.optionalDecimal("futuresShort"),
		Commodities:                     r.optionalDecimal("commodities"),
		Total:                           r.optionalDecimal("total"),
		TotalLong:                       r.optionalDecimal("totalLong"),
		TotalShort:                      r.optionalDecimal("totalShort"),
		InterestAccruals:                r.optionalDecimal("interestAccruals"),
		DividendAccruals:                r.optionalDecimal("dividendAccruals"),
		AccruedInterest:                 r.optionalDecimal("accruedInterest"),
		AccruedDividend:                 r.optionalDecimal("accruedDividend"),
		SoftDollars:                     r.optionalDecimal("softDollars"),
		ForexCFDUnrealizedPl:            r.optionalDecimal("forexCfdUnrealizedPl"),
		CFDUnrealizedPl:                 r.optionalDecimal("cfdUnrealizedPl"),
		BrokerCashComponent:             r.optionalDecimal("brokerCashComponent"),
		BrokerInterestAccrualsComponent: r.optionalDecimal("brokerInterestAccrualsComponent"),
		GrossPositionValue:              r.optionalDecimal("grossPositionValue"),
		NetLiquidation:                  r.optionalDecimal("netLiquidation"),
		NetLiquidationUncertainty:       r.optionalDecimal("netLiquidationUncertainty"),
	}
}

// CashReportCurrency is the cash report for one currency. IBKR also emits a
// row with currency "BASE_SUMMARY" that totals all currencies.
type CashReportCurrency struct {
	AccountID            string
	AcctAlias            string
	Model                string
	Currency             string
	FromDate             xtime.Date
	ToDate               xtime.Date
	StartingCash         decimal.Decimal
	StartingCashSec      decimal.NullDecimal
	StartingCashCom      decimal.NullDecimal
	Commissions          decimal.NullDecimal
	CommissionsSec       decimal.NullDecimal
	CommissionsCom       decimal.NullDecimal
	Deposits             decimal.NullDecimal
	Withdrawals          decimal.NullDecimal
	Dividends            decimal.NullDecimal
	BrokerInterest       decimal.NullDecimal
	BondInterest         decimal.NullDecimal
	WithholdingTax       decimal.NullDecimal
	NetTradesSales       decimal.NullDecimal
	NetTradesPurchases   decimal.NullDecimal
	AccountTransfers     decimal.NullDecimal
	InternalTransfers    decimal.NullDecimal
	ExternalTransfers    decimal.NullDecimal
	LinkingAdjustments   decimal.NullDecimal
	OtherFees            decimal.NullDecimal
	FXTranslationPnl     decimal.NullDecimal
	BillableSalesTax     decimal.NullDecimal
	RealizedForexPnl     decimal.NullDecimal
	DebitCardActivity    decimal.NullDecimal
	ClientFees           decimal.NullDecimal
	CashSettlingMtm      decimal.NullDecimal
	SoftDollars          decimal.NullDecimal
	EndingCash           decimal.Decimal
	EndingCashSec        decimal.NullDecimal
	EndingCashCom        decimal.NullDecimal
	EndingSettledCash    decimal.NullDecimal
	EndingSettledCashSec decimal.NullDecimal
	EndingSettledCashCom decimal.NullDecimal
}

func decodeCashReportCurrency(r *attributeReader) CashReportCurrency {
	return CashReportCurrency{
		AccountID:            r.required("accountId"),
		AcctAlias:            r.optional("acctAlias"),
		Model:                r.optional("model"),
		Currency:             r.required("currency"),
		FromDate:             r.requiredDate("fromDate"),
		ToDate:               r.requiredDate("toDate"),
		StartingCash:         r.requiredDecimal("startingCash"),
		StartingCashSec:      r.optionalDecimal("startingCashSec"),
		StartingCashCom:      r.optionalDecimal("startingCashCom"),
		Commissions:          r.optionalDecimal("commissions"),
		CommissionsSec:       r.optionalDecimal("commissionsSec"),
		CommissionsCom:       r.optionalDecimal("commissionsCom"),
		Deposits:             r.optionalDecimal("deposits"),
		Withdrawals:          r.optionalDecimal("withdrawals"),
		Dividends:            r.optionalDecimal("dividends"),
		BrokerInterest:       r.optionalDecimal("brokerInterest"),
		BondInterest:         r.optionalDecimal("bondInterest"),
		WithholdingTax:       r.optionalDecimal("withholdingTax"),
		NetTradesSales:       r.optionalDecimal("netTradesSales"),
		NetTradesPurchases:   r.optionalDecimal("netTradesPurchases"),
		AccountTransfers:     r.optionalDecimal("accountTransfers"),
		InternalTransfers:    r.optionalDecimal("internalTransfers"),
		ExternalTransfers:    r.optionalDecimal("externalTransfers"),
		LinkingAdjustments:   r.optionalDecimal("linkingAdjustments"),
		OtherFees:            r.optionalDecimal("otherFees"),
		FXTranslationPnl:     r.optionalDecimal("fxTranslationPnl"),
		BillableSalesTax:     r.optionalDecimal("billableSalesTax"),
		RealizedForexPnl:     r.optionalDecimal("realizedForexPnl"),
		DebitCardActivity:    r.optionalDecimal("debitCardActivity"),
		ClientFees:           r.optionalDecimal("clientFees"),
		CashSettlingMtm:      r.optionalDecimal("cashSettlingMtm"),
		SoftDollars:          r.optionalDecimal("softDollars"),
		EndingCash:           r.requiredDecimal("endingCash"),
		EndingCashSec:        r.optionalDecimal("endingCashSec"),
		EndingCashCom:        r.optionalDecimal("endingCashCom"),
		EndingSettledCash:    r.optionalDecimal("endingSettledCash"),
		EndingSettledCashSec: r.optionalDecimal("endingSettledCashSec"),
		EndingSettledCashCom: r.optionalDecimal("endingSettledCashCom"),
	}
}

// TradeConfirm is an execution from a trade confirmation statement.
type TradeConfirm struct {
	AccountID     string
	AcctAlias     string
	Model         string
	ExecID        string
	TransactionID string
	TradeID       string
	OrderID       string
	TradeDate     xtime.Date
	TradeTime     string
	// DateTime is interpreted in the location given by WithLocation.
	DateTime             time.Time
	SettleDate           xtime.Date
	Symbol               string
	Description          string
	Conid                string
	AssetCategory        AssetCategory
	CUSIP                string
	ISIN                 string
	FIGI                 string
	ListingExchange      string
	Strike               decimal.NullDecimal
	Expiry               xtime.Date
	PutCall              PutCall
	Multiplier           decimal.NullDecimal
	UnderlyingSymbol     string
	UnderlyingConid      string
	Quantity             decimal.Decimal
	TradePrice           decimal.Decimal
	Proceeds             decimal.NullDecimal
	Commission           decimal.NullDecimal
	Tax                  decimal.NullDecimal
	NetCash              decimal.NullDecimal
	Currency             string
	FXRateToBase         decimal.NullDecimal
	BuySell              BuySell
	OrderType            OrderType
	Exchange             string
	ClearingID           string
	AwayBrokerCommission decimal.NullDecimal
	RegulatoryFee        decimal.NullDecimal
	OrderReference       string
	LevelOfDetail        LevelOfDetail
}

func decodeTradeConfirm(r *attributeReader) TradeConfirm {
	return TradeConfirm{
		AccountID:            r.required("accountId"),
		AcctAlias:            r.optional("acctAlias"),
		Model:                r.optional("model"),
		ExecID:               r.required("execID"),
		TransactionID:        r.optional("transactionID"),
		TradeID:              r.optional("tradeID"),
		OrderID:              r.optional("orderID"),
		TradeDate:            r.requiredDate("tradeDate"),
		TradeTime:            r.optional("tradeTime"),
		DateTime:             r.optionalDateTime("dateTime"),
		SettleDate:           r.optionalDate("settleDate"),
		Symbol:               r.required("symbol"),
		Description:          r.optional("description"),
		Conid:                r.optional("conid"),
		AssetCategory:        ParseAssetCategory(r.required("assetCategory")),
		CUSIP:                r.optional("cusip"),
		ISIN:                 r.optional("isin"),
		FIGI:                 r.optional("figi"),
		ListingExchange:      r.optional("listingExchange"),
		Strike:               r.optionalDecimal("strike"),
		Expiry:               r.optionalDate("expiry"),
		PutCall:              ParsePutCall(r.optional("putCall")),
		Multiplier:           r.optionalDecimal("multiplier"),
		UnderlyingSymbol:     r.optional("underlyingSymbol"),
		UnderlyingConid:      r.optional("underlyingConid"),
		Quantity:             r.requiredDecimal("quantity"),
		TradePrice:           r.requiredDecimal("tradePrice"),
		Proceeds:             r.optionalDecimal("proceeds"),
		Commission:           r.optionalDecimal("commission"),
		Tax:                  r.optionalDecimal("tax"),
		NetCash:              r.optionalDecimal("netCash"),
		Currency:             r.optional("currency"),
		FXRateToBase:         r.optionalDecimal("fxRateToBase"),
		BuySell:              ParseBuySell(r.optional("buySell")),
		OrderType:            ParseOrderType(r.optional("orderType")),
		Exchange:             r.optional("exchange"),
		ClearingID:           r.optional("clearingID"),
		AwayBrokerCommission: r.optionalDecimal("awayBrokerCommission"),
		RegulatoryFee:        r.optionalDecimal("regulatoryFee"),
		OrderReference:       r.optional("orderReference"),
		LevelOfDetail:        ParseLevelOfDetail(r.optional("levelOfDetail")),
	}
}

// Derivative returns the derivative description of the confirmed execution.
func (t TradeConfirm) Derivative() Derivative {
	return newDerivative(derivativeFields{
		assetCategory:    t.AssetCategory,
		strike:           t.Strike,
		expiry:           t.Expiry,
		putCall:          t.PutCall,
		underlyingSymbol: t.UnderlyingSymbol,
		underlyingConid:  t.UnderlyingConid,
	})
}

// OptionEAE is an option exercise, assignment, or expiration.
type OptionEAE struct {
	AccountID        string
	AcctAlias        string
	Model            string
	TransactionID    string
	ActionID         string
	Type             OptionAction
	Date             xtime.Date
	DateTime         time.Time
	Conid            string
	Symbol           string
	Description      string
	AssetCategory    AssetCategory
	CUSIP            string
	ISIN             string
	FIGI             string
	ListingExchange  string
	Quantity         decimal.Decimal
	Strike           decimal.NullDecimal
	Expiry           xtime.Date
	PutCall          PutCall
	Multiplier       decimal.NullDecimal
	UnderlyingSymbol string
	UnderlyingConid  string
	TradePrice       decimal.NullDecimal
	Proceeds         decimal.NullDecimal
	Commission       decimal.NullDecimal
	Currency         string
	FXRateToBase     decimal.NullDecimal
	FifoPnlRealized  decimal.NullDecimal
	Notes            []TransactionCode
	LevelOfDetail    LevelOfDetail
}

func decodeOptionEAE(r *attributeReader) OptionEAE {
	return OptionEAE{
		AccountID:        r.required("accountId"),
		AcctAlias:        r.optional("acctAlias"),
		Model:            r.optional("model"),
		TransactionID:    r.optional("transactionID"),
		ActionID:         r.optional("actionID"),
		Type:             ParseOptionAction(r.optional("type")),
		Date:             r.requiredDate("date"),
		DateTime:         r.optionalDateTime("dateTime"),
		Conid:            r.optional("conid"),
		Symbol:           r.required("symbol"),
		Description:      r.optional("description"),
		AssetCategory:    ParseAssetCategory(r.optional("assetCategory")),
		CUSIP:            r.optional("cusip"),
		ISIN:             r.optional("isin"),
		FIGI:             r.optional("figi"),
		ListingExchange:  r.optional("listingExchange"),
		Quantity:         r.requiredDecimal("quantity"),
		Strike:           r.optionalDecimal("strike"),
		Expiry:           r.optionalDate("expiry"),
		PutCall:          ParsePutCall(r.optional("putCall")),
		Multiplier:       r.optionalDecimal("multiplier"),
		UnderlyingSymbol: r.optional("underlyingSymbol"),
		UnderlyingConid:  r.optional("underlyingConid"),
		TradePrice:       r.optionalDecimal("tradePrice"),
		Proceeds:         r.optionalDecimal("proceeds"),
		Commission:       r.optionalDecimal("commission"),
		Currency:         r.optional("currency"),
		FXRateToBase:     r.optionalDecimal("fxRateToBase"),
		FifoPnlRealized:  r.optionalDecimal("fifoPnlRealized"),
		Notes:            ParseTransactionCodes(r.optional("notes")),
		LevelOfDetail:    ParseLevelOfDetail(r.optional("levelOfDetail")),
	}
}

// Derivative returns the derivative description of the option event.
func (o OptionEAE) Derivative() Derivative {
	return newDerivative(derivativeFields{
		assetCategory:    o.AssetCategory,
		strike:           o.Strike,
		expiry:           o.Expiry,
		putCall:          o.PutCall,
		underlyingSymbol: o.UnderlyingSymbol,
		underlyingConid:  o.UnderlyingConid,
	})
}

// FxTransaction is a currency conversion.
type FxTransaction struct {
	AccountID          string
	AcctAlias          string
	Model              string
	TransactionID      string
	ActionID           string
	ReportDate         xtime.Date
	DateTime           time.Time
	Description        string
	FunctionalCurrency string
	FromCurrency       string
	ToCurrency         string
	Quantity           decimal.Decimal
	Proceeds           decimal.Decimal
	Cost               decimal.NullDecimal
	RealizedPL         decimal.NullDecimal
	FXRateToBase       decimal.NullDecimal
	LevelOfDetail      LevelOfDetail
	AssetCategory      AssetCategory
}

func decodeFxTransaction(r *attributeReader) FxTransaction {
	return FxTransaction{
		AccountID:          r.required("accountId"),
		AcctAlias:          r.optional("acctAlias"),
		Model:              r.optional("model"),
		TransactionID:      r.optional("transactionID"),
		ActionID:           r.optional("actionID"),
		ReportDate:         r.optionalDate("reportDate"),
		DateTime:           r.optionalDateTime("dateTime"),
		Description:        r.optional("description"),
		FunctionalCurrency: r.optional("functionalCurrency"),
		FromCurrency:       r.required("fromCurrency"),
		ToCurrency:         r.required("toCurrency"),
		Quantity:           r.requiredDecimal("quantity"),
		Proceeds:           r.requiredDecimal("proceeds"),
		Cost:               r.optionalDecimal("cost"),
		RealizedPL:         r.optionalDecimal("realizedPL"),
		FXRateToBase:       r.optionalDecimal("fxRateToBase"),
		LevelOfDetail:      ParseLevelOfDetail(r.optional("levelOfDetail")),
		AssetCategory:      ParseAssetCategory(r.optional("assetCategory")),
	}
}

// ChangeInDividendAccrual is a change to a dividend accrual.
type ChangeInDividendAccrual struct {
	AccountID       string
	AcctAlias       string
	Model           string
	Currency        string
	FXRateToBase    decimal.NullDecimal
	AssetCategory   AssetCategory
	Symbol          string
	Description     string
	Conid           string
	SecurityID      string
	SecurityIDType  SecurityIDType
	CUSIP           string
	ISIN            string
	FIGI            string
	ListingExchange string
	ExDate          xtime.Date
	PayDate         xtime.Date
	Date            xtime.Date
	Quantity        decimal.NullDecimal
	Tax             decimal.NullDecimal
	Fee             decimal.NullDecimal
	GrossRate       decimal.Decimal
	GrossAmount     decimal.NullDecimal
	NetAmount       decimal.Decimal
	FromAccrual     decimal.NullDecimal
	ToAccrual       decimal.NullDecimal
	Code            string
}

func decodeChangeInDividendAccrual(r *attributeReader) ChangeInDividendAccrual {
	return ChangeInDividendAccrual{
		AccountID:       r.required("accountId"),
		AcctAlias:       r.optional("acctAlias"),
		Model:           r.optional("model"),
		Currency:        r.optional("currency"),
		FXRateToBase:    r.optionalDecimal("fxRateToBase"),
		AssetCategory:   ParseAssetCategory(r.optional("assetCategory")),
		Symbol:          r.required("symbol"),
		Description:     r.optional("description"),
		Conid:           r.optional("conid"),
		SecurityID:      r.optional("securityID"),
		SecurityIDType:  ParseSecurityIDType(r.optional("securityIDType")),
		CUSIP:           r.optional("cusip"),
		ISIN:            r.optional("isin"),
		FIGI:            r.optional("figi"),
		ListingExchange: r.optional("listingExchange"),
		ExDate:          r.requiredDate("exDate"),
		PayDate:         r.optionalDate("payDate"),
		Date:            r.optionalDate("date"),
		Quantity:        r.optionalDecimal("quantity"),
		Tax:             r.optionalDecimal("tax"),
		Fee:             r.optionalDecimal("fee"),
		GrossRate:       r.requiredDecimal("grossRate"),
		GrossAmount:     r.optionalDecimal("grossAmount"),
		NetAmount:       r.requiredDecimal("netAmount"),
		FromAccrual:     r.optionalDecimal("fromAccrual"),
		ToAccrual:       r.optionalDecimal("toAccrual"),
		Code:            r.optional("code"),
	}
}

// OpenDividendAccrual is a dividend accrued but not yet paid.
type OpenDividendAccrual struct {
	AccountID       string
	AcctAlias       string
	Model           string
	Currency        string
	FXRateToBase    decimal.NullDecimal
	AssetCategory   AssetCategory
	Symbol          string
	Description     string
	Conid           string
	SecurityID      string
	SecurityIDType  SecurityIDType
	CUSIP           string
	ISIN            string
	FIGI            string
	ListingExchange string
	ExDate          xtime.Date
	PayDate         xtime.Date
	Quantity        decimal.Decimal
	Tax             decimal.NullDecimal
	Fee             decimal.NullDecimal
	GrossRate       decimal.Decimal
	GrossAmount     decimal.NullDecimal
	NetAmount       decimal.NullDecimal
	Code            string
}

func decodeOpenDividendAccrual(r *attributeReader) OpenDividendAccrual {
	return OpenDividendAccrual{
		AccountID:       r.required("accountId"),
		AcctAlias:       r.optional("acctAlias"),
		Model:           r.optional("model"),
		Currency:        r.optional("currency"),
		FXRateToBase:    r.optionalDecimal("fxRateToBase"),
		AssetCategory:   ParseAssetCategory(r.optional("assetCategory")),
		Symbol:          r.required("symbol"),
		Description:     r.optional("description"),
		Conid:           r.optional("conid"),
		SecurityID:      r.optional("securityID"),
		SecurityIDType:  ParseSecurityIDType(r.optional("securityIDType")),
		CUSIP:           r.optional("cusip"),
		ISIN:            r.optional("isin"),
		FIGI:            r.optional("figi"),
		ListingExchange: r.optional("listingExchange"),
		ExDate:          r.requiredDate("exDate"),
		PayDate:         r.optionalDate("payDate"),
		Quantity:        r.requiredDecimal("quantity"),
		Tax:             r.optionalDecimal("tax"),
		Fee:             r.optionalDecimal("fee"),
		GrossRate:       r.requiredDecimal("grossRate"),
		GrossAmount:     r.optionalDecimal("grossAmount"),
		NetAmount:       r.optionalDecimal("netAmount"),
		Code:            r.optional("code"),
	}
}

// InterestAccrualsCurrency is the interest accrual summary for one currency.
type InterestAccrualsCurrency struct {
	AccountID              string
	Currency               string
	FromDate               xtime.Date
	ToDate                 xtime.Date
	StartingAccrualBalance decimal.Decimal
	InterestAccrued        decimal.Decimal
	EndingAccrualBalance   decimal.Decimal
}

func decodeInterestAccrualsCurrency(r *attributeReader) InterestAccrualsCurrency {
	return InterestAccrualsCurrency{
		AccountID:              r.required("accountId"),
		Currency:               r.required("currency"),
		FromDate:               r.requiredDate("fromDate"),
		ToDate:                 r.requiredDate("toDate"),
		StartingAccrualBalance: r.requiredDecimal("startingAccrualBalance"),
		InterestAccrued:        r.requiredDecimal("interestAccrued"),
		EndingAccrualBalance:   r.requiredDecimal("endingAccrualBalance"),
	}
}

// Transfer is a position or cash transfer into or out of the account.
type Transfer struct {
	AccountID                 string
	AcctAlias                 string
	Model                     string
	TransactionID             string
	Type                      TransferType
	Conid                     string
	Symbol                    string
	Description               string
	AssetCategory             AssetCategory
	CUSIP                     string
	ISIN                      string
	FIGI                      string
	ListingExchange           string
	Quantity                  decimal.Decimal
	TransferPrice             decimal.NullDecimal
	PositionAmount            decimal.NullDecimal
	PositionAmountInBase      decimal.NullDecimal
	CashTransfer              decimal.NullDecimal
	Currency                  string
	FXRateToBase              decimal.NullDecimal
	Direction                 InOut
	Date                      xtime.Date
	PPIPayerPayeeAccount      string
	DeliveringReceivingBroker string
	Strike                    decimal.NullDecimal
	Expiry                    xtime.Date
	PutCall                   PutCall
	Multiplier                decimal.NullDecimal
	UnderlyingSymbol          string
	UnderlyingConid           string
	ToFrom                    ToFrom
}

func decodeTransfer(r *attributeReader) Transfer {
	return Transfer{
		AccountID:                 r.required("accountId"),
		AcctAlias:                 r.optional("acctAlias"),
		Model:                     r.optional("model"),
		TransactionID:             r.optional("transactionID"),
		Type:                      ParseTransferType(r.optional("type")),
		Conid:                     r.optional("conid"),
		Symbol:                    r.required("symbol"),
		Description:               r.optional("description"),
		AssetCategory:             ParseAssetCategory(r.optional("assetCategory")),
		CUSIP:                     r.optional("cusip"),
		ISIN:                      r.optional("isin"),
		FIGI:                      r.optional("figi"),
		ListingExchange:           r.optional("listingExchange"),
		Quantity:                  r.requiredDecimal("quantity"),
		TransferPrice:             r.optionalDecimal("transferPrice"),
		PositionAmount:            r.optionalDecimal("positionAmount"),
		PositionAmountInBase:      r.optionalDecimal("positionAmountInBase"),
		CashTransfer:              r.optionalDecimal("cashTransfer"),
		Currency:                  r.optional("currency"),
		FXRateToBase:              r.optionalDecimal("fxRateToBase"),
		Direction:                 ParseInOut(r.optional("direction")),
		Date:                      r.requiredDate("date"),
		PPIPayerPayeeAccount:      r.optional("ppiPayerPayeeAccount"),
		DeliveringReceivingBroker: r.optional("deliveringReceivingBroker"),
		Strike:                    r.optionalDecimal("strike"),
		Expiry:                    r.optionalDate("expiry"),
		PutCall:                   ParsePutCall(r.optional("putCall")),
		Multiplier:                r.optionalDecimal("multiplier"),
		UnderlyingSymbol:          r.optional("underlyingSymbol"),
		UnderlyingConid:           r.optional("underlyingConid"),
		ToFrom:                    ParseToFrom(r.optional("toFrom")),
	}
}

// Derivative returns the derivative description of the transfer.
func (t Transfer) Derivative() Derivative {
	return newDerivative(derivativeFields{
		assetCategory:    t.AssetCategory,
		strike:           t.Strike,
		expiry:           t.Expiry,
		putCall:          t.PutCall,
		underlyingSymbol: t.UnderlyingSymbol,
		underlyingConid:  t.UnderlyingConid,
	})
}

// MTMPerformanceSummaryUnderlying is the mark-to-market performance of one
// underlying.
type MTMPerformanceSummaryUnderlying struct {
	AccountID                 string
	AcctAlias                 string
	Model                     string
	ReportDate                xtime.Date
	Symbol                    string
	Description               string
	Conid                     string
	AssetCategory             AssetCategory
	CUSIP                     string
	ISIN                      string
	ListingExchange           string
	UnderlyingSymbol          string
	UnderlyingConid           string
	UnderlyingListingExchange string
	CostAdj                   decimal.NullDecimal
	RealizedSTProfit          decimal.NullDecimal
	RealizedSTLoss            decimal.NullDecimal
	RealizedLTProfit          decimal.NullDecimal
	RealizedLTLoss            decimal.NullDecimal
	UnrealizedSTProfit        decimal.NullDecimal
	UnrealizedSTLoss          decimal.NullDecimal
	UnrealizedLTProfit        decimal.NullDecimal
	UnrealizedLTLoss          decimal.NullDecimal
	TransactionMtm            decimal.NullDecimal
	Commissions               decimal.NullDecimal
	Other                     decimal.NullDecimal
	LevelOfDetail             LevelOfDetail
}

func decodeMTMPerformanceSummaryUnderlying(r *attributeReader) MTMPerformanceSummaryUnderlying {
	return MTMPerformanceSummaryUnderlying{
		AccountID:                 r.required("accountId"),
		AcctAlias:                 r.optional("acctAlias"),
		Model:                     r.optional("model"),
		ReportDate:                r.optionalDate("reportDate"),
		Symbol:                    r.optional("symbol"),
		Description:               r.optional("description"),
		Conid:                     r.optional("conid"),
		AssetCategory:             ParseAssetCategory(r.optional("assetCategory")),
		CUSIP:                     r.optional("cusip"),
		ISIN:                      r.optional("isin"),
		ListingExchange:           r.optional("listingExchange"),
		UnderlyingSymbol:          r.optional("underlyingSymbol"),
		UnderlyingConid:           r.optional("underlyingConid"),
		UnderlyingListingExchange: r.optional("underlyingListingExchange"),
		CostAdj:                   r.optionalDecimal("costAdj"),
		RealizedSTProfit:          r.optionalDecimal("realizedSTProfit"),
		RealizedSTLoss:            r.optionalDecimal("realizedSTLoss"),
		RealizedLTProfit:          r.optionalDecimal("realizedLTProfit"),
		RealizedLTLoss:            r.optionalDecimal("realizedLTLoss"),
		UnrealizedSTProfit:        r.optionalDecimal("unrealizedSTProfit"),
		UnrealizedSTLoss:          r.optionalDecimal("unrealizedSTLoss"),
		UnrealizedLTProfit:        r.optionalDecimal("unrealizedLTProfit"),
		UnrealizedLTLoss:          r.optionalDecimal("unrealizedLTLoss"),
		TransactionMtm:            r.optionalDecimal("transactionMtm"),
		Commissions:               r.optionalDecimal("commissions"),
		Other:                     r.optionalDecimal("other"),
		LevelOfDetail:             ParseLevelOfDetail(r.optional("levelOfDetail")),
	}
}

// FIFOPerformanceSummaryUnderlying is the realized and unrealized FIFO
// performance of one underlying.
type FIFOPerformanceSummaryUnderlying struct {
	AccountID              string
	AcctAlias              string
	Model                  string
	ReportDate             xtime.Date
	Symbol                 string
	Description            string
	Conid                  string
	AssetCategory          AssetCategory
	CUSIP                  string
	ISIN                   string
	ListingExchange        string
	UnderlyingSymbol       string
	UnderlyingConid        string
	RealizedShortTermPnl   decimal.NullDecimal
	RealizedLongTermPnl    decimal.NullDecimal
	RealizedTotalPnl       decimal.NullDecimal
	UnrealizedShortTermPnl decimal.NullDecimal
	UnrealizedLongTermPnl  decimal.NullDecimal
	UnrealizedTotalPnl     decimal.NullDecimal
	TotalIncome            decimal.NullDecimal
	LevelOfDetail          LevelOfDetail
}

func decodeFIFOPerformanceSummaryUnderlying(r *attributeReader) FIFOPerformanceSummaryUnderlying {
	return FIFOPerformanceSummaryUnderlying{
		AccountID:              r.required("accountId"),
		AcctAlias:              r.optional("acctAlias"),
		Model:                  r.optional("model"),
		ReportDate:             r.optionalDate("reportDate"),
		Symbol:                 r.optional("symbol"),
		Description:            r.optional("description"),
		Conid:                  r.optional("conid"),
		AssetCategory:          ParseAssetCategory(r.optional("assetCategory")),
		CUSIP:                  r.optional("cusip"),
		ISIN:                   r.optional("isin"),
		ListingExchange:        r.optional("listingExchange"),
		UnderlyingSymbol:       r.optional("underlyingSymbol"),
		UnderlyingConid:        r.optional("underlyingConid"),
		RealizedShortTermPnl:   r.optionalDecimal("realizedShortTermPnl"),
		RealizedLongTermPnl:    r.optionalDecimal("realizedLongTermPnl"),
		RealizedTotalPnl:       r.optionalDecimal("realizedTotalPnl"),
		UnrealizedShortTermPnl: r.optionalDecimal("unrealizedShortTermPnl"),
		UnrealizedLongTermPnl:  r.optionalDecimal("unrealizedLongTermPnl"),
		UnrealizedTotalPnl:     r.optionalDecimal("unrealizedTotalPnl"),
		TotalIncome:            r.optionalDecimal("totalIncome"),
		LevelOfDetail:          ParseLevelOfDetail(r.optional("levelOfDetail")),
	}
}

// MTDYTDPerformanceSummary is the month-to-date and year-to-date performance of
// one underlying. Its element name is MTDYTDPerformanceSummaryUnderlying.
type MTDYTDPerformanceSummary struct {
	AccountID        string
	AcctAlias        string
	Model            string
	Symbol           string
	Conid            string
	AssetCategory    AssetCategory
	MtdRealizedPnl   decimal.NullDecimal
	MtdUnrealizedPnl decimal.NullDecimal
	MtdCommissions   decimal.NullDecimal
	MtdFees          decimal.NullDecimal
	YtdRealizedPnl   decimal.NullDecimal
	YtdUnrealizedPnl decimal.NullDecimal
	YtdCommissions   decimal.NullDecimal
	YtdFees          decimal.NullDecimal
	LevelOfDetail    LevelOfDetail
}

func decodeMTDYTDPerformanceSummary(r *attributeReader) MTDYTDPerformanceSummary {
	return MTDYTDPerformanceSummary{
		AccountID:        r.required("accountId"),
		AcctAlias:        r.optional("acctAlias"),
		Model:            r.optional("model"),
		Symbol:           r.optional("symbol"),
		Conid:            r.optional("conid"),
		AssetCategory:    ParseAssetCategory(r.optional("assetCategory")),
		MtdRealizedPnl:   r.optionalDecimal("mtdRealizedPnl"),
		MtdUnrealizedPnl: r.optionalDecimal("mtdUnrealizedPnl"),
		MtdCommissions:   r.optionalDecimal("mtdCommissions"),
		MtdFees:          r.optionalDecimal("mtdFees"),
		YtdRealizedPnl:   r.optionalDecimal("ytdRealizedPnl"),
		YtdUnrealizedPnl: r.optionalDecimal("ytdUnrealizedPnl"),
		YtdCommissions:   r.optionalDecimal("ytdCommissions"),
		YtdFees:          r.optionalDecimal("ytdFees"),
		LevelOfDetail:    ParseLevelOfDetail(r.optional("levelOfDetail")),
	}
}

// StatementOfFundsLine is one line of the statement of funds.
type StatementOfFundsLine struct {
	AccountID           string
	AcctAlias           string
	Model               string
	ReportDate          xtime.Date
	Date                xtime.Date
	Currency            string
	ActivityCode        string
	ActivityDescription string
	TradeID             string
	Symbol              string
	Conid               string
	Debit               decimal.NullDecimal
	Credit              decimal.NullDecimal
	Amount              decimal.NullDecimal
	Balance             decimal.NullDecimal
	FXRateToBase        decimal.NullDecimal
	LevelOfDetail       LevelOfDetail
}

func decodeStatementOfFundsLine(r *attributeReader) StatementOfFundsLine {
	return StatementOfFundsLine{
		AccountID:           r.required("accountId"),
		AcctAlias:           r.optional("acctAlias"),
		Model:               r.optional("model"),
		ReportDate:          r.optionalDate("reportDate"),
		Date:                r.optionalDate("date"),
		Currency:            r.optional("currency"),
		ActivityCode:        r.optional("activityCode"),
		ActivityDescription: r.optional("activityDescription"),
		TradeID:             r.optional("tradeID"),
		Symbol:              r.optional("symbol"),
		Conid:               r.optional("conid"),
		Debit:               r.optionalDecimal("debit"),
		Credit:              r.optionalDecimal("credit"),
		Amount:              r.optionalDecimal("amount"),
		Balance:             r.optionalDecimal("balance"),
		FXRateToBase:        r.optionalDecimal("fxRateToBase"),
		LevelOfDetail:       ParseLevelOfDetail(r.optional("levelOfDetail")),
	}
}

// ChangeInPositionValue is the change in position value for one asset category.
type ChangeInPositionValue struct {
	AccountID               string
	AcctAlias               string
	Model                   string
	ReportDate              xtime.Date
	Symbol                  string
	Conid                   string
	AssetCategory           AssetCategory
	Currency                string
	PriorPeriodValue        decimal.NullDecimal
	Transactions            decimal.NullDecimal
	MtmPriorPeriodPositions decimal.NullDecimal
	MtmTransactions         decimal.NullDecimal
	CorporateActions        decimal.NullDecimal
	FXTranslation           decimal.NullDecimal
	Other                   decimal.NullDecimal
	EndingValue             decimal.NullDecimal
	LevelOfDetail           LevelOfDetail
}

func decodeChangeInPositionValue(r *attributeReader) ChangeInPositionValue {
	return ChangeInPositionValue{
		AccountID:               r.required("accountId"),
		AcctAlias:               r.optional("acctAlias"),
		Model:                   r.optional("model"),
		ReportDate:              r.optionalDate("reportDate"),
		Symbol:                  r.optional("symbol"),
		Conid:                   r.optional("conid"),
		AssetCategory:           ParseAssetCategory(r.optional("assetCategory")),
		Currency:                r.optional("currency"),
		PriorPeriodValue:        r.optionalDecimal("priorPeriodValue"),
		Transactions:            r.optionalDecimal("transactions"),
		MtmPriorPeriodPositions: r.optionalDecimal("mtmPriorPeriodPositions"),
		MtmTransactions:         r.optionalDecimal("mtmTransactions"),
		CorporateActions:        r.optionalDecimal("corporateActions"),
		FXTranslation:           r.optionalDecimal("fxTranslation"),
		Other:                   r.optionalDecimal("other"),
		EndingValue:             r.optionalDecimal("endingValue"),
		LevelOfDetail:           ParseLevelOfDetail(r.optional("levelOfDetail")),
	}
}

// UnbundledCommissionDetail breaks the commission of one execution into its parts.
type UnbundledCommissionDetail struct {
	AccountID                      string
	AcctAlias                      string
	Model                          string
	Symbol                         string
	Description                    string
	Conid                          string
	AssetCategory                  AssetCategory
	ExecID                         string
	OrderID                        string
	TradeID                        string
	DateTime                       time.Time
	Exchange                       string
	Quantity                       decimal.NullDecimal
	Price                          decimal.NullDecimal
	ExecutionCommission            decimal.NullDecimal
	ClearingCommission             decimal.NullDecimal
	RegulatoryCommission           decimal.NullDecimal
	ThirdPartyCommission           decimal.NullDecimal
	ThirdPartyRegulatoryCommission decimal.NullDecimal
	TotalCommission                decimal.NullDecimal
	Currency                       string
}

func decodeUnbundledCommissionDetail(r *attributeReader) UnbundledCommissionDetail {
	return UnbundledCommissionDetail{
		AccountID:                      r.required("accountId"),
		AcctAlias:                      r.optional("acctAlias"),
		Model:                          r.optional("model"),
		Symbol:                         r.optional("symbol"),
		Description:                    r.optional("description"),
		Conid:                          r.optional("conid"),
		AssetCategory:                  ParseAssetCategory(r.optional("assetCategory")),
		ExecID:                         r.optional("execID"),
		OrderID:                        r.optional("orderID"),
		TradeID:                        r.optional("tradeID"),
		DateTime:                       r.optionalDateTime("dateTime"),
		Exchange:                       r.optional("exchange"),
		Quantity:                       r.optionalDecimal("quantity"),
		Price:                          r.optionalDecimal("price"),
		ExecutionCommission:            r.optionalDecimal("executionCommission"),
		ClearingCommission:             r.optionalDecimal("clearingCommission"),
		RegulatoryCommission:           r.optionalDecimal("regulatoryCommission"),
		ThirdPartyCommission:           r.optionalDecimal("thirdPartyCommission"),
		ThirdPartyRegulatoryCommission: r.optionalDecimal("thirdPartyRegulatoryCommission"),
		TotalCommission:                r.optionalDecimal("totalCommission"),
		Currency:                       r.optional("currency"),
	}
}

// ClientFee is an advisor client fee.
type ClientFee struct {
	AccountID   string
	AcctAlias   string
	Model       string
	Date        xtime.Date
	Currency    string
	Revenue     decimal.NullDecimal
	Expense     decimal.NullDecimal
	Net         decimal.NullDecimal
	Description string
}

func decodeClientFee(r *attributeReader) ClientFee {
	return ClientFee{
		AccountID:   r.required("accountId"),
		AcctAlias:   r.optional("acctAlias"),
		Model:       r.optional("model"),
		Date:        r.optionalDate("date"),
		Currency:    r.optional("currency"),
		Revenue:     r.optionalDecimal("revenue"),
		Expense:     r.optionalDecimal("expense"),
		Net:         r.optionalDecimal("net"),
		Description: r.optional("description"),
	}
}

// ClientFeesDetail is a detail line of an advisor client fee.
type ClientFeesDetail struct {
	AccountID    string
	AcctAlias    string
	Model        string
	Date         xtime.Date
	Currency     string
	FeeType      string
	Revenue      decimal.NullDecimal
	Expense      decimal.NullDecimal
	Net          decimal.NullDecimal
	Description  string
	FXRateToBase decimal.NullDecimal
}

func decodeClientFeesDetail(r *attributeReader) ClientFeesDetail {
	return ClientFeesDetail{
		AccountID:    r.required("accountId"),
		AcctAlias:    r.optional("acctAlias"),
		Model:        r.optional("model"),
		Date:         r.optionalDate("date"),
		Currency:     r.optional("currency"),
		FeeType:      r.optional("feeType"),
		Revenue:      r.optionalDecimal("revenue"),
		Expense:      r.optionalDecimal("expense"),
		Net:          r.optionalDecimal("net"),
		Description:  r.optional("description"),
		FXRateToBase: r.optionalDecimal("fxRateToBase"),
	}
}

// SLBActivity is a securities lending or borrowing event.
type SLBActivity struct {
	AccountID        string
	AcctAlias        string
	Model            string
	Symbol           string
	Description      string
	Conid            string
	AssetCategory    AssetCategory
	Date             xtime.Date
	Type             string
	Quantity         decimal.NullDecimal
	CollateralAmount decimal.NullDecimal
	FeeRate          decimal.NullDecimal
	NetLendFee       decimal.NullDecimal
	Currency         string
	FXRateToBase     decimal.NullDecimal
}

func decodeSLBActivity(r *attributeReader) SLBActivity {
	return SLBActivity{
		AccountID:        r.required("accountId"),
		AcctAlias:        r.optional("acctAlias"),
		Model:            r.optional("model"),
		Symbol:           r.optional("symbol"),
		Description:      r.optional("description"),
		Conid:            r.optional("conid"),
		AssetCategory:    ParseAssetCategory(r.optional("assetCategory")),
		Date:             r.optionalDate("date"),
		Type:             r.optional("type"),
		Quantity:         r.optionalDecimal("quantity"),
		CollateralAmount: r.optionalDecimal("collateralAmount"),
		FeeRate:          r.optionalDecimal("feeRate"),
		NetLendFee:       r.optionalDecimal("netLendFee"),
		Currency:         r.optional("currency"),
		FXRateToBase:     r.optionalDecimal("fxRateToBase"),
	}
}

// SLBFee is a securities lending or borrowing fee.
type SLBFee struct {
	AccountID        string
	AcctAlias        string
	Model            string
	Symbol           string
	Description      string
	Conid            string
	AssetCategory    AssetCategory
	ValueDate        xtime.Date
	StartDate        xtime.Date
	Quantity         decimal.NullDecimal
	CollateralAmount decimal.NullDecimal
	FeeRate          decimal.NullDecimal
	Fee              decimal.NullDecimal
	CarryCharge      decimal.NullDecimal
	Currency         string
	FXRateToBase     decimal.NullDecimal
}

func decodeSLBFee(r *attributeReader) SLBFee {
	return SLBFee{
		AccountID:        r.required("accountId"),
		AcctAlias:        r.optional("acctAlias"),
		Model:            r.optional("model"),
		Symbol:           r.optional("symbol"),
		Description:      r.optional("description"),
		Conid:            r.optional("conid"),
		AssetCategory:    ParseAssetCategory(r.optional("assetCategory")),
		ValueDate:        r.optionalDate("valueDate"),
		StartDate:        r.optionalDate("startDate"),
		Quantity:         r.optionalDecimal("quantity"),
		CollateralAmount: r.optionalDecimal("collateralAmount"),
		FeeRate:          r.optionalDecimal("feeRate"),
		Fee:              r.optionalDecimal("fee"),
		CarryCharge:      r.optionalDecimal("carryCharge"),
		Currency:         r.optional("currency"),
		FXRateToBase:     r.optionalDecimal("fxRateToBase"),
	}
}

// HardToBorrowDetail is a borrow fee on a hard-to-borrow short position.
type HardToBorrowDetail struct {
	AccountID     string
	AcctAlias     string
	Model         string
	Symbol        string
	Description   string
	Conid         string
	AssetCategory AssetCategory
	ValueDate     xtime.Date
	Quantity      decimal.NullDecimal
	Price         decimal.NullDecimal
	Value         decimal.NullDecimal
	BorrowFeeRate decimal.NullDecimal
	BorrowFee     decimal.NullDecimal
	Currency      string
	FXRateToBase  decimal.NullDecimal
}

func decodeHardToBorrowDetail(r *attributeReader) HardToBorrowDetail {
	return HardToBorrowDetail{
		AccountID:     r.required("accountId"),
		AcctAlias:     r.optional("acctAlias"),
		Model:         r.optional("model"),
		Symbol:        r.optional("symbol"),
		Description:   r.optional("description"),
		Conid:         r.optional("conid"),
		AssetCategory: ParseAssetCategory(r.optional("assetCategory")),
		ValueDate:     r.optionalDate("valueDate"),
		Quantity:      r.optionalDecimal("quantity"),
		Price:         r.optionalDecimal("price"),
		Value:         r.optionalDecimal("value"),
		BorrowFeeRate: r.optionalDecimal("borrowFeeRate"),
		BorrowFee:     r.optionalDecimal("borrowFee"),
		Currency:      r.optional("currency"),
		FXRateToBase:  r.optionalDecimal("fxRateToBase"),
	}
}

// FxLot is an open currency lot.
type FxLot struct {
	AccountID          string
	AcctAlias          string
	Model              string
	AssetCategory      AssetCategory
	ReportDate         xtime.Date
	FunctionalCurrency string
	FXCurrency         string
	Quantity           decimal.NullDecimal
	CostPrice          decimal.NullDecimal
	CostBasis          decimal.NullDecimal
	ClosePrice         decimal.NullDecimal
	Value              decimal.NullDecimal
	UnrealizedPL       decimal.NullDecimal
	LevelOfDetail      LevelOfDetail
}

func decodeFxLot(r *attributeReader) FxLot {
	return FxLot{
		AccountID:          r.required("accountId"),
		AcctAlias:          r.optional("acctAlias"),
		Model:              r.optional("model"),
		AssetCategory:      ParseAssetCategory(r.optional("assetCategory")),
		ReportDate:         r.optionalDate("reportDate"),
		FunctionalCurrency: r.optional("functionalCurrency"),
		FXCurrency:         r.optional("fxCurrency"),
		Quantity:           r.optionalDecimal("quantity"),
		CostPrice:          r.optionalDecimal("costPrice"),
		CostBasis:          r.optionalDecimal("costBasis"),
		ClosePrice:         r.optionalDecimal("closePrice"),
		Value:              r.optionalDecimal("value"),
		UnrealizedPL:       r.optionalDecimal("unrealizedPL"),
		LevelOfDetail:      ParseLevelOfDetail(r.optional("levelOfDetail")),
	}
}

// UnsettledTransfer is a transfer that has not settled.
type UnsettledTransfer struct {
	AccountID     string
	AcctAlias     string
	Model         string
	Symbol        string
	Description   string
	Conid         string
	AssetCategory AssetCategory
	Direction     InOut
	Date          xtime.Date
	ExpectedDate  xtime.Date
	Quantity      decimal.NullDecimal
	Currency      string
	FXRateToBase  decimal.NullDecimal
}

func decodeUnsettledTransfer(r *attributeReader) UnsettledTransfer {
	return UnsettledTransfer{
		AccountID:     r.required("accountId"),
		AcctAlias:     r.optional("acctAlias"),
		Model:         r.optional("model"),
		Symbol:        r.optional("symbol"),
		Description:   r.optional("description"),
		Conid:         r.optional("conid"),
		AssetCategory: ParseAssetCategory(r.optional("assetCategory")),
		Direction:     ParseInOut(r.optional("direction")),
		Date:          r.optionalDate("date"),
		ExpectedDate:  r.optionalDate("expectedDate"),
		Quantity:      r.optionalDecimal("quantity"),
		Currency:      r.optional("currency"),
		FXRateToBase:  r.optionalDecimal("fxRateToBase"),
	}
}

// TradeTransfer is an execution transferred from or to another broker.
type TradeTransfer struct {
	AccountID         string
	AcctAlias         string
	Model             string
	Symbol            string
	Description       string
	Conid             string
	AssetCategory     AssetCategory
	TransferType      TransferType
	Direction         InOut
	DeliveryType      string
	Quantity          decimal.NullDecimal
	TransferPrice     decimal.NullDecimal
	Date              xtime.Date
	ExecutingBroker   string
	Currency          string
	FXRateToBase      decimal.NullDecimal
	DeliveredReceived DeliveredReceived
}

func decodeTradeTransfer(r *attributeReader) TradeTransfer {
	return TradeTransfer{
		AccountID:         r.required("accountId"),
		AcctAlias:         r.optional("acctAlias"),
		Model:             r.optional("model"),
		Symbol:            r.optional("symbol"),
		Description:       r.optional("description"),
		Conid:             r.optional("conid"),
		AssetCategory:     ParseAssetCategory(r.optional("assetCategory")),
		TransferType:      ParseTransferType(r.optional("transferType")),
		Direction:         ParseInOut(r.optional("direction")),
		DeliveryType:      r.optional("deliveryType"),
		Quantity:          r.optionalDecimal("quantity"),
		TransferPrice:     r.optionalDecimal("transferPrice"),
		Date:              r.optionalDate("date"),
		ExecutingBroker:   r.optional("executingBroker"),
		Currency:          r.optional("currency"),
		FXRateToBase:      r.optionalDecimal("fxRateToBase"),
		DeliveredReceived: ParseDeliveredReceived(r.optional("deliveredReceived")),
	}
}

// PriorPeriodPosition is a position as of the prior period.
type PriorPeriodPosition struct {
	AccountID     string
	AcctAlias     string
	Model         string
	Symbol        string
	Description   string
	Conid         string
	AssetCategory AssetCategory
	PriorMtmPnl   decimal.NullDecimal
	Date          xtime.Date
	Quantity      decimal.NullDecimal
	Price         decimal.NullDecimal
	Currency      string
}

func decodePriorPeriodPosition(r *attributeReader) PriorPeriodPosition {
	return PriorPeriodPosition{
		AccountID:     r.required("accountId"),
		AcctAlias:     r.optional("acctAlias"),
		Model:         r.optional("model"),
		Symbol:        r.optional("symbol"),
		Description:   r.optional("description"),
		Conid:         r.optional("conid"),
		AssetCategory: ParseAssetCategory(r.optional("assetCategory")),
		PriorMtmPnl:   r.optionalDecimal("priorMtmPnl"),
		Date:          r.optionalDate("date"),
		Quantity:      r.optionalDecimal("quantity"),
		Price:         r.optionalDecimal("price"),
		Currency:      r.optional("currency"),
	}
}

// TierInterestDetail is interest accrued on one balance tier.
type TierInterestDetail struct {
	AccountID            string
	AcctAlias            string
	Model                string
	Currency             string
	FXRateToBase         decimal.NullDecimal
	InterestType         string
	ReportDate           xtime.Date
	ValueDate            xtime.Date
	TierBreak            string
	BalanceThreshold     decimal.NullDecimal
	SecuritiesPrincipal  decimal.NullDecimal
	CommoditiesPrincipal decimal.NullDecimal
	IBUKLPrincipal       decimal.NullDecimal
	TotalPrincipal       decimal.NullDecimal
	Rate                 decimal.NullDecimal
	SecuritiesInterest   decimal.NullDecimal
	CommoditiesInterest  decimal.NullDecimal
	IBUKLInterest        decimal.NullDecimal
	TotalInterest        decimal.NullDecimal
	Code                 string
	FromAcct             string
	ToAcct               string
	MarginBalance        string
	Date                 xtime.Date
	FromDate             xtime.Date
	ToDate               xtime.Date
	Balance              decimal.NullDecimal
	InterestRate         decimal.NullDecimal
	Interest             decimal.NullDecimal
}

func decodeTierInterestDetail(r *attributeReader) TierInterestDetail {
	return TierInterestDetail{
		AccountID:            r.required("accountId"),
		AcctAlias:            r.optional("acctAlias"),
		Model:                r.optional("model"),
		Currency:             r.optional("currency"),
		FXRateToBase:         r.optionalDecimal("fxRateToBase"),
		InterestType:         r.optional("interestType"),
		ReportDate:           r.optionalDate("reportDate"),
		ValueDate:            r.optionalDate("valueDate"),
		TierBreak:            r.optional("tierBreak"),
		BalanceThreshold:     r.optionalDecimal("balanceThreshold"),
		SecuritiesPrincipal:  r.optionalDecimal("securitiesPrincipal"),
		CommoditiesPrincipal: r.optionalDecimal("commoditiesPrincipal"),
		IBUKLPrincipal:       r.optionalDecimal("ibuklPrincipal"),
		TotalPrincipal:       r.optionalDecimal("totalPrincipal"),
		Rate:                 r.optionalDecimal("rate"),
		SecuritiesInterest:   r.optionalDecimal("securitiesInterest"),
		CommoditiesInterest:  r.optionalDecimal("commoditiesInterest"),
		IBUKLInterest:        r.optionalDecimal("ibuklInterest"),
		TotalInterest:        r.optionalDecimal("totalInterest"),
		Code:                 r.optional("code"),
		FromAcct:             r.optional("fromAcct"),
		ToAcct:               r.optional("toAcct"),
		MarginBalance:        r.optional("marginBalance"),
		Date:                 r.optionalDate("date"),
		FromDate:             r.optionalDate("fromDate"),
		ToDate:               r.optionalDate("toDate"),
		Balance:              r.optionalDecimal("balance"),
		InterestRate:         r.optionalDecimal("interestRate"),
		Interest:             r.optionalDecimal("interest"),
	}
}

// DebitCardActivity is a debit card transaction.
type DebitCardActivity struct {
	AccountID       string
	AcctAlias       string
	Model           string
	Date            xtime.Date
	Merchant        string
	Category        string
	Status          string
	TransactionType string
	Amount          decimal.NullDecimal
	Currency        string
	FXRateToBase    decimal.NullDecimal
}

func decodeDebitCardActivity(r *attributeReader) DebitCardActivity {
	return DebitCardActivity{
		AccountID:       r.required("accountId"),
		AcctAlias:       r.optional("acctAlias"),
		Model:           r.optional("model"),
		Date:            r.optionalDate("date"),
		Merchant:        r.optional("merchant"),
		Category:        r.optional("category"),
		Status:          r.optional("status"),
		TransactionType: r.optional("transactionType"),
		Amount:          r.optionalDecimal("amount"),
		Currency:        r.optional("currency"),
		FXRateToBase:    r.optionalDecimal("fxRateToBase"),
	}
}

// SalesTax is a sales tax charge.
type SalesTax struct {
	AccountID    string
	AcctAlias    string
	Model        string
	Date         xtime.Date
	Symbol       string
	Description  string
	Conid        string
	TaxType      string
	TaxAmount    decimal.NullDecimal
	Proceeds     decimal.NullDecimal
	Currency     string
	FXRateToBase decimal.NullDecimal
}

func decodeSalesTax(r *attributeReader) SalesTax {
	return SalesTax{
		AccountID:    r.required("accountId"),
		AcctAlias:    r.optional("acctAlias"),
		Model:        r.optional("model"),
		Date:         r.optionalDate("date"),
		Symbol:       r.optional("symbol"),
		Description:  r.optional("description"),
		Conid:        r.optional("conid"),
		TaxType:      r.optional("taxType"),
		TaxAmount:    r.optionalDecimal("taxAmount"),
		Proceeds:     r.optionalDecimal("proceeds"),
		Currency:     r.optional("currency"),
		FXRateToBase: r.optionalDecimal("fxRateToBase"),
	}
}

// SymbolSummary totals the trades of one symbol. It appears inside the Trades
// section when the query requests symbol summaries.
type SymbolSummary struct {
	AccountID         string
	AcctAlias         string
	Model             string
	Symbol            string
	Description       string
	Conid             string
	AssetCategory     AssetCategory
	TotalBuyQuantity  decimal.NullDecimal
	TotalSellQuantity decimal.NullDecimal
	TotalBuyValue     decimal.NullDecimal
	TotalSellValue    decimal.NullDecimal
	TotalCommission   decimal.NullDecimal
	RealizedPnl       decimal.NullDecimal
	Currency          string
}

func decodeSymbolSummary(r *attributeReader) SymbolSummary {
	return SymbolSummary{
		AccountID:         r.required("accountId"),
		AcctAlias:         r.optional("acctAlias"),
		Model:             r.optional("model"),
		Symbol:            r.optional("symbol"),
		Description:       r.optional("description"),
		Conid:             r.optional("conid"),
		AssetCategory:     ParseAssetCategory(r.optional("assetCategory")),
		TotalBuyQuantity:  r.optionalDecimal("totalBuyQuantity"),
		TotalSellQuantity: r.optionalDecimal("totalSellQuantity"),
		TotalBuyValue:     r.optionalDecimal("totalBuyValue"),
		TotalSellValue:    r.optionalDecimal("totalSellValue"),
		TotalCommission:   r.optionalDecimal("totalCommission"),
		RealizedPnl:       r.optionalDecimal("realizedPnl"),
		Currency:          r.optional("currency"),
	}
}

// AssetSummary totals the trades of one asset category. It appears inside the
// Trades section when the query requests asset summaries.
type AssetSummary struct {
	AccountID         string
	AcctAlias         string
	Model             string
	AssetCategory     AssetCategory
	TotalBuyQuantity  decimal.NullDecimal
	TotalSellQuantity decimal.NullDecimal
	TotalBuyValue     decimal.NullDecimal
	TotalSellValue    decimal.NullDecimal
	TotalCommission   decimal.NullDecimal
	RealizedPnl       decimal.NullDecimal
	Currency          string
}

func decodeAssetSummary(r *attributeReader) AssetSummary {
	return AssetSummary{
		AccountID:         r.required("accountId"),
		AcctAlias:         r.optional("acctAlias"),
		Model:             r.optional("model"),
		AssetCategory:     ParseAssetCategory(r.optional("assetCategory")),
		TotalBuyQuantity:  r.optionalDecimal("totalBuyQuantity"),
		TotalSellQuantity: r.optionalDecimal("totalSellQuantity"),
		TotalBuyValue:     r.optionalDecimal("totalBuyValue"),
		TotalSellValue:    r.optionalDecimal("totalSellValue"),
		TotalCommission:   r.optionalDecimal("totalCommission"),
		RealizedPnl:       r.optionalDecimal("realizedPnl"),
		Currency:          r.optional("currency"),
	}
}

// Order is an order row from the Trades section.
type Order struct {
	AccountID     string
	AcctAlias     string
	Model         string
	OrderID       string
	Symbol        string
	Description   string
	Conid         string
	AssetCategory AssetCategory
	OrderTime     time.Time
	OrderType     OrderType
	// Side uses the BUY and SELL tokens of BuySell.
	Side         BuySell
	TIF          string
	OrderQty     decimal.NullDecimal
	LimitPrice   decimal.NullDecimal
	StopPrice    decimal.NullDecimal
	FilledQty    decimal.NullDecimal
	AvgPrice     decimal.NullDecimal
	RemainingQty decimal.NullDecimal
	Status       string
	Currency     string
}

func decodeOrder(r *attributeReader) Order {
	return Order{
		AccountID:     r.required("accountId"),
		AcctAlias:     r.optional("acctAlias"),
		Model:         r.optional("model"),
		OrderID:       r.optional("orderID"),
		Symbol:        r.optional("symbol"),
		Description:   r.optional("description"),
		Conid:         r.optional("conid"),
		AssetCategory: ParseAssetCategory(r.optional("assetCategory")),
		OrderTime:     r.optionalDateTime("orderTime"),
		OrderType:     ParseOrderType(r.optional("orderType")),
		Side:          ParseBuySell(r.optional("side")),
		TIF:           r.optional("tif"),
		OrderQty:      r.optionalDecimal("orderQty"),
		LimitPrice:    r.optionalDecimal("limitPrice"),
		StopPrice:     r.optionalDecimal("stopPrice"),
		FilledQty:     r.optionalDecimal("filledQty"),
		AvgPrice:      r.optionalDecimal("avgPrice"),
		RemainingQty:  r.optionalDecimal("remainingQty"),
		Status:        r.optional("status"),
		Currency:      r.optional("currency"),
	}
}
