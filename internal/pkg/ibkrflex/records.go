// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibkrflex

import (
	"time"

	"github.com/bufdev/ibflex/internal/standard/xtime"
	"github.com/shopspring/decimal"
)

// Trade is a single execution from the Trades section.
//
// The same shape is used for the WashSale and Lot elements that IBKR
// interleaves with Trade elements, and for the Trade elements of a trade
// confirmation statement.
type Trade struct {
	AccountID     string
	TransactionID string
	// Conid is the IBKR contract identifier.
	Conid          string
	Symbol         string
	Description    string
	AssetCategory  AssetCategory
	CUSIP          string
	ISIN           string
	FIGI           string
	SecurityID     string
	SecurityIDType SecurityIDType
	// Multiplier, Strike, Expiry, PutCall, and the underlying fields are only
	// set for derivatives. See Derivative.
	Multiplier         decimal.NullDecimal
	Strike             decimal.NullDecimal
	Expiry             xtime.Date
	PutCall            PutCall
	UnderlyingConid    string
	UnderlyingSymbol   string
	TradeDate          xtime.Date
	SettleDateTarget   xtime.Date
	BuySell            BuySell
	OpenCloseIndicator OpenClose
	TransactionType    TradeType
	// Quantity is negative for sells.
	Quantity              decimal.NullDecimal
	TradePrice            decimal.NullDecimal
	Proceeds              decimal.NullDecimal
	Cost                  decimal.NullDecimal
	IBCommission          decimal.NullDecimal
	Taxes                 decimal.NullDecimal
	NetCash               decimal.NullDecimal
	FifoPnlRealized       decimal.NullDecimal
	MtmPnl                decimal.NullDecimal
	FXPnl                 decimal.NullDecimal
	Currency              string
	FXRateToBase          decimal.NullDecimal
	OrigTradeDate         xtime.Date
	OrigTradePrice        decimal.NullDecimal
	OrigTradeID           string
	HoldingPeriodDateTime time.Time
	OpenDateTime          time.Time
	WhenReopened          time.Time
	// Notes holds the transaction codes from the notes attribute, in order.
	Notes                     []TransactionCode
	IBOrderID                 string
	ExecID                    string
	TradeID                   string
	OrigTransactionID         string
	OrigOrderID               string
	DateTime                  time.Time
	WhenRealized              time.Time
	OrderTime                 time.Time
	OrderType                 OrderType
	BrokerageOrderID          string
	OrderReference            string
	ExchOrderID               string
	ExtExecID                 string
	IBExecID                  string
	Issuer                    string
	IssuerCountryCode         string
	SubCategory               SubCategory
	ListingExchange           string
	UnderlyingListingExchange string
	UnderlyingSecurityID      string
	TraderID                  string
	IsAPIOrder                *bool
	VolatilityOrderLink       string
	ClearingFirmID            string
	LevelOfDetail             LevelOfDetail
	Amount                    decimal.NullDecimal
	TradeMoney                decimal.NullDecimal
	ClosePrice                decimal.NullDecimal
	ChangeInPrice             decimal.NullDecimal
	ChangeInQuantity          decimal.NullDecimal
	IBCommissionCurrency      string
	RelatedTradeID            string
	RelatedTransactionID      string
	AccruedInt                decimal.NullDecimal
	PrincipalAdjustFactor     decimal.NullDecimal
	SerialNumber              string
	DeliveryType              string
	CommodityType             string
	Fineness                  decimal.NullDecimal
	Weight                    string
	ReportDate                xtime.Date
	Exchange                  string
	Model                     string
	AcctAlias                 string
	RTN                       string
	PositionActionID          string
	InitialInvestment         decimal.NullDecimal
}

func decodeTrade(r *attributeReader) Trade {
	return Trade{
		AccountID:                 r.required("accountId"),
		TransactionID:             r.optional("transactionID"),
		Conid:                     r.required("conid"),
		Symbol:                    r.required("symbol"),
		Description:               r.optional("description"),
		AssetCategory:             ParseAssetCategory(r.required("assetCategory")),
		CUSIP:                     r.optional("cusip"),
		ISIN:                      r.optional("isin"),
		FIGI:                      r.optional("figi"),
		SecurityID:                r.optional("securityID"),
		SecurityIDType:            ParseSecurityIDType(r.optional("securityIDType")),
		Multiplier:                r.optionalDecimal("multiplier"),
		Strike:                    r.optionalDecimal("strike"),
		Expiry:                    r.optionalDate("expiry"),
		PutCall:                   ParsePutCall(r.optional("putCall")),
		UnderlyingConid:           r.optional("underlyingConid"),
		UnderlyingSymbol:          r.optional("underlyingSymbol"),
		TradeDate:                 r.optionalDate("tradeDate"),
		SettleDateTarget:          r.optionalDate("settleDateTarget"),
		BuySell:                   ParseBuySell(r.optional("buySell")),
		OpenCloseIndicator:        ParseOpenClose(r.optional("openCloseIndicator")),
		TransactionType:           ParseTradeType(r.optional("transactionType")),
		Quantity:                  r.optionalDecimal("quantity"),
		TradePrice:                r.optionalDecimal("tradePrice"),
		Proceeds:                  r.optionalDecimal("proceeds"),
		Cost:                      r.optionalDecimal("cost"),
		IBCommission:              r.optionalDecimal("ibCommission"),
		Taxes:                     r.optionalDecimal("taxes"),
		NetCash:                   r.optionalDecimal("netCash"),
		FifoPnlRealized:           r.optionalDecimal("fifoPnlRealized"),
		MtmPnl:                    r.optionalDecimal("mtmPnl"),
		FXPnl:                     r.optionalDecimal("fxPnl"),
		Currency:                  r.required("currency"),
		FXRateToBase:              r.optionalDecimal("fxRateToBase"),
		OrigTradeDate:             r.optionalDate("origTradeDate"),
		OrigTradePrice:            r.optionalDecimal("origTradePrice"),
		OrigTradeID:               r.optional("origTradeID"),
		HoldingPeriodDateTime:     r.optionalDateTime("holdingPeriodDateTime"),
		OpenDateTime:              r.optionalDateTime("openDateTime"),
		WhenReopened:              r.optionalDateTime("whenReopened"),
		Notes:                     ParseTransactionCodes(r.optional("notes")),
		IBOrderID:                 r.optional("ibOrderID"),
		ExecID:                    r.optional("execID"),
		TradeID:                   r.optional("tradeID"),
		OrigTransactionID:         r.optional("origTransactionID"),
		OrigOrderID:               r.optional("origOrderID"),
		DateTime:                  r.optionalDateTime("dateTime"),
		WhenRealized:              r.optionalDateTime("whenRealized"),
		OrderTime:                 r.optionalDateTime("orderTime"),
		OrderType:                 ParseOrderType(r.optional("orderType")),
		BrokerageOrderID:          r.optional("brokerageOrderID"),
		OrderReference:            r.optional("orderReference"),
		ExchOrderID:               r.optional("exchOrderId"),
		ExtExecID:                 r.optional("extExecID"),
		IBExecID:                  r.optional("ibExecID"),
		Issuer:                    r.optional("issuer"),
		IssuerCountryCode:         r.optional("issuerCountryCode"),
		SubCategory:               ParseSubCategory(r.optional("subCategory")),
		ListingExchange:           r.optional("listingExchange"),
		UnderlyingListingExchange: r.optional("underlyingListingExchange"),
		UnderlyingSecurityID:      r.optional("underlyingSecurityID"),
		TraderID:                  r.optional("traderID"),
		IsAPIOrder:                r.optionalBool("isAPIOrder"),
		VolatilityOrderLink:       r.optional("volatilityOrderLink"),
		ClearingFirmID:            r.optional("clearingFirmID"),
		LevelOfDetail:             ParseLevelOfDetail(r.optional("levelOfDetail")),
		Amount:                    r.optionalDecimal("amount"),
		TradeMoney:                r.optionalDecimal("tradeMoney"),
		ClosePrice:                r.optionalDecimal("closePrice"),
		ChangeInPrice:             r.optionalDecimal("changeInPrice"),
		ChangeInQuantity:          r.optionalDecimal("changeInQuantity"),
		IBCommissionCurrency:      r.optional("ibCommissionCurrency"),
		RelatedTradeID:            r.optional("relatedTradeID"),
		RelatedTransactionID:      r.optional("relatedTransactionID"),
		AccruedInt:                r.optionalDecimal("accruedInt"),
		PrincipalAdjustFactor:     r.optionalDecimal("principalAdjustFactor"),
		SerialNumber:              r.optional("serialNumber"),
		DeliveryType:              r.optional("deliveryType"),
		CommodityType:             r.optional("commodityType"),
		Fineness:                  r.optionalDecimal("fineness"),
		Weight:                    r.optional("weight"),
		ReportDate:                r.optionalDate("reportDate"),
		Exchange:                  r.optional("exchange"),
		Model:                     r.optional("model"),
		AcctAlias:                 r.optional("acctAlias"),
		RTN:                       r.optional("rtn"),
		PositionActionID:          r.optional("positionActionID"),
		InitialInvestment:         r.optionalDecimal("initialInvestment"),
	}
}

// Derivative returns the derivative description of the trade.
func (t Trade) Derivative() Derivative {
	return newDerivative(derivativeFields{
		assetCategory:    t.AssetCategory,
		strike:           t.Strike,
		expiry:           t.Expiry,
		putCall:          t.PutCall,
		underlyingSymbol: t.UnderlyingSymbol,
		underlyingConid:  t.UnderlyingConid,
	})
}

// Position is an open position from the OpenPositions section.
type Position struct {
	AccountID        string
	Conid            string
	Symbol           string
	Description      string
	AssetCategory    AssetCategory
	CUSIP            string
	ISIN             string
	FIGI             string
	SecurityID       string
	SecurityIDType   SecurityIDType
	Multiplier       decimal.NullDecimal
	Strike           decimal.NullDecimal
	Expiry           xtime.Date
	PutCall          PutCall
	UnderlyingConid  string
	UnderlyingSymbol string
	// Position is the quantity held. IBKR names this attribute "position".
	Position                  decimal.Decimal
	MarkPrice                 decimal.Decimal
	PositionValue             decimal.Decimal
	Side                      LongShort
	OpenPrice                 decimal.NullDecimal
	CostBasisPrice            decimal.NullDecimal
	CostBasisMoney            decimal.NullDecimal
	FifoPnlUnrealized         decimal.NullDecimal
	PercentOfNAV              decimal.NullDecimal
	Currency                  string
	FXRateToBase              decimal.NullDecimal
	ReportDate                xtime.Date
	HoldingPeriodDateTime     time.Time
	OpenDateTime              time.Time
	OriginatingTransactionID  string
	Code                      string
	OriginatingOrderID        string
	Issuer                    string
	IssuerCountryCode         string
	SubCategory               SubCategory
	ListingExchange           string
	UnderlyingListingExchange string
	UnderlyingSecurityID      string
	AccruedInt                decimal.NullDecimal
	PrincipalAdjustFactor     decimal.NullDecimal
	SerialNumber              string
	DeliveryType              string
	CommodityType             string
	Fineness                  decimal.NullDecimal
	Weight                    string
	LevelOfDetail             LevelOfDetail
	Model                     string
	AcctAlias                 string
	VestingDate               xtime.Date
}

func decodePosition(r *attributeReader) Position {
	return Position{
		AccountID:                 r.required("accountId"),
		Conid:                     r.required("conid"),
		Symbol:                    r.required("symbol"),
		Description:               r.optional("description"),
		AssetCategory:             ParseAssetCategory(r.required("assetCategory")),
		CUSIP:                     r.optional("cusip"),
		ISIN:                      r.optional("isin"),
		FIGI:                      r.optional("figi"),
		SecurityID:                r.optional("securityID"),
		SecurityIDType:            ParseSecurityIDType(r.optional("securityIDType")),
		Multiplier:                r.optionalDecimal("multiplier"),
		Strike:                    r.optionalDecimal("strike"),
		Expiry:                    r.optionalDate("expiry"),
		PutCall:                   ParsePutCall(r.optional("putCall")),
		UnderlyingConid:           r.optional("underlyingConid"),
		UnderlyingSymbol:          r.optional("underlyingSymbol"),
		Position:                  r.requiredDecimal("position"),
		MarkPrice:                 r.requiredDecimal("markPrice"),
		PositionValue:             r.requiredDecimal("positionValue"),
		Side:                      ParseLongShort(r.optional("side")),
		OpenPrice:                 r.optionalDecimal("openPrice"),
		CostBasisPrice:            r.optionalDecimal("costBasisPrice"),
		CostBasisMoney:            r.optionalDecimal("costBasisMoney"),
		FifoPnlUnrealized:         r.optionalDecimal("fifoPnlUnrealized"),
		PercentOfNAV:              r.optionalDecimal("percentOfNAV"),
		Currency:                  r.required("currency"),
		FXRateToBase:              r.optionalDecimal("fxRateToBase"),
		ReportDate:                r.requiredDate("reportDate"),
		HoldingPeriodDateTime:     r.optionalDateTime("holdingPeriodDateTime"),
		OpenDateTime:              r.optionalDateTime("openDateTime"),
		OriginatingTransactionID:  r.optional("originatingTransactionID"),
		Code:                      r.optional("code"),
		OriginatingOrderID:        r.optional("originatingOrderID"),
		Issuer:                    r.optional("issuer"),
		IssuerCountryCode:         r.optional("issuerCountryCode"),
		SubCategory:               ParseSubCategory(r.optional("subCategory")),
		ListingExchange:           r.optional("listingExchange"),
		UnderlyingListingExchange: r.optional("underlyingListingExchange"),
		UnderlyingSecurityID:      r.optional("underlyingSecurityID"),
		AccruedInt:                r.optionalDecimal("accruedInt"),
		PrincipalAdjustFactor:     r.optionalDecimal("principalAdjustFactor"),
		SerialNumber:              r.optional("serialNumber"),
		DeliveryType:              r.optional("deliveryType"),
		CommodityType:             r.optional("commodityType"),
		Fineness:                  r.optionalDecimal("fineness"),
		Weight:                    r.optional("weight"),
		LevelOfDetail:             ParseLevelOfDetail(r.optional("levelOfDetail")),
		Model:                     r.optional("model"),
		AcctAlias:                 r.optional("acctAlias"),
		VestingDate:               r.optionalDate("vestingDate"),
	}
}

// Derivative returns the derivative description of the position.
func (p Position) Derivative() Derivative {
	return newDerivative(derivativeFields{
		assetCategory:    p.AssetCategory,
		strike:           p.Strike,
		expiry:           p.Expiry,
		putCall:          p.PutCall,
		underlyingSymbol: p.UnderlyingSymbol,
		underlyingConid:  p.UnderlyingConid,
	})
}

// CashTransaction is a cash movement: a deposit, withdrawal, dividend,
// withholding tax, interest, or fee.
type CashTransaction struct {
	AccountID     string
	TransactionID string
	Type          CashTransactionType
	Description   string
	// Amount is signed: credits are positive and debits negative.
	Amount                    decimal.Decimal
	Currency                  string
	FXRateToBase              decimal.NullDecimal
	Date                      xtime.Date
	SettleDate                xtime.Date
	ExDate                    xtime.Date
	Conid                     string
	Symbol                    string
	AssetCategory             AssetCategory
	CUSIP                     string
	ISIN                      string
	FIGI                      string
	SecurityID                string
	SecurityIDType            SecurityIDType
	Multiplier                decimal.NullDecimal
	Strike                    decimal.NullDecimal
	Expiry                    xtime.Date
	PutCall                   PutCall
	UnderlyingConid           string
	UnderlyingSymbol          string
	Code                      string
	DateTime                  time.Time
	ReportDate                xtime.Date
	AvailableForTradingDate   xtime.Date
	ActionID                  string
	TradeID                   string
	ClientReference           string
	Issuer                    string
	IssuerCountryCode         string
	SubCategory               SubCategory
	ListingExchange           string
	UnderlyingListingExchange string
	UnderlyingSecurityID      string
	PrincipalAdjustFactor     decimal.NullDecimal
	SerialNumber              string
	DeliveryType              string
	CommodityType             string
	Fineness                  decimal.NullDecimal
	Weight                    string
	LevelOfDetail             LevelOfDetail
	Model                     string
	AcctAlias                 string
}

func decodeCashTransaction(r *attributeReader) CashTransaction {
	return CashTransaction{
		AccountID:                 r.required("accountId"),
		TransactionID:             r.optional("transactionID"),
		Type:                      ParseCashTransactionType(r.optional("type")),
		Description:               r.optional("description"),
		Amount:                    r.requiredDecimal("amount"),
		Currency:                  r.required("currency"),
		FXRateToBase:              r.optionalDecimal("fxRateToBase"),
		Date:                      r.optionalDate("date"),
		SettleDate:                r.optionalDate("settleDate"),
		ExDate:                    r.optionalDate("exDate"),
		Conid:                     r.optional("conid"),
		Symbol:                    r.optional("symbol"),
		AssetCategory:             ParseAssetCategory(r.optional("assetCategory")),
		CUSIP:                     r.optional("cusip"),
		ISIN:                      r.optional("isin"),
		FIGI:                      r.optional("figi"),
		SecurityID:                r.optional("securityID"),
		SecurityIDType:            ParseSecurityIDType(r.optional("securityIDType")),
		Multiplier:                r.optionalDecimal("multiplier"),
		Strike:                    r.optionalDecimal("strike"),
		Expiry:                    r.optionalDate("expiry"),
		PutCall:                   ParsePutCall(r.optional("putCall")),
		UnderlyingConid:           r.optional("underlyingConid"),
		UnderlyingSymbol:          r.optional("underlyingSymbol"),
		Code:                      r.optional("code"),
		DateTime:                  r.optionalDateTime("dateTime"),
		ReportDate:                r.optionalDate("reportDate"),
		AvailableForTradingDate:   r.optionalDate("availableForTradingDate"),
		ActionID:                  r.optional("actionID"),
		TradeID:                   r.optional("tradeID"),
		ClientReference:           r.optional("clientReference"),
		Issuer:                    r.optional("issuer"),
		IssuerCountryCode:         r.optional("issuerCountryCode"),
		SubCategory:               ParseSubCategory(r.optional("subCategory")),
		ListingExchange:           r.optional("listingExchange"),
		UnderlyingListingExchange: r.optional("underlyingListingExchange"),
		UnderlyingSecurityID:      r.optional("underlyingSecurityID"),
		PrincipalAdjustFactor:     r.optionalDecimal("principalAdjustFactor"),
		SerialNumber:              r.optional("serialNumber"),
		DeliveryType:              r.optional("deliveryType"),
		CommodityType:             r.optional("commodityType"),
		Fineness:                  r.optionalDecimal("fineness"),
		Weight:                    r.optional("weight"),
		LevelOfDetail:             ParseLevelOfDetail(r.optional("levelOfDetail")),
		Model:                     r.optional("model"),
		AcctAlias:                 r.optional("acctAlias"),
	}
}

// Derivative returns the derivative description of the cash transaction.
func (c CashTransaction) Derivative() Derivative {
	return newDerivative(derivativeFields{
		assetCategory:    c.AssetCategory,
		strike:           c.Strike,
		expiry:           c.Expiry,
		putCall:          c.PutCall,
		underlyingSymbol: c.UnderlyingSymbol,
		underlyingConid:  c.UnderlyingConid,
	})
}

// CorporateAction is a corporate event affecting a position, such as a split or merger.
type CorporateAction struct {
	AccountID                 string
	TransactionID             string
	Type                      CorporateActionType
	Description               string
	Date                      xtime.Date
	ReportDate                xtime.Date
	ExDate                    xtime.Date
	PayDate                   xtime.Date
	RecordDate                xtime.Date
	Conid                     string
	Symbol                    string
	AssetCategory             AssetCategory
	CUSIP                     string
	ISIN                      string
	FIGI                      string
	SecurityID                string
	SecurityIDType            SecurityIDType
	Multiplier                decimal.NullDecimal
	Strike                    decimal.NullDecimal
	Expiry                    xtime.Date
	PutCall                   PutCall
	UnderlyingConid           string
	UnderlyingSymbol          string
	Quantity                  decimal.NullDecimal
	Amount                    decimal.NullDecimal
	Proceeds                  decimal.NullDecimal
	Value                     decimal.NullDecimal
	Cost                      decimal.NullDecimal
	FifoPnlRealized           decimal.NullDecimal
	MtmPnl                    decimal.NullDecimal
	Currency                  string
	FXRateToBase              decimal.NullDecimal
	Code                      string
	ActionID                  string
	DateTime                  time.Time
	Issuer                    string
	IssuerCountryCode         string
	SubCategory               SubCategory
	ListingExchange           string
	UnderlyingListingExchange string
	UnderlyingSecurityID      string
	AccruedInt                decimal.NullDecimal
	PrincipalAdjustFactor     decimal.NullDecimal
	SerialNumber              string
	DeliveryType              string
	CommodityType             string
	Fineness                  decimal.NullDecimal
	Weight                    string
	LevelOfDetail             LevelOfDetail
	Model                     string
	AcctAlias                 string
}

func decodeCorporateAction(r *attributeReader) CorporateAction {
	return CorporateAction{
		AccountID:                 r.required("accountId"),
		TransactionID:             r.optional("transactionID"),
		Type:                      ParseCorporateActionType(r.optional("type")),
		Description:               r.optional("description"),
		Date:                      r.optionalDate("date"),
		ReportDate:                r.requiredDate("reportDate"),
		ExDate:                    r.optionalDate("exDate"),
		PayDate:                   r.optionalDate("payDate"),
		RecordDate:                r.optionalDate("recordDate"),
		Conid:                     r.required("conid"),
		Symbol:                    r.required("symbol"),
		AssetCategory:             ParseAssetCategory(r.optional("assetCategory")),
		CUSIP:                     r.optional("cusip"),
		ISIN:                      r.optional("isin"),
		FIGI:                      r.optional("figi"),
		SecurityID:                r.optional("securityID"),
		SecurityIDType:            ParseSecurityIDType(r.optional("securityIDType")),
		Multiplier:                r.optionalDecimal("multiplier"),
		Strike:                    r.optionalDecimal("strike"),
		Expiry:                    r.optionalDate("expiry"),
		PutCall:                   ParsePutCall(r.optional("putCall")),
		UnderlyingConid:           r.optional("underlyingConid"),
		UnderlyingSymbol:          r.optional("underlyingSymbol"),
		Quantity:                  r.optionalDecimal("quantity"),
		Amount:                    r.optionalDecimal("amount"),
		Proceeds:                  r.optionalDecimal("proceeds"),
		Value:                     r.optionalDecimal("value"),
		Cost:                      r.optionalDecimal("cost"),
		FifoPnlRealized:           r.optionalDecimal("fifoPnlRealized"),
		MtmPnl:                    r.optionalDecimal("mtmPnl"),
		Currency:                  r.optional("currency"),
		FXRateToBase:              r.optionalDecimal("fxRateToBase"),
		Code:                      r.optional("code"),
		ActionID:                  r.optional("actionID"),
		DateTime:                  r.optionalDateTime("dateTime"),
		Issuer:                    r.optional("issuer"),
		IssuerCountryCode:         r.optional("issuerCountryCode"),
		SubCategory:               ParseSubCategory(r.optional("subCategory")),
		ListingExchange:           r.optional("listingExchange"),
		UnderlyingListingExchange: r.optional("underlyingListingExchange"),
		UnderlyingSecurityID:      r.optional("underlyingSecurityID"),
		AccruedInt:                r.optionalDecimal("accruedInt"),
		PrincipalAdjustFactor:     r.optionalDecimal("principalAdjustFactor"),
		SerialNumber:              r.optional("serialNumber"),
		DeliveryType:              r.optional("deliveryType"),
		CommodityType:             r.optional("commodityType"),
		Fineness:                  r.optionalDecimal("fineness"),
		Weight:                    r.optional("weight"),
		LevelOfDetail:             ParseLevelOfDetail(r.optional("levelOfDetail")),
		Model:                     r.optional("model"),
		AcctAlias:                 r.optional("acctAlias"),
	}
}

// Derivative returns the derivative description of the corporate action.
func (c CorporateAction) Derivative() Derivative {
	return newDerivative(derivativeFields{
		assetCategory:    c.AssetCategory,
		strike:           c.Strike,
		expiry:           c.Expiry,
		putCall:          c.PutCall,
		underlyingSymbol: c.UnderlyingSymbol,
		underlyingConid:  c.UnderlyingConid,
	})
}

// SecurityInfo is reference data for one security from the SecuritiesInfo section.
type SecurityInfo struct {
	AssetCategory    AssetCategory
	Symbol           string
	Description      string
	Conid            string
	SecurityID       string
	SecurityIDType   SecurityIDType
	CUSIP            string
	ISIN             string
	FIGI             string
	SEDOL            string
	Multiplier       decimal.NullDecimal
	Strike           decimal.NullDecimal
	Expiry           xtime.Date
	PutCall          PutCall
	UnderlyingConid  string
	UnderlyingSymbol string
	// Maturity is set for bonds and bills.
	Maturity                  xtime.Date
	PrincipalAdjustFactor     decimal.NullDecimal
	Currency                  string
	ListingExchange           string
	UnderlyingSecurityID      string
	UnderlyingListingExchange string
	Issuer                    string
	IssuerCountryCode         string
	SubCategory               SubCategory
	DeliveryMonth             string
	SerialNumber              string
	DeliveryType              string
	CommodityType             string
	Fineness                  decimal.NullDecimal
	Weight                    string
	Code                      string
}

func decodeSecurityInfo(r *attributeReader) SecurityInfo {
	return SecurityInfo{
		AssetCategory:             ParseAssetCategory(r.required("assetCategory")),
		Symbol:                    r.required("symbol"),
		Description:               r.optional("description"),
		Conid:                     r.required("conid"),
		SecurityID:                r.optional("securityID"),
		SecurityIDType:            ParseSecurityIDType(r.optional("securityIDType")),
		CUSIP:                     r.optional("cusip"),
		ISIN:                      r.optional("isin"),
		FIGI:                      r.optional("figi"),
		SEDOL:                     r.optional("sedol"),
		Multiplier:                r.optionalDecimal("multiplier"),
		Strike:                    r.optionalDecimal("strike"),
		Expiry:                    r.optionalDate("expiry"),
		PutCall:                   ParsePutCall(r.optional("putCall")),
		UnderlyingConid:           r.optional("underlyingConid"),
		UnderlyingSymbol:          r.optional("underlyingSymbol"),
		Maturity:                  r.optionalDate("maturity"),
		PrincipalAdjustFactor:     r.optionalDecimal("principalAdjustFactor"),
		Currency:                  r.optional("currency"),
		ListingExchange:           r.optional("listingExchange"),
		UnderlyingSecurityID:      r.optional("underlyingSecurityID"),
		UnderlyingListingExchange: r.optional("underlyingListingExchange"),
		Issuer:                    r.optional("issuer"),
		IssuerCountryCode:         r.optional("issuerCountryCode"),
		SubCategory:               ParseSubCategory(r.optional("subCategory")),
		DeliveryMonth:             r.optional("deliveryMonth"),
		SerialNumber:              r.optional("serialNumber"),
		DeliveryType:              r.optional("deliveryType"),
		CommodityType:             r.optional("commodityType"),
		Fineness:                  r.optionalDecimal("fineness"),
		Weight:                    r.optional("weight"),
		Code:                      r.optional("code"),
	}
}

// Derivative returns the derivative description of the security.
func (s SecurityInfo) Derivative() Derivative {
	return newDerivative(derivativeFields{
		assetCategory:    s.AssetCategory,
		strike:           s.Strike,
		expiry:           s.Expiry,
		putCall:          s.PutCall,
		underlyingSymbol: s.UnderlyingSymbol,
		underlyingConid:  s.UnderlyingConid,
	})
}

// ConversionRate is the rate from one currency to another on a report date.
type ConversionRate struct {
	ReportDate   xtime.Date
	FromCurrency string
	ToCurrency   string
	Rate         decimal.Decimal
}

func decodeConversionRate(r *attributeReader) ConversionRate {
	return ConversionRate{
		ReportDate:   r.requiredDate("reportDate"),
		FromCurrency: r.required("fromCurrency"),
		ToCurrency:   r.required("toCurrency"),
		Rate:         r.requiredDecimal("rate"),
	}
}
