// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibkrflex

import "strings"

// transactionCodeDelimiter joins multiple codes in a single notes attribute, as in "C;W".
const transactionCodeDelimiter = ";"

// Every enumerated type below is a string whose constants are the exact tokens
// IBKR writes. The empty string means the attribute was absent, and the
// Unknown constant stands in for any token outside the known vocabulary.

// AssetCategory is the asset class of an instrument.
type AssetCategory string

const (
	AssetCategoryStock         AssetCategory = "STK"
	AssetCategoryOption        AssetCategory = "OPT"
	AssetCategoryFuture        AssetCategory = "FUT"
	AssetCategoryFutureOption  AssetCategory = "FOP"
	AssetCategoryCash          AssetCategory = "CASH"
	AssetCategoryBond          AssetCategory = "BOND"
	AssetCategoryBill          AssetCategory = "BILL"
	AssetCategoryCommodity     AssetCategory = "CMDTY"
	AssetCategoryCFD           AssetCategory = "CFD"
	AssetCategoryForexCFD      AssetCategory = "FXCFD"
	AssetCategoryWarrant       AssetCategory = "WAR"
	AssetCategoryFund          AssetCategory = "FUND"
	AssetCategoryStructured    AssetCategory = "IOPT"
	AssetCategoryCombo         AssetCategory = "BAG"
	AssetCategoryCrypto        AssetCategory = "CRYPTO"
	AssetCategoryMetal         AssetCategory = "METAL"
	AssetCategoryEFP           AssetCategory = "EFP"
	AssetCategoryEventContract AssetCategory = "EC"
	AssetCategoryIndex         AssetCategory = "IND"
	AssetCategoryUnknown       AssetCategory = "Unknown"
)

// ParseAssetCategory decodes an assetCategory token.
func ParseAssetCategory(value string) AssetCategory {
	return parseEnum(
		value,
		AssetCategoryUnknown,
		AssetCategoryStock,
		AssetCategoryOption,
		AssetCategoryFuture,
		AssetCategoryFutureOption,
		AssetCategoryCash,
		AssetCategoryBond,
		AssetCategoryBill,
		AssetCategoryCommodity,
		AssetCategoryCFD,
		AssetCategoryForexCFD,
		AssetCategoryWarrant,
		AssetCategoryFund,
		AssetCategoryStructured,
		AssetCategoryCombo,
		AssetCategoryCrypto,
		AssetCategoryMetal,
		AssetCategoryEFP,
		AssetCategoryEventContract,
		AssetCategoryIndex,
	)
}

// BuySell is the side of a trade. The cancelled variants mark trade cancellations.
type BuySell string

const (
	BuySellBuy           BuySell = "BUY"
	BuySellSell          BuySell = "SELL"
	BuySellCancelledBuy  BuySell = "BUY (Ca.)"
	BuySellCancelledSell BuySell = "SELL (Ca.)"
	BuySellUnknown       BuySell = "Unknown"
)

// ParseBuySell decodes a buySell token.
func ParseBuySell(value string) BuySell {
	return parseEnum(value, BuySellUnknown, BuySellBuy, BuySellSell, BuySellCancelledBuy, BuySellCancelledSell)
}

// OpenClose says whether a trade opens or closes a position.
type OpenClose string

const (
	OpenCloseOpen         OpenClose = "O"
	OpenCloseClose        OpenClose = "C"
	OpenCloseCloseAndOpen OpenClose = "C;O"
	OpenCloseUnknown      OpenClose = "Unknown"
)

// ParseOpenClose decodes an openCloseIndicator token.
func ParseOpenClose(value string) OpenClose {
	return parseEnum(value, OpenCloseUnknown, OpenCloseOpen, OpenCloseClose, OpenCloseCloseAndOpen)
}

// OrderType is the order type of an execution.
type OrderType string

const (
	OrderTypeMarket          OrderType = "MKT"
	OrderTypeLimit           OrderType = "LMT"
	OrderTypeStop            OrderType = "STP"
	OrderTypeStopLimit       OrderType = "STP LMT"
	OrderTypeMarketOnClose   OrderType = "MOC"
	OrderTypeLimitOnClose    OrderType = "LOC"
	OrderTypeMarketIfTouched OrderType = "MIT"
	OrderTypeLimitIfTouched  OrderType = "LIT"
	OrderTypeTrailingStop    OrderType = "TRAIL"
	OrderTypeTrailingLimit   OrderType = "TRAIL LMT"
	OrderTypeMidPrice        OrderType = "MIDPX"
	OrderTypeRelative        OrderType = "REL"
	OrderTypeMultiple        OrderType = "MULTIPLE"
	OrderTypeUnknown         OrderType = "Unknown"
)

// ParseOrderType decodes an orderType token.
func ParseOrderType(value string) OrderType {
	return parseEnum(
		value,
		OrderTypeUnknown,
		OrderTypeMarket,
		OrderTypeLimit,
		OrderTypeStop,
		OrderTypeStopLimit,
		OrderTypeMarketOnClose,
		OrderTypeLimitOnClose,
		OrderTypeMarketIfTouched,
		OrderTypeLimitIfTouched,
		OrderTypeTrailingStop,
		OrderTypeTrailingLimit,
		OrderTypeMidPrice,
		OrderTypeRelative,
		OrderTypeMultiple,
	)
}

// PutCall is the right of an option.
type PutCall string

const (
	PutCallPut     PutCall = "P"
	PutCallCall    PutCall = "C"
	PutCallUnknown PutCall = "Unknown"
)

// ParsePutCall decodes a putCall token.
func ParsePutCall(value string) PutCall {
	return parseEnum(value, PutCallUnknown, PutCallPut, PutCallCall)
}

// LongShort is the side of an open position.
type LongShort string

const (
	LongShortLong    LongShort = "Long"
	LongShortShort   LongShort = "Short"
	LongShortUnknown LongShort = "Unknown"
)

// ParseLongShort decodes a side token.
func ParseLongShort(value string) LongShort {
	return parseEnum(value, LongShortUnknown, LongShortLong, LongShortShort)
}

// TradeType classifies how a trade came about.
type TradeType string

const (
	TradeTypeExchangeTrade   TradeType = "ExchTrade"
	TradeTypeBookTrade       TradeType = "BookTrade"
	TradeTypeDvpTrade        TradeType = "DvpTrade"
	TradeTypeFracShare       TradeType = "FracShare"
	TradeTypeFracShareCancel TradeType = "FracShareCancel"
	TradeTypeAdjustment      TradeType = "Adjustment"
	TradeTypeTradeCorrect    TradeType = "TradeCorrect"
	TradeTypeTradeCancel     TradeType = "TradeCancel"
	TradeTypeIBKRTrade       TradeType = "IBKRTrade"
	TradeTypeUnknown         TradeType = "Unknown"
)

// ParseTradeType decodes a transactionType token.
func ParseTradeType(value string) TradeType {
	return parseEnum(
		value,
		TradeTypeUnknown,
		TradeTypeExchangeTrade,
		TradeTypeBookTrade,
		TradeTypeDvpTrade,
		TradeTypeFracShare,
		TradeTypeFracShareCancel,
		TradeTypeAdjustment,
		TradeTypeTradeCorrect,
		TradeTypeTradeCancel,
		TradeTypeIBKRTrade,
	)
}

// CashTransactionType is the kind of a cash movement.
type CashTransactionType string

const (
	CashTransactionTypeDepositsWithdrawals      CashTransactionType = "Deposits & Withdrawals"
	CashTransactionTypeDividends                CashTransactionType = "Dividends"
	CashTransactionTypeWithholdingTax           CashTransactionType = "WithholdingTax"
	CashTransactionTypeBrokerInterestPaid       CashTransactionType = "Broker Interest Paid"
	CashTransactionTypeBrokerInterestReceived   CashTransactionType = "Broker Interest Received"
	CashTransactionTypeBondInterestReceived     CashTransactionType = "Bond Interest Received"
	CashTransactionTypeBondInterestPaid         CashTransactionType = "Bond Interest Paid"
	CashTransactionTypeBondInterest             CashTransactionType = "Bond Interest"
	CashTransactionTypePaymentInLieuOfDividends CashTransactionType = "Payment In Lieu Of Dividends"
	CashTransactionTypeOtherFees                CashTransactionType = "Other Fees"
	CashTransactionTypeCommissionAdjustments    CashTransactionType = "Commission Adjustments"
	CashTransactionTypeAdvisorFees              CashTransactionType = "Advisor Fees"
	CashTransactionTypeCashReceipts             CashTransactionType = "Cash Receipts"
	CashTransactionTypeFees                     CashTransactionType = "Fees"
	CashTransactionTypeUnknown                  CashTransactionType = "Unknown"
)

// ParseCashTransactionType decodes a cash transaction type token.
func ParseCashTransactionType(value string) CashTransactionType {
	return parseEnum(
		value,
		CashTransactionTypeUnknown,
		CashTransactionTypeDepositsWithdrawals,
		CashTransactionTypeDividends,
		CashTransactionTypeWithholdingTax,
		CashTransactionTypeBrokerInterestPaid,
		CashTransactionTypeBrokerInterestReceived,
		CashTransactionTypeBondInterestReceived,
		CashTransactionTypeBondInterestPaid,
		CashTransactionTypeBondInterest,
		CashTransactionTypePaymentInLieuOfDividends,
		CashTransactionTypeOtherFees,
		CashTransactionTypeCommissionAdjustments,
		CashTransactionTypeAdvisorFees,
		CashTransactionTypeCashReceipts,
		CashTransactionTypeFees,
	)
}

// CorporateActionType is the kind of a corporate action.
type CorporateActionType string

const (
	CorporateActionTypeStockSplit             CorporateActionType = "Stock Split"
	CorporateActionTypeForwardSplitIssue      CorporateActionType = "Forward Split (Issue)"
	CorporateActionTypeForwardSplit           CorporateActionType = "Forward Split"
	CorporateActionTypeReverseSplit           CorporateActionType = "Reverse Split"
	CorporateActionTypeMerger                 CorporateActionType = "Merger"
	CorporateActionTypeSpinoff                CorporateActionType = "Spinoff"
	CorporateActionTypeContractSpinoff        CorporateActionType = "Contract Spinoff"
	CorporateActionTypeStockDividend          CorporateActionType = "Stock Dividend"
	CorporateActionTypeCashDividend           CorporateActionType = "Cash Dividend"
	CorporateActionTypeChoiceDividend         CorporateActionType = "Choice Dividend"
	CorporateActionTypeChoiceDividendDelivery CorporateActionType = "Choice Dividend (Delivery)"
	CorporateActionTypeChoiceDividendIssue    CorporateActionType = "Choice Dividend (Issue)"
	CorporateActionTypeDividendRightsIssue    CorporateActionType = "Dividend Rights Issue"
	CorporateActionTypeExpiredDividendRight   CorporateActionType = "Expired Dividend Right"
	CorporateActionTypeDelisted               CorporateActionType = "Delisted"
	CorporateActionTypeDelistWorthless        CorporateActionType = "Delist (Worthless)"
	CorporateActionTypeNameChange             CorporateActionType = "Name Change"
	CorporateActionTypeSymbolChange           CorporateActionType = "Symbol Change"
	CorporateActionTypeIssueChange            CorporateActionType = "Issue Change"
	CorporateActionTypeBondConversion         CorporateActionType = "Bond Conversion"
	CorporateActionTypeBondMaturity           CorporateActionType = "Bond Maturity"
	CorporateActionTypeTBillMaturity          CorporateActionType = "T-Bill Maturity"
	CorporateActionTypeConvertibleIssue       CorporateActionType = "Convertible Issue"
	CorporateActionTypeCouponPayment          CorporateActionType = "Coupon Payment"
	CorporateActionTypeContractConsolidation  CorporateActionType = "Contract Consolidation"
	CorporateActionTypeContractSplit          CorporateActionType = "Contract Split"
	CorporateActionTypeCFDTermination         CorporateActionType = "CFD Termination"
	CorporateActionTypeFeeAllocation          CorporateActionType = "Fee Allocation"
	CorporateActionTypeRightsIssue            CorporateActionType = "Rights Issue"
	CorporateActionTypeSubscribeRights        CorporateActionType = "Subscribe Rights"
	CorporateActionTypeTender                 CorporateActionType = "Tender"
	CorporateActionTypeTenderIssue            CorporateActionType = "Tender (Issue)"
	CorporateActionTypeProxyVote              CorporateActionType = "Proxy Vote"
	CorporateActionTypeGenericVoluntary       CorporateActionType = "Generic Voluntary"
	CorporateActionTypeAssetPurchase          CorporateActionType = "Asset Purchase"
	CorporateActionTypePurchaseIssue          CorporateActionType = "Purchase (Issue)"
	CorporateActionTypeUnknown                CorporateActionType = "Unknown"
)

// ParseCorporateActionType decodes a corporate action type token.
func ParseCorporateActionType(value string) CorporateActionType {
	return parseEnum(
		value,
		CorporateActionTypeUnknown,
		CorporateActionTypeStockSplit,
		CorporateActionTypeForwardSplitIssue,
		CorporateActionTypeForwardSplit,
		CorporateActionTypeReverseSplit,
		CorporateActionTypeMerger,
		CorporateActionTypeSpinoff,
		CorporateActionTypeContractSpinoff,
		CorporateActionTypeStockDividend,
		CorporateActionTypeCashDividend,
		CorporateActionTypeChoiceDividend,
		CorporateActionTypeChoiceDividendDelivery,
		CorporateActionTypeChoiceDividendIssue,
		CorporateActionTypeDividendRightsIssue,
		CorporateActionTypeExpiredDividendRight,
		CorporateActionTypeDelisted,
		CorporateActionTypeDelistWorthless,
		CorporateActionTypeNameChange,
		CorporateActionTypeSymbolChange,
		CorporateActionTypeIssueChange,
		CorporateActionTypeBondConversion,
		CorporateActionTypeBondMaturity,
		CorporateActionTypeTBillMaturity,
		CorporateActionTypeConvertibleIssue,
		CorporateActionTypeCouponPayment,
		CorporateActionTypeContractConsolidation,
		CorporateActionTypeContractSplit,
		CorporateActionTypeCFDTermination,
		CorporateActionTypeFeeAllocation,
		CorporateActionTypeRightsIssue,
		CorporateActionTypeSubscribeRights,
		CorporateActionTypeTender,
		CorporateActionTypeTenderIssue,
		CorporateActionTypeProxyVote,
		CorporateActionTypeGenericVoluntary,
		CorporateActionTypeAssetPurchase,
		CorporateActionTypePurchaseIssue,
	)
}

// OptionAction is an option exercise, assignment, or expiration event.
type OptionAction string

const (
	OptionActionAssignment     OptionAction = "Assignment"
	OptionActionExercise       OptionAction = "Exercise"
	OptionActionExpiration     OptionAction = "Expiration"
	OptionActionExpire         OptionAction = "Expire"
	OptionActionCashSettlement OptionAction = "Cash Settlement"
	OptionActionBuy            OptionAction = "Buy"
	OptionActionSell           OptionAction = "Sell"
	OptionActionUnknown        OptionAction = "Unknown"
)

// ParseOptionAction decodes an OptionEAE type token.
func ParseOptionAction(value string) OptionAction {
	return parseEnum(
		value,
		OptionActionUnknown,
		OptionActionAssignment,
		OptionActionExercise,
		OptionActionExpiration,
		OptionActionExpire,
		OptionActionCashSettlement,
		OptionActionBuy,
		OptionActionSell,
	)
}

// TransferType is the method of a position transfer.
type TransferType string

const (
	TransferTypeACATS    TransferType = "ACATS"
	TransferTypeATON     TransferType = "ATON"
	TransferTypeFOP      TransferType = "FOP"
	TransferTypeInternal TransferType = "INTERNAL"
	TransferTypeDVP      TransferType = "DVP"
	TransferTypeDRS      TransferType = "DRS"
	TransferTypeUnknown  TransferType = "Unknown"
)

// ParseTransferType decodes a Transfer type token.
func ParseTransferType(value string) TransferType {
	return parseEnum(
		value,
		TransferTypeUnknown,
		TransferTypeACATS,
		TransferTypeATON,
		TransferTypeFOP,
		TransferTypeInternal,
		TransferTypeDVP,
		TransferTypeDRS,
	)
}

// ToFrom is a direction relative to the account.
type ToFrom string

const (
	ToFromTo      ToFrom = "To"
	ToFromFrom    ToFrom = "From"
	ToFromUnknown ToFrom = "Unknown"
)

// ParseToFrom decodes a To/From token.
func ParseToFrom(value string) ToFrom {
	return parseEnum(value, ToFromUnknown, ToFromTo, ToFromFrom)
}

// InOut is the direction of a transfer.
type InOut string

const (
	InOutIn      InOut = "IN"
	InOutOut     InOut = "OUT"
	InOutUnknown InOut = "Unknown"
)

// ParseInOut decodes a direction token.
func ParseInOut(value string) InOut {
	return parseEnum(value, InOutUnknown, InOutIn, InOutOut)
}

// DeliveredReceived says whether securities were delivered or received.
type DeliveredReceived string

const (
	DeliveredReceivedDelivered DeliveredReceived = "Delivered"
	DeliveredReceivedReceived  DeliveredReceived = "Received"
	DeliveredReceivedUnknown   DeliveredReceived = "Unknown"
)

// ParseDeliveredReceived decodes a Delivered/Received token.
func ParseDeliveredReceived(value string) DeliveredReceived {
	return parseEnum(value, DeliveredReceivedUnknown, DeliveredReceivedDelivered, DeliveredReceivedReceived)
}

// LevelOfDetail is the aggregation level of a row.
//
// IBKR writes both capitalized and upper-case forms depending on the section,
// and both are part of the vocabulary.
type LevelOfDetail string

const (
	LevelOfDetailSummary        LevelOfDetail = "Summary"
	LevelOfDetailDetail         LevelOfDetail = "Detail"
	LevelOfDetailExecution      LevelOfDetail = "Execution"
	LevelOfDetailLot            LevelOfDetail = "Lot"
	LevelOfDetailSummaryUpper   LevelOfDetail = "SUMMARY"
	LevelOfDetailDetailUpper    LevelOfDetail = "DETAIL"
	LevelOfDetailExecutionUpper LevelOfDetail = "EXECUTION"
	LevelOfDetailClosedLot      LevelOfDetail = "CLOSED_LOT"
	LevelOfDetailWashSale       LevelOfDetail = "WASH_SALE"
	LevelOfDetailOrder          LevelOfDetail = "ORDER"
	LevelOfDetailSymbolSummary  LevelOfDetail = "SYMBOL_SUMMARY"
	LevelOfDetailAssetSummary   LevelOfDetail = "ASSET_SUMMARY"
	LevelOfDetailCurrency       LevelOfDetail = "Currency"
	LevelOfDetailBaseCurrency   LevelOfDetail = "BaseCurrency"
	LevelOfDetailUnknown        LevelOfDetail = "Unknown"
)

// ParseLevelOfDetail decodes a levelOfDetail token.
func ParseLevelOfDetail(value string) LevelOfDetail {
	return parseEnum(
		value,
		LevelOfDetailUnknown,
		LevelOfDetailSummary,
		LevelOfDetailDetail,
		LevelOfDetailExecution,
		LevelOfDetailLot,
		LevelOfDetailSummaryUpper,
		LevelOfDetailDetailUpper,
		LevelOfDetailExecutionUpper,
		LevelOfDetailClosedLot,
		LevelOfDetailWashSale,
		LevelOfDetailOrder,
		LevelOfDetailSymbolSummary,
		LevelOfDetailAssetSummary,
		LevelOfDetailCurrency,
		LevelOfDetailBaseCurrency,
	)
}

// SecurityIDType is the scheme of a securityID value.
type SecurityIDType string

const (
	SecurityIDTypeCUSIP   SecurityIDType = "CUSIP"
	SecurityIDTypeISIN    SecurityIDType = "ISIN"
	SecurityIDTypeFIGI    SecurityIDType = "FIGI"
	SecurityIDTypeSEDOL   SecurityIDType = "SEDOL"
	SecurityIDTypeUnknown SecurityIDType = "Unknown"
)

// ParseSecurityIDType decodes a securityIDType token.
func ParseSecurityIDType(value string) SecurityIDType {
	return parseEnum(
		value,
		SecurityIDTypeUnknown,
		SecurityIDTypeCUSIP,
		SecurityIDTypeISIN,
		SecurityIDTypeFIGI,
		SecurityIDTypeSEDOL,
	)
}

// SubCategory refines the asset category of a security.
type SubCategory string

const (
	SubCategoryETF       SubCategory = "ETF"
	SubCategoryADR       SubCategory = "ADR"
	SubCategoryREIT      SubCategory = "REIT"
	SubCategoryPreferred SubCategory = "Preferred"
	SubCategoryCommon    SubCategory = "Common"
	SubCategoryDR        SubCategory = "DR"
	SubCategoryGDR       SubCategory = "GDR"
	SubCategoryLP        SubCategory = "LP"
	SubCategoryMLP       SubCategory = "MLP"
	SubCategoryRight     SubCategory = "Right"
	SubCategoryUnit      SubCategory = "Unit"
	SubCategoryWI        SubCategory = "WI"
	SubCategoryTracking  SubCategory = "Tracking"
	SubCategoryCEF       SubCategory = "CEF"
	SubCategoryUnknown   SubCategory = "Unknown"
)

// ParseSubCategory decodes a subCategory token.
func ParseSubCategory(value string) SubCategory {
	return parseEnum(
		value,
		SubCategoryUnknown,
		SubCategoryETF,
		SubCategoryADR,
		SubCategoryREIT,
		SubCategoryPreferred,
		SubCategoryCommon,
		SubCategoryDR,
		SubCategoryGDR,
		SubCategoryLP,
		SubCategoryMLP,
		SubCategoryRight,
		SubCategoryUnit,
		SubCategoryWI,
		SubCategoryTracking,
		SubCategoryCEF,
	)
}

// TransactionCode is one code from the notes attribute of a trade.
type TransactionCode string

const (
	TransactionCodeAssignment        TransactionCode = "A"
	TransactionCodeAdjustment        TransactionCode = "Adj"
	TransactionCodeAllocation        TransactionCode = "Al"
	TransactionCodeAutoExercise      TransactionCode = "Ae"
	TransactionCodeAutoFX            TransactionCode = "Af"
	TransactionCodeAwayTrade         TransactionCode = "Aw"
	TransactionCodeBuyIn             TransactionCode = "B"
	TransactionCodeBorrowFee         TransactionCode = "Bo"
	TransactionCodeCancelled         TransactionCode = "Ca"
	TransactionCodeClosing           TransactionCode = "C"
	TransactionCodeCashDelivery      TransactionCode = "Cd"
	TransactionCodeComplexPosition   TransactionCode = "Cp"
	TransactionCodeCorrection        TransactionCode = "Cr"
	TransactionCodeCrossing          TransactionCode = "Cs"
	TransactionCodeDualAgent         TransactionCode = "D"
	TransactionCodeETF               TransactionCode = "Et"
	TransactionCodeExpired           TransactionCode = "Ex"
	TransactionCodeExercise          TransactionCode = "O"
	TransactionCodeGuaranteed        TransactionCode = "G"
	TransactionCodeHighestCost       TransactionCode = "Hc"
	TransactionCodeHFInvestment      TransactionCode = "Hi"
	TransactionCodeHFRedemption      TransactionCode = "Hr"
	TransactionCodeInternalTransfer  TransactionCode = "I"
	TransactionCodeAffiliate         TransactionCode = "Ia"
	TransactionCodeInvestor          TransactionCode = "Iv"
	TransactionCodeMarginLiquidation TransactionCode = "L"
	TransactionCodeLIFO              TransactionCode = "Li"
	TransactionCodeLoan              TransactionCode = "Ln"
	TransactionCodeLongTermGain      TransactionCode = "Lt"
	TransactionCodeManualEntry       TransactionCode = "M"
	TransactionCodeMaxLoss           TransactionCode = "Ml"
	TransactionCodeMinLongTermGain   TransactionCode = "Mn"
	TransactionCodeMaxShortTermGain  TransactionCode = "Ms"
	TransactionCodeMinShortTermGain  TransactionCode = "Mi"
	TransactionCodeManualExercise    TransactionCode = "Mx"
	TransactionCodeOpening           TransactionCode = "P"
	TransactionCodePartial           TransactionCode = "Pt"
	TransactionCodeFracRiskless      TransactionCode = "Fr"
	TransactionCodeFracPrincipal     TransactionCode = "Fp"
	TransactionCodePriceImprovement  TransactionCode = "Pi"
	TransactionCodePostAccrual       TransactionCode = "Pa"
	TransactionCodePrincipal         TransactionCode = "Pr"
	TransactionCodeReinvestment      TransactionCode = "Re"
	TransactionCodeRedemption        TransactionCode = "Rd"
	TransactionCodeReopen            TransactionCode = "R"
	TransactionCodeReverse           TransactionCode = "Rv"
	TransactionCodeReimbursement     TransactionCode = "Ri"
	TransactionCodeSolicitedIB       TransactionCode = "Si"
	TransactionCodeSpecificLot       TransactionCode = "Sp"
	TransactionCodeSolicitedOther    TransactionCode = "So"
	TransactionCodeShortSettlement   TransactionCode = "Ss"
	TransactionCodeShortTermGain     TransactionCode = "St"
	TransactionCodeStockYield        TransactionCode = "Sy"
	TransactionCodeTransfer          TransactionCode = "T"
	TransactionCodeWashSale          TransactionCode = "W"
	TransactionCodeUnknown           TransactionCode = "Unknown"
)

// ParseTransactionCode decodes a single transaction code token.
func ParseTransactionCode(value string) TransactionCode {
	return parseEnum(
		value,
		TransactionCodeUnknown,
		TransactionCodeAssignment,
		TransactionCodeAdjustment,
		TransactionCodeAllocation,
		TransactionCodeAutoExercise,
		TransactionCodeAutoFX,
		TransactionCodeAwayTrade,
		TransactionCodeBuyIn,
		TransactionCodeBorrowFee,
		TransactionCodeCancelled,
		TransactionCodeClosing,
		TransactionCodeCashDelivery,
		TransactionCodeComplexPosition,
		TransactionCodeCorrection,
		TransactionCodeCrossing,
		TransactionCodeDualAgent,
		TransactionCodeETF,
		TransactionCodeExpired,
		TransactionCodeExercise,
		TransactionCodeGuaranteed,
		TransactionCodeHighestCost,
		TransactionCodeHFInvestment,
		TransactionCodeHFRedemption,
		TransactionCodeInternalTransfer,
		TransactionCodeAffiliate,
		TransactionCodeInvestor,
		TransactionCodeMarginLiquidation,
		TransactionCodeLIFO,
		TransactionCodeLoan,
		TransactionCodeLongTermGain,
		TransactionCodeManualEntry,
		TransactionCodeMaxLoss,
		TransactionCodeMinLongTermGain,
		TransactionCodeMaxShortTermGain,
		TransactionCodeMinShortTermGain,
		TransactionCodeManualExercise,
		TransactionCodeOpening,
		TransactionCodePartial,
		TransactionCodeFracRiskless,
		TransactionCodeFracPrincipal,
		TransactionCodePriceImprovement,
		TransactionCodePostAccrual,
		TransactionCodePrincipal,
		TransactionCodeReinvestment,
		TransactionCodeRedemption,
		TransactionCodeReopen,
		TransactionCodeReverse,
		TransactionCodeReimbursement,
		TransactionCodeSolicitedIB,
		TransactionCodeSpecificLot,
		TransactionCodeSolicitedOther,
		TransactionCodeShortSettlement,
		TransactionCodeShortTermGain,
		TransactionCodeStockYield,
		TransactionCodeTransfer,
		TransactionCodeWashSale,
	)
}

// ParseTransactionCodes splits a notes attribute on ";" and decodes each code.
//
// Order and duplicates are preserved. Empty tokens are skipped, and an empty
// value returns nil.
func ParseTransactionCodes(value string) []TransactionCode {
	if value == "" {
		return nil
	}
	var codes []TransactionCode
	for token := range strings.SplitSeq(value, transactionCodeDelimiter) {
		if token == "" {
			continue
		}
		codes = append(codes, ParseTransactionCode(token))
	}
	return codes
}

// *** PRIVATE ***

// parseEnum returns the element of known equal to value, unknown if there is
// none, or the zero value if value is empty.
func parseEnum[E ~string](value string, unknown E, known ...E) E {
	if value == "" {
		return ""
	}
	for _, candidate := range known {
		if string(candidate) == value {
			return candidate
		}
	}
	return unknown
}
