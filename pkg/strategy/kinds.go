package strategy

// Visual kinds for strategy nodes. Classification is cosmetic derivation
// for the renderer (coloring, badges) and never affects layout.
const (
	KindData    = "data"
	KindFeature = "feature"
	KindLogic   = "logic"
	KindSignal  = "signal"
	KindRisk    = "risk"
	KindOther   = "other"
)

// kindByType maps the node type tags of the strategy gene pool to their
// visual kind.
var kindByType = map[string]string{
	// Data / time
	"MarketData":     KindData,
	"TimeWindowMask": KindData,
	"Constant":       KindData,

	// Features
	"SMA":     KindFeature,
	"EMA":     KindFeature,
	"RSI":     KindFeature,
	"ATR":     KindFeature,
	"Returns": KindFeature,
	"ZScore":  KindFeature,
	"BBands":  KindFeature,
	"MACD":    KindFeature,

	// Logic
	"Compare": KindLogic,
	"And":     KindLogic,
	"Or":      KindLogic,
	"Not":     KindLogic,

	// Signals
	"EntrySignal": KindSignal,
	"ExitSignal":  KindSignal,

	// Orders / risk
	"BracketOrder":        KindRisk,
	"StopLossFixed":       KindRisk,
	"StopLossATR":         KindRisk,
	"TakeProfitFixed":     KindRisk,
	"TakeProfitATR":       KindRisk,
	"PositionSizingFixed": KindRisk,
	"PositionSizingPct":   KindRisk,
	"RiskManagerDaily":    KindRisk,
}

// KindOf classifies a node type tag into its visual kind. Unknown or
// empty types classify as [KindOther].
func KindOf(nodeType string) string {
	if k, ok := kindByType[nodeType]; ok {
		return k
	}
	return KindOther
}
