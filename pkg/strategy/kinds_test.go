package strategy

import "testing"

func TestKindOf(t *testing.T) {
	tests := []struct {
		nodeType string
		want     string
	}{
		{"MarketData", KindData},
		{"SMA", KindFeature},
		{"RSI", KindFeature},
		{"Compare", KindLogic},
		{"EntrySignal", KindSignal},
		{"StopLossATR", KindRisk},
		{"PositionSizingPct", KindRisk},
		{"SomethingNew", KindOther},
		{"", KindOther},
	}

	for _, tt := range tests {
		if got := KindOf(tt.nodeType); got != tt.want {
			t.Errorf("KindOf(%q) = %q, want %q", tt.nodeType, got, tt.want)
		}
	}
}
