package core

import "time"

// Bar represents one OHLCV observation for a fixed time interval.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// IsValid checks that the bar has positive prices and non-negative volume.
func (b Bar) IsValid() bool {
	return b.Open > 0 && b.High > 0 && b.Low > 0 && b.Close > 0 && b.Volume >= 0
}

// SignalType is a discrete trading decision attached to a bar.
type SignalType string

const (
	SignalBuy  SignalType = "BUY"
	SignalSell SignalType = "SELL"
	SignalNone SignalType = "NONE"
)

// AnnotatedBar is a Bar augmented with indicator overlays and a signal.
// An indicator key absent from the map means the indicator has not warmed
// up yet at that bar.
type AnnotatedBar struct {
	Bar
	Indicators map[string]float64
	Signal     SignalType
	Reason     string
}

// Side is the direction of a trade.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// StrategyDefinition describes a registered strategy for introspection.
type StrategyDefinition struct {
	Name          string             `json:"name"`
	Label         string             `json:"label"`
	DefaultParams map[string]float64 `json:"default_params"`
	Overlays      []string           `json:"overlays"`
}

// Trade is an executed order. It is never mutated after creation.
type Trade struct {
	// ID is a unique identifier assigned at execution time.
	ID string `json:"id"`
	// Time is when the trade executed. For backtest trades this is the
	// timestamp of the bar that generated it.
	Time time.Time `json:"time"`
	// Symbol is the ticker symbol.
	Symbol string `json:"symbol"`
	// Side indicates buy or sell.
	Side Side `json:"side"`
	// Price is the execution price per unit.
	Price float64 `json:"price"`
	// Quantity is the number of whole units traded.
	Quantity int64 `json:"quantity"`
	// PnL is the realized profit or loss. Always 0 for buys.
	PnL float64 `json:"pnl"`
	// Strategy is the originating strategy name, empty for manual trades.
	Strategy string `json:"strategy,omitempty"`
}

// Value returns the total cash value of the trade.
func (t Trade) Value() float64 {
	return t.Price * float64(t.Quantity)
}

// Position is an open holding in a single symbol. A position exists only
// while Quantity > 0.
type Position struct {
	// Symbol is the ticker symbol.
	Symbol string `json:"symbol"`
	// Quantity is the number of units held.
	Quantity int64 `json:"quantity"`
	// AverageCost is the volume-weighted average cost basis per unit.
	AverageCost float64 `json:"average_cost"`
	// CurrentPrice is the last marked price.
	CurrentPrice float64 `json:"current_price"`
	// MarketValue is Quantity * CurrentPrice.
	MarketValue float64 `json:"market_value"`
	// UnrealizedPL is (CurrentPrice - AverageCost) * Quantity.
	UnrealizedPL float64 `json:"unrealized_pl"`
	// UpdatedAt is when the position was last changed or marked.
	UpdatedAt time.Time `json:"updated_at"`
}

// EquityPoint is one sample of account value taken after processing a bar.
type EquityPoint struct {
	Time          time.Time `json:"time"`
	Cash          float64   `json:"cash"`
	PositionValue float64   `json:"position_value"`
	Equity        float64   `json:"equity"`
}
