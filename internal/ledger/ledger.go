// Package ledger tracks cash and positions across discrete trade requests.
package ledger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ledger is a single-account, multi-symbol position and cash tracker.
// Each logical session owns its own Ledger instance; nothing is shared
// process-wide.
type Ledger struct {
	mu          sync.RWMutex
	initialCash float64
	cash        float64
	positions   map[string]*core.Position
	trades      []core.Trade
	logger      *zap.Logger
}

// Summary is a point-in-time projection of the ledger.
type Summary struct {
	// Cash is the available cash balance.
	Cash float64 `json:"cash"`
	// Equity is cash plus the market value of all open positions.
	Equity float64 `json:"equity"`
	// UnrealizedPL is the sum of unrealized P&L across open positions.
	UnrealizedPL float64 `json:"unrealized_pl"`
	// Positions lists open positions sorted by symbol.
	Positions []core.Position `json:"positions"`
}

// New creates a Ledger with the given starting cash.
func New(initialCash float64, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		initialCash: initialCash,
		cash:        initialCash,
		positions:   make(map[string]*core.Position),
		logger:      logger,
	}
}

// Execute applies a buy or sell to the ledger. A rejected trade leaves the
// ledger unchanged and returns the rejection as an error; a successful
// trade appends an immutable Trade record and returns it.
func (l *Ledger) Execute(symbol string, side core.Side, quantity int64, price float64) (*core.Trade, error) {
	if symbol == "" {
		return nil, core.WrapError(core.ErrInvalidTrade, fmt.Errorf("symbol is required"))
	}
	if quantity <= 0 {
		return nil, core.WrapError(core.ErrInvalidTrade, fmt.Errorf("quantity must be positive, got %d", quantity))
	}
	if price <= 0 {
		return nil, core.WrapError(core.ErrInvalidTrade, fmt.Errorf("price must be positive, got %f", price))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	value := float64(quantity) * price
	var pnl float64

	switch side {
	case core.SideBuy:
		if l.cash < value {
			return nil, core.WrapError(core.ErrInsufficientFunds,
				fmt.Errorf("need %.2f, have %.2f", value, l.cash))
		}
		l.cash -= value
		l.applyBuy(symbol, quantity, price)

	case core.SideSell:
		pos, exists := l.positions[symbol]
		if !exists || pos.Quantity < quantity {
			var held int64
			if exists {
				held = pos.Quantity
			}
			return nil, core.WrapError(core.ErrInsufficientShares,
				fmt.Errorf("%s: need %d, have %d", symbol, quantity, held))
		}
		l.cash += value
		pnl = (price - pos.AverageCost) * float64(quantity)
		l.applySell(pos, quantity, price)

	default:
		return nil, core.WrapError(core.ErrInvalidTrade, fmt.Errorf("unknown side %q", side))
	}

	trade := core.Trade{
		ID:       uuid.NewString(),
		Time:     time.Now(),
		Symbol:   symbol,
		Side:     side,
		Price:    price,
		Quantity: quantity,
		PnL:      pnl,
	}
	l.trades = append(l.trades, trade)

	l.logger.Info("trade executed",
		zap.String("symbol", symbol),
		zap.String("side", string(side)),
		zap.Int64("quantity", quantity),
		zap.Float64("price", price),
		zap.Float64("cash", l.cash),
	)

	return &trade, nil
}

// applyBuy blends the new lot into the volume-weighted average cost,
// creating the position if none exists.
func (l *Ledger) applyBuy(symbol string, quantity int64, price float64) {
	pos, exists := l.positions[symbol]
	if !exists {
		pos = &core.Position{Symbol: symbol}
		l.positions[symbol] = pos
	}

	totalCost := float64(pos.Quantity)*pos.AverageCost + float64(quantity)*price
	pos.Quantity += quantity
	pos.AverageCost = totalCost / float64(pos.Quantity)
	revalue(pos, price)
}

// applySell decrements the position, removing it entirely at zero.
func (l *Ledger) applySell(pos *core.Position, quantity int64, price float64) {
	pos.Quantity -= quantity
	if pos.Quantity == 0 {
		delete(l.positions, pos.Symbol)
		return
	}
	revalue(pos, price)
}

// Mark updates a position's current price and unrealized P&L. It is a
// no-op when the symbol has no open position.
func (l *Ledger) Mark(symbol string, price float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if pos, exists := l.positions[symbol]; exists {
		revalue(pos, price)
	}
}

func revalue(pos *core.Position, price float64) {
	pos.CurrentPrice = price
	pos.MarketValue = float64(pos.Quantity) * price
	pos.UnrealizedPL = (price - pos.AverageCost) * float64(pos.Quantity)
	pos.UpdatedAt = time.Now()
}

// Summary returns the current cash, equity, unrealized P&L, and open
// positions. It never mutates the ledger.
func (l *Ledger) Summary() Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Summary{
		Cash:      l.cash,
		Equity:    l.cash,
		Positions: make([]core.Position, 0, len(l.positions)),
	}
	for _, pos := range l.positions {
		s.Equity += pos.MarketValue
		s.UnrealizedPL += pos.UnrealizedPL
		s.Positions = append(s.Positions, *pos)
	}
	sort.Slice(s.Positions, func(i, j int) bool {
		return s.Positions[i].Symbol < s.Positions[j].Symbol
	})
	return s
}

// Position returns a copy of the open position for a symbol.
func (l *Ledger) Position(symbol string) (core.Position, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	pos, exists := l.positions[symbol]
	if !exists {
		return core.Position{}, false
	}
	return *pos, true
}

// Cash returns the available cash balance.
func (l *Ledger) Cash() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cash
}

// Trades returns a copy of the trade history in execution order.
func (l *Ledger) Trades() []core.Trade {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]core.Trade(nil), l.trades...)
}

// Reset restores the starting cash and clears all positions and trade
// history.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cash = l.initialCash
	l.positions = make(map[string]*core.Position)
	l.trades = nil

	l.logger.Info("ledger reset", zap.Float64("cash", l.cash))
}
