package ledger_test

import (
	"testing"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
	"github.com/PravallikaP08/v0-live-trading-simulation/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_BuyCreatesPosition(t *testing.T) {
	l := ledger.New(10000, nil)

	trade, err := l.Execute("AAPL", core.SideBuy, 10, 150)
	require.NoError(t, err)
	require.NotNil(t, trade)

	assert.NotEmpty(t, trade.ID)
	assert.Equal(t, core.SideBuy, trade.Side)
	assert.Equal(t, int64(10), trade.Quantity)
	assert.Equal(t, 0.0, trade.PnL, "buys carry no realized PnL")

	assert.Equal(t, 8500.0, l.Cash())

	pos, ok := l.Position("AAPL")
	require.True(t, ok)
	assert.Equal(t, int64(10), pos.Quantity)
	assert.Equal(t, 150.0, pos.AverageCost)
}

func TestLedger_BuyBlendsAverageCost(t *testing.T) {
	l := ledger.New(10000, nil)

	_, err := l.Execute("AAPL", core.SideBuy, 10, 100)
	require.NoError(t, err)
	_, err = l.Execute("AAPL", core.SideBuy, 10, 200)
	require.NoError(t, err)

	pos, ok := l.Position("AAPL")
	require.True(t, ok)
	assert.Equal(t, int64(20), pos.Quantity)
	assert.Equal(t, 150.0, pos.AverageCost, "(10*100 + 10*200) / 20")
}

func TestLedger_InsufficientFunds(t *testing.T) {
	l := ledger.New(50, nil)

	_, err := l.Execute("X", core.SideBuy, 10, 10)
	require.ErrorIs(t, err, core.ErrInsufficientFunds)

	// State unchanged.
	assert.Equal(t, 50.0, l.Cash())
	_, ok := l.Position("X")
	assert.False(t, ok)
	assert.Empty(t, l.Trades())
}

func TestLedger_SellRealizesPnL(t *testing.T) {
	l := ledger.New(1000, nil)

	_, err := l.Execute("AAPL", core.SideBuy, 20, 50)
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.Cash())

	trade, err := l.Execute("AAPL", core.SideSell, 20, 60)
	require.NoError(t, err)

	assert.Equal(t, 1200.0, l.Cash())
	assert.Equal(t, 200.0, trade.PnL)

	_, ok := l.Position("AAPL")
	assert.False(t, ok, "position should be removed at zero quantity")
}

func TestLedger_PartialSellKeepsPosition(t *testing.T) {
	l := ledger.New(10000, nil)

	_, err := l.Execute("AAPL", core.SideBuy, 10, 100)
	require.NoError(t, err)
	_, err = l.Execute("AAPL", core.SideSell, 4, 110)
	require.NoError(t, err)

	pos, ok := l.Position("AAPL")
	require.True(t, ok)
	assert.Equal(t, int64(6), pos.Quantity)
	assert.Equal(t, 100.0, pos.AverageCost, "average cost unchanged by sells")
}

func TestLedger_InsufficientShares(t *testing.T) {
	l := ledger.New(10000, nil)

	_, err := l.Execute("AAPL", core.SideSell, 1, 100)
	assert.ErrorIs(t, err, core.ErrInsufficientShares, "sell with no position")

	_, err = l.Execute("AAPL", core.SideBuy, 5, 100)
	require.NoError(t, err)

	_, err = l.Execute("AAPL", core.SideSell, 10, 100)
	assert.ErrorIs(t, err, core.ErrInsufficientShares, "sell more than held")

	pos, ok := l.Position("AAPL")
	require.True(t, ok)
	assert.Equal(t, int64(5), pos.Quantity, "rejected sell leaves position unchanged")
}

func TestLedger_RejectsInvalidRequests(t *testing.T) {
	l := ledger.New(1000, nil)

	_, err := l.Execute("", core.SideBuy, 1, 10)
	assert.ErrorIs(t, err, core.ErrInvalidTrade)

	_, err = l.Execute("AAPL", core.SideBuy, 0, 10)
	assert.ErrorIs(t, err, core.ErrInvalidTrade)

	_, err = l.Execute("AAPL", core.SideBuy, 1, -5)
	assert.ErrorIs(t, err, core.ErrInvalidTrade)

	_, err = l.Execute("AAPL", core.Side("HOLD"), 1, 10)
	assert.ErrorIs(t, err, core.ErrInvalidTrade)
}

func TestLedger_Mark(t *testing.T) {
	l := ledger.New(10000, nil)

	_, err := l.Execute("AAPL", core.SideBuy, 10, 100)
	require.NoError(t, err)

	l.Mark("AAPL", 120)

	pos, ok := l.Position("AAPL")
	require.True(t, ok)
	assert.Equal(t, 120.0, pos.CurrentPrice)
	assert.Equal(t, 1200.0, pos.MarketValue)
	assert.Equal(t, 200.0, pos.UnrealizedPL)

	// Marking an unknown symbol is a no-op.
	l.Mark("GOOG", 50)
	_, ok = l.Position("GOOG")
	assert.False(t, ok)
}

func TestLedger_Summary(t *testing.T) {
	l := ledger.New(10000, nil)

	_, err := l.Execute("MSFT", core.SideBuy, 5, 200)
	require.NoError(t, err)
	_, err = l.Execute("AAPL", core.SideBuy, 10, 100)
	require.NoError(t, err)

	l.Mark("AAPL", 110)
	l.Mark("MSFT", 190)

	s := l.Summary()
	assert.Equal(t, 8000.0, s.Cash)
	assert.Equal(t, 8000.0+1100+950, s.Equity)
	assert.Equal(t, 100.0-50, s.UnrealizedPL)

	require.Len(t, s.Positions, 2)
	assert.Equal(t, "AAPL", s.Positions[0].Symbol, "positions sorted by symbol")
	assert.Equal(t, "MSFT", s.Positions[1].Symbol)
}

func TestLedger_TradesAreCopied(t *testing.T) {
	l := ledger.New(10000, nil)

	_, err := l.Execute("AAPL", core.SideBuy, 1, 100)
	require.NoError(t, err)

	trades := l.Trades()
	require.Len(t, trades, 1)
	trades[0].Symbol = "MUTATED"

	assert.Equal(t, "AAPL", l.Trades()[0].Symbol)
}

func TestLedger_Reset(t *testing.T) {
	l := ledger.New(10000, nil)

	_, err := l.Execute("AAPL", core.SideBuy, 10, 100)
	require.NoError(t, err)

	l.Reset()

	assert.Equal(t, 10000.0, l.Cash())
	assert.Empty(t, l.Trades())
	assert.Empty(t, l.Summary().Positions)
}
