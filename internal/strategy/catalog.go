package strategy

import (
	"sort"
	"sync"

	"github.com/PravallikaP08/v0-live-trading-simulation/internal/core"
	"go.uber.org/zap"
)

// Catalog is a registry of strategies keyed by name. It is populated once
// at startup and read-only afterwards.
type Catalog struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
	logger     *zap.Logger
}

// NewCatalog creates an empty strategy catalog.
func NewCatalog(logger ...*zap.Logger) *Catalog {
	var l *zap.Logger
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	} else {
		l = zap.NewNop()
	}
	return &Catalog{
		strategies: make(map[string]Strategy),
		logger:     l,
	}
}

// Register adds a strategy to the catalog. Registering the same name twice
// replaces the previous entry.
func (c *Catalog) Register(s Strategy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.strategies[s.Name()]; exists {
		c.logger.Warn("replacing registered strategy", zap.String("strategy", s.Name()))
	}
	c.strategies[s.Name()] = s
}

// Get retrieves a strategy by name.
func (c *Catalog) Get(name string) (Strategy, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.strategies[name]
	return s, ok
}

// Definitions returns the catalog contents sorted by name.
func (c *Catalog) Definitions() []core.StrategyDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	defs := make([]core.StrategyDefinition, 0, len(c.strategies))
	for _, s := range c.strategies {
		params := make(map[string]float64, len(s.DefaultParams()))
		for k, v := range s.DefaultParams() {
			params[k] = v
		}
		defs = append(defs, core.StrategyDefinition{
			Name:          s.Name(),
			Label:         s.Label(),
			DefaultParams: params,
			Overlays:      append([]string(nil), s.Overlays()...),
		})
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}
