package history

import (
	"sync"

	"TradeScope/internal/domain/models"
)

// Store holds the three time-aligned series for one run: benchmark close
// prices, portfolio asset value and portfolio cash value. All three share
// one lock; the ingestion loop is the only writer, so the lock exists for
// readers (the status API) racing that writer.
type Store struct {
	mu      sync.RWMutex
	market  models.Series
	asset   models.Series
	cash    models.Series
	dropped uint64
}

// NewStore creates an empty store. Series live for the process lifetime and
// are never cleared; the module is single-run.
func NewStore() *Store {
	return &Store{}
}

// RecordMarket appends one benchmark observation. Arrival order is assumed
// chronological; nothing is validated or reordered.
func (s *Store) RecordMarket(p models.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.market = append(s.market, p)
}

// RecordPortfolio appends the asset and cash values under the most recent
// market timestamp. A portfolio observation arriving before any market data
// has no timestamp to borrow and is dropped; the return value reports
// whether the observation was recorded.
func (s *Store) RecordPortfolio(asset, cash float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.market) == 0 {
		s.dropped++
		return false
	}
	label := s.market[len(s.market)-1].Label
	s.asset = append(s.asset, models.Point{Label: label, Value: asset})
	s.cash = append(s.cash, models.Point{Label: label, Value: cash})
	return true
}

// Snapshot returns independent copies of all three series, safe to use for
// computation without holding the lock.
func (s *Store) Snapshot() (market, asset, cash models.Series) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.market.Clone(), s.asset.Clone(), s.cash.Clone()
}

// Lengths reports the current series lengths.
func (s *Store) Lengths() (market, asset, cash int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.market), len(s.asset), len(s.cash)
}

// Dropped reports how many portfolio observations arrived before any market
// data and were discarded.
func (s *Store) Dropped() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dropped
}
