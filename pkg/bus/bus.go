package bus

import (
	"errors"
	"sync/atomic"

	"TradeScope/internal/domain/models"
)

var ErrBusClosed = errors.New("event bus closed")

// Sequence hands out event identifiers. Each event kind owns its own
// sequence; the bus holds them so no package-level counter state exists.
type Sequence struct {
	n uint64
}

// Next returns the next identifier, starting at 1.
func (s *Sequence) Next() uint64 {
	return atomic.AddUint64(&s.n, 1)
}

// Bus is the in-process transport between simulator modules and the
// analyzer. The analyzer is the single consumer; the buffer absorbs producer
// bursts, so a consumer that falls behind trades memory for liveness.
type Bus struct {
	ch     chan models.Event
	closed uint32

	marketSeq    Sequence
	orderSeq     Sequence
	portfolioSeq Sequence
}

// Option configures Bus.
type Option func(*busConfig)

type busConfig struct {
	capacity int
}

// WithCapacity sets the channel buffer size.
func WithCapacity(n int) Option {
	return func(c *busConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// New creates a bus with the given options.
func New(opts ...Option) *Bus {
	cfg := &busConfig{capacity: 4096}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Bus{ch: make(chan models.Event, cfg.capacity)}
}

// Events returns the receive side consumed by the analyzer.
func (b *Bus) Events() <-chan models.Event {
	return b.ch
}

// PublishMarketData constructs and publishes a market data event.
func (b *Bus) PublishMarketData(timestamp, symbol string, open, close, high, low float64, volume int64) error {
	return b.publish(models.Event{
		Type: models.EventMarketData,
		MarketData: &models.MarketDataEvent{
			ID:        b.marketSeq.Next(),
			Symbol:    symbol,
			Timestamp: timestamp,
			Open:      open,
			Close:     close,
			High:      high,
			Low:       low,
			Volume:    volume,
		},
	})
}

// PublishPortfolioInfo constructs and publishes a portfolio state event.
func (b *Bus) PublishPortfolioInfo(p models.Portfolio) error {
	return b.publish(models.Event{
		Type: models.EventPortfolioInfo,
		PortfolioInfo: &models.PortfolioInfoEvent{
			ID:        b.portfolioSeq.Next(),
			Portfolio: p,
		},
	})
}

// PublishOrderPlace constructs and publishes an order event.
func (b *Bus) PublishOrderPlace(o models.Order) error {
	return b.publish(models.Event{
		Type: models.EventOrderPlace,
		OrderPlace: &models.OrderPlaceEvent{
			ID:    b.orderSeq.Next(),
			Order: o,
		},
	})
}

// PublishShutdown publishes the terminal event. It travels the same channel
// as data events, so everything published before it is processed first.
func (b *Bus) PublishShutdown() error {
	return b.publish(models.Event{
		Type:     models.EventShutdown,
		Shutdown: &models.ShutdownEvent{ID: 1},
	})
}

func (b *Bus) publish(e models.Event) error {
	if atomic.LoadUint32(&b.closed) != 0 {
		return ErrBusClosed
	}
	b.ch <- e
	return nil
}

// Close stops the bus from accepting new events. Idempotent.
func (b *Bus) Close() {
	if atomic.CompareAndSwapUint32(&b.closed, 0, 1) {
		close(b.ch)
	}
}
