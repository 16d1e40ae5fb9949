package models

// EventType identifies the kind of a simulator event. The set is closed:
// every event the transport can deliver is one of these kinds.
type EventType int

const (
	EventMarketData EventType = iota
	EventOrderPlace
	EventPortfolioInfo
	EventShutdown
)

func (t EventType) String() string {
	switch t {
	case EventMarketData:
		return "market_data"
	case EventOrderPlace:
		return "order_place"
	case EventPortfolioInfo:
		return "portfolio_info"
	case EventShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Event is the tagged union passed through the bus. Exactly one payload
// pointer is non-nil, matching Type.
type Event struct {
	Type          EventType
	MarketData    *MarketDataEvent
	OrderPlace    *OrderPlaceEvent
	PortfolioInfo *PortfolioInfoEvent
	Shutdown      *ShutdownEvent
}

// MarketDataEvent carries one bar of market data. The analyzer consumes
// only Timestamp and Close; the remaining fields exist for other modules.
type MarketDataEvent struct {
	ID        uint64  `json:"id"`
	Symbol    string  `json:"symbol"`
	Timestamp string  `json:"timestamp"`
	Open      float64 `json:"open"`
	Close     float64 `json:"close"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Volume    int64   `json:"volume"`
}

// PortfolioInfoEvent carries the current portfolio state. It does not carry
// a timestamp; the analyzer aligns it to the latest market observation.
type PortfolioInfoEvent struct {
	ID        uint64    `json:"id"`
	Portfolio Portfolio `json:"portfolio"`
}

// OrderPlaceEvent is published by strategy modules. The analyzer ignores it.
type OrderPlaceEvent struct {
	ID    uint64 `json:"id"`
	Order Order  `json:"order"`
}

// ShutdownEvent ends the simulation run.
type ShutdownEvent struct {
	ID uint64 `json:"id"`
}

// OrderDirection is the side of an order.
type OrderDirection int

const (
	Buy OrderDirection = iota
	Sell
)

// Order is a limit-price order as published by strategies.
type Order struct {
	Symbol     string         `json:"symbol"`
	Amount     int            `json:"amount"`
	LimitPrice float64        `json:"limit_price"`
	Direction  OrderDirection `json:"direction"`
}
