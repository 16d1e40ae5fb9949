package models

// Portfolio is the portfolio state snapshot published by the exchange stub.
// The analyzer consumes Asset and Cash.
type Portfolio struct {
	Asset         float64        `json:"asset"`
	Cash          float64        `json:"cash"`
	AvailableCash float64        `json:"available_cash"`
	Positions     map[string]int `json:"positions"`
}

// NewPortfolio returns a portfolio seeded entirely with cash.
func NewPortfolio(initialCash float64) Portfolio {
	return Portfolio{
		Asset:         initialCash,
		Cash:          initialCash,
		AvailableCash: initialCash,
		Positions:     make(map[string]int),
	}
}
