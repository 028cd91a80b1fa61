package analysis

import "time"

// Scores groups the four synthetic sub-scores of a contract.
// Each score lives in its own fixed range: security [70,100), activity
// [60,90), community [50,80), liquidity [65,95).
type Scores struct {
	Security  int `json:"security"`
	Activity  int `json:"activity"`
	Community int `json:"community"`
	Liquidity int `json:"liquidity"`
}

// PricePoint is a single day of the synthetic price history.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Transaction is a synthetic marketplace event for the analyzed contract.
type Transaction struct {
	Type    string    `json:"type"`
	Date    time.Time `json:"date"`
	Price   float64   `json:"price"`
	TokenID string    `json:"tokenId"`
}

// Collection carries the display metadata derived for the contract.
type Collection struct {
	Name        string    `json:"name"`
	TotalSupply int       `json:"totalSupply"`
	OwnersCount int       `json:"ownersCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AnalysisRecord is the full synthetic payload returned to dashboard
// clients. Every field is a pure function of the contract address and the
// generator clock; nothing is persisted between requests.
type AnalysisRecord struct {
	ContractAddress string        `json:"contractAddress"`
	SeedHash        int           `json:"seedHash"`
	Scores          Scores        `json:"scores"`
	TrustScore      int           `json:"trustScore"`
	Recommendation  string        `json:"recommendation"`
	CurrentPrice    float64       `json:"currentPrice"`
	PriceChange24h  float64       `json:"priceChange24h"`
	Volume24h       int           `json:"volume24h"`
	PriceHistory    []PricePoint  `json:"priceHistory"`
	Transactions    []Transaction `json:"transactions"`
	Collection      Collection    `json:"collection"`
	GeneratedAt     time.Time     `json:"generatedAt"`
}
