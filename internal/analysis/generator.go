// Package analysis synthesizes deterministic pseudo-analytics for NFT
// contract addresses. All numbers are derived from a weak hash of the
// address suffix, so repeated calls for the same address produce the same
// record. No blockchain I/O happens here.
package analysis

import (
	"math"
	"math/rand"
	"strconv"
	"time"
)

const (
	// HistoryDays is the length of the generated price series.
	HistoryDays = 30

	// TxSpacing is the gap between consecutive synthetic transactions.
	TxSpacing = 8 * time.Hour

	suffixLen = 4
)

// collectionNames is indexed by seedHash % len to pick a display name.
var collectionNames = []string{
	"Cosmic Apes",
	"Pixel Punks",
	"Meta Guardians",
	"Chain Spirits",
	"Cyber Kittens",
	"Lucky Dragons",
}

// txTypes is indexed by seedHash % len. Every transaction in one record
// shares the same type; the upstream data model expects this.
var txTypes = []string{"sale", "transfer", "mint", "offer"}

// Generator produces AnalysisRecords. The zero value is not usable; create
// one with NewGenerator. The clock is injectable for tests.
type Generator struct {
	now func() time.Time
}

// NewGenerator returns a Generator using the system clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock returns a Generator with a custom clock.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// SeedHash derives the deterministic seed for an address: the sum of the
// character codes of its trailing characters. Short or empty addresses are
// handled by using the whole string as the suffix.
func SeedHash(address string) int {
	hash := 0
	for _, c := range addressSuffix(address) {
		hash += int(c)
	}
	return hash
}

// addressSuffix returns the last 4 characters of the address, or the whole
// address when it is shorter than that.
func addressSuffix(address string) string {
	if len(address) <= suffixLen {
		return address
	}
	return address[len(address)-suffixLen:]
}

// Generate maps a contract address to its synthetic analysis record.
// It never fails and never rejects input; validating the address is the
// transport layer's job. Safe for concurrent use.
func (g *Generator) Generate(address string) *AnalysisRecord {
	now := g.now()
	suffix := addressSuffix(address)
	hash := SeedHash(address)
	rng := rand.New(rand.NewSource(int64(hash)))

	scores := Scores{
		Security:  70 + hash%30,
		Activity:  60 + hash%30,
		Community: 50 + hash%30,
		Liquidity: 65 + hash%30,
	}
	trust := (scores.Security + scores.Activity + scores.Community + scores.Liquidity) / 4

	currentPrice := round4(0.5 + float64(hash%150)/100)
	supply := 5000 + hash%10000

	return &AnalysisRecord{
		ContractAddress: address,
		SeedHash:        hash,
		Scores:          scores,
		TrustScore:      trust,
		Recommendation:  recommendationFor(trust),
		CurrentPrice:    currentPrice,
		PriceChange24h:  round2(float64(hash%20) - 10),
		Volume24h:       1000 + hash%5000,
		PriceHistory:    priceHistory(now, hash, currentPrice),
		Transactions:    transactions(now, hash, currentPrice, supply, rng),
		Collection: Collection{
			Name:        collectionNames[hash%len(collectionNames)] + "#" + suffix,
			TotalSupply: supply,
			OwnersCount: supply * 70 / 100,
			CreatedAt:   now.AddDate(-(1 + hash%3), 0, 0),
		},
		GeneratedAt: now,
	}
}

// recommendationFor buckets the trust score at thresholds 80 and 60.
func recommendationFor(trust int) string {
	switch {
	case trust >= 80:
		return "Strong fundamentals, low risk profile"
	case trust >= 60:
		return "Moderate risk, review recent activity"
	default:
		return "High risk, interact with caution"
	}
}

// priceHistory builds 30 daily points, oldest first. Variance shrinks
// linearly as the date approaches today; the final point is exactly the
// current price.
func priceHistory(now time.Time, hash int, currentPrice float64) []PricePoint {
	volatility := 0.05 + float64(hash%10)/100

	points := make([]PricePoint, HistoryDays)
	for i := 0; i < HistoryDays; i++ {
		day := now.AddDate(0, 0, i-(HistoryDays-1))

		price := currentPrice
		if i < HistoryDays-1 {
			daysFactor := float64(i) / float64(HistoryDays-1)
			variance := volatility * (1 - daysFactor) * 3
			dailyChange := math.Sin(float64(hash+i)) * variance
			price = currentPrice * (1 + dailyChange)
		}

		points[i] = PricePoint{
			Date:  day.Format("2006-01-02"),
			Price: round4(price),
		}
	}
	return points
}

// transactions builds 3-7 synthetic events spaced 8 hours backward from
// now. Prices and token IDs come from the seeded rng, so the whole record
// stays deterministic per address.
func transactions(now time.Time, hash int, currentPrice float64, supply int, rng *rand.Rand) []Transaction {
	count := 3 + hash%5
	txType := txTypes[hash%len(txTypes)]

	txs := make([]Transaction, count)
	for i := 0; i < count; i++ {
		txs[i] = Transaction{
			Type:    txType,
			Date:    now.Add(-time.Duration(i) * TxSpacing),
			Price:   round4(currentPrice * (0.9 + rng.Float64()*0.2)),
			TokenID: strconv.Itoa(rng.Intn(supply)),
		}
	}
	return txs
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
