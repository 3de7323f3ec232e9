package memory

import (
	"time"

	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/shopspring/decimal"
)

// SeedData is the static state every session starts from. It mirrors the
// mock constants of the original mobile app.
type SeedData struct {
	User           models.User
	Currencies     []models.Currency
	Transactions   []models.Transaction
	NearbyRequests []models.NearbyRequest
}

// DefaultSeed returns the demo seed: one user, five currencies, three
// historical transactions and three nearby requests.
func DefaultSeed() SeedData {
	now := time.Now()
	return SeedData{
		User: models.User{
			UserID:        "u1",
			Name:          "Alex Rivera",
			Avatar:        "https://picsum.photos/200",
			WalletBalance: decimal.RequireFromString("2450.00"),
			BaseCurrency:  "USD",
		},
		Currencies: []models.Currency{
			{CurrencyCode: "USD", RateToUSD: decimal.NewFromInt(1), Symbol: "$", Name: "US Dollar"},
			{CurrencyCode: "EUR", RateToUSD: decimal.RequireFromString("1.08"), Symbol: "€", Name: "Euro"},
			{CurrencyCode: "GBP", RateToUSD: decimal.RequireFromString("1.26"), Symbol: "£", Name: "British Pound"},
			{CurrencyCode: "JPY", RateToUSD: decimal.RequireFromString("0.0065"), Symbol: "¥", Name: "Japanese Yen"},
			{CurrencyCode: "CAD", RateToUSD: decimal.RequireFromString("0.74"), Symbol: "C$", Name: "Canadian Dollar"},
		},
		Transactions: []models.Transaction{
			{TransactionID: "t1", Type: models.TransactionReceived, Amount: decimal.NewFromInt(500), CurrencyCode: "USD", Counterparty: "Sarah Chen", Date: "2023-10-25", Status: models.StatusCompleted},
			{TransactionID: "t2", Type: models.TransactionExchange, Amount: decimal.NewFromInt(200), CurrencyCode: "EUR", Counterparty: "Exchange Service", Date: "2023-10-24", Status: models.StatusCompleted},
			{TransactionID: "t3", Type: models.TransactionSent, Amount: decimal.NewFromInt(50), CurrencyCode: "USD", Counterparty: "Uber Trip", Date: "2023-10-23", Status: models.StatusCompleted},
		},
		NearbyRequests: []models.NearbyRequest{
			{
				RequestID:    "r1",
				UserID:       "u2",
				UserName:     "Jordan Smith",
				UserAvatar:   "https://picsum.photos/201",
				DistanceKm:   0.5,
				Amount:       decimal.NewFromInt(100),
				FromCurrency: "USD",
				ToCurrency:   "EUR",
				Rate:         decimal.RequireFromString("0.92"),
				ExpiresAt:    now.Add(time.Hour).UnixMilli(),
			},
			{
				RequestID:    "r2",
				UserID:       "u3",
				UserName:     "Emily Doe",
				UserAvatar:   "https://picsum.photos/202",
				DistanceKm:   1.2,
				Amount:       decimal.NewFromInt(5000),
				FromCurrency: "JPY",
				ToCurrency:   "USD",
				Rate:         decimal.RequireFromString("0.0066"),
				ExpiresAt:    now.Add(2 * time.Hour).UnixMilli(),
			},
			{
				RequestID:    "r3",
				UserID:       "u4",
				UserName:     "Michael Brown",
				UserAvatar:   "https://picsum.photos/203",
				DistanceKm:   2.5,
				Amount:       decimal.NewFromInt(50),
				FromCurrency: "GBP",
				ToCurrency:   "USD",
				Rate:         decimal.RequireFromString("1.25"),
				ExpiresAt:    now.Add(30 * time.Minute).UnixMilli(),
			},
		},
	}
}
