package dto

import (
	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/shopspring/decimal"
)

// NearbyRequestResponse defines the data returned for an active nearby
// exchange request.
type NearbyRequestResponse struct {
	RequestID    string          `json:"id"`
	UserID       string          `json:"userId"`
	UserName     string          `json:"userName"`
	UserAvatar   string          `json:"userAvatar"`
	DistanceKm   float64         `json:"distanceKm"`
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	ExpiresAt    int64           `json:"expiresAt"`
}

// ToNearbyRequestResponse converts a models.NearbyRequest to a DTO.
func ToNearbyRequestResponse(req *models.NearbyRequest) NearbyRequestResponse {
	return NearbyRequestResponse{
		RequestID:    req.RequestID,
		UserID:       req.UserID,
		UserName:     req.UserName,
		UserAvatar:   req.UserAvatar,
		DistanceKm:   req.DistanceKm,
		Amount:       req.Amount,
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Rate:         req.Rate,
		ExpiresAt:    req.ExpiresAt,
	}
}

// ToListNearbyRequestResponse converts a slice of models.NearbyRequest to DTOs.
func ToListNearbyRequestResponse(reqs []models.NearbyRequest) []NearbyRequestResponse {
	res := make([]NearbyRequestResponse, len(reqs))
	for i, req := range reqs {
		res[i] = ToNearbyRequestResponse(&req)
	}
	return res
}
