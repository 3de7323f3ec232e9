package dto

import (
	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/shopspring/decimal"
)

// WalletResponse defines the data returned for the session wallet.
type WalletResponse struct {
	UserID           string          `json:"userID"`
	Name             string          `json:"name"`
	Avatar           string          `json:"avatar"`
	WalletBalance    decimal.Decimal `json:"walletBalance"`
	FormattedBalance string          `json:"formattedBalance"`
	BaseCurrency     string          `json:"baseCurrency"`
}

// ToWalletResponse converts a models.User to a WalletResponse DTO.
func ToWalletResponse(user *models.User, formattedBalance string) WalletResponse {
	return WalletResponse{
		UserID:           user.UserID,
		Name:             user.Name,
		Avatar:           user.Avatar,
		WalletBalance:    user.WalletBalance,
		FormattedBalance: formattedBalance,
		BaseCurrency:     user.BaseCurrency,
	}
}
