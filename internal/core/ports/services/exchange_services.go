package services

import (
	"context"

	"github.com/FlowCashApp/flowcash_backend/internal/dto"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
)

// ExchangeSvcFacade is the session orchestrator for peer-to-peer exchanges.
// It is the only writer of wallet balance and ledger state.
//
// Provide mode: SelectNearby -> (CancelReview | ConfirmExchange).
// Request mode: AnalyzeRequestText/ComposeRequest -> BroadcastRequest.
type ExchangeSvcFacade interface {
	ListNearbyRequests(ctx context.Context) ([]models.NearbyRequest, error)

	// SelectNearby puts a nearby request under review, replacing any prior
	// selection and discarding its safety tip. The returned review carries
	// the AI safety annotation for this selection.
	SelectNearby(ctx context.Context, requestID string) (*dto.ExchangeReview, error)

	// CurrentReview returns the review in progress, or ErrNoActiveReview.
	CurrentReview(ctx context.Context) (*dto.ExchangeReview, error)

	// CancelReview discards the selection and its safety tip.
	CancelReview(ctx context.Context)

	// ConfirmExchange commits the reviewed exchange: deducts the wallet
	// balance, prepends a "sent" ledger entry and removes the fulfilled
	// request from the active set.
	ConfirmExchange(ctx context.Context) (*dto.ExchangeResult, error)

	// AnalyzeRequestText parses free text into a broadcast preview. A nil
	// preview with a nil error means the parse failed and the caller stays
	// in the composing state.
	AnalyzeRequestText(ctx context.Context, text string) (*dto.ParsedPreview, error)

	// ComposeRequest sets the broadcast preview directly, bypassing the AI
	// parse.
	ComposeRequest(ctx context.Context, req dto.ComposeExchangeRequest) (*dto.ParsedPreview, error)

	// BroadcastRequest posts the previewed request to nearby peers and
	// clears the composing state. No ledger entry is created.
	BroadcastRequest(ctx context.Context) (*dto.BroadcastResult, error)

	// ResetSession restores all in-memory state to its seed, discarding the
	// session's selections, previews, ledger entries and balance changes.
	ResetSession(ctx context.Context) error
}
