package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/FlowCashApp/flowcash_backend/internal/apperrors"
	portsrepo "github.com/FlowCashApp/flowcash_backend/internal/core/ports/repositories"
	portssvc "github.com/FlowCashApp/flowcash_backend/internal/core/ports/services"
	"github.com/FlowCashApp/flowcash_backend/internal/dto"
	"github.com/FlowCashApp/flowcash_backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// exchangeCounterparty labels ledger entries created by confirmed exchanges.
const exchangeCounterparty = "P2P Exchange"

// ExchangeService orchestrates the session's exchange flows. It owns all
// session-scoped state (the request under review, its safety tip, and the
// broadcast preview) and is the only writer of wallet balance and ledger.
//
// Generation counters guard against stale async results: when a selection or
// analysis is superseded, the earlier call's result is discarded instead of
// overwriting newer state.
type ExchangeService struct {
	nearbyRepo   portsrepo.NearbyRequestRepositoryFacade
	walletRepo   portsrepo.WalletRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	gateway      portssvc.AIGatewaySvcFacade

	// When true, the quote amount is converted into the wallet's base
	// currency through the rate table before deduction. When false the raw
	// quote amount is subtracted regardless of currency mismatch, matching
	// the original app.
	convertDeduction bool

	mu         sync.Mutex
	selected   *models.NearbyRequest
	safetyTip  string
	safetyGen  uint64
	analyzing  bool
	analyzeGen uint64
	preview    *dto.ParsedPreview
}

// NewExchangeService creates a new ExchangeService.
func NewExchangeService(
	nearbyRepo portsrepo.NearbyRequestRepositoryFacade,
	walletRepo portsrepo.WalletRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	gateway portssvc.AIGatewaySvcFacade,
	convertDeduction bool,
) *ExchangeService {
	return &ExchangeService{
		nearbyRepo:       nearbyRepo,
		walletRepo:       walletRepo,
		currencyRepo:     currencyRepo,
		ledgerRepo:       ledgerRepo,
		gateway:          gateway,
		convertDeduction: convertDeduction,
	}
}

func (s *ExchangeService) ListNearbyRequests(ctx context.Context) ([]models.NearbyRequest, error) {
	requests, err := s.nearbyRepo.ListActiveRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nearby requests in service: %w", err)
	}
	if requests == nil {
		return []models.NearbyRequest{}, nil
	}
	return requests, nil
}

// SelectNearby puts a nearby request under review. Any prior selection is
// replaced and its safety tip discarded before the new safety call starts.
func (s *ExchangeService) SelectNearby(ctx context.Context, requestID string) (*dto.ExchangeReview, error) {
	req, err := s.nearbyRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to select nearby request: %w", err)
	}

	s.mu.Lock()
	s.selected = req
	s.safetyTip = ""
	s.safetyGen++
	gen := s.safetyGen
	s.mu.Unlock()

	// The gateway never fails outward; a fallback sentence comes back
	// instead, and it must not block the review.
	tip := s.gateway.GetSafetyAnalysis(ctx, *req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.safetyGen && s.selected != nil && s.selected.RequestID == req.RequestID {
		s.safetyTip = tip
		return buildReview(s.selected, s.safetyTip), nil
	}
	// Superseded while the safety call was in flight: answer this caller
	// with its own review but leave the session state to the newer owner.
	return buildReview(req, tip), nil
}

func (s *ExchangeService) CurrentReview(_ context.Context) (*dto.ExchangeReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil, apperrors.ErrNoActiveReview
	}
	return buildReview(s.selected, s.safetyTip), nil
}

func (s *ExchangeService) CancelReview(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.safetyTip = ""
	s.safetyGen++
}

// ConfirmExchange commits the reviewed exchange. The whole transition
// (balance deduction, ledger append, nearby removal) runs under the session
// mutex so no interleaved commit can observe partial state.
func (s *ExchangeService) ConfirmExchange(ctx context.Context) (*dto.ExchangeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil, apperrors.ErrNoActiveReview
	}
	req := *s.selected

	payAmount := req.Amount.Mul(req.Rate)

	deduction := payAmount
	if s.convertDeduction {
		user, err := s.walletRepo.FindUser(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load wallet for exchange commit: %w", err)
		}
		deduction, err = s.convertAmount(ctx, payAmount, req.ToCurrency, user.BaseCurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to convert deduction amount: %w", err)
		}
	}

	newBalance, err := s.walletRepo.AdjustBalance(ctx, deduction.Neg())
	if err != nil {
		return nil, fmt.Errorf("failed to deduct wallet balance: %w", err)
	}

	txn := models.Transaction{
		TransactionID: uuid.NewString(),
		Type:          models.TransactionSent,
		Amount:        payAmount,
		CurrencyCode:  req.ToCurrency,
		Counterparty:  exchangeCounterparty,
		Date:          time.Now().Format("2006-01-02"),
		Status:        models.StatusCompleted,
	}
	if err := s.ledgerRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record exchange transaction: %w", err)
	}

	if err := s.nearbyRepo.RemoveRequest(ctx, req.RequestID); err != nil {
		return nil, fmt.Errorf("failed to remove fulfilled nearby request: %w", err)
	}

	s.selected = nil
	s.safetyTip = ""
	s.safetyGen++

	return &dto.ExchangeResult{
		Transaction: dto.ToTransactionResponse(&txn),
		NewBalance:  newBalance,
	}, nil
}

// convertAmount converts through the USD-relative rate table. This is the
// explicit conversion step enabled by the CONVERT_DEDUCTION flag.
func (s *ExchangeService) convertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	if fromCode == toCode {
		return amount, nil
	}
	from, err := s.currencyRepo.FindCurrencyByCode(ctx, fromCode)
	if err != nil {
		return decimal.Zero, err
	}
	to, err := s.currencyRepo.FindCurrencyByCode(ctx, toCode)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(from.RateToUSD).Div(to.RateToUSD), nil
}

// AnalyzeRequestText parses free text into a broadcast preview. Empty text
// never reaches the gateway; a second submission while one is in flight is
// rejected with ErrAnalysisPending.
func (s *ExchangeService) AnalyzeRequestText(ctx context.Context, text string) (*dto.ParsedPreview, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: request text is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	if s.analyzing {
		s.mu.Unlock()
		return nil, apperrors.ErrAnalysisPending
	}
	s.analyzing = true
	s.analyzeGen++
	gen := s.analyzeGen
	s.mu.Unlock()

	parsed := s.gateway.ParseNaturalLanguageRequest(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.analyzeGen {
		// Session was reset while the parse was in flight; drop the result.
		return nil, nil
	}
	s.analyzing = false
	if parsed == nil {
		// Parse failed: stay in the composing state with no preview.
		return nil, nil
	}
	preview := &dto.ParsedPreview{
		Amount:       parsed.Amount,
		FromCurrency: parsed.FromCurrency,
		ToCurrency:   parsed.ToCurrency,
		Notes:        parsed.Notes,
	}
	s.preview = preview
	return preview, nil
}

// ComposeRequest sets the broadcast preview directly from structured input,
// bypassing the AI parse.
func (s *ExchangeService) ComposeRequest(ctx context.Context, req dto.ComposeExchangeRequest) (*dto.ParsedPreview, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	fromCurrency := strings.ToUpper(strings.TrimSpace(req.FromCurrency))
	if fromCurrency == "" {
		fromCurrency = "USD"
	}
	toCurrency := strings.ToUpper(strings.TrimSpace(req.ToCurrency))
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, toCurrency); err != nil {
		return nil, fmt.Errorf("%w: unknown 'to' currency '%s'", apperrors.ErrValidation, toCurrency)
	}
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, fromCurrency); err != nil {
		return nil, fmt.Errorf("%w: unknown 'from' currency '%s'", apperrors.ErrValidation, fromCurrency)
	}

	preview := &dto.ParsedPreview{
		Amount:       req.Amount,
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Notes:        req.Notes,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.preview = preview
	return preview, nil
}

// BroadcastRequest posts the previewed request and clears the composing
// state. No transaction or ledger entry is created for a broadcast.
func (s *ExchangeService) BroadcastRequest(_ context.Context) (*dto.BroadcastResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.preview == nil {
		return nil, apperrors.ErrNoParsedRequest
	}
	s.preview = nil
	return &dto.BroadcastResult{
		Message: "Your request has been broadcasted to nearby peers!",
	}, nil
}

// ResetSession restores all in-memory state to its seed, the backend
// equivalent of reloading the original single-page app.
func (s *ExchangeService) ResetSession(ctx context.Context) error {
	s.mu.Lock()
	s.selected = nil
	s.safetyTip = ""
	s.safetyGen++
	s.analyzing = false
	s.analyzeGen++
	s.preview = nil
	s.mu.Unlock()

	if err := s.walletRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset wallet: %w", err)
	}
	if err := s.ledgerRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset ledger: %w", err)
	}
	if err := s.nearbyRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset nearby requests: %w", err)
	}
	return nil
}

func buildReview(req *models.NearbyRequest, safetyTip string) *dto.ExchangeReview {
	return &dto.ExchangeReview{
		Request:            dto.ToNearbyRequestResponse(req),
		YouPay:             req.Amount.Mul(req.Rate),
		YouPayCurrency:     req.ToCurrency,
		YouReceive:         req.Amount,
		YouReceiveCurrency: req.FromCurrency,
		Rate:               req.Rate,
		SafetyTip:          safetyTip,
	}
}

var _ portssvc.ExchangeSvcFacade = (*ExchangeService)(nil)
