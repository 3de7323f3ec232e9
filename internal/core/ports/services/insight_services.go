package services

import "context"

// InsightSvcFacade produces the AI financial insight for the session wallet.
type InsightSvcFacade interface {
	// GetFinancialInsight never surfaces AI failures; the gateway's fallback
	// strings flow through instead.
	GetFinancialInsight(ctx context.Context) (string, error)
}
