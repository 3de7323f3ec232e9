package dto

// InsightResponse carries the AI-generated financial insight blurb.
type InsightResponse struct {
	Insight string `json:"insight"`
}
