// Package entity defines the domain entities for the growth feature.
package entity

// Metric is one entry of the fixed growth scorecard catalog.
// Ideal is the benchmark shown to the user; it does not affect scoring.
type Metric struct {
	Name  string `json:"name"`
	Ideal string `json:"ideal"`
}

// MetricScore is the recorded score for a single scorecard metric.
type MetricScore struct {
	Metric string `json:"metric"`
	Score  int    `json:"score"`
}

// Result holds the outcome of one growth scorecard evaluation.
type Result struct {
	TotalScore     int           `json:"total_score"`
	MetricScores   []MetricScore `json:"metric_scores"`
	Classification string        `json:"result"`
}

// catalog is the fixed list of growth metrics every scorecard is built from.
var catalog = []Metric{
	{Name: "Revenue Growth (YoY)", Ideal: ">15% annually"},
	{Name: "EPS Growth (YoY)", Ideal: ">20% annually"},
	{Name: "Total Addressable Market (TAM)", Ideal: "Expanding multi-billion"},
	{Name: "Gross Margin", Ideal: ">50%"},
	{Name: "Operating Margin", Ideal: ">15% or increasing"},
	{Name: "Free Cash Flow (FCF)", Ideal: "Positive & growing"},
	{Name: "Return on Equity (ROE)", Ideal: ">15%"},
	{Name: "Return on Invested Capital (ROIC)", Ideal: ">10%"},
	{Name: "PEG Ratio", Ideal: "< 1.5"},
	{Name: "Insider Ownership", Ideal: ">5% or increasing"},
	{Name: "Institutional Ownership", Ideal: ">60% or growing"},
	{Name: "Customer/User Growth", Ideal: "Accelerating"},
	{Name: "Customer Retention / NRR", Ideal: ">100% NRR or low churn"},
	{Name: "Competitive Advantage (Moat)", Ideal: "Clear & defensible"},
	{Name: "Debt Levels", Ideal: "Low or decreasing"},
}

// Catalog returns the fixed growth metric catalog in display order.
func Catalog() []Metric {
	out := make([]Metric, len(catalog))
	copy(out, catalog)
	return out
}
