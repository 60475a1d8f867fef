// Package entity defines the domain entities for the fundamentals feature.
package entity

// Evaluation is one qualitative judgement about a single financial metric.
type Evaluation struct {
	Metric string `json:"metric"`
	Detail string `json:"detail"`
}

// Result holds the outcome of one fundamentals evaluation.
type Result struct {
	Evaluations []Evaluation `json:"evaluations"`
	Verdict     string       `json:"verdict"`
}
