// Package usecase implements the business logic for the growth feature.
package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"scorecard_backend/internal/feature/growth/domain/entity"
)

const (
	// MinScore and MaxScore bound an accepted per-metric answer.
	MinScore = 1
	MaxScore = 5

	// strongThreshold and solidThreshold split the total score into the
	// three classification bands.
	strongThreshold = 60
	solidThreshold  = 45
)

// Recorder abstracts the persistence layer for growth results.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type Recorder interface {
	// UpsertGrowth merges a growth result into the user's company record.
	UpsertGrowth(ctx context.Context, user, company string, res entity.Result) error
}

// growthUsecase implements the growth scorecard evaluation.
type growthUsecase struct {
	recorder Recorder
}

// NewGrowthUsecase creates a new growthUsecase with the given recorder.
func NewGrowthUsecase(r Recorder) *growthUsecase {
	return &growthUsecase{recorder: r}
}

// Evaluate scores the raw answers against the fixed metric catalog, persists
// the result for the user and company, and returns it.
//
// Answers are positional: answers[i] belongs to the i-th catalog metric. An
// answer that does not parse as an integer in [1,5] scores 0 and adds nothing
// to the total. That silent-zero policy is deliberate: a malformed scorecard
// still evaluates, it just scores lower. Callers never see a parse error.
func (u *growthUsecase) Evaluate(ctx context.Context, user, company string, answers []string) (entity.Result, error) {
	metrics := entity.Catalog()

	total := 0
	scores := make([]entity.MetricScore, 0, len(metrics))
	for i, m := range metrics {
		var raw string
		if i < len(answers) {
			raw = answers[i]
		}
		score := 0
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n >= MinScore && n <= MaxScore {
			score = n
			total += n
		}
		scores = append(scores, entity.MetricScore{Metric: m.Name, Score: score})
	}

	res := entity.Result{
		TotalScore:     total,
		MetricScores:   scores,
		Classification: classify(total),
	}
	if err := u.recorder.UpsertGrowth(ctx, user, company, res); err != nil {
		return entity.Result{}, fmt.Errorf("save growth result: %w", err)
	}
	return res, nil
}

// classify maps the total score to its classification band.
func classify(total int) string {
	switch {
	case total >= strongThreshold:
		return "Strong Growth Potential, high upside."
	case total >= solidThreshold:
		return "Solid Growth Potential, worth watching."
	default:
		return "Riskier or unproven growth."
	}
}
