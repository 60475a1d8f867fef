// Package usecase implements the business logic for the risk feature:
// questionnaire scoring, score interpretation, and the advisory resolver.
package usecase

import (
	"context"
	"fmt"

	"scorecard_backend/internal/feature/risk/domain/entity"
)

const (
	// moderateFloor and aggressiveFloor split the total score into the
	// three investor bands: conservative below 20, aggressive from 30.
	moderateFloor   = 20
	aggressiveFloor = 30
)

// answerWeights maps an answer letter to its score contribution. Any other
// answer, including a missing one, contributes 0.
var answerWeights = map[string]int{"A": 1, "B": 2, "C": 3, "D": 4}

// Recorder abstracts the persistence layer for risk profiles.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type Recorder interface {
	// UpsertRisk sets the user-level risk profile.
	UpsertRisk(ctx context.Context, user string, profile entity.Profile) error
}

// riskUsecase implements the risk questionnaire evaluation.
type riskUsecase struct {
	recorder Recorder
}

// NewRiskUsecase creates a new riskUsecase with the given recorder.
func NewRiskUsecase(r Recorder) *riskUsecase {
	return &riskUsecase{recorder: r}
}

// Evaluate scores the raw answers against the fixed questionnaire, resolves
// the matching investor profile, persists it for the user, and returns it.
//
// Answers are positional: answers[i] belongs to the i-th question and must be
// one of the literal letters A-D to count. Anything else scores 0 for that
// question, same silent policy as the growth scorecard.
func (u *riskUsecase) Evaluate(ctx context.Context, user string, answers []string) (entity.Profile, error) {
	score := 0
	for i := range entity.Questionnaire() {
		if i < len(answers) {
			score += answerWeights[answers[i]]
		}
	}

	profile := entity.Profile{
		Score:   score,
		Message: Interpret(score),
		Advisor: AdvisorFor(score),
	}
	if err := u.recorder.UpsertRisk(ctx, user, profile); err != nil {
		return entity.Profile{}, fmt.Errorf("save risk profile: %w", err)
	}
	return profile, nil
}

// Interpret maps a total questionnaire score to its investor-band message.
func Interpret(score int) string {
	switch {
	case score < moderateFloor:
		return "You are a conservative investor, you prefer low risk and steady returns. You still may need to take calculated risks to meet financial goals."
	case score < aggressiveFloor:
		return "You are a moderate investor, you like to balance risk and reward. You are likely open to reasonable risks without major discomfort."
	default:
		return "You are an aggressive investor, you seek high returns, and accept volatility. You're comfortable taking significant risks for the potential of high returns."
	}
}
