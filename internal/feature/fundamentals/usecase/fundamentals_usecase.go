package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"scorecard_backend/internal/feature/fundamentals/domain/entity"
)

// Recorder abstracts the persistence layer for fundamentals results.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type Recorder interface {
	// UpsertFundamentals merges a fundamentals result into the user's company record.
	UpsertFundamentals(ctx context.Context, user, company string, res entity.Result) error
}

// Figures are the nine raw string fields of a fundamentals submission,
// exactly as received from the boundary layer. Parsing happens here, not in
// the transport.
type Figures struct {
	PERatio            string
	CurrentAssets      string
	CurrentLiabilities string
	TotalAssets        string
	TotalLiabilities   string
	OperatingIncome    string
	TotalRevenue       string
	FreeCashFlow       string
	SharesOutstanding  string
}

// figures holds the parsed numeric values.
type figures struct {
	peRatio            float64
	currentAssets      float64
	currentLiabilities float64
	totalAssets        float64
	totalLiabilities   float64
	operatingIncome    float64
	totalRevenue       float64
	freeCashFlow       float64
	sharesOutstanding  float64
}

// positiveMarkers are the substrings that count an evaluation as positive
// when deriving the verdict. The match is a plain substring test, so a detail
// containing e.g. "unhealthy" would still count; that coarse heuristic is
// kept as-is for behavior compatibility.
var positiveMarkers = []string{"healthy", "excellent", "strong", "fairly"}

// fundamentalsUsecase implements the fundamentals evaluation.
type fundamentalsUsecase struct {
	recorder Recorder
}

// NewFundamentalsUsecase creates a new fundamentalsUsecase with the given recorder.
func NewFundamentalsUsecase(r Recorder) *fundamentalsUsecase {
	return &fundamentalsUsecase{recorder: r}
}

// Evaluate parses the nine figures, derives the five metric evaluations and
// the verdict, persists the result for the user and company, and returns it.
// Any missing or unparsable figure aborts with ErrInvalidInput before
// anything is computed or stored.
func (u *fundamentalsUsecase) Evaluate(ctx context.Context, user, company string, in Figures) (entity.Result, error) {
	f, err := parseFigures(in)
	if err != nil {
		return entity.Result{}, err
	}

	evaluations := evaluate(company, f)
	res := entity.Result{
		Evaluations: evaluations,
		Verdict:     verdict(company, evaluations),
	}
	if err := u.recorder.UpsertFundamentals(ctx, user, company, res); err != nil {
		return entity.Result{}, fmt.Errorf("save fundamentals result: %w", err)
	}
	return res, nil
}

// parseFigures converts every raw field, failing the whole submission on the
// first field that is not a valid number.
func parseFigures(in Figures) (figures, error) {
	type rawField struct {
		name string
		raw  string
		dst  *float64
	}
	var f figures
	fields := []rawField{
		{"pe_ratio", in.PERatio, &f.peRatio},
		{"current_assets", in.CurrentAssets, &f.currentAssets},
		{"current_liabilities", in.CurrentLiabilities, &f.currentLiabilities},
		{"total_assets", in.TotalAssets, &f.totalAssets},
		{"total_liabilities", in.TotalLiabilities, &f.totalLiabilities},
		{"operating_income", in.OperatingIncome, &f.operatingIncome},
		{"total_revenue", in.TotalRevenue, &f.totalRevenue},
		{"free_cash_flow", in.FreeCashFlow, &f.freeCashFlow},
		{"shares_outstanding", in.SharesOutstanding, &f.sharesOutstanding},
	}
	for _, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field.raw), 64)
		if err != nil {
			return figures{}, fmt.Errorf("%w: %s", ErrInvalidInput, field.name)
		}
		*field.dst = v
	}
	return f, nil
}

// safeDiv divides a by b, treating a zero denominator as a zero ratio rather
// than an error.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// evaluate derives the five qualitative metric evaluations.
func evaluate(company string, f figures) []entity.Evaluation {
	evaluations := make([]entity.Evaluation, 0, 5)

	var peDetail string
	switch {
	case f.peRatio > 20:
		peDetail = "Overvalued, consider waiting for a better entry."
	case f.peRatio > 10:
		peDetail = fmt.Sprintf("%s is fairly or undervalued, that's a good sign!", company)
	default:
		peDetail = "Low P/E. Could be a value play or risky—check other metrics."
	}
	evaluations = append(evaluations, entity.Evaluation{Metric: "P/E Ratio", Detail: peDetail})

	currentDetail := "Healthy short-term financial position."
	if safeDiv(f.currentAssets, f.currentLiabilities) < 1 {
		currentDetail = "Short-term assets are insufficient to cover liabilities. Risky!"
	}
	evaluations = append(evaluations, entity.Evaluation{Metric: "Current Ratio", Detail: currentDetail})

	longTermDetail := "Strong long-term financial stability."
	if safeDiv(f.totalAssets, f.totalLiabilities) < 1 {
		longTermDetail = "Insufficient long-term assets to cover liabilities. Risky!"
	}
	evaluations = append(evaluations, entity.Evaluation{Metric: "Long-Term Ratio", Detail: longTermDetail})

	margin := safeDiv(f.operatingIncome, f.totalRevenue)
	pct := margin * 100
	var marginDetail string
	switch {
	case margin < 0.05:
		marginDetail = fmt.Sprintf("Low profit margin (%.2f%%). Red flag.", pct)
	case margin < 0.10:
		marginDetail = fmt.Sprintf("Healthy profit margin (%.2f%%).", pct)
	default:
		marginDetail = fmt.Sprintf("High profit margin (%.2f%%). Ensure sustainability.", pct)
	}
	evaluations = append(evaluations, entity.Evaluation{Metric: "Operating Margin", Detail: marginDetail})

	fcfPerShare := safeDiv(f.freeCashFlow, f.sharesOutstanding)
	var fcfDetail string
	switch {
	case fcfPerShare < 4:
		fcfDetail = "Weak FCF. May not provide good returns."
	case fcfPerShare <= 7:
		fcfDetail = "Moderate FCF. Reasonably strong investment candidate."
	default:
		fcfDetail = "Excellent FCF. Promising if debt is low."
	}
	evaluations = append(evaluations, entity.Evaluation{Metric: "Free Cash Flow per Share", Detail: fcfDetail})

	return evaluations
}

// verdict counts the evaluations whose detail contains a positive marker and
// maps that count to one of three closing statements.
func verdict(company string, evaluations []entity.Evaluation) string {
	strongCount := 0
	for _, e := range evaluations {
		detail := strings.ToLower(e.Detail)
		for _, marker := range positiveMarkers {
			if strings.Contains(detail, marker) {
				strongCount++
				break
			}
		}
	}

	switch {
	case strongCount >= 4:
		return fmt.Sprintf("%s shows strong financial health and may be a good investment.", company)
	case strongCount == 3:
		return fmt.Sprintf("%s appears solid but warrants further research.", company)
	default:
		return fmt.Sprintf("%s may carry higher risk. Proceed with caution.", company)
	}
}
