package assessment

import (
	"errors"
	"math"
	"strings"

	"rushdrop/internal/pkg/errs"
	"rushdrop/internal/pkg/guard"
)

const (
	// MinScore is the score of the least reliable driver.
	MinScore = 0.0
	// MaxScore is the score of the most reliable driver.
	MaxScore = 1.0
)

// ErrResultIsNotConstructed is returned when validating a zero-value Result.
var ErrResultIsNotConstructed = errors.New("Result must be created via NewResult constructor")

// Result is the outcome of an assessment. A failed assessment produces no
// Result at all; there is no defaulted or partial value.
type Result struct {
	reliabilityScore float64
	riskFactors      string
	recommendation   string
	guard            guard.ConstructorGuard
}

// NewResult validates the output schema: score within [MinScore, MaxScore]
// (NaN rejected), risk factors and recommendation non-empty.
func NewResult(reliabilityScore float64, riskFactors, recommendation string) (Result, error) {
	r := Result{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setReliabilityScore(reliabilityScore),
		r.setRiskFactors(riskFactors),
		r.setRecommendation(recommendation),
	); err != nil {
		return Result{}, err
	}

	return r, nil
}

// Validate ensures the result was built by NewResult.
func (r Result) Validate() error {
	return r.guard.Validate(ErrResultIsNotConstructed)
}

// ReliabilityScore returns the score, 1 being the most reliable.
func (r Result) ReliabilityScore() float64 {
	return r.reliabilityScore
}

// ScorePercent returns the score as a rounded percentage for display.
func (r Result) ScorePercent() int {
	return int(math.Round(r.reliabilityScore * 100))
}

// RiskFactors returns the summary of identified risk factors.
func (r Result) RiskFactors() string {
	return r.riskFactors
}

// Recommendation returns whether, and why, to use this driver.
func (r Result) Recommendation() string {
	return r.recommendation
}

func (r *Result) setReliabilityScore(score float64) error {
	if math.IsNaN(score) || score < MinScore || score > MaxScore {
		return errs.NewValueIsOutOfRangeError("reliabilityScore", score, MinScore, MaxScore)
	}
	r.reliabilityScore = score
	return nil
}

func (r *Result) setRiskFactors(v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError("riskFactors")
	}
	r.riskFactors = v
	return nil
}

func (r *Result) setRecommendation(v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError("recommendation")
	}
	r.recommendation = v
	return nil
}
