package assessor

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"rushdrop/internal/core/domain/model/assessment"
	"rushdrop/internal/pkg/errs"
)

var (
	tripsPattern    = regexp.MustCompile(`(?i)\b(\d+)\s+(?:trips|deliveries|rides)\b`)
	incidentPattern = regexp.MustCompile(`(?i)\b(\d+|no|one|two|three|four|five|six|seven|eight|nine|ten)\s+(?:\w+\s+)?(?:incidents?|complaints?|accidents?)\b`)
	latePattern     = regexp.MustCompile(`(?i)\blate\b`)
	ratingPattern   = regexp.MustCompile(`(\d(?:\.\d+)?)\s*/\s*5\b`)
)

var numberWords = map[string]int{
	"no": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Weights tunes RulesAssessor. The score is the logistic function of
// Intercept plus the weighted features.
type Weights struct {
	Intercept  float64
	Experience float64
	Rating     float64
	Incident   float64
	Late       float64
}

// DefaultWeights scores an experienced, well rated driver with no incidents above 0.9.
func DefaultWeights() Weights {
	return Weights{
		Intercept:  0.5,
		Experience: 1.5,
		Rating:     4.0,
		Incident:   -0.6,
		Late:       -0.3,
	}
}

const (
	experiencedTrips = 200
	neutralRating    = 0.8
	lowRating        = 4.5
)

// RulesAssessor derives a score from what the free text states.
type RulesAssessor struct {
	weights Weights
}

func NewRulesAssessor(weights Weights) *RulesAssessor {
	return &RulesAssessor{weights: weights}
}

type features struct {
	trips     int
	tripsSeen bool
	incidents int
	lateCount int
	rating    float64
	ratedSeen bool
}

func (a *RulesAssessor) Assess(ctx context.Context, req assessment.Request) (assessment.Result, error) {
	if err := checkRequest(ctx, req); err != nil {
		return assessment.Result{}, err
	}

	f := extractFeatures(req)
	score := a.score(f)

	result, err := assessment.NewResult(score, riskFactors(f), recommendation(score))
	if err != nil {
		return assessment.Result{}, errs.NewServiceUnavailableErrorWithCause(serviceName, err)
	}
	return result, nil
}

func extractFeatures(req assessment.Request) features {
	text := req.DriverHistory() + "\n" + req.StudentRatings()
	f := features{}

	if m := tripsPattern.FindStringSubmatch(req.DriverHistory()); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			f.trips, f.tripsSeen = n, true
		}
	}

	for _, m := range incidentPattern.FindAllStringSubmatch(text, -1) {
		f.incidents += countWord(m[1])
	}

	f.lateCount = len(latePattern.FindAllString(text, -1))

	if m := ratingPattern.FindStringSubmatch(req.StudentRatings()); m != nil {
		if r, err := strconv.ParseFloat(m[1], 64); err == nil && r >= 0 && r <= 5 {
			f.rating, f.ratedSeen = r, true
		}
	}
	return f
}

func countWord(s string) int {
	if n, ok := numberWords[strings.ToLower(s)]; ok {
		return n
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func (a *RulesAssessor) score(f features) float64 {
	experience := math.Min(float64(f.trips)/experiencedTrips, 1)
	rating := neutralRating
	if f.ratedSeen {
		rating = f.rating / 5
	}

	z := a.weights.Intercept +
		a.weights.Experience*experience +
		a.weights.Rating*(rating-neutralRating) +
		a.weights.Incident*float64(f.incidents) +
		a.weights.Late*float64(f.lateCount)

	score := 1 / (1 + math.Exp(-z))
	return math.Round(score*100) / 100
}

func riskFactors(f features) string {
	var risks []string
	if f.incidents > 0 {
		risks = append(risks, fmt.Sprintf("%d reported incident(s).", f.incidents))
	}
	if f.lateCount > 0 {
		risks = append(risks, fmt.Sprintf("%d mention(s) of late delivery.", f.lateCount))
	}
	switch {
	case !f.tripsSeen:
		risks = append(risks, "Trip history is not stated.")
	case f.trips < experiencedTrips/4:
		risks = append(risks, fmt.Sprintf("Limited history of %d trips.", f.trips))
	}
	switch {
	case !f.ratedSeen:
		risks = append(risks, "No average rating stated.")
	case f.rating < lowRating:
		risks = append(risks, fmt.Sprintf("Average rating of %.1f/5 is below %.1f.", f.rating, lowRating))
	}

	if len(risks) == 0 {
		return "No significant risk factors identified."
	}
	return strings.Join(risks, " ")
}

func recommendation(score float64) string {
	switch {
	case score >= 0.8:
		return "Highly recommended: a strong track record with minimal issues."
	case score >= 0.6:
		return "Recommended, with minor reservations noted in the risk factors."
	case score >= 0.4:
		return "Use with caution: review the risk factors before confirming."
	default:
		return "Not recommended: the history shows significant reliability concerns."
	}
}
