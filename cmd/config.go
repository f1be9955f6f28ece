package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rushdrop/internal/core/application/flow"
	"rushdrop/internal/jobs"
	"rushdrop/internal/pkg/errs"
)

const (
	AssessmentProviderStatic = "static"
	AssessmentProviderRules  = "rules"

	DefaultHTTPPort           = "8080"
	DefaultAssessmentProvider = AssessmentProviderStatic
	DefaultAssessmentLatency  = 1500 * time.Millisecond
	DefaultFlowIdleTTL        = 30 * time.Minute
)

type Config struct {
	HTTPPort             string
	LogLevel             slog.Level
	MatchingDelay        time.Duration
	TrackingInterval     time.Duration
	DeliveryDelay        time.Duration
	AssessmentProvider   string
	AssessmentLatency    time.Duration
	AssessmentTimeout    time.Duration
	FlowIdleTTL          time.Duration
	FlowEvictionSchedule string
}

// Timings returns the flow durations of the configuration.
func (c Config) Timings() flow.Timings {
	return flow.Timings{
		MatchingDelay:     c.MatchingDelay,
		TrackingInterval:  c.TrackingInterval,
		DeliveryDelay:     c.DeliveryDelay,
		AssessmentTimeout: c.AssessmentTimeout,
	}
}

// ParseConfig reads every setting through getenv. Unset or empty keys take
// their default; malformed values are reported together.
func ParseConfig(getenv func(string) string) (Config, error) {
	p := parser{getenv: getenv}

	cfg := Config{
		HTTPPort:             p.string("HTTP_PORT", DefaultHTTPPort),
		LogLevel:             p.level("LOG_LEVEL", slog.LevelInfo),
		MatchingDelay:        p.duration("MATCHING_DELAY", flow.DefaultMatchingDelay),
		TrackingInterval:     p.duration("TRACKING_INTERVAL", flow.DefaultTrackingInterval),
		DeliveryDelay:        p.duration("DELIVERY_DELAY", flow.DefaultDeliveryDelay),
		AssessmentProvider:   strings.ToLower(p.string("ASSESSMENT_PROVIDER", DefaultAssessmentProvider)),
		AssessmentLatency:    p.duration("ASSESSMENT_LATENCY", DefaultAssessmentLatency),
		AssessmentTimeout:    p.duration("ASSESSMENT_TIMEOUT", flow.DefaultAssessmentTimeout),
		FlowIdleTTL:          p.duration("FLOW_IDLE_TTL", DefaultFlowIdleTTL),
		FlowEvictionSchedule: p.string("FLOW_EVICTION_SCHEDULE", jobs.DefaultFlowEvictionSchedule),
	}

	switch cfg.AssessmentProvider {
	case AssessmentProviderStatic, AssessmentProviderRules:
	default:
		p.fail(errs.NewValueIsInvalidErrorWithCause("ASSESSMENT_PROVIDER",
			fmt.Errorf("%q is not one of %q, %q", cfg.AssessmentProvider, AssessmentProviderStatic, AssessmentProviderRules)))
	}
	if cfg.AssessmentLatency < 0 {
		p.fail(errs.NewValueIsOutOfRangeError("ASSESSMENT_LATENCY", cfg.AssessmentLatency, 0, "unbounded"))
	}
	if cfg.FlowIdleTTL <= 0 {
		p.fail(errs.NewValueIsOutOfRangeError("FLOW_IDLE_TTL", cfg.FlowIdleTTL, time.Nanosecond, "unbounded"))
	}
	p.fail(cfg.Timings().Validate())

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type parser struct {
	getenv func(string) string
	errs   []error
}

func (p *parser) fail(err error) {
	if err != nil {
		p.errs = append(p.errs, err)
	}
}

func (p *parser) string(key, def string) string {
	if v := strings.TrimSpace(p.getenv(key)); v != "" {
		return v
	}
	return def
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(p.getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return d
}

func (p *parser) level(key string, def slog.Level) slog.Level {
	raw := strings.TrimSpace(p.getenv(key))
	if raw == "" {
		return def
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		p.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return level
}
