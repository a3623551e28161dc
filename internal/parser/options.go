package parser

import (
	"strings"

	"quiz-dump/internal/config"
)

// DefaultSeparator is the dash line exam dumps put between question blocks.
var DefaultSeparator = strings.Repeat("-", 40)

// DefaultAttributionFragments are boilerplate lines dropped when they make up
// a whole body line.
var DefaultAttributionFragments = []string{"Amazon's"}

// DefaultBrandPhrases drop any body line that contains them.
var DefaultBrandPhrases = []string{"AWS Certified Solutions Architect"}

type options struct {
	separator            string
	metadataEndMarker    string
	attributionFragments []string
	brandPhrases         []string
	workers              int
}

func defaultOptions() options {
	return options{
		separator:            DefaultSeparator,
		attributionFragments: DefaultAttributionFragments,
		brandPhrases:         DefaultBrandPhrases,
		workers:              4,
	}
}

// Option configures a Parser.
type Option func(*options)

// WithSeparator sets the literal line that delimits question blocks.
func WithSeparator(separator string) Option {
	return func(o *options) {
		if s := strings.TrimSpace(separator); s != "" {
			o.separator = s
		}
	}
}

// WithMetadataEndMarker sets the substring identifying the last line of the
// boilerplate header. When empty, a line of the form "[All ... Questions]"
// is used as the boundary.
func WithMetadataEndMarker(marker string) Option {
	return func(o *options) {
		o.metadataEndMarker = strings.TrimSpace(marker)
	}
}

// WithAttributionFragments replaces the exact-match boilerplate lines.
func WithAttributionFragments(fragments ...string) Option {
	return func(o *options) {
		o.attributionFragments = nonEmpty(fragments)
	}
}

// WithBrandPhrases replaces the phrases that mark a body line as boilerplate.
func WithBrandPhrases(phrases ...string) Option {
	return func(o *options) {
		o.brandPhrases = nonEmpty(phrases)
	}
}

// WithWorkers bounds the goroutines used by ParseConcurrent.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// NewFromConfig builds a Parser from the document section of the configuration.
// Empty settings keep the defaults.
func NewFromConfig(cfg config.DocumentConfig) *Parser {
	opts := []Option{
		WithSeparator(cfg.Separator),
		WithMetadataEndMarker(cfg.MetadataEndMarker),
		WithWorkers(cfg.Workers),
	}
	if len(cfg.AttributionFragments) > 0 {
		opts = append(opts, WithAttributionFragments(cfg.AttributionFragments...))
	}
	if len(cfg.BrandPhrases) > 0 {
		opts = append(opts, WithBrandPhrases(cfg.BrandPhrases...))
	}
	return New(opts...)
}
