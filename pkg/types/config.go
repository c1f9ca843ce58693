package types

import (
	"errors"
	"slices"
)

// Config holds the settings the CLI reads from config.yaml and flags.
type Config struct {
	LogLevel   string   `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Sets       []string `json:"sets" yaml:"sets" mapstructure:"sets"`
	Principles []string `json:"principles" yaml:"principles" mapstructure:"principles"`
	JSON       bool     `json:"json" yaml:"json" mapstructure:"json"`
}

// Scenario sets.
const (
	SetGeneral = "general" // authentication, shapes, birds, printers, notifications
	SetSite    = "site"    // construction site analogy
)

// Principle identifiers.
const (
	PrincipleSRP = "srp"
	PrincipleOCP = "ocp"
	PrincipleLSP = "lsp"
	PrincipleISP = "isp"
	PrincipleDIP = "dip"
)

// Variants of a demonstration.
const (
	VariantBefore = "before"
	VariantAfter  = "after"
)

// Log levels accepted in Config.LogLevel.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// AllSets lists scenario sets in run order.
var AllSets = []string{SetGeneral, SetSite}

// AllPrinciples lists principles in SOLID order.
var AllPrinciples = []string{PrincipleSRP, PrincipleOCP, PrincipleLSP, PrincipleISP, PrincipleDIP}

// AllVariants lists variants in run order.
var AllVariants = []string{VariantBefore, VariantAfter}

var logLevels = []string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}

// Config validation errors.
var (
	ErrUnknownSet       = errors.New("unknown scenario set")
	ErrUnknownPrinciple = errors.New("unknown principle")
	ErrUnknownVariant   = errors.New("unknown variant")
	ErrUnknownLogLevel  = errors.New("unknown log level")
)

// DefaultConfig returns the configuration used when no config.yaml exists.
func DefaultConfig() Config {
	return Config{
		LogLevel:   LogLevelWarn,
		Sets:       slices.Clone(AllSets),
		Principles: slices.Clone(AllPrinciples),
	}
}

// Validate checks that every named set, principle and log level is known.
// Empty lists are valid and mean "all".
func (c Config) Validate() error {
	if c.LogLevel != "" && !slices.Contains(logLevels, c.LogLevel) {
		return ErrUnknownLogLevel
	}
	for _, s := range c.Sets {
		if !slices.Contains(AllSets, s) {
			return ErrUnknownSet
		}
	}
	for _, p := range c.Principles {
		if !slices.Contains(AllPrinciples, p) {
			return ErrUnknownPrinciple
		}
	}
	return nil
}
