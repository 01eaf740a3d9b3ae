package bench

import (
	"strconv"
	"strings"
	"time"

	"github.com/scottcagno/searchbench/pkg/logger"
)

const (
	defaultIterations    = 100
	minIterations        = 1
	maxIterations        = 1_000_000
	defaultProgressEvery = time.Second
)

// Config holds the settings of a benchmark run.
type Config struct {
	Iterations    int            // timed calls per searcher and case
	Runes         bool           // search code points instead of bytes
	ProgressEvery time.Duration  // minimum gap between progress logs
	Logger        *logger.Logger // logger
}

func (conf *Config) String() string {
	var sb strings.Builder
	sb.WriteString("Iterations: ")
	sb.WriteString(strconv.Itoa(conf.Iterations))
	sb.WriteString(", Runes: ")
	sb.WriteString(strconv.FormatBool(conf.Runes))
	sb.WriteString(", ProgressEvery: ")
	sb.WriteString(conf.ProgressEvery.String())
	return sb.String()
}

// checkConfig is a helper to make sure the configuration
// options are correct and handles and missing options
func checkConfig(conf *Config) *Config {
	if conf == nil {
		conf = new(Config)
	}
	if conf.Iterations <= 0 {
		conf.Iterations = defaultIterations
	}
	if conf.Iterations < minIterations {
		conf.Iterations = minIterations
	}
	if conf.Iterations > maxIterations {
		conf.Iterations = maxIterations
	}
	if conf.ProgressEvery <= 0 {
		conf.ProgressEvery = defaultProgressEvery
	}
	if conf.Logger == nil {
		conf.Logger = logger.DefaultLogger
	}
	return conf
}
