package sortbench

import "golang.org/x/perf/benchmath"

// Config holds configuration settings for sortbench
type Config struct {
	Bound              int                  // exclusive upper bound for generated sequence values
	NumWorkers         int                  // maximum number of workers running trials in parallel
	ResultChanBuffSize int                  // buffer size for passing trial results to output
	Assumption         benchmath.Assumption // distribution assumption for report summaries
	Confidence         float64              // confidence level for report summary intervals
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		Bound:              1000,
		NumWorkers:         4,
		ResultChanBuffSize: 10,
		Assumption:         benchmath.AssumeNothing,
		Confidence:         0.95,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	if c.Bound < 1 {
		c.Bound = d.Bound
	}
	if c.NumWorkers < 1 {
		c.NumWorkers = d.NumWorkers
	}
	if c.ResultChanBuffSize < 0 {
		c.ResultChanBuffSize = d.ResultChanBuffSize
	}
	if c.Assumption == nil {
		c.Assumption = d.Assumption
	}
	if c.Confidence <= 0 || c.Confidence >= 1 {
		c.Confidence = d.Confidence
	}
	return c
}
