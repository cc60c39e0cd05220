package sortbench

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// AggregateStat summarizes the comparison counts of all valid trials for one
// algorithm at one input length. StdDev is the population statistic
// (divided by the trial count, not count-1).
type AggregateStat struct {
	Algorithm Algorithm
	Length    int
	Mean      float64
	StdDev    float64
	Trials    int // valid trials included in the statistics
	Skipped   int // failed trials excluded from the statistics
}

// Aggregate reduces the trial results of a single (algorithm, length) group
// to the mean and population standard deviation of their comparison counts.
// Failed trials (Err != nil) are excluded and counted in Skipped rather than
// silently folded in. It is an error to pass an empty group, a group mixing
// algorithms or lengths, or a group with no valid trial left.
func Aggregate(results []TrialResult) (AggregateStat, error) {
	if len(results) == 0 {
		return AggregateStat{}, NewInvalidInputError("results", len(results), "no trial results to aggregate")
	}

	agg := AggregateStat{Algorithm: results[0].Algorithm, Length: results[0].Length}
	counts := make([]float64, 0, len(results))
	for _, res := range results {
		if res.Algorithm != agg.Algorithm || res.Length != agg.Length {
			return AggregateStat{}, NewInvalidInputError("results", len(results), "group mixes algorithms or lengths")
		}
		if res.Err != nil {
			agg.Skipped++
			continue
		}
		counts = append(counts, float64(res.Comparisons))
	}
	if len(counts) == 0 {
		return AggregateStat{}, NewInvalidInputError("results", len(results), "every trial in the group failed")
	}

	agg.Trials = len(counts)
	agg.Mean = stat.Mean(counts, nil)
	agg.StdDev = stat.PopStdDev(counts, nil)
	return agg, nil
}

// AggregateAll groups results by (algorithm, length) and aggregates each
// group. The returned stats are ordered by algorithm, then length.
func AggregateAll(results []TrialResult) ([]AggregateStat, error) {
	type key struct {
		alg    Algorithm
		length int
	}

	groups := make(map[key][]TrialResult)
	keys := make([]key, 0)
	for _, res := range results {
		k := key{res.Algorithm, res.Length}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], res)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].alg != keys[j].alg {
			return keys[i].alg < keys[j].alg
		}
		return keys[i].length < keys[j].length
	})

	stats := make([]AggregateStat, 0, len(keys))
	for _, k := range keys {
		agg, err := Aggregate(groups[k])
		if err != nil {
			return nil, err
		}
		stats = append(stats, agg)
	}
	return stats, nil
}
