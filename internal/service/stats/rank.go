package stats

import (
	"cmp"
	"math"
	"slices"

	"github.com/kesava/telugu-word-analysis/internal/domain"
)

// counter tallies string occurrences.
type counter map[string]int

func (c counter) add(key string) { c[key]++ }

// ranked returns entries by descending count, ties broken by value so the
// output is stable across runs. limit <= 0 returns everything.
func (c counter) ranked(limit, total int) []domain.Count {
	out := make([]domain.Count, 0, len(c))
	for k, v := range c {
		out = append(out, domain.Count{Value: k, Count: v, Percentage: percent(v, total)})
	}
	slices.SortFunc(out, func(a, b domain.Count) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ordered returns entries for the given keys in that order, skipping keys
// never counted.
func (c counter) ordered(keys []string, total int) []domain.Count {
	out := make([]domain.Count, 0, len(keys))
	for _, k := range keys {
		if v, ok := c[k]; ok {
			out = append(out, domain.Count{Value: k, Count: v, Percentage: percent(v, total)})
		}
	}
	return out
}

// percent is count/total as a percentage rounded to two decimals.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(count) / float64(total) * 100)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func ratio(sum, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(sum) / float64(total))
}
