package eval

import (
    "fmt"
    "sort"
)

// FeatureRank is one row of the feature-ranking table; Rank 1 is the most
// predictive feature.
type FeatureRank struct {
    Rank       int
    Feature    string
    Importance float64
}

// RankFeatures orders features by descending gini importance. The sort is
// stable so equally important features keep their vector order.
func RankFeatures(names []string, importances []float64) ([]FeatureRank, error) {
    if len(names) != len(importances) {
        return nil, fmt.Errorf("%d names for %d importances", len(names), len(importances))
    }
    out := make([]FeatureRank, len(names))
    for i := range names {
        out[i] = FeatureRank{Feature: names[i], Importance: importances[i]}
    }
    sort.SliceStable(out, func(i, j int) bool { return out[i].Importance > out[j].Importance })
    for i := range out { out[i].Rank = i + 1 }
    return out, nil
}
