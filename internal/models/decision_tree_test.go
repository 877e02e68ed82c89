package models

import (
    "bytes"
    "encoding/gob"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func separable() ([][]float64, []int) {
    X := [][]float64{{1}, {2}, {3}, {8}, {9}, {10}}
    y := []int{0, 0, 0, 1, 1, 1}
    return X, y
}

func TestFitPredictSeparable(t *testing.T) {
    X, y := separable()
    dt := NewDecisionTree()
    require.NoError(t, dt.Fit(X, y))

    assert.Equal(t, y, dt.Predict(X))
    probs := dt.PredictProba(X)
    assert.Equal(t, 0.0, probs[0])
    assert.Equal(t, 1.0, probs[len(probs)-1])
}

func TestFitEmpty(t *testing.T) {
    dt := NewDecisionTree()
    assert.Error(t, dt.Fit(nil, nil))
    assert.Error(t, dt.Fit([][]float64{{1}}, []int{0, 1}))
}

func TestMaxDepthCapsTree(t *testing.T) {
    // Alternating labels force deep splits when unconstrained.
    X := make([][]float64, 32)
    y := make([]int, 32)
    for i := range X {
        X[i] = []float64{float64(i)}
        y[i] = i % 2
    }
    dt := NewDecisionTree()
    dt.MaxDepth = 2
    require.NoError(t, dt.Fit(X, y))
    assert.LessOrEqual(t, dt.Depth(), 2)
}

func TestImportancesIgnoreUninformativeFeature(t *testing.T) {
    // Feature 0 is constant, feature 1 separates the classes.
    X := [][]float64{{5, 1}, {5, 2}, {5, 3}, {5, 8}, {5, 9}, {5, 10}}
    y := []int{0, 0, 0, 1, 1, 1}
    dt := NewDecisionTree()
    require.NoError(t, dt.Fit(X, y))

    imp := dt.FeatureImportances()
    require.Len(t, imp, 2)
    assert.Equal(t, 0.0, imp[0])
    assert.InDelta(t, 1.0, imp[1], 1e-9)
}

func TestImportancesSumToOne(t *testing.T) {
    X := [][]float64{
        {1, 10}, {2, 20}, {3, 10}, {4, 20},
        {5, 10}, {6, 20}, {7, 10}, {8, 20},
    }
    y := []int{0, 1, 0, 1, 0, 1, 1, 1}
    dt := NewDecisionTree()
    require.NoError(t, dt.Fit(X, y))

    total := 0.0
    for _, v := range dt.FeatureImportances() { total += v }
    assert.InDelta(t, 1.0, total, 1e-9)
}

func TestPureLeafWithoutSplit(t *testing.T) {
    X := [][]float64{{1}, {2}, {3}}
    y := []int{1, 1, 1}
    dt := NewDecisionTree()
    require.NoError(t, dt.Fit(X, y))

    assert.True(t, dt.Root.IsLeaf)
    assert.Equal(t, []float64{0}, dt.FeatureImportances())
}

func TestUnfittedPredictProba(t *testing.T) {
    dt := NewDecisionTree()
    assert.Equal(t, []float64{0.5}, dt.PredictProba([][]float64{{1}}))
}

func TestGobRoundTrip(t *testing.T) {
    X, y := separable()
    dt := NewDecisionTree()
    require.NoError(t, dt.Fit(X, y))

    var buf bytes.Buffer
    require.NoError(t, gob.NewEncoder(&buf).Encode(dt))
    var got DecisionTree
    require.NoError(t, gob.NewDecoder(&buf).Decode(&got))

    assert.Equal(t, dt.Predict(X), got.Predict(X))
    assert.Equal(t, dt.FeatureImportances(), got.FeatureImportances())
}

func TestCandidateThresholdsDeterministic(t *testing.T) {
    X := [][]float64{{3}, {1}, {2}, {2}}
    idx := []int{0, 1, 2, 3}
    a := candidateThresholds(X, idx, 0, 64)
    b := candidateThresholds(X, idx, 0, 64)
    assert.Equal(t, []float64{1.5, 2.5}, a)
    assert.Equal(t, a, b)

    capped := candidateThresholds(X, idx, 0, 1)
    assert.Len(t, capped, 1)
}
