package eval

import (
    "math/rand"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestKFoldPartitions(t *testing.T) {
    rng := rand.New(rand.NewSource(1))
    folds := KFold(25, 10, rng)
    require.Len(t, folds, 10)

    seen := map[int]bool{}
    for _, fold := range folds {
        assert.GreaterOrEqual(t, len(fold), 2)
        assert.LessOrEqual(t, len(fold), 3)
        for _, i := range fold {
            assert.False(t, seen[i], "index %d appears in two folds", i)
            seen[i] = true
        }
    }
    assert.Len(t, seen, 25)
}

// Two well-separated clusters cross-validate perfectly at every depth, so the
// first argmax tie-break must pick the smallest depth.
func TestDepthSearchSeparable(t *testing.T) {
    X := make([][]float64, 40)
    y := make([]int, 40)
    for i := range X {
        X[i] = []float64{float64(i%4 + 1)}
        if i >= 20 {
            X[i][0] += 100
            y[i] = 1
        }
    }
    rng := rand.New(rand.NewSource(42))
    scores, best, err := DepthSearch(X, y, 1, 5, 4, rng)
    require.NoError(t, err)
    require.Len(t, scores, 5)
    assert.Equal(t, 1, best)
    for _, s := range scores {
        assert.InDelta(t, 1.0, s.Accuracy, 1e-9)
    }
}

func TestDepthSearchBadArgs(t *testing.T) {
    X := [][]float64{{1}, {2}, {3}}
    y := []int{0, 1, 0}
    rng := rand.New(rand.NewSource(1))

    _, _, err := DepthSearch(X, y, 3, 1, 2, rng)
    assert.Error(t, err)
    _, _, err = DepthSearch(X, y, 1, 2, 1, rng)
    assert.Error(t, err)
    _, _, err = DepthSearch(X, y, 1, 2, 4, rng)
    assert.Error(t, err)
}

func TestBestDepthFirstArgmax(t *testing.T) {
    scores := []DepthScore{
        {Depth: 1, Accuracy: 0.7},
        {Depth: 2, Accuracy: 0.9},
        {Depth: 3, Accuracy: 0.9},
        {Depth: 4, Accuracy: 0.8},
    }
    best, err := BestDepth(scores)
    require.NoError(t, err)
    assert.Equal(t, 2, best)
}

// A header-only cv_accuracy.csv yields zero scores; that must surface as an
// error, not a panic.
func TestBestDepthEmpty(t *testing.T) {
    _, err := BestDepth(nil)
    assert.Error(t, err)
    _, err = BestDepth([]DepthScore{})
    assert.Error(t, err)
}

func TestDepthSearchReproducible(t *testing.T) {
    X := make([][]float64, 30)
    y := make([]int, 30)
    for i := range X {
        X[i] = []float64{float64(i % 7), float64(i % 3)}
        y[i] = (i % 7) / 4
    }
    a, _, err := DepthSearch(X, y, 1, 4, 3, rand.New(rand.NewSource(9)))
    require.NoError(t, err)
    b, _, err := DepthSearch(X, y, 1, 4, 3, rand.New(rand.NewSource(9)))
    require.NoError(t, err)
    assert.Equal(t, a, b)
}
