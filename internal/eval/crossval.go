package eval

import (
    "fmt"
    "math/rand"

    "titanic/internal/models"
)

// KFold partitions n shuffled indices into k folds (sizes differ by at most
// one).
func KFold(n, k int, rng *rand.Rand) [][]int {
    indices := rng.Perm(n)
    folds := make([][]int, k)
    for i := 0; i < n; i++ {
        folds[i%k] = append(folds[i%k], indices[i])
    }
    return folds
}

// DepthScore is the mean cross-validated accuracy of one max_depth.
type DepthScore struct {
    Depth    int
    Accuracy float64
}

// DepthSearch cross-validates a decision tree over max_depth minDepth..maxDepth
// (inclusive) using the same k folds for every depth, and returns the per-depth
// mean accuracies plus the best depth.
func DepthSearch(X [][]float64, y []int, minDepth, maxDepth, k int, rng *rand.Rand) ([]DepthScore, int, error) {
    if minDepth < 1 || maxDepth < minDepth {
        return nil, 0, fmt.Errorf("bad depth range %d..%d", minDepth, maxDepth)
    }
    if k < 2 || k > len(X) {
        return nil, 0, fmt.Errorf("bad fold count %d for %d samples", k, len(X))
    }
    folds := KFold(len(X), k, rng)

    scores := make([]DepthScore, 0, maxDepth-minDepth+1)
    for depth := minDepth; depth <= maxDepth; depth++ {
        acc, err := crossValAccuracy(X, y, depth, folds)
        if err != nil { return nil, 0, err }
        scores = append(scores, DepthScore{Depth: depth, Accuracy: acc})
    }
    best, err := BestDepth(scores)
    if err != nil { return nil, 0, err }
    return scores, best, nil
}

// BestDepth picks the depth with the highest mean accuracy; ties go to the
// smallest depth.
func BestDepth(scores []DepthScore) (int, error) {
    if len(scores) == 0 {
        return 0, fmt.Errorf("no CV scores")
    }
    best := scores[0]
    for _, s := range scores[1:] {
        if s.Accuracy > best.Accuracy { best = s }
    }
    return best.Depth, nil
}

func crossValAccuracy(X [][]float64, y []int, depth int, folds [][]int) (float64, error) {
    total := 0.0
    for f := range folds {
        trainX := make([][]float64, 0, len(X))
        trainY := make([]int, 0, len(y))
        for g := range folds {
            if g == f { continue }
            for _, i := range folds[g] {
                trainX = append(trainX, X[i])
                trainY = append(trainY, y[i])
            }
        }
        dt := models.NewDecisionTree()
        dt.MaxDepth = depth
        if err := dt.Fit(trainX, trainY); err != nil {
            return 0, fmt.Errorf("depth %d fold %d: %w", depth, f, err)
        }
        testX := make([][]float64, 0, len(folds[f]))
        testY := make([]int, 0, len(folds[f]))
        for _, i := range folds[f] {
            testX = append(testX, X[i])
            testY = append(testY, y[i])
        }
        total += Accuracy(testY, dt.Predict(testX))
    }
    return total / float64(len(folds)), nil
}
