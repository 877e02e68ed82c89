package models

import (
    "errors"
    "math"
    "sort"
)

type DTNode struct {
    Feature   int
    Threshold float64
    Left      *DTNode
    Right     *DTNode
    IsLeaf    bool
    ProbaLeaf float64
}

type DecisionTree struct {
    MaxDepth        int
    MinSamplesSplit int
    MaxThresholds   int
    Root            *DTNode
    // Importances holds the normalized gini importance per feature after Fit.
    Importances []float64

    nTotal int
}

func NewDecisionTree() *DecisionTree {
    return &DecisionTree{MaxDepth: 6, MinSamplesSplit: 2, MaxThresholds: 64}
}

func (dt *DecisionTree) Name() string { return "DecisionTree" }

func (dt *DecisionTree) Fit(X [][]float64, y []int) error {
    if len(X) == 0 { return errors.New("empty training set") }
    if len(X) != len(y) { return errors.New("feature and label lengths differ") }
    idx := make([]int, len(X))
    for i := range idx { idx[i] = i }
    dt.nTotal = len(X)
    dt.Importances = make([]float64, len(X[0]))
    dt.Root = dt.build(X, y, idx, 0)
    if s := sum(dt.Importances); s > 0 {
        for i := range dt.Importances { dt.Importances[i] /= s }
    }
    return nil
}

func (dt *DecisionTree) Predict(X [][]float64) []int {
    out := make([]int, len(X))
    for i := range X {
        if dt.predictProbaOne(X[i]) >= 0.5 { out[i] = 1 }
    }
    return out
}

func (dt *DecisionTree) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    for i := range X { out[i] = dt.predictProbaOne(X[i]) }
    return out
}

// FeatureImportances returns a copy of the normalized gini importances.
func (dt *DecisionTree) FeatureImportances() []float64 {
    return append([]float64(nil), dt.Importances...)
}

// Depth returns the depth of the fitted tree; a lone leaf has depth 0.
func (dt *DecisionTree) Depth() int { return nodeDepth(dt.Root) }

func nodeDepth(n *DTNode) int {
    if n == nil || n.IsLeaf { return 0 }
    l := nodeDepth(n.Left)
    r := nodeDepth(n.Right)
    if l > r { return l + 1 }
    return r + 1
}

func (dt *DecisionTree) predictProbaOne(x []float64) float64 {
    n := dt.Root
    if n == nil { return 0.5 }
    for !n.IsLeaf {
        if x[n.Feature] <= n.Threshold { n = n.Left } else { n = n.Right }
        if n == nil { return 0.5 }
    }
    return n.ProbaLeaf
}

func (dt *DecisionTree) build(X [][]float64, y []int, idx []int, depth int) *DTNode {
    node := &DTNode{}
    p := classProba(y, idx)
    if len(idx) < dt.MinSamplesSplit || (dt.MaxDepth > 0 && depth >= dt.MaxDepth) || p == 0 || p == 1 {
        node.IsLeaf = true
        node.ProbaLeaf = p
        return node
    }

    bestFeature := -1
    bestThr := 0.0
    bestImp := math.MaxFloat64
    var leftIdxBest, rightIdxBest []int

    for f := 0; f < len(X[0]); f++ {
        for _, thr := range candidateThresholds(X, idx, f, dt.MaxThresholds) {
            lIdx, rIdx := splitIdx(X, idx, f, thr)
            if len(lIdx) == 0 || len(rIdx) == 0 { continue }
            imp := giniImpurity(y, lIdx, rIdx)
            if imp < bestImp {
                bestImp = imp
                bestFeature = f
                bestThr = thr
                leftIdxBest = lIdx
                rightIdxBest = rIdx
            }
        }
    }

    if bestFeature == -1 {
        node.IsLeaf = true
        node.ProbaLeaf = p
        return node
    }
    // Weighted impurity decrease of the chosen split.
    dt.Importances[bestFeature] += float64(len(idx)) / float64(dt.nTotal) * (p*(1-p) - bestImp)

    node.Feature = bestFeature
    node.Threshold = bestThr
    node.Left = dt.build(X, y, leftIdxBest, depth+1)
    node.Right = dt.build(X, y, rightIdxBest, depth+1)
    return node
}

func classProba(y []int, idx []int) float64 {
    s := 0
    for _, i := range idx { s += y[i] }
    return float64(s) / float64(len(idx))
}

func splitIdx(X [][]float64, idx []int, f int, thr float64) ([]int, []int) {
    l := make([]int, 0, len(idx))
    r := make([]int, 0, len(idx))
    for _, i := range idx {
        if X[i][f] <= thr { l = append(l, i) } else { r = append(r, i) }
    }
    return l, r
}

func giniImpurity(y []int, lIdx, rIdx []int) float64 {
    g := func(ids []int) float64 {
        if len(ids) == 0 { return 0 }
        p := classProba(y, ids)
        return p * (1 - p)
    }
    wl := float64(len(lIdx))
    wr := float64(len(rIdx))
    n := wl + wr
    return (wl/n)*g(lIdx) + (wr/n)*g(rIdx)
}

// candidateThresholds returns midpoints between consecutive distinct sorted
// values of the feature, strided down to at most maxC so reruns are identical.
func candidateThresholds(X [][]float64, idx []int, f int, maxC int) []float64 {
    values := make([]float64, len(idx))
    for j, i := range idx { values[j] = X[i][f] }
    sort.Float64s(values)

    mids := make([]float64, 0, len(values))
    for i := 1; i < len(values); i++ {
        if values[i] != values[i-1] {
            mids = append(mids, (values[i]+values[i-1])/2)
        }
    }
    if maxC <= 0 || len(mids) <= maxC { return mids }
    out := make([]float64, 0, maxC)
    step := float64(len(mids)) / float64(maxC)
    for i := 0; i < maxC; i++ {
        out = append(out, mids[int(float64(i)*step)])
    }
    return out
}

func sum(xs []float64) float64 {
    s := 0.0
    for _, x := range xs { s += x }
    return s
}
