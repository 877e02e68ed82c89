package eval

import "math"

// Accuracy is the fraction of predictions matching the labels.
func Accuracy(y, p []int) float64 {
    if len(y) == 0 { return 0 }
    c := 0
    for i := range y { if y[i] == p[i] { c++ } }
    return float64(c) / float64(len(y))
}

// SetAccuracy is one row of the classification-accuracies table.
type SetAccuracy struct {
    Set       string
    Total     int
    Correct   int
    Incorrect int
    Accuracy  float64
}

// ScoreSet summarizes predictions on one named set. Accuracy is rounded to
// four decimals, matching the published table.
func ScoreSet(name string, y, pred []int) SetAccuracy {
    s := SetAccuracy{Set: name, Total: len(y)}
    for i := range y {
        if y[i] == pred[i] { s.Correct++ } else { s.Incorrect++ }
    }
    if s.Total > 0 {
        s.Accuracy = math.Round(float64(s.Correct)/float64(s.Total)*10000) / 10000
    }
    return s
}
