package report

import (
    "fmt"
    "strconv"

    "titanic/internal/data"
    "titanic/internal/eval"
)

// ReadAccuracies loads classification_accuracies.csv back into table rows.
func ReadAccuracies(path string) ([]eval.SetAccuracy, error) {
    t, err := data.ReadTable(path)
    if err != nil { return nil, err }
    cols, err := colIndexes(t, "set", "n_total", "n_correct_pred", "n_incorrect_pred", "accuracy")
    if err != nil { return nil, fmt.Errorf("%s: %w", path, err) }
    out := make([]eval.SetAccuracy, 0, len(t.Rows))
    for i, row := range t.Rows {
        a := eval.SetAccuracy{Set: row[cols[0]]}
        if a.Total, err = strconv.Atoi(row[cols[1]]); err != nil { return nil, rowErr(path, i, err) }
        if a.Correct, err = strconv.Atoi(row[cols[2]]); err != nil { return nil, rowErr(path, i, err) }
        if a.Incorrect, err = strconv.Atoi(row[cols[3]]); err != nil { return nil, rowErr(path, i, err) }
        if a.Accuracy, err = strconv.ParseFloat(row[cols[4]], 64); err != nil { return nil, rowErr(path, i, err) }
        out = append(out, a)
    }
    return out, nil
}

// ReadRanks loads feature_ranks.csv.
func ReadRanks(path string) ([]eval.FeatureRank, error) {
    t, err := data.ReadTable(path)
    if err != nil { return nil, err }
    cols, err := colIndexes(t, "Rank", "Feature", "Importance")
    if err != nil { return nil, fmt.Errorf("%s: %w", path, err) }
    out := make([]eval.FeatureRank, 0, len(t.Rows))
    for i, row := range t.Rows {
        r := eval.FeatureRank{Feature: row[cols[1]]}
        if r.Rank, err = strconv.Atoi(row[cols[0]]); err != nil { return nil, rowErr(path, i, err) }
        if r.Importance, err = strconv.ParseFloat(row[cols[2]], 64); err != nil { return nil, rowErr(path, i, err) }
        out = append(out, r)
    }
    return out, nil
}

// ReadDepthScores loads cv_accuracy.csv.
func ReadDepthScores(path string) ([]eval.DepthScore, error) {
    t, err := data.ReadTable(path)
    if err != nil { return nil, err }
    cols, err := colIndexes(t, "max_depth", "cv_accuracy")
    if err != nil { return nil, fmt.Errorf("%s: %w", path, err) }
    out := make([]eval.DepthScore, 0, len(t.Rows))
    for i, row := range t.Rows {
        s := eval.DepthScore{}
        if s.Depth, err = strconv.Atoi(row[cols[0]]); err != nil { return nil, rowErr(path, i, err) }
        if s.Accuracy, err = strconv.ParseFloat(row[cols[1]], 64); err != nil { return nil, rowErr(path, i, err) }
        out = append(out, s)
    }
    return out, nil
}

func colIndexes(t *data.Table, names ...string) ([]int, error) {
    out := make([]int, len(names))
    for i, n := range names {
        j, err := t.Col(n)
        if err != nil { return nil, err }
        out[i] = j
    }
    return out, nil
}

func rowErr(path string, i int, err error) error {
    return fmt.Errorf("%s row %d: %w", path, i+1, err)
}
