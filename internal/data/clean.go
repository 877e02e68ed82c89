package data

import (
    "fmt"
    "sort"
    "strconv"
    "strings"
)

// Columns kept from the raw Kaggle files, in cleaned-file order.
var keepTrain = []string{"PassengerId", "Pclass", "Sex", "Age", "SibSp", "Parch", "Fare", "Survived"}
var keepTest = []string{"PassengerId", "Pclass", "Sex", "Age", "SibSp", "Parch", "Fare"}

// ImputeValues are the statistical centers computed from the training set and
// applied to both sets.
type ImputeValues struct {
    AgeMean    float64
    FareMedian float64
}

func missing(s string) bool {
    s = strings.TrimSpace(s)
    return s == "" || s == "NA" || s == "NaN"
}

func numericCol(t *Table, name string) ([]float64, error) {
    j, err := t.Col(name)
    if err != nil { return nil, err }
    out := make([]float64, 0, len(t.Rows))
    for i, row := range t.Rows {
        if missing(row[j]) { continue }
        v, err := strconv.ParseFloat(row[j], 64)
        if err != nil { return nil, fmt.Errorf("column %s row %d: %w", name, i+1, err) }
        out = append(out, v)
    }
    return out, nil
}

// ComputeImputeValues returns the train Age mean and train Fare median.
func ComputeImputeValues(train *Table) (ImputeValues, error) {
    ages, err := numericCol(train, "Age")
    if err != nil { return ImputeValues{}, err }
    fares, err := numericCol(train, "Fare")
    if err != nil { return ImputeValues{}, err }
    if len(ages) == 0 || len(fares) == 0 {
        return ImputeValues{}, fmt.Errorf("no observed values to impute from")
    }
    return ImputeValues{AgeMean: mean(ages), FareMedian: median(fares)}, nil
}

func mean(xs []float64) float64 {
    s := 0.0
    for _, x := range xs { s += x }
    return s / float64(len(xs))
}

func median(xs []float64) float64 {
    c := append([]float64(nil), xs...)
    sort.Float64s(c)
    n := len(c)
    if n%2 == 1 { return c[n/2] }
    return (c[n/2-1] + c[n/2]) / 2
}

// FillMissing replaces missing Age and Fare cells with the imputed values.
func FillMissing(t *Table, iv ImputeValues) error {
    ageCol, err := t.Col("Age")
    if err != nil { return err }
    fareCol, err := t.Col("Fare")
    if err != nil { return err }
    for _, row := range t.Rows {
        if missing(row[ageCol]) { row[ageCol] = strconv.FormatFloat(iv.AgeMean, 'f', 4, 64) }
        if missing(row[fareCol]) { row[fareCol] = strconv.FormatFloat(iv.FareMedian, 'f', 4, 64) }
    }
    return nil
}

// EncodeSex maps male to 1 and female to 0 in place.
func EncodeSex(t *Table) error {
    j, err := t.Col("Sex")
    if err != nil { return err }
    for i, row := range t.Rows {
        switch strings.ToLower(strings.TrimSpace(row[j])) {
        case "male":
            row[j] = "1"
        case "female":
            row[j] = "0"
        default:
            return fmt.Errorf("row %d: unknown sex %q", i+1, row[j])
        }
    }
    return nil
}

// JoinSurvived appends the Survived column from the gender_submission table
// onto the test table, matched by PassengerId.
func JoinSurvived(test, sub *Table) error {
    sid, err := sub.Col("PassengerId")
    if err != nil { return err }
    ssur, err := sub.Col("Survived")
    if err != nil { return err }
    byID := make(map[string]string, len(sub.Rows))
    for _, row := range sub.Rows { byID[row[sid]] = row[ssur] }

    tid, err := test.Col("PassengerId")
    if err != nil { return err }
    test.Header = append(test.Header, "Survived")
    for i, row := range test.Rows {
        v, ok := byID[row[tid]]
        if !ok { return fmt.Errorf("row %d: passenger %s has no gender_submission entry", i+1, row[tid]) }
        test.Rows[i] = append(row, v)
    }
    return nil
}

// Clean runs the full cleaning pass over the raw tables: column selection,
// gender_submission join, train-derived imputation, sex encoding.
func Clean(rawTrain, rawTest, sub *Table) (train, test *Table, err error) {
    train, err = rawTrain.Select(keepTrain...)
    if err != nil { return nil, nil, fmt.Errorf("train: %w", err) }
    test, err = rawTest.Select(keepTest...)
    if err != nil { return nil, nil, fmt.Errorf("test: %w", err) }
    if err = JoinSurvived(test, sub); err != nil { return nil, nil, fmt.Errorf("test: %w", err) }

    iv, err := ComputeImputeValues(train)
    if err != nil { return nil, nil, err }
    if err = FillMissing(train, iv); err != nil { return nil, nil, err }
    if err = FillMissing(test, iv); err != nil { return nil, nil, err }
    if err = EncodeSex(train); err != nil { return nil, nil, fmt.Errorf("train: %w", err) }
    if err = EncodeSex(test); err != nil { return nil, nil, fmt.Errorf("test: %w", err) }
    return train, test, nil
}

// LoadClean parses a cleaned CSV into passengers.
func LoadClean(path string) ([]Passenger, error) {
    t, err := ReadTable(path)
    if err != nil { return nil, err }
    cols := make(map[string]int, len(t.Header))
    for _, name := range keepTrain {
        j, err := t.Col(name)
        if err != nil { return nil, fmt.Errorf("%s: %w", path, err) }
        cols[name] = j
    }
    out := make([]Passenger, 0, len(t.Rows))
    for i, row := range t.Rows {
        p := Passenger{}
        var err error
        if p.PassengerID, err = strconv.Atoi(row[cols["PassengerId"]]); err != nil {
            return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
        }
        fields := []struct {
            dst  *float64
            name string
        }{
            {&p.Pclass, "Pclass"}, {&p.Sex, "Sex"}, {&p.Age, "Age"},
            {&p.SibSp, "SibSp"}, {&p.Parch, "Parch"}, {&p.Fare, "Fare"},
        }
        for _, f := range fields {
            if *f.dst, err = strconv.ParseFloat(row[cols[f.name]], 64); err != nil {
                return nil, fmt.Errorf("%s row %d %s: %w", path, i+1, f.name, err)
            }
        }
        if p.Survived, err = strconv.Atoi(row[cols["Survived"]]); err != nil {
            return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
        }
        out = append(out, p)
    }
    return out, nil
}
