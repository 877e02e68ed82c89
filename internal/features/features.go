package features

import "titanic/internal/data"

var names = []string{"Pclass", "Sex", "Age", "SibSp", "Parch", "Fare"}

// Names returns the feature names in vector order.
func Names() []string { return append([]string(nil), names...) }

// Vectorize turns a cleaned passenger into a feature vector plus names.
func Vectorize(p data.Passenger) ([]float64, []string) {
    vec := []float64{p.Pclass, p.Sex, p.Age, p.SibSp, p.Parch, p.Fare}
    return vec, Names()
}

// Matrix vectorizes a cleaned set into X and the survival labels y.
func Matrix(ps []data.Passenger) ([][]float64, []int) {
    X := make([][]float64, len(ps))
    y := make([]int, len(ps))
    for i, p := range ps {
        X[i], _ = Vectorize(p)
        y[i] = p.Survived
    }
    return X, y
}
