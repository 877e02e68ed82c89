package features

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "titanic/internal/data"
)

func TestVectorize(t *testing.T) {
    p := data.Passenger{
        PassengerID: 1, Pclass: 3, Sex: 1, Age: 22, SibSp: 1, Parch: 0, Fare: 7.25, Survived: 0,
    }
    vec, names := Vectorize(p)
    assert.Equal(t, []string{"Pclass", "Sex", "Age", "SibSp", "Parch", "Fare"}, names)
    assert.Equal(t, []float64{3, 1, 22, 1, 0, 7.25}, vec)
}

func TestMatrix(t *testing.T) {
    ps := []data.Passenger{
        {Pclass: 1, Sex: 0, Age: 38, Fare: 71.28, Survived: 1},
        {Pclass: 3, Sex: 1, Age: 22, Fare: 7.25, Survived: 0},
    }
    X, y := Matrix(ps)
    assert.Len(t, X, 2)
    assert.Equal(t, []int{1, 0}, y)
    assert.Equal(t, 38.0, X[0][2])
}

func TestNamesIsACopy(t *testing.T) {
    n := Names()
    n[0] = "mutated"
    assert.Equal(t, "Pclass", Names()[0])
}
