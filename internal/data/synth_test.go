package data

import (
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestGenerateSynthetic(t *testing.T) {
    dir := t.TempDir()
    trainPath := filepath.Join(dir, "train.csv")
    testPath := filepath.Join(dir, "test.csv")
    subPath := filepath.Join(dir, "gender_submission.csv")

    require.NoError(t, GenerateSynthetic(500, 42, trainPath, testPath, subPath))

    train, err := ReadTable(trainPath)
    require.NoError(t, err)
    test, err := ReadTable(testPath)
    require.NoError(t, err)
    sub, err := ReadTable(subPath)
    require.NoError(t, err)

    assert.Len(t, train.Rows, 400)
    assert.Len(t, test.Rows, 100)
    assert.Len(t, sub.Rows, len(test.Rows))

    _, err = train.Col("Survived")
    assert.NoError(t, err)
    _, err = test.Col("Survived")
    assert.Error(t, err, "raw test set must not carry the label")

    ageCol, err := train.Col("Age")
    require.NoError(t, err)
    blanks := 0
    for _, row := range train.Rows {
        if row[ageCol] == "" { blanks++ }
    }
    assert.Greater(t, blanks, 0, "some ages must be missing for the cleaner to impute")

    // The generated files must survive the cleaning pass.
    _, _, err = Clean(train, test, sub)
    require.NoError(t, err)
}

func TestGenerateSyntheticDeterministic(t *testing.T) {
    dirA := t.TempDir()
    dirB := t.TempDir()
    for _, dir := range []string{dirA, dirB} {
        require.NoError(t, GenerateSynthetic(100, 7,
            filepath.Join(dir, "train.csv"),
            filepath.Join(dir, "test.csv"),
            filepath.Join(dir, "sub.csv")))
    }
    a, err := ReadTable(filepath.Join(dirA, "train.csv"))
    require.NoError(t, err)
    b, err := ReadTable(filepath.Join(dirB, "train.csv"))
    require.NoError(t, err)
    assert.Equal(t, a.Rows, b.Rows)
}

func TestGenerateSyntheticTooSmall(t *testing.T) {
    dir := t.TempDir()
    err := GenerateSynthetic(3, 1,
        filepath.Join(dir, "train.csv"),
        filepath.Join(dir, "test.csv"),
        filepath.Join(dir, "sub.csv"))
    assert.Error(t, err)
}
