package main

import (
    "encoding/gob"
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap"
    "go.uber.org/zap/zaptest/observer"

    "titanic/internal/models"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
    core, logs := observer.New(zap.WarnLevel)
    return zap.New(core), logs
}

func TestLoadModelMissingFile(t *testing.T) {
    logger, logs := observedLogger()
    m := loadModel(filepath.Join(t.TempDir(), "absent.gob"), logger)

    assert.Equal(t, "RuleModel", m.Name())
    require.Equal(t, 1, logs.Len())
    assert.Equal(t, "No fitted model found, serving rule-based fallback", logs.All()[0].Message)
}

// A present-but-corrupt model file must be reported as corruption, with the
// decode error attached, not as a missing model.
func TestLoadModelCorruptFile(t *testing.T) {
    path := filepath.Join(t.TempDir(), "classification_tree.gob")
    require.NoError(t, os.WriteFile(path, []byte("not a gob stream"), 0o644))

    logger, logs := observedLogger()
    m := loadModel(path, logger)

    assert.Equal(t, "RuleModel", m.Name())
    require.Equal(t, 1, logs.Len())
    entry := logs.All()[0]
    assert.Equal(t, "Failed to decode saved model, serving rule-based fallback", entry.Message)
    fields := entry.ContextMap()
    assert.NotEmpty(t, fields["error"])
}

func TestLoadModelFittedTree(t *testing.T) {
    dt := models.NewDecisionTree()
    require.NoError(t, dt.Fit([][]float64{{1}, {2}, {9}, {10}}, []int{0, 0, 1, 1}))

    path := filepath.Join(t.TempDir(), "classification_tree.gob")
    f, err := os.Create(path)
    require.NoError(t, err)
    require.NoError(t, gob.NewEncoder(f).Encode(dt))
    require.NoError(t, f.Close())

    logger, logs := observedLogger()
    m := loadModel(path, logger)

    assert.Equal(t, "DecisionTree", m.Name())
    assert.Equal(t, 0, logs.Len())
    assert.Equal(t, []int{0, 1}, m.Predict([][]float64{{1.5}, {9.5}}))
}

func TestLoadModelEmptyTree(t *testing.T) {
    path := filepath.Join(t.TempDir(), "classification_tree.gob")
    f, err := os.Create(path)
    require.NoError(t, err)
    require.NoError(t, gob.NewEncoder(f).Encode(models.NewDecisionTree()))
    require.NoError(t, f.Close())

    logger, logs := observedLogger()
    m := loadModel(path, logger)

    assert.Equal(t, "RuleModel", m.Name())
    require.Equal(t, 1, logs.Len())
    assert.Equal(t, "Saved model has no tree, serving rule-based fallback", logs.All()[0].Message)
}
