package report

import (
    "os"
    "path/filepath"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "titanic/internal/eval"
)

func testParams(figPath string) Params {
    return Params{
        Title:     "Predicting survival on the Titanic",
        Folds:     10,
        BestDepth: 5,
        Accuracies: []eval.SetAccuracy{
            {Set: "train", Total: 891, Correct: 731, Incorrect: 160, Accuracy: 0.8204},
            {Set: "test", Total: 418, Correct: 380, Incorrect: 38, Accuracy: 0.9091},
        },
        Ranks: []eval.FeatureRank{
            {Rank: 1, Feature: "Sex", Importance: 0.61},
            {Rank: 2, Feature: "Fare", Importance: 0.2},
            {Rank: 3, Feature: "Age", Importance: 0.12},
            {Rank: 4, Feature: "Pclass", Importance: 0.07},
        },
        Figures: []Figure{{Path: figPath, Caption: "Survival by sex"}},
    }
}

func TestMarkdownTable(t *testing.T) {
    got := MarkdownTable([]string{"a", "b"}, [][]string{{"1", "2"}})
    assert.Equal(t, "| a | b |\n| --- | --- |\n| 1 | 2 |\n", got)
}

func TestMarkdownContent(t *testing.T) {
    dir := t.TempDir()
    fig := filepath.Join(dir, "figures", "survival_by_sex.png")
    require.NoError(t, os.MkdirAll(filepath.Dir(fig), 0o755))
    require.NoError(t, os.WriteFile(fig, []byte("png"), 0o644))

    md := Markdown(dir, testParams(fig))
    assert.True(t, strings.HasPrefix(md, "# Predicting survival on the Titanic"))
    assert.Contains(t, md, "![Survival by sex](figures/survival_by_sex.png)")
    assert.Contains(t, md, "| train | 891 | 731 | 160 | 0.8204 |")
    assert.Contains(t, md, "| 1 | Sex | 0.6100 |")
    assert.Contains(t, md, "depth 5 gave the best mean accuracy")
    assert.Contains(t, md, "The most predictive features of survival were Sex, Fare, Age.")
}

func TestMarkdownMissingFigure(t *testing.T) {
    dir := t.TempDir()
    md := Markdown(dir, testParams(filepath.Join(dir, "nope.png")))
    assert.Contains(t, md, "was not generated")
    assert.NotContains(t, md, "![Survival by sex]")
}

func TestWriteMarkdown(t *testing.T) {
    dir := t.TempDir()
    path := filepath.Join(dir, "results", "report.md")
    require.NoError(t, WriteMarkdown(path, testParams(filepath.Join(dir, "nope.png"))))
    raw, err := os.ReadFile(path)
    require.NoError(t, err)
    assert.Contains(t, string(raw), "## Results")
}

func TestWritePDF(t *testing.T) {
    dir := t.TempDir()
    path := filepath.Join(dir, "report.pdf")
    require.NoError(t, WritePDF(path, testParams(filepath.Join(dir, "nope.png"))))

    info, err := os.Stat(path)
    require.NoError(t, err)
    assert.Greater(t, info.Size(), int64(0))
}
