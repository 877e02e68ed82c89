package report

import (
    "fmt"
    "os"
    "path/filepath"
    "strconv"
    "strings"

    "titanic/internal/eval"
)

// Figure is a rendered PNG referenced by the report. Path is the location on
// disk; links in the markdown are made relative to the report file.
type Figure struct {
    Path    string
    Caption string
}

// Params carries everything the narrative needs from the analysis artifacts.
type Params struct {
    Title      string
    Folds      int
    BestDepth  int
    Accuracies []eval.SetAccuracy
    Ranks      []eval.FeatureRank
    Figures    []Figure
}

// MarkdownTable renders a GitHub-style table.
func MarkdownTable(header []string, rows [][]string) string {
    var b strings.Builder
    b.WriteString("| " + strings.Join(header, " | ") + " |\n")
    b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
    for _, r := range rows {
        b.WriteString("| " + strings.Join(r, " | ") + " |\n")
    }
    return b.String()
}

func accuracyRows(accs []eval.SetAccuracy) [][]string {
    rows := make([][]string, len(accs))
    for i, a := range accs {
        rows[i] = []string{a.Set, strconv.Itoa(a.Total), strconv.Itoa(a.Correct),
            strconv.Itoa(a.Incorrect), strconv.FormatFloat(a.Accuracy, 'f', 4, 64)}
    }
    return rows
}

func rankRows(ranks []eval.FeatureRank) [][]string {
    rows := make([][]string, len(ranks))
    for i, r := range ranks {
        rows[i] = []string{strconv.Itoa(r.Rank), r.Feature, strconv.FormatFloat(r.Importance, 'f', 4, 64)}
    }
    return rows
}

func topFeatures(ranks []eval.FeatureRank, n int) []string {
    if n > len(ranks) { n = len(ranks) }
    out := make([]string, 0, n)
    for _, r := range ranks[:n] { out = append(out, r.Feature) }
    return out
}

// Markdown assembles the narrative document. reportDir anchors the relative
// figure links.
func Markdown(reportDir string, p Params) string {
    var b strings.Builder
    fmt.Fprintf(&b, "# %s\n\n", p.Title)

    b.WriteString("## Data\n\n")
    b.WriteString("The analysis uses the Kaggle Titanic passenger dataset, reduced to the ")
    b.WriteString("Pclass, Sex, Age, SibSp, Parch and Fare columns with Survived as the target. ")
    b.WriteString("Missing ages were imputed with the training-set mean and missing fares with ")
    b.WriteString("the training-set median; sex was encoded male=1, female=0.\n\n")

    if len(p.Figures) > 0 {
        b.WriteString("## Exploration\n\n")
        for _, fig := range p.Figures {
            if _, err := os.Stat(fig.Path); err != nil {
                fmt.Fprintf(&b, "*(figure %q was not generated)*\n\n", fig.Caption)
                continue
            }
            link := fig.Path
            if rel, err := filepath.Rel(reportDir, fig.Path); err == nil { link = rel }
            fmt.Fprintf(&b, "![%s](%s)\n\n*%s*\n\n", fig.Caption, filepath.ToSlash(link), fig.Caption)
        }
    }

    b.WriteString("## Model\n\n")
    fmt.Fprintf(&b, "A gini decision-tree classifier was cross-validated (%d folds) over its ", p.Folds)
    fmt.Fprintf(&b, "maximum depth; depth %d gave the best mean accuracy and was used for the ", p.BestDepth)
    b.WriteString("final fit on the full training set.\n\n")

    b.WriteString("## Results\n\n### Prediction accuracy\n\n")
    b.WriteString(MarkdownTable(
        []string{"set", "n_total", "n_correct_pred", "n_incorrect_pred", "accuracy"},
        accuracyRows(p.Accuracies)))
    b.WriteString("\n### Feature ranking (gini importance)\n\n")
    b.WriteString(MarkdownTable([]string{"Rank", "Feature", "Importance"}, rankRows(p.Ranks)))

    b.WriteString("\n## Conclusion\n\n")
    top := topFeatures(p.Ranks, 3)
    if len(top) > 0 {
        fmt.Fprintf(&b, "The most predictive features of survival were %s.\n", strings.Join(top, ", "))
    }
    return b.String()
}

// WriteMarkdown renders the report next to its figures directory.
func WriteMarkdown(path string, p Params) error {
    dir := filepath.Dir(path)
    if err := os.MkdirAll(dir, 0o755); err != nil { return err }
    return os.WriteFile(path, []byte(Markdown(dir, p)), 0o644)
}
