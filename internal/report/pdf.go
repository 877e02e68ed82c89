package report

import (
    "fmt"
    "os"
    "path/filepath"
    "strconv"
    "strings"

    "codeberg.org/go-pdf/fpdf"
)

// WritePDF renders the same narrative as the markdown report into a PDF,
// with the figure PNGs embedded.
func WritePDF(path string, p Params) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }

    pdf := fpdf.New("P", "mm", "A4", "")
    pdf.SetTitle(p.Title, false)
    pdf.AddPage()

    pdf.SetFont("Helvetica", "B", 16)
    pdf.MultiCell(0, 9, p.Title, "", "C", false)
    pdf.Ln(4)

    heading := func(s string) {
        pdf.SetFont("Helvetica", "B", 13)
        pdf.MultiCell(0, 7, s, "", "L", false)
        pdf.Ln(1)
    }
    body := func(s string) {
        pdf.SetFont("Helvetica", "", 10)
        pdf.MultiCell(0, 5, s, "", "L", false)
        pdf.Ln(2)
    }

    heading("Data")
    body("The analysis uses the Kaggle Titanic passenger dataset, reduced to the Pclass, " +
        "Sex, Age, SibSp, Parch and Fare columns with Survived as the target. Missing ages " +
        "were imputed with the training-set mean and missing fares with the training-set " +
        "median; sex was encoded male=1, female=0.")

    if len(p.Figures) > 0 {
        heading("Exploration")
        for _, fig := range p.Figures {
            if _, err := os.Stat(fig.Path); err != nil {
                body(fmt.Sprintf("(figure %q was not generated)", fig.Caption))
                continue
            }
            pdf.ImageOptions(fig.Path, 15, 0, 180, 0, true,
                fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
            pdf.SetFont("Helvetica", "I", 9)
            pdf.MultiCell(0, 5, fig.Caption, "", "C", false)
            pdf.Ln(3)
        }
    }

    heading("Model")
    body(fmt.Sprintf("A gini decision-tree classifier was cross-validated (%d folds) over its "+
        "maximum depth; depth %d gave the best mean accuracy and was used for the final fit "+
        "on the full training set.", p.Folds, p.BestDepth))

    heading("Prediction accuracy")
    pdfTable(pdf,
        []string{"set", "n_total", "n_correct_pred", "n_incorrect_pred", "accuracy"},
        accuracyRows(p.Accuracies))
    pdf.Ln(4)

    heading("Feature ranking (gini importance)")
    pdfTable(pdf, []string{"Rank", "Feature", "Importance"}, rankRows(p.Ranks))
    pdf.Ln(4)

    heading("Conclusion")
    top := topFeatures(p.Ranks, 3)
    if len(top) > 0 {
        body("The most predictive features of survival were " + strings.Join(top, ", ") + ".")
    }

    return pdf.OutputFileAndClose(path)
}

func pdfTable(pdf *fpdf.Fpdf, header []string, rows [][]string) {
    w := 180.0 / float64(len(header))
    pdf.SetFont("Helvetica", "B", 10)
    pdf.SetFillColor(230, 230, 230)
    for _, h := range header {
        pdf.CellFormat(w, 7, h, "1", 0, "C", true, 0, "")
    }
    pdf.Ln(-1)
    pdf.SetFont("Helvetica", "", 10)
    for _, row := range rows {
        for _, cell := range row {
            align := "L"
            if _, err := strconv.ParseFloat(cell, 64); err == nil { align = "R" }
            pdf.CellFormat(w, 6, cell, "1", 0, align, false, 0, "")
        }
        pdf.Ln(-1)
    }
}
