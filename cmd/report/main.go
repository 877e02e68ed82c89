package main

import (
    "flag"
    "path/filepath"

    "go.uber.org/zap"

    "titanic/internal/config"
    "titanic/internal/eval"
    "titanic/internal/report"
    "titanic/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    cfgPath := flag.String("config", "pipeline.yaml", "Pipeline config file")
    resultsDir := flag.String("results", "", "Results directory (overrides config)")
    figDir := flag.String("figures", "", "Figures directory (overrides config)")
    title := flag.String("title", "Predicting survival on the Titanic", "Report title")
    outMD := flag.String("out_md", "", "Markdown output (default <results>/report.md)")
    outPDF := flag.String("out_pdf", "", "PDF output (default <results>/report.pdf)")
    flag.Parse()

    cfg, err := config.Load(*cfgPath)
    if err != nil { logger.Fatal("Failed to load config", zap.Error(err)) }
    if *resultsDir != "" { cfg.Results.Dir = *resultsDir }
    if *figDir != "" { cfg.Results.Figures = *figDir }
    mdPath := *outMD
    if mdPath == "" { mdPath = filepath.Join(cfg.Results.Dir, "report.md") }
    pdfPath := *outPDF
    if pdfPath == "" { pdfPath = filepath.Join(cfg.Results.Dir, "report.pdf") }

    accs, err := report.ReadAccuracies(filepath.Join(cfg.Results.Dir, "classification_accuracies.csv"))
    if err != nil { logger.Fatal("Failed to read accuracies", zap.Error(err)) }
    ranks, err := report.ReadRanks(filepath.Join(cfg.Results.Dir, "feature_ranks.csv"))
    if err != nil { logger.Fatal("Failed to read feature ranks", zap.Error(err)) }
    scores, err := report.ReadDepthScores(filepath.Join(cfg.Results.Dir, "cv_accuracy.csv"))
    if err != nil { logger.Fatal("Failed to read CV scores", zap.Error(err)) }
    bestDepth, err := eval.BestDepth(scores)
    if err != nil { logger.Fatal("cv_accuracy.csv has no scores", zap.Error(err)) }

    params := report.Params{
        Title:      *title,
        Folds:      cfg.CV.Folds,
        BestDepth:  bestDepth,
        Accuracies: accs,
        Ranks:      ranks,
        Figures: []report.Figure{
            {Path: filepath.Join(cfg.Results.Figures, "survival_by_sex.png"), Caption: "Survival by sex"},
            {Path: filepath.Join(cfg.Results.Figures, "survival_by_class.png"), Caption: "Survival by passenger class"},
            {Path: filepath.Join(cfg.Results.Figures, "age_distribution.png"), Caption: "Age by outcome"},
            {Path: filepath.Join(cfg.Results.Figures, "fare_distribution.png"), Caption: "Fare by outcome"},
            {Path: filepath.Join(cfg.Results.Figures, "cv_accuracy.png"), Caption: "Cross-validated accuracy by tree depth"},
        },
    }

    if err := report.WriteMarkdown(mdPath, params); err != nil {
        logger.Fatal("Failed to write markdown report", zap.Error(err))
    }
    logger.Info("Markdown report written", zap.String("path", mdPath))

    if err := report.WritePDF(pdfPath, params); err != nil {
        logger.Fatal("Failed to write PDF report", zap.Error(err))
    }
    logger.Info("PDF report written", zap.String("path", pdfPath))
}
