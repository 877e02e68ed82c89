package main

import (
    "encoding/csv"
    "encoding/gob"
    "flag"
    "fmt"
    "math/rand"
    "os"
    "path/filepath"
    "strconv"

    "go.uber.org/zap"

    "titanic/internal/config"
    "titanic/internal/data"
    "titanic/internal/eval"
    "titanic/internal/features"
    "titanic/internal/models"
    "titanic/internal/plots"
    "titanic/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    cfgPath := flag.String("config", "pipeline.yaml", "Pipeline config file")
    trainPath := flag.String("train", "", "Cleaned train CSV (overrides config)")
    testPath := flag.String("test", "", "Cleaned test CSV (overrides config)")
    outDir := flag.String("out", "", "Results directory (overrides config)")
    figDir := flag.String("figures", "", "Figures directory (overrides config)")
    folds := flag.Int("folds", 0, "Cross-validation folds (overrides config)")
    minDepth := flag.Int("min_depth", 0, "Smallest max_depth to try (overrides config)")
    maxDepth := flag.Int("max_depth", 0, "Largest max_depth to try (overrides config)")
    seed := flag.String("seed", "", "Fold shuffling seed (empty = config seed; 0 is a valid seed)")
    flag.Parse()

    cfg, err := config.Load(*cfgPath)
    if err != nil { logger.Fatal("Failed to load config", zap.Error(err)) }
    if *trainPath != "" { cfg.Data.CleanTrain = *trainPath }
    if *testPath != "" { cfg.Data.CleanTest = *testPath }
    if *outDir != "" { cfg.Results.Dir = *outDir }
    if *figDir != "" { cfg.Results.Figures = *figDir }
    if *folds != 0 { cfg.CV.Folds = *folds }
    if *minDepth != 0 { cfg.CV.MinDepth = *minDepth }
    if *maxDepth != 0 { cfg.CV.MaxDepth = *maxDepth }
    if cfg.CV.Seed, err = config.ParseSeed(*seed, cfg.CV.Seed); err != nil {
        logger.Fatal("Invalid seed", zap.Error(err))
    }

    trainSet, err := data.LoadClean(cfg.Data.CleanTrain)
    if err != nil { logger.Fatal("Failed to load cleaned train CSV", zap.Error(err)) }
    testSet, err := data.LoadClean(cfg.Data.CleanTest)
    if err != nil { logger.Fatal("Failed to load cleaned test CSV", zap.Error(err)) }

    Xtrain, ytrain := features.Matrix(trainSet)
    Xtest, ytest := features.Matrix(testSet)
    logger.Info("Data loaded",
        zap.Int("train", len(Xtrain)),
        zap.Int("test", len(Xtest)),
        zap.Strings("features", features.Names()))

    rng := rand.New(rand.NewSource(cfg.CV.Seed))
    scores, bestDepth, err := eval.DepthSearch(Xtrain, ytrain, cfg.CV.MinDepth, cfg.CV.MaxDepth, cfg.CV.Folds, rng)
    if err != nil { logger.Fatal("Cross-validation failed", zap.Error(err)) }
    logger.Info("Cross-validation finished",
        zap.Int("folds", cfg.CV.Folds),
        zap.Int("best_depth", bestDepth))

    dt := models.NewDecisionTree()
    dt.MaxDepth = bestDepth
    if err := dt.Fit(Xtrain, ytrain); err != nil {
        logger.Fatal("Failed to fit decision tree", zap.Error(err))
    }

    predTrain := dt.Predict(Xtrain)
    predTest := dt.Predict(Xtest)
    accs := []eval.SetAccuracy{
        eval.ScoreSet("train", ytrain, predTrain),
        eval.ScoreSet("test", ytest, predTest),
    }
    for _, a := range accs {
        logger.Info("Accuracy",
            zap.String("set", a.Set),
            zap.Int("n_total", a.Total),
            zap.Int("n_correct_pred", a.Correct),
            zap.Int("n_incorrect_pred", a.Incorrect),
            zap.Float64("accuracy", a.Accuracy))
    }

    ranks, err := eval.RankFeatures(features.Names(), dt.FeatureImportances())
    if err != nil { logger.Fatal("Failed to rank features", zap.Error(err)) }

    if err := os.MkdirAll(cfg.Results.Dir, 0o755); err != nil {
        logger.Fatal("Failed to create results dir", zap.Error(err))
    }
    modelPath := filepath.Join(cfg.Results.Dir, "classification_tree.gob")
    if err := saveModel(modelPath, dt); err != nil {
        logger.Fatal("Failed to save model", zap.Error(err))
    }
    logger.Info("Model saved", zap.String("path", modelPath), zap.Int("depth", dt.Depth()))

    writes := []struct {
        name string
        fn   func(string) error
    }{
        {"train_prediction.csv", func(p string) error { return writePredictions(p, trainSet, predTrain) }},
        {"test_prediction.csv", func(p string) error { return writePredictions(p, testSet, predTest) }},
        {"classification_accuracies.csv", func(p string) error { return writeAccuracies(p, accs) }},
        {"feature_ranks.csv", func(p string) error { return writeRanks(p, ranks) }},
        {"cv_accuracy.csv", func(p string) error { return writeDepthScores(p, scores) }},
    }
    for _, w := range writes {
        p := filepath.Join(cfg.Results.Dir, w.name)
        if err := w.fn(p); err != nil { logger.Fatal("Failed to write "+w.name, zap.Error(err)) }
        logger.Info("Wrote artifact", zap.String("path", p))
    }

    curvePath := filepath.Join(cfg.Results.Figures, "cv_accuracy.png")
    if err := plots.DepthCurve(curvePath, scores); err != nil {
        logger.Warn("Failed to plot CV curve", zap.Error(err))
    } else {
        logger.Info("CV curve saved", zap.String("path", curvePath))
    }
}

func saveModel(path string, dt *models.DecisionTree) error {
    f, err := os.Create(path)
    if err != nil { return err }
    if err := gob.NewEncoder(f).Encode(dt); err != nil {
        f.Close()
        return err
    }
    // A truncated gob decodes as garbage in the API; the close error is the
    // only signal a short write leaves.
    return f.Close()
}

func writePredictions(path string, ps []data.Passenger, preds []int) error {
    return writeCSV(path,
        []string{"PassengerId", "Pclass", "Sex", "Age", "SibSp", "Parch", "Fare", "Survived", "Prediction"},
        len(ps), func(i int) []string {
            p := ps[i]
            return []string{
                strconv.Itoa(p.PassengerID),
                ff(p.Pclass), ff(p.Sex), ff(p.Age), ff(p.SibSp), ff(p.Parch), ff(p.Fare),
                strconv.Itoa(p.Survived), strconv.Itoa(preds[i]),
            }
        })
}

func writeAccuracies(path string, accs []eval.SetAccuracy) error {
    return writeCSV(path,
        []string{"set", "n_total", "n_correct_pred", "n_incorrect_pred", "accuracy"},
        len(accs), func(i int) []string {
            a := accs[i]
            return []string{a.Set, strconv.Itoa(a.Total), strconv.Itoa(a.Correct),
                strconv.Itoa(a.Incorrect), fmt.Sprintf("%.4f", a.Accuracy)}
        })
}

func writeRanks(path string, ranks []eval.FeatureRank) error {
    return writeCSV(path, []string{"Rank", "Feature", "Importance"},
        len(ranks), func(i int) []string {
            r := ranks[i]
            return []string{strconv.Itoa(r.Rank), r.Feature, fmt.Sprintf("%.6f", r.Importance)}
        })
}

func writeDepthScores(path string, scores []eval.DepthScore) error {
    return writeCSV(path, []string{"max_depth", "cv_accuracy"},
        len(scores), func(i int) []string {
            s := scores[i]
            return []string{strconv.Itoa(s.Depth), fmt.Sprintf("%.6f", s.Accuracy)}
        })
}

func writeCSV(path string, header []string, n int, row func(int) []string) error {
    f, err := os.Create(path)
    if err != nil { return err }
    w := csv.NewWriter(f)
    if err := w.Write(header); err != nil { f.Close(); return err }
    for i := 0; i < n; i++ {
        if err := w.Write(row(i)); err != nil { f.Close(); return err }
    }
    w.Flush()
    if err := w.Error(); err != nil { f.Close(); return err }
    return f.Close()
}

func ff(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
