package main

import (
    "flag"

    "go.uber.org/zap"

    "titanic/internal/config"
    "titanic/internal/data"
    "titanic/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    cfgPath := flag.String("config", "pipeline.yaml", "Pipeline config file")
    synth := flag.Bool("synth", false, "Generate synthetic raw CSVs before cleaning")
    n := flag.Int("n", 1309, "Number of synthetic passengers")
    seed := flag.String("seed", "", "Synthetic generator seed (empty = config seed; 0 is a valid seed)")
    trainPath := flag.String("train", "", "Raw train.csv (overrides config)")
    testPath := flag.String("test", "", "Raw test.csv (overrides config)")
    subPath := flag.String("gender", "", "gender_submission.csv (overrides config)")
    outTrain := flag.String("out_train", "", "Cleaned train CSV (overrides config)")
    outTest := flag.String("out_test", "", "Cleaned test CSV (overrides config)")
    flag.Parse()

    cfg, err := config.Load(*cfgPath)
    if err != nil { logger.Fatal("Failed to load config", zap.Error(err)) }
    override(&cfg.Data.RawTrain, *trainPath)
    override(&cfg.Data.RawTest, *testPath)
    override(&cfg.Data.GenderSubmission, *subPath)
    override(&cfg.Data.CleanTrain, *outTrain)
    override(&cfg.Data.CleanTest, *outTest)

    if *synth {
        s, err := config.ParseSeed(*seed, cfg.CV.Seed)
        if err != nil { logger.Fatal("Invalid seed", zap.Error(err)) }
        logger.Info("Generating synthetic raw dataset", zap.Int("n", *n), zap.Int64("seed", s))
        if err := data.GenerateSynthetic(*n, s, cfg.Data.RawTrain, cfg.Data.RawTest, cfg.Data.GenderSubmission); err != nil {
            logger.Fatal("Failed to generate synthetic data", zap.Error(err))
        }
    }

    rawTrain, err := data.ReadTable(cfg.Data.RawTrain)
    if err != nil { logger.Fatal("Failed to read raw train CSV", zap.Error(err)) }
    rawTest, err := data.ReadTable(cfg.Data.RawTest)
    if err != nil { logger.Fatal("Failed to read raw test CSV", zap.Error(err)) }
    sub, err := data.ReadTable(cfg.Data.GenderSubmission)
    if err != nil { logger.Fatal("Failed to read gender_submission CSV", zap.Error(err)) }
    logger.Info("Raw data imported",
        zap.Int("train_rows", len(rawTrain.Rows)),
        zap.Int("test_rows", len(rawTest.Rows)))

    train, test, err := data.Clean(rawTrain, rawTest, sub)
    if err != nil { logger.Fatal("Cleaning failed", zap.Error(err)) }
    logger.Info("Finished cleaning")

    if err := train.Write(cfg.Data.CleanTrain); err != nil {
        logger.Fatal("Failed to write cleaned train CSV", zap.Error(err))
    }
    if err := test.Write(cfg.Data.CleanTest); err != nil {
        logger.Fatal("Failed to write cleaned test CSV", zap.Error(err))
    }
    logger.Info("Clean data exported",
        zap.String("train", cfg.Data.CleanTrain),
        zap.String("test", cfg.Data.CleanTest))
}

func override(dst *string, v string) {
    if v != "" { *dst = v }
}
