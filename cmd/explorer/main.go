package main

import (
    "flag"
    "path/filepath"

    "go.uber.org/zap"

    "titanic/internal/config"
    "titanic/internal/data"
    "titanic/internal/plots"
    "titanic/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    cfgPath := flag.String("config", "pipeline.yaml", "Pipeline config file")
    trainPath := flag.String("train", "", "Cleaned train CSV (overrides config)")
    figDir := flag.String("figures", "", "Figures directory (overrides config)")
    flag.Parse()

    cfg, err := config.Load(*cfgPath)
    if err != nil { logger.Fatal("Failed to load config", zap.Error(err)) }
    if *trainPath != "" { cfg.Data.CleanTrain = *trainPath }
    if *figDir != "" { cfg.Results.Figures = *figDir }

    ps, err := data.LoadClean(cfg.Data.CleanTrain)
    if err != nil { logger.Fatal("Failed to load cleaned train CSV", zap.Error(err)) }
    logger.Info("Cleaned data loaded", zap.Int("rows", len(ps)))

    // Grouped survived/died counts by sex (female first, matching encoding 0/1).
    sexLabels := []string{"female", "male"}
    sexSurv := make([]float64, 2)
    sexDied := make([]float64, 2)
    classLabels := []string{"1st", "2nd", "3rd"}
    classSurv := make([]float64, 3)
    classDied := make([]float64, 3)
    var ageSurv, ageDied, fareSurv, fareDied []float64

    for _, p := range ps {
        sex := int(p.Sex)
        class := int(p.Pclass) - 1
        if sex < 0 || sex > 1 || class < 0 || class > 2 {
            logger.Fatal("Unexpected encoded value",
                zap.Int("passenger_id", p.PassengerID),
                zap.Float64("sex", p.Sex),
                zap.Float64("pclass", p.Pclass))
        }
        if p.Survived == 1 {
            sexSurv[sex]++
            classSurv[class]++
            ageSurv = append(ageSurv, p.Age)
            fareSurv = append(fareSurv, p.Fare)
        } else {
            sexDied[sex]++
            classDied[class]++
            ageDied = append(ageDied, p.Age)
            fareDied = append(fareDied, p.Fare)
        }
    }

    figures := []struct {
        name string
        fn   func(string) error
    }{
        {"survival_by_sex.png", func(p string) error {
            return plots.SurvivalBars(p, "Survival by sex", "Sex", sexLabels, sexSurv, sexDied)
        }},
        {"survival_by_class.png", func(p string) error {
            return plots.SurvivalBars(p, "Survival by passenger class", "Class", classLabels, classSurv, classDied)
        }},
        {"age_distribution.png", func(p string) error {
            return plots.Histogram(p, "Age by outcome", "Age (years)", ageSurv, ageDied)
        }},
        {"fare_distribution.png", func(p string) error {
            return plots.Histogram(p, "Fare by outcome", "Fare", fareSurv, fareDied)
        }},
    }
    for _, fig := range figures {
        path := filepath.Join(cfg.Results.Figures, fig.name)
        if err := fig.fn(path); err != nil {
            logger.Fatal("Failed to render "+fig.name, zap.Error(err))
        }
        logger.Info("Figure saved", zap.String("path", path))
    }
}
