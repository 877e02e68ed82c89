package config

import (
    "fmt"
    "os"
    "strconv"

    "github.com/goccy/go-yaml"
)

// Config is the pipeline configuration shared by the CLIs. Flags in the
// individual commands override whatever the file supplies.
type Config struct {
    Data struct {
        RawTrain         string `yaml:"raw_train"`
        RawTest          string `yaml:"raw_test"`
        GenderSubmission string `yaml:"gender_submission"`
        CleanTrain       string `yaml:"clean_train"`
        CleanTest        string `yaml:"clean_test"`
    } `yaml:"data"`
    Results struct {
        Dir     string `yaml:"dir"`
        Figures string `yaml:"figures"`
    } `yaml:"results"`
    CV struct {
        Folds    int   `yaml:"folds"`
        MinDepth int   `yaml:"min_depth"`
        MaxDepth int   `yaml:"max_depth"`
        Seed     int64 `yaml:"seed"`
    } `yaml:"cv"`
    Server struct {
        Port string `yaml:"port"`
    } `yaml:"server"`
}

func Default() Config {
    var c Config
    c.Data.RawTrain = "data/raw/train.csv"
    c.Data.RawTest = "data/raw/test.csv"
    c.Data.GenderSubmission = "data/raw/gender_submission.csv"
    c.Data.CleanTrain = "data/cleaned/cleaned_train.csv"
    c.Data.CleanTest = "data/cleaned/cleaned_test.csv"
    c.Results.Dir = "results"
    c.Results.Figures = "results/figures"
    c.CV.Folds = 10
    c.CV.MinDepth = 1
    c.CV.MaxDepth = 49
    c.CV.Seed = 42
    c.Server.Port = "8080"
    return c
}

// ParseSeed interprets a CLI seed flag: the empty string keeps fallback,
// anything else must parse as an integer. Zero is a valid seed.
func ParseSeed(s string, fallback int64) (int64, error) {
    if s == "" { return fallback, nil }
    v, err := strconv.ParseInt(s, 10, 64)
    if err != nil { return 0, fmt.Errorf("seed %q: %w", s, err) }
    return v, nil
}

// Load reads the YAML pipeline file over the defaults. A missing file (or an
// empty path) just yields the defaults.
func Load(path string) (Config, error) {
    c := Default()
    if path == "" { return c, nil }
    raw, err := os.ReadFile(path)
    if err != nil {
        if os.IsNotExist(err) { return c, nil }
        return c, err
    }
    if err := yaml.Unmarshal(raw, &c); err != nil {
        return c, fmt.Errorf("parse %s: %w", path, err)
    }
    return c, nil
}
