package main

import (
    "encoding/gob"
    "flag"
    "net/http"
    "os"
    "path/filepath"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/gin-gonic/gin/binding"
    "github.com/go-playground/validator/v10"
    "go.uber.org/zap"

    "titanic/internal/config"
    "titanic/internal/data"
    "titanic/internal/features"
    "titanic/internal/models"
    "titanic/pkg/utils"
)

// ruleModel is the fallback when no fitted tree is on disk: women and
// children first, first class next.
type ruleModel struct{}

func (r *ruleModel) Fit(X [][]float64, y []int) error { return nil }
func (r *ruleModel) Name() string                     { return "RuleModel" }

func (r *ruleModel) Predict(X [][]float64) []int {
    out := make([]int, len(X))
    for i, v := range X {
        if r.score(v) >= 0.5 { out[i] = 1 }
    }
    return out
}

func (r *ruleModel) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    for i, v := range X { out[i] = r.score(v) }
    return out
}

// Feature order is Pclass, Sex, Age, ... (see features.Names).
func (r *ruleModel) score(v []float64) float64 {
    s := 0.1
    if v[1] == 0 { s += 0.55 }
    if v[2] < 10 { s += 0.2 }
    switch v[0] {
    case 1:
        s += 0.2
    case 2:
        s += 0.08
    }
    if s > 0.95 { s = 0.95 }
    return s
}

var model models.Model

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    cfgPath := flag.String("config", "pipeline.yaml", "Pipeline config file")
    flag.Parse()

    cfg, err := config.Load(*cfgPath)
    if err != nil { logger.Fatal("Failed to load config", zap.Error(err)) }

    model = loadModel(filepath.Join(cfg.Results.Dir, "classification_tree.gob"), logger)
    logger.Info("Model loaded", zap.String("model", model.Name()))

    if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
        _ = v.RegisterValidation("sexlabel", func(fl validator.FieldLevel) bool {
            s := strings.ToLower(fl.Field().String())
            return s == "male" || s == "female"
        })
    }

    r := gin.Default()

    r.Static("/figures", cfg.Results.Figures)
    r.GET("/results/accuracies", resultsHandler(filepath.Join(cfg.Results.Dir, "classification_accuracies.csv")))
    r.GET("/results/features", resultsHandler(filepath.Join(cfg.Results.Dir, "feature_ranks.csv")))

    api := r.Group("/")
    api.Use(apiKeyMiddleware)
    api.POST("/predict", handlePredict)
    api.POST("/batch", handleBatch)

    port := os.Getenv("PORT")
    if port == "" { port = cfg.Server.Port }
    r.Run(":" + port)
}

// loadModel decodes the fitted tree, falling back to the rule model. A
// corrupt gob is logged with its decode error so it is not mistaken for a
// missing file.
func loadModel(path string, logger *zap.Logger) models.Model {
    f, err := os.Open(path)
    if err != nil {
        logger.Warn("No fitted model found, serving rule-based fallback",
            zap.String("path", path), zap.Error(err))
        return &ruleModel{}
    }
    defer f.Close()
    var dt models.DecisionTree
    if err := gob.NewDecoder(f).Decode(&dt); err != nil {
        logger.Warn("Failed to decode saved model, serving rule-based fallback",
            zap.String("path", path), zap.Error(err))
        return &ruleModel{}
    }
    if dt.Root == nil {
        logger.Warn("Saved model has no tree, serving rule-based fallback",
            zap.String("path", path))
        return &ruleModel{}
    }
    return &dt
}

func apiKeyMiddleware(c *gin.Context) {
    key := os.Getenv("API_KEY")
    if key == "" { c.Next(); return }
    if c.GetHeader("X-API-Key") != key {
        c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
        return
    }
    c.Next()
}

type predictReq struct {
    Pclass int     `json:"pclass" binding:"required,min=1,max=3"`
    Sex    string  `json:"sex" binding:"required,sexlabel"`
    Age    float64 `json:"age" binding:"gte=0"`
    SibSp  int     `json:"sibsp" binding:"gte=0"`
    Parch  int     `json:"parch" binding:"gte=0"`
    Fare   float64 `json:"fare" binding:"gte=0"`
}

func (req predictReq) vector() []float64 {
    sex := 0.0
    if strings.EqualFold(req.Sex, "male") { sex = 1.0 }
    p := data.Passenger{
        Pclass: float64(req.Pclass),
        Sex:    sex,
        Age:    req.Age,
        SibSp:  float64(req.SibSp),
        Parch:  float64(req.Parch),
        Fare:   req.Fare,
    }
    v, _ := features.Vectorize(p)
    return v
}

func handlePredict(c *gin.Context) {
    var req predictReq
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    p := model.PredictProba([][]float64{req.vector()})[0]
    survived := 0
    if p >= 0.5 { survived = 1 }
    c.JSON(http.StatusOK, gin.H{"probability": p, "survived": survived, "model": model.Name()})
}

func handleBatch(c *gin.Context) {
    var items []predictReq
    if err := c.ShouldBindJSON(&items); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    X := make([][]float64, len(items))
    for i := range items { X[i] = items[i].vector() }
    ps := model.PredictProba(X)
    out := make([]gin.H, len(items))
    for i, p := range ps {
        survived := 0
        if p >= 0.5 { survived = 1 }
        out[i] = gin.H{"probability": p, "survived": survived}
    }
    c.JSON(http.StatusOK, gin.H{"items": out, "model": model.Name()})
}

// resultsHandler serves a result CSV as JSON rows keyed by header.
func resultsHandler(path string) gin.HandlerFunc {
    return func(c *gin.Context) {
        t, err := data.ReadTable(path)
        if err != nil {
            c.JSON(http.StatusOK, gin.H{"rows": []gin.H{}})
            return
        }
        rows := make([]gin.H, 0, len(t.Rows))
        for _, row := range t.Rows {
            item := gin.H{}
            for i, h := range t.Header {
                if i < len(row) { item[h] = row[i] }
            }
            rows = append(rows, item)
        }
        c.JSON(http.StatusOK, gin.H{"rows": rows})
    }
}
