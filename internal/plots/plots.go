package plots

import (
    "os"
    "path/filepath"

    "gonum.org/v1/plot"
    "gonum.org/v1/plot/plotter"
    "gonum.org/v1/plot/plotutil"
    "gonum.org/v1/plot/vg"

    "titanic/internal/eval"
)

// SurvivalBars renders grouped survived/died bars per category label.
func SurvivalBars(path, title, xlabel string, labels []string, survived, died []float64) error {
    p := plot.New()
    p.Title.Text = title
    p.X.Label.Text = xlabel
    p.Y.Label.Text = "Passengers"

    w := vg.Points(20)
    bs, err := plotter.NewBarChart(plotter.Values(survived), w)
    if err != nil { return err }
    bs.Color = plotutil.Color(0)
    bs.Offset = -w / 2
    bd, err := plotter.NewBarChart(plotter.Values(died), w)
    if err != nil { return err }
    bd.Color = plotutil.Color(1)
    bd.Offset = w / 2

    p.Add(bs, bd)
    p.Legend.Add("Survived", bs)
    p.Legend.Add("Died", bd)
    p.Legend.Top = true
    p.NominalX(labels...)

    return save(p, path)
}

// Histogram overlays the value distributions for survivors and casualties.
// Survivors use the first plotutil color, casualties the second.
func Histogram(path, title, xlabel string, survived, died []float64) error {
    p := plot.New()
    p.Title.Text = title
    p.X.Label.Text = xlabel
    p.Y.Label.Text = "Passengers"

    hd, err := plotter.NewHist(plotter.Values(died), 16)
    if err != nil { return err }
    hd.FillColor = plotutil.Color(1)
    hs, err := plotter.NewHist(plotter.Values(survived), 16)
    if err != nil { return err }
    hs.FillColor = plotutil.Color(0)

    p.Add(hd, hs)
    return save(p, path)
}

// DepthCurve plots mean cross-validated accuracy against max_depth.
func DepthCurve(path string, scores []eval.DepthScore) error {
    p := plot.New()
    p.Title.Text = "Cross-validated accuracy by tree depth"
    p.X.Label.Text = "max_depth"
    p.Y.Label.Text = "Mean CV accuracy"
    p.Y.Min = 0
    p.Y.Max = 1

    pts := make(plotter.XYs, len(scores))
    for i, s := range scores {
        pts[i].X = float64(s.Depth)
        pts[i].Y = s.Accuracy
    }
    if err := plotutil.AddLinePoints(p, "CV accuracy", pts); err != nil { return err }
    return save(p, path)
}

func save(p *plot.Plot, path string) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
