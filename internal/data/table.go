package data

import (
    "encoding/csv"
    "fmt"
    "os"
    "path/filepath"
)

// Table is a header-indexed CSV in memory. The Kaggle files address columns
// by name and the test set lacks Survived, so positional access is not enough.
type Table struct {
    Header []string
    Rows   [][]string
}

func ReadTable(path string) (*Table, error) {
    f, err := os.Open(path)
    if err != nil { return nil, err }
    defer f.Close()
    r := csv.NewReader(f)
    rows, err := r.ReadAll()
    if err != nil { return nil, fmt.Errorf("read %s: %w", path, err) }
    if len(rows) < 1 { return nil, fmt.Errorf("read %s: empty CSV", path) }
    return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

func (t *Table) Write(path string) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    w := csv.NewWriter(f)
    if err := w.Write(t.Header); err != nil { f.Close(); return err }
    for _, row := range t.Rows {
        if err := w.Write(row); err != nil { f.Close(); return err }
    }
    w.Flush()
    // A short write (full disk) only shows up here; a truncated cleaned CSV
    // must not reach the trainer.
    if err := w.Error(); err != nil { f.Close(); return err }
    return f.Close()
}

// Col returns the index of the named column.
func (t *Table) Col(name string) (int, error) {
    for i, h := range t.Header {
        if h == name { return i, nil }
    }
    return 0, fmt.Errorf("column %q not found", name)
}

// Select returns a new table with only the named columns, in order.
func (t *Table) Select(names ...string) (*Table, error) {
    idx := make([]int, len(names))
    for i, n := range names {
        j, err := t.Col(n)
        if err != nil { return nil, err }
        idx[i] = j
    }
    out := &Table{Header: append([]string(nil), names...)}
    for _, row := range t.Rows {
        nr := make([]string, len(idx))
        for i, j := range idx { nr[i] = row[j] }
        out.Rows = append(out.Rows, nr)
    }
    return out, nil
}
