package data

import (
    "encoding/csv"
    "fmt"
    "math/rand"
    "os"
    "path/filepath"
    "strconv"
)

var surnames = []string{"Smith", "Andersson", "Brown", "Olsen", "Murphy", "Svensson", "Palsson", "Rice", "Goodwin", "Sage"}
var givenMale = []string{"John", "William", "James", "George", "Thomas"}
var givenFemale = []string{"Mary", "Anna", "Margaret", "Elizabeth", "Bridget"}
var embarkPorts = []string{"S", "C", "Q"}

// GenerateSynthetic writes raw-format train/test/gender_submission CSVs so the
// pipeline can run without the Kaggle download. The survival rule leans on
// sex, class and age; roughly a fifth of ages are left blank and the odd fare
// is missing, matching the holes the cleaner has to fill.
func GenerateSynthetic(n int, seed int64, trainPath, testPath, subPath string) error {
    if n < 10 { return fmt.Errorf("need at least 10 passengers, got %d", n)}
    rng := rand.New(rand.NewSource(seed))

    rawHeader := []string{"PassengerId", "Survived", "Pclass", "Name", "Sex", "Age", "SibSp", "Parch", "Ticket", "Fare", "Cabin", "Embarked"}
    testHeader := []string{"PassengerId", "Pclass", "Name", "Sex", "Age", "SibSp", "Parch", "Ticket", "Fare", "Cabin", "Embarked"}

    nTrain := int(0.8 * float64(n))

    trainW, trainClose, err := newCSV(trainPath, rawHeader)
    if err != nil { return err }
    defer trainClose()
    testW, testClose, err := newCSV(testPath, testHeader)
    if err != nil { return err }
    defer testClose()
    subW, subClose, err := newCSV(subPath, []string{"PassengerId", "Survived"})
    if err != nil { return err }
    defer subClose()

    for i := 0; i < n; i++ {
        id := strconv.Itoa(i + 1)
        pclass := 1 + rng.Intn(3)
        male := rng.Float64() < 0.65

        sex := "female"
        given := givenFemale[rng.Intn(len(givenFemale))]
        if male {
            sex = "male"
            given = givenMale[rng.Intn(len(givenMale))]
        }
        name := fmt.Sprintf("%s, %s", surnames[rng.Intn(len(surnames))], given)

        age := rng.Float64()*60 + 1
        ageStr := strconv.FormatFloat(float64(int(age)), 'f', 1, 64)
        if rng.Float64() < 0.2 { ageStr = "" }

        sibsp := rng.Intn(3)
        parch := rng.Intn(3)
        ticket := "T" + strconv.Itoa(100000+rng.Intn(900000))

        fare := rng.Float64()*60 + 5
        if pclass == 1 { fare += 60 }
        if pclass == 2 { fare += 15 }
        fareStr := strconv.FormatFloat(fare, 'f', 4, 64)
        if rng.Float64() < 0.005 { fareStr = "" }

        cabin := ""
        if pclass == 1 && rng.Float64() < 0.7 {
            cabin = "C" + strconv.Itoa(rng.Intn(120))
        }
        embarked := embarkPorts[rng.Intn(len(embarkPorts))]

        score := 0.1
        if !male { score += 0.55 }
        if age < 10 { score += 0.2 }
        switch pclass {
        case 1:
            score += 0.2
        case 2:
            score += 0.08
        }
        survived := 0
        if rng.Float64() < score { survived = 1 }

        if i < nTrain {
            rec := []string{id, strconv.Itoa(survived), strconv.Itoa(pclass), name, sex, ageStr,
                strconv.Itoa(sibsp), strconv.Itoa(parch), ticket, fareStr, cabin, embarked}
            if err := trainW.Write(rec); err != nil { return err }
            continue
        }
        rec := []string{id, strconv.Itoa(pclass), name, sex, ageStr,
            strconv.Itoa(sibsp), strconv.Itoa(parch), ticket, fareStr, cabin, embarked}
        if err := testW.Write(rec); err != nil { return err }
        if err := subW.Write([]string{id, strconv.Itoa(survived)}); err != nil { return err }
    }
    trainW.Flush()
    testW.Flush()
    subW.Flush()
    if err := trainW.Error(); err != nil { return err }
    if err := testW.Error(); err != nil { return err }
    return subW.Error()
}

func newCSV(path string, header []string) (*csv.Writer, func(), error) {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return nil, nil, err }
    f, err := os.Create(path)
    if err != nil { return nil, nil, err }
    w := csv.NewWriter(f)
    if err := w.Write(header); err != nil {
        f.Close()
        return nil, nil, err
    }
    return w, func() { w.Flush(); f.Close() }, nil
}
