package data

// Passenger is one row of the cleaned dataset: Sex already encoded
// (male=1, female=0) and missing Age/Fare already imputed.
type Passenger struct {
    PassengerID int     `json:"passenger_id"`
    Pclass      float64 `json:"pclass"`
    Sex         float64 `json:"sex"`
    Age         float64 `json:"age"`
    SibSp       float64 `json:"sibsp"`
    Parch       float64 `json:"parch"`
    Fare        float64 `json:"fare"`
    Survived    int     `json:"survived"`
}
