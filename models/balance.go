package models

type Balance struct {
	Balance         float64 `json:"balance"`
	PreviousBalance float64 `json:"previousBalance"`
}
