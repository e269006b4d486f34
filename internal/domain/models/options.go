package models

// Option is a label/value pair rendered by client-side pickers.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
