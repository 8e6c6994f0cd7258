package entity

import "github.com/eslsoft/benkyo/pkg/japanese"

// NumberQuestion is one number drill card.
type NumberQuestion struct {
	Number    int                `json:"number"`
	Direction japanese.Direction `json:"direction"`
	Prompt    string             `json:"prompt"`
}

// NumberCheck is the outcome of checking a number drill answer.
type NumberCheck struct {
	Correct  bool     `json:"correct"`
	Expected string   `json:"expected"`
	Accepted []string `json:"accepted"`
}
