package models

import (
	"fmt"
	"strings"
)

// Difficulty is the closed set of explanation levels the service accepts.
// Past ParseDifficulty no other value can occur.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists the accepted values in the order they are reported
// back to callers.
var Difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

// ParseDifficulty validates a raw difficulty string. Matching is exact and
// case-sensitive.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if s == string(d) {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid difficulty %q, must be one of: %s", s, DifficultyValues())
}

// DifficultyValues returns the accepted values as a comma-separated list for
// error messages.
func DifficultyValues() string {
	values := make([]string, len(Difficulties))
	for i, d := range Difficulties {
		values[i] = string(d)
	}
	return strings.Join(values, ", ")
}

// ExplanationRequest represents the incoming explain request
type ExplanationRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

// ExplanationResponse represents a successful explanation
type ExplanationResponse struct {
	Explanation string `json:"explanation"`
}

// ErrorResponse carries the client-facing failure message
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
