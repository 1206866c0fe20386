// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Dominant mood labels reported by [MoodInsights].
const (
	DominantMoodNotEnoughData  = "Not enough mood data"
	DominantMoodMixed          = "Mixed"
	DominantMoodMostlyPositive = "Mostly Positive"
	DominantMoodMostlyNegative = "Mostly Negative"
	DominantMoodNeutral        = "Neutral"
)

// MoodInsights summarizes the mood logs of one user over a date range.
type MoodInsights struct {
	Count        int         `json:"count"`
	Average      float64     `json:"average"`
	Min          int         `json:"min"`
	Max          int         `json:"max"`
	StdDev       float64     `json:"std_dev"`
	Distribution map[int]int `json:"distribution"`
	DominantMood string      `json:"dominant_mood"`
}
