// Package domain holds DTOs for stats http and service contracts
package domain

// SystemCount is the number of readings computed under one system
type SystemCount struct {
	System string `json:"system" example:"abjad"`
	Count  uint64 `json:"count" example:"128"`
}

// DailyCount is the number of readings computed on one day
type DailyCount struct {
	Day   string `json:"day" example:"2026-08-26"`
	Count uint64 `json:"count" example:"42"`
}

// DailyInput bounds the daily rollup window
type DailyInput struct {
	Days int `json:"days,omitempty" validate:"omitempty,min=1,max=365" example:"30"`
}
