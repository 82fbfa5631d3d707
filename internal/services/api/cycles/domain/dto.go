// Package domain holds DTOs for cycles http and service contracts
package domain

import "time"

// PredictInput is the cycle history submitted for a prediction
type PredictInput struct {
	Name            string    `form:"name" validate:"required,max=100" example:"ada"`
	CycleLength1    int       `form:"cycleLength1" validate:"required,min=1" example:"28"`
	CycleLength2    int       `form:"cycleLength2" validate:"required,min=1" example:"30"`
	CycleLength3    int       `form:"cycleLength3" validate:"required,min=1" example:"26"`
	PeriodDuration1 int       `form:"periodDuration1" validate:"required,min=1" example:"5"`
	PeriodDuration2 int       `form:"periodDuration2" validate:"required,min=1" example:"6"`
	PeriodDuration3 int       `form:"periodDuration3" validate:"required,min=1" example:"5"`
	LMPDate3        time.Time `form:"lmpDate3" validate:"required" example:"2024-01-01"`
	PCOS            bool      `form:"pcos" example:"true"`
}

// Upload carries one uploaded file already read into memory.
// Err records a read failure so the service can report it without the
// transport layer deciding what a failure means
type Upload struct {
	Filename string
	Data     []byte
	Err      error
}

// FertileWindow is the formatted window returned to clients
type FertileWindow struct {
	Start string `json:"start" example:"Wednesday, February 07, 2024"`
	End   string `json:"end"   example:"Tuesday, February 13, 2024"`
}

// ProbabilityEntry is one day of the window with its likelihood label
type ProbabilityEntry struct {
	Date        string `json:"date"        example:"February 07"`
	Probability string `json:"probability" example:"Low (~4%)"`
}

// Insights summarizes the submitted history
type Insights struct {
	AverageCycleLength    int `json:"averageCycleLength"    example:"28"`
	AveragePeriodDuration int `json:"averagePeriodDuration" example:"5"`
}

// Prediction is the predict operation response payload
type Prediction struct {
	FertileWindow         FertileWindow      `json:"fertileWindow"`
	OvulationDay          string             `json:"ovulationDay" example:"Monday, February 12, 2024"`
	CycleRegularity       string             `json:"cycleRegularity" example:"Regular"`
	ConceptionProbability []ProbabilityEntry `json:"conceptionProbability"`
	Insights              Insights           `json:"insights"`
}
