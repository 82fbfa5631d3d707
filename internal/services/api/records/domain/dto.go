// Package domain holds DTOs for records http and service contracts
package domain

// RetrieveInput identifies whose recorded history to pull from the upload
type RetrieveInput struct {
	Name string `form:"name" validate:"required,max=100" example:"ada"`
}

// Upload carries one uploaded file already read into memory.
// Err records a read failure so the service can report it without the
// transport layer deciding what a failure means
type Upload struct {
	Filename string
	Data     []byte
	Err      error
}

// CycleFields are the recorded history columns read from the first matching
// row. A nil field means the column was missing or the cell was empty; it
// still serializes, as null, so clients see every key on success
type CycleFields struct {
	LMPCycle1       *string `json:"LMP_Cycle_1"`
	LMPCycle2       *string `json:"LMP_Cycle_2"`
	LMPCycle3       *string `json:"LMP_Cycle_3"`
	CycleLength1    *string `json:"Cycle_Length_1"`
	CycleLength2    *string `json:"Cycle_Length_2"`
	CycleLength3    *string `json:"Cycle_Length_3"`
	PeriodDuration1 *string `json:"Period_Duration_1"`
	PeriodDuration2 *string `json:"Period_Duration_2"`
	PeriodDuration3 *string `json:"Period_Duration_3"`
	IsPCOS          *string `json:"is_pcos"`
}

// RetrieveResult is the retrieve operation response payload.
// The embedded fields are only present on success; failures carry just the
// flag and a descriptive message
type RetrieveResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	*CycleFields
}
