package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound      = errors.New("attendance record not found")
	ErrRecordAlreadyExists = errors.New("attendance record already exists for this employee and date")
	ErrAlreadyJustified    = errors.New("attendance record already justified")
)
