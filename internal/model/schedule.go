package model

// Day names used by schedules, Indonesian, Sunday-origin.
var DayNames = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// Schedule represents a recurring weekly class entry
type Schedule struct {
	ID      int64  `json:"id"`
	Subject string `json:"subject"`
	Day     string `json:"day"`
	Time    string `json:"time"` // "HH:MM"
	Notes   string `json:"notes"`
}

// CreateScheduleRequest is used for adding a new schedule entry
type CreateScheduleRequest struct {
	Subject string `json:"subject" binding:"required"`
	Day     string `json:"day" binding:"required,oneof=Senin Selasa Rabu Kamis Jumat Sabtu Minggu"`
	Time    string `json:"time" binding:"required"`
	Notes   string `json:"notes"`
}

// ClosestSchedule is the subject/time fragment shown on the dashboard
type ClosestSchedule struct {
	Subject string `json:"subject"`
	Time    string `json:"time"`
}
