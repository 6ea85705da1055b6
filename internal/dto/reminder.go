package dto

import "fmt"

// ReminderRunResult reports one pass of the renewal reminder job
type ReminderRunResult struct {
	Success          bool   `json:"success"`
	WithinDays       int    `json:"within_days"`
	TotalProcessed   int    `json:"total_processed"`
	RemindersSent    int    `json:"reminders_sent"`
	RemindersSkipped int    `json:"reminders_skipped"`
	Errors           int    `json:"errors"`
	Message          string `json:"message"`
}

// Finish fills in Success and the human-readable summary
func (r *ReminderRunResult) Finish() {
	r.Success = r.Errors == 0
	r.Message = fmt.Sprintf("Processed %d subscriptions. Sent %d reminders, skipped %d, encountered %d errors.",
		r.TotalProcessed, r.RemindersSent, r.RemindersSkipped, r.Errors)
}
