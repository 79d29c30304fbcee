package models

import "time"

// LinkAuditReport represents the outcome of one link audit run, stored in
// MongoDB and optionally exported to a spreadsheet.
type LinkAuditReport struct {
	RunAt       time.Time    `bson:"run_at" json:"run_at"`
	Checked     int          `bson:"checked" json:"checked"`
	Healthy     int          `bson:"healthy" json:"healthy"`
	Skipped     int          `bson:"skipped" json:"skipped"`
	BrokenLinks []BrokenLink `bson:"broken_links" json:"broken_links"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
}

// BrokenLink identifies one empenho whose detail link did not answer with a
// healthy status.
type BrokenLink struct {
	EmpenhoID  string `bson:"empenho_id" json:"empenho_id"`
	Numero     string `bson:"numero" json:"numero"`
	URL        string `bson:"url" json:"url"`
	StatusCode int    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Reason     string `bson:"reason,omitempty" json:"reason,omitempty"`
}
