package models

// TimelineEvent is a dated label used to annotate a history view
type TimelineEvent struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Content string `json:"content"`
}
