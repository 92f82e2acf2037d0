package entities

import "time"

// WorkDiary is a daily site log (diário de obra) persisted in DynamoDB.
//
// AISummary and AIInsights are filled asynchronously after creation; the
// record is complete and valid without them.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
type WorkDiary struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	Date       time.Time `json:"date"`
	Activities string    `json:"activities"`
	Materials  string    `json:"materials,omitempty"`
	Equipment  string    `json:"equipment,omitempty"`
	AISummary  string    `json:"ai_summary,omitempty"`
	AIInsights string    `json:"ai_insights,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
