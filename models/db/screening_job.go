package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/lib/pq"

	"hr-automation-hub/models"
)

type ScreeningJob struct {
	BaseModel
	JobID  string                    `gorm:"type:varchar(36);index" json:"job_id"`
	Job    *Job                      `gorm:"foreignKey:JobID" json:"-"`
	Status models.ScreeningJobStatus `gorm:"type:varchar(20);index;default:queued" json:"status"`
	// набор кандидатов фиксируется при постановке в очередь, воркер
	// обрабатывает именно его: processed никогда не превышает total
	CandidateIDs pq.StringArray `gorm:"type:text[]" json:"-"`
	Total        int            `json:"total"`
	Processed    int            `json:"processed"`
	Provider     string         `gorm:"type:varchar(50)" json:"provider"`
	TokenUsage   *TokenUsage    `gorm:"type:jsonb" json:"token_usage,omitempty"`
	Error        string         `json:"error,omitempty"`
}

type TokenUsage struct {
	TotalTokens      int `json:"total_tokens"`
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

func (u TokenUsage) Value() (driver.Value, error) {
	valueString, err := json.Marshal(u)
	return string(valueString), err
}

func (u *TokenUsage) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &u); err != nil {
		return err
	}
	return nil
}

func (j ScreeningJob) IsTerminal() bool {
	return j.Status == models.ScreeningJobStatusCompleted ||
		j.Status == models.ScreeningJobStatusFailed
}
