package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// AuditLog — append-only журнал действий, пишется рядом с мутациями
// тикетов и решениями по согласованиям. Никогда не изменяется.
type AuditLog struct {
	ID         string     `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	ActorID    string     `gorm:"type:varchar(36);index" json:"actor_id"`
	Action     string     `gorm:"type:varchar(100);index" json:"action"`
	TargetType string     `gorm:"type:varchar(50)" json:"target_type"`
	TargetID   string     `gorm:"type:varchar(36);index" json:"target_id"`
	Before     AuditState `gorm:"type:jsonb" json:"before"`
	After      AuditState `gorm:"type:jsonb" json:"after"`
	Timestamp  time.Time  `gorm:"autoCreateTime;index" json:"timestamp"`
}

type AuditState map[string]any

func (s AuditState) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	valueString, err := json.Marshal(s)
	return string(valueString), err
}

func (s *AuditState) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &s); err != nil {
		return err
	}
	return nil
}
