package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ArchiveSession represents one finished ledger session.
type ArchiveSession struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StartedAt   time.Time `gorm:"not null" json:"started_at"`
	ClosedAt    time.Time `gorm:"not null;index" json:"closed_at"`
	RecordCount int       `gorm:"not null;default:0" json:"record_count"`

	// Relationships
	Records []ArchiveRecord `gorm:"foreignKey:SessionID" json:"records,omitempty"`
}

func (ArchiveSession) TableName() string {
	return "archive_sessions"
}

// ArchiveRecord is one registry entry persisted at session close. Position is
// the insertion index within the session, so reading records ordered by
// position replays the registry's display order.
type ArchiveRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Position  int       `gorm:"not null" json:"position"`
	Kind      string    `gorm:"type:varchar(16);not null;index" json:"kind"`
	Payload   JSON      `gorm:"type:jsonb" json:"payload"`
}

func (ArchiveRecord) TableName() string {
	return "archive_records"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}
