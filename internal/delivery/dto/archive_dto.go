package dto

import "time"

type ArchiveSessionResponse struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	ClosedAt    time.Time `json:"closed_at"`
	RecordCount int       `json:"record_count"`
}

type ArchiveSessionListResponse struct {
	Sessions []ArchiveSessionResponse `json:"sessions"`
	Total    int                      `json:"total"`
}

type ArchiveRecordResponse struct {
	Position int                    `json:"position"`
	Kind     string                 `json:"kind"`
	Payload  map[string]interface{} `json:"payload"`
}

type SessionRecordsResponse struct {
	SessionID string                  `json:"session_id"`
	Records   []ArchiveRecordResponse `json:"records"`
	Total     int                     `json:"total"`
}
