package converter

import (
	"encoding/json"

	"record-registry/internal/delivery/dto"
	"record-registry/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordToArchive flattens a record into an archive row. Position is the
// record's insertion index within the session.
func RecordToArchive(sessionID uuid.UUID, position int, rec entity.Record) *entity.ArchiveRecord {
	payload := entity.JSON{}
	if raw, err := json.Marshal(rec); err == nil {
		_ = json.Unmarshal(raw, &payload)
	}

	return &entity.ArchiveRecord{
		SessionID: sessionID,
		Position:  position,
		Kind:      string(rec.Kind()),
		Payload:   payload,
	}
}

func ArchiveSessionToResponse(session *entity.ArchiveSession) dto.ArchiveSessionResponse {
	return dto.ArchiveSessionResponse{
		ID:          session.ID.String(),
		StartedAt:   session.StartedAt,
		ClosedAt:    session.ClosedAt,
		RecordCount: session.RecordCount,
	}
}

func ArchiveSessionsToResponses(sessions []entity.ArchiveSession) []dto.ArchiveSessionResponse {
	responses := make([]dto.ArchiveSessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, ArchiveSessionToResponse(&sessions[i]))
	}
	return responses
}

func ArchiveRecordToResponse(record *entity.ArchiveRecord) dto.ArchiveRecordResponse {
	return dto.ArchiveRecordResponse{
		Position: record.Position,
		Kind:     record.Kind,
		Payload:  record.Payload,
	}
}

func ArchiveRecordsToResponses(records []entity.ArchiveRecord) []dto.ArchiveRecordResponse {
	responses := make([]dto.ArchiveRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, ArchiveRecordToResponse(&records[i]))
	}
	return responses
}
