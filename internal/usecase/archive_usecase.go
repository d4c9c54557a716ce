package usecase

import (
	"context"
	"errors"

	"record-registry/internal/converter"
	"record-registry/internal/delivery/dto"
	"record-registry/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

// ArchiveUsecase is the read side of the session archive, backing the HTTP
// API.
type ArchiveUsecase interface {
	ListSessions(ctx context.Context) (*dto.ArchiveSessionListResponse, error)
	GetSessionRecords(ctx context.Context, sessionID uuid.UUID) (*dto.SessionRecordsResponse, error)
}

type archiveUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	sessionRepo repository.ArchiveSessionRepository
	recordRepo  repository.ArchiveRecordRepository
}

func NewArchiveUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	sessionRepo repository.ArchiveSessionRepository,
	recordRepo repository.ArchiveRecordRepository,
) ArchiveUsecase {
	return &archiveUsecase{
		db:          db,
		log:         log,
		sessionRepo: sessionRepo,
		recordRepo:  recordRepo,
	}
}

func (u *archiveUsecase) ListSessions(ctx context.Context) (*dto.ArchiveSessionListResponse, error) {
	sessions, err := u.sessionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list archive sessions: %+v", err)
		return nil, err
	}

	responses := converter.ArchiveSessionsToResponses(sessions)

	return &dto.ArchiveSessionListResponse{
		Sessions: responses,
		Total:    len(responses),
	}, nil
}

func (u *archiveUsecase) GetSessionRecords(ctx context.Context, sessionID uuid.UUID) (*dto.SessionRecordsResponse, error) {
	db := u.db.WithContext(ctx)

	session, err := u.sessionRepo.FindByID(db, sessionID)
	if err != nil {
		u.log.Warnf("Failed to find archive session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	records, err := u.recordRepo.FindBySessionID(db, sessionID)
	if err != nil {
		u.log.Warnf("Failed to load session records: %+v", err)
		return nil, err
	}

	return &dto.SessionRecordsResponse{
		SessionID: sessionID.String(),
		Records:   converter.ArchiveRecordsToResponses(records),
		Total:     len(records),
	}, nil
}
