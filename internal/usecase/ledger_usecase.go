package usecase

import (
	"context"
	"io"
	"time"

	"record-registry/internal/converter"
	"record-registry/internal/domain/entity"
	"record-registry/internal/domain/repository"
	"record-registry/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LedgerUsecase holds the transaction registry for one interactive session.
// Records are appended in menu order and displayed in insertion order; closing
// the session archives the registry contents when a database is configured,
// then releases them.
type LedgerUsecase interface {
	Append(ctx context.Context, rec entity.Record)
	DisplayAll(ctx context.Context, w io.Writer)
	Size() int
	CloseSession(ctx context.Context) error
}

type ledgerUsecase struct {
	db          *gorm.DB // nil when archival is disabled
	log         *logrus.Logger
	registry    repository.Registry
	sessionRepo repository.ArchiveSessionRepository
	recordRepo  repository.ArchiveRecordRepository
	summary     service.SummaryService
	sessionID   uuid.UUID
	startedAt   time.Time
}

func NewLedgerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	registry repository.Registry,
	sessionRepo repository.ArchiveSessionRepository,
	recordRepo repository.ArchiveRecordRepository,
	summary service.SummaryService,
) LedgerUsecase {
	return &ledgerUsecase{
		db:          db,
		log:         log,
		registry:    registry,
		sessionRepo: sessionRepo,
		recordRepo:  recordRepo,
		summary:     summary,
		sessionID:   uuid.New(),
		startedAt:   time.Now(),
	}
}

func (u *ledgerUsecase) Append(ctx context.Context, rec entity.Record) {
	u.registry.Append(rec)
	u.summary.RecordAppended(ctx, u.sessionID, rec.Kind())
}

func (u *ledgerUsecase) DisplayAll(ctx context.Context, w io.Writer) {
	for _, rec := range u.registry.All() {
		rec.Present(w)
	}
}

func (u *ledgerUsecase) Size() int {
	return u.registry.Len()
}

func (u *ledgerUsecase) CloseSession(ctx context.Context) error {
	defer u.registry.Clear()

	if u.db == nil || u.registry.Len() == 0 {
		return nil
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	session := &entity.ArchiveSession{
		ID:          u.sessionID,
		StartedAt:   u.startedAt,
		ClosedAt:    time.Now(),
		RecordCount: u.registry.Len(),
	}
	if err := u.sessionRepo.Create(tx, session); err != nil {
		u.log.Warnf("Failed to create archive session: %+v", err)
		return err
	}

	for i, rec := range u.registry.All() {
		row := converter.RecordToArchive(u.sessionID, i, rec)
		if err := u.recordRepo.Create(tx, row); err != nil {
			u.log.Warnf("Failed to archive record: %+v", err)
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Archived session %s with %d records", u.sessionID, session.RecordCount)

	return nil
}
