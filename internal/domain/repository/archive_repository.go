package repository

import (
	"record-registry/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArchiveSessionRepository interface {
	Create(db *gorm.DB, session *entity.ArchiveSession) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ArchiveSession, error)
	FindAll(db *gorm.DB) ([]entity.ArchiveSession, error)
}

type ArchiveRecordRepository interface {
	Create(db *gorm.DB, record *entity.ArchiveRecord) error
	FindBySessionID(db *gorm.DB, sessionID uuid.UUID) ([]entity.ArchiveRecord, error)
}
