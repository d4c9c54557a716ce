package repository

import (
	"record-registry/internal/domain/entity"
	domainRepo "record-registry/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type archiveRecordRepository struct{}

func NewArchiveRecordRepository() domainRepo.ArchiveRecordRepository {
	return &archiveRecordRepository{}
}

func (r *archiveRecordRepository) Create(db *gorm.DB, record *entity.ArchiveRecord) error {
	return db.Create(record).Error
}

func (r *archiveRecordRepository) FindBySessionID(db *gorm.DB, sessionID uuid.UUID) ([]entity.ArchiveRecord, error) {
	var records []entity.ArchiveRecord
	err := db.Where("session_id = ?", sessionID).Order("position ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
