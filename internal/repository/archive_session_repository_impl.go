package repository

import (
	"errors"

	"record-registry/internal/domain/entity"
	domainRepo "record-registry/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type archiveSessionRepository struct{}

func NewArchiveSessionRepository() domainRepo.ArchiveSessionRepository {
	return &archiveSessionRepository{}
}

func (r *archiveSessionRepository) Create(db *gorm.DB, session *entity.ArchiveSession) error {
	return db.Create(session).Error
}

func (r *archiveSessionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ArchiveSession, error) {
	var session entity.ArchiveSession
	err := db.Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *archiveSessionRepository) FindAll(db *gorm.DB) ([]entity.ArchiveSession, error) {
	var sessions []entity.ArchiveSession
	err := db.Order("closed_at DESC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
