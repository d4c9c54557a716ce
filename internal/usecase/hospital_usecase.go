package usecase

import (
	"io"

	"record-registry/internal/domain/entity"
	"record-registry/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// HospitalUsecase drives the fixed-count intake flow: records are admitted one
// at a time and the roster is displayed once at the end in admission order.
type HospitalUsecase interface {
	Admit(rec entity.Record)
	RosterSize() int
	DisplayRoster(w io.Writer)
}

type hospitalUsecase struct {
	log    *logrus.Logger
	roster repository.Registry
}

func NewHospitalUsecase(log *logrus.Logger, roster repository.Registry) HospitalUsecase {
	return &hospitalUsecase{
		log:    log,
		roster: roster,
	}
}

func (u *hospitalUsecase) Admit(rec entity.Record) {
	u.roster.Append(rec)
}

func (u *hospitalUsecase) RosterSize() int {
	return u.roster.Len()
}

func (u *hospitalUsecase) DisplayRoster(w io.Writer) {
	for _, rec := range u.roster.All() {
		rec.Present(w)
	}
}
