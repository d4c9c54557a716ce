package repository

import (
	"record-registry/internal/domain/entity"
	domainRepo "record-registry/internal/domain/repository"
)

type registry struct {
	records []entity.Record
}

// NewRegistry returns an empty in-memory registry.
func NewRegistry() domainRepo.Registry {
	return &registry{}
}

// NewRegistryWithCapacity returns an empty registry sized for a known number
// of entries, for intake flows that read the count up front.
func NewRegistryWithCapacity(n int) domainRepo.Registry {
	return &registry{records: make([]entity.Record, 0, n)}
}

func (r *registry) Append(rec entity.Record) {
	r.records = append(r.records, rec)
}

func (r *registry) All() []entity.Record {
	out := make([]entity.Record, len(r.records))
	copy(out, r.records)
	return out
}

func (r *registry) Len() int {
	return len(r.records)
}

func (r *registry) Clear() {
	r.records = nil
}
