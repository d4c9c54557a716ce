package repository

import "record-registry/internal/domain/entity"

// Registry is an insertion-ordered, append-only collection of records. The
// registry owns its entries exclusively; entries are never reordered or
// removed individually.
type Registry interface {
	Append(rec entity.Record)
	All() []entity.Record
	Len() int
	Clear()
}
