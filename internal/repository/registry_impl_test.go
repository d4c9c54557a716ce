package repository

import (
	"testing"

	"record-registry/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestRegistryPreservesInsertionOrder(t *testing.T) {
	entity.ResetSequencesForTest()
	reg := NewRegistry()

	first := entity.NewDoctor()
	second := entity.NewPatient()
	third := entity.NewDoctor()

	reg.Append(first)
	reg.Append(second)
	reg.Append(third)

	all := reg.All()
	assert.Len(t, all, 3)
	assert.Same(t, entity.Record(first), all[0])
	assert.Same(t, entity.Record(second), all[1])
	assert.Same(t, entity.Record(third), all[2])
}

func TestRegistryAllReturnsCopy(t *testing.T) {
	entity.ResetSequencesForTest()
	reg := NewRegistry()
	reg.Append(entity.NewDoctor())

	all := reg.All()
	all[0] = nil

	assert.NotNil(t, reg.All()[0])
}

func TestRegistryClearReleasesEntries(t *testing.T) {
	entity.ResetSequencesForTest()
	reg := NewRegistryWithCapacity(2)
	reg.Append(entity.NewDoctor())
	reg.Append(entity.NewPatient())

	assert.Equal(t, 2, reg.Len())

	reg.Clear()

	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.All())
}
