package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorSequenceStrictlyIncreasing(t *testing.T) {
	ResetSequencesForTest()

	for i := 1; i <= 5; i++ {
		d := NewDoctor()
		assert.Equal(t, int64(i), d.Seq)
	}
}

func TestDoctorAndPatientCountersIndependent(t *testing.T) {
	ResetSequencesForTest()

	d1 := NewDoctor()
	p1 := NewPatient()
	d2 := NewDoctor()
	p2 := NewPatient()
	p3 := NewPatient()

	assert.Equal(t, int64(1), d1.Seq)
	assert.Equal(t, int64(2), d2.Seq)
	assert.Equal(t, int64(1), p1.Seq)
	assert.Equal(t, int64(2), p2.Seq)
	assert.Equal(t, int64(3), p3.Seq)
}

func TestSequenceNeverReusedAfterDiscard(t *testing.T) {
	ResetSequencesForTest()

	_ = NewDoctor() // discarded
	d := NewDoctor()

	assert.Equal(t, int64(2), d.Seq)
}
