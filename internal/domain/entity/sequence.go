package entity

import "sync/atomic"

// Per-variant construction counters. Each starts at zero and is bumped once
// per construction for the lifetime of the process; numbers are never reused,
// even when a record is discarded.
var (
	doctorSeq  int64
	patientSeq int64
)

func nextDoctorSeq() int64 {
	return atomic.AddInt64(&doctorSeq, 1)
}

func nextPatientSeq() int64 {
	return atomic.AddInt64(&patientSeq, 1)
}

// ResetSequencesForTest rewinds both counters to zero. Only tests may call
// this; production code never resets a sequence.
func ResetSequencesForTest() {
	atomic.StoreInt64(&doctorSeq, 0)
	atomic.StoreInt64(&patientSeq, 0)
}
