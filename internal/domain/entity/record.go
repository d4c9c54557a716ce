package entity

import (
	"io"

	"record-registry/pkg/prompt"
)

// Kind identifies a concrete record variant.
type Kind string

const (
	KindDoctor  Kind = "doctor"
	KindPatient Kind = "patient"
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Record is the capability shared by every registry entry: a record is filled
// in interactively, field by field in a fixed order, and rendered later as a
// labeled human-readable block. Neither operation mutates fields outside of
// Populate.
type Record interface {
	// Populate reads all fields from the prompt reader in the variant's fixed
	// order. A field whose token fails to parse keeps its zero value.
	Populate(in *prompt.Reader)

	// Present writes a deterministic rendering of all fields, prefixed with
	// the variant label.
	Present(w io.Writer)

	// Kind returns the variant label.
	Kind() Kind
}
