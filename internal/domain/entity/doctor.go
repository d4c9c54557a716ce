package entity

import (
	"fmt"
	"io"

	"record-registry/pkg/prompt"
)

// Doctor is a hospital record carrying a specialist id and a process-wide
// sequential doctor number assigned at construction.
type Doctor struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	SpecialistID int    `json:"specialist_id"`
	Seq          int64  `json:"seq"`
}

// NewDoctor assigns the next doctor sequence number.
func NewDoctor() *Doctor {
	return &Doctor{Seq: nextDoctorSeq()}
}

func (d *Doctor) Kind() Kind {
	return KindDoctor
}

func (d *Doctor) Populate(in *prompt.Reader) {
	d.Name = in.Token("Enter Doctor Name: ")
	d.Age = in.Int("Enter Age: ")
	d.SpecialistID = in.Int("Enter Specialist ID: ")
}

func (d *Doctor) Present(w io.Writer) {
	fmt.Fprintf(w, "Doctor -> Name: %s, Age: %d, Specialist ID: %d, Doctor ID: %d\n",
		d.Name, d.Age, d.SpecialistID, d.Seq)
}
