package entity

import (
	"fmt"
	"io"

	"record-registry/pkg/prompt"
)

// Patient is a hospital record carrying an admission date and a process-wide
// sequential patient number assigned at construction. The patient counter is
// independent of the doctor counter.
type Patient struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	AdmissionDate string `json:"admission_date"`
	Seq           int64  `json:"seq"`
}

// NewPatient assigns the next patient sequence number.
func NewPatient() *Patient {
	return &Patient{Seq: nextPatientSeq()}
}

func (p *Patient) Kind() Kind {
	return KindPatient
}

func (p *Patient) Populate(in *prompt.Reader) {
	p.Name = in.Token("Enter Patient Name: ")
	p.Age = in.Int("Enter Age: ")
	p.AdmissionDate = in.Token("Enter Admission Date: ")
}

func (p *Patient) Present(w io.Writer) {
	fmt.Fprintf(w, "Patient -> Name: %s, Age: %d, Admission Date: %s, Patient ID: %d\n",
		p.Name, p.Age, p.AdmissionDate, p.Seq)
}
