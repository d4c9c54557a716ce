package console

import (
	"context"
	"fmt"
	"io"

	"record-registry/internal/delivery/dto"
	"record-registry/internal/domain/entity"
	"record-registry/internal/usecase"
	"record-registry/pkg/prompt"
	"record-registry/pkg/validator"

	"github.com/sirupsen/logrus"
)

// HospitalConsole runs the fixed-count intake flow: read the record count up
// front, admit that many doctor or patient records, then display the roster.
type HospitalConsole struct {
	log       *logrus.Logger
	validator *validator.CustomValidator
	newIntake func(capacity int) usecase.HospitalUsecase
}

func NewHospitalConsole(
	log *logrus.Logger,
	v *validator.CustomValidator,
	newIntake func(capacity int) usecase.HospitalUsecase,
) *HospitalConsole {
	return &HospitalConsole{
		log:       log,
		validator: v,
		newIntake: newIntake,
	}
}

func (h *HospitalConsole) Run(ctx context.Context, in *prompt.Reader, out io.Writer) {
	var count int
	for {
		count = in.Int("Enter number of records: ")
		if in.EOF() && count == 0 {
			return
		}
		if err := h.validator.Validate(&dto.IntakeRequest{Count: count}); err != nil {
			fmt.Fprint(out, "Invalid count! Enter a number of at least 1.\n")
			continue
		}
		break
	}

	uc := h.newIntake(count)

	for i := 0; i < count; i++ {
		var rec entity.Record
		for rec == nil {
			choice := in.Int("\nEnter 1 for Doctor, 2 for Patient: ")
			if in.EOF() && choice == 0 {
				return
			}
			switch choice {
			case 1:
				rec = entity.NewDoctor()
			case 2:
				rec = entity.NewPatient()
			default:
				fmt.Fprint(out, "Invalid choice! Enter 1 or 2.\n")
			}
		}
		rec.Populate(in)
		uc.Admit(rec)
	}

	fmt.Fprint(out, "\n--- Records ---\n")
	uc.DisplayRoster(out)
}
