package converter

import (
	"bytes"
	"strings"
	"testing"

	"record-registry/internal/domain/entity"
	"record-registry/pkg/prompt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordToArchiveFlattensIncome(t *testing.T) {
	rec := entity.NewIncomeTransaction()
	in := prompt.NewReader(strings.NewReader("1\n2024-01-01\nSalary\n1000.0\n"), new(bytes.Buffer))
	rec.Populate(in)

	sessionID := uuid.New()
	row := RecordToArchive(sessionID, 3, rec)

	require.NotNil(t, row)
	assert.Equal(t, sessionID, row.SessionID)
	assert.Equal(t, 3, row.Position)
	assert.Equal(t, "income", row.Kind)
	assert.Equal(t, "2024-01-01", row.Payload["date"])
	assert.Equal(t, "Salary", row.Payload["source"])
	assert.Equal(t, "1000.0", row.Payload["amount"])
}

func TestRecordToArchiveKeepsVariantKinds(t *testing.T) {
	entity.ResetSequencesForTest()
	sessionID := uuid.New()

	doctor := RecordToArchive(sessionID, 0, entity.NewDoctor())
	patient := RecordToArchive(sessionID, 1, entity.NewPatient())
	expense := RecordToArchive(sessionID, 2, entity.NewExpenseTransaction())

	assert.Equal(t, "doctor", doctor.Kind)
	assert.Equal(t, "patient", patient.Kind)
	assert.Equal(t, "expense", expense.Kind)
	assert.Equal(t, float64(1), doctor.Payload["seq"])
}

func TestArchiveSessionToResponse(t *testing.T) {
	session := &entity.ArchiveSession{
		ID:          uuid.New(),
		RecordCount: 2,
	}

	resp := ArchiveSessionToResponse(session)

	assert.Equal(t, session.ID.String(), resp.ID)
	assert.Equal(t, 2, resp.RecordCount)
}
