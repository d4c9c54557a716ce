package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFullTimeSalaryIsMonthly(t *testing.T) {
	e := &FullTimeEmployee{Name: "Kamal", Monthly: decimal.NewFromInt(60000)}

	assert.True(t, e.Salary().Equal(decimal.NewFromInt(60000)))
}

func TestPartTimeSalaryAssumesFourWeeks(t *testing.T) {
	e := &PartTimeEmployee{Name: "Piyal", HourlyRate: decimal.NewFromInt(2000), HoursPerWeek: 20}

	// 2000 * 20 * 4
	assert.True(t, e.Salary().Equal(decimal.NewFromInt(160000)))
}

func TestContractSalaryIsFixedPayment(t *testing.T) {
	e := &ContractEmployee{Name: "Damith", Payment: decimal.NewFromInt(30000)}

	assert.True(t, e.Salary().Equal(decimal.NewFromInt(30000)))
}
