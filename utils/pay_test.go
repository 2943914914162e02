package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewplan/crewplan-api/models"
)

func TestPunchHours(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		out     string
		hours   float64
		wantErr bool
	}{
		{"full day", "09:00", "17:00", 8, false},
		{"half hour", "09:00", "09:30", 0.5, false},
		{"zero length", "09:00", "09:00", 0, false},
		{"out before in", "17:00", "09:00", 0, true},
		{"bad punch-in", "9am", "17:00", 0, true},
		{"bad punch-out", "09:00", "later", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, err := PunchHours(tt.in, tt.out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.hours, hours, 1e-9)
		})
	}
}

func TestNormalizePunchOut(t *testing.T) {
	assert.Equal(t, "23:59", NormalizePunchOut("00:00"))
	assert.Equal(t, "17:00", NormalizePunchOut("17:00"))
	assert.Equal(t, "23:59", NormalizePunchOut("23:59"))

	// A closed punch must never read as still open.
	assert.NotEqual(t, OpenPunchSentinel, NormalizePunchOut(OpenPunchSentinel))
}

func TestOvertimeFor(t *testing.T) {
	regular, overtime := OvertimeFor(6)
	assert.Equal(t, 6.0, regular)
	assert.Equal(t, 0.0, overtime)

	regular, overtime = OvertimeFor(8)
	assert.Equal(t, 8.0, regular)
	assert.Equal(t, 0.0, overtime)

	regular, overtime = OvertimeFor(10.5)
	assert.Equal(t, 8.0, regular)
	assert.InDelta(t, 2.5, overtime, 1e-9)
}

func TestComputePayslip(t *testing.T) {
	emp := models.Employee{
		ID:             4,
		OrganizationID: 2,
		PayRate:        20,
	}

	slip := ComputePayslip(emp, "2024-06-01", "2024-06-15", 45, 5, 30)

	assert.Equal(t, uint(4), slip.EmployeeID)
	assert.Equal(t, uint(2), slip.OrganizationID)
	assert.Equal(t, "2024-06-01", slip.PeriodStart)
	assert.Equal(t, "2024-06-15", slip.PeriodEnd)
	assert.InDelta(t, 800, slip.BaseSalary, 1e-9)  // 40 regular hours at 20
	assert.InDelta(t, 150, slip.OvertimePay, 1e-9) // 5 overtime hours at 30
	assert.InDelta(t, 920, slip.NetPay, 1e-9)      // 800 + 150 - 30
}

func TestComputePayslipNoHours(t *testing.T) {
	emp := models.Employee{PayRate: 25}
	slip := ComputePayslip(emp, "2024-06-01", "2024-06-15", 0, 0, 0)
	assert.Zero(t, slip.BaseSalary)
	assert.Zero(t, slip.OvertimePay)
	assert.Zero(t, slip.NetPay)
}
