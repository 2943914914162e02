package utils

import (
	"fmt"
	"time"

	"github.com/crewplan/crewplan-api/models"
	"github.com/crewplan/crewplan-api/planner"
)

const (
	// DailyOvertimeThreshold is the worked-hours mark past which a single
	// punch accrues overtime.
	DailyOvertimeThreshold = 8.0
	// OvertimeMultiplier is applied to the base rate for overtime hours.
	OvertimeMultiplier = 1.5
	// OpenPunchSentinel marks a punch that has not been closed yet.
	OpenPunchSentinel = "00:00"
)

// NormalizePunchOut keeps a real midnight punch-out distinct from the
// open-punch sentinel by clamping it to the last minute of the day.
func NormalizePunchOut(out string) string {
	if out == OpenPunchSentinel {
		return "23:59"
	}
	return out
}

// PunchHours converts a punch-in/punch-out HH:MM pair to worked hours.
// A punch-out earlier than the punch-in is rejected rather than wrapped
// past midnight.
func PunchHours(in, out string) (float64, error) {
	start, err := time.Parse(planner.TimeLayout, in)
	if err != nil {
		return 0, fmt.Errorf("invalid punch-in time %q: %w", in, err)
	}
	end, err := time.Parse(planner.TimeLayout, out)
	if err != nil {
		return 0, fmt.Errorf("invalid punch-out time %q: %w", out, err)
	}
	if end.Before(start) {
		return 0, fmt.Errorf("punch-out %s is before punch-in %s", out, in)
	}
	return end.Sub(start).Hours(), nil
}

// OvertimeFor splits worked hours into (regular, overtime) against the
// daily threshold.
func OvertimeFor(worked float64) (float64, float64) {
	if worked <= DailyOvertimeThreshold {
		return worked, 0
	}
	return DailyOvertimeThreshold, worked - DailyOvertimeThreshold
}

// ComputePayslip builds the pay breakdown for one employee over a
// period. All employees are paid on their hourly rate for the purposes
// of this calculation; monthly employees carry a derived hourly rate.
func ComputePayslip(emp models.Employee, periodStart, periodEnd string, totalHours, overtimeHours, deductions float64) models.Payslip {
	regular := totalHours - overtimeHours
	if regular < 0 {
		regular = 0
	}
	base := regular * emp.PayRate
	overtimePay := overtimeHours * emp.PayRate * OvertimeMultiplier

	return models.Payslip{
		EmployeeID:     emp.ID,
		OrganizationID: emp.OrganizationID,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		TotalHours:     totalHours,
		OvertimeHours:  overtimeHours,
		BaseSalary:     base,
		OvertimePay:    overtimePay,
		Deductions:     deductions,
		NetPay:         base + overtimePay - deductions,
	}
}
