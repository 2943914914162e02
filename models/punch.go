package models

import (
	"gorm.io/gorm"
)

// EmployeePunch is one punch-in/punch-out pair for a day. PunchOutTime
// holds "00:00" while the employee is still clocked in.
type EmployeePunch struct {
	gorm.Model
	EmployeeID     uint    `json:"employee_id" gorm:"not null"`
	OrganizationID uint    `json:"organization_id" gorm:"not null"`
	Date           string  `json:"date" gorm:"size:10;not null"`
	PunchInTime    string  `json:"punch_in_time" gorm:"size:5;not null"`
	PunchOutTime   string  `json:"punch_out_time" gorm:"size:5"`
	OvertimeHours  float64 `json:"overtime_hours" gorm:"default:0"`
	ShiftID        *uint   `json:"shift_id"`
	Remarks        string  `json:"remarks"`
}
