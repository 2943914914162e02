package models

import (
	"gorm.io/gorm"
)

type Payslip struct {
	gorm.Model
	EmployeeID     uint    `json:"employee_id" gorm:"not null"`
	OrganizationID uint    `json:"organization_id" gorm:"not null"`
	PeriodStart    string  `json:"period_start" gorm:"size:10;not null"`
	PeriodEnd      string  `json:"period_end" gorm:"size:10;not null"`
	TotalHours     float64 `json:"total_hours" gorm:"default:0"`
	OvertimeHours  float64 `json:"overtime_hours" gorm:"default:0"`
	BaseSalary     float64 `json:"base_salary" gorm:"default:0"`
	OvertimePay    float64 `json:"overtime_pay" gorm:"default:0"`
	Deductions     float64 `json:"deductions" gorm:"default:0"`
	NetPay         float64 `json:"net_pay" gorm:"default:0"`
	Remarks        string  `json:"remarks"`
}
