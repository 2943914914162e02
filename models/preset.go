package models

import (
	"gorm.io/gorm"
)

// ShiftPresetGroup is a named weekly template tied to a work site. Its
// presets are bulk-applied to a concrete week to create real shifts.
type ShiftPresetGroup struct {
	gorm.Model
	Title          string        `json:"title"`
	WorksiteID     uint          `json:"worksite_id"`
	OrganizationID uint          `json:"organization_id"`
	Presets        []ShiftPreset `json:"presets,omitempty" gorm:"foreignKey:PresetGroupID"`
}

// ShiftPreset is one recurring slot in a weekly template. DayOfWeek is
// 1..7 with 1 = Sunday, matching the planner's Sunday-anchored week.
type ShiftPreset struct {
	gorm.Model
	EmployeeID     uint   `json:"employee_id"`
	PresetGroupID  uint   `json:"preset_group_id"`
	Title          string `json:"title"`
	OrganizationID uint   `json:"organization_id"`
	DayOfWeek      int    `json:"day_of_week" gorm:"check:day_of_week BETWEEN 1 AND 7"`
	ShiftStart     string `json:"shift_start" gorm:"size:5;not null"`
	ShiftEnd       string `json:"shift_end" gorm:"size:5;not null"`
	Remarks        string `json:"remarks"`
}
