package models

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/crewplan/crewplan-api/planner"
)

// Shift is one scheduled work period for one employee at one work site.
// Date is YYYY-MM-DD, ShiftStart/ShiftEnd are HH:MM; the planner core
// resolves them to absolute instants.
type Shift struct {
	gorm.Model
	Title          string   `json:"title"`
	EmployeeID     uint     `json:"employee_id"`
	Employee       Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	OrganizationID uint     `json:"organization_id"`
	WorksiteID     uint     `json:"worksite_id"`
	WorksiteName   string   `json:"worksite_name,omitempty" gorm:"-"`
	Date           string   `json:"date" gorm:"size:10;not null"`
	ShiftStart     string   `json:"shift_start" gorm:"size:5;not null"`
	ShiftEnd       string   `json:"shift_end" gorm:"size:5;not null"`
	Remarks        string   `json:"remarks"`
	SortOrder      int      `json:"sort_order"`
	CalledIn       bool     `json:"called_in" gorm:"default:false"`
	CallInReason   string   `json:"call_in_reason"`
}

// Placement is the shift's calendar coordinates in the planner's wire
// format.
func (s *Shift) Placement() planner.ShiftPlacement {
	return planner.ShiftPlacement{Date: s.Date, Start: s.ShiftStart, End: s.ShiftEnd}
}

// Validate parses the date/time fields and rejects a shift whose end
// does not come after its start.
func (s *Shift) Validate() error {
	st, err := planner.ParseShiftTimes(s.Date, s.ShiftStart, s.ShiftEnd)
	if err != nil {
		return err
	}
	if !st.End.After(st.Start) {
		return fmt.Errorf("shift end %s must be after start %s", s.ShiftEnd, s.ShiftStart)
	}
	return nil
}

func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	return s.Validate()
}
