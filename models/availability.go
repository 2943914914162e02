package models

import (
	"gorm.io/gorm"
)

// DayAvailability is one weekday's window in an employee's standing
// availability.
type DayAvailability struct {
	Available bool   `json:"available"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
}

// Availability is an employee's recurring weekly availability, consulted
// when filling call-ins and building preset weeks.
type Availability struct {
	gorm.Model
	EmployeeID uint `json:"employee_id" gorm:"uniqueIndex;not null"`

	MondayAvailable    bool   `json:"monday_available" gorm:"default:false"`
	MondayStart        string `json:"monday_start" gorm:"size:5"`
	MondayEnd          string `json:"monday_end" gorm:"size:5"`
	TuesdayAvailable   bool   `json:"tuesday_available" gorm:"default:false"`
	TuesdayStart       string `json:"tuesday_start" gorm:"size:5"`
	TuesdayEnd         string `json:"tuesday_end" gorm:"size:5"`
	WednesdayAvailable bool   `json:"wednesday_available" gorm:"default:false"`
	WednesdayStart     string `json:"wednesday_start" gorm:"size:5"`
	WednesdayEnd       string `json:"wednesday_end" gorm:"size:5"`
	ThursdayAvailable  bool   `json:"thursday_available" gorm:"default:false"`
	ThursdayStart      string `json:"thursday_start" gorm:"size:5"`
	ThursdayEnd        string `json:"thursday_end" gorm:"size:5"`
	FridayAvailable    bool   `json:"friday_available" gorm:"default:false"`
	FridayStart        string `json:"friday_start" gorm:"size:5"`
	FridayEnd          string `json:"friday_end" gorm:"size:5"`
	SaturdayAvailable  bool   `json:"saturday_available" gorm:"default:false"`
	SaturdayStart      string `json:"saturday_start" gorm:"size:5"`
	SaturdayEnd        string `json:"saturday_end" gorm:"size:5"`
	SundayAvailable    bool   `json:"sunday_available" gorm:"default:false"`
	SundayStart        string `json:"sunday_start" gorm:"size:5"`
	SundayEnd          string `json:"sunday_end" gorm:"size:5"`

	Notes string `json:"notes" gorm:"size:500"`
}

// ForWeekday returns the window for a 1..7 Monday-based weekday.
func (a *Availability) ForWeekday(day int) DayAvailability {
	switch day {
	case 1:
		return DayAvailability{a.MondayAvailable, a.MondayStart, a.MondayEnd}
	case 2:
		return DayAvailability{a.TuesdayAvailable, a.TuesdayStart, a.TuesdayEnd}
	case 3:
		return DayAvailability{a.WednesdayAvailable, a.WednesdayStart, a.WednesdayEnd}
	case 4:
		return DayAvailability{a.ThursdayAvailable, a.ThursdayStart, a.ThursdayEnd}
	case 5:
		return DayAvailability{a.FridayAvailable, a.FridayStart, a.FridayEnd}
	case 6:
		return DayAvailability{a.SaturdayAvailable, a.SaturdayStart, a.SaturdayEnd}
	case 7:
		return DayAvailability{a.SundayAvailable, a.SundayStart, a.SundayEnd}
	}
	return DayAvailability{}
}
