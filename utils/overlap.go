package utils

import (
	"github.com/crewplan/crewplan-api/db"
	"github.com/crewplan/crewplan-api/models"
)

// TimesOverlap reports whether two HH:MM windows on the same date
// intersect. HH:MM strings compare correctly as plain strings.
func TimesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	if bStart <= aStart && aStart < bEnd {
		return true
	}
	if bStart < aEnd && aEnd <= bEnd {
		return true
	}
	return aStart <= bStart && aEnd >= bEnd
}

// HasOverlappingShift checks whether the employee already has a shift on
// the given date that intersects the start..end window. excludeID skips
// the shift being edited.
func HasOverlappingShift(employeeID uint, organizationID uint, date, start, end string, excludeID uint) (bool, error) {
	query := db.DB.Model(&models.Shift{}).
		Where("employee_id = ? AND date = ? AND organization_id = ?", employeeID, date, organizationID).
		Where(`(shift_start <= ? AND ? < shift_end) OR
		       (shift_start < ? AND ? <= shift_end) OR
		       (? <= shift_start AND ? >= shift_end)`,
			start, start, end, end, start, end)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
