package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"github.com/crewplan/crewplan-api/db"
	"github.com/crewplan/crewplan-api/models"
	"github.com/crewplan/crewplan-api/planner"
	"github.com/crewplan/crewplan-api/utils"
)

// GetSummary godoc
// @Summary Dashboard counts for the organization
// @Description Active employees, active worksites, shifts and call-ins
// @Description in the current Sunday-anchored week, and open punches
// @Tags summary
// @Produce json
// @Success 200 {object} fiber.Map
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/summary [get]
func GetSummary(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	cfg := &now.Config{WeekStartDay: time.Sunday}
	ref := time.Now()
	weekStart := cfg.With(ref).BeginningOfWeek().Format(planner.DateLayout)
	weekEnd := cfg.With(ref).EndOfWeek().Format(planner.DateLayout)

	var employeeCount, worksiteCount, shiftCount, callInCount, openPunchCount int64

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&employeeCount, db.DB.Model(&models.Employee{}).
			Where("organization_id = ? AND is_active = true", orgID)},
		{&worksiteCount, db.DB.Model(&models.WorkSite{}).
			Where("organization_id = ? AND status = ?", orgID, models.WorkSiteActive)},
		{&shiftCount, db.DB.Model(&models.Shift{}).
			Where("organization_id = ? AND date >= ? AND date <= ?", orgID, weekStart, weekEnd)},
		{&callInCount, db.DB.Model(&models.Shift{}).
			Where("organization_id = ? AND date >= ? AND date <= ? AND called_in = true",
				orgID, weekStart, weekEnd)},
		{&openPunchCount, db.DB.Model(&models.EmployeePunch{}).
			Where("organization_id = ? AND punch_out_time = ?", orgID, utils.OpenPunchSentinel)},
	}
	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to build summary",
				Error:   err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"week_start":       weekStart,
		"week_end":         weekEnd,
		"active_employees": employeeCount,
		"active_worksites": worksiteCount,
		"week_shifts":      shiftCount,
		"week_call_ins":    callInCount,
		"open_punches":     openPunchCount,
	})
}
