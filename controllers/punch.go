package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/crewplan/crewplan-api/db"
	"github.com/crewplan/crewplan-api/models"
	"github.com/crewplan/crewplan-api/planner"
	"github.com/crewplan/crewplan-api/utils"
)

// PunchIn godoc
// @Summary Punch in the current employee
// @Tags punch
// @Produce json
// @Success 201 {object} models.EmployeePunch
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/punch/in [post]
func PunchIn(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	orgID := c.Locals("orgID").(uint)

	nowT := time.Now()
	date := nowT.Format(planner.DateLayout)
	punchInTime := nowT.Format(planner.TimeLayout)

	var open models.EmployeePunch
	if db.DB.Where("employee_id = ? AND date = ? AND punch_out_time = ?",
		userID, date, utils.OpenPunchSentinel).First(&open).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "You are already punched in for today",
			Error:   "open punch exists",
		})
	}

	// Attach today's shift when one exists so worked time can be compared
	// to scheduled time later.
	var shiftID *uint
	var shift models.Shift
	if db.DB.Where("employee_id = ? AND date = ?", userID, date).
		First(&shift).RowsAffected > 0 {
		shiftID = &shift.ID
	}

	punch := models.EmployeePunch{
		EmployeeID:     userID,
		OrganizationID: orgID,
		Date:           date,
		PunchInTime:    punchInTime,
		PunchOutTime:   utils.OpenPunchSentinel,
		ShiftID:        shiftID,
		Remarks:        "Punched in",
	}
	if err := db.DB.Create(&punch).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to punch in",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(punch)
}

// PunchOut godoc
// @Summary Punch out the current employee
// @Tags punch
// @Produce json
// @Success 200 {object} models.EmployeePunch
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/punch/out [post]
func PunchOut(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	nowT := time.Now()
	date := nowT.Format(planner.DateLayout)
	punchOutTime := utils.NormalizePunchOut(nowT.Format(planner.TimeLayout))

	var punch models.EmployeePunch
	if db.DB.Where("employee_id = ? AND date = ? AND punch_out_time = ?",
		userID, date, utils.OpenPunchSentinel).First(&punch).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "You are not punched in today",
			Error:   "no open punch",
		})
	}

	worked, err := utils.PunchHours(punch.PunchInTime, punchOutTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid punch times",
			Error:   err.Error(),
		})
	}
	_, overtime := utils.OvertimeFor(worked)

	punch.PunchOutTime = punchOutTime
	punch.OvertimeHours = overtime
	punch.Remarks = "Punched out"
	if err := db.DB.Save(&punch).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to punch out",
			Error:   err.Error(),
		})
	}
	return c.JSON(punch)
}

// ListPunches godoc
// @Summary List punches for an employee over a date range
// @Tags punch
// @Produce json
// @Success 200 {array} models.EmployeePunch
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/punch/list [get]
func ListPunches(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)
	userID := c.Locals("userID").(uint)
	isOwner := c.Locals("isOwner").(bool)

	employeeID := uint(c.QueryInt("employee_id", 0))
	if employeeID == 0 || !isOwner {
		// Employees can only see their own punches.
		employeeID = userID
	}

	query := db.DB.Where("organization_id = ? AND employee_id = ?", orgID, employeeID)
	if c.Query("from") != "" {
		query = query.Where("date >= ?", c.Query("from"))
	}
	if c.Query("to") != "" {
		query = query.Where("date <= ?", c.Query("to"))
	}

	var punches []models.EmployeePunch
	if err := query.Order("date desc, punch_in_time desc").Find(&punches).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch punches",
			Error:   err.Error(),
		})
	}
	return c.JSON(punches)
}
