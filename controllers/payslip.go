package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crewplan/crewplan-api/db"
	"github.com/crewplan/crewplan-api/models"
	"github.com/crewplan/crewplan-api/utils"
)

// GeneratePayslips godoc
// @Summary Generate payslips for every active employee over a period
// @Description Sums closed punches in the period; an existing payslip
// @Description for the same employee and period is replaced
// @Tags payslip
// @Accept json
// @Produce json
// @Success 201 {array} models.Payslip
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/payslip/generate [post]
func GeneratePayslips(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	type GenerateInput struct {
		PeriodStart string  `json:"period_start"`
		PeriodEnd   string  `json:"period_end"`
		Deductions  float64 `json:"deductions"`
	}
	input := new(GenerateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.PeriodStart == "" || input.PeriodEnd == "" || input.PeriodEnd < input.PeriodStart {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid pay period",
			Error:   "period_start and period_end are required, end must not precede start",
		})
	}

	var employees []models.Employee
	if err := db.DB.Where("organization_id = ? AND is_active = true", orgID).
		Find(&employees).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch employees",
			Error:   err.Error(),
		})
	}

	payslips := make([]models.Payslip, 0, len(employees))
	for _, emp := range employees {
		var punches []models.EmployeePunch
		if err := db.DB.Where(
			"employee_id = ? AND organization_id = ? AND date >= ? AND date <= ? AND punch_out_time <> ?",
			emp.ID, orgID, input.PeriodStart, input.PeriodEnd, utils.OpenPunchSentinel).
			Find(&punches).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch punches",
				Error:   err.Error(),
			})
		}
		if len(punches) == 0 {
			continue
		}

		var totalHours, overtimeHours float64
		for _, p := range punches {
			worked, err := utils.PunchHours(p.PunchInTime, p.PunchOutTime)
			if err != nil {
				continue
			}
			totalHours += worked
			overtimeHours += p.OvertimeHours
		}

		slip := utils.ComputePayslip(emp, input.PeriodStart, input.PeriodEnd,
			totalHours, overtimeHours, input.Deductions)

		// Regenerating a period replaces the previous slip.
		db.DB.Where("employee_id = ? AND period_start = ? AND period_end = ?",
			emp.ID, input.PeriodStart, input.PeriodEnd).
			Delete(&models.Payslip{})
		if err := db.DB.Create(&slip).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to save payslip",
				Error:   err.Error(),
			})
		}
		payslips = append(payslips, slip)
	}

	return c.Status(fiber.StatusCreated).JSON(payslips)
}

// ListPayslips godoc
// @Summary List payslips
// @Description Owners see the whole organization, employees their own
// @Tags payslip
// @Produce json
// @Success 200 {array} models.Payslip
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/payslip/list [get]
func ListPayslips(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)
	userID := c.Locals("userID").(uint)
	isOwner := c.Locals("isOwner").(bool)

	query := db.DB.Where("organization_id = ?", orgID)
	if isOwner {
		if employeeID := c.QueryInt("employee_id", 0); employeeID != 0 {
			query = query.Where("employee_id = ?", employeeID)
		}
	} else {
		query = query.Where("employee_id = ?", userID)
	}

	var payslips []models.Payslip
	if err := query.Order("period_start desc").Find(&payslips).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch payslips",
			Error:   err.Error(),
		})
	}
	return c.JSON(payslips)
}
