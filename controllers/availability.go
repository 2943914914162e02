package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"

	"github.com/crewplan/crewplan-api/db"
	"github.com/crewplan/crewplan-api/models"
	"github.com/crewplan/crewplan-api/utils"
)

// GetAvailability godoc
// @Summary Get an employee's weekly availability
// @Tags availability
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Availability
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/availability/{id} [get]
func GetAvailability(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	var employee models.Employee
	if err := db.DB.Where("id = ? AND organization_id = ?", c.Params("id"), orgID).
		First(&employee).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}

	var availability models.Availability
	if err := db.DB.Where("employee_id = ?", employee.ID).
		First(&availability).Error; err != nil {
		// No record yet means every day is unavailable.
		availability = models.Availability{EmployeeID: employee.ID}
	}
	return c.JSON(availability)
}

// SetAvailability godoc
// @Summary Replace an employee's weekly availability
// @Tags availability
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Availability
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/availability/{id} [put]
func SetAvailability(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)
	userID := c.Locals("userID").(uint)
	isOwner := c.Locals("isOwner").(bool)

	var employee models.Employee
	if err := db.DB.Where("id = ? AND organization_id = ?", c.Params("id"), orgID).
		First(&employee).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}
	if !isOwner && employee.ID != userID {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You can only edit your own availability",
			Error:   "forbidden",
		})
	}

	input := new(models.Availability)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	for day := 1; day <= 7; day++ {
		window := input.ForWeekday(day)
		if window.Available && (window.Start == "" || window.End == "" || window.End <= window.Start) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid availability window",
				Error:   "available days need a start and an end, end after start",
			})
		}
	}

	input.ID = 0
	input.EmployeeID = employee.ID
	if err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}},
		UpdateAll: true,
	}).Create(input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(input)
}
