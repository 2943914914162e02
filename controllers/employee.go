package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/crewplan/crewplan-api/db"
	"github.com/crewplan/crewplan-api/models"
	"github.com/crewplan/crewplan-api/utils"
)

// ListEmployees godoc
// @Summary List employees in the organization
// @Tags employee
// @Produce json
// @Success 200 {array} models.Employee
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/employee/list [get]
func ListEmployees(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	var employees []models.Employee
	query := db.DB.Where("organization_id = ?", orgID)
	if c.Query("active_only") == "true" {
		query = query.Where("is_active = true")
	}
	if err := query.Order("full_name asc").Find(&employees).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch employees",
			Error:   err.Error(),
		})
	}
	for i := range employees {
		employees[i].Password = ""
	}
	return c.JSON(employees)
}

// GetEmployee godoc
// @Summary Get an employee by ID
// @Tags employee
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/employee/{id} [get]
func GetEmployee(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	var employee models.Employee
	if err := db.DB.Preload("Availability").
		Where("id = ? AND organization_id = ?", c.Params("id"), orgID).
		First(&employee).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}
	employee.Password = ""
	return c.JSON(employee)
}

// CreateEmployee godoc
// @Summary Create an employee account
// @Tags employee
// @Accept json
// @Produce json
// @Success 201 {object} models.Employee
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/employee/create [post]
func CreateEmployee(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	employee := new(models.Employee)
	if err := c.BodyParser(employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if employee.Email == "" || employee.FullName == "" || employee.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
			Error:   "full_name, email and password are required",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(employee.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to hash password",
			Error:   err.Error(),
		})
	}
	employee.Password = string(hashed)
	employee.OrganizationID = orgID
	employee.IsOwner = false
	employee.IsActive = true

	if err := db.DB.Create(employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create employee",
			Error:   err.Error(),
		})
	}
	employee.Password = ""
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// UpdateEmployee godoc
// @Summary Update an employee
// @Tags employee
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/employee/edit/{id} [put]
func UpdateEmployee(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	var employee models.Employee
	if err := db.DB.Where("id = ? AND organization_id = ?", c.Params("id"), orgID).
		First(&employee).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}

	type EmployeeEditInput struct {
		FullName       string         `json:"full_name"`
		PhoneNumber    string         `json:"phone_number"`
		PhoneNumberExt string         `json:"phone_number_ext"`
		Address        string         `json:"address"`
		PayType        models.PayType `json:"pay_type"`
		PayRate        *float64       `json:"payrate"`
		IsActive       *bool          `json:"is_active"`
	}
	input := new(EmployeeEditInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.FullName != "" {
		employee.FullName = input.FullName
	}
	if input.PhoneNumber != "" {
		employee.PhoneNumber = input.PhoneNumber
	}
	if input.PhoneNumberExt != "" {
		employee.PhoneNumberExt = input.PhoneNumberExt
	}
	if input.Address != "" {
		employee.Address = input.Address
	}
	if input.PayType != "" {
		employee.PayType = input.PayType
	}
	if input.PayRate != nil {
		employee.PayRate = *input.PayRate
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	if err := db.DB.Save(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update employee",
			Error:   err.Error(),
		})
	}
	employee.Password = ""
	return c.JSON(employee)
}

// UpdateEmployeeAvatar godoc
// @Summary Upload an employee profile picture
// @Tags employee
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/employee/{id}/avatar [post]
func UpdateEmployeeAvatar(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	var employee models.Employee
	if err := db.DB.Where("id = ? AND organization_id = ?", c.Params("id"), orgID).
		First(&employee).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing avatar file",
			Error:   err.Error(),
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to open avatar file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadAvatar(file, fmt.Sprintf("employee-%d", employee.ID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload avatar",
			Error:   err.Error(),
		})
	}

	employee.AvatarURL = url
	if err := db.DB.Save(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save avatar URL",
			Error:   err.Error(),
		})
	}
	employee.Password = ""
	return c.JSON(employee)
}

// RemoveEmployee godoc
// @Summary Deactivate an employee
// @Description Employees with history are deactivated, not hard-deleted
// @Tags employee
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/employee/delete/{id} [delete]
func RemoveEmployee(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	var employee models.Employee
	if err := db.DB.Where("id = ? AND organization_id = ?", c.Params("id"), orgID).
		First(&employee).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}
	if employee.IsOwner {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "The organization owner cannot be removed",
			Error:   "owner account",
		})
	}

	employee.IsActive = false
	if err := db.DB.Save(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to deactivate employee",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Employee deactivated successfully"})
}
