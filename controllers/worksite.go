package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crewplan/crewplan-api/db"
	"github.com/crewplan/crewplan-api/models"
	"github.com/crewplan/crewplan-api/utils"
)

// ListWorkSites godoc
// @Summary List worksites in the organization
// @Tags worksite
// @Produce json
// @Success 200 {array} models.WorkSite
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/worksite/list [get]
func ListWorkSites(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	var sites []models.WorkSite
	query := db.DB.Where("organization_id = ?", orgID)
	if c.Query("status") != "" {
		query = query.Where("status = ?", c.Query("status"))
	}
	if err := query.Order("name asc").Find(&sites).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch worksites",
			Error:   err.Error(),
		})
	}
	return c.JSON(sites)
}

// GetWorkSite godoc
// @Summary Get a worksite by ID
// @Tags worksite
// @Produce json
// @Param id path int true "WorkSite ID"
// @Success 200 {object} models.WorkSite
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/worksite/{id} [get]
func GetWorkSite(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	var site models.WorkSite
	if err := db.DB.Where("id = ? AND organization_id = ?", c.Params("id"), orgID).
		First(&site).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Worksite not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(site)
}

// CreateWorkSite godoc
// @Summary Create a worksite
// @Tags worksite
// @Accept json
// @Produce json
// @Success 201 {object} models.WorkSite
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/worksite/create [post]
func CreateWorkSite(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	site := new(models.WorkSite)
	if err := c.BodyParser(site); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if site.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
			Error:   "name is required",
		})
	}
	site.OrganizationID = orgID

	if err := db.DB.Create(site).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create worksite",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(site)
}

// UpdateWorkSite godoc
// @Summary Update a worksite
// @Tags worksite
// @Accept json
// @Produce json
// @Param id path int true "WorkSite ID"
// @Success 200 {object} models.WorkSite
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/worksite/edit/{id} [put]
func UpdateWorkSite(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	var site models.WorkSite
	if err := db.DB.Where("id = ? AND organization_id = ?", c.Params("id"), orgID).
		First(&site).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Worksite not found",
			Error:   err.Error(),
		})
	}

	input := new(models.WorkSite)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Name != "" {
		site.Name = input.Name
	}
	if input.Address != "" {
		site.Address = input.Address
	}
	if input.City != "" {
		site.City = input.City
	}
	if input.State != "" {
		site.State = input.State
	}
	if input.ZipCode != "" {
		site.ZipCode = input.ZipCode
	}
	if input.ContactPerson != "" {
		site.ContactPerson = input.ContactPerson
	}
	if input.ContactPhone != "" {
		site.ContactPhone = input.ContactPhone
	}
	if input.Status != "" {
		site.Status = input.Status
	}

	if err := db.DB.Save(&site).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update worksite",
			Error:   err.Error(),
		})
	}
	return c.JSON(site)
}

// DeleteWorkSite godoc
// @Summary Delete a worksite
// @Tags worksite
// @Produce json
// @Param id path int true "WorkSite ID"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/worksite/delete/{id} [delete]
func DeleteWorkSite(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)
	id := c.Params("id")

	// A worksite with scheduled shifts is deactivated instead of removed
	// so existing schedules keep their labels.
	var shiftCount int64
	db.DB.Model(&models.Shift{}).Where("worksite_id = ? AND organization_id = ?", id, orgID).Count(&shiftCount)
	if shiftCount > 0 {
		if err := db.DB.Model(&models.WorkSite{}).
			Where("id = ? AND organization_id = ?", id, orgID).
			Update("status", models.WorkSiteInactive).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to deactivate worksite",
				Error:   err.Error(),
			})
		}
		return c.JSON(fiber.Map{"message": "Worksite has shifts and was deactivated instead"})
	}

	result := db.DB.Where("id = ? AND organization_id = ?", id, orgID).Delete(&models.WorkSite{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete worksite",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Worksite not found",
			Error:   "no worksite with that id in this organization",
		})
	}
	return c.JSON(fiber.Map{"message": "Worksite deleted successfully"})
}
