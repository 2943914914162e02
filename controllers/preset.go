package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"

	"github.com/crewplan/crewplan-api/db"
	"github.com/crewplan/crewplan-api/models"
	"github.com/crewplan/crewplan-api/planner"
	"github.com/crewplan/crewplan-api/redis"
	"github.com/crewplan/crewplan-api/utils"
)

// presetWeekCfg mirrors the planner's Sunday-anchored week when applying
// a template to concrete dates.
var presetWeekCfg = &now.Config{WeekStartDay: time.Sunday}

// ListPresetGroups godoc
// @Summary List preset groups
// @Tags shift-preset
// @Produce json
// @Success 200 {array} models.ShiftPresetGroup
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/shift-preset/group/list [get]
func ListPresetGroups(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	query := db.DB.Preload("Presets").Where("organization_id = ?", orgID)
	if c.QueryInt("worksite_id", 0) != 0 {
		query = query.Where("worksite_id = ?", c.QueryInt("worksite_id"))
	}

	var groups []models.ShiftPresetGroup
	if err := query.Order("title asc").Find(&groups).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch preset groups",
			Error:   err.Error(),
		})
	}
	return c.JSON(groups)
}

// CreatePresetGroup godoc
// @Summary Create a preset group
// @Tags shift-preset
// @Accept json
// @Produce json
// @Success 201 {object} models.ShiftPresetGroup
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/shift-preset/group/create [post]
func CreatePresetGroup(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	group := new(models.ShiftPresetGroup)
	if err := c.BodyParser(group); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if group.Title == "" || group.WorksiteID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
			Error:   "title and worksite_id are required",
		})
	}
	group.OrganizationID = orgID

	if err := db.DB.Create(group).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create preset group",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// UpdatePresetGroup godoc
// @Summary Rename a preset group or move it to another worksite
// @Tags shift-preset
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} models.ShiftPresetGroup
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/shift-preset/group/edit/{id} [put]
func UpdatePresetGroup(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	var group models.ShiftPresetGroup
	if err := db.DB.Where("id = ? AND organization_id = ?", c.Params("id"), orgID).
		First(&group).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Preset group not found",
			Error:   err.Error(),
		})
	}

	input := new(models.ShiftPresetGroup)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Title != "" {
		group.Title = input.Title
	}
	if input.WorksiteID != 0 {
		group.WorksiteID = input.WorksiteID
	}

	if err := db.DB.Save(&group).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update preset group",
			Error:   err.Error(),
		})
	}
	return c.JSON(group)
}

// DeletePresetGroup godoc
// @Summary Delete a preset group and its presets
// @Tags shift-preset
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/shift-preset/group/delete/{id} [delete]
func DeletePresetGroup(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)
	id := c.Params("id")

	result := db.DB.Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&models.ShiftPresetGroup{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete preset group",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Preset group not found",
			Error:   "no preset group with that id in this organization",
		})
	}
	db.DB.Where("preset_group_id = ? AND organization_id = ?", id, orgID).
		Delete(&models.ShiftPreset{})
	return c.JSON(fiber.Map{"message": "Preset group deleted successfully"})
}

// CreatePreset godoc
// @Summary Add a slot to a preset group
// @Tags shift-preset
// @Accept json
// @Produce json
// @Success 201 {object} models.ShiftPreset
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/shift-preset/create [post]
func CreatePreset(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	preset := new(models.ShiftPreset)
	if err := c.BodyParser(preset); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if preset.DayOfWeek < 1 || preset.DayOfWeek > 7 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid day of week",
			Error:   "day_of_week must be 1..7",
		})
	}
	if preset.ShiftEnd <= preset.ShiftStart {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid preset times",
			Error:   "shift_end must be after shift_start",
		})
	}

	var group models.ShiftPresetGroup
	if err := db.DB.Where("id = ? AND organization_id = ?", preset.PresetGroupID, orgID).
		First(&group).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Preset group not found",
			Error:   err.Error(),
		})
	}
	preset.OrganizationID = orgID

	if err := db.DB.Create(preset).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create preset",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(preset)
}

// UpdatePreset godoc
// @Summary Edit a preset slot
// @Tags shift-preset
// @Accept json
// @Produce json
// @Param id path int true "Preset ID"
// @Success 200 {object} models.ShiftPreset
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/shift-preset/edit/{id} [put]
func UpdatePreset(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	var preset models.ShiftPreset
	if err := db.DB.Where("id = ? AND organization_id = ?", c.Params("id"), orgID).
		First(&preset).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Preset not found",
			Error:   err.Error(),
		})
	}

	input := new(models.ShiftPreset)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Title != "" {
		preset.Title = input.Title
	}
	if input.EmployeeID != 0 {
		preset.EmployeeID = input.EmployeeID
	}
	if input.DayOfWeek != 0 {
		if input.DayOfWeek < 1 || input.DayOfWeek > 7 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid day of week",
				Error:   "day_of_week must be 1..7",
			})
		}
		preset.DayOfWeek = input.DayOfWeek
	}
	if input.ShiftStart != "" {
		preset.ShiftStart = input.ShiftStart
	}
	if input.ShiftEnd != "" {
		preset.ShiftEnd = input.ShiftEnd
	}
	preset.Remarks = input.Remarks

	if preset.ShiftEnd <= preset.ShiftStart {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid preset times",
			Error:   "shift_end must be after shift_start",
		})
	}

	if err := db.DB.Save(&preset).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update preset",
			Error:   err.Error(),
		})
	}
	return c.JSON(preset)
}

// DeletePreset godoc
// @Summary Remove a preset slot
// @Tags shift-preset
// @Produce json
// @Param id path int true "Preset ID"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/shift-preset/delete/{id} [delete]
func DeletePreset(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	result := db.DB.Where("id = ? AND organization_id = ?", c.Params("id"), orgID).
		Delete(&models.ShiftPreset{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete preset",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Preset not found",
			Error:   "no preset with that id in this organization",
		})
	}
	return c.JSON(fiber.Map{"message": "Preset deleted successfully"})
}

// PopulateWeek godoc
// @Summary Apply a preset group to the week containing a date
// @Description Creates one shift per preset slot, skipping employees who
// @Description already have a shift on that date
// @Tags shift-preset
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Success 201 {object} fiber.Map
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/shift-preset/group/{id}/populate [post]
func PopulateWeek(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	var group models.ShiftPresetGroup
	if err := db.DB.Preload("Presets").
		Where("id = ? AND organization_id = ?", c.Params("id"), orgID).
		First(&group).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Preset group not found",
			Error:   err.Error(),
		})
	}

	type PopulateInput struct {
		WeekDate string `json:"week_date"`
	}
	input := new(PopulateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	anchor, err := time.Parse(planner.DateLayout, input.WeekDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid week_date",
			Error:   err.Error(),
		})
	}

	weekStart := presetWeekCfg.With(anchor).BeginningOfWeek()
	weekEnd := weekStart.AddDate(0, 0, 6)

	// One query up front: employees already scheduled in this week keep
	// their existing shifts; the template never double-books a day.
	employeeIDs := make([]uint, 0, len(group.Presets))
	for _, p := range group.Presets {
		employeeIDs = append(employeeIDs, p.EmployeeID)
	}
	var existing []models.Shift
	if len(employeeIDs) > 0 {
		if err := db.DB.Where("employee_id IN ? AND date >= ? AND date <= ?",
			employeeIDs,
			weekStart.Format(planner.DateLayout),
			weekEnd.Format(planner.DateLayout)).
			Find(&existing).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to check existing shifts",
				Error:   err.Error(),
			})
		}
	}
	type shiftKey struct {
		employeeID uint
		date       string
	}
	taken := make(map[shiftKey]bool, len(existing))
	for _, s := range existing {
		taken[shiftKey{s.EmployeeID, s.Date}] = true
	}

	var created []models.Shift
	for day := 0; day < 7; day++ {
		date := weekStart.AddDate(0, 0, day)
		dayOfWeek := int(date.Weekday()) + 1 // 1 = Sunday
		for _, preset := range group.Presets {
			if preset.DayOfWeek != dayOfWeek {
				continue
			}
			key := shiftKey{preset.EmployeeID, date.Format(planner.DateLayout)}
			if taken[key] {
				continue
			}
			created = append(created, models.Shift{
				EmployeeID:     preset.EmployeeID,
				Title:          preset.Title,
				WorksiteID:     group.WorksiteID,
				OrganizationID: orgID,
				Date:           date.Format(planner.DateLayout),
				ShiftStart:     preset.ShiftStart,
				ShiftEnd:       preset.ShiftEnd,
				Remarks:        preset.Remarks,
			})
		}
	}

	if len(created) > 0 {
		if err := db.DB.Create(&created).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to populate shifts",
				Error:   err.Error(),
			})
		}
		redis.InvalidateShiftLists(orgID)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Week populated from preset",
		"created": len(created),
		"data":    created,
	})
}
