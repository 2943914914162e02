package controllers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/crewplan/crewplan-api/db"
	"github.com/crewplan/crewplan-api/models"
	"github.com/crewplan/crewplan-api/planner"
	"github.com/crewplan/crewplan-api/redis"
	"github.com/crewplan/crewplan-api/utils"
)

// Pagination is the metadata block attached to every list response.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// ShiftListResponse is the envelope the planner's data layer consumes.
type ShiftListResponse struct {
	Data       []models.Shift `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

func paginationFor(total int64, page, perPage int) Pagination {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return Pagination{Total: total, Page: page, PerPage: perPage, TotalPages: totalPages}
}

// attachWorksiteNames fills the transient WorksiteName field so the
// planner can label shift cards without a second request.
func attachWorksiteNames(shifts []models.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(shifts))
	for _, s := range shifts {
		ids = append(ids, s.WorksiteID)
	}
	var sites []models.WorkSite
	if err := db.DB.Where("id IN ?", ids).Find(&sites).Error; err != nil {
		return err
	}
	applyWorksiteNames(shifts, sites)
	return nil
}

// applyWorksiteNames writes each worksite's name onto the shifts in
// place, so callers see the decorated records through the same slice.
func applyWorksiteNames(shifts []models.Shift, sites []models.WorkSite) {
	names := make(map[uint]string, len(sites))
	for _, ws := range sites {
		names[ws.ID] = ws.Name
	}
	for i := range shifts {
		shifts[i].WorksiteName = names[shifts[i].WorksiteID]
	}
}

var shiftSortColumns = map[string]string{
	"id":          "id",
	"date":        "date",
	"shift_start": "shift_start",
	"title":       "title",
}

// ListShifts godoc
// @Summary List shifts for a week
// @Description List shifts filtered by week range, worksite and employee
// @Tags shift
// @Produce json
// @Success 200 {object} ShiftListResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/shift/list [get]
func ListShifts(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	weekStart := c.Query("week_start")
	weekEnd := c.Query("week_end")
	worksiteID, _ := strconv.Atoi(c.Query("worksite_id", "0"))
	employeeID, _ := strconv.Atoi(c.Query("employee_id", "0"))
	searchQuery := c.Query("search_query")
	sortBy := c.Query("sort_by", "id")
	sortOrder := c.Query("sort_order", "asc")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "100"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 100
	}

	// The common planner query (week + worksite, no search) is cached;
	// mutations invalidate the whole organization.
	cacheKey := ""
	if searchQuery == "" && employeeID == 0 {
		cacheKey = redis.ShiftListKey(orgID, weekStart, weekEnd, uint(worksiteID)) +
			fmt.Sprintf(":%d:%d", page, perPage)
		if cached := redis.GetShiftList(cacheKey); cached != "" {
			c.Set("Content-Type", "application/json")
			return c.SendString(cached)
		}
	}

	query := db.DB.Model(&models.Shift{}).Where("organization_id = ?", orgID)
	if weekStart != "" {
		query = query.Where("date >= ?", weekStart)
	}
	if weekEnd != "" {
		query = query.Where("date <= ?", weekEnd)
	}
	if worksiteID != 0 {
		query = query.Where("worksite_id = ?", worksiteID)
	}
	if employeeID != 0 {
		query = query.Where("employee_id = ?", employeeID)
	}
	if searchQuery != "" {
		query = query.Where("title ILIKE ?", "%"+searchQuery+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to count shifts",
			Error:   err.Error(),
		})
	}

	column, ok := shiftSortColumns[sortBy]
	if !ok {
		column = "id"
	}
	if sortOrder != "desc" {
		sortOrder = "asc"
	}

	var shifts []models.Shift
	err := query.Order(column + " " + sortOrder).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&shifts).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch shifts",
			Error:   err.Error(),
		})
	}
	if err := attachWorksiteNames(shifts); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve worksites",
			Error:   err.Error(),
		})
	}

	response := ShiftListResponse{
		Data:       shifts,
		Pagination: paginationFor(total, page, perPage),
	}

	if cacheKey != "" {
		if payload, err := json.Marshal(response); err == nil {
			redis.SetShiftList(cacheKey, string(payload))
		}
	}
	return c.JSON(response)
}

// CreateShift godoc
// @Summary Create a shift
// @Description Create a shift for an employee at a worksite
// @Tags shift
// @Accept json
// @Produce json
// @Success 201 {object} models.Shift
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/shift/create [post]
func CreateShift(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	shift := new(models.Shift)
	if err := c.BodyParser(shift); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	shift.OrganizationID = orgID
	shift.CalledIn = false

	if err := shift.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid shift times",
			Error:   err.Error(),
		})
	}

	var employee models.Employee
	if err := db.DB.Where("id = ? AND organization_id = ?", shift.EmployeeID, orgID).
		First(&employee).Error; err != nil {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You can only create shifts for employees in your organization",
			Error:   err.Error(),
		})
	}

	overlap, err := utils.HasOverlappingShift(shift.EmployeeID, orgID, shift.Date, shift.ShiftStart, shift.ShiftEnd, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check shift overlap",
			Error:   err.Error(),
		})
	}
	if overlap {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "The new shift overlaps with an existing shift for this employee",
			Error:   "overlapping shift",
		})
	}

	if err := db.DB.Create(shift).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create shift",
			Error:   err.Error(),
		})
	}

	redis.InvalidateShiftLists(orgID)
	created := []models.Shift{*shift}
	if err := attachWorksiteNames(created); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load worksite names",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created[0])
}

// EditShift godoc
// @Summary Edit a shift
// @Description Update a shift's placement, worksite or remarks
// @Tags shift
// @Accept json
// @Produce json
// @Param id path int true "Shift ID"
// @Success 200 {object} models.Shift
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/shift/edit/{id} [put]
func EditShift(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)
	id := c.Params("id")

	var shift models.Shift
	if err := db.DB.Where("id = ? AND organization_id = ?", id, orgID).
		First(&shift).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Shift not found",
			Error:   err.Error(),
		})
	}

	type ShiftEditInput struct {
		Title      string `json:"title"`
		Date       string `json:"date"`
		ShiftStart string `json:"shift_start"`
		ShiftEnd   string `json:"shift_end"`
		WorksiteID uint   `json:"worksite_id"`
		Remarks    string `json:"remarks"`
	}
	input := new(ShiftEditInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if _, err := planner.ParseShiftTimes(input.Date, input.ShiftStart, input.ShiftEnd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid shift times",
			Error:   err.Error(),
		})
	}

	overlap, err := utils.HasOverlappingShift(shift.EmployeeID, orgID, input.Date, input.ShiftStart, input.ShiftEnd, shift.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check shift overlap",
			Error:   err.Error(),
		})
	}
	if overlap {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "The edited shift would overlap with an existing shift for this employee",
			Error:   "overlapping shift",
		})
	}

	if input.Title != "" {
		shift.Title = input.Title
	}
	shift.Date = input.Date
	shift.ShiftStart = input.ShiftStart
	shift.ShiftEnd = input.ShiftEnd
	if input.WorksiteID != 0 {
		shift.WorksiteID = input.WorksiteID
	}
	shift.Remarks = input.Remarks

	if err := db.DB.Save(&shift).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update shift",
			Error:   err.Error(),
		})
	}

	redis.InvalidateShiftLists(orgID)
	updated := []models.Shift{shift}
	if err := attachWorksiteNames(updated); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load worksite names",
			Error:   err.Error(),
		})
	}
	return c.JSON(updated[0])
}

// SwapEmployee godoc
// @Summary Reassign a shift to another employee
// @Tags shift
// @Accept json
// @Produce json
// @Param id path int true "Shift ID"
// @Success 200 {object} models.Shift
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/shift/swap-employee/{id} [put]
func SwapEmployee(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)
	id := c.Params("id")

	var shift models.Shift
	if err := db.DB.Where("id = ? AND organization_id = ?", id, orgID).
		First(&shift).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Shift not found",
			Error:   err.Error(),
		})
	}

	type SwapInput struct {
		EmployeeID uint `json:"employee_id"`
	}
	input := new(SwapInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var replacement models.Employee
	if err := db.DB.Where("id = ? AND organization_id = ? AND is_active = true", input.EmployeeID, orgID).
		First(&replacement).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Replacement employee not found",
			Error:   err.Error(),
		})
	}

	overlap, err := utils.HasOverlappingShift(input.EmployeeID, orgID, shift.Date, shift.ShiftStart, shift.ShiftEnd, shift.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check shift overlap",
			Error:   err.Error(),
		})
	}
	if overlap {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "The replacement employee already has an overlapping shift",
			Error:   "overlapping shift",
		})
	}

	shift.EmployeeID = input.EmployeeID
	if err := db.DB.Save(&shift).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reassign shift",
			Error:   err.Error(),
		})
	}

	redis.InvalidateShiftLists(orgID)
	reassigned := []models.Shift{shift}
	if err := attachWorksiteNames(reassigned); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load worksite names",
			Error:   err.Error(),
		})
	}
	return c.JSON(reassigned[0])
}

// DeleteShift godoc
// @Summary Delete a shift
// @Tags shift
// @Produce json
// @Param id path int true "Shift ID"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/shift/delete/{id} [delete]
func DeleteShift(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)
	id := c.Params("id")

	result := db.DB.Where("id = ? AND organization_id = ?", id, orgID).Delete(&models.Shift{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete shift",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Shift not found",
			Error:   "no shift with that id in this organization",
		})
	}

	redis.InvalidateShiftLists(orgID)
	return c.JSON(fiber.Map{"message": "Shift deleted successfully"})
}

// CallInShift godoc
// @Summary Mark a shift as a call-in
// @Tags shift
// @Accept json
// @Produce json
// @Param id path int true "Shift ID"
// @Success 200 {object} models.Shift
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/shift/{id}/call-in [post]
func CallInShift(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)
	id := c.Params("id")

	var shift models.Shift
	if err := db.DB.Where("id = ? AND organization_id = ?", id, orgID).
		First(&shift).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Shift not found",
			Error:   err.Error(),
		})
	}

	type CallInInput struct {
		CallInReason string `json:"call_in_reason"`
	}
	input := new(CallInInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	shift.CalledIn = true
	shift.CallInReason = input.CallInReason
	if err := db.DB.Save(&shift).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to mark call-in",
			Error:   err.Error(),
		})
	}

	redis.InvalidateShiftLists(orgID)
	return c.JSON(shift)
}

// ListCallIns godoc
// @Summary List call-ins for the week starting at a date
// @Tags shift
// @Produce json
// @Success 200 {object} ShiftListResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/shift/call-ins [get]
func ListCallIns(c *fiber.Ctx) error {
	orgID := c.Locals("orgID").(uint)

	startDate := c.Query("date")
	if startDate == "" {
		startDate = time.Now().Format(planner.DateLayout)
	}
	start, err := time.Parse(planner.DateLayout, startDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date",
			Error:   err.Error(),
		})
	}
	endDate := start.AddDate(0, 0, 7).Format(planner.DateLayout)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	perPage, _ := strconv.Atoi(c.Query("per_page", "10"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	query := db.DB.Model(&models.Shift{}).
		Where("organization_id = ? AND called_in = true", orgID).
		Where("date >= ? AND date <= ?", startDate, endDate)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to count call-ins",
			Error:   err.Error(),
		})
	}

	var shifts []models.Shift
	err = query.Order("date asc, shift_start asc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&shifts).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch call-ins",
			Error:   err.Error(),
		})
	}
	if err := attachWorksiteNames(shifts); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve worksites",
			Error:   err.Error(),
		})
	}

	return c.JSON(ShiftListResponse{
		Data:       shifts,
		Pagination: paginationFor(total, page, perPage),
	})
}
