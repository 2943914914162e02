package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/crewplan/crewplan-api/models"
	"github.com/crewplan/crewplan-api/planner"
)

// Cache holds the planner screen's collections in memory. Reads are
// served from the cache once warm; every shift mutation invalidates the
// shift collection and refetches it exactly once. A generation counter
// guards against a slow fetch overwriting the cache with data read
// before a later mutation.
type Cache struct {
	api *Client

	mu             sync.RWMutex
	query          ShiftQuery
	shifts         []models.Shift
	shiftsValid    bool
	shiftGen       uint64
	employees      []models.Employee
	employeesValid bool
	employeeGen    uint64
	worksites      []models.WorkSite
	worksitesValid bool
	presets        []models.ShiftPresetGroup
	presetsValid   bool

	shiftLocks keyedLocks
}

// keyedLocks hands out one mutex per shift ID so concurrent mutations of
// the same shift apply in sequence while different shifts stay parallel.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func (k *keyedLocks) For(id uint) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.locks == nil {
		k.locks = make(map[uint]*sync.Mutex)
	}
	if _, ok := k.locks[id]; !ok {
		k.locks[id] = &sync.Mutex{}
	}
	return k.locks[id]
}

// NewCache wraps api with an empty cache scoped to query's week window.
func NewCache(api *Client, query ShiftQuery) *Cache {
	return &Cache{api: api, query: query}
}

// SetQuery changes the week window and invalidates the shift collection.
func (c *Cache) SetQuery(query ShiftQuery) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
	c.shiftGen++
	c.shiftsValid = false
}

// Shifts returns the cached shift collection, fetching it if stale.
func (c *Cache) Shifts(ctx context.Context) ([]models.Shift, error) {
	c.mu.RLock()
	if c.shiftsValid {
		shifts := append([]models.Shift(nil), c.shifts...)
		c.mu.RUnlock()
		return shifts, nil
	}
	c.mu.RUnlock()
	return c.refreshShifts(ctx)
}

// refreshShifts fetches the current query's shifts and installs the
// result only if no mutation landed while the request was in flight.
func (c *Cache) refreshShifts(ctx context.Context) ([]models.Shift, error) {
	c.mu.RLock()
	gen := c.shiftGen
	query := c.query
	c.mu.RUnlock()

	list, err := c.api.ListShifts(ctx, query)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if gen == c.shiftGen {
		c.shifts = list.Data
		c.shiftsValid = true
	}
	c.mu.Unlock()
	return list.Data, nil
}

func (c *Cache) invalidateShifts() {
	c.mu.Lock()
	c.shiftGen++
	c.shiftsValid = false
	c.mu.Unlock()
}

// CreateShift creates a shift, then invalidates and refetches the week.
func (c *Cache) CreateShift(ctx context.Context, shift models.Shift) (models.Shift, error) {
	created, err := c.api.CreateShift(ctx, shift)
	if err != nil {
		return models.Shift{}, err
	}
	c.invalidateShifts()
	if _, err := c.refreshShifts(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// EditShift updates a shift, then invalidates and refetches the week.
func (c *Cache) EditShift(ctx context.Context, id uint, edit ShiftEdit) (models.Shift, error) {
	lock := c.shiftLocks.For(id)
	lock.Lock()
	defer lock.Unlock()

	updated, err := c.api.EditShift(ctx, id, edit)
	if err != nil {
		return models.Shift{}, err
	}
	c.invalidateShifts()
	if _, err := c.refreshShifts(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// MoveShift reschedules a shift dragged from one planner bucket to
// another, shifting its dates by the bucket delta in the view's units.
func (c *Cache) MoveShift(ctx context.Context, id uint, mode planner.ViewMode, fromIndex, toIndex int) (models.Shift, error) {
	lock := c.shiftLocks.For(id)
	lock.Lock()
	defer lock.Unlock()

	c.mu.RLock()
	var current *models.Shift
	for i := range c.shifts {
		if c.shifts[i].ID == id {
			shift := c.shifts[i]
			current = &shift
			break
		}
	}
	c.mu.RUnlock()
	if current == nil {
		return models.Shift{}, fmt.Errorf("shift %d is not in the cached week", id)
	}

	placement, err := planner.MoveShift(mode, fromIndex, toIndex, current.Placement())
	if err != nil {
		return models.Shift{}, err
	}

	updated, err := c.api.EditShift(ctx, id, ShiftEdit{
		Date:       placement.Date,
		ShiftStart: placement.Start,
		ShiftEnd:   placement.End,
	})
	if err != nil {
		return models.Shift{}, err
	}
	c.invalidateShifts()
	if _, err := c.refreshShifts(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// DeleteShift removes a shift, then invalidates and refetches the week.
func (c *Cache) DeleteShift(ctx context.Context, id uint) error {
	lock := c.shiftLocks.For(id)
	lock.Lock()
	defer lock.Unlock()

	if err := c.api.DeleteShift(ctx, id); err != nil {
		return err
	}
	c.invalidateShifts()
	_, err := c.refreshShifts(ctx)
	return err
}

// SwapEmployee reassigns a shift, then invalidates and refetches the week.
func (c *Cache) SwapEmployee(ctx context.Context, id, employeeID uint) (models.Shift, error) {
	lock := c.shiftLocks.For(id)
	lock.Lock()
	defer lock.Unlock()

	updated, err := c.api.SwapEmployee(ctx, id, employeeID)
	if err != nil {
		return models.Shift{}, err
	}
	c.invalidateShifts()
	if _, err := c.refreshShifts(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// CallInShift marks a shift called in, then invalidates and refetches.
func (c *Cache) CallInShift(ctx context.Context, id uint, reason string) (models.Shift, error) {
	lock := c.shiftLocks.For(id)
	lock.Lock()
	defer lock.Unlock()

	updated, err := c.api.CallInShift(ctx, id, reason)
	if err != nil {
		return models.Shift{}, err
	}
	c.invalidateShifts()
	if _, err := c.refreshShifts(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// PopulateWeek applies a preset group, then invalidates and refetches.
func (c *Cache) PopulateWeek(ctx context.Context, groupID uint, weekDate string) error {
	if err := c.api.PopulateWeek(ctx, groupID, weekDate); err != nil {
		return err
	}
	c.invalidateShifts()
	_, err := c.refreshShifts(ctx)
	return err
}

// Employees returns the cached employee collection, fetching on miss.
func (c *Cache) Employees(ctx context.Context) ([]models.Employee, error) {
	c.mu.RLock()
	if c.employeesValid {
		employees := append([]models.Employee(nil), c.employees...)
		c.mu.RUnlock()
		return employees, nil
	}
	c.mu.RUnlock()
	return c.refreshEmployees(ctx)
}

// refreshEmployees fetches the roster and installs the result only if no
// employee mutation landed while the request was in flight.
func (c *Cache) refreshEmployees(ctx context.Context) ([]models.Employee, error) {
	c.mu.RLock()
	gen := c.employeeGen
	c.mu.RUnlock()

	employees, err := c.api.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if gen == c.employeeGen {
		c.employees = employees
		c.employeesValid = true
	}
	c.mu.Unlock()
	return employees, nil
}

// CreateEmployee creates an employee, then invalidates and refetches
// the roster.
func (c *Cache) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	created, err := c.api.CreateEmployee(ctx, employee)
	if err != nil {
		return models.Employee{}, err
	}
	c.InvalidateEmployees()
	if _, err := c.refreshEmployees(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// UpdateEmployee updates an employee, then invalidates and refetches
// the roster.
func (c *Cache) UpdateEmployee(ctx context.Context, id uint, edit EmployeeEdit) (models.Employee, error) {
	updated, err := c.api.UpdateEmployee(ctx, id, edit)
	if err != nil {
		return models.Employee{}, err
	}
	c.InvalidateEmployees()
	if _, err := c.refreshEmployees(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// RemoveEmployee deactivates an employee, then invalidates and
// refetches the roster.
func (c *Cache) RemoveEmployee(ctx context.Context, id uint) error {
	if err := c.api.RemoveEmployee(ctx, id); err != nil {
		return err
	}
	c.InvalidateEmployees()
	_, err := c.refreshEmployees(ctx)
	return err
}

// WorkSites returns the cached worksite collection, fetching on miss.
func (c *Cache) WorkSites(ctx context.Context) ([]models.WorkSite, error) {
	c.mu.RLock()
	if c.worksitesValid {
		sites := append([]models.WorkSite(nil), c.worksites...)
		c.mu.RUnlock()
		return sites, nil
	}
	c.mu.RUnlock()

	sites, err := c.api.ListWorkSites(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.worksites = sites
	c.worksitesValid = true
	c.mu.Unlock()
	return sites, nil
}

// PresetGroups returns the cached preset groups, fetching on miss.
func (c *Cache) PresetGroups(ctx context.Context) ([]models.ShiftPresetGroup, error) {
	c.mu.RLock()
	if c.presetsValid {
		groups := append([]models.ShiftPresetGroup(nil), c.presets...)
		c.mu.RUnlock()
		return groups, nil
	}
	c.mu.RUnlock()

	groups, err := c.api.ListPresetGroups(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.presets = groups
	c.presetsValid = true
	c.mu.Unlock()
	return groups, nil
}

// InvalidateEmployees drops the employee collection.
func (c *Cache) InvalidateEmployees() {
	c.mu.Lock()
	c.employeeGen++
	c.employeesValid = false
	c.mu.Unlock()
}

// InvalidateWorkSites drops the worksite collection.
func (c *Cache) InvalidateWorkSites() {
	c.mu.Lock()
	c.worksitesValid = false
	c.mu.Unlock()
}

// InvalidatePresetGroups drops the preset group collection.
func (c *Cache) InvalidatePresetGroups() {
	c.mu.Lock()
	c.presetsValid = false
	c.mu.Unlock()
}
