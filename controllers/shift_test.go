package controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/crewplan/crewplan-api/models"
)

func TestApplyWorksiteNames(t *testing.T) {
	sites := []models.WorkSite{
		{Model: gorm.Model{ID: 1}, Name: "Downtown"},
		{Model: gorm.Model{ID: 2}, Name: "Harbor"},
	}
	shifts := []models.Shift{
		{Model: gorm.Model{ID: 10}, WorksiteID: 1},
		{Model: gorm.Model{ID: 11}, WorksiteID: 2},
		{Model: gorm.Model{ID: 12}, WorksiteID: 99},
	}

	applyWorksiteNames(shifts, sites)

	assert.Equal(t, "Downtown", shifts[0].WorksiteName)
	assert.Equal(t, "Harbor", shifts[1].WorksiteName)
	assert.Empty(t, shifts[2].WorksiteName, "unknown worksite leaves the name blank")
}

func TestApplyWorksiteNamesDecoratesMutationResponse(t *testing.T) {
	// Mutation handlers respond with the slice element, not the record
	// the slice was built from, so the decorated name must reach the
	// serialized body.
	shift := models.Shift{
		Model:      gorm.Model{ID: 7},
		Title:      "Opening",
		WorksiteID: 3,
		Date:       "2024-06-10",
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
	}

	decorated := []models.Shift{shift}
	applyWorksiteNames(decorated, []models.WorkSite{{Model: gorm.Model{ID: 3}, Name: "Harbor"}})

	assert.Empty(t, shift.WorksiteName, "the original copy stays untouched")
	require.Equal(t, "Harbor", decorated[0].WorksiteName)

	body, err := json.Marshal(decorated[0])
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Harbor", payload["worksite_name"])
}
