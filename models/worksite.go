package models

import (
	"gorm.io/gorm"
)

type WorkSiteStatus string

const (
	WorkSiteActive   WorkSiteStatus = "Active"
	WorkSiteInactive WorkSiteStatus = "Inactive"
)

type WorkSite struct {
	gorm.Model
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	State          string         `json:"state"`
	ZipCode        string         `json:"zip_code"`
	ContactPerson  string         `json:"contact_person"`
	ContactPhone   string         `json:"contact_phone"`
	Status         WorkSiteStatus `json:"status" gorm:"default:Active"`
	OrganizationID uint           `json:"organization_id"`
}

func (w *WorkSite) BeforeCreate(tx *gorm.DB) error {
	if w.Status == "" {
		w.Status = WorkSiteActive
	}
	return nil
}
