package models

import (
	"time"
)

type Organization struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:OrganizationID"`
	WorkSites []WorkSite `json:"worksites,omitempty" gorm:"foreignKey:OrganizationID"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
