package models

import (
	"time"
)

type PayType string

const (
	PayHourly  PayType = "HOURLY"
	PayMonthly PayType = "MONTHLY"
)

type Employee struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	FullName       string        `json:"full_name"`
	Email          string        `json:"email" gorm:"unique"`
	Password       string        `json:"password,omitempty"`
	PhoneNumber    string        `json:"phone_number"`
	PhoneNumberExt string        `json:"phone_number_ext"`
	Address        string        `json:"address"`
	AvatarURL      string        `json:"avatar_url,omitempty"`
	PayType        PayType       `json:"pay_type"`
	PayRate        float64       `json:"payrate"`
	OrganizationID uint          `json:"organization_id"`
	IsOwner        bool          `json:"is_owner" gorm:"default:false"`
	IsActive       bool          `json:"is_active" gorm:"default:true"`
	Shifts         []Shift       `json:"shifts,omitempty" gorm:"foreignKey:EmployeeID"`
	Availability   *Availability `json:"availability,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
