package models

import (
	"strings"
	"time"
)

// BoxStatus is the lifecycle status of a distribution box.
// The labels are persisted as-is and must not be renamed.
type BoxStatus string

const (
	BoxStatusActive      BoxStatus = "ACTIVE"
	BoxStatusMaintenance BoxStatus = "MAINTENANCE"
	BoxStatusInactive    BoxStatus = "INACTIVE"
)

// ParseBoxStatus resolves a status label case-insensitively.
func ParseBoxStatus(s string) (BoxStatus, bool) {
	switch BoxStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case BoxStatusActive:
		return BoxStatusActive, true
	case BoxStatusMaintenance:
		return BoxStatusMaintenance, true
	case BoxStatusInactive:
		return BoxStatusInactive, true
	}
	return "", false
}

// Box is a physical food-distribution point.
type Box struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	LocationName           string    `gorm:"not null;type:varchar(150)" json:"location_name"`
	Address                string    `gorm:"type:varchar(255)" json:"address"`
	City                   string    `gorm:"type:varchar(100)" json:"city"`
	Latitude               *float64  `gorm:"default:null" json:"latitude"`
	Longitude              *float64  `gorm:"default:null" json:"longitude"`
	ResponsiblePerson      string    `gorm:"type:varchar(150)" json:"responsible_person"`
	ResponsiblePersonPhone string    `gorm:"type:varchar(50)" json:"responsible_person_phone"`
	AssociationManager     string    `gorm:"type:varchar(150)" json:"association_manager"`
	DonationGroup          string    `gorm:"type:varchar(100)" json:"donation_group"`
	BoxType                string    `gorm:"type:varchar(100)" json:"box_type"`
	DeliveryVolunteer      string    `gorm:"type:varchar(150)" json:"delivery_volunteer"`
	DeliveryVolunteerPhone string    `gorm:"type:varchar(50)" json:"delivery_volunteer_phone"`
	Notes                  string    `gorm:"type:text" json:"notes"`
	Status                 BoxStatus `gorm:"not null;type:varchar(20);default:ACTIVE" json:"status"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// BoxResponse represents the box data returned in API responses
type BoxResponse struct {
	ID                     uint      `json:"id"`
	LocationName           string    `json:"locationName"`
	Address                string    `json:"address"`
	City                   string    `json:"city"`
	Latitude               *float64  `json:"latitude,omitempty"`
	Longitude              *float64  `json:"longitude,omitempty"`
	ResponsiblePerson      string    `json:"responsiblePerson"`
	ResponsiblePersonPhone string    `json:"responsiblePersonPhone"`
	AssociationManager     string    `json:"associationManager"`
	DonationGroup          string    `json:"donationGroup"`
	BoxType                string    `json:"boxType"`
	DeliveryVolunteer      string    `json:"deliveryVolunteer"`
	DeliveryVolunteerPhone string    `json:"deliveryVolunteerPhone"`
	Notes                  string    `json:"notes"`
	Status                 BoxStatus `json:"status"`
	CreatedAt              string    `json:"createdAt"`
	UpdatedAt              string    `json:"updatedAt"`
}

// ToResponse converts a Box model to a BoxResponse
func (b *Box) ToResponse() *BoxResponse {
	return &BoxResponse{
		ID:                     b.ID,
		LocationName:           b.LocationName,
		Address:                b.Address,
		City:                   b.City,
		Latitude:               b.Latitude,
		Longitude:              b.Longitude,
		ResponsiblePerson:      b.ResponsiblePerson,
		ResponsiblePersonPhone: b.ResponsiblePersonPhone,
		AssociationManager:     b.AssociationManager,
		DonationGroup:          b.DonationGroup,
		BoxType:                b.BoxType,
		DeliveryVolunteer:      b.DeliveryVolunteer,
		DeliveryVolunteerPhone: b.DeliveryVolunteerPhone,
		Notes:                  b.Notes,
		Status:                 b.Status,
		CreatedAt:              b.CreatedAt.Format("02-01-2006 15:04:05"),
		UpdatedAt:              b.UpdatedAt.Format("02-01-2006 15:04:05"),
	}
}
