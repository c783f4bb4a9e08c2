package models

import (
	"strings"
	"time"
)

// DestinationType says where a transport delivers to. When the destination
// is not another box, the external id and display name are used instead of
// a box reference.
type DestinationType string

const (
	DestinationBox    DestinationType = "BOX"
	DestinationStore  DestinationType = "STORE"
	DestinationFamily DestinationType = "FAMILY"
)

// TransportStatus is the lifecycle status of a transport.
type TransportStatus string

const (
	TransportStatusPlanned    TransportStatus = "PLANNED"
	TransportStatusInProgress TransportStatus = "IN_PROGRESS"
	TransportStatusCompleted  TransportStatus = "COMPLETED"
	TransportStatusCancelled  TransportStatus = "CANCELLED"
)

// ParseDestinationType resolves a destination type label case-insensitively.
func ParseDestinationType(s string) (DestinationType, bool) {
	switch DestinationType(strings.ToUpper(strings.TrimSpace(s))) {
	case DestinationBox:
		return DestinationBox, true
	case DestinationStore:
		return DestinationStore, true
	case DestinationFamily:
		return DestinationFamily, true
	}
	return "", false
}

// ParseTransportStatus resolves a status label case-insensitively.
func ParseTransportStatus(s string) (TransportStatus, bool) {
	switch TransportStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case TransportStatusPlanned:
		return TransportStatusPlanned, true
	case TransportStatusInProgress:
		return TransportStatusInProgress, true
	case TransportStatusCompleted:
		return TransportStatusCompleted, true
	case TransportStatusCancelled:
		return TransportStatusCancelled, true
	}
	return "", false
}

// Transport is a movement of goods from a source box to a box, store or
// family. Related boxes are referenced by id only; the rows never carry a
// copy of the box itself.
type Transport struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	SourceBoxID      uint            `gorm:"not null" json:"source_box_id"`
	DestinationType  DestinationType `gorm:"not null;type:varchar(20)" json:"destination_type"`
	DestinationBoxID *uint           `gorm:"default:null" json:"destination_box_id"`
	DestinationID    *uint           `gorm:"default:null" json:"destination_id"`
	DestinationName  string          `gorm:"type:varchar(150)" json:"destination_name"`
	Quantity         string          `gorm:"type:varchar(255)" json:"quantity"`
	ScheduledDate    time.Time       `gorm:"type:timestamp" json:"scheduled_date"`
	CompletionDate   *time.Time      `gorm:"default:null" json:"completion_date"`
	Status           TransportStatus `gorm:"not null;type:varchar(20);default:PLANNED" json:"status"`
	DriverName       string          `gorm:"type:varchar(150)" json:"driver_name"`
	DriverPhone      string          `gorm:"type:varchar(50)" json:"driver_phone"`
	Notes            string          `gorm:"type:text" json:"notes"`
	CreatedBy        string          `gorm:"type:varchar(150)" json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// TransportResponse represents the transport data returned in API responses
type TransportResponse struct {
	ID               uint            `json:"id"`
	SourceBoxID      uint            `json:"sourceBoxId"`
	DestinationType  DestinationType `json:"destinationType"`
	DestinationBoxID *uint           `json:"destinationBoxId,omitempty"`
	DestinationID    *uint           `json:"destinationId,omitempty"`
	DestinationName  string          `json:"destinationName"`
	Quantity         string          `json:"quantity"`
	ScheduledDate    string          `json:"scheduledDate"`
	CompletionDate   *string         `json:"completionDate,omitempty"`
	Status           TransportStatus `json:"status"`
	DriverName       string          `json:"driverName"`
	DriverPhone      string          `json:"driverPhone"`
	Notes            string          `json:"notes"`
	CreatedBy        string          `json:"createdBy"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

// ToResponse converts a Transport model to a TransportResponse
func (t *Transport) ToResponse() *TransportResponse {
	resp := &TransportResponse{
		ID:               t.ID,
		SourceBoxID:      t.SourceBoxID,
		DestinationType:  t.DestinationType,
		DestinationBoxID: t.DestinationBoxID,
		DestinationID:    t.DestinationID,
		DestinationName:  t.DestinationName,
		Quantity:         t.Quantity,
		ScheduledDate:    t.ScheduledDate.Format("02-01-2006 15:04:05"),
		Status:           t.Status,
		DriverName:       t.DriverName,
		DriverPhone:      t.DriverPhone,
		Notes:            t.Notes,
		CreatedBy:        t.CreatedBy,
		CreatedAt:        t.CreatedAt.Format("02-01-2006 15:04:05"),
		UpdatedAt:        t.UpdatedAt.Format("02-01-2006 15:04:05"),
	}
	if t.CompletionDate != nil {
		completed := t.CompletionDate.Format("02-01-2006 15:04:05")
		resp.CompletionDate = &completed
	}
	return resp
}
