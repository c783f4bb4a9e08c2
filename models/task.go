package models

import (
	"strings"
	"time"
)

// TaskType classifies a work item.
type TaskType string

const (
	TaskTypeCollection  TaskType = "COLLECTION"
	TaskTypeTransport   TaskType = "TRANSPORT"
	TaskTypeMaintenance TaskType = "MAINTENANCE"
	TaskTypeOther       TaskType = "OTHER"
)

// TaskPriority ranks a work item.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

// TaskStatus is the lifecycle status of a work item.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// ParseTaskType resolves a task type label case-insensitively.
func ParseTaskType(s string) (TaskType, bool) {
	switch TaskType(strings.ToUpper(strings.TrimSpace(s))) {
	case TaskTypeCollection:
		return TaskTypeCollection, true
	case TaskTypeTransport:
		return TaskTypeTransport, true
	case TaskTypeMaintenance:
		return TaskTypeMaintenance, true
	case TaskTypeOther:
		return TaskTypeOther, true
	}
	return "", false
}

// ParseTaskPriority resolves a priority label case-insensitively.
func ParseTaskPriority(s string) (TaskPriority, bool) {
	switch TaskPriority(strings.ToUpper(strings.TrimSpace(s))) {
	case TaskPriorityLow:
		return TaskPriorityLow, true
	case TaskPriorityMedium:
		return TaskPriorityMedium, true
	case TaskPriorityHigh:
		return TaskPriorityHigh, true
	case TaskPriorityUrgent:
		return TaskPriorityUrgent, true
	}
	return "", false
}

// ParseTaskStatus resolves a status label case-insensitively.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case TaskStatusPending:
		return TaskStatusPending, true
	case TaskStatusInProgress:
		return TaskStatusInProgress, true
	case TaskStatusCompleted:
		return TaskStatusCompleted, true
	case TaskStatusCancelled:
		return TaskStatusCancelled, true
	}
	return "", false
}

// Task is a work item optionally tied to a box and/or a transport.
type Task struct {
	ID                 uint         `gorm:"primaryKey" json:"id"`
	TaskType           TaskType     `gorm:"not null;type:varchar(20)" json:"task_type"`
	RelatedBoxID       *uint        `gorm:"default:null" json:"related_box_id"`
	RelatedTransportID *uint        `gorm:"default:null" json:"related_transport_id"`
	Description        string       `gorm:"not null;type:text" json:"description"`
	AssignedTo         string       `gorm:"type:varchar(150)" json:"assigned_to"`
	DueDate            *time.Time   `gorm:"default:null" json:"due_date"`
	Priority           TaskPriority `gorm:"type:varchar(20)" json:"priority"`
	Status             TaskStatus   `gorm:"not null;type:varchar(20);default:PENDING" json:"status"`
	TaskCategory       string       `gorm:"type:varchar(100)" json:"task_category"`
	Notes              string       `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// TaskResponse represents the task data returned in API responses. The
// related* fields are derived from the currently linked box at read time and
// are empty when no box is linked.
type TaskResponse struct {
	ID                        uint         `json:"id"`
	TaskType                  TaskType     `json:"taskType"`
	RelatedBoxID              *uint        `json:"relatedBoxId,omitempty"`
	RelatedTransportID        *uint        `json:"relatedTransportId,omitempty"`
	Description               string       `json:"description"`
	AssignedTo                string       `json:"assignedTo"`
	DueDate                   *string      `json:"dueDate,omitempty"`
	Priority                  TaskPriority `json:"priority"`
	Status                    TaskStatus   `json:"status"`
	TaskCategory              string       `json:"taskCategory"`
	Notes                     string       `json:"notes"`
	RelatedDonationGroup      string       `json:"relatedDonationGroup,omitempty"`
	RelatedResponsiblePerson  string       `json:"relatedResponsiblePerson,omitempty"`
	RelatedAssociationManager string       `json:"relatedAssociationManager,omitempty"`
	CreatedAt                 string       `json:"createdAt"`
	UpdatedAt                 string       `json:"updatedAt"`
}

// ToResponse converts a Task model to a TaskResponse. relatedBox is the
// currently linked box, or nil when the task has no box reference.
func (t *Task) ToResponse(relatedBox *Box) *TaskResponse {
	resp := &TaskResponse{
		ID:                 t.ID,
		TaskType:           t.TaskType,
		RelatedBoxID:       t.RelatedBoxID,
		RelatedTransportID: t.RelatedTransportID,
		Description:        t.Description,
		AssignedTo:         t.AssignedTo,
		Priority:           t.Priority,
		Status:             t.Status,
		TaskCategory:       t.TaskCategory,
		Notes:              t.Notes,
		CreatedAt:          t.CreatedAt.Format("02-01-2006 15:04:05"),
		UpdatedAt:          t.UpdatedAt.Format("02-01-2006 15:04:05"),
	}
	if t.DueDate != nil {
		due := t.DueDate.Format("02-01-2006 15:04:05")
		resp.DueDate = &due
	}
	if relatedBox != nil {
		resp.RelatedDonationGroup = relatedBox.DonationGroup
		resp.RelatedResponsiblePerson = relatedBox.ResponsiblePerson
		resp.RelatedAssociationManager = relatedBox.AssociationManager
	}
	return resp
}
