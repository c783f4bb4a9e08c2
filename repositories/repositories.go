package repositories

import (
	"time"

	"kesher-manager-backend/models"
)

// Narrow storage boundaries consumed by the service layer. The services
// never touch gorm directly, which keeps the lifecycle rules testable
// against in-memory implementations.

// BoxRepository is the storage boundary for Box records.
type BoxRepository interface {
	FindAll() ([]models.Box, error)
	// FindByID returns (nil, nil) when no box has the given id.
	FindByID(id uint) (*models.Box, error)
	Save(box *models.Box) error
	DeleteByID(id uint) error
	FindByStatus(status models.BoxStatus) ([]models.Box, error)
	FindByDonationGroup(group string) ([]models.Box, error)
	SearchByLocationName(name string) ([]models.Box, error)
	SearchByAddress(address string) ([]models.Box, error)
	SearchByResponsiblePerson(person string) ([]models.Box, error)
	SearchByAssociationManager(manager string) ([]models.Box, error)
}

// TransportRepository is the storage boundary for Transport records.
type TransportRepository interface {
	FindAll() ([]models.Transport, error)
	// FindByID returns (nil, nil) when no transport has the given id.
	FindByID(id uint) (*models.Transport, error)
	Save(transport *models.Transport) error
	DeleteByID(id uint) error
	FindByStatus(status models.TransportStatus) ([]models.Transport, error)
	FindBySourceBoxIDs(boxIDs []uint) ([]models.Transport, error)
	FindByDestinationBoxIDs(boxIDs []uint) ([]models.Transport, error)
	FindByDestinationType(destinationType models.DestinationType) ([]models.Transport, error)
	FindByCreatedBy(createdBy string) ([]models.Transport, error)
	FindByScheduledBetween(start, end time.Time) ([]models.Transport, error)
	FindByScheduledBetweenAndStatus(start, end time.Time, status models.TransportStatus) ([]models.Transport, error)
	SearchByDriverName(name string) ([]models.Transport, error)
}

// TaskRepository is the storage boundary for Task records.
type TaskRepository interface {
	FindAll() ([]models.Task, error)
	// FindByID returns (nil, nil) when no task has the given id.
	FindByID(id uint) (*models.Task, error)
	Save(task *models.Task) error
	DeleteByID(id uint) error
	FindByStatus(status models.TaskStatus) ([]models.Task, error)
	FindByPriority(priority models.TaskPriority) ([]models.Task, error)
	FindByType(taskType models.TaskType) ([]models.Task, error)
	FindByRelatedBoxID(boxID uint) ([]models.Task, error)
	FindByRelatedBoxIDs(boxIDs []uint) ([]models.Task, error)
	FindByRelatedTransportID(transportID uint) ([]models.Task, error)
	SearchByAssignedTo(assignee string) ([]models.Task, error)
	FindByCategory(category string) ([]models.Task, error)
	// FindByDueBeforeAndStatusNot returns tasks with a due date strictly
	// before the cutoff whose status differs from the excluded one.
	FindByDueBeforeAndStatusNot(cutoff time.Time, excluded models.TaskStatus) ([]models.Task, error)
	FindByDueBetween(start, end time.Time) ([]models.Task, error)
}
