package services

import (
	"strings"
	"time"

	"kesher-manager-backend/models"
	"kesher-manager-backend/repositories"
	"kesher-manager-backend/utils"
)

// TaskService owns task records and their status lifecycle. Box and
// transport references are optional but must resolve when supplied.
type TaskService struct {
	tasks      repositories.TaskRepository
	boxes      repositories.BoxRepository
	transports repositories.TransportRepository
	loc        *time.Location
	now        func() time.Time
}

func NewTaskService(tasks repositories.TaskRepository, boxes repositories.BoxRepository, transports repositories.TransportRepository, loc *time.Location) *TaskService {
	return &TaskService{
		tasks:      tasks,
		boxes:      boxes,
		transports: transports,
		loc:        loc,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *TaskService) validateReferences(task *models.Task) error {
	if task.RelatedBoxID != nil {
		box, err := s.boxes.FindByID(*task.RelatedBoxID)
		if err != nil {
			return err
		}
		if box == nil {
			return &InvalidReferenceError{Entity: "Box", ID: *task.RelatedBoxID}
		}
	}
	if task.RelatedTransportID != nil {
		transport, err := s.transports.FindByID(*task.RelatedTransportID)
		if err != nil {
			return err
		}
		if transport == nil {
			return &InvalidReferenceError{Entity: "Transport", ID: *task.RelatedTransportID}
		}
	}
	return nil
}

func (s *TaskService) GetAllTasks() ([]models.Task, error) {
	return s.tasks.FindAll()
}

func (s *TaskService) GetTaskByID(id uint) (*models.Task, error) {
	task, err := s.tasks.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &NotFoundError{Entity: "Task", ID: id}
	}
	return task, nil
}

// CreateTask validates the optional references and persists a new task. A
// missing status defaults to PENDING.
func (s *TaskService) CreateTask(task *models.Task) (*models.Task, error) {
	if strings.TrimSpace(task.Description) == "" {
		return nil, &ValidationError{Message: "Description is required"}
	}
	if err := s.validateReferences(task); err != nil {
		return nil, err
	}
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}

	now := s.now()
	task.ID = 0
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.tasks.Save(task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask replaces the mutable fields of an existing task after
// re-validating the references.
func (s *TaskService) UpdateTask(id uint, payload *models.Task) (*models.Task, error) {
	task, err := s.GetTaskByID(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(payload.Description) == "" {
		return nil, &ValidationError{Message: "Description is required"}
	}
	if err := s.validateReferences(payload); err != nil {
		return nil, err
	}
	if payload.Status == "" {
		payload.Status = task.Status
	}

	task.TaskType = payload.TaskType
	task.RelatedBoxID = payload.RelatedBoxID
	task.RelatedTransportID = payload.RelatedTransportID
	task.Description = payload.Description
	task.AssignedTo = payload.AssignedTo
	task.DueDate = payload.DueDate
	task.Priority = payload.Priority
	task.Status = payload.Status
	task.TaskCategory = payload.TaskCategory
	task.Notes = payload.Notes
	task.UpdatedAt = s.now()

	if err := s.tasks.Save(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(id uint) error {
	if _, err := s.GetTaskByID(id); err != nil {
		return err
	}
	return s.tasks.DeleteByID(id)
}

// UpdateStatus sets the task status and refreshes updatedAt.
func (s *TaskService) UpdateStatus(id uint, newStatus models.TaskStatus) (*models.Task, error) {
	task, err := s.GetTaskByID(id)
	if err != nil {
		return nil, err
	}

	task.Status = newStatus
	task.UpdatedAt = s.now()

	if err := s.tasks.Save(task); err != nil {
		return nil, err
	}
	return task, nil
}

// AssignTask sets the assignee. The name is free text and is not checked
// against any roster.
func (s *TaskService) AssignTask(id uint, assignedTo string) (*models.Task, error) {
	task, err := s.GetTaskByID(id)
	if err != nil {
		return nil, err
	}

	task.AssignedTo = assignedTo
	task.UpdatedAt = s.now()

	if err := s.tasks.Save(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTasksByStatus(status models.TaskStatus) ([]models.Task, error) {
	return s.tasks.FindByStatus(status)
}

func (s *TaskService) GetTasksByPriority(priority models.TaskPriority) ([]models.Task, error) {
	return s.tasks.FindByPriority(priority)
}

func (s *TaskService) GetTasksByType(taskType models.TaskType) ([]models.Task, error) {
	return s.tasks.FindByType(taskType)
}

func (s *TaskService) GetTasksByRelatedBox(boxID uint) ([]models.Task, error) {
	return s.tasks.FindByRelatedBoxID(boxID)
}

func (s *TaskService) GetTasksByRelatedTransport(transportID uint) ([]models.Task, error) {
	return s.tasks.FindByRelatedTransportID(transportID)
}

func (s *TaskService) GetTasksByAssignee(assignee string) ([]models.Task, error) {
	return s.tasks.SearchByAssignedTo(assignee)
}

func (s *TaskService) GetTasksByCategory(category string) ([]models.Task, error) {
	return s.tasks.FindByCategory(category)
}

// GetOverdueTasks lists tasks whose due date has passed and that were never
// completed. Cancelled tasks still count: they were due and not completed.
func (s *TaskService) GetOverdueTasks() ([]models.Task, error) {
	return s.tasks.FindByDueBeforeAndStatusNot(s.now(), models.TaskStatusCompleted)
}

// GetTasksByDateRange lists tasks due within the inclusive calendar-date
// range, resolved to local day boundaries.
func (s *TaskService) GetTasksByDateRange(startDate, endDate time.Time) ([]models.Task, error) {
	start := utils.StartOfDay(startDate, s.loc)
	end := utils.EndOfDay(endDate, s.loc)
	return s.tasks.FindByDueBetween(start, end)
}

// GetTasksDueToday lists tasks due today in the local timezone.
func (s *TaskService) GetTasksDueToday() ([]models.Task, error) {
	today := s.now()
	start := utils.StartOfDay(today, s.loc)
	end := utils.EndOfDay(today, s.loc)
	return s.tasks.FindByDueBetween(start, end)
}

// GetTasksByDonationGroup lists tasks whose linked box belongs to the given
// donation group.
func (s *TaskService) GetTasksByDonationGroup(group string) ([]models.Task, error) {
	boxes, err := s.boxes.FindByDonationGroup(group)
	if err != nil {
		return nil, err
	}
	return s.tasks.FindByRelatedBoxIDs(boxIDs(boxes))
}

// GetTasksByAssociationManager lists tasks whose linked box is managed by
// the given association manager.
func (s *TaskService) GetTasksByAssociationManager(manager string) ([]models.Task, error) {
	boxes, err := s.boxes.SearchByAssociationManager(manager)
	if err != nil {
		return nil, err
	}
	return s.tasks.FindByRelatedBoxIDs(boxIDs(boxes))
}

// ToResponse builds the API representation of a task, deriving the
// related* fields from the currently linked box. The derived fields always
// reflect the box's current values, never a snapshot. A box that no longer
// exists leaves the derived fields empty; a storage failure is returned.
func (s *TaskService) ToResponse(task *models.Task) (*models.TaskResponse, error) {
	var relatedBox *models.Box
	if task.RelatedBoxID != nil {
		box, err := s.boxes.FindByID(*task.RelatedBoxID)
		if err != nil {
			return nil, err
		}
		relatedBox = box
	}
	return task.ToResponse(relatedBox), nil
}

// ToResponses maps a task list through ToResponse.
func (s *TaskService) ToResponses(tasks []models.Task) ([]models.TaskResponse, error) {
	responses := make([]models.TaskResponse, len(tasks))
	for i := range tasks {
		resp, err := s.ToResponse(&tasks[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}
	return responses, nil
}

func boxIDs(boxes []models.Box) []uint {
	ids := make([]uint, len(boxes))
	for i, box := range boxes {
		ids[i] = box.ID
	}
	return ids
}
