package repositories

import (
	"errors"
	"time"

	"kesher-manager-backend/models"

	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository on a Postgres database.
type GormTaskRepository struct {
	DB *gorm.DB
}

func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{DB: db}
}

func (r *GormTaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.DB.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := r.DB.Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.DB.Save(task).Error
}

func (r *GormTaskRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&models.Task{}, id).Error
}

func (r *GormTaskRepository) FindByStatus(status models.TaskStatus) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.DB.Where("status = ?", status).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByPriority(priority models.TaskPriority) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.DB.Where("priority = ?", priority).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByType(taskType models.TaskType) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.DB.Where("task_type = ?", taskType).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByRelatedBoxID(boxID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.DB.Where("related_box_id = ?", boxID).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByRelatedBoxIDs(boxIDs []uint) ([]models.Task, error) {
	var tasks []models.Task
	if len(boxIDs) == 0 {
		return tasks, nil
	}
	if err := r.DB.Where("related_box_id IN ?", boxIDs).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByRelatedTransportID(transportID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.DB.Where("related_transport_id = ?", transportID).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) SearchByAssignedTo(assignee string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.DB.Where("assigned_to ILIKE ?", "%"+assignee+"%").Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByCategory(category string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.DB.Where("task_category = ?", category).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByDueBeforeAndStatusNot(cutoff time.Time, excluded models.TaskStatus) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.DB.Where("due_date IS NOT NULL AND due_date < ? AND status <> ?", cutoff, excluded).Order("due_date ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByDueBetween(start, end time.Time) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.DB.Where("due_date BETWEEN ? AND ?", start, end).Order("due_date ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
