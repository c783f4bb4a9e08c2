package repositories

import (
	"errors"
	"time"

	"kesher-manager-backend/models"

	"gorm.io/gorm"
)

// GormTransportRepository implements TransportRepository on a Postgres database.
type GormTransportRepository struct {
	DB *gorm.DB
}

func NewGormTransportRepository(db *gorm.DB) *GormTransportRepository {
	return &GormTransportRepository{DB: db}
}

func (r *GormTransportRepository) FindAll() ([]models.Transport, error) {
	var transports []models.Transport
	if err := r.DB.Order("scheduled_date DESC").Find(&transports).Error; err != nil {
		return nil, err
	}
	return transports, nil
}

func (r *GormTransportRepository) FindByID(id uint) (*models.Transport, error) {
	var transport models.Transport
	if err := r.DB.Where("id = ?", id).First(&transport).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transport, nil
}

func (r *GormTransportRepository) Save(transport *models.Transport) error {
	return r.DB.Save(transport).Error
}

func (r *GormTransportRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&models.Transport{}, id).Error
}

func (r *GormTransportRepository) FindByStatus(status models.TransportStatus) ([]models.Transport, error) {
	var transports []models.Transport
	if err := r.DB.Where("status = ?", status).Order("scheduled_date DESC").Find(&transports).Error; err != nil {
		return nil, err
	}
	return transports, nil
}

func (r *GormTransportRepository) FindBySourceBoxIDs(boxIDs []uint) ([]models.Transport, error) {
	var transports []models.Transport
	if len(boxIDs) == 0 {
		return transports, nil
	}
	if err := r.DB.Where("source_box_id IN ?", boxIDs).Order("scheduled_date DESC").Find(&transports).Error; err != nil {
		return nil, err
	}
	return transports, nil
}

func (r *GormTransportRepository) FindByDestinationBoxIDs(boxIDs []uint) ([]models.Transport, error) {
	var transports []models.Transport
	if len(boxIDs) == 0 {
		return transports, nil
	}
	if err := r.DB.Where("destination_box_id IN ?", boxIDs).Order("scheduled_date DESC").Find(&transports).Error; err != nil {
		return nil, err
	}
	return transports, nil
}

func (r *GormTransportRepository) FindByDestinationType(destinationType models.DestinationType) ([]models.Transport, error) {
	var transports []models.Transport
	if err := r.DB.Where("destination_type = ?", destinationType).Order("scheduled_date DESC").Find(&transports).Error; err != nil {
		return nil, err
	}
	return transports, nil
}

func (r *GormTransportRepository) FindByCreatedBy(createdBy string) ([]models.Transport, error) {
	var transports []models.Transport
	if err := r.DB.Where("created_by = ?", createdBy).Order("scheduled_date DESC").Find(&transports).Error; err != nil {
		return nil, err
	}
	return transports, nil
}

func (r *GormTransportRepository) FindByScheduledBetween(start, end time.Time) ([]models.Transport, error) {
	var transports []models.Transport
	if err := r.DB.Where("scheduled_date BETWEEN ? AND ?", start, end).Order("scheduled_date ASC").Find(&transports).Error; err != nil {
		return nil, err
	}
	return transports, nil
}

func (r *GormTransportRepository) FindByScheduledBetweenAndStatus(start, end time.Time, status models.TransportStatus) ([]models.Transport, error) {
	var transports []models.Transport
	if err := r.DB.Where("scheduled_date BETWEEN ? AND ? AND status = ?", start, end, status).Order("scheduled_date ASC").Find(&transports).Error; err != nil {
		return nil, err
	}
	return transports, nil
}

func (r *GormTransportRepository) SearchByDriverName(name string) ([]models.Transport, error) {
	var transports []models.Transport
	if err := r.DB.Where("driver_name ILIKE ?", "%"+name+"%").Order("scheduled_date DESC").Find(&transports).Error; err != nil {
		return nil, err
	}
	return transports, nil
}
