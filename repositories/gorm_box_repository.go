package repositories

import (
	"errors"

	"kesher-manager-backend/models"

	"gorm.io/gorm"
)

// GormBoxRepository implements BoxRepository on a Postgres database.
type GormBoxRepository struct {
	DB *gorm.DB
}

func NewGormBoxRepository(db *gorm.DB) *GormBoxRepository {
	return &GormBoxRepository{DB: db}
}

func (r *GormBoxRepository) FindAll() ([]models.Box, error) {
	var boxes []models.Box
	if err := r.DB.Order("created_at DESC").Find(&boxes).Error; err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *GormBoxRepository) FindByID(id uint) (*models.Box, error) {
	var box models.Box
	if err := r.DB.Where("id = ?", id).First(&box).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &box, nil
}

func (r *GormBoxRepository) Save(box *models.Box) error {
	return r.DB.Save(box).Error
}

func (r *GormBoxRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&models.Box{}, id).Error
}

func (r *GormBoxRepository) FindByStatus(status models.BoxStatus) ([]models.Box, error) {
	var boxes []models.Box
	if err := r.DB.Where("status = ?", status).Order("created_at DESC").Find(&boxes).Error; err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *GormBoxRepository) FindByDonationGroup(group string) ([]models.Box, error) {
	var boxes []models.Box
	if err := r.DB.Where("donation_group = ?", group).Order("created_at DESC").Find(&boxes).Error; err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *GormBoxRepository) searchField(field, term string) ([]models.Box, error) {
	var boxes []models.Box
	if err := r.DB.Where(field+" ILIKE ?", "%"+term+"%").Order("created_at DESC").Find(&boxes).Error; err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *GormBoxRepository) SearchByLocationName(name string) ([]models.Box, error) {
	return r.searchField("location_name", name)
}

func (r *GormBoxRepository) SearchByAddress(address string) ([]models.Box, error) {
	return r.searchField("address", address)
}

func (r *GormBoxRepository) SearchByResponsiblePerson(person string) ([]models.Box, error) {
	return r.searchField("responsible_person", person)
}

func (r *GormBoxRepository) SearchByAssociationManager(manager string) ([]models.Box, error) {
	return r.searchField("association_manager", manager)
}
