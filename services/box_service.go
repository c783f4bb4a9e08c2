package services

import (
	"strings"
	"time"

	"kesher-manager-backend/models"
	"kesher-manager-backend/repositories"
	"kesher-manager-backend/utils"
)

// BoxService owns box records and their status lifecycle. The transport
// repository is only consulted for the per-box outgoing/incoming listings.
type BoxService struct {
	boxes      repositories.BoxRepository
	transports repositories.TransportRepository
	now        func() time.Time
}

func NewBoxService(boxes repositories.BoxRepository, transports repositories.TransportRepository) *BoxService {
	return &BoxService{
		boxes:      boxes,
		transports: transports,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// AdvancedSearchCriteria holds the optional advanced-search filters.
type AdvancedSearchCriteria struct {
	Address            string
	ResponsiblePerson  string
	AssociationManager string
	DonationGroup      string
	Status             *models.BoxStatus
}

func (s *BoxService) GetAllBoxes() ([]models.Box, error) {
	return s.boxes.FindAll()
}

func (s *BoxService) GetBoxByID(id uint) (*models.Box, error) {
	box, err := s.boxes.FindByID(id)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, &NotFoundError{Entity: "Box", ID: id}
	}
	return box, nil
}

// CreateBox persists a new box. The location name is required; a missing
// status defaults to ACTIVE.
func (s *BoxService) CreateBox(box *models.Box) (*models.Box, error) {
	if strings.TrimSpace(box.LocationName) == "" {
		return nil, &ValidationError{Message: "Location name is required"}
	}
	if box.Status == "" {
		box.Status = models.BoxStatusActive
	}

	now := s.now()
	box.ID = 0
	box.CreatedAt = now
	box.UpdatedAt = now

	if err := s.boxes.Save(box); err != nil {
		return nil, err
	}
	return box, nil
}

// UpdateBox replaces every mutable field of an existing box. Identity and
// createdAt never change.
func (s *BoxService) UpdateBox(id uint, payload *models.Box) (*models.Box, error) {
	box, err := s.GetBoxByID(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(payload.LocationName) == "" {
		return nil, &ValidationError{Message: "Location name is required"}
	}
	if payload.Status == "" {
		payload.Status = box.Status
	}

	box.LocationName = payload.LocationName
	box.Address = payload.Address
	box.City = payload.City
	box.Latitude = payload.Latitude
	box.Longitude = payload.Longitude
	box.ResponsiblePerson = payload.ResponsiblePerson
	box.ResponsiblePersonPhone = payload.ResponsiblePersonPhone
	box.AssociationManager = payload.AssociationManager
	box.DonationGroup = payload.DonationGroup
	box.BoxType = payload.BoxType
	box.DeliveryVolunteer = payload.DeliveryVolunteer
	box.DeliveryVolunteerPhone = payload.DeliveryVolunteerPhone
	box.Notes = payload.Notes
	box.Status = payload.Status
	box.UpdatedAt = s.now()

	if err := s.boxes.Save(box); err != nil {
		return nil, err
	}
	return box, nil
}

func (s *BoxService) DeleteBox(id uint) error {
	if _, err := s.GetBoxByID(id); err != nil {
		return err
	}
	return s.boxes.DeleteByID(id)
}

// UpdateStatus sets the box status and refreshes updatedAt.
func (s *BoxService) UpdateStatus(id uint, newStatus models.BoxStatus) (*models.Box, error) {
	box, err := s.GetBoxByID(id)
	if err != nil {
		return nil, err
	}

	box.Status = newStatus
	box.UpdatedAt = s.now()

	if err := s.boxes.Save(box); err != nil {
		return nil, err
	}
	return box, nil
}

func (s *BoxService) GetBoxesByStatus(status models.BoxStatus) ([]models.Box, error) {
	return s.boxes.FindByStatus(status)
}

func (s *BoxService) GetBoxesByDonationGroup(group string) ([]models.Box, error) {
	return s.boxes.FindByDonationGroup(group)
}

func (s *BoxService) SearchBoxesByLocationName(name string) ([]models.Box, error) {
	return s.boxes.SearchByLocationName(name)
}

func (s *BoxService) SearchBoxesByAddress(address string) ([]models.Box, error) {
	return s.boxes.SearchByAddress(address)
}

func (s *BoxService) SearchBoxesByResponsiblePerson(person string) ([]models.Box, error) {
	return s.boxes.SearchByResponsiblePerson(person)
}

func (s *BoxService) SearchBoxesByAssociationManager(manager string) ([]models.Box, error) {
	return s.boxes.SearchByAssociationManager(manager)
}

// AdvancedSearch applies the first non-empty criterion in a fixed priority
// order: address, responsiblePerson, associationManager, donationGroup,
// status. Only one criterion is ever applied even when several are
// supplied; existing clients depend on this, so it is kept as-is rather
// than combined into an AND.
func (s *BoxService) AdvancedSearch(criteria AdvancedSearchCriteria) ([]models.Box, error) {
	switch {
	case strings.TrimSpace(criteria.Address) != "":
		return s.boxes.SearchByAddress(criteria.Address)
	case strings.TrimSpace(criteria.ResponsiblePerson) != "":
		return s.boxes.SearchByResponsiblePerson(criteria.ResponsiblePerson)
	case strings.TrimSpace(criteria.AssociationManager) != "":
		return s.boxes.SearchByAssociationManager(criteria.AssociationManager)
	case strings.TrimSpace(criteria.DonationGroup) != "":
		return s.boxes.FindByDonationGroup(criteria.DonationGroup)
	case criteria.Status != nil:
		return s.boxes.FindByStatus(*criteria.Status)
	default:
		return s.boxes.FindAll()
	}
}

// GetOutgoingTransports lists the transports leaving the given box.
func (s *BoxService) GetOutgoingTransports(boxID uint) ([]models.Transport, error) {
	if _, err := s.GetBoxByID(boxID); err != nil {
		return nil, err
	}
	return s.transports.FindBySourceBoxIDs([]uint{boxID})
}

// GetIncomingTransports lists the transports arriving at the given box.
func (s *BoxService) GetIncomingTransports(boxID uint) ([]models.Transport, error) {
	if _, err := s.GetBoxByID(boxID); err != nil {
		return nil, err
	}
	return s.transports.FindByDestinationBoxIDs([]uint{boxID})
}

// GetNearbyBoxes lists boxes with coordinates within radiusMeters of the
// given point. Boxes without coordinates are skipped.
func (s *BoxService) GetNearbyBoxes(lat, lon, radiusMeters float64) ([]models.Box, error) {
	boxes, err := s.boxes.FindAll()
	if err != nil {
		return nil, err
	}

	var nearby []models.Box
	for _, box := range boxes {
		if box.Latitude == nil || box.Longitude == nil {
			continue
		}
		if utils.DistanceMeters(lat, lon, *box.Latitude, *box.Longitude) <= radiusMeters {
			nearby = append(nearby, box)
		}
	}
	return nearby, nil
}
