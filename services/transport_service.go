package services

import (
	"time"

	"kesher-manager-backend/models"
	"kesher-manager-backend/repositories"
	"kesher-manager-backend/utils"
)

// TransportService owns transport records, their status lifecycle and the
// referential-integrity rules against the box registry.
type TransportService struct {
	transports repositories.TransportRepository
	boxes      repositories.BoxRepository
	loc        *time.Location
	now        func() time.Time
}

func NewTransportService(transports repositories.TransportRepository, boxes repositories.BoxRepository, loc *time.Location) *TransportService {
	return &TransportService{
		transports: transports,
		boxes:      boxes,
		loc:        loc,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// validateReferences checks the source box and, for BOX destinations, the
// destination box. For non-BOX destinations the box reference is dropped in
// favor of the external id and display name.
func (s *TransportService) validateReferences(transport *models.Transport) error {
	source, err := s.boxes.FindByID(transport.SourceBoxID)
	if err != nil {
		return err
	}
	if source == nil {
		return &InvalidReferenceError{Entity: "source Box", ID: transport.SourceBoxID}
	}

	if transport.DestinationType == models.DestinationBox {
		if transport.DestinationBoxID == nil {
			return &ValidationError{Message: "Destination box is required when destination type is BOX"}
		}
		destination, err := s.boxes.FindByID(*transport.DestinationBoxID)
		if err != nil {
			return err
		}
		if destination == nil {
			return &InvalidReferenceError{Entity: "destination Box", ID: *transport.DestinationBoxID}
		}
	} else {
		transport.DestinationBoxID = nil
	}
	return nil
}

func (s *TransportService) GetAllTransports() ([]models.Transport, error) {
	return s.transports.FindAll()
}

func (s *TransportService) GetTransportByID(id uint) (*models.Transport, error) {
	transport, err := s.transports.FindByID(id)
	if err != nil {
		return nil, err
	}
	if transport == nil {
		return nil, &NotFoundError{Entity: "Transport", ID: id}
	}
	return transport, nil
}

// CreateTransport validates the box references and persists a new
// transport. A missing status defaults to PLANNED.
func (s *TransportService) CreateTransport(transport *models.Transport) (*models.Transport, error) {
	if transport.DestinationType == "" {
		return nil, &ValidationError{Message: "Destination type must be defined"}
	}
	if err := s.validateReferences(transport); err != nil {
		return nil, err
	}
	if transport.Status == "" {
		transport.Status = models.TransportStatusPlanned
	}

	now := s.now()
	transport.ID = 0
	transport.CreatedAt = now
	transport.UpdatedAt = now

	if err := s.transports.Save(transport); err != nil {
		return nil, err
	}
	return transport, nil
}

// UpdateTransport replaces the mutable fields of an existing transport
// after re-validating the box references.
func (s *TransportService) UpdateTransport(id uint, payload *models.Transport) (*models.Transport, error) {
	transport, err := s.GetTransportByID(id)
	if err != nil {
		return nil, err
	}
	if payload.DestinationType == "" {
		return nil, &ValidationError{Message: "Destination type must be defined"}
	}
	if err := s.validateReferences(payload); err != nil {
		return nil, err
	}
	if payload.Status == "" {
		payload.Status = transport.Status
	}

	transport.SourceBoxID = payload.SourceBoxID
	transport.DestinationType = payload.DestinationType
	transport.DestinationBoxID = payload.DestinationBoxID
	transport.DestinationID = payload.DestinationID
	transport.DestinationName = payload.DestinationName
	transport.Quantity = payload.Quantity
	transport.ScheduledDate = payload.ScheduledDate
	transport.CompletionDate = payload.CompletionDate
	transport.Status = payload.Status
	transport.DriverName = payload.DriverName
	transport.DriverPhone = payload.DriverPhone
	transport.Notes = payload.Notes
	transport.CreatedBy = payload.CreatedBy
	transport.UpdatedAt = s.now()

	if err := s.transports.Save(transport); err != nil {
		return nil, err
	}
	return transport, nil
}

func (s *TransportService) DeleteTransport(id uint) error {
	if _, err := s.GetTransportByID(id); err != nil {
		return err
	}
	return s.transports.DeleteByID(id)
}

// UpdateStatus sets the transport status. The completion date is stamped as
// a side effect only on the transition into COMPLETED and only when it is
// not already set.
func (s *TransportService) UpdateStatus(id uint, newStatus models.TransportStatus) (*models.Transport, error) {
	transport, err := s.GetTransportByID(id)
	if err != nil {
		return nil, err
	}

	transport.Status = newStatus
	transport.UpdatedAt = s.now()

	if newStatus == models.TransportStatusCompleted && transport.CompletionDate == nil {
		completed := s.now()
		transport.CompletionDate = &completed
	}

	if err := s.transports.Save(transport); err != nil {
		return nil, err
	}
	return transport, nil
}

// CompleteTransport marks the transport COMPLETED and sets the completion
// date to the supplied instant, or now when absent. Unlike UpdateStatus
// this always overwrites a previously set completion date.
func (s *TransportService) CompleteTransport(id uint, completionDate *time.Time) (*models.Transport, error) {
	transport, err := s.GetTransportByID(id)
	if err != nil {
		return nil, err
	}

	completed := s.now()
	if completionDate != nil {
		completed = *completionDate
	}

	transport.Status = models.TransportStatusCompleted
	transport.CompletionDate = &completed
	transport.UpdatedAt = s.now()

	if err := s.transports.Save(transport); err != nil {
		return nil, err
	}
	return transport, nil
}

func (s *TransportService) GetTransportsByStatus(status models.TransportStatus) ([]models.Transport, error) {
	return s.transports.FindByStatus(status)
}

func (s *TransportService) GetTransportsByDestinationType(destinationType models.DestinationType) ([]models.Transport, error) {
	return s.transports.FindByDestinationType(destinationType)
}

func (s *TransportService) GetTransportsByCreatedBy(createdBy string) ([]models.Transport, error) {
	return s.transports.FindByCreatedBy(createdBy)
}

func (s *TransportService) SearchTransportsByDriverName(name string) ([]models.Transport, error) {
	return s.transports.SearchByDriverName(name)
}

// GetTransportsByDateRange lists transports scheduled within the inclusive
// calendar-date range, resolved to local day boundaries.
func (s *TransportService) GetTransportsByDateRange(startDate, endDate time.Time) ([]models.Transport, error) {
	start := utils.StartOfDay(startDate, s.loc)
	end := utils.EndOfDay(endDate, s.loc)
	return s.transports.FindByScheduledBetween(start, end)
}

// GetTodayTransports lists transports scheduled today in the local
// timezone. With no status filter the union of PLANNED and IN_PROGRESS
// transports is returned.
func (s *TransportService) GetTodayTransports(status *models.TransportStatus) ([]models.Transport, error) {
	today := s.now()
	start := utils.StartOfDay(today, s.loc)
	end := utils.EndOfDay(today, s.loc)

	if status != nil {
		return s.transports.FindByScheduledBetweenAndStatus(start, end, *status)
	}

	planned, err := s.transports.FindByScheduledBetweenAndStatus(start, end, models.TransportStatusPlanned)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.transports.FindByScheduledBetweenAndStatus(start, end, models.TransportStatusInProgress)
	if err != nil {
		return nil, err
	}
	return append(planned, inProgress...), nil
}

// GetTransportsBySourceDonationGroup lists transports whose source box
// belongs to the given donation group. The group resolves to box ids first;
// no box data is denormalized into transport rows.
func (s *TransportService) GetTransportsBySourceDonationGroup(group string) ([]models.Transport, error) {
	boxIDs, err := s.boxIDsForDonationGroup(group)
	if err != nil {
		return nil, err
	}
	return s.transports.FindBySourceBoxIDs(boxIDs)
}

// GetTransportsByDestinationDonationGroup is the destination-side
// counterpart of GetTransportsBySourceDonationGroup.
func (s *TransportService) GetTransportsByDestinationDonationGroup(group string) ([]models.Transport, error) {
	boxIDs, err := s.boxIDsForDonationGroup(group)
	if err != nil {
		return nil, err
	}
	return s.transports.FindByDestinationBoxIDs(boxIDs)
}

func (s *TransportService) boxIDsForDonationGroup(group string) ([]uint, error) {
	boxes, err := s.boxes.FindByDonationGroup(group)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(boxes))
	for i, box := range boxes {
		ids[i] = box.ID
	}
	return ids, nil
}
