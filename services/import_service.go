package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"kesher-manager-backend/models"

	"github.com/google/uuid"
)

// ImportService ingests loosely-typed box descriptors in bulk. Each
// descriptor is processed independently: a bad record is reported under its
// index and never aborts the rest of the batch.
type ImportService struct {
	boxes *BoxService
}

func NewImportService(boxes *BoxService) *ImportService {
	return &ImportService{boxes: boxes}
}

// ImportReport itemizes the outcome of one bulk import.
type ImportReport struct {
	BatchID           string               `json:"batchId"`
	TotalProcessed    int                  `json:"totalProcessed"`
	SuccessfulImports []models.BoxResponse `json:"successfulImports"`
	Errors            []string             `json:"errors"`
}

// ImportBoxes coerces and persists each descriptor through the registry's
// create path. Unknown status labels default to ACTIVE and unparseable
// coordinates are dropped; only a missing location name fails a record.
func (s *ImportService) ImportBoxes(descriptors []map[string]any) *ImportReport {
	report := &ImportReport{
		BatchID:           uuid.NewString(),
		TotalProcessed:    len(descriptors),
		SuccessfulImports: []models.BoxResponse{},
		Errors:            []string{},
	}

	for i, descriptor := range descriptors {
		box, err := coerceBoxDescriptor(descriptor)
		if err == nil {
			_, err = s.boxes.CreateBox(box)
		}
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Error importing box at index %d: %s", i, err.Error()))
			continue
		}
		report.SuccessfulImports = append(report.SuccessfulImports, *box.ToResponse())
	}

	return report
}

// ImportBoxesJSON parses a raw JSON payload and feeds it through
// ImportBoxes. The payload as a whole must be a JSON array; anything else is
// malformed input and never reaches the pipeline.
func (s *ImportService) ImportBoxesJSON(payload []byte) (*ImportReport, error) {
	var descriptors []map[string]any
	if err := json.Unmarshal(payload, &descriptors); err != nil {
		return nil, err
	}
	return s.ImportBoxes(descriptors), nil
}

func coerceBoxDescriptor(descriptor map[string]any) (*models.Box, error) {
	box := &models.Box{}

	locationName, ok := stringField(descriptor, "locationName")
	if !ok || locationName == "" {
		return nil, &ValidationError{Message: "Location name is required"}
	}
	box.LocationName = locationName

	if v, ok := stringField(descriptor, "address"); ok {
		box.Address = v
	}
	if v, ok := stringField(descriptor, "city"); ok {
		box.City = v
	}
	if v, ok := stringField(descriptor, "responsiblePerson"); ok {
		box.ResponsiblePerson = v
	}
	if v, ok := stringField(descriptor, "responsiblePersonPhone"); ok {
		box.ResponsiblePersonPhone = v
	}
	if v, ok := stringField(descriptor, "associationManager"); ok {
		box.AssociationManager = v
	}
	if v, ok := stringField(descriptor, "donationGroup"); ok {
		box.DonationGroup = v
	}
	if v, ok := stringField(descriptor, "notes"); ok {
		box.Notes = v
	}

	// Unknown or missing status labels fall back to ACTIVE.
	box.Status = models.BoxStatusActive
	if v, ok := stringField(descriptor, "status"); ok {
		if status, valid := models.ParseBoxStatus(v); valid {
			box.Status = status
		}
	}

	box.Latitude = floatField(descriptor, "latitude")
	box.Longitude = floatField(descriptor, "longitude")

	return box, nil
}

func stringField(descriptor map[string]any, key string) (string, bool) {
	raw, ok := descriptor[key]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

// floatField accepts a numeric value directly or a string parsed as a
// float. Anything else is silently dropped; a bad coordinate never fails
// the record.
func floatField(descriptor map[string]any, key string) *float64 {
	raw, ok := descriptor[key]
	if !ok || raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
	}
	return nil
}
