package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kesher-manager-backend/models"
)

func newImportServiceForTest() (*ImportService, *memBoxRepo) {
	boxes := newMemBoxRepo()
	boxService := NewBoxService(boxes, newMemTransportRepo())
	return NewImportService(boxService), boxes
}

func TestImportBoxesContinuesPastBadRecords(t *testing.T) {
	svc, boxes := newImportServiceForTest()

	report := svc.ImportBoxes([]map[string]any{
		{"locationName": "A"},
		{"address": "no name here"},
		{"locationName": "B", "latitude": "bad"},
	})

	assert.Equal(t, 3, report.TotalProcessed)
	require.Len(t, report.SuccessfulImports, 2)
	assert.Equal(t, "A", report.SuccessfulImports[0].LocationName)
	assert.Equal(t, "B", report.SuccessfulImports[1].LocationName)

	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Error importing box at index 1: Location name is required", report.Errors[0])

	// The bad coordinate is dropped without failing the record.
	assert.Len(t, boxes.boxes, 2)
	for _, box := range boxes.all() {
		if box.LocationName == "B" {
			assert.Nil(t, box.Latitude)
		}
	}
}

func TestImportBoxesAssignsBatchID(t *testing.T) {
	svc, _ := newImportServiceForTest()

	first := svc.ImportBoxes([]map[string]any{{"locationName": "A"}})
	second := svc.ImportBoxes([]map[string]any{{"locationName": "B"}})

	assert.NotEmpty(t, first.BatchID)
	assert.NotEmpty(t, second.BatchID)
	assert.NotEqual(t, first.BatchID, second.BatchID)
}

func TestImportBoxesCoercesStatusLabels(t *testing.T) {
	svc, boxes := newImportServiceForTest()

	report := svc.ImportBoxes([]map[string]any{
		{"locationName": "Maintained", "status": "maintenance"},
		{"locationName": "Unknown", "status": "bogus"},
		{"locationName": "Missing"},
	})
	require.Empty(t, report.Errors)

	byName := map[string]models.BoxStatus{}
	for _, box := range boxes.all() {
		byName[box.LocationName] = box.Status
	}
	assert.Equal(t, models.BoxStatusMaintenance, byName["Maintained"])
	assert.Equal(t, models.BoxStatusActive, byName["Unknown"])
	assert.Equal(t, models.BoxStatusActive, byName["Missing"])
}

func TestImportBoxesParsesCoordinateForms(t *testing.T) {
	svc, boxes := newImportServiceForTest()

	report := svc.ImportBoxes([]map[string]any{
		{"locationName": "Numeric", "latitude": 31.778, "longitude": 35.2354},
		{"locationName": "Stringly", "latitude": "31.778", "longitude": "35.2354"},
	})
	require.Empty(t, report.Errors)

	for _, box := range boxes.all() {
		require.NotNil(t, box.Latitude, box.LocationName)
		require.NotNil(t, box.Longitude, box.LocationName)
		assert.InDelta(t, 31.778, *box.Latitude, 1e-9)
		assert.InDelta(t, 35.2354, *box.Longitude, 1e-9)
	}
}

func TestImportBoxesCopiesOptionalFields(t *testing.T) {
	svc, boxes := newImportServiceForTest()

	report := svc.ImportBoxes([]map[string]any{{
		"locationName":       "Cohen Family",
		"address":            "Herzl 12",
		"city":               "Jerusalem",
		"responsiblePerson":  "Yossi Cohen",
		"associationManager": "Rina Levi",
		"donationGroup":      "North Group",
		"notes":              "Ring twice",
	}})
	require.Empty(t, report.Errors)
	require.Len(t, boxes.boxes, 1)

	box := boxes.all()[0]
	assert.Equal(t, "Herzl 12", box.Address)
	assert.Equal(t, "Jerusalem", box.City)
	assert.Equal(t, "Yossi Cohen", box.ResponsiblePerson)
	assert.Equal(t, "Rina Levi", box.AssociationManager)
	assert.Equal(t, "North Group", box.DonationGroup)
	assert.Equal(t, "Ring twice", box.Notes)
}

func TestImportBoxesEmptyBatch(t *testing.T) {
	svc, _ := newImportServiceForTest()

	report := svc.ImportBoxes([]map[string]any{})
	assert.Equal(t, 0, report.TotalProcessed)
	assert.Empty(t, report.SuccessfulImports)
	assert.Empty(t, report.Errors)
}

func TestImportBoxesJSONParsesPayload(t *testing.T) {
	svc, boxes := newImportServiceForTest()

	payload := []byte(`[{"locationName": "A"}, {"locationName": "B", "latitude": "31.778"}]`)
	report, err := svc.ImportBoxesJSON(payload)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalProcessed)
	assert.Len(t, report.SuccessfulImports, 2)
	assert.Len(t, boxes.boxes, 2)
}

func TestImportBoxesJSONRejectsNonArrayPayload(t *testing.T) {
	svc, boxes := newImportServiceForTest()

	for _, payload := range []string{`{"locationName": "A"}`, `not json`, ``} {
		report, err := svc.ImportBoxesJSON([]byte(payload))
		require.Error(t, err, payload)
		assert.Nil(t, report, payload)
	}
	assert.Empty(t, boxes.boxes)
}
