package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kesher-manager-backend/models"
)

// Tests run in a fixed UTC+2 zone so the local-day logic is exercised
// without depending on the host's tz database.
var testLocation = time.FixedZone("UTC+2", 2*60*60)

func newTransportServiceForTest() (*TransportService, *memBoxRepo, *memTransportRepo) {
	boxes := newMemBoxRepo()
	transports := newMemTransportRepo()
	return NewTransportService(transports, boxes, testLocation), boxes, transports
}

func seedBox(t *testing.T, boxes *memBoxRepo, name string) *models.Box {
	t.Helper()
	box := &models.Box{LocationName: name, Status: models.BoxStatusActive}
	require.NoError(t, boxes.Save(box))
	return box
}

func TestCreateTransportRequiresDestinationType(t *testing.T) {
	svc, boxes, _ := newTransportServiceForTest()
	source := seedBox(t, boxes, "Source")

	_, err := svc.CreateTransport(&models.Transport{SourceBoxID: source.ID})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "Destination type must be defined")
}

func TestCreateTransportUnknownSourceBoxFails(t *testing.T) {
	svc, _, transports := newTransportServiceForTest()

	_, err := svc.CreateTransport(&models.Transport{
		SourceBoxID:     404,
		DestinationType: models.DestinationStore,
	})
	require.Error(t, err)
	assert.True(t, IsInvalidReference(err))
	assert.Empty(t, transports.transports)
}

func TestCreateTransportBoxDestinationRequiresDestinationBox(t *testing.T) {
	svc, boxes, _ := newTransportServiceForTest()
	source := seedBox(t, boxes, "Source")

	_, err := svc.CreateTransport(&models.Transport{
		SourceBoxID:     source.ID,
		DestinationType: models.DestinationBox,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "Destination box is required when destination type is BOX")
}

func TestCreateTransportBoxDestinationMustResolve(t *testing.T) {
	svc, boxes, _ := newTransportServiceForTest()
	source := seedBox(t, boxes, "Source")
	missing := uint(404)

	_, err := svc.CreateTransport(&models.Transport{
		SourceBoxID:      source.ID,
		DestinationType:  models.DestinationBox,
		DestinationBoxID: &missing,
	})
	require.Error(t, err)
	assert.True(t, IsInvalidReference(err))
}

func TestCreateTransportNonBoxDestinationClearsDestinationBox(t *testing.T) {
	svc, boxes, _ := newTransportServiceForTest()
	source := seedBox(t, boxes, "Source")
	stray := seedBox(t, boxes, "Stray")

	transport, err := svc.CreateTransport(&models.Transport{
		SourceBoxID:      source.ID,
		DestinationType:  models.DestinationFamily,
		DestinationBoxID: &stray.ID,
		DestinationName:  "Mizrahi Family",
	})
	require.NoError(t, err)
	assert.Nil(t, transport.DestinationBoxID)
	assert.Equal(t, models.TransportStatusPlanned, transport.Status)
}

func TestUpdateStatusStampsCompletionDateOnce(t *testing.T) {
	svc, boxes, _ := newTransportServiceForTest()
	source := seedBox(t, boxes, "Source")

	transport, err := svc.CreateTransport(&models.Transport{
		SourceBoxID:     source.ID,
		DestinationType: models.DestinationStore,
	})
	require.NoError(t, err)

	first := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	svc.now = fixedClock(first)

	completed, err := svc.UpdateStatus(transport.ID, models.TransportStatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletionDate)
	assert.Equal(t, first, *completed.CompletionDate)

	// Completing again later keeps the original completion date.
	svc.now = fixedClock(first.Add(time.Hour))
	again, err := svc.UpdateStatus(transport.ID, models.TransportStatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, again.CompletionDate)
	assert.Equal(t, first, *again.CompletionDate)
	assert.Equal(t, first.Add(time.Hour), again.UpdatedAt)
}

func TestUpdateStatusNonCompletedLeavesCompletionDateNil(t *testing.T) {
	svc, boxes, _ := newTransportServiceForTest()
	source := seedBox(t, boxes, "Source")

	transport, err := svc.CreateTransport(&models.Transport{
		SourceBoxID:     source.ID,
		DestinationType: models.DestinationStore,
	})
	require.NoError(t, err)

	result, err := svc.UpdateStatus(transport.ID, models.TransportStatusInProgress)
	require.NoError(t, err)
	assert.Nil(t, result.CompletionDate)
}

func TestCompleteTransportOverwritesCompletionDate(t *testing.T) {
	svc, boxes, _ := newTransportServiceForTest()
	source := seedBox(t, boxes, "Source")

	transport, err := svc.CreateTransport(&models.Transport{
		SourceBoxID:     source.ID,
		DestinationType: models.DestinationStore,
	})
	require.NoError(t, err)

	first := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	svc.now = fixedClock(first)
	_, err = svc.UpdateStatus(transport.ID, models.TransportStatusCompleted)
	require.NoError(t, err)

	corrected := time.Date(2026, 3, 9, 18, 30, 0, 0, time.UTC)
	result, err := svc.CompleteTransport(transport.ID, &corrected)
	require.NoError(t, err)
	require.NotNil(t, result.CompletionDate)
	assert.Equal(t, corrected, *result.CompletionDate)
	assert.Equal(t, models.TransportStatusCompleted, result.Status)
}

func TestCompleteTransportDefaultsToNow(t *testing.T) {
	svc, boxes, _ := newTransportServiceForTest()
	source := seedBox(t, boxes, "Source")

	transport, err := svc.CreateTransport(&models.Transport{
		SourceBoxID:     source.ID,
		DestinationType: models.DestinationStore,
	})
	require.NoError(t, err)

	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	result, err := svc.CompleteTransport(transport.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, result.CompletionDate)
	assert.Equal(t, now, *result.CompletionDate)
}

func TestGetTodayTransportsUsesLocalDayBoundaries(t *testing.T) {
	svc, boxes, _ := newTransportServiceForTest()
	source := seedBox(t, boxes, "Source")

	// 2026-03-10 in UTC+2 runs from 09 Mar 22:00 UTC to 10 Mar 21:59:59.999 UTC.
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	lateEvening := time.Date(2026, 3, 10, 21, 59, 59, 999_000_000, time.UTC)
	_, err := svc.CreateTransport(&models.Transport{
		SourceBoxID:     source.ID,
		DestinationType: models.DestinationStore,
		DestinationName: "Evening",
		ScheduledDate:   lateEvening,
	})
	require.NoError(t, err)

	// One millisecond later is already tomorrow in local time.
	_, err = svc.CreateTransport(&models.Transport{
		SourceBoxID:     source.ID,
		DestinationType: models.DestinationStore,
		DestinationName: "Tomorrow",
		ScheduledDate:   lateEvening.Add(time.Millisecond),
	})
	require.NoError(t, err)

	today, err := svc.GetTodayTransports(nil)
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, "Evening", today[0].DestinationName)
}

func TestGetTodayTransportsDefaultsToPlannedAndInProgress(t *testing.T) {
	svc, boxes, _ := newTransportServiceForTest()
	source := seedBox(t, boxes, "Source")

	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	for _, status := range []models.TransportStatus{
		models.TransportStatusPlanned,
		models.TransportStatusInProgress,
		models.TransportStatusCompleted,
		models.TransportStatusCancelled,
	} {
		_, err := svc.CreateTransport(&models.Transport{
			SourceBoxID:     source.ID,
			DestinationType: models.DestinationStore,
			DestinationName: string(status),
			ScheduledDate:   now,
			Status:          status,
		})
		require.NoError(t, err)
	}

	today, err := svc.GetTodayTransports(nil)
	require.NoError(t, err)
	require.Len(t, today, 2)
	names := []string{today[0].DestinationName, today[1].DestinationName}
	assert.Contains(t, names, "PLANNED")
	assert.Contains(t, names, "IN_PROGRESS")

	completed := models.TransportStatusCompleted
	filtered, err := svc.GetTodayTransports(&completed)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "COMPLETED", filtered[0].DestinationName)
}

func TestGetTransportsByDateRangeIsInclusive(t *testing.T) {
	svc, boxes, _ := newTransportServiceForTest()
	source := seedBox(t, boxes, "Source")

	schedule := func(name string, scheduled time.Time) {
		_, err := svc.CreateTransport(&models.Transport{
			SourceBoxID:     source.ID,
			DestinationType: models.DestinationStore,
			DestinationName: name,
			ScheduledDate:   scheduled,
		})
		require.NoError(t, err)
	}

	schedule("BeforeRange", time.Date(2026, 3, 9, 12, 0, 0, 0, testLocation))
	schedule("FirstDay", time.Date(2026, 3, 10, 0, 0, 0, 0, testLocation))
	schedule("LastDay", time.Date(2026, 3, 12, 23, 59, 59, 999_000_000, testLocation))
	schedule("AfterRange", time.Date(2026, 3, 13, 0, 0, 0, 0, testLocation))

	results, err := svc.GetTransportsByDateRange(
		time.Date(2026, 3, 10, 15, 30, 0, 0, testLocation),
		time.Date(2026, 3, 12, 8, 0, 0, 0, testLocation),
	)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "FirstDay", results[0].DestinationName)
	assert.Equal(t, "LastDay", results[1].DestinationName)
}

func TestGetTransportsBySourceDonationGroup(t *testing.T) {
	svc, boxes, _ := newTransportServiceForTest()

	north := &models.Box{LocationName: "North", DonationGroup: "North Group"}
	require.NoError(t, boxes.Save(north))
	south := &models.Box{LocationName: "South", DonationGroup: "South Group"}
	require.NoError(t, boxes.Save(south))

	_, err := svc.CreateTransport(&models.Transport{
		SourceBoxID:     north.ID,
		DestinationType: models.DestinationStore,
		DestinationName: "FromNorth",
	})
	require.NoError(t, err)
	_, err = svc.CreateTransport(&models.Transport{
		SourceBoxID:     south.ID,
		DestinationType: models.DestinationStore,
		DestinationName: "FromSouth",
	})
	require.NoError(t, err)

	results, err := svc.GetTransportsBySourceDonationGroup("North Group")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "FromNorth", results[0].DestinationName)

	empty, err := svc.GetTransportsBySourceDonationGroup("No Such Group")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeleteTransportUnknownIDReturnsNotFound(t *testing.T) {
	svc, _, _ := newTransportServiceForTest()

	err := svc.DeleteTransport(404)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGetTransportsByDateRangeAnchoredBehindUTC(t *testing.T) {
	utcMinus5 := time.FixedZone("UTC-5", -5*60*60)
	boxes := newMemBoxRepo()
	transports := newMemTransportRepo()
	svc := NewTransportService(transports, boxes, utcMinus5)
	source := seedBox(t, boxes, "Source")

	// 20:00 on 10 Mar in UTC-5 is already 01:00 on 11 Mar in UTC.
	_, err := svc.CreateTransport(&models.Transport{
		SourceBoxID:     source.ID,
		DestinationType: models.DestinationStore,
		DestinationName: "Evening",
		ScheduledDate:   time.Date(2026, 3, 10, 20, 0, 0, 0, utcMinus5),
	})
	require.NoError(t, err)

	// A single-day range for 10 Mar must be anchored to local midnight.
	// Anchored to UTC midnight instead, the window covers 9 Mar locally
	// and misses the evening transport.
	day, err := time.ParseInLocation("2006-01-02", "2026-03-10", utcMinus5)
	require.NoError(t, err)

	results, err := svc.GetTransportsByDateRange(day, day)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Evening", results[0].DestinationName)

	shifted, err := svc.GetTransportsByDateRange(
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Empty(t, shifted)
}
