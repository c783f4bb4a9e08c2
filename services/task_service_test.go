package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kesher-manager-backend/models"
)

func newTaskServiceForTest() (*TaskService, *memBoxRepo, *memTransportRepo, *memTaskRepo) {
	boxes := newMemBoxRepo()
	transports := newMemTransportRepo()
	tasks := newMemTaskRepo()
	return NewTaskService(tasks, boxes, transports, testLocation), boxes, transports, tasks
}

func timePtr(t time.Time) *time.Time { return &t }

func TestCreateTaskRequiresDescription(t *testing.T) {
	svc, _, _, tasks := newTaskServiceForTest()

	_, err := svc.CreateTask(&models.Task{TaskType: models.TaskTypeCollection})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "Description is required")
	assert.Empty(t, tasks.tasks)
}

func TestCreateTaskDefaultsStatusToPending(t *testing.T) {
	svc, _, _, _ := newTaskServiceForTest()

	task, err := svc.CreateTask(&models.Task{
		TaskType:    models.TaskTypeCollection,
		Description: "Empty the box",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPending, task.Status)
	assert.NotZero(t, task.ID)
}

func TestCreateTaskUnknownRelatedBoxFailsWithoutWrite(t *testing.T) {
	svc, _, _, tasks := newTaskServiceForTest()
	missing := uint(404)

	_, err := svc.CreateTask(&models.Task{
		TaskType:     models.TaskTypeCollection,
		Description:  "Empty the box",
		RelatedBoxID: &missing,
	})
	require.Error(t, err)
	assert.True(t, IsInvalidReference(err))
	assert.Empty(t, tasks.tasks)
}

func TestCreateTaskUnknownRelatedTransportFails(t *testing.T) {
	svc, _, _, _ := newTaskServiceForTest()
	missing := uint(404)

	_, err := svc.CreateTask(&models.Task{
		TaskType:           models.TaskTypeTransport,
		Description:        "Escort the delivery",
		RelatedTransportID: &missing,
	})
	require.Error(t, err)
	assert.True(t, IsInvalidReference(err))
}

func TestCreateTaskWithResolvableReferences(t *testing.T) {
	svc, boxes, transports, _ := newTaskServiceForTest()

	box := &models.Box{LocationName: "Cohen Family"}
	require.NoError(t, boxes.Save(box))
	transport := &models.Transport{SourceBoxID: box.ID, DestinationType: models.DestinationStore}
	require.NoError(t, transports.Save(transport))

	task, err := svc.CreateTask(&models.Task{
		TaskType:           models.TaskTypeTransport,
		Description:        "Escort the delivery",
		RelatedBoxID:       &box.ID,
		RelatedTransportID: &transport.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, task.RelatedBoxID)
	assert.Equal(t, box.ID, *task.RelatedBoxID)
}

func TestUpdateStatusRefreshesTaskUpdatedAt(t *testing.T) {
	svc, _, _, _ := newTaskServiceForTest()
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = fixedClock(created)

	task, err := svc.CreateTask(&models.Task{
		TaskType:    models.TaskTypeMaintenance,
		Description: "Fix the lock",
	})
	require.NoError(t, err)

	later := created.Add(45 * time.Minute)
	svc.now = fixedClock(later)

	result, err := svc.UpdateStatus(task.ID, models.TaskStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusInProgress, result.Status)
	assert.Equal(t, created, result.CreatedAt)
	assert.Equal(t, later, result.UpdatedAt)
}

func TestAssignTaskSetsAssignee(t *testing.T) {
	svc, _, _, _ := newTaskServiceForTest()

	task, err := svc.CreateTask(&models.Task{
		TaskType:    models.TaskTypeCollection,
		Description: "Empty the box",
	})
	require.NoError(t, err)

	result, err := svc.AssignTask(task.ID, "Dana")
	require.NoError(t, err)
	assert.Equal(t, "Dana", result.AssignedTo)
}

func TestAssignTaskUnknownIDReturnsNotFound(t *testing.T) {
	svc, _, _, _ := newTaskServiceForTest()

	_, err := svc.AssignTask(404, "Dana")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGetOverdueTasksIncludesCancelledExcludesCompleted(t *testing.T) {
	svc, _, _, tasks := newTaskServiceForTest()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)
	yesterday := now.AddDate(0, 0, -1)

	seed := func(description string, due *time.Time, status models.TaskStatus) {
		require.NoError(t, tasks.Save(&models.Task{
			TaskType:    models.TaskTypeOther,
			Description: description,
			DueDate:     due,
			Status:      status,
		}))
	}

	seed("PendingOverdue", timePtr(yesterday), models.TaskStatusPending)
	seed("CancelledOverdue", timePtr(yesterday), models.TaskStatusCancelled)
	seed("CompletedOverdue", timePtr(yesterday), models.TaskStatusCompleted)
	seed("FutureDue", timePtr(now.AddDate(0, 0, 1)), models.TaskStatusPending)
	seed("NoDueDate", nil, models.TaskStatusPending)

	overdue, err := svc.GetOverdueTasks()
	require.NoError(t, err)
	require.Len(t, overdue, 2)
	descriptions := []string{overdue[0].Description, overdue[1].Description}
	assert.Contains(t, descriptions, "PendingOverdue")
	assert.Contains(t, descriptions, "CancelledOverdue")
}

func TestGetTasksDueTodayUsesLocalDayBoundaries(t *testing.T) {
	svc, _, _, tasks := newTaskServiceForTest()

	// 2026-03-10 in UTC+2 ends at 10 Mar 21:59:59.999 UTC.
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)
	endOfDay := time.Date(2026, 3, 10, 21, 59, 59, 999_000_000, time.UTC)

	require.NoError(t, tasks.Save(&models.Task{
		TaskType:    models.TaskTypeCollection,
		Description: "DueTonight",
		DueDate:     timePtr(endOfDay),
		Status:      models.TaskStatusPending,
	}))
	require.NoError(t, tasks.Save(&models.Task{
		TaskType:    models.TaskTypeCollection,
		Description: "DueTomorrow",
		DueDate:     timePtr(endOfDay.Add(time.Millisecond)),
		Status:      models.TaskStatusPending,
	}))

	due, err := svc.GetTasksDueToday()
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "DueTonight", due[0].Description)
}

func TestGetTasksByDonationGroup(t *testing.T) {
	svc, boxes, _, tasks := newTaskServiceForTest()

	north := &models.Box{LocationName: "North", DonationGroup: "North Group"}
	require.NoError(t, boxes.Save(north))
	south := &models.Box{LocationName: "South", DonationGroup: "South Group"}
	require.NoError(t, boxes.Save(south))

	require.NoError(t, tasks.Save(&models.Task{
		TaskType:     models.TaskTypeCollection,
		Description:  "NorthTask",
		RelatedBoxID: &north.ID,
	}))
	require.NoError(t, tasks.Save(&models.Task{
		TaskType:     models.TaskTypeCollection,
		Description:  "SouthTask",
		RelatedBoxID: &south.ID,
	}))
	require.NoError(t, tasks.Save(&models.Task{
		TaskType:    models.TaskTypeCollection,
		Description: "UnlinkedTask",
	}))

	results, err := svc.GetTasksByDonationGroup("North Group")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "NorthTask", results[0].Description)
}

func TestToResponseDerivesRelatedFieldsFromCurrentBox(t *testing.T) {
	svc, boxes, _, _ := newTaskServiceForTest()

	box := &models.Box{
		LocationName:       "Cohen Family",
		DonationGroup:      "North Group",
		ResponsiblePerson:  "Yossi Cohen",
		AssociationManager: "Rina Levi",
	}
	require.NoError(t, boxes.Save(box))

	task, err := svc.CreateTask(&models.Task{
		TaskType:     models.TaskTypeCollection,
		Description:  "Empty the box",
		RelatedBoxID: &box.ID,
	})
	require.NoError(t, err)

	resp, err := svc.ToResponse(task)
	require.NoError(t, err)
	assert.Equal(t, "North Group", resp.RelatedDonationGroup)
	assert.Equal(t, "Yossi Cohen", resp.RelatedResponsiblePerson)
	assert.Equal(t, "Rina Levi", resp.RelatedAssociationManager)

	// The derived fields follow the box, not a snapshot taken at save time.
	box.DonationGroup = "South Group"
	require.NoError(t, boxes.Save(box))

	resp, err = svc.ToResponse(task)
	require.NoError(t, err)
	assert.Equal(t, "South Group", resp.RelatedDonationGroup)
}

func TestToResponseWithoutBoxLeavesDerivedFieldsEmpty(t *testing.T) {
	svc, _, _, _ := newTaskServiceForTest()

	task, err := svc.CreateTask(&models.Task{
		TaskType:    models.TaskTypeOther,
		Description: "Standalone",
	})
	require.NoError(t, err)

	resp, err := svc.ToResponse(task)
	require.NoError(t, err)
	assert.Empty(t, resp.RelatedDonationGroup)
	assert.Empty(t, resp.RelatedResponsiblePerson)
	assert.Empty(t, resp.RelatedAssociationManager)
}

type failingBoxRepo struct {
	*memBoxRepo
	findErr error
}

func (r *failingBoxRepo) FindByID(id uint) (*models.Box, error) {
	return nil, r.findErr
}

func TestToResponseSurfacesBoxLookupError(t *testing.T) {
	boxes := newMemBoxRepo()
	transports := newMemTransportRepo()
	tasks := newMemTaskRepo()

	box := &models.Box{LocationName: "Cohen Family"}
	require.NoError(t, boxes.Save(box))

	failErr := errors.New("connection reset")
	svc := NewTaskService(tasks, &failingBoxRepo{memBoxRepo: boxes, findErr: failErr}, transports, testLocation)

	task := &models.Task{
		TaskType:     models.TaskTypeCollection,
		Description:  "Empty the box",
		RelatedBoxID: &box.ID,
	}
	require.NoError(t, tasks.Save(task))

	_, err := svc.ToResponse(task)
	require.Error(t, err)
	assert.ErrorIs(t, err, failErr)

	_, err = svc.ToResponses([]models.Task{*task})
	require.Error(t, err)
	assert.ErrorIs(t, err, failErr)
}
