package services

import (
	"sort"
	"strings"
	"time"

	"kesher-manager-backend/models"
)

// In-memory repository fakes used by the service tests.

type memBoxRepo struct {
	boxes  map[uint]models.Box
	nextID uint
}

func newMemBoxRepo() *memBoxRepo {
	return &memBoxRepo{boxes: map[uint]models.Box{}, nextID: 1}
}

func (r *memBoxRepo) all() []models.Box {
	ids := make([]uint, 0, len(r.boxes))
	for id := range r.boxes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	boxes := make([]models.Box, 0, len(ids))
	for _, id := range ids {
		boxes = append(boxes, r.boxes[id])
	}
	return boxes
}

func (r *memBoxRepo) FindAll() ([]models.Box, error) {
	return r.all(), nil
}

func (r *memBoxRepo) FindByID(id uint) (*models.Box, error) {
	box, ok := r.boxes[id]
	if !ok {
		return nil, nil
	}
	return &box, nil
}

func (r *memBoxRepo) Save(box *models.Box) error {
	if box.ID == 0 {
		box.ID = r.nextID
		r.nextID++
	}
	r.boxes[box.ID] = *box
	return nil
}

func (r *memBoxRepo) DeleteByID(id uint) error {
	delete(r.boxes, id)
	return nil
}

func (r *memBoxRepo) FindByStatus(status models.BoxStatus) ([]models.Box, error) {
	var out []models.Box
	for _, box := range r.all() {
		if box.Status == status {
			out = append(out, box)
		}
	}
	return out, nil
}

func (r *memBoxRepo) FindByDonationGroup(group string) ([]models.Box, error) {
	var out []models.Box
	for _, box := range r.all() {
		if box.DonationGroup == group {
			out = append(out, box)
		}
	}
	return out, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (r *memBoxRepo) SearchByLocationName(name string) ([]models.Box, error) {
	var out []models.Box
	for _, box := range r.all() {
		if containsFold(box.LocationName, name) {
			out = append(out, box)
		}
	}
	return out, nil
}

func (r *memBoxRepo) SearchByAddress(address string) ([]models.Box, error) {
	var out []models.Box
	for _, box := range r.all() {
		if containsFold(box.Address, address) {
			out = append(out, box)
		}
	}
	return out, nil
}

func (r *memBoxRepo) SearchByResponsiblePerson(person string) ([]models.Box, error) {
	var out []models.Box
	for _, box := range r.all() {
		if containsFold(box.ResponsiblePerson, person) {
			out = append(out, box)
		}
	}
	return out, nil
}

func (r *memBoxRepo) SearchByAssociationManager(manager string) ([]models.Box, error) {
	var out []models.Box
	for _, box := range r.all() {
		if containsFold(box.AssociationManager, manager) {
			out = append(out, box)
		}
	}
	return out, nil
}

type memTransportRepo struct {
	transports map[uint]models.Transport
	nextID     uint
}

func newMemTransportRepo() *memTransportRepo {
	return &memTransportRepo{transports: map[uint]models.Transport{}, nextID: 1}
}

func (r *memTransportRepo) all() []models.Transport {
	ids := make([]uint, 0, len(r.transports))
	for id := range r.transports {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	transports := make([]models.Transport, 0, len(ids))
	for _, id := range ids {
		transports = append(transports, r.transports[id])
	}
	return transports
}

func (r *memTransportRepo) FindAll() ([]models.Transport, error) {
	return r.all(), nil
}

func (r *memTransportRepo) FindByID(id uint) (*models.Transport, error) {
	transport, ok := r.transports[id]
	if !ok {
		return nil, nil
	}
	return &transport, nil
}

func (r *memTransportRepo) Save(transport *models.Transport) error {
	if transport.ID == 0 {
		transport.ID = r.nextID
		r.nextID++
	}
	r.transports[transport.ID] = *transport
	return nil
}

func (r *memTransportRepo) DeleteByID(id uint) error {
	delete(r.transports, id)
	return nil
}

func (r *memTransportRepo) FindByStatus(status models.TransportStatus) ([]models.Transport, error) {
	var out []models.Transport
	for _, transport := range r.all() {
		if transport.Status == status {
			out = append(out, transport)
		}
	}
	return out, nil
}

func containsID(ids []uint, id uint) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func (r *memTransportRepo) FindBySourceBoxIDs(boxIDs []uint) ([]models.Transport, error) {
	var out []models.Transport
	for _, transport := range r.all() {
		if containsID(boxIDs, transport.SourceBoxID) {
			out = append(out, transport)
		}
	}
	return out, nil
}

func (r *memTransportRepo) FindByDestinationBoxIDs(boxIDs []uint) ([]models.Transport, error) {
	var out []models.Transport
	for _, transport := range r.all() {
		if transport.DestinationBoxID != nil && containsID(boxIDs, *transport.DestinationBoxID) {
			out = append(out, transport)
		}
	}
	return out, nil
}

func (r *memTransportRepo) FindByDestinationType(destinationType models.DestinationType) ([]models.Transport, error) {
	var out []models.Transport
	for _, transport := range r.all() {
		if transport.DestinationType == destinationType {
			out = append(out, transport)
		}
	}
	return out, nil
}

func (r *memTransportRepo) FindByCreatedBy(createdBy string) ([]models.Transport, error) {
	var out []models.Transport
	for _, transport := range r.all() {
		if transport.CreatedBy == createdBy {
			out = append(out, transport)
		}
	}
	return out, nil
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func (r *memTransportRepo) FindByScheduledBetween(start, end time.Time) ([]models.Transport, error) {
	var out []models.Transport
	for _, transport := range r.all() {
		if inRange(transport.ScheduledDate, start, end) {
			out = append(out, transport)
		}
	}
	return out, nil
}

func (r *memTransportRepo) FindByScheduledBetweenAndStatus(start, end time.Time, status models.TransportStatus) ([]models.Transport, error) {
	var out []models.Transport
	for _, transport := range r.all() {
		if transport.Status == status && inRange(transport.ScheduledDate, start, end) {
			out = append(out, transport)
		}
	}
	return out, nil
}

func (r *memTransportRepo) SearchByDriverName(name string) ([]models.Transport, error) {
	var out []models.Transport
	for _, transport := range r.all() {
		if containsFold(transport.DriverName, name) {
			out = append(out, transport)
		}
	}
	return out, nil
}

type memTaskRepo struct {
	tasks  map[uint]models.Task
	nextID uint
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[uint]models.Task{}, nextID: 1}
}

func (r *memTaskRepo) all() []models.Task {
	ids := make([]uint, 0, len(r.tasks))
	for id := range r.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	tasks := make([]models.Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, r.tasks[id])
	}
	return tasks
}

func (r *memTaskRepo) FindAll() ([]models.Task, error) {
	return r.all(), nil
}

func (r *memTaskRepo) FindByID(id uint) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (r *memTaskRepo) Save(task *models.Task) error {
	if task.ID == 0 {
		task.ID = r.nextID
		r.nextID++
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *memTaskRepo) DeleteByID(id uint) error {
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) FindByStatus(status models.TaskStatus) ([]models.Task, error) {
	var out []models.Task
	for _, task := range r.all() {
		if task.Status == status {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *memTaskRepo) FindByPriority(priority models.TaskPriority) ([]models.Task, error) {
	var out []models.Task
	for _, task := range r.all() {
		if task.Priority == priority {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *memTaskRepo) FindByType(taskType models.TaskType) ([]models.Task, error) {
	var out []models.Task
	for _, task := range r.all() {
		if task.TaskType == taskType {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *memTaskRepo) FindByRelatedBoxID(boxID uint) ([]models.Task, error) {
	return r.FindByRelatedBoxIDs([]uint{boxID})
}

func (r *memTaskRepo) FindByRelatedBoxIDs(boxIDs []uint) ([]models.Task, error) {
	var out []models.Task
	for _, task := range r.all() {
		if task.RelatedBoxID != nil && containsID(boxIDs, *task.RelatedBoxID) {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *memTaskRepo) FindByRelatedTransportID(transportID uint) ([]models.Task, error) {
	var out []models.Task
	for _, task := range r.all() {
		if task.RelatedTransportID != nil && *task.RelatedTransportID == transportID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *memTaskRepo) SearchByAssignedTo(assignee string) ([]models.Task, error) {
	var out []models.Task
	for _, task := range r.all() {
		if containsFold(task.AssignedTo, assignee) {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *memTaskRepo) FindByCategory(category string) ([]models.Task, error) {
	var out []models.Task
	for _, task := range r.all() {
		if task.TaskCategory == category {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *memTaskRepo) FindByDueBeforeAndStatusNot(cutoff time.Time, excluded models.TaskStatus) ([]models.Task, error) {
	var out []models.Task
	for _, task := range r.all() {
		if task.DueDate != nil && task.DueDate.Before(cutoff) && task.Status != excluded {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *memTaskRepo) FindByDueBetween(start, end time.Time) ([]models.Task, error) {
	var out []models.Task
	for _, task := range r.all() {
		if task.DueDate != nil && inRange(*task.DueDate, start, end) {
			out = append(out, task)
		}
	}
	return out, nil
}
