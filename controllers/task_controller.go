package controllers

import (
	"log"
	"time"

	"kesher-manager-backend/models"
	"kesher-manager-backend/services"
	"kesher-manager-backend/utils"

	"github.com/gofiber/fiber/v3"
)

type TaskController struct {
	Service  *services.TaskService
	Location *time.Location
}

func NewTaskController(service *services.TaskService, loc *time.Location) *TaskController {
	return &TaskController{Service: service, Location: loc}
}

// Request structs
type TaskRequest struct {
	TaskType           string     `json:"taskType" validate:"required"`
	RelatedBoxID       *uint      `json:"relatedBoxId"`
	RelatedTransportID *uint      `json:"relatedTransportId"`
	Description        string     `json:"description" validate:"required"`
	AssignedTo         string     `json:"assignedTo"`
	DueDate            *time.Time `json:"dueDate"`
	Priority           string     `json:"priority"`
	Status             string     `json:"status"`
	TaskCategory       string     `json:"taskCategory"`
	Notes              string     `json:"notes"`
}

type AssignTaskRequest struct {
	AssignedTo string `json:"assignedTo" validate:"required"`
}

func (r *TaskRequest) toModel() (*models.Task, string) {
	taskType, ok := models.ParseTaskType(r.TaskType)
	if !ok {
		return nil, "Unknown task type: " + r.TaskType
	}

	task := &models.Task{
		TaskType:           taskType,
		RelatedBoxID:       r.RelatedBoxID,
		RelatedTransportID: r.RelatedTransportID,
		Description:        r.Description,
		AssignedTo:         r.AssignedTo,
		DueDate:            r.DueDate,
		TaskCategory:       r.TaskCategory,
		Notes:              r.Notes,
	}
	if r.Priority != "" {
		priority, ok := models.ParseTaskPriority(r.Priority)
		if !ok {
			return nil, "Unknown task priority: " + r.Priority
		}
		task.Priority = priority
	}
	if r.Status != "" {
		status, ok := models.ParseTaskStatus(r.Status)
		if !ok {
			return nil, "Unknown task status: " + r.Status
		}
		task.Status = status
	}
	return task, ""
}

func (tc *TaskController) taskListResponse(tasks []models.Task) ([]models.TaskResponse, error) {
	return tc.Service.ToResponses(tasks)
}

// GetTasks retrieves all tasks
// @Summary Get Tasks
// @Description Retrieve a list of all tasks
// @Tags Tasks
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/tasks [get]
func (tc *TaskController) GetTasks(c fiber.Ctx) error {
	tasks, err := tc.Service.GetAllTasks()
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Tasks retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Tasks retrieved successfully",
		Data:    responses,
	})
}

// GetTask retrieves a single task by ID
// @Summary Get Task
// @Description Retrieve a single task by ID
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} utils.SuccessResponse{data=models.TaskResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/tasks/{id} [get]
func (tc *TaskController) GetTask(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	task, err := tc.Service.GetTaskByID(id)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve task")
	}

	resp, err := tc.Service.ToResponse(task)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task response")
	}

	log.Println("Task retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Task retrieved successfully",
		Data:    resp,
	})
}

// CreateTask creates a new task
// @Summary Create Task
// @Description Create a new work item, optionally linked to a box and/or transport
// @Tags Tasks
// @Accept json
// @Produce json
// @Param task body TaskRequest true "Task details"
// @Success 201 {object} utils.SuccessResponse{data=models.TaskResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/tasks [post]
func (tc *TaskController) CreateTask(c fiber.Ctx) error {
	var req TaskRequest
	if err := c.Bind().JSON(&req); err != nil {
		log.Println("Invalid request body:", err)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	task, errMsg := req.toModel()
	if errMsg != "" {
		log.Println(errMsg)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   errMsg,
		})
	}

	created, err := tc.Service.CreateTask(task)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to create task")
	}

	resp, err := tc.Service.ToResponse(created)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task response")
	}

	log.Println("Task created successfully")
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Task created successfully",
		Data:    resp,
	})
}

// UpdateTask updates an existing task by ID
// @Summary Update Task
// @Description Replace the details of an existing task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body TaskRequest true "Updated task details"
// @Success 200 {object} utils.SuccessResponse{data=models.TaskResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/tasks/{id} [put]
func (tc *TaskController) UpdateTask(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	var req TaskRequest
	if err := c.Bind().JSON(&req); err != nil {
		log.Println("Invalid request body:", err)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	payload, errMsg := req.toModel()
	if errMsg != "" {
		log.Println(errMsg)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   errMsg,
		})
	}

	task, err := tc.Service.UpdateTask(id, payload)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to update task")
	}

	resp, err := tc.Service.ToResponse(task)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task response")
	}

	log.Println("Task updated successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Task updated successfully",
		Data:    resp,
	})
}

// DeleteTask deletes a task by ID
// @Summary Delete Task
// @Description Delete a task by ID
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/tasks/{id} [delete]
func (tc *TaskController) DeleteTask(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	if err := tc.Service.DeleteTask(id); err != nil {
		return serviceErrorResponse(c, err, "Failed to delete task")
	}

	log.Println("Task deleted successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
}

// UpdateTaskStatus updates the status of a task
// @Summary Update Task Status
// @Description Set the lifecycle status of a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param status query string true "New status" Enums(PENDING, IN_PROGRESS, COMPLETED, CANCELLED)
// @Success 200 {object} utils.SuccessResponse{data=models.TaskResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/tasks/{id}/status [patch]
func (tc *TaskController) UpdateTaskStatus(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	status, ok := models.ParseTaskStatus(c.Query("status"))
	if !ok {
		log.Println("Unknown task status:", c.Query("status"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Unknown task status: " + c.Query("status"),
		})
	}

	task, err := tc.Service.UpdateStatus(id, status)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to update task status")
	}

	resp, err := tc.Service.ToResponse(task)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task response")
	}

	log.Println("Task status updated successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Task status updated successfully",
		Data:    resp,
	})
}

// AssignTask assigns a task to a person
// @Summary Assign Task
// @Description Set the free-text assignee of a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body AssignTaskRequest true "Assignee"
// @Success 200 {object} utils.SuccessResponse{data=models.TaskResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/tasks/{id}/assign [patch]
func (tc *TaskController) AssignTask(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	var req AssignTaskRequest
	if err := c.Bind().JSON(&req); err != nil {
		log.Println("Invalid request body:", err)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	task, err := tc.Service.AssignTask(id, req.AssignedTo)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to assign task")
	}

	resp, err := tc.Service.ToResponse(task)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task response")
	}

	log.Println("Task assigned successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Task assigned successfully",
		Data:    resp,
	})
}

// GetTasksByStatus retrieves tasks filtered by status
// @Summary Get Tasks By Status
// @Description Retrieve tasks with the given lifecycle status
// @Tags Tasks
// @Accept json
// @Produce json
// @Param status path string true "Task status" Enums(PENDING, IN_PROGRESS, COMPLETED, CANCELLED)
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/tasks/status/{status} [get]
func (tc *TaskController) GetTasksByStatus(c fiber.Ctx) error {
	status, ok := models.ParseTaskStatus(c.Params("status"))
	if !ok {
		log.Println("Unknown task status:", c.Params("status"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Unknown task status: " + c.Params("status"),
		})
	}

	tasks, err := tc.Service.GetTasksByStatus(status)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Tasks retrieved successfully (filtered by status)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Tasks retrieved successfully",
		Data:    responses,
	})
}

// GetTasksByPriority retrieves tasks filtered by priority
// @Summary Get Tasks By Priority
// @Description Retrieve tasks with the given priority
// @Tags Tasks
// @Accept json
// @Produce json
// @Param priority path string true "Task priority" Enums(LOW, MEDIUM, HIGH, URGENT)
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/tasks/priority/{priority} [get]
func (tc *TaskController) GetTasksByPriority(c fiber.Ctx) error {
	priority, ok := models.ParseTaskPriority(c.Params("priority"))
	if !ok {
		log.Println("Unknown task priority:", c.Params("priority"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Unknown task priority: " + c.Params("priority"),
		})
	}

	tasks, err := tc.Service.GetTasksByPriority(priority)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Tasks retrieved successfully (filtered by priority)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Tasks retrieved successfully",
		Data:    responses,
	})
}

// GetTasksByType retrieves tasks filtered by type
// @Summary Get Tasks By Type
// @Description Retrieve tasks of the given type
// @Tags Tasks
// @Accept json
// @Produce json
// @Param taskType path string true "Task type" Enums(COLLECTION, TRANSPORT, MAINTENANCE, OTHER)
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/tasks/type/{taskType} [get]
func (tc *TaskController) GetTasksByType(c fiber.Ctx) error {
	taskType, ok := models.ParseTaskType(c.Params("taskType"))
	if !ok {
		log.Println("Unknown task type:", c.Params("taskType"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Unknown task type: " + c.Params("taskType"),
		})
	}

	tasks, err := tc.Service.GetTasksByType(taskType)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Tasks retrieved successfully (filtered by type)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Tasks retrieved successfully",
		Data:    responses,
	})
}

// GetOverdueTasks retrieves overdue tasks
// @Summary Get Overdue Tasks
// @Description Retrieve tasks whose due date has passed and that were never completed
// @Tags Tasks
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Router /api/tasks/overdue [get]
func (tc *TaskController) GetOverdueTasks(c fiber.Ctx) error {
	tasks, err := tc.Service.GetOverdueTasks()
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Overdue tasks retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Overdue tasks retrieved successfully",
		Data:    responses,
	})
}

// GetTasksDueToday retrieves tasks due today
// @Summary Get Tasks Due Today
// @Description Retrieve tasks due today in the organization's timezone
// @Tags Tasks
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Router /api/tasks/due-today [get]
func (tc *TaskController) GetTasksDueToday(c fiber.Ctx) error {
	tasks, err := tc.Service.GetTasksDueToday()
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Tasks due today retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Tasks due today retrieved successfully",
		Data:    responses,
	})
}

// GetTasksByDateRange retrieves tasks due in a date range
// @Summary Get Tasks By Date Range
// @Description Retrieve tasks due within an inclusive calendar-date range
// @Tags Tasks
// @Accept json
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/tasks/date-range [get]
func (tc *TaskController) GetTasksByDateRange(c fiber.Ctx) error {
	startDate, startErr := parseLocalDate(c.Query("startDate"), tc.Location)
	endDate, endErr := parseLocalDate(c.Query("endDate"), tc.Location)
	if startErr != nil || endErr != nil {
		log.Println("Invalid date range:", c.Query("startDate"), c.Query("endDate"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid startDate/endDate, expected YYYY-MM-DD",
		})
	}

	tasks, err := tc.Service.GetTasksByDateRange(startDate, endDate)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Tasks retrieved successfully (date range)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Tasks retrieved successfully",
		Data:    responses,
	})
}

// GetTasksByAssignee retrieves tasks by assignee
// @Summary Get Tasks By Assignee
// @Description Case-insensitive substring search over the assignee name
// @Tags Tasks
// @Accept json
// @Produce json
// @Param assignee path string true "Assignee substring"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Router /api/tasks/assigned/{assignee} [get]
func (tc *TaskController) GetTasksByAssignee(c fiber.Ctx) error {
	tasks, err := tc.Service.GetTasksByAssignee(c.Params("assignee"))
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Tasks retrieved successfully (filtered by assignee)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Tasks retrieved successfully",
		Data:    responses,
	})
}

// GetTasksByDonationGroup retrieves tasks via their linked box's donation group
// @Summary Get Tasks By Donation Group
// @Description Retrieve tasks whose linked box belongs to the donation group
// @Tags Tasks
// @Accept json
// @Produce json
// @Param group path string true "Donation group"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Router /api/tasks/donation-group/{group} [get]
func (tc *TaskController) GetTasksByDonationGroup(c fiber.Ctx) error {
	tasks, err := tc.Service.GetTasksByDonationGroup(c.Params("group"))
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Tasks retrieved successfully (donation group)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Tasks retrieved successfully",
		Data:    responses,
	})
}

// GetTasksByAssociationManager retrieves tasks via their linked box's manager
// @Summary Get Tasks By Association Manager
// @Description Retrieve tasks whose linked box is managed by the given association manager
// @Tags Tasks
// @Accept json
// @Produce json
// @Param manager path string true "Association manager"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Router /api/tasks/association-manager/{manager} [get]
func (tc *TaskController) GetTasksByAssociationManager(c fiber.Ctx) error {
	tasks, err := tc.Service.GetTasksByAssociationManager(c.Params("manager"))
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Tasks retrieved successfully (association manager)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Tasks retrieved successfully",
		Data:    responses,
	})
}

// GetTasksByCategory retrieves tasks in a category
// @Summary Get Tasks By Category
// @Description Retrieve tasks in the given free-text category
// @Tags Tasks
// @Accept json
// @Produce json
// @Param category path string true "Task category"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Router /api/tasks/category/{category} [get]
func (tc *TaskController) GetTasksByCategory(c fiber.Ctx) error {
	tasks, err := tc.Service.GetTasksByCategory(c.Params("category"))
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Tasks retrieved successfully (category)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Tasks retrieved successfully",
		Data:    responses,
	})
}

// GetTasksByRelatedBox retrieves tasks linked to a box
// @Summary Get Tasks By Related Box
// @Description Retrieve tasks linked to the given box
// @Tags Tasks
// @Accept json
// @Produce json
// @Param boxId path int true "Box ID"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/tasks/box/{boxId} [get]
func (tc *TaskController) GetTasksByRelatedBox(c fiber.Ctx) error {
	boxID, err := parseUintParam(c, "boxId")
	if err != nil {
		log.Println("Invalid boxId parameter:", c.Params("boxId"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid boxId parameter",
		})
	}

	tasks, err := tc.Service.GetTasksByRelatedBox(boxID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Tasks retrieved successfully (related box)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Tasks retrieved successfully",
		Data:    responses,
	})
}

// GetTasksByRelatedTransport retrieves tasks linked to a transport
// @Summary Get Tasks By Related Transport
// @Description Retrieve tasks linked to the given transport
// @Tags Tasks
// @Accept json
// @Produce json
// @Param transportId path int true "Transport ID"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TaskResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/tasks/transport/{transportId} [get]
func (tc *TaskController) GetTasksByRelatedTransport(c fiber.Ctx) error {
	transportID, err := parseUintParam(c, "transportId")
	if err != nil {
		log.Println("Invalid transportId parameter:", c.Params("transportId"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid transportId parameter",
		})
	}

	tasks, err := tc.Service.GetTasksByRelatedTransport(transportID)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve tasks")
	}

	responses, err := tc.taskListResponse(tasks)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to build task responses")
	}

	log.Println("Tasks retrieved successfully (related transport)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Tasks retrieved successfully",
		Data:    responses,
	})
}
