package controllers

import (
	"log"
	"time"

	"kesher-manager-backend/models"
	"kesher-manager-backend/services"
	"kesher-manager-backend/utils"

	"github.com/gofiber/fiber/v3"
)

type TransportController struct {
	Service  *services.TransportService
	Location *time.Location
}

func NewTransportController(service *services.TransportService, loc *time.Location) *TransportController {
	return &TransportController{Service: service, Location: loc}
}

// Request structs
type TransportRequest struct {
	SourceBoxID      uint       `json:"sourceBoxId" validate:"required"`
	DestinationType  string     `json:"destinationType" validate:"required"`
	DestinationBoxID *uint      `json:"destinationBoxId"`
	DestinationID    *uint      `json:"destinationId"`
	DestinationName  string     `json:"destinationName"`
	Quantity         string     `json:"quantity"`
	ScheduledDate    time.Time  `json:"scheduledDate"`
	CompletionDate   *time.Time `json:"completionDate"`
	Status           string     `json:"status"`
	DriverName       string     `json:"driverName"`
	DriverPhone      string     `json:"driverPhone"`
	Notes            string     `json:"notes"`
	CreatedBy        string     `json:"createdBy"`
}

func (r *TransportRequest) toModel() (*models.Transport, string) {
	destinationType, ok := models.ParseDestinationType(r.DestinationType)
	if !ok {
		return nil, "Unknown destination type: " + r.DestinationType
	}

	transport := &models.Transport{
		SourceBoxID:      r.SourceBoxID,
		DestinationType:  destinationType,
		DestinationBoxID: r.DestinationBoxID,
		DestinationID:    r.DestinationID,
		DestinationName:  r.DestinationName,
		Quantity:         r.Quantity,
		ScheduledDate:    r.ScheduledDate,
		CompletionDate:   r.CompletionDate,
		DriverName:       r.DriverName,
		DriverPhone:      r.DriverPhone,
		Notes:            r.Notes,
		CreatedBy:        r.CreatedBy,
	}
	if r.Status != "" {
		status, ok := models.ParseTransportStatus(r.Status)
		if !ok {
			return nil, "Unknown transport status: " + r.Status
		}
		transport.Status = status
	}
	return transport, ""
}

// GetTransports retrieves all transports
// @Summary Get Transports
// @Description Retrieve a list of all transports
// @Tags Transports
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.TransportResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/transports [get]
func (tc *TransportController) GetTransports(c fiber.Ctx) error {
	transports, err := tc.Service.GetAllTransports()
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve transports")
	}

	log.Println("Transports retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transports retrieved successfully",
		Data:    transportListResponse(transports),
	})
}

// GetTransport retrieves a single transport by ID
// @Summary Get Transport
// @Description Retrieve a single transport by ID
// @Tags Transports
// @Accept json
// @Produce json
// @Param id path int true "Transport ID"
// @Success 200 {object} utils.SuccessResponse{data=models.TransportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/transports/{id} [get]
func (tc *TransportController) GetTransport(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	transport, err := tc.Service.GetTransportByID(id)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve transport")
	}

	log.Println("Transport retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transport retrieved successfully",
		Data:    transport.ToResponse(),
	})
}

// CreateTransport creates a new transport
// @Summary Create Transport
// @Description Plan a new transport from a source box to a box, store or family
// @Tags Transports
// @Accept json
// @Produce json
// @Param transport body TransportRequest true "Transport details"
// @Success 201 {object} utils.SuccessResponse{data=models.TransportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/transports [post]
func (tc *TransportController) CreateTransport(c fiber.Ctx) error {
	var req TransportRequest
	if err := c.Bind().JSON(&req); err != nil {
		log.Println("Invalid request body:", err)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	transport, errMsg := req.toModel()
	if errMsg != "" {
		log.Println(errMsg)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   errMsg,
		})
	}

	created, err := tc.Service.CreateTransport(transport)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to create transport")
	}

	log.Println("Transport created successfully")
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transport created successfully",
		Data:    created.ToResponse(),
	})
}

// UpdateTransport updates an existing transport by ID
// @Summary Update Transport
// @Description Replace the details of an existing transport
// @Tags Transports
// @Accept json
// @Produce json
// @Param id path int true "Transport ID"
// @Param request body TransportRequest true "Updated transport details"
// @Success 200 {object} utils.SuccessResponse{data=models.TransportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/transports/{id} [put]
func (tc *TransportController) UpdateTransport(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	var req TransportRequest
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

	transport, err := tc.Service.UpdateTransport(id, payload)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to update transport")
	}

	log.Println("Transport updated successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transport updated successfully",
		Data:    transport.ToResponse(),
	})
}

// DeleteTransport deletes a transport by ID
// @Summary Delete Transport
// @Description Delete a transport by ID
// @Tags Transports
// @Accept json
// @Produce json
// @Param id path int true "Transport ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/transports/{id} [delete]
func (tc *TransportController) DeleteTransport(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	if err := tc.Service.DeleteTransport(id); err != nil {
		return serviceErrorResponse(c, err, "Failed to delete transport")
	}

	log.Println("Transport deleted successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transport deleted successfully",
	})
}

// UpdateTransportStatus updates the status of a transport
// @Summary Update Transport Status
// @Description Set the lifecycle status of a transport; completing stamps the completion date when unset
// @Tags Transports
// @Accept json
// @Produce json
// @Param id path int true "Transport ID"
// @Param status query string true "New status" Enums(PLANNED, IN_PROGRESS, COMPLETED, CANCELLED)
// @Success 200 {object} utils.SuccessResponse{data=models.TransportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/transports/{id}/status [patch]
func (tc *TransportController) UpdateTransportStatus(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	status, ok := models.ParseTransportStatus(c.Query("status"))
	if !ok {
		log.Println("Unknown transport status:", c.Query("status"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Unknown transport status: " + c.Query("status"),
		})
	}

	transport, err := tc.Service.UpdateStatus(id, status)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to update transport status")
	}

	log.Println("Transport status updated successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transport status updated successfully",
		Data:    transport.ToResponse(),
	})
}

// CompleteTransport marks a transport as completed
// @Summary Complete Transport
// @Description Mark a transport COMPLETED with the given completion date, or now when omitted
// @Tags Transports
// @Accept json
// @Produce json
// @Param id path int true "Transport ID"
// @Param completionDate query string false "Completion date (YYYY-MM-DD)"
// @Success 200 {object} utils.SuccessResponse{data=models.TransportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/transports/{id}/complete [patch]
func (tc *TransportController) CompleteTransport(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	var completionDate *time.Time
	if raw := c.Query("completionDate"); raw != "" {
		parsed, err := parseLocalDate(raw, tc.Location)
		if err != nil {
			log.Println("Invalid completion date:", raw)
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Invalid completionDate, expected YYYY-MM-DD",
			})
		}
		completionDate = &parsed
	}

	transport, err := tc.Service.CompleteTransport(id, completionDate)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to complete transport")
	}

	log.Println("Transport completed successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transport completed successfully",
		Data:    transport.ToResponse(),
	})
}

// GetTransportsByStatus retrieves transports filtered by status
// @Summary Get Transports By Status
// @Description Retrieve transports with the given lifecycle status
// @Tags Transports
// @Accept json
// @Produce json
// @Param status path string true "Transport status" Enums(PLANNED, IN_PROGRESS, COMPLETED, CANCELLED)
// @Success 200 {object} utils.SuccessResponse{data=[]models.TransportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/transports/status/{status} [get]
func (tc *TransportController) GetTransportsByStatus(c fiber.Ctx) error {
	status, ok := models.ParseTransportStatus(c.Params("status"))
	if !ok {
		log.Println("Unknown transport status:", c.Params("status"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Unknown transport status: " + c.Params("status"),
		})
	}

	transports, err := tc.Service.GetTransportsByStatus(status)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve transports")
	}

	log.Println("Transports retrieved successfully (filtered by status)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transports retrieved successfully",
		Data:    transportListResponse(transports),
	})
}

// GetTodayTransports retrieves transports scheduled today
// @Summary Get Today's Transports
// @Description Retrieve transports scheduled today in the organization's timezone; without a status filter PLANNED and IN_PROGRESS are returned
// @Tags Transports
// @Accept json
// @Produce json
// @Param status query string false "Status filter" Enums(PLANNED, IN_PROGRESS, COMPLETED, CANCELLED)
// @Success 200 {object} utils.SuccessResponse{data=[]models.TransportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/transports/today [get]
func (tc *TransportController) GetTodayTransports(c fiber.Ctx) error {
	var statusFilter *models.TransportStatus
	if raw := c.Query("status"); raw != "" {
		status, ok := models.ParseTransportStatus(raw)
		if !ok {
			log.Println("Unknown transport status:", raw)
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Unknown transport status: " + raw,
			})
		}
		statusFilter = &status
	}

	transports, err := tc.Service.GetTodayTransports(statusFilter)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve transports")
	}

	log.Println("Today's transports retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Today's transports retrieved successfully",
		Data:    transportListResponse(transports),
	})
}

// GetTransportsByDateRange retrieves transports scheduled in a date range
// @Summary Get Transports By Date Range
// @Description Retrieve transports scheduled within an inclusive calendar-date range
// @Tags Transports
// @Accept json
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TransportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/transports/date-range [get]
func (tc *TransportController) GetTransportsByDateRange(c fiber.Ctx) error {
	startDate, startErr := parseLocalDate(c.Query("startDate"), tc.Location)
	endDate, endErr := parseLocalDate(c.Query("endDate"), tc.Location)
	if startErr != nil || endErr != nil {
		log.Println("Invalid date range:", c.Query("startDate"), c.Query("endDate"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid startDate/endDate, expected YYYY-MM-DD",
		})
	}

	transports, err := tc.Service.GetTransportsByDateRange(startDate, endDate)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve transports")
	}

	log.Println("Transports retrieved successfully (date range)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transports retrieved successfully",
		Data:    transportListResponse(transports),
	})
}

// GetTransportsBySourceDonationGroup retrieves transports by source donation group
// @Summary Get Transports By Source Donation Group
// @Description Retrieve transports whose source box belongs to the donation group
// @Tags Transports
// @Accept json
// @Produce json
// @Param group path string true "Donation group"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TransportResponse}
// @Router /api/transports/source-donation-group/{group} [get]
func (tc *TransportController) GetTransportsBySourceDonationGroup(c fiber.Ctx) error {
	transports, err := tc.Service.GetTransportsBySourceDonationGroup(c.Params("group"))
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve transports")
	}

	log.Println("Transports retrieved successfully (source donation group)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transports retrieved successfully",
		Data:    transportListResponse(transports),
	})
}

// GetTransportsByDestinationDonationGroup retrieves transports by destination donation group
// @Summary Get Transports By Destination Donation Group
// @Description Retrieve transports whose destination box belongs to the donation group
// @Tags Transports
// @Accept json
// @Produce json
// @Param group path string true "Donation group"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TransportResponse}
// @Router /api/transports/destination-donation-group/{group} [get]
func (tc *TransportController) GetTransportsByDestinationDonationGroup(c fiber.Ctx) error {
	transports, err := tc.Service.GetTransportsByDestinationDonationGroup(c.Params("group"))
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve transports")
	}

	log.Println("Transports retrieved successfully (destination donation group)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transports retrieved successfully",
		Data:    transportListResponse(transports),
	})
}

// SearchTransportsByDriver searches transports by driver name
// @Summary Search Transports By Driver
// @Description Case-insensitive substring search over the driver name
// @Tags Transports
// @Accept json
// @Produce json
// @Param name path string true "Driver name substring"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TransportResponse}
// @Router /api/transports/driver/{name} [get]
func (tc *TransportController) SearchTransportsByDriver(c fiber.Ctx) error {
	transports, err := tc.Service.SearchTransportsByDriverName(c.Params("name"))
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to search transports")
	}

	log.Println("Transports retrieved successfully (driver search)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transports retrieved successfully",
		Data:    transportListResponse(transports),
	})
}

// GetTransportsByDestinationType retrieves transports by destination type
// @Summary Get Transports By Destination Type
// @Description Retrieve transports delivering to a box, store or family
// @Tags Transports
// @Accept json
// @Produce json
// @Param destinationType path string true "Destination type" Enums(BOX, STORE, FAMILY)
// @Success 200 {object} utils.SuccessResponse{data=[]models.TransportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/transports/destination-type/{destinationType} [get]
func (tc *TransportController) GetTransportsByDestinationType(c fiber.Ctx) error {
	destinationType, ok := models.ParseDestinationType(c.Params("destinationType"))
	if !ok {
		log.Println("Unknown destination type:", c.Params("destinationType"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Unknown destination type: " + c.Params("destinationType"),
		})
	}

	transports, err := tc.Service.GetTransportsByDestinationType(destinationType)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve transports")
	}

	log.Println("Transports retrieved successfully (destination type)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transports retrieved successfully",
		Data:    transportListResponse(transports),
	})
}

// GetTransportsByCreatedBy retrieves transports created by a user
// @Summary Get Transports By Creator
// @Description Retrieve transports created by the given name
// @Tags Transports
// @Accept json
// @Produce json
// @Param createdBy path string true "Creator name"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TransportResponse}
// @Router /api/transports/created-by/{createdBy} [get]
func (tc *TransportController) GetTransportsByCreatedBy(c fiber.Ctx) error {
	transports, err := tc.Service.GetTransportsByCreatedBy(c.Params("createdBy"))
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve transports")
	}

	log.Println("Transports retrieved successfully (created by)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Transports retrieved successfully",
		Data:    transportListResponse(transports),
	})
}
