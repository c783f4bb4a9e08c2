package controllers

import (
	"log"
	"strconv"

	"kesher-manager-backend/models"
	"kesher-manager-backend/services"
	"kesher-manager-backend/utils"

	"github.com/gofiber/fiber/v3"
)

type BoxController struct {
	Service *services.BoxService
}

func NewBoxController(service *services.BoxService) *BoxController {
	return &BoxController{Service: service}
}

// Request structs
type BoxRequest struct {
	LocationName           string   `json:"locationName" validate:"required,min=2,max=150"`
	Address                string   `json:"address"`
	City                   string   `json:"city"`
	Latitude               *float64 `json:"latitude"`
	Longitude              *float64 `json:"longitude"`
	ResponsiblePerson      string   `json:"responsiblePerson"`
	ResponsiblePersonPhone string   `json:"responsiblePersonPhone"`
	AssociationManager     string   `json:"associationManager"`
	DonationGroup          string   `json:"donationGroup"`
	BoxType                string   `json:"boxType"`
	DeliveryVolunteer      string   `json:"deliveryVolunteer"`
	DeliveryVolunteerPhone string   `json:"deliveryVolunteerPhone"`
	Notes                  string   `json:"notes"`
	Status                 string   `json:"status"`
}

func (r *BoxRequest) toModel() (*models.Box, bool) {
	box := &models.Box{
		LocationName:           r.LocationName,
		Address:                r.Address,
		City:                   r.City,
		Latitude:               r.Latitude,
		Longitude:              r.Longitude,
		ResponsiblePerson:      r.ResponsiblePerson,
		ResponsiblePersonPhone: r.ResponsiblePersonPhone,
		AssociationManager:     r.AssociationManager,
		DonationGroup:          r.DonationGroup,
		BoxType:                r.BoxType,
		DeliveryVolunteer:      r.DeliveryVolunteer,
		DeliveryVolunteerPhone: r.DeliveryVolunteerPhone,
		Notes:                  r.Notes,
	}
	if r.Status != "" {
		status, ok := models.ParseBoxStatus(r.Status)
		if !ok {
			return nil, false
		}
		box.Status = status
	}
	return box, true
}

func boxListResponse(boxes []models.Box) []models.BoxResponse {
	list := make([]models.BoxResponse, len(boxes))
	for i, box := range boxes {
		list[i] = *box.ToResponse()
	}
	return list
}

func transportListResponse(transports []models.Transport) []models.TransportResponse {
	list := make([]models.TransportResponse, len(transports))
	for i, transport := range transports {
		list[i] = *transport.ToResponse()
	}
	return list
}

// GetBoxes retrieves all boxes
// @Summary Get Boxes
// @Description Retrieve a list of all food distribution boxes
// @Tags Boxes
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.BoxResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/boxes [get]
func (bc *BoxController) GetBoxes(c fiber.Ctx) error {
	boxes, err := bc.Service.GetAllBoxes()
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve boxes")
	}

	log.Println("Boxes retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Boxes retrieved successfully",
		Data:    boxListResponse(boxes),
	})
}

// GetBox retrieves a single box by ID
// @Summary Get Box
// @Description Retrieve a single box by ID
// @Tags Boxes
// @Accept json
// @Produce json
// @Param id path int true "Box ID"
// @Success 200 {object} utils.SuccessResponse{data=models.BoxResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/boxes/{id} [get]
func (bc *BoxController) GetBox(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	box, err := bc.Service.GetBoxByID(id)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve box")
	}

	log.Println("Box retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Box retrieved successfully",
		Data:    box.ToResponse(),
	})
}

// CreateBox creates a new box
// @Summary Create Box
// @Description Register a new food distribution box
// @Tags Boxes
// @Accept json
// @Produce json
// @Param box body BoxRequest true "Box details"
// @Success 201 {object} utils.SuccessResponse{data=models.BoxResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/boxes [post]
func (bc *BoxController) CreateBox(c fiber.Ctx) error {
	var req BoxRequest
	if err := c.Bind().JSON(&req); err != nil {
		log.Println("Invalid request body:", err)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	box, ok := req.toModel()
	if !ok {
		log.Println("Unknown box status:", req.Status)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Unknown box status: " + req.Status,
		})
	}

	created, err := bc.Service.CreateBox(box)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to create box")
	}

	log.Println("Box created successfully")
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Box created successfully",
		Data:    created.ToResponse(),
	})
}

// UpdateBox updates an existing box by ID
// @Summary Update Box
// @Description Replace the details of an existing box
// @Tags Boxes
// @Accept json
// @Produce json
// @Param id path int true "Box ID"
// @Param request body BoxRequest true "Updated box details"
// @Success 200 {object} utils.SuccessResponse{data=models.BoxResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/boxes/{id} [put]
func (bc *BoxController) UpdateBox(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	var req BoxRequest
	if err := c.Bind().JSON(&req); err != nil {
		log.Println("Invalid request body:", err)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	payload, ok := req.toModel()
	if !ok {
		log.Println("Unknown box status:", req.Status)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Unknown box status: " + req.Status,
		})
	}

	box, err := bc.Service.UpdateBox(id, payload)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to update box")
	}

	log.Println("Box updated successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Box updated successfully",
		Data:    box.ToResponse(),
	})
}

// DeleteBox deletes a box by ID
// @Summary Delete Box
// @Description Delete a box by ID
// @Tags Boxes
// @Accept json
// @Produce json
// @Param id path int true "Box ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/boxes/{id} [delete]
func (bc *BoxController) DeleteBox(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	if err := bc.Service.DeleteBox(id); err != nil {
		return serviceErrorResponse(c, err, "Failed to delete box")
	}

	log.Println("Box deleted successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Box deleted successfully",
	})
}

// UpdateBoxStatus updates the status of a box
// @Summary Update Box Status
// @Description Set the lifecycle status of a box
// @Tags Boxes
// @Accept json
// @Produce json
// @Param id path int true "Box ID"
// @Param status query string true "New status" Enums(ACTIVE, MAINTENANCE, INACTIVE)
// @Success 200 {object} utils.SuccessResponse{data=models.BoxResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/boxes/{id}/status [patch]
func (bc *BoxController) UpdateBoxStatus(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	status, ok := models.ParseBoxStatus(c.Query("status"))
	if !ok {
		log.Println("Unknown box status:", c.Query("status"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Unknown box status: " + c.Query("status"),
		})
	}

	box, err := bc.Service.UpdateStatus(id, status)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to update box status")
	}

	log.Println("Box status updated successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Box status updated successfully",
		Data:    box.ToResponse(),
	})
}

// GetBoxesByStatus retrieves boxes filtered by status
// @Summary Get Boxes By Status
// @Description Retrieve boxes with the given lifecycle status
// @Tags Boxes
// @Accept json
// @Produce json
// @Param status path string true "Box status" Enums(ACTIVE, MAINTENANCE, INACTIVE)
// @Success 200 {object} utils.SuccessResponse{data=[]models.BoxResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/boxes/status/{status} [get]
func (bc *BoxController) GetBoxesByStatus(c fiber.Ctx) error {
	status, ok := models.ParseBoxStatus(c.Params("status"))
	if !ok {
		log.Println("Unknown box status:", c.Params("status"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Unknown box status: " + c.Params("status"),
		})
	}

	boxes, err := bc.Service.GetBoxesByStatus(status)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve boxes")
	}

	log.Println("Boxes retrieved successfully (filtered by status)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Boxes retrieved successfully",
		Data:    boxListResponse(boxes),
	})
}

// GetBoxesByDonationGroup retrieves boxes in a donation group
// @Summary Get Boxes By Donation Group
// @Description Retrieve boxes belonging to a donation group
// @Tags Boxes
// @Accept json
// @Produce json
// @Param group path string true "Donation group"
// @Success 200 {object} utils.SuccessResponse{data=[]models.BoxResponse}
// @Router /api/boxes/donation-group/{group} [get]
func (bc *BoxController) GetBoxesByDonationGroup(c fiber.Ctx) error {
	boxes, err := bc.Service.GetBoxesByDonationGroup(c.Params("group"))
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve boxes")
	}

	log.Println("Boxes retrieved successfully (filtered by donation group)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Boxes retrieved successfully",
		Data:    boxListResponse(boxes),
	})
}

// SearchBoxes searches boxes on a single text field
// @Summary Search Boxes
// @Description Case-insensitive substring search over location name, address, responsible person or association manager
// @Tags Boxes
// @Accept json
// @Produce json
// @Param locationName query string false "Location name substring"
// @Param address query string false "Address substring"
// @Param responsiblePerson query string false "Responsible person substring"
// @Param associationManager query string false "Association manager substring"
// @Success 200 {object} utils.SuccessResponse{data=[]models.BoxResponse}
// @Router /api/boxes/search [get]
func (bc *BoxController) SearchBoxes(c fiber.Ctx) error {
	var (
		boxes []models.Box
		err   error
	)

	switch {
	case c.Query("locationName") != "":
		boxes, err = bc.Service.SearchBoxesByLocationName(c.Query("locationName"))
	case c.Query("address") != "":
		boxes, err = bc.Service.SearchBoxesByAddress(c.Query("address"))
	case c.Query("responsiblePerson") != "":
		boxes, err = bc.Service.SearchBoxesByResponsiblePerson(c.Query("responsiblePerson"))
	case c.Query("associationManager") != "":
		boxes, err = bc.Service.SearchBoxesByAssociationManager(c.Query("associationManager"))
	default:
		boxes, err = bc.Service.GetAllBoxes()
	}
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to search boxes")
	}

	log.Println("Boxes retrieved successfully (search)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Boxes retrieved successfully",
		Data:    boxListResponse(boxes),
	})
}

// AdvancedSearch searches boxes using the fixed criterion priority
// @Summary Advanced Box Search
// @Description Apply the first non-empty criterion in the order address, responsiblePerson, associationManager, donationGroup, status
// @Tags Boxes
// @Accept json
// @Produce json
// @Param address query string false "Address substring"
// @Param responsiblePerson query string false "Responsible person substring"
// @Param associationManager query string false "Association manager substring"
// @Param donationGroup query string false "Donation group"
// @Param status query string false "Box status" Enums(ACTIVE, MAINTENANCE, INACTIVE)
// @Success 200 {object} utils.SuccessResponse{data=[]models.BoxResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/boxes/advanced-search [get]
func (bc *BoxController) AdvancedSearch(c fiber.Ctx) error {
	criteria := services.AdvancedSearchCriteria{
		Address:            c.Query("address"),
		ResponsiblePerson:  c.Query("responsiblePerson"),
		AssociationManager: c.Query("associationManager"),
		DonationGroup:      c.Query("donationGroup"),
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := models.ParseBoxStatus(raw)
		if !ok {
			log.Println("Unknown box status:", raw)
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Unknown box status: " + raw,
			})
		}
		criteria.Status = &status
	}

	boxes, err := bc.Service.AdvancedSearch(criteria)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to search boxes")
	}

	log.Println("Boxes retrieved successfully (advanced search)")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Boxes retrieved successfully",
		Data:    boxListResponse(boxes),
	})
}

// GetOutgoingTransports retrieves the transports leaving a box
// @Summary Get Outgoing Transports
// @Description Retrieve all transports whose source is the given box
// @Tags Boxes
// @Accept json
// @Produce json
// @Param id path int true "Box ID"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TransportResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/boxes/{id}/outgoing-transports [get]
func (bc *BoxController) GetOutgoingTransports(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	transports, err := bc.Service.GetOutgoingTransports(id)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve transports")
	}

	log.Println("Outgoing transports retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Outgoing transports retrieved successfully",
		Data:    transportListResponse(transports),
	})
}

// GetIncomingTransports retrieves the transports arriving at a box
// @Summary Get Incoming Transports
// @Description Retrieve all transports whose destination is the given box
// @Tags Boxes
// @Accept json
// @Produce json
// @Param id path int true "Box ID"
// @Success 200 {object} utils.SuccessResponse{data=[]models.TransportResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/boxes/{id}/incoming-transports [get]
func (bc *BoxController) GetIncomingTransports(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	transports, err := bc.Service.GetIncomingTransports(id)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve transports")
	}

	log.Println("Incoming transports retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Incoming transports retrieved successfully",
		Data:    transportListResponse(transports),
	})
}

// GetNearbyBoxes retrieves boxes within a radius of a point
// @Summary Get Nearby Boxes
// @Description Retrieve boxes with coordinates within the given radius (meters) of a point
// @Tags Boxes
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Radius in meters" default(5000)
// @Success 200 {object} utils.SuccessResponse{data=[]models.BoxResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/boxes/nearby [get]
func (bc *BoxController) GetNearbyBoxes(c fiber.Ctx) error {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		log.Println("Invalid coordinates:", c.Query("lat"), c.Query("lon"))
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Invalid lat/lon parameters",
		})
	}

	radius, err := strconv.ParseFloat(c.Query("radius", "5000"), 64)
	if err != nil || radius <= 0 {
		radius = 5000
	}

	boxes, err := bc.Service.GetNearbyBoxes(lat, lon, radius)
	if err != nil {
		return serviceErrorResponse(c, err, "Failed to retrieve boxes")
	}

	log.Println("Nearby boxes retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Nearby boxes retrieved successfully",
		Data:    boxListResponse(boxes),
	})
}
