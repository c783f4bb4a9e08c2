package controllers

import (
	"io"
	"log"

	"kesher-manager-backend/services"
	"kesher-manager-backend/utils"

	"github.com/gofiber/fiber/v3"
)

type ImportController struct {
	Service *services.ImportService
}

func NewImportController(service *services.ImportService) *ImportController {
	return &ImportController{Service: service}
}

// ImportBoxes imports boxes in bulk from a JSON array
// @Summary Import Boxes
// @Description Import a JSON array of box descriptors; each record is processed independently and failures are reported per index
// @Tags Import
// @Accept json
// @Produce json
// @Param descriptors body []map[string]interface{} true "Box descriptors"
// @Success 200 {object} utils.SuccessResponse{data=services.ImportReport}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/import/boxes/json [post]
func (ic *ImportController) ImportBoxes(c fiber.Ctx) error {
	report, err := ic.Service.ImportBoxesJSON(c.Body())
	if err != nil {
		log.Println("Failed to parse import payload:", err)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Failed to parse JSON payload: " + err.Error(),
		})
	}

	return ic.importFinished(c, report)
}

// ImportBoxesFile imports boxes in bulk from an uploaded JSON file
// @Summary Import Boxes From File
// @Description Upload a JSON file containing an array of box descriptors; each record is processed independently and failures are reported per index
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "JSON file with box descriptors"
// @Success 200 {object} utils.SuccessResponse{data=services.ImportReport}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/import/boxes [post]
func (ic *ImportController) ImportBoxesFile(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Println("Import file missing from request:", err)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "File is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Println("Failed to open import file:", err)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Failed to read uploaded file: " + err.Error(),
		})
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		log.Println("Failed to read import file:", err)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Failed to read uploaded file: " + err.Error(),
		})
	}

	report, err := ic.Service.ImportBoxesJSON(payload)
	if err != nil {
		log.Println("Failed to parse import file:", err)
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Failed to parse JSON file: " + err.Error(),
		})
	}

	return ic.importFinished(c, report)
}

func (ic *ImportController) importFinished(c fiber.Ctx, report *services.ImportReport) error {
	log.Printf("Box import finished: %d processed, %d imported, %d errors",
		report.TotalProcessed, len(report.SuccessfulImports), len(report.Errors))
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Box import finished",
		Data:    report,
	})
}
