package controllers

import (
	"log"
	"strconv"
	"time"

	"kesher-manager-backend/services"
	"kesher-manager-backend/utils"

	"github.com/gofiber/fiber/v3"
)

// parseIDParam reads the numeric id path parameter.
func parseIDParam(c fiber.Ctx) (uint, error) {
	return parseUintParam(c, "id")
}

func parseUintParam(c fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseLocalDate reads a YYYY-MM-DD calendar date as midnight in the
// organization's timezone. Parsing in UTC instead would shift the day
// window for any timezone behind UTC.
func parseLocalDate(raw string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", raw, loc)
}

func badIDResponse(c fiber.Ctx) error {
	log.Println("Invalid id parameter:", c.Params("id"))
	return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
		Success: false,
		Error:   "Invalid id parameter",
	})
}

// serviceErrorResponse maps typed service errors onto HTTP statuses:
// NotFound -> 404, InvalidReference/Validation -> 400, anything else -> 500
// with the given fallback message.
func serviceErrorResponse(c fiber.Ctx, err error, fallback string) error {
	switch {
	case services.IsNotFound(err):
		log.Println(err.Error())
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	case services.IsInvalidReference(err), services.IsValidation(err):
		log.Println(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	default:
		log.Println(fallback+":", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Success: false,
			Error:   fallback,
		})
	}
}
