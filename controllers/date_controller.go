package controllers

import (
	"log"
	"time"

	"kesher-manager-backend/utils"

	"github.com/gofiber/fiber/v3"
)

// DateController exposes the organization's local calendar to clients so
// they never recompute day boundaries themselves.
type DateController struct {
	Location *time.Location
}

func NewDateController(loc *time.Location) *DateController {
	return &DateController{Location: loc}
}

// GetNow returns the current local date and time
// @Summary Current Date And Time
// @Description Return the current date, time and configured timezone
// @Tags Dates
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/date-utils/now [get]
func (dc *DateController) GetNow(c fiber.Ctx) error {
	now := time.Now().In(dc.Location)

	log.Println("Date info retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Date info retrieved successfully",
		Data: fiber.Map{
			"today":    now.Format("2006-01-02"),
			"now":      now.Format("2006-01-02 15:04:05"),
			"timezone": dc.Location.String(),
		},
	})
}

// GetToday returns today's calendar info with local day boundaries
// @Summary Today's Date Info
// @Description Return today's date with its local start-of-day and end-of-day instants
// @Tags Dates
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/date-utils/today [get]
func (dc *DateController) GetToday(c fiber.Ctx) error {
	now := time.Now().In(dc.Location)
	startOfDay := utils.StartOfDay(now, dc.Location)
	endOfDay := utils.EndOfDay(now, dc.Location)

	log.Println("Today info retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Today info retrieved successfully",
		Data: fiber.Map{
			"date":       now.Format("2006-01-02"),
			"dayOfWeek":  now.Weekday().String(),
			"dayOfMonth": now.Day(),
			"month":      now.Month().String(),
			"year":       now.Year(),
			"startOfDay": startOfDay.Format("2006-01-02 15:04:05"),
			"endOfDay":   endOfDay.Format("2006-01-02 15:04:05"),
		},
	})
}

// GetThisWeek returns this week's date window
// @Summary This Week's Date Info
// @Description Return the Sunday-based week window around today with each day's date
// @Tags Dates
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/date-utils/this-week [get]
func (dc *DateController) GetThisWeek(c fiber.Ctx) error {
	now := time.Now().In(dc.Location)
	startOfWeek := utils.StartOfWeek(now, dc.Location)
	endOfWeek := startOfWeek.AddDate(0, 0, 6)

	days := fiber.Map{}
	for i := 0; i < 7; i++ {
		day := startOfWeek.AddDate(0, 0, i)
		days[day.Weekday().String()] = day.Format("2006-01-02")
	}

	log.Println("Week info retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Week info retrieved successfully",
		Data: fiber.Map{
			"startDate": startOfWeek.Format("2006-01-02"),
			"endDate":   endOfWeek.Format("2006-01-02"),
			"days":      days,
		},
	})
}

// GetThisMonth returns this month's date window
// @Summary This Month's Date Info
// @Description Return the current month's first and last day with the month's length
// @Tags Dates
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/date-utils/this-month [get]
func (dc *DateController) GetThisMonth(c fiber.Ctx) error {
	now := time.Now().In(dc.Location)
	startOfMonth := utils.StartOfMonth(now, dc.Location)
	endOfMonth := startOfMonth.AddDate(0, 1, -1)

	log.Println("Month info retrieved successfully")
	return c.Status(fiber.StatusOK).JSON(utils.SuccessResponse{
		Success: true,
		Message: "Month info retrieved successfully",
		Data: fiber.Map{
			"month":       now.Month().String(),
			"year":        now.Year(),
			"startDate":   startOfMonth.Format("2006-01-02"),
			"endDate":     endOfMonth.Format("2006-01-02"),
			"daysInMonth": endOfMonth.Day(),
		},
	})
}
