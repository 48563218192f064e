package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderhub/models"
	bookingService "wanderhub/services/booking"
	"wanderhub/utils"
)

// Availability search handlers. Criteria arrive as query parameters; the
// booking service validates the required fields per vertical.

func SearchTaxisHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var search models.TaxiSearch
		if err := c.ShouldBindQuery(&search); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		taxis, err := svc.FindAvailableTaxis(c.Request.Context(), search)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": taxis, "count": len(taxis)})
	}
}

func SearchStaysHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var search models.StaySearch
		if err := c.ShouldBindQuery(&search); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		stays, err := svc.FindAvailableStays(c.Request.Context(), search)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": stays, "count": len(stays)})
	}
}

func SearchGuidesHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var search models.GuideSearch
		if err := c.ShouldBindQuery(&search); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		guides, err := svc.FindAvailableGuides(c.Request.Context(), search)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": guides, "count": len(guides)})
	}
}

func SearchVehiclesHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var search models.RentalSearch
		if err := c.ShouldBindQuery(&search); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		vehicles, err := svc.FindAvailableVehicles(c.Request.Context(), search)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": vehicles, "count": len(vehicles)})
	}
}

// Booking creation handlers. The acting user comes from the auth middleware.

func CreateTaxiBookingHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := subjectID(c, "userID")
		if !ok {
			return
		}

		var req models.TaxiBookingInput
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		b, err := svc.CreateTaxiBooking(c.Request.Context(), userID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

func CreateStayBookingHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := subjectID(c, "userID")
		if !ok {
			return
		}

		var req models.StayBookingInput
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		b, err := svc.CreateStayBooking(c.Request.Context(), userID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

func CreateGuideBookingHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := subjectID(c, "userID")
		if !ok {
			return
		}

		var req models.GuideBookingInput
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		b, err := svc.CreateGuideBooking(c.Request.Context(), userID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

func CreateRentalBookingHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := subjectID(c, "userID")
		if !ok {
			return
		}

		var req models.RentalBookingInput
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		b, err := svc.CreateRentalBooking(c.Request.Context(), userID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

// ChangeBookingStatusHandler lets the owning provider move a booking through
// the status state machine.
func ChangeBookingStatusHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}
		bookingID := c.Param("id")

		var req struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		b, err := svc.ChangeStatus(c.Request.Context(), providerID, bookingID, models.BookingStatus(req.Status))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// CancelBookingHandler lets the booking's user cancel it, freeing the slot.
func CancelBookingHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := subjectID(c, "userID")
		if !ok {
			return
		}
		bookingID := c.Param("id")

		b, err := svc.CancelByUser(c.Request.Context(), userID, bookingID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// UserBookingsHandler returns the user's booking history grouped by vertical.
func UserBookingsHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := subjectID(c, "userID")
		if !ok {
			return
		}

		history, err := svc.UserBookings(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// ServiceBookingsHandler returns the bookings placed against the provider's
// service registration, newest first.
func ServiceBookingsHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		bookings, err := svc.ServiceBookings(c.Request.Context(), providerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": bookings, "count": len(bookings)})
	}
}
