package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderhub/models"
	catalogService "wanderhub/services/catalog"
	"wanderhub/utils"
)

// Catalog handlers: per-vertical service registration, profile management and
// inventory (rooms, vehicles). All mutating endpoints act as the authenticated
// provider.

func RegisterTaxiHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		var req models.TaxiUnit
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		taxi, err := svc.RegisterTaxi(c.Request.Context(), providerID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, taxi)
	}
}

func TaxiProfileHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		taxi, err := svc.TaxiProfile(c.Request.Context(), providerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, taxi)
	}
}

func UpdateTaxiProfileHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		var req catalogService.TaxiProfileUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		taxi, err := svc.UpdateTaxiProfile(c.Request.Context(), providerID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, taxi)
	}
}

func ListTaxisHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		taxis, err := svc.ListTaxis(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": taxis, "count": len(taxis)})
	}
}

func RegisterStayHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		var req models.Stay
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		stay, err := svc.RegisterStay(c.Request.Context(), providerID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, stay)
	}
}

func StayProfileHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		stay, rooms, err := svc.StayProfile(c.Request.Context(), providerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"stay": stay, "rooms": rooms})
	}
}

func UpdateStayProfileHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		var req catalogService.StayProfileUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		stay, err := svc.UpdateStayProfile(c.Request.Context(), providerID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stay)
	}
}

func ListStaysHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stays, err := svc.ListStays(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": stays, "count": len(stays)})
	}
}

func AddRoomHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		var req models.RoomUnit
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		room, err := svc.AddRoom(c.Request.Context(), providerID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, room)
	}
}

func UpdateRoomHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}
		roomID := c.Param("id")

		var req catalogService.RoomUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		room, err := svc.UpdateRoom(c.Request.Context(), providerID, roomID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

func DeleteRoomHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}
		roomID := c.Param("id")

		if err := svc.DeleteRoom(c.Request.Context(), providerID, roomID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
	}
}

func RegisterGuideHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		var req models.GuideUnit
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		guide, err := svc.RegisterGuide(c.Request.Context(), providerID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, guide)
	}
}

func GuideProfileHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		guide, err := svc.GuideProfile(c.Request.Context(), providerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, guide)
	}
}

func UpdateGuideProfileHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		var req catalogService.GuideProfileUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		guide, err := svc.UpdateGuideProfile(c.Request.Context(), providerID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, guide)
	}
}

func ListGuidesHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		guides, err := svc.ListGuides(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": guides, "count": len(guides)})
	}
}

func RegisterRentalHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		var req models.RentalCompany
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		company, err := svc.RegisterRental(c.Request.Context(), providerID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, company)
	}
}

func RentalProfileHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		company, vehicles, err := svc.RentalProfile(c.Request.Context(), providerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"company": company, "vehicles": vehicles})
	}
}

func ListRentalCompaniesHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		companies, err := svc.ListRentalCompanies(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": companies, "count": len(companies)})
	}
}

func AddVehicleHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}

		var req models.RentalVehicleUnit
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		vehicle, err := svc.AddVehicle(c.Request.Context(), providerID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, vehicle)
	}
}

func UpdateVehicleHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}
		vehicleID := c.Param("id")

		var req catalogService.VehicleUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		vehicle, err := svc.UpdateVehicle(c.Request.Context(), providerID, vehicleID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, vehicle)
	}
}

func DeleteVehicleHandler(svc catalogService.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID, ok := subjectID(c, "providerID")
		if !ok {
			return
		}
		vehicleID := c.Param("id")

		if err := svc.DeleteVehicle(c.Request.Context(), providerID, vehicleID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
	}
}
