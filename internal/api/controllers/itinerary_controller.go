package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderai/internal/models/request_models"
	"wanderai/internal/models/response_models"
	"wanderai/internal/services"
	"wanderai/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Generate handles POST /api/generate: validate, call the AI provider (with
// fallback), persist and return the new itinerary.
func (i *ItineraryController) Generate(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	userID := c.GetString("user_id")

	itinerary, err := i.itineraryService.CreateItinerary(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.GenerateResponse{
		Message:   "Itinerary generated successfully",
		Itinerary: *itinerary,
	})
}

func (i *ItineraryController) List(c *gin.Context) {
	userID := c.GetString("user_id")

	itineraries, err := i.itineraryService.ListItineraries(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, itineraries)
}

func (i *ItineraryController) Get(c *gin.Context) {
	userID := c.GetString("user_id")

	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, itinerary)
}

// GetBreakdown serves the parsed day/activity view with directions links.
func (i *ItineraryController) GetBreakdown(c *gin.Context) {
	userID := c.GetString("user_id")

	breakdown, err := i.itineraryService.GetItineraryBreakdown(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

func (i *ItineraryController) ExportPDF(c *gin.Context) {
	userID := c.GetString("user_id")

	pdf, filename, err := i.itineraryService.ExportItineraryPDF(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (i *ItineraryController) Delete(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Itinerary deleted successfully")
}
