package api

import (
	"net/http"

	"github.com/Geraxi/Flight-Fuel-sub000/models"
	"github.com/Geraxi/Flight-Fuel-sub000/utils"

	"github.com/gin-gonic/gin"
)

// flightEstimateResponse bundles the route estimate with its phase plan.
type flightEstimateResponse struct {
	Estimate *models.FlightEstimate `json:"estimate"`
	Phases   []models.Phase         `json:"phases"`
}

// EstimateFlightHandler returns distance, duration and the feeding-phase
// plan for an origin/destination pair. Both codes must exist in the airport
// catalog; the estimator is never invoked for an unknown code.
func (h *APIHandler) EstimateFlightHandler(c *gin.Context) {
	origin := c.Query("origin")
	dest := c.Query("dest")
	if origin == "" || dest == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "origin and dest query params are required.", nil)
		return
	}

	if _, ok := h.flightService.GetAirport(origin); !ok {
		utils.SendJSONError(c, http.StatusNotFound, "Unknown origin airport code.", nil, origin)
		return
	}
	if _, ok := h.flightService.GetAirport(dest); !ok {
		utils.SendJSONError(c, http.StatusNotFound, "Unknown destination airport code.", nil, dest)
		return
	}

	estimate, err := h.flightService.EstimateRoute(origin, dest)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to estimate route.", err)
		return
	}

	c.JSON(http.StatusOK, flightEstimateResponse{
		Estimate: estimate,
		Phases:   h.phaseService.GeneratePhasePlan(estimate.Hours, estimate.Minutes),
	})
}

// ListAirportsHandler returns the static airport catalog.
func (h *APIHandler) ListAirportsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.flightService.ListAirports())
}

// DailyPlanHandler returns the duration-agnostic default phase plan.
func (h *APIHandler) DailyPlanHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.phaseService.GenerateDefaultPlan())
}
