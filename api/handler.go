package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Geraxi/Flight-Fuel-sub000/models"
	"github.com/Geraxi/Flight-Fuel-sub000/repository"
	"github.com/Geraxi/Flight-Fuel-sub000/services"
	"github.com/Geraxi/Flight-Fuel-sub000/utils"

	"github.com/gin-gonic/gin"
)

// APIHandler holds all dependencies for API handlers.
type APIHandler struct {
	profileRepo     repository.ProfileRepository
	logRepo         repository.NutritionLogRepository
	energyService   services.EnergyService
	parserService   services.NutritionParserService
	trackingService services.TrackingService
	flightService   services.FlightService
	phaseService    services.PhaseService
	workoutService  services.WorkoutService
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(
	profileRepo repository.ProfileRepository,
	logRepo repository.NutritionLogRepository,
	energyService services.EnergyService,
	parserService services.NutritionParserService,
	trackingService services.TrackingService,
	flightService services.FlightService,
	phaseService services.PhaseService,
	workoutService services.WorkoutService,
) *APIHandler {
	return &APIHandler{
		profileRepo:     profileRepo,
		logRepo:         logRepo,
		energyService:   energyService,
		parserService:   parserService,
		trackingService: trackingService,
		flightService:   flightService,
		phaseService:    phaseService,
		workoutService:  workoutService,
	}
}

// CreateProfileHandler stores a new biometric profile.
func (h *APIHandler) CreateProfileHandler(c *gin.Context) {
	var profile models.BiometricProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid profile payload.", err)
		return
	}
	if profile.UserID == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "user_id is required.", nil)
		return
	}

	existing, err := h.profileRepo.GetProfileByUserID(profile.UserID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to check existing profile.", err)
		return
	}
	if existing != nil {
		utils.SendJSONError(c, http.StatusConflict, "Profile already exists for this user.", nil)
		return
	}

	if err := h.profileRepo.CreateProfile(&profile); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to create profile.", err)
		return
	}
	log.Printf("INFO: [API] Created profile for userID '%s'.", profile.UserID)
	c.JSON(http.StatusCreated, profile)
}

// GetProfileHandler returns a user's stored profile.
func (h *APIHandler) GetProfileHandler(c *gin.Context) {
	userID := c.Param("userID")
	profile, err := h.profileRepo.GetProfileByUserID(userID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load profile.", err)
		return
	}
	if profile == nil {
		utils.SendJSONError(c, http.StatusNotFound, "Profile not found.", nil)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler replaces the mutable fields of a user's profile.
func (h *APIHandler) UpdateProfileHandler(c *gin.Context) {
	userID := c.Param("userID")
	existing, err := h.profileRepo.GetProfileByUserID(userID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load profile.", err)
		return
	}
	if existing == nil {
		utils.SendJSONError(c, http.StatusNotFound, "Profile not found.", nil)
		return
	}

	var update models.BiometricProfile
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid profile payload.", err)
		return
	}

	existing.HeightCM = update.HeightCM
	existing.WeightKG = update.WeightKG
	existing.Age = update.Age
	existing.ActivityLevel = update.ActivityLevel
	existing.Goal = update.Goal
	existing.TrainingFreq = update.TrainingFreq

	if err := h.profileRepo.UpdateProfile(existing); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to update profile.", err)
		return
	}
	c.JSON(http.StatusOK, existing)
}

// DeleteProfileHandler soft-deletes a user's profile.
func (h *APIHandler) DeleteProfileHandler(c *gin.Context) {
	userID := c.Param("userID")
	existing, err := h.profileRepo.GetProfileByUserID(userID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load profile.", err)
		return
	}
	if existing == nil {
		utils.SendJSONError(c, http.StatusNotFound, "Profile not found.", nil)
		return
	}
	if err := h.profileRepo.DeleteProfile(userID); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to delete profile.", err)
		return
	}
	log.Printf("INFO: [API] Deleted profile for userID '%s'.", userID)
	c.Status(http.StatusNoContent)
}

// GetTargetsHandler returns the calorie/macro targets for a user's profile.
func (h *APIHandler) GetTargetsHandler(c *gin.Context) {
	userID := c.Param("userID")
	targets, err := h.trackingService.GetTargetsForUser(userID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to compute targets.", err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

// GetDailyProgressHandler returns the user's consumed-vs-target progress for
// one day (query param "date", default today).
func (h *APIHandler) GetDailyProgressHandler(c *gin.Context) {
	userID := c.Param("userID")
	progress, err := h.trackingService.GetDailyProgress(userID, c.Query("date"))
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to compute daily progress.", err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// ParseNutritionHandler runs the free-text nutrition parser without
// persisting anything. All-zero output means nothing was recognized.
func (h *APIHandler) ParseNutritionHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request payload.", err)
		return
	}
	c.JSON(http.StatusOK, h.parserService.CalculateNutritionFromText(req.Text))
}

// LogMealHandler parses a meal description and stores it for the user/date.
func (h *APIHandler) LogMealHandler(c *gin.Context) {
	var req struct {
		UserID      string `json:"user_id"`
		Date        string `json:"date"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request payload.", err)
		return
	}
	entry, err := h.trackingService.LogMeal(req.UserID, req.Date, req.Description)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to log meal.", err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetMealLogsHandler returns a user's logged meals for one day.
func (h *APIHandler) GetMealLogsHandler(c *gin.Context) {
	userID := c.Param("userID")
	date := c.Query("date")
	entries, err := h.logRepo.GetLogsByUserAndDate(userID, date)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load meal logs.", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DeleteMealLogHandler soft-deletes one logged meal by ID.
func (h *APIHandler) DeleteMealLogHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid log ID.", err)
		return
	}
	if err := h.logRepo.DeleteLog(uint(id)); err != nil {
		utils.SendJSONError(c, http.StatusNotFound, "Meal log not found.", err)
		return
	}
	c.Status(http.StatusNoContent)
}
