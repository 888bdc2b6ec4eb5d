package api

import (
	"math/rand"
	"net/http"

	"github.com/Geraxi/Flight-Fuel-sub000/models"
	"github.com/Geraxi/Flight-Fuel-sub000/utils"

	"github.com/gin-gonic/gin"
)

// generateProgramRequest is the payload for program generation. Seed is
// optional; omitting it gets a fresh random program on every call.
type generateProgramRequest struct {
	Preferences models.TrainingPreferences `json:"preferences"`
	Seed        *int64                     `json:"seed,omitempty"`
}

// GenerateProgramHandler builds a multi-day training program from the user's
// preferences.
func (h *APIHandler) GenerateProgramHandler(c *gin.Context) {
	var req generateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request payload.", err)
		return
	}

	seed := rand.Int63()
	if req.Seed != nil {
		seed = *req.Seed
	}

	sessions, err := h.workoutService.GenerateProgram(req.Preferences, seed)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"seed":     seed,
		"sessions": sessions,
	})
}

// substituteRequest identifies one log entry's original catalog exercise and
// its currently displayed name.
type substituteRequest struct {
	OriginalName string `json:"original_name"`
	CurrentName  string `json:"current_name"`
}

// SubstituteExerciseHandler returns the next alternative name in the closed
// substitution loop for an exercise.
func (h *APIHandler) SubstituteExerciseHandler(c *gin.Context) {
	var req substituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request payload.", err)
		return
	}
	if req.OriginalName == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "original_name is required.", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name": h.workoutService.SubstituteExercise(req.OriginalName, req.CurrentName),
	})
}

// ListExercisesHandler returns the static exercise catalog.
func (h *APIHandler) ListExercisesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.workoutService.Catalog())
}

// ScanMealHandler is the meal-photo "AI scan" placeholder. Image-based food
// recognition is not implemented; this returns a canned estimate so the app
// screen can be exercised end to end.
func (h *APIHandler) ScanMealHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stub":        true,
		"description": "Grilled chicken with rice and vegetables",
		"nutrition": models.ParsedNutrition{
			Calories: 520,
			ProteinG: 42,
			CarbsG:   55,
			FatG:     12,
		},
	})
}
