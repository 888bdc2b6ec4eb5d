package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Geraxi/Flight-Fuel-sub000/models"
	"github.com/Geraxi/Flight-Fuel-sub000/repository"
)

const dateFormat = "2006-01-02"

// TrackingService ties persisted profiles and nutrition logs to the pure
// calorie calculators: targets for a user, and progress for a user's day.
type TrackingService interface {
	GetTargetsForUser(userID string) (models.CalorieTargets, error)
	GetDailyProgress(userID string, dateStr string) (*models.DailyProgress, error)
	LogMeal(userID, dateStr, description string) (*models.NutritionLog, error)
}

type trackingService struct {
	profileRepo repository.ProfileRepository
	logRepo     repository.NutritionLogRepository
	energy      EnergyService
	parser      NutritionParserService
}

// NewTrackingService creates a new instance of TrackingService.
func NewTrackingService(
	profileRepo repository.ProfileRepository,
	logRepo repository.NutritionLogRepository,
	energy EnergyService,
	parser NutritionParserService,
) TrackingService {
	return &trackingService{
		profileRepo: profileRepo,
		logRepo:     logRepo,
		energy:      energy,
		parser:      parser,
	}
}

// GetTargetsForUser computes calorie targets from the user's stored profile.
// A user without a profile still gets targets, built on the calculator's
// documented fallbacks.
func (s *trackingService) GetTargetsForUser(userID string) (models.CalorieTargets, error) {
	if userID == "" {
		return models.CalorieTargets{}, errors.New("userID cannot be empty")
	}
	profile, err := s.profileRepo.GetProfileByUserID(userID)
	if err != nil {
		return models.CalorieTargets{}, fmt.Errorf("failed to load profile for targets: %w", err)
	}
	if profile == nil {
		log.Printf("INFO: [TrackingService] No profile for userID '%s', using fallback targets.", userID)
	}
	return s.energy.CalculateCalorieTargets(profile), nil
}

// GetDailyProgress aggregates a user's logged meals for one day against
// their targets. An empty or invalid date defaults to today.
func (s *trackingService) GetDailyProgress(userID string, dateStr string) (*models.DailyProgress, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}
	if dateStr == "" {
		dateStr = time.Now().Format(dateFormat)
	} else if _, err := time.Parse(dateFormat, dateStr); err != nil {
		log.Printf("WARN: [TrackingService] Invalid date '%s' for userID %s: %v. Defaulting to today.", dateStr, userID, err)
		dateStr = time.Now().Format(dateFormat)
	}

	targets, err := s.GetTargetsForUser(userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.logRepo.GetLogsByUserAndDate(userID, dateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to load nutrition logs for progress: %w", err)
	}

	var consumed models.ConsumedTotals
	for _, e := range entries {
		consumed.Calories += e.Calories
		consumed.ProteinG += e.ProteinG
		consumed.CarbsG += e.CarbsG
		consumed.FatG += e.FatG
	}

	progress := s.energy.CalculateDailyProgress(targets, consumed)
	return &progress, nil
}

// LogMeal parses a free-text meal description and persists the resulting
// entry for the given user and day. A description the parser cannot read is
// still stored, with zero macros, so the user keeps their journal entry.
func (s *trackingService) LogMeal(userID, dateStr, description string) (*models.NutritionLog, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty")
	}
	if dateStr == "" {
		dateStr = time.Now().Format(dateFormat)
	}

	parsed := s.parser.CalculateNutritionFromText(description)
	if parsed.IsZero() {
		log.Printf("INFO: [TrackingService] No nutrition detected in description for userID '%s'; storing zero-macro entry.", userID)
	}

	entry := &models.NutritionLog{
		UserID:      userID,
		Date:        dateStr,
		Description: description,
		Calories:    float64(parsed.Calories),
		ProteinG:    parsed.ProteinG,
		CarbsG:      parsed.CarbsG,
		FatG:        parsed.FatG,
	}
	if err := s.logRepo.CreateLog(entry); err != nil {
		return nil, fmt.Errorf("failed to store meal log: %w", err)
	}
	return entry, nil
}
