package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Geraxi/Flight-Fuel-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock type for the ProfileRepository interface.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateProfile(profile *models.BiometricProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetProfileByUserID(userID string) (*models.BiometricProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BiometricProfile), args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(profile *models.BiometricProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteProfile(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockNutritionLogRepository is a mock type for the NutritionLogRepository interface.
type MockNutritionLogRepository struct {
	mock.Mock
}

func (m *MockNutritionLogRepository) CreateLog(entry *models.NutritionLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockNutritionLogRepository) GetLogsByUserAndDate(userID, date string) ([]*models.NutritionLog, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.NutritionLog), args.Error(1)
}

func (m *MockNutritionLogRepository) DeleteLog(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNutritionLogRepository) PurgeDeletedBefore(cutoff time.Time) (int64, error) {
	args := m.Called(cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func newTrackingServiceForTest(profileRepo *MockProfileRepository, logRepo *MockNutritionLogRepository) TrackingService {
	return NewTrackingService(profileRepo, logRepo, NewEnergyService(), NewNutritionParserService())
}

func TestGetTargetsForUser(t *testing.T) {
	t.Run("with stored profile", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		logRepo := new(MockNutritionLogRepository)
		profileRepo.On("GetProfileByUserID", "user-1").Return(validProfile(), nil)

		targets, err := newTrackingServiceForTest(profileRepo, logRepo).GetTargetsForUser("user-1")
		assert.NoError(t, err)
		assert.Equal(t, 2720, targets.TargetCalories)
		profileRepo.AssertExpectations(t)
	})

	t.Run("no profile degrades to fallback targets", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		logRepo := new(MockNutritionLogRepository)
		profileRepo.On("GetProfileByUserID", "user-2").Return(nil, nil)

		targets, err := newTrackingServiceForTest(profileRepo, logRepo).GetTargetsForUser("user-2")
		assert.NoError(t, err)
		assert.Equal(t, 2000, targets.TDEE)
		assert.Equal(t, 2000, targets.TargetCalories)
	})

	t.Run("empty userID", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		logRepo := new(MockNutritionLogRepository)

		_, err := newTrackingServiceForTest(profileRepo, logRepo).GetTargetsForUser("")
		assert.Error(t, err)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		logRepo := new(MockNutritionLogRepository)
		profileRepo.On("GetProfileByUserID", "user-3").Return(nil, errors.New("db down"))

		_, err := newTrackingServiceForTest(profileRepo, logRepo).GetTargetsForUser("user-3")
		assert.Error(t, err)
	})
}

func TestGetDailyProgress(t *testing.T) {
	t.Run("sums the day's entries", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		logRepo := new(MockNutritionLogRepository)
		profileRepo.On("GetProfileByUserID", "user-1").Return(validProfile(), nil)
		logRepo.On("GetLogsByUserAndDate", "user-1", "2026-08-28").Return([]*models.NutritionLog{
			{Calories: 500, ProteinG: 40, CarbsG: 50, FatG: 10},
			{Calories: 700, ProteinG: 35, CarbsG: 80, FatG: 20},
		}, nil)

		progress, err := newTrackingServiceForTest(profileRepo, logRepo).GetDailyProgress("user-1", "2026-08-28")
		assert.NoError(t, err)
		assert.Equal(t, 1200.0, progress.Consumed.Calories)
		assert.Equal(t, 75.0, progress.Consumed.ProteinG)
		assert.Equal(t, 1520, progress.CaloriesRemaining) // 2720 - 1200
		assert.Equal(t, 44, progress.PercentComplete)     // 1200/2720 = 44.1%
		assert.Equal(t, models.CalorieStatusNormal, progress.Status)
		logRepo.AssertExpectations(t)
	})

	t.Run("empty day", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		logRepo := new(MockNutritionLogRepository)
		profileRepo.On("GetProfileByUserID", "user-1").Return(validProfile(), nil)
		logRepo.On("GetLogsByUserAndDate", "user-1", "2026-08-28").Return([]*models.NutritionLog{}, nil)

		progress, err := newTrackingServiceForTest(profileRepo, logRepo).GetDailyProgress("user-1", "2026-08-28")
		assert.NoError(t, err)
		assert.Equal(t, 0, progress.PercentComplete)
		assert.Equal(t, progress.Targets.TargetCalories, progress.CaloriesRemaining)
	})

	t.Run("invalid date falls back to today", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		logRepo := new(MockNutritionLogRepository)
		today := time.Now().Format("2006-01-02")
		profileRepo.On("GetProfileByUserID", "user-1").Return(validProfile(), nil)
		logRepo.On("GetLogsByUserAndDate", "user-1", today).Return([]*models.NutritionLog{}, nil)

		_, err := newTrackingServiceForTest(profileRepo, logRepo).GetDailyProgress("user-1", "not-a-date")
		assert.NoError(t, err)
		logRepo.AssertExpectations(t)
	})
}

func TestLogMeal(t *testing.T) {
	t.Run("parses and stores", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		logRepo := new(MockNutritionLogRepository)
		logRepo.On("CreateLog", mock.MatchedBy(func(e *models.NutritionLog) bool {
			return e.UserID == "user-1" && e.Date == "2026-08-28" && e.Calories == 476
		})).Return(nil)

		entry, err := newTrackingServiceForTest(profileRepo, logRepo).
			LogMeal("user-1", "2026-08-28", "130g cous cous and 200g chicken")
		assert.NoError(t, err)
		assert.Equal(t, 476.0, entry.Calories)
		assert.Equal(t, "130g cous cous and 200g chicken", entry.Description)
		logRepo.AssertExpectations(t)
	})

	t.Run("unparseable text is stored with zero macros", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		logRepo := new(MockNutritionLogRepository)
		logRepo.On("CreateLog", mock.MatchedBy(func(e *models.NutritionLog) bool {
			return e.Calories == 0 && e.Description == "2 eggs"
		})).Return(nil)

		entry, err := newTrackingServiceForTest(profileRepo, logRepo).LogMeal("user-1", "2026-08-28", "2 eggs")
		assert.NoError(t, err)
		assert.Equal(t, 0.0, entry.Calories)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		logRepo := new(MockNutritionLogRepository)
		logRepo.On("CreateLog", mock.Anything).Return(errors.New("db down"))

		_, err := newTrackingServiceForTest(profileRepo, logRepo).LogMeal("user-1", "", "100g rice")
		assert.Error(t, err)
	})
}
