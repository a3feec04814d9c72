package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study_assist/internal/model"
)

func TestRegisterAndLogin(t *testing.T) {
	userID := registerTestUser(t, "Flow User", "flow@example.com")
	require.NotEmpty(t, userID)

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/register", map[string]interface{}{
			"name":     "Other",
			"email":    "flow@example.com",
			"password": "password123",
		}, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DUPLICATE_EMAIL", decodeError(t, rec).Error.Code)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/register", map[string]interface{}{
			"name": "No Email",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/register", map[string]interface{}{
			"name":     "Short",
			"email":    "short@example.com",
			"password": "short",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("login succeeds with the registered password", func(t *testing.T) {
		var resp model.LoginResponse
		rec := doRequest(t, http.MethodPost, "/api/v1/login", map[string]interface{}{
			"email":    "flow@example.com",
			"password": "password123",
		}, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, resp.UserID.String())
		assert.Equal(t, "Login successful", resp.Message)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/login", map[string]interface{}{
			"email":    "flow@example.com",
			"password": "wrong-password",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListResources(t *testing.T) {
	t.Run("lists the seeded catalog", func(t *testing.T) {
		var resp model.ResourceListResponse
		rec := doRequest(t, http.MethodGet, "/api/v1/resources", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.GreaterOrEqual(t, resp.Count, 6)
		assert.Len(t, resp.Resources, resp.Count)

		// rating DESC ordering
		for i := 1; i < len(resp.Resources); i++ {
			assert.GreaterOrEqual(t, resp.Resources[i-1].Rating, resp.Resources[i].Rating)
		}
	})

	t.Run("filters by topic", func(t *testing.T) {
		var resp model.ResourceListResponse
		rec := doRequest(t, http.MethodGet, "/api/v1/resources?topic=Anatomy", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Greater(t, resp.Count, 0)
		for _, res := range resp.Resources {
			assert.Equal(t, "Anatomy", res.Topic)
		}
	})

	t.Run("unknown topic returns an empty list, not an error", func(t *testing.T) {
		var resp model.ResourceListResponse
		rec := doRequest(t, http.MethodGet, "/api/v1/resources?topic=Alchemy", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, resp.Count)
	})
}

func TestLogStudy(t *testing.T) {
	userID := registerTestUser(t, "Logger", "logger@example.com")

	t.Run("logs a session", func(t *testing.T) {
		var resp model.LogStudyResponse
		rec := doRequest(t, http.MethodPost, "/api/v1/log-study", map[string]interface{}{
			"user_id":       userID,
			"topic":         "Anatomy",
			"struggle_area": "memorization",
			"duration":      45,
			"mood":          4,
		}, &resp)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Study session logged", resp.Message)
	})

	t.Run("mood out of range is rejected", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/log-study", map[string]interface{}{
			"user_id":       userID,
			"topic":         "Anatomy",
			"struggle_area": "memorization",
			"duration":      45,
			"mood":          6,
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/log-study", map[string]interface{}{
			"user_id": userID,
			"topic":   "Anatomy",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecommend(t *testing.T) {
	userID := registerTestUser(t, "Rec User", "rec@example.com")

	t.Run("returns a learning path with a wellness tip", func(t *testing.T) {
		var resp model.RecommendResponse
		rec := doRequest(t, http.MethodPost, "/api/v1/recommend", map[string]interface{}{
			"user_id":       userID,
			"current_topic": "Anatomy",
			"struggle_area": "terminology",
		}, &resp)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.NotEmpty(t, resp.LearningPath)
		assert.LessOrEqual(t, len(resp.LearningPath), 4)
		for _, res := range resp.LearningPath {
			assert.Equal(t, "Anatomy", res.Topic)
		}
		assert.NotEmpty(t, resp.WellnessTip.Tip)
	})

	t.Run("unknown user returns not found", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/recommend", map[string]interface{}{
			"user_id":       uuid.New().String(),
			"current_topic": "Anatomy",
		}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decodeError(t, rec).Error.Code)
	})

	t.Run("topic without resources returns not found", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/recommend", map[string]interface{}{
			"user_id":       userID,
			"current_topic": "Alchemy",
		}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NO_RESOURCES", decodeError(t, rec).Error.Code)
	})

	t.Run("missing current_topic is rejected", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/recommend", map[string]interface{}{
			"user_id": userID,
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecommendations(t *testing.T) {
	t.Run("returns top resources for the topic", func(t *testing.T) {
		var resp model.RecommendationsResponse
		rec := doRequest(t, http.MethodGet, "/api/v1/recommendations?topic=Anatomy&user_id=abc", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "abc", resp.UserID)
		assert.Equal(t, "Anatomy", resp.Topic)
		assert.NotEmpty(t, resp.Recommendations)
		assert.LessOrEqual(t, len(resp.Recommendations), 6)
	})

	t.Run("missing topic is rejected", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/recommendations", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWellness(t *testing.T) {
	t.Run("lists the seeded tips", func(t *testing.T) {
		var resp model.WellnessTipsResponse
		rec := doRequest(t, http.MethodGet, "/api/v1/wellness", nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.GreaterOrEqual(t, resp.Count, 4)
	})

	t.Run("score reflects logged moods", func(t *testing.T) {
		userID := registerTestUser(t, "Score User", "score@example.com")
		for _, mood := range []int{5, 4, 3} {
			rec := doRequest(t, http.MethodPost, "/api/v1/log-study", map[string]interface{}{
				"user_id":       userID,
				"topic":         "Anatomy",
				"struggle_area": "recall",
				"duration":      30,
				"mood":          mood,
			}, nil)
			require.Equal(t, http.StatusOK, rec.Code)
		}

		var resp model.WellnessScoreResponse
		rec := doRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/wellness-score/%s", userID), nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 80.0, resp.Score)
		assert.Equal(t, 3, resp.Sessions)
	})

	t.Run("user with no sessions scores zero", func(t *testing.T) {
		userID := registerTestUser(t, "Fresh User", "fresh@example.com")
		var resp model.WellnessScoreResponse
		rec := doRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/wellness-score/%s", userID), nil, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0.0, resp.Score)
		assert.Equal(t, 0, resp.Sessions)
	})

	t.Run("invalid user id in path is rejected", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/wellness-score/not-a-uuid", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestScheduleBreak(t *testing.T) {
	userID := registerTestUser(t, "Sched User", "sched@example.com")

	t.Run("chunks the duration and stores the schedule", func(t *testing.T) {
		var resp model.ScheduleBreakResponse
		rec := doRequest(t, http.MethodPost, "/api/v1/schedule-break", map[string]interface{}{
			"user_id":        userID,
			"study_duration": 60,
		}, &resp)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Len(t, resp.Schedule, 3)

		total := 0
		for _, b := range resp.Schedule {
			total += b.StudyMinutes
		}
		assert.Equal(t, 60, total)
		assert.Equal(t, 0, resp.Schedule[2].BreakMinutes)

		var history model.ScheduleListResponse
		rec = doRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/schedules/%s", userID), nil, &history)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotEmpty(t, history.Schedules)
		assert.Len(t, history.Schedules[0].Schedule, 3)
	})

	t.Run("low mood lengthens the break", func(t *testing.T) {
		lowID := registerTestUser(t, "Low Mood", "lowmood@example.com")
		rec := doRequest(t, http.MethodPost, "/api/v1/log-study", map[string]interface{}{
			"user_id":       lowID,
			"topic":         "Anatomy",
			"struggle_area": "fatigue",
			"duration":      30,
			"mood":          2,
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp model.ScheduleBreakResponse
		rec = doRequest(t, http.MethodPost, "/api/v1/schedule-break", map[string]interface{}{
			"user_id":        lowID,
			"study_duration": 50,
		}, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, resp.Schedule, 2)
		assert.Equal(t, 10, resp.Schedule[0].BreakMinutes)
	})

	t.Run("non-positive duration is rejected", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, "/api/v1/schedule-break", map[string]interface{}{
			"user_id":        userID,
			"study_duration": 0,
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
