package court

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apiclient"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apperror"
)

func newFakeCourtAPI(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/v1/courts", func(c *gin.Context) {
		assert.Equal(t, "10", c.Query("community_id"))
		c.JSON(http.StatusOK, gin.H{
			"items": []gin.H{
				{"id": 1, "name": "Court A", "community": gin.H{"id": 10, "name": "Riverside", "max_booking_days": 4}},
				{"id": 2, "name": "Court B", "community_id": 10, "max_booking_days": 1},
			},
			"page": 2, "page_size": 2, "total": 5,
		})
	})
	r.GET("/v1/courts/:id", func(c *gin.Context) {
		switch c.Param("id") {
		case "1":
			c.JSON(http.StatusOK, gin.H{"id": 1, "name": "Court A", "community_id": 10})
		case "500":
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database unavailable"})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
		}
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestAPIRepositoryGetByID(t *testing.T) {
	srv := newFakeCourtAPI(t)
	repo := NewAPIRepository(apiclient.New(srv.URL, zaptest.NewLogger(t)))
	ctx := context.Background()

	c, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Court A", c.Name)
	assert.Equal(t, int64(10), c.CommunityID)

	_, err = repo.GetByID(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, 500)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
	assert.Equal(t, "failed to load court", appErr.Message)

	var apiErr *apiclient.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestAPIRepositoryList(t *testing.T) {
	srv := newFakeCourtAPI(t)
	repo := NewAPIRepository(apiclient.New(srv.URL, zaptest.NewLogger(t)))

	courts, total, err := repo.List(context.Background(), Filter{CommunityID: 10, Page: 2, PageSize: 2})
	require.NoError(t, err)

	assert.Equal(t, 5, total)
	require.Len(t, courts, 2)
	require.NotNil(t, courts[0].Community)
	assert.Equal(t, int64(10), courts[0].CommunityID)
	assert.Equal(t, 4, *courts[0].Community.MaxBookingDays)
	assert.Nil(t, courts[1].Community)
	assert.Equal(t, 1, *courts[1].MaxBookingDays)
}
