package timeslot

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apiclient"
	"github.com/nekogravitycat/court-booking-planner/internal/pkg/apperror"
)

// newFakeAPI serves total slots, one hour each from 06:00, in pages of page_size.
func newFakeAPI(t *testing.T, total int, badID int64) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/v1/timeslots", func(c *gin.Context) {
		if c.Query("court_id") == "500" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database unavailable"})
			return
		}
		assert.Equal(t, "3", c.Query("court_id"))
		page, _ := strconv.Atoi(c.Query("page"))
		size, _ := strconv.Atoi(c.Query("page_size"))

		items := []gin.H{}
		for i := (page-1)*size + 1; i <= total && i <= page*size; i++ {
			start := fmt.Sprintf("%02d:00", i%17+6)
			end := fmt.Sprintf("%02d:00", i%17+7)
			if int64(i) == badID {
				start = "noon"
			}
			items = append(items, gin.H{"id": i, "start_time": start, "end_time": end})
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "page": page, "page_size": size, "total": total})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestListCollectsEveryPage(t *testing.T) {
	srv := newFakeAPI(t, 230, 0)
	repo := NewAPIRepository(apiclient.New(srv.URL, zaptest.NewLogger(t)))

	slots, err := repo.List(context.Background(), Filter{CourtID: 3})
	require.NoError(t, err)
	require.Len(t, slots, 230)
	assert.Equal(t, int64(1), slots[0].ID)
	assert.Equal(t, int64(230), slots[229].ID)
	assert.Equal(t, WallClock{Hour: 7}, slots[0].Start)
}

func TestListEmpty(t *testing.T) {
	srv := newFakeAPI(t, 0, 0)
	repo := NewAPIRepository(apiclient.New(srv.URL, zaptest.NewLogger(t)))

	slots, err := repo.List(context.Background(), Filter{CourtID: 3})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestListRejectsMalformedTimes(t *testing.T) {
	srv := newFakeAPI(t, 5, 4)
	repo := NewAPIRepository(apiclient.New(srv.URL, zaptest.NewLogger(t)))

	_, err := repo.List(context.Background(), Filter{CourtID: 3})
	assert.ErrorIs(t, err, ErrInvalidWallClock)
}

func TestListUpstreamFailureIsBadGateway(t *testing.T) {
	srv := newFakeAPI(t, 5, 0)
	repo := NewAPIRepository(apiclient.New(srv.URL, zaptest.NewLogger(t)))

	_, err := repo.List(context.Background(), Filter{CourtID: 500})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
}
