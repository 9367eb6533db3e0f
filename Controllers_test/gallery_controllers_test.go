package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/savoria/restaurant-backend/controllers"
)

func setupGalleryRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	galleryCtrl := controllers.NewGalleryController(db)
	r.GET("/api/gallery", galleryCtrl.GetGallery)
	return r
}

func TestGetGalleryReturnsSeed(t *testing.T) {
	db := newTestStore(t)
	r := setupGalleryRouter(db)

	w := performRequest(t, r, "GET", "/api/gallery", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []map[string]interface{}
	decodeBody(t, w, &items)
	assert.Len(t, items, 6)
	assert.Equal(t, "Signature Pasta", items[0]["title"])
}

func TestGetGalleryCategoryFilter(t *testing.T) {
	db := newTestStore(t)
	r := setupGalleryRouter(db)

	cases := []struct {
		query string
		want  int
	}{
		{"/api/gallery?category=dishes", 2},
		{"/api/gallery?category=ambience", 2},
		{"/api/gallery?category=events", 2},
		{"/api/gallery?category=all", 6},
		// Menu categories do not leak into the gallery's category domain.
		{"/api/gallery?category=starters", 0},
	}

	for _, tc := range cases {
		w := performRequest(t, r, "GET", tc.query, nil)
		assert.Equal(t, http.StatusOK, w.Code, tc.query)

		var items []map[string]interface{}
		decodeBody(t, w, &items)
		assert.Len(t, items, tc.want, tc.query)
	}
}
