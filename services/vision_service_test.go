package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abeercodezyra-ops/Nutrivision-AI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisionNormalizeObjectsAndLabels(t *testing.T) {
	var resp visionResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"responses": [{
			"labelAnnotations": [
				{"description": "Cuisine", "score": 0.95},
				{"description": "Pasta", "score": 0.88}
			],
			"localizedObjectAnnotations": [{
				"name": "Food",
				"score": 0.9,
				"boundingPoly": {"normalizedVertices": [
					{"x": 0.2, "y": 0.25},
					{"x": 0.55, "y": 0.25},
					{"x": 0.55, "y": 0.65},
					{"x": 0.2, "y": 0.65}
				]}
			}]
		}]
	}`), &resp))

	items := (&VisionService{}).Normalize(&resp)
	require.Len(t, items, 3)

	// localized objects come first and carry real regions
	assert.Equal(t, "Food", items[0].Name)
	assert.Equal(t, 90.0, items[0].Confidence)
	assert.InDelta(t, 20, items[0].BoundingBox.X, 1e-9)
	assert.InDelta(t, 25, items[0].BoundingBox.Y, 1e-9)
	assert.InDelta(t, 35, items[0].BoundingBox.Width, 1e-9)
	assert.InDelta(t, 40, items[0].BoundingBox.Height, 1e-9)

	// labels follow with empty regions
	assert.Equal(t, "Cuisine", items[1].Name)
	assert.Equal(t, models.BoundingBox{}, items[1].BoundingBox)
	assert.Equal(t, "Pasta", items[2].Name)
}

func TestVisionNormalizeIncompletePoly(t *testing.T) {
	box := boxFromVertices([]visionVertex{{X: 0.1, Y: 0.1}})
	assert.Equal(t, models.BoundingBox{}, box)
}

func TestVisionNormalizeEmptyResponse(t *testing.T) {
	assert.Empty(t, (&VisionService{}).Normalize(nil))
	assert.Empty(t, (&VisionService{}).Normalize(&visionResponse{}))
}

func TestVisionDetect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images:annotate", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responses": [{"labelAnnotations": [{"description": "Salad", "score": 0.81}]}]}`))
	}))
	defer srv.Close()

	svc := &VisionService{
		apiKey:  "test-key",
		baseURL: srv.URL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
	items, err := svc.DetectItems(context.Background(), []byte("fake-image"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Salad", items[0].Name)
	assert.Equal(t, 81.0, items[0].Confidence)
}

func TestVisionDetectRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	svc := &VisionService{
		apiKey:  "test-key",
		baseURL: srv.URL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
	_, err := svc.DetectItems(context.Background(), []byte("fake-image"))

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "google-vision", provErr.Provider)
	assert.Equal(t, http.StatusForbidden, provErr.Status)
}
