package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClarifai(baseURL string) *ClarifaiService {
	return &ClarifaiService{
		apiKey:         "test-key",
		userID:         "clarifai",
		appID:          "main",
		modelID:        "food-item-v1-clustering",
		modelVersionID: "v1",
		baseURL:        baseURL,
		client:         &http.Client{Timeout: 5 * time.Second},
	}
}

func TestClarifaiNormalizeConcepts(t *testing.T) {
	var resp clarifaiResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"outputs": [{"data": {"concepts": [
			{"id": "ai_1", "name": "pizza", "value": 0.987},
			{"id": "ai_2", "name": "", "value": 0.42},
			{"id": "", "name": "", "value": 0.9}
		]}}]
	}`), &resp))

	items := (&ClarifaiService{}).Normalize(&resp)
	require.Len(t, items, 2)
	assert.Equal(t, "pizza", items[0].Name)
	assert.Equal(t, 99.0, items[0].Confidence)
	// nameless concepts fall back to their id
	assert.Equal(t, "ai_2", items[1].Name)
	assert.Equal(t, 42.0, items[1].Confidence)
}

func TestClarifaiNormalizeClusters(t *testing.T) {
	var resp clarifaiResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"outputs": [{"data": {"clusters": [
			{"id": "cluster-7", "value": 0.8, "concepts": [
				{"name": "samosa", "value": 0.91}
			]}
		]}}]
	}`), &resp))

	items := (&ClarifaiService{}).Normalize(&resp)
	require.Len(t, items, 2)
	assert.Equal(t, "samosa", items[0].Name)
	assert.Equal(t, "cluster-7", items[1].Name)
	assert.Equal(t, 80.0, items[1].Confidence)
}

func TestClarifaiNormalizeRegions(t *testing.T) {
	var resp clarifaiResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"outputs": [{"data": {"regions": [
			{"data": {"concepts": [{"name": "dosa", "value": 0.76}]}},
			{"data": {"concepts": [{"name": "chutney", "score": 0.6}]}}
		]}}]
	}`), &resp))

	items := (&ClarifaiService{}).Normalize(&resp)
	require.Len(t, items, 2)
	assert.Equal(t, "dosa", items[0].Name)
	assert.Equal(t, 76.0, items[0].Confidence)
	// score is accepted where value is absent
	assert.Equal(t, 60.0, items[1].Confidence)
}

func TestClarifaiNormalizeUnknownShape(t *testing.T) {
	var resp clarifaiResponse
	require.NoError(t, json.Unmarshal([]byte(`{"outputs": [{"data": {}}]}`), &resp))

	assert.Empty(t, (&ClarifaiService{}).Normalize(&resp))
	assert.Empty(t, (&ClarifaiService{}).Normalize(nil))
	assert.Empty(t, (&ClarifaiService{}).Normalize(&clarifaiResponse{}))
}

func TestClarifaiDetect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/models/food-item-v1-clustering/versions/v1/outputs", r.URL.Path)
		assert.Equal(t, "Key test-key", r.Header.Get("Authorization"))

		var payload struct {
			Inputs []struct {
				Data struct {
					Image struct {
						Base64 string `json:"base64"`
					} `json:"image"`
				} `json:"data"`
			} `json:"inputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Inputs, 1)
		assert.NotEmpty(t, payload.Inputs[0].Data.Image.Base64)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"outputs": [{"data": {"concepts": [{"name": "burger", "value": 0.93}]}}]}`))
	}))
	defer srv.Close()

	svc := testClarifai(srv.URL)
	items, err := svc.DetectItems(context.Background(), []byte("fake-image"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "burger", items[0].Name)
	assert.Equal(t, 93.0, items[0].Confidence)
}

func TestClarifaiDetectRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status": {"description": "invalid key"}}`))
	}))
	defer srv.Close()

	svc := testClarifai(srv.URL)
	_, err := svc.DetectItems(context.Background(), []byte("fake-image"))

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "clarifai", provErr.Provider)
	assert.Equal(t, http.StatusUnauthorized, provErr.Status)
}

func TestClarifaiNotConfigured(t *testing.T) {
	svc := &ClarifaiService{}
	assert.False(t, svc.Configured())

	_, err := svc.Detect(context.Background(), nil)
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
}
