package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/abeercodezyra-ops/Nutrivision-AI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDetector is a scripted recognition provider for chain tests.
type fakeDetector struct {
	name       string
	configured bool
	items      []models.DetectedItem
	err        error
	calls      int
}

func (f *fakeDetector) Name() string     { return f.name }
func (f *fakeDetector) Configured() bool { return f.configured }

func (f *fakeDetector) DetectItems(ctx context.Context, image []byte) ([]models.DetectedItem, error) {
	f.calls++
	return f.items, f.err
}

func TestDetectionServiceReady(t *testing.T) {
	none := NewDetectionService(&fakeDetector{name: "a"}, &fakeDetector{name: "b"})
	assert.False(t, none.Ready())

	one := NewDetectionService(&fakeDetector{name: "a"}, &fakeDetector{name: "b", configured: true})
	assert.True(t, one.Ready())
}

func TestDetectFoodsSkipsUnconfiguredProviders(t *testing.T) {
	skipped := &fakeDetector{name: "primary"}
	used := &fakeDetector{name: "fallback", configured: true,
		items: []models.DetectedItem{{Name: "apple", Confidence: 80}}}

	svc := NewDetectionService(skipped, used)
	got := svc.DetectFoods(context.Background(), nil)

	assert.Zero(t, skipped.calls)
	require.Len(t, got, 1)
	assert.Equal(t, "apple", got[0].Name)
}

func TestDetectFoodsFallsBackOnProviderError(t *testing.T) {
	failing := &fakeDetector{name: "primary", configured: true,
		err: &ProviderError{Provider: "primary", Status: 403, Message: "rejected"}}
	fallback := &fakeDetector{name: "fallback", configured: true,
		items: []models.DetectedItem{{Name: "banana", Confidence: 70}}}

	svc := NewDetectionService(failing, fallback)
	got := svc.DetectFoods(context.Background(), nil)

	assert.Equal(t, 1, failing.calls)
	require.Len(t, got, 1)
	assert.Equal(t, "banana", got[0].Name)
}

func TestDetectFoodsFallsBackOnEmptyResult(t *testing.T) {
	// below-threshold detections count as an empty result
	weak := &fakeDetector{name: "primary", configured: true,
		items: []models.DetectedItem{{Name: "rice", Confidence: 9}}}
	fallback := &fakeDetector{name: "fallback", configured: true,
		items: []models.DetectedItem{{Name: "rice", Confidence: 60}}}

	svc := NewDetectionService(weak, fallback)
	got := svc.DetectFoods(context.Background(), nil)

	require.Len(t, got, 1)
	assert.Equal(t, 60.0, got[0].Confidence)
}

func TestDetectFoodsAllProvidersExhausted(t *testing.T) {
	a := &fakeDetector{name: "a", configured: true, err: errors.New("boom")}
	b := &fakeDetector{name: "b", configured: true}

	svc := NewDetectionService(a, b)
	assert.Empty(t, svc.DetectFoods(context.Background(), nil))
}

func TestFilterDetectionsThresholdAndNonFood(t *testing.T) {
	svc := NewDetectionService()
	got := svc.filterDetections([]models.DetectedItem{
		{Name: "chicken", Confidence: 10}, // floor is inclusive
		{Name: "rice", Confidence: 9.9},
		{Name: "person", Confidence: 95},
		{Name: "left hand", Confidence: 88},
		{Name: "salad", Confidence: 150}, // clamped, then kept
	})

	require.Len(t, got, 2)
	assert.Equal(t, "salad", got[0].Name)
	assert.Equal(t, 100.0, got[0].Confidence)
	assert.Equal(t, "chicken", got[1].Name)
}

func TestFilterDetectionsRanksAndTruncates(t *testing.T) {
	var items []models.DetectedItem
	for i := 0; i < 15; i++ {
		items = append(items, models.DetectedItem{
			Name:       fmt.Sprintf("food-%d", i),
			Confidence: float64(20 + i*5),
		})
	}

	svc := NewDetectionService()
	got := svc.filterDetections(items)

	require.Len(t, got, maxDetectedItems)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Confidence, got[i].Confidence)
	}
	assert.Equal(t, "food-14", got[0].Name)
}

func TestFilterDetectionsSyntheticBoxes(t *testing.T) {
	svc := NewDetectionService()
	got := svc.filterDetections([]models.DetectedItem{
		{Name: "curry", Confidence: 90},
		{Name: "naan", Confidence: 80, BoundingBox: models.BoundingBox{X: 5, Y: 6, Width: 7, Height: 8}},
		{Name: "salad", Confidence: 70},
	})

	require.Len(t, got, 3)
	assert.Equal(t, models.BoundingBox{X: 20, Y: 25, Width: 35, Height: 40}, got[0].BoundingBox)
	// a provider-supplied region is never overwritten
	assert.Equal(t, models.BoundingBox{X: 5, Y: 6, Width: 7, Height: 8}, got[1].BoundingBox)
	assert.Equal(t, models.BoundingBox{X: 50, Y: 45, Width: 35, Height: 40}, got[2].BoundingBox)
}

func TestProviderErrorFormat(t *testing.T) {
	withStatus := &ProviderError{Provider: "clarifai", Status: 401, Message: "rejected"}
	assert.Equal(t, "clarifai: status 401: rejected", withStatus.Error())

	withoutStatus := &ProviderError{Provider: "clarifai", Message: "no key"}
	assert.Equal(t, "clarifai: no key", withoutStatus.Error())
}
