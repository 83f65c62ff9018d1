package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/abeercodezyra-ops/Nutrivision-AI/models"
)

// FoodDetector is one recognition backend in the fallback chain. DetectItems
// runs the provider call and normalizes its raw response into the common
// detected-item shape; food-domain filtering stays out of the adapters.
type FoodDetector interface {
	Name() string
	Configured() bool
	DetectItems(ctx context.Context, image []byte) ([]models.DetectedItem, error)
}

// ProviderError is a structured recognition failure: HTTP status and a safe
// message, never the provider's response body or credentials.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

const (
	minDetectionConfidence = 10
	maxDetectedItems       = 10
)

// nonFoodTerms rejects only unambiguous non-food labels, erring toward
// over-inclusion. Context terms like "bowl" or "plate" pass through and are
// handled downstream.
var nonFoodTerms = []string{"person", "people", "hand", "finger"}

// DetectionService tries recognition providers in fixed priority order until
// one yields usable detections.
type DetectionService struct {
	providers []FoodDetector
}

func NewDetectionService(providers ...FoodDetector) *DetectionService {
	return &DetectionService{providers: providers}
}

// Ready reports whether at least one provider has credentials.
func (s *DetectionService) Ready() bool {
	for _, p := range s.providers {
		if p.Configured() {
			return true
		}
	}
	return false
}

// DetectFoods returns the first provider result that survives filtering,
// ranked by confidence and truncated to the top candidates. A provider
// failure or an empty result moves on to the next provider; an empty return
// value means no provider detected anything usable, which is a well-defined
// outcome rather than an error.
func (s *DetectionService) DetectFoods(ctx context.Context, image []byte) []models.DetectedItem {
	for _, p := range s.providers {
		if !p.Configured() {
			continue
		}
		items, err := p.DetectItems(ctx, image)
		if err != nil {
			log.Printf("detection: provider %s failed: %v", p.Name(), err)
			continue
		}
		if usable := s.filterDetections(items); len(usable) > 0 {
			return usable
		}
		log.Printf("detection: provider %s returned no usable items, trying next", p.Name())
	}
	return nil
}

func (s *DetectionService) filterDetections(items []models.DetectedItem) []models.DetectedItem {
	kept := make([]models.DetectedItem, 0, len(items))
	for _, item := range items {
		conf := clampConfidence(item.Confidence)
		if conf < minDetectionConfidence {
			continue
		}
		if isNonFoodTerm(item.Name) {
			continue
		}
		item.Confidence = conf
		kept = append(kept, item)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Confidence > kept[j].Confidence
	})
	if len(kept) > maxDetectedItems {
		kept = kept[:maxDetectedItems]
	}

	for i := range kept {
		if kept[i].BoundingBox == (models.BoundingBox{}) {
			kept[i].BoundingBox = syntheticBox(i)
		}
	}
	return kept
}

func isNonFoodTerm(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, term := range nonFoodTerms {
		if n == term || strings.Contains(n, term) {
			return true
		}
	}
	return false
}

// syntheticBox spreads placeholder regions across the image for providers
// that return labels without localization.
func syntheticBox(i int) models.BoundingBox {
	return models.BoundingBox{
		X:      20 + float64(i)*15,
		Y:      25 + float64(i)*10,
		Width:  35,
		Height: 40,
	}
}
