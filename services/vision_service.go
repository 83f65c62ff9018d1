package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/abeercodezyra-ops/Nutrivision-AI/models"
)

// VisionService is the fallback recognition provider, wrapping Google
// Vision's images:annotate endpoint with label detection and object
// localization.
type VisionService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewVisionService() *VisionService {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("FOOD_ANALYSIS_API_KEY")
	}
	return &VisionService{
		apiKey:  apiKey,
		baseURL: "https://vision.googleapis.com",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *VisionService) Name() string     { return "google-vision" }
func (s *VisionService) Configured() bool { return s.apiKey != "" }

type visionVertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type visionLabel struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

type visionObject struct {
	Name         string  `json:"name"`
	Score        float64 `json:"score"`
	BoundingPoly struct {
		NormalizedVertices []visionVertex `json:"normalizedVertices"`
	} `json:"boundingPoly"`
}

type visionResponse struct {
	Responses []struct {
		LabelAnnotations           []visionLabel  `json:"labelAnnotations"`
		LocalizedObjectAnnotations []visionObject `json:"localizedObjectAnnotations"`
	} `json:"responses"`
}

// Detect posts the image for annotation and returns the raw response.
func (s *VisionService) Detect(ctx context.Context, image []byte) (*visionResponse, error) {
	if s.apiKey == "" {
		return nil, &ProviderError{Provider: s.Name(), Message: "GOOGLE_API_KEY not set"}
	}

	payload := map[string]any{
		"requests": []map[string]any{{
			"image": map[string]string{
				"content": base64.StdEncoding.EncodeToString(image),
			},
			"features": []map[string]any{
				{"type": "LABEL_DETECTION", "maxResults": 20},
				{"type": "OBJECT_LOCALIZATION", "maxResults": 20},
			},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ProviderError{Provider: s.Name(), Message: err.Error()}
	}

	url := s.baseURL + "/v1/images:annotate?key=" + s.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{Provider: s.Name(), Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: s.Name(), Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: s.Name(), Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		// 403 usually means the key lacks Vision API access.
		return nil, &ProviderError{Provider: s.Name(), Status: resp.StatusCode, Message: "vision request rejected"}
	}

	var out visionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ProviderError{Provider: s.Name(), Status: resp.StatusCode, Message: "unparseable vision response"}
	}
	return &out, nil
}

// Normalize reshapes a raw annotate response into detected items. Localized
// objects carry real bounding regions (normalized vertices scaled to 0–100
// percentages); plain labels carry none and get placeholder regions from the
// orchestrator. An unrecognized shape yields zero items.
func (s *VisionService) Normalize(resp *visionResponse) []models.DetectedItem {
	if resp == nil || len(resp.Responses) == 0 {
		return nil
	}
	r := resp.Responses[0]

	items := make([]models.DetectedItem, 0, len(r.LocalizedObjectAnnotations)+len(r.LabelAnnotations))
	for _, obj := range r.LocalizedObjectAnnotations {
		if obj.Name == "" {
			continue
		}
		items = append(items, models.DetectedItem{
			Name:        obj.Name,
			Confidence:  math.Round(obj.Score * 100),
			BoundingBox: boxFromVertices(obj.BoundingPoly.NormalizedVertices),
		})
	}
	for _, label := range r.LabelAnnotations {
		if label.Description == "" {
			continue
		}
		items = append(items, models.DetectedItem{
			Name:       label.Description,
			Confidence: math.Round(label.Score * 100),
		})
	}
	return items
}

// boxFromVertices converts a normalized bounding poly (top-left first,
// bottom-right third) into percentage coordinates. Incomplete polys produce
// an empty box.
func boxFromVertices(vs []visionVertex) models.BoundingBox {
	if len(vs) < 3 {
		return models.BoundingBox{}
	}
	return models.BoundingBox{
		X:      vs[0].X * 100,
		Y:      vs[0].Y * 100,
		Width:  (vs[2].X - vs[0].X) * 100,
		Height: (vs[2].Y - vs[0].Y) * 100,
	}
}

func (s *VisionService) DetectItems(ctx context.Context, image []byte) ([]models.DetectedItem, error) {
	resp, err := s.Detect(ctx, image)
	if err != nil {
		return nil, err
	}
	return s.Normalize(resp), nil
}
