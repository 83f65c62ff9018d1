package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/abeercodezyra-ops/Nutrivision-AI/models"
)

// ClarifaiService is the first-priority recognition provider, wrapping the
// Clarifai model-outputs endpoint.
type ClarifaiService struct {
	apiKey         string
	userID         string
	appID          string
	modelID        string
	modelVersionID string
	baseURL        string
	client         *http.Client
}

// NewClarifaiService reads credentials from the environment. The defaults
// target Clarifai's public food clustering model; only custom models need
// the USER/APP/MODEL variables set.
func NewClarifaiService() *ClarifaiService {
	return &ClarifaiService{
		apiKey:         os.Getenv("CLARIFAI_API_KEY"),
		userID:         envOr("CLARIFAI_USER_ID", "clarifai"),
		appID:          envOr("CLARIFAI_APP_ID", "main"),
		modelID:        envOr("CLARIFAI_MODEL_ID", "food-item-v1-clustering"),
		modelVersionID: envOr("CLARIFAI_MODEL_VERSION_ID", "cc367be194cf45149e75f01d59f77ba7"),
		baseURL:        "https://api.clarifai.com",
		client:         &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *ClarifaiService) Name() string     { return "clarifai" }
func (s *ClarifaiService) Configured() bool { return s.apiKey != "" }

type clarifaiConcept struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Score float64 `json:"score"`
}

type clarifaiCluster struct {
	ID       string            `json:"id"`
	Value    float64           `json:"value"`
	Concepts []clarifaiConcept `json:"concepts"`
}

type clarifaiRegion struct {
	Data struct {
		Concepts []clarifaiConcept `json:"concepts"`
	} `json:"data"`
}

// clarifaiOutput covers the known response variants: concepts may arrive
// directly, nested in clusters, or nested in regions depending on the model.
type clarifaiOutput struct {
	Data struct {
		Concepts []clarifaiConcept `json:"concepts"`
		Clusters []clarifaiCluster `json:"clusters"`
		Regions  []clarifaiRegion  `json:"regions"`
	} `json:"data"`
}

type clarifaiResponse struct {
	Outputs []clarifaiOutput `json:"outputs"`
}

// Detect posts the image to Clarifai and returns the raw response. All
// failure modes come back as a *ProviderError.
func (s *ClarifaiService) Detect(ctx context.Context, image []byte) (*clarifaiResponse, error) {
	if s.apiKey == "" {
		return nil, &ProviderError{Provider: s.Name(), Message: "CLARIFAI_API_KEY not set"}
	}

	payload := map[string]any{
		"user_app_id": map[string]string{
			"user_id": s.userID,
			"app_id":  s.appID,
		},
		"inputs": []map[string]any{{
			"data": map[string]any{
				"image": map[string]string{
					"base64": base64.StdEncoding.EncodeToString(image),
				},
			},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ProviderError{Provider: s.Name(), Message: err.Error()}
	}

	url := fmt.Sprintf("%s/v2/models/%s/versions/%s/outputs", s.baseURL, s.modelID, s.modelVersionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{Provider: s.Name(), Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Key "+s.apiKey)
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
		return nil, &ProviderError{Provider: s.Name(), Status: resp.StatusCode, Message: "clarifai request rejected"}
	}

	var out clarifaiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ProviderError{Provider: s.Name(), Status: resp.StatusCode, Message: "unparseable clarifai response"}
	}
	return &out, nil
}

// Normalize reshapes a raw response into detected items. The variant arms
// are checked in order; an unrecognized shape yields zero items, not an
// error. No food-domain filtering happens here; the orchestrator owns that.
func (s *ClarifaiService) Normalize(resp *clarifaiResponse) []models.DetectedItem {
	if resp == nil || len(resp.Outputs) == 0 {
		return nil
	}
	concepts := extractConcepts(&resp.Outputs[0])

	items := make([]models.DetectedItem, 0, len(concepts))
	for _, c := range concepts {
		name := c.Name
		if name == "" {
			name = c.ID
		}
		if name == "" {
			continue
		}
		value := c.Value
		if value == 0 {
			value = c.Score
		}
		items = append(items, models.DetectedItem{
			Name:       name,
			Confidence: math.Round(value * 100),
		})
	}
	return items
}

func extractConcepts(out *clarifaiOutput) []clarifaiConcept {
	switch {
	case len(out.Data.Concepts) > 0:
		return out.Data.Concepts
	case len(out.Data.Clusters) > 0:
		var concepts []clarifaiConcept
		for _, cl := range out.Data.Clusters {
			concepts = append(concepts, cl.Concepts...)
			// Some clustering models return bare id/value pairs.
			if cl.ID != "" && cl.Value != 0 {
				concepts = append(concepts, clarifaiConcept{Name: cl.ID, Value: cl.Value})
			}
		}
		return concepts
	case len(out.Data.Regions) > 0:
		var concepts []clarifaiConcept
		for _, r := range out.Data.Regions {
			concepts = append(concepts, r.Data.Concepts...)
		}
		return concepts
	default:
		return nil
	}
}

func (s *ClarifaiService) DetectItems(ctx context.Context, image []byte) ([]models.DetectedItem, error) {
	resp, err := s.Detect(ctx, image)
	if err != nil {
		return nil, err
	}
	return s.Normalize(resp), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
