package services

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/abeercodezyra-ops/Nutrivision-AI/config"
	"github.com/abeercodezyra-ops/Nutrivision-AI/models"
)

// ChatbotService answers nutrition questions via Gemini, optionally
// personalized with the user's recent meals. When no API key is configured
// it falls back to canned general guidance so the endpoint keeps working in
// development.
type ChatbotService struct {
	apiKey string
	model  string
}

func NewChatbotService() *ChatbotService {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	return &ChatbotService{
		apiKey: apiKey,
		model:  envOr("GEMINI_MODEL", "gemini-1.5-flash"),
	}
}

const chatSystemInstruction = `You are NutriAI, the nutrition assistant of a food scanning web app. ` +
	`Answer questions about meals, nutrients and healthy eating habits. ` +
	`Be concise and practical, avoid medical diagnoses, and recommend consulting a professional for medical concerns.`

var cannedReplies = []string{
	"Great question! Based on your meal history, I'd recommend focusing on protein-rich foods.",
	"You're doing well with your nutrition goals! Keep tracking your meals.",
	"I can help you with nutrition advice. What specific question do you have?",
	"Your daily calorie intake looks balanced. Consider adding more vegetables for fiber.",
}

// Reply answers one user message. userID 0 means anonymous: no meal context
// is attached.
func (s *ChatbotService) Reply(ctx context.Context, userID uint, message string) (string, error) {
	if s.apiKey == "" {
		return cannedReplies[rand.Intn(len(cannedReplies))], nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(userID, message)))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil && len(resp.Candidates[0].Content.Parts) > 0 {
		if txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
			return string(txt), nil
		}
	}
	return "", fmt.Errorf("no response candidates")
}

func (s *ChatbotService) buildPrompt(userID uint, message string) string {
	var sb strings.Builder
	sb.WriteString(chatSystemInstruction)
	sb.WriteString("\n\n")

	if userID != 0 {
		var meals []models.Meal
		if err := config.DB.
			Where("user_id = ?", userID).
			Order("ate_at DESC").
			Limit(5).
			Find(&meals).Error; err == nil && len(meals) > 0 {
			sb.WriteString("The user's recent meals:\n")
			for _, m := range meals {
				sb.WriteString(fmt.Sprintf("- %s: %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fats\n",
					m.Name, m.Calories, m.Protein, m.Carbs, m.Fats))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("User message: ")
	sb.WriteString(message)
	return sb.String()
}
