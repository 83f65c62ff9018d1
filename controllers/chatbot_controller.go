package controllers

import (
	"net/http"

	"github.com/abeercodezyra-ops/Nutrivision-AI/services"

	"github.com/gin-gonic/gin"
)

type ChatbotController struct {
	Chatbot *services.ChatbotService
}

func NewChatbotController(chatbot *services.ChatbotService) *ChatbotController {
	return &ChatbotController{Chatbot: chatbot}
}

// Message answers one chat message. Authenticated callers get replies
// grounded in their recent meals; anonymous callers get general guidance.
func (cc *ChatbotController) Message(c *gin.Context) {
	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := cc.Chatbot.Reply(c.Request.Context(), c.GetUint("userID"), body.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assistant unavailable, try again later"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
