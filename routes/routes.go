package routes

import (
	"github.com/abeercodezyra-ops/Nutrivision-AI/controllers"
	"github.com/abeercodezyra-ops/Nutrivision-AI/middlewares"
	"github.com/abeercodezyra-ops/Nutrivision-AI/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	detector := services.NewDetectionService(
		services.NewClarifaiService(),
		services.NewVisionService(),
	)
	analysisSvc := services.NewAnalysisService(detector)
	mealSvc := services.NewMealService()
	chatbotSvc := services.NewChatbotService()

	analysisCtl := controllers.NewAnalysisController(analysisSvc, hub)
	mealCtl := controllers.NewMealController(mealSvc, hub)
	chatbotCtl := controllers.NewChatbotController(chatbotSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	api := r.Group("/api")
	{
		api.GET("/health", controllers.Health)

		analysis := api.Group("/food-analysis")
		analysis.Use(middlewares.OptionalAuthMiddleware())
		{
			analysis.POST("/analyze", analysisCtl.Analyze)
			analysis.POST("/analyze-mock", analysisCtl.AnalyzeMock)
		}

		chatbot := api.Group("/chatbot")
		chatbot.Use(middlewares.OptionalAuthMiddleware())
		{
			chatbot.POST("/message", chatbotCtl.Message)
		}

		meals := api.Group("/meals")
		meals.Use(middlewares.AuthMiddleware())
		{
			meals.POST("", mealCtl.LogMeal)
			meals.GET("/history", mealCtl.History)
			meals.GET("/stats", mealCtl.Stats)
			meals.DELETE("/:id", mealCtl.Delete)
		}

		user := api.Group("/user")
		user.Use(middlewares.AuthMiddleware())
		{
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
		}

		ws := api.Group("/ws")
		ws.Use(middlewares.AuthMiddleware())
		{
			ws.GET("", realtimeCtl.EventsWS)
		}
	}

	return r
}
