package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"strconv"
	"time"

	"arguecoach/config"
	"arguecoach/routes"
	"arguecoach/services"
	"arguecoach/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var errNoScorer = errors.New("no scoring backend configured: set scoring.url or gemini.apiKey")

func main() {
	configPath := flag.String("config", "./config/config.yml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Gemini.ApiKey != "" {
		if err := services.InitGemini(cfg.Gemini.ApiKey); err != nil {
			log.Fatalf("Failed to initialize Gemini: %v", err)
		}
	}

	scorer, err := buildScorer(cfg)
	if err != nil {
		log.Fatalf("Failed to configure scorer: %v", err)
	}
	feedback := &services.FeedbackService{Advisor: buildAdvisor(cfg)}

	var analyzer *services.DocumentAnalyzer
	if cfg.DocumentAnalysis.URL != "" {
		analyzer = services.NewDocumentAnalyzer(cfg.DocumentAnalysis.URL, time.Duration(cfg.DocumentAnalysis.TimeoutSeconds)*time.Second)
	}

	hub := websocket.NewHub()
	store := services.NewSessionStore(hub.PublishPhase)

	var debateRouter *routes.DebateRouter
	if cfg.Gemini.ApiKey != "" {
		debateRouter = &routes.DebateRouter{Service: services.NewDebateService(cfg.Gemini.Model)}
	} else {
		log.Printf("Debate bot disabled: gemini.apiKey not configured")
	}

	router := setupRouter(cfg, &routes.SessionRouter{
		Store:    store,
		Scorer:   scorer,
		Feedback: feedback,
		Analyzer: analyzer,
		Hub:      hub,
	}, debateRouter)

	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func buildScorer(cfg *config.Config) (services.ArgumentScorer, error) {
	if cfg.Scoring.URL != "" {
		log.Printf("Using scoring service at %s", cfg.Scoring.URL)
		return services.NewHTTPScorer(cfg.Scoring.URL, time.Duration(cfg.Scoring.TimeoutSeconds)*time.Second), nil
	}
	if cfg.Gemini.ApiKey != "" {
		log.Printf("Using Gemini model %s for scoring", cfg.Gemini.Model)
		return &services.GeminiScorer{Model: cfg.Gemini.Model}, nil
	}
	return nil, errNoScorer
}

func buildAdvisor(cfg *config.Config) services.FeedbackAdvisor {
	if cfg.Feedback.URL != "" {
		log.Printf("Using advice service at %s", cfg.Feedback.URL)
		return services.NewHTTPAdvisor(cfg.Feedback.URL, time.Duration(cfg.Feedback.TimeoutSeconds)*time.Second)
	}
	if cfg.Gemini.ApiKey != "" {
		log.Printf("Using Gemini model %s for advice", cfg.Gemini.Model)
		return &services.GeminiAdvisor{Model: cfg.Gemini.Model}
	}
	// No advisor configured: every below-target round falls back to local
	// synthesis, which is always available.
	log.Printf("No advice service configured, feedback will be synthesized locally")
	return nil
}

func setupRouter(cfg *config.Config, sessionRouter *routes.SessionRouter, debateRouter *routes.DebateRouter) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	origins := cfg.Server.CorsOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	sessionRouter.Register(router)
	if debateRouter != nil {
		debateRouter.Register(router)
	}
	return router
}
