package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"courtroom/apperrors"
	"courtroom/config"
	"courtroom/controllers"
	"courtroom/db"
	"courtroom/routes"
	"courtroom/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	var profileStore controllers.ProfileLogins = unconfiguredStore{}
	if cfg.Database.URI != "" {
		database, err := db.Connect(ctx, cfg.Database.URI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		log.Println("Connected to MongoDB")

		store := db.NewProfileStore(database)
		if err := store.EnsureIndexes(ctx); err != nil {
			log.Fatalf("Failed to ensure profile indexes: %v", err)
		}
		profileStore = store
	} else {
		log.Println("No document store URI configured; login will report a configuration error")
	}

	// One generator handle serves both the opponent and the judge. When the
	// key is absent the opponent degrades to canned responses while judging
	// surfaces the failure.
	var generator services.TextGenerator
	if gemini, err := services.NewGeminiClient(ctx, cfg.Gemini.ApiKey); err != nil {
		log.Printf("Gemini unavailable: %v", err)
	} else {
		generator = gemini
	}

	// Search and extraction share one connection pool per the hints design.
	webClient := &http.Client{Timeout: 10 * time.Second}
	searcher := services.NewSearchClient(cfg.Search.ApiKey, cfg.Search.EngineId, webClient)
	extractor := services.NewExtractor(webClient)

	debateController := &controllers.DebateController{
		Topics:   services.NewTopicService(cfg.Files.Topics),
		Hints:    services.NewHintService(searcher, extractor),
		Opponent: services.NewOpponentService(generator, cfg.Files.Blueprint),
		Judge:    services.NewJudgeService(generator),
	}
	profileController := &controllers.ProfileController{Store: profileStore}
	ttsController := &controllers.TTSController{Synthesizer: services.NewTTSClient(cfg.ElevenLabs.ApiKey)}

	router := setupRouter(cfg, debateController, profileController, ttsController)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, debate *controllers.DebateController, profile *controllers.ProfileController, tts *controllers.TTSController) *gin.Engine {
	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
	}
	if len(cfg.Cors.AllowOrigins) == 1 && cfg.Cors.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Cors.AllowOrigins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	routes.Setup(router, debate, profile, tts)
	return router
}

// unconfiguredStore answers logins when no document store URI was supplied.
type unconfiguredStore struct{}

func (unconfiguredStore) Login(context.Context, string, string, *int) (*db.LoginResult, error) {
	return nil, fmt.Errorf("document store URI: %w", apperrors.ErrConfigMissing)
}
