package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sanjaymalladi/AskAlgo-Backend/config"
	"github.com/sanjaymalladi/AskAlgo-Backend/controller"
	"github.com/sanjaymalladi/AskAlgo-Backend/dao"
	"github.com/sanjaymalladi/AskAlgo-Backend/logic"
	"github.com/sanjaymalladi/AskAlgo-Backend/middleware"
	"github.com/sanjaymalladi/AskAlgo-Backend/pkg"
)

func main() {
	// Initialize config
	if len(os.Args) < 2 {
		log.Fatal("Usage: askalgo-backend <config.yaml>")
	}
	_ = godotenv.Load()
	cfg, err := config.LoadConfig(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to load config from %s: %v", os.Args[1], err)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	// Initialize Firebase (auth + realtime database)
	ctx := context.Background()
	app, err := pkg.NewFirebaseApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase auth: %v", err)
	}
	dbClient, err := app.Database(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase database: %v", err)
	}
	firebaseAuth := pkg.NewAuthClient(authClient)

	// Initialize AI responder
	var responder logic.Responder
	switch cfg.Chat.Provider {
	case "gemini":
		responder, err = pkg.NewGeminiClient(ctx, cfg.Chat.APIKey, cfg.Chat.Model, cfg.Chat.Timeout)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
	default:
		responder = pkg.NewChatClient(cfg.Chat.APIKey, cfg.Chat.Model, cfg.Chat.BaseURL, cfg.Chat.Timeout)
	}

	// Initialize DAOs and Logics
	convoDAO := dao.NewConversationDAO(dbClient)
	sessionLogic := logic.NewSessionLogic(convoDAO, responder, logger)
	convoLogic := logic.NewConversationLogic(convoDAO)

	// Initialize Controllers
	userCtrl := controller.NewUserController(firebaseAuth)
	convoCtrl := controller.NewConversationController(sessionLogic, convoLogic)

	// Setup Gin router
	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg)))

	r.POST("/signin", userCtrl.SignIn)
	r.POST("/register", userCtrl.Register)
	r.POST("/verify_token", userCtrl.VerifyToken)

	authed := middleware.Auth(firebaseAuth)
	r.POST("/ask", authed, convoCtrl.Ask)
	r.GET("/get_conversations", authed, convoCtrl.GetConversations)

	// Run server
	logger.Info("starting server", "port", cfg.Server.Port, "chat_provider", cfg.Chat.Provider)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	origins := cfg.CORS.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"https://askalgo.vercel.app"}
	}
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
