package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/jobhunter/backend/config"
	"github.com/jobhunter/backend/docs"
	"github.com/jobhunter/backend/handlers"
	"github.com/jobhunter/backend/mcp"
	"github.com/jobhunter/backend/tools"
	"github.com/jobhunter/backend/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	d, err := buildDeps(ctx, cfg, log, true)
	if err != nil {
		log.Error("initializing collaborators", zap.Error(err))
		return err
	}
	defer d.close(log)

	router := newRouter(cfg, d, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("port", cfg.Port), zap.String("version", handlers.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server", zap.Int("open_sessions", d.agent.SessionCount()))

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	d.agent.Shutdown()
	log.Info("server exited gracefully")
	return nil
}

func newRouter(cfg *config.Config, d *deps, log *zap.Logger) *gin.Engine {
	docs.SwaggerInfo.Version = handlers.Version

	extractor := utils.NewDocumentExtractor()

	var parser handlers.ResumeParser
	if d.llm != nil {
		parser = d.llm
	}
	var files handlers.FileArchive
	if d.files != nil {
		files = d.files
	}
	var records handlers.RecordArchive
	if d.records != nil {
		records = d.records
	}

	resumeHandler := handlers.NewResumeHandler(extractor, parser, files, records, cfg.MaxUploadBytes(), log)
	chatHandler := handlers.NewChatHandler(d.agent, records, log)
	healthHandler := handlers.NewHealthHandler(d.agent, d.services(cfg))

	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewScoreJobTool())
	toolRegistry.Register(tools.NewAnalyzeMessageTool())
	toolRegistry.Register(tools.NewSearchJobsTool(d.agent))
	if d.llm != nil {
		toolRegistry.Register(tools.NewParseResumeTool(d.llm))
	}
	mcpServer := mcp.NewServer(toolRegistry, handlers.Version, log)

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	router.Use(handlers.Recovery(log))
	router.Use(handlers.RequestLogger(log))

	// Configure CORS for the frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURLs,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", healthHandler.Index)
	router.GET("/health", healthHandler.Health)

	router.POST("/parse-resume", resumeHandler.ParseResume)
	router.GET("/resumes", resumeHandler.ListResumes)
	router.GET("/resumes/:resume_id", resumeHandler.GetResume)
	router.DELETE("/resumes/:resume_id", resumeHandler.DeleteResume)

	router.POST("/create-agent/:session_id", chatHandler.CreateAgent)
	router.POST("/sessions", chatHandler.CreateSession)
	router.POST("/chat/:session_id", chatHandler.Chat)
	router.GET("/session/:session_id/history", chatHandler.History)
	router.DELETE("/session/:session_id", chatHandler.DeleteSession)

	// MCP endpoints for external AI agents
	mcpServer.RegisterRoutes(&router.RouterGroup)

	return router
}
