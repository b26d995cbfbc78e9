// Package http wires the HTTP surface: handlers, middleware and routes.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ticketusecases "flowdesk/internal/application/ticket/usecases"
	userusecases "flowdesk/internal/application/user/usecases"
	"flowdesk/internal/infrastructure/auth"
	"flowdesk/internal/infrastructure/config"
	"flowdesk/internal/infrastructure/repository"
	"flowdesk/internal/infrastructure/services"
	authhandlers "flowdesk/internal/interfaces/http/handlers/auth"
	realtimehandlers "flowdesk/internal/interfaces/http/handlers/realtime"
	taghandlers "flowdesk/internal/interfaces/http/handlers/tag"
	tickethandlers "flowdesk/internal/interfaces/http/handlers/ticket"
	userhandlers "flowdesk/internal/interfaces/http/handlers/user"
	"flowdesk/internal/interfaces/http/middleware"
	"flowdesk/internal/interfaces/http/routes"
	"flowdesk/internal/shared/db"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/utils"
)

// Router assembles the gin engine with all application routes.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface
}

// NewRouter builds the full HTTP surface on top of the given database handle.
func NewRouter(cfg *config.Config, database *gorm.DB) *Router {
	log := logger.NewLogger()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Logging())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Repositories
	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	tagRepo := repository.NewTagRepository(database)
	userRepo := repository.NewUserRepository(database)
	txManager := db.NewTransactionManager(database)

	// Infrastructure services
	hub := services.NewClientHub(log, cfg.Websocket.SendBufferSize)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewPasswordHasher(cfg.Auth.Password.BcryptCost)

	// Use cases
	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, tagRepo, userRepo, txManager, hub, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, tagRepo, userRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, tagRepo, userRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, tagRepo, userRepo, txManager, hub, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, txManager, hub, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, userRepo, txManager, hub, log)
	createTagUC := ticketusecases.NewCreateTagUseCase(tagRepo, log)
	listTagsUC := ticketusecases.NewListTagsUseCase(tagRepo, log)

	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	getUserUC := userusecases.NewGetUserUseCase(userRepo, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)

	// Handlers
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, deleteTicketUC, addCommentUC,
	)
	tagHandler := taghandlers.NewTagHandler(createTagUC, listTagsUC)
	authHandler := authhandlers.NewAuthHandler(registerUC, loginUC)
	userHandler := userhandlers.NewUserHandler(getUserUC, listUsersUC)
	hubHandler := realtimehandlers.NewHubHandler(hub, cfg.Websocket, log)

	// Routes
	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{AuthHandler: authHandler})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{UserHandler: userHandler, AuthMiddleware: authMiddleware})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{TicketHandler: ticketHandler, AuthMiddleware: authMiddleware})
	routes.SetupTagRoutes(engine, &routes.TagRouteConfig{TagHandler: tagHandler, AuthMiddleware: authMiddleware})
	routes.SetupRealtimeRoutes(engine, &routes.RealtimeRouteConfig{HubHandler: hubHandler})

	engine.GET("/health", healthCheck)

	return &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
	}
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func healthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
