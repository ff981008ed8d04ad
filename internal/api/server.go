package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sakha-fpv/federation-api/docs"
	v1 "github.com/sakha-fpv/federation-api/internal/api/handler/v1"
	"github.com/sakha-fpv/federation-api/internal/api/middleware"
	"github.com/sakha-fpv/federation-api/internal/config"
	"github.com/sakha-fpv/federation-api/internal/repository"
	"github.com/sakha-fpv/federation-api/internal/repository/dao"
	"github.com/sakha-fpv/federation-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler()
	participantHandler := s.initParticipantHandler(db)
	eventHandler := s.initEventHandler(db)
	newsHandler := s.initNewsHandler(db)
	s.MountHandlers(authHandler, participantHandler, eventHandler, newsHandler)

	return s
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	svc := service.NewAuthService(s.Config.API.AdminPassword)

	return v1.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) initParticipantHandler(db *gorm.DB) *v1.ParticipantHandler {
	participantDAO := dao.NewParticipantDAO(db)
	repo := repository.NewParticipantRepository(participantDAO)
	svc := service.NewParticipantService(repo)

	return v1.NewParticipantHandler(svc)
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	registrationDAO := dao.NewRegistrationDAO(db)
	repo := repository.NewEventRepository(eventDAO, registrationDAO)
	svc := service.NewEventService(repo)

	return v1.NewEventHandler(svc)
}

func (s *Server) initNewsHandler(db *gorm.DB) *v1.NewsHandler {
	newsDAO := dao.NewNewsDAO(db)
	repo := repository.NewNewsRepository(newsDAO)
	svc := service.NewNewsService(repo)

	return v1.NewNewsHandler(s.Config.API, svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	participantHandler *v1.ParticipantHandler,
	eventHandler *v1.EventHandler,
	newsHandler *v1.NewsHandler,
) {
	const basePath = "/api"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)
		public.GET("/auth/verify", authHandler.HandleVerify)

		public.GET("/participants", participantHandler.HandleListParticipants)
		public.GET("/participants/top", participantHandler.HandleTopParticipants)
		public.GET("/participants/:participantID", participantHandler.HandleGetParticipant)

		public.GET("/events", eventHandler.HandleListEvents)
		public.GET("/events/upcoming", eventHandler.HandleUpcomingEvents)
		public.GET("/events/:eventID", eventHandler.HandleGetEvent)
		public.GET("/events/:eventID/registrations", eventHandler.HandleListRegistrations)
		public.POST("/events/:eventID/register", eventHandler.HandleRegisterParticipant)

		public.GET("/news", newsHandler.HandleListNews)
		public.GET("/news/latest", newsHandler.HandleLatestNews)
		public.GET("/news/:newsID", newsHandler.HandleGetNews)
	}

	// Every mutation on the three entities sits behind the admin gate.
	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.TokenSigningKey).RequireAdmin())
	{
		admin.POST("/participants", participantHandler.HandleCreateParticipant)
		admin.PUT("/participants/:participantID", participantHandler.HandleUpdateParticipant)
		admin.DELETE("/participants/:participantID", participantHandler.HandleDeleteParticipant)

		admin.POST("/events", eventHandler.HandleCreateEvent)
		admin.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		admin.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)

		admin.POST("/news", newsHandler.HandleCreateNews)
		admin.PUT("/news/:newsID", newsHandler.HandleUpdateNews)
		admin.POST("/news/:newsID/publish", newsHandler.HandlePublishNews)
		admin.DELETE("/news/:newsID", newsHandler.HandleDeleteNews)
	}

	s.Router.GET("/health", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Federation API"
	docs.SwaggerInfo.Description = "Public site and admin console API for a regional drone racing federation."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
