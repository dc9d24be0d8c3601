package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	_ "anoa.com/civicwaste/docs"
	"anoa.com/civicwaste/internal/config"
	"anoa.com/civicwaste/internal/store"
	"anoa.com/civicwaste/pkg/storage"

	activityHttp "anoa.com/civicwaste/internal/modules/activity/delivery/http"
	activityRepo "anoa.com/civicwaste/internal/modules/activity/repository"
	activityService "anoa.com/civicwaste/internal/modules/activity/service"

	householdHttp "anoa.com/civicwaste/internal/modules/household/delivery/http"
	householdRepo "anoa.com/civicwaste/internal/modules/household/repository"
	householdService "anoa.com/civicwaste/internal/modules/household/service"

	notiHttp "anoa.com/civicwaste/internal/modules/notification/delivery/http"
	notifService "anoa.com/civicwaste/internal/modules/notification/service"

	reportHttp "anoa.com/civicwaste/internal/modules/report/delivery/http"
	reportService "anoa.com/civicwaste/internal/modules/report/service"

	statHttp "anoa.com/civicwaste/internal/modules/stat/delivery/http"
	statService "anoa.com/civicwaste/internal/modules/stat/service"

	userHttp "anoa.com/civicwaste/internal/modules/user/delivery/http"
	userRepo "anoa.com/civicwaste/internal/modules/user/repository"
	userService "anoa.com/civicwaste/internal/modules/user/service"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

const uploadsPath = "/uploads"

type Server struct {
	engine      *gin.Engine
	store       *store.Store
	redisClient *redis.Client
}

// NewServer wires every module over st. redisClient may be nil, in which case
// activity events are not published and the live feed answers 503.
func NewServer(cfg *config.Config, st *store.Store, redisClient *redis.Client) (*Server, error) {
	imageStorage, err := newImageStorage(cfg, st.Now)
	if err != nil {
		return nil, err
	}

	userRepository := userRepo.NewUserRepository(st)
	activityRepository := activityRepo.NewActivityRepository(st)
	householdRepository := householdRepo.NewHouseholdRepository(st)

	userSvc := userService.NewUserService(userRepository, st.Now)
	authSvc := userService.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTTTL, st.Now)
	userHandler := userHttp.NewUserHandler(userSvc, authSvc)

	householdSvc := householdService.NewHouseholdService(householdRepository, userRepository, st.Now)
	householdHandler := householdHttp.NewHouseholdHandler(householdSvc)

	// Notification Module
	publisher := notifService.NewActivityPublisher(redisClient)
	feedHandler := notiHttp.NewActivityFeedHandler(userRepository, redisClient)

	activitySvc := activityService.NewActivityService(activityRepository, userRepository, publisher, st.Now)
	activityHandler := activityHttp.NewActivityHandler(activitySvc)

	statSvc := statService.NewStatService(userRepository, activityRepository, st.Now, time.Local)
	statHandler := statHttp.NewStatHandler(statSvc)

	reportSvc := reportService.NewReportService(imageStorage, st.Now)
	reportHandler := reportHttp.NewReportHandler(reportSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/"},
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend server is running!")
	})
	router.Static(uploadsPath, cfg.UploadDir)
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))

	api := router.Group("/api")
	{
		api.POST("/login", userHandler.Login)
		api.POST("/register", userHandler.Register)
		api.POST("/report", reportHandler.SubmitReport)

		users := api.Group("/users")
		users.POST("", userHandler.CreateUser)
		users.GET("/count", statHandler.GetTotalUsers)
		users.GET("/:id", userHandler.GetUser)
		users.POST("/:id/household", householdHandler.GetOrCreateHousehold)
		users.GET("/:id/qr", householdHandler.GetQRCode)
		users.POST("/:id/activity", activityHandler.RecordActivity)
		users.GET("/:id/activity/ws", feedHandler.HandleWebSocket)
		users.GET("/:id/stats", statHandler.GetUserStats)
		users.GET("/:id/streak-calendar", statHandler.GetStreakCalendar)
	}

	return &Server{
		engine:      router,
		store:       st,
		redisClient: redisClient,
	}, nil
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the router for tests and custom http.Server setups.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// newImageStorage picks Cloudinary when it is configured and the local upload
// directory otherwise.
func newImageStorage(cfg *config.Config, now func() time.Time) (storage.ImageStorage, error) {
	if cfg.CloudinaryURL != "" {
		s, err := storage.NewCloudinaryStorage(cfg.CloudinaryURL, cfg.CloudinaryUploadFolder)
		if err != nil {
			return nil, err
		}
		log.Info("report photos go to cloudinary", "folder", cfg.CloudinaryUploadFolder)
		return s, nil
	}

	s, err := storage.NewLocalStorage(cfg.UploadDir, uploadsPath, now)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local storage: %w", err)
	}
	log.Info("report photos go to local disk", "dir", cfg.UploadDir)
	return s, nil
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if allowedOrigins == "" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
		corsConfig.AllowCredentials = true
	}

	router.Use(cors.New(corsConfig))
}
