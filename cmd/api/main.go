package main

import (
	"fmt"
	"net/http"
	"time"

	"socialvid-go/internal/api/handler"
	"socialvid-go/internal/api/middleware"
	"socialvid-go/internal/api/router"
	"socialvid-go/internal/config"
	"socialvid-go/internal/infra/database"
	infraES "socialvid-go/internal/infra/elasticsearch"
	infraKafka "socialvid-go/internal/infra/kafka"
	infraRedis "socialvid-go/internal/infra/redis"
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
	"socialvid-go/internal/repository/memstore"
	"socialvid-go/internal/service"
	"socialvid-go/pkg/logger"

	_ "socialvid-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title SocialVid API
// @version 1.0
// @description 社交内容平台 API 服务

// @contact.name API Support
// @contact.email support@socialvid.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化存储后端：默认内存存储，配置 postgres 时走数据库
	repos, err := initStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to init storage", zap.Error(err))
	}
	defer database.Close()

	// 初始化Redis（可选，失败则点赞数不走缓存）
	if cfg.Redis.Enabled {
		if err := infraRedis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis init failed, like counts will not be cached", zap.Error(err))
		} else {
			defer infraRedis.Close()
		}
	}

	// 初始化Kafka生产者（可选，失败则不发内容事件）
	if cfg.Kafka.Enabled {
		if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
			logger.Warn("Kafka init failed, content events disabled", zap.Error(err))
		} else {
			defer infraKafka.CloseProducer()
		}
	}

	// 初始化 Elasticsearch（可选，失败则搜索降级到存储层）
	if cfg.Elasticsearch.Enabled {
		if err := infraES.Init(&cfg.Elasticsearch); err != nil {
			logger.Warn("Elasticsearch init failed, search will fallback to store", zap.Error(err))
		} else {
			defer infraES.Close()
			if err := infraES.InitIndexes(); err != nil {
				logger.Warn("Elasticsearch index init failed", zap.Error(err))
			}
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()

	// 使用自定义中间件
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Repository -> Service -> Handler）
	notificationService := service.NewNotificationService(repos.Notification, repos.User)
	authService := service.NewAuthService(repos.User)
	userService := service.NewUserService(repos.User)
	relationService := service.NewRelationService(repos.Follow, repos.User, notificationService)
	postService := service.NewPostService(repos.Post, repos.User)
	videoService := service.NewVideoService(repos.Video, repos.User)
	likeService := service.NewLikeService(repos.Like, repos.Post, repos.Video, notificationService)
	commentService := service.NewCommentService(repos.Comment, repos.Post, repos.Video, repos.User, notificationService)
	storyService := service.NewStoryService(repos.Story)
	feedService := service.NewFeedService(repos, likeService)
	searchService := service.NewSearchService(repos.Post, repos.Video, feedService)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, feedService, relationService)
	postHandler := handler.NewPostHandler(postService, feedService, commentService)
	videoHandler := handler.NewVideoHandler(videoService, feedService, commentService)
	likeHandler := handler.NewLikeHandler(likeService)
	commentHandler := handler.NewCommentHandler(commentService)
	followHandler := handler.NewFollowHandler(relationService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	storyHandler := handler.NewStoryHandler(storyService, feedService)
	searchHandler := handler.NewSearchHandler(searchService)

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r,
		authHandler,
		userHandler,
		postHandler,
		videoHandler,
		likeHandler,
		commentHandler,
		followHandler,
		notificationHandler,
		storyHandler,
		searchHandler,
	)

	// 启动服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("addr", addr),
	)

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// initStorage 按配置选择存储后端并返回仓储集合
func initStorage(cfg *config.Config) (*repository.Repositories, error) {
	switch cfg.Storage.Driver {
	case "", "memory":
		logger.Info("Using in-memory storage")
		return memstore.New().Repositories(), nil
	case "postgres":
		if err := database.Init(&cfg.Database); err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(
			&model.User{},
			&model.Post{},
			&model.Video{},
			&model.Like{},
			&model.Comment{},
			&model.Follow{},
			&model.Notification{},
			&model.Story{},
		); err != nil {
			return nil, err
		}
		return repository.NewGormRepositories(database.Get()), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
