package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"smart-mall-backend/config"
	"smart-mall-backend/internal/api/ai"
	"smart-mall-backend/internal/api/area"
	"smart-mall-backend/internal/api/auth"
	"smart-mall-backend/internal/api/builder"
	"smart-mall-backend/internal/api/health"
	"smart-mall-backend/internal/api/product"
	"smart-mall-backend/internal/api/route"
	"smart-mall-backend/internal/api/store"
	"smart-mall-backend/internal/api/upload"
	"smart-mall-backend/internal/cache"
	"smart-mall-backend/internal/client"
	"smart-mall-backend/internal/middleware"
	"smart-mall-backend/internal/model"
	"smart-mall-backend/internal/repository/interfaces"
	"smart-mall-backend/internal/repository/postgres"
	"smart-mall-backend/internal/service"
	"smart-mall-backend/internal/storage"
	"smart-mall-backend/internal/util"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			util.Logger.Error("程序发生严重错误", zap.Any("error", r))
		}
	}()

	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 连接数据库
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBName,
		config.AppConfig.DBSSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		util.Logger.Fatal("连接数据库失败", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		util.Logger.Fatal("数据库连接测试失败", zap.Error(err))
	}
	util.Logger.Info("数据库连接成功")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	// 执行数据库迁移
	runMigrations(db)

	// 连接 Redis
	cacheClient, err := cache.New(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword, config.AppConfig.RedisDB)
	if err != nil {
		util.Logger.Fatal("连接Redis失败", zap.Error(err))
	}
	defer cacheClient.Close()
	util.Logger.Info("Redis连接成功")

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("area_type", util.ValidateAreaType)
	}

	// 初始化本地存储
	localStorage, err := storage.NewLocalStorage(config.AppConfig.LocalStoragePath)
	if err != nil {
		util.Logger.Fatal("初始化本地存储失败", zap.Error(err))
	}

	// 初始化存储库、服务和处理器
	userRepo := postgres.NewUserRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	storeRepo := postgres.NewStoreRepository(db)
	productRepo := postgres.NewProductRepository(db)
	permissionRepo := postgres.NewPermissionRepository(db)

	// 确保默认管理员存在
	ensureDefaultAdmin(userRepo)

	emailService := service.NewEmailService()
	authService := service.NewAuthService(userRepo, cacheClient)
	passwordService := service.NewPasswordService(userRepo, cacheClient, emailService)
	builderService := service.NewBuilderService(projectRepo)
	permissionService := service.NewPermissionService(permissionRepo, projectRepo, cacheClient)
	applyService := service.NewApplyService(permissionRepo, projectRepo, userRepo, permissionService)
	storeService := service.NewStoreService(storeRepo, projectRepo, userRepo, permissionService)
	productService := service.NewProductService(productRepo, storeRepo)
	routeService := service.NewRouteService()
	intelligenceClient := client.NewIntelligenceClient(config.AppConfig.IntelligenceURL)

	authHandler := auth.NewAuthHandler(authService)
	passwordHandler := auth.NewPasswordHandler(passwordService)
	builderHandler := builder.NewBuilderHandler(builderService)
	areaHandler := area.NewAreaHandler(applyService, permissionService)
	storeHandler := store.NewStoreHandler(storeService)
	productHandler := product.NewProductHandler(productService)
	aiHandler := ai.NewAIHandler(intelligenceClient)
	routeHandler := route.NewRouteHandler(routeService)
	uploadHandler := upload.NewUploadHandler(localStorage)
	healthHandler := health.NewHealthHandler(db, cacheClient, intelligenceClient)

	// 初始化错误监控
	errorMonitor := middleware.NewErrorMonitor()

	// 设置 Gin 路由
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 静态文件服务
	r.Static("/uploads", config.AppConfig.LocalStoragePath)

	// 健康检查
	r.GET("/health", healthHandler.Check)

	adminOnly := middleware.RequireUserType(string(model.UserTypeAdmin))
	merchantOnly := middleware.RequireUserType(string(model.UserTypeMerchant))

	// 定义 API 路由
	api := r.Group("/api")
	{
		// 认证相关路由
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.GET("/check-username", authHandler.CheckUsername)
			authGroup.GET("/check-email", authHandler.CheckEmail)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/forgot-password", passwordHandler.ForgotPassword)
			authGroup.GET("/verify-reset-token", passwordHandler.VerifyResetToken)
			authGroup.POST("/reset-password", passwordHandler.ResetPassword)

			authGroup.POST("/logout", middleware.AuthMiddleware(authService), authHandler.Logout)
			authGroup.POST("/change-password", middleware.AuthMiddleware(authService), passwordHandler.ChangePassword)
		}

		// 需要认证的路由
		authorized := api.Group("/")
		authorized.Use(middleware.AuthMiddleware(authService))
		{
			// 动态路由下发
			authorized.GET("/user/routes", routeHandler.Routes)

			// 商城建模（管理员）
			projects := authorized.Group("/mall-builder/projects", adminOnly)
			{
				projects.POST("", builderHandler.CreateProject)
				projects.GET("", builderHandler.ListProjects)
				projects.GET("/:id", builderHandler.GetProject)
				projects.PUT("/:id", builderHandler.UpdateProject)
				projects.DELETE("/:id", builderHandler.DeleteProject)
			}

			// 区域申请与权限
			areas := authorized.Group("/area")
			{
				areas.GET("/available", areaHandler.ListAvailable)
				areas.POST("/apply", merchantOnly, areaHandler.Apply)
				areas.GET("/apply/my", merchantOnly, areaHandler.MyApplies)
				areas.GET("/permission/my", merchantOnly, areaHandler.MyPermissions)
			}

			// 区域审批与权限管理（管理员）
			adminArea := authorized.Group("/admin/area", adminOnly)
			{
				adminArea.GET("/apply/pending", areaHandler.PendingApplies)
				adminArea.POST("/apply/:id/approve", areaHandler.Approve)
				adminArea.POST("/apply/:id/reject", areaHandler.Reject)
				adminArea.POST("/permission/:id/revoke", areaHandler.RevokePermission)
			}

			// 店铺
			stores := authorized.Group("/store")
			{
				stores.POST("", merchantOnly, storeHandler.CreateStore)
				stores.GET("/my", merchantOnly, storeHandler.MyStores)
				stores.GET("/:id", storeHandler.GetStore)
				stores.PUT("/:id", merchantOnly, storeHandler.UpdateStore)
				stores.POST("/:id/activate", merchantOnly, storeHandler.Activate)
				stores.POST("/:id/deactivate", merchantOnly, storeHandler.Deactivate)
			}

			// 店铺管理（管理员）
			adminStore := authorized.Group("/admin/store", adminOnly)
			{
				adminStore.GET("", storeHandler.ListStores)
				adminStore.POST("/:id/approve", storeHandler.ApproveStore)
				adminStore.POST("/:id/close", storeHandler.CloseStore)
			}

			// 商品
			products := authorized.Group("/product")
			{
				products.POST("", merchantOnly, productHandler.CreateProduct)
				products.GET("/store/:id", merchantOnly, productHandler.ListByStore)
				products.GET("/:id", productHandler.GetProduct)
				products.PUT("/:id", merchantOnly, productHandler.UpdateProduct)
				products.PUT("/:id/status", merchantOnly, productHandler.ChangeStatus)
				products.PUT("/:id/stock", merchantOnly, productHandler.UpdateStock)
				products.DELETE("/:id", merchantOnly, productHandler.DeleteProduct)
			}

			// AI 导航
			aiGroup := authorized.Group("/ai")
			{
				aiGroup.POST("/chat", aiHandler.Chat)
				aiGroup.POST("/confirm", aiHandler.Confirm)
				aiGroup.GET("/health", aiHandler.Health)
			}

			// 图片上传
			authorized.POST("/upload/image",
				middleware.RequireUserType(string(model.UserTypeAdmin), string(model.UserTypeMerchant)),
				uploadHandler.UploadImage)
		}

		// 公开路由：商城浏览
		public := api.Group("/public")
		{
			public.GET("/store/:id", storeHandler.GetStore)
			public.GET("/store/:id/products", productHandler.ListPublicByStore)
			public.GET("/product/:id", productHandler.GetPublicProduct)
		}
	}

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.ServerPort,
		Handler: r,
	}

	go func() {
		util.Logger.Info("服务器开始监听", zap.String("port", config.AppConfig.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}

// runMigrations 启动时执行数据库迁移
func runMigrations(db *sql.DB) {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		util.Logger.Fatal("初始化迁移驱动失败", zap.Error(err))
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		util.Logger.Fatal("加载迁移文件失败", zap.Error(err))
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		util.Logger.Fatal("执行数据库迁移失败", zap.Error(err))
	}
	util.Logger.Info("数据库迁移完成")
}

// ensureDefaultAdmin 默认管理员不存在时创建
func ensureDefaultAdmin(userRepo interfaces.UserRepository) {
	admin, err := userRepo.FindByUsername("admin")
	if err != nil {
		util.Logger.Fatal("查询默认管理员失败", zap.Error(err))
	}
	if admin != nil {
		return
	}

	password := os.Getenv("ADMIN_INITIAL_PASSWORD")
	if password == "" {
		password = "admin123456"
		util.Logger.Warn("使用默认管理员密码，请尽快修改")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		util.Logger.Fatal("生成管理员密码失败", zap.Error(err))
	}

	if err := userRepo.Create(&model.User{
		UserID:       util.NewID(),
		Username:     "admin",
		PasswordHash: string(hashedPassword),
		UserType:     model.UserTypeAdmin,
		Status:       model.UserStatusActive,
	}); err != nil {
		util.Logger.Fatal("创建默认管理员失败", zap.Error(err))
	}
	util.Logger.Info("默认管理员已创建")
}
