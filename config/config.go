package config

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config 结构体用于存储应用程序的配置信息
type Config struct {
	ServerPort string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret              string
	AccessTokenExpireMin   int
	RefreshTokenExpireHour int

	LogLevel string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	FrontendURL      string
	BackendURL       string
	IntelligenceURL  string
	LocalStoragePath string

	ResetTokenExpireMin int
	ResetRateLimitMin   int

	Debug bool // 是否开启调试模式
}

// AppConfig 是全局配置变量
var AppConfig Config

// Init 函数用于初始化配置
func Init() {
	// 加载 .env 文件
	err := godotenv.Load()
	if err != nil {
		log.Printf("警告：无法加载 .env 文件: %v", err)
	}

	// 从环境变量中读取配置
	AppConfig = Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", ""),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		JWTSecret:              getEnv("JWT_SECRET", ""),
		AccessTokenExpireMin:   getEnvAsInt("ACCESS_TOKEN_EXPIRE_MIN", 30),
		RefreshTokenExpireHour: getEnvAsInt("REFRESH_TOKEN_EXPIRE_HOUR", 168),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 465),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:5173"),
		BackendURL:       getEnv("BACKEND_URL", "http://localhost:8080"),
		IntelligenceURL:  getEnv("INTELLIGENCE_URL", "http://localhost:8001"),
		LocalStoragePath: getEnv("LOCAL_STORAGE_PATH", "./uploads"),

		ResetTokenExpireMin: getEnvAsInt("RESET_TOKEN_EXPIRE_MIN", 30),
		ResetRateLimitMin:   getEnvAsInt("RESET_RATE_LIMIT_MIN", 5),

		Debug: getEnvAsBool("DEBUG", true),
	}

	validateConfig()

	if AppConfig.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("应用程序运行在调试模式")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("应用程序运行在生产模式")
	}

	log.Printf("配置加载完成。数据库：%s:%s，Redis：%s", AppConfig.DBHost, AppConfig.DBPort, AppConfig.RedisAddr)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultVal int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

func validateConfig() {
	if AppConfig.DBHost == "" || AppConfig.DBUser == "" || AppConfig.DBName == "" {
		log.Fatal("错误：数据库配置不完整")
	}
	if AppConfig.JWTSecret == "" {
		log.Fatal("错误：JWT密钥未设置")
	}
	// HMAC-SHA256 密钥至少 32 字节
	if len(AppConfig.JWTSecret) < 32 {
		log.Fatal("错误：JWT密钥长度不足32字符")
	}
}
