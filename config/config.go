// api/config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Log           LogConfiguration
	Store         StoreConfiguration
	Mongo         MongoConfiguration
	Neo4j         Neo4jConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Storage       BlobStorageConfiguration
	Auth          AuthConfiguration
	RateLimit     RateLimitConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port           string
	Mode           string
	RequestTimeout time.Duration
}

// LogConfiguration controls log output and the service label on every entry
type LogConfiguration struct {
	Dir     string
	Level   string
	Service string
}

// StoreConfiguration selects the primary store and bounds its operations
type StoreConfiguration struct {
	Driver     string
	Timeout    time.Duration
	MaxRetries int
}

type MongoConfiguration struct {
	URI      string
	Database string
}

type Neo4jConfiguration struct {
	Enabled  bool
	URI      string
	Username string
	Password string
	Timeout  time.Duration
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Enabled         bool
	Addr            string
	DefaultCacheTTL string
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	Enabled bool
	URL     string
	Index   string
}

// BlobStorageConfiguration stores data for the MinIO bucket holding document files
type BlobStorageConfiguration struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string
	Timeout       time.Duration
}

type AuthConfiguration struct {
	Enabled       bool
	JWTSecret     string
	DevUserHeader string
}

type RateLimitConfiguration struct {
	Requests int
	Window   time.Duration
}

var config *Configuration

func InitConfig() error {
	// A missing .env file is fine; the process environment still applies.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using process environment.")
	}

	viper.AddConfigPath("config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("server.requestTimeout", "30s")
	viper.SetDefault("log.dir", "logging")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.service", "etmf-api")

	viper.SetDefault("store.driver", "mongo")
	viper.SetDefault("store.timeout", "5s")
	viper.SetDefault("store.maxRetries", 5)
	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "etmf")

	viper.SetDefault("neo4j.enabled", true)
	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("neo4j.timeout", "10s")

	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.defaultCacheTTL", "10m")

	viper.SetDefault("elasticsearch.enabled", true)
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("elasticsearch.index", "etmf-audit")

	viper.SetDefault("storage.endpoint", "localhost:9000")
	viper.SetDefault("storage.bucket", "etmf-documents")
	viper.SetDefault("storage.useSSL", false)
	viper.SetDefault("storage.timeout", "60s")

	viper.SetDefault("auth.enabled", true)
	viper.SetDefault("auth.devUserHeader", "X-User-ID")

	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", "1m")
	viper.SetDefault("cors.allowedOrigins", []string{"*"})
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
