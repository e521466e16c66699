package util

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type engineEnvironment struct {
	RedisHost     string
	RedisPort     string
	RedisPW       string
	RedisDB       string
	NatsURL       string
	ListenAddr    string
	PersistMethod string
	LogLevel      string
}

// Env is a helper object for accessing environment variables.
var Env = &engineEnvironment{
	RedisHost:     "REDIS_HOST",
	RedisPort:     "REDIS_PORT",
	RedisPW:       "REDIS_PW",
	RedisDB:       "REDIS_DB",
	NatsURL:       "NATS_URL",
	ListenAddr:    "LISTEN_ADDR",
	PersistMethod: "PERSIST_METHOD",
	LogLevel:      "LOG_LEVEL",
}

func (e *engineEnvironment) GetRedisAddr() string {
	host := os.Getenv(e.RedisHost)
	if host == "" {
		host = "localhost"
	}
	portStr := os.Getenv(e.RedisPort)
	if portStr == "" {
		portStr = "6379"
	}
	if _, err := strconv.Atoi(portStr); err != nil {
		msg := fmt.Sprintf("Invalid Redis port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return fmt.Sprintf("%s:%s", host, portStr)
}

func (e *engineEnvironment) GetRedisPW() string {
	return os.Getenv(e.RedisPW)
}

func (e *engineEnvironment) GetRedisDB() int {
	dbStr := os.Getenv(e.RedisDB)
	if dbStr == "" {
		return 0
	}
	dbNum, err := strconv.Atoi(dbStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis db %s", dbStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return dbNum
}

func (e *engineEnvironment) GetNatsURL() string {
	url := os.Getenv(e.NatsURL)
	if url == "" {
		return "nats://localhost:4222"
	}
	return url
}

func (e *engineEnvironment) GetListenAddr() string {
	addr := os.Getenv(e.ListenAddr)
	if addr == "" {
		return ":8080"
	}
	return addr
}

// GetPersistMethod returns "memory" or "redis".
func (e *engineEnvironment) GetPersistMethod() string {
	method := os.Getenv(e.PersistMethod)
	if method == "" {
		return "memory"
	}
	return method
}

func (e *engineEnvironment) GetLogLevel() string {
	level := os.Getenv(e.LogLevel)
	if level == "" {
		return "info"
	}
	return level
}
