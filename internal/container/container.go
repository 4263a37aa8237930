package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/cinelog/cinelog-api/config"
	"github.com/cinelog/cinelog-api/internal/infrastructure/mongodb"
	"github.com/cinelog/cinelog-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// The router auto-wires feature modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	store       *mongodb.Mongo
	redisClient *redis.Client
	tokens      *helpers.TokenManager
)

func SetConfig(c *config.Config)        { cfg = c }
func GetConfig() *config.Config         { return cfg }
func SetLogger(l *logrus.Logger)        { logger = l }
func GetLogger() *logrus.Logger         { return logger }
func SetMongo(m *mongodb.Mongo)         { store = m }
func GetMongo() *mongodb.Mongo          { return store }
func SetRedis(r *redis.Client)          { redisClient = r }
func GetRedis() *redis.Client           { return redisClient }
func SetTokens(t *helpers.TokenManager) { tokens = t }
func GetTokens() *helpers.TokenManager  { return tokens }
