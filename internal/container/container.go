package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devlinkhq/devlink-backend/config"
	"github.com/devlinkhq/devlink-backend/pkg/github"
	"github.com/devlinkhq/devlink-backend/pkg/helpers"
)

// app-level container sharing constructed components across packages so
// the router can auto-wire modules from these singletons.

var (
	cfg          *config.Config
	logger       *logrus.Logger
	mongoDB      *mongo.Database
	redisClient  *redis.Client
	jwtManager   *helpers.JWTManager
	githubClient github.RepoLister
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetMongo(db *mongo.Database) { mongoDB = db }
func GetMongo() *mongo.Database   { return mongoDB }

func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client  { return redisClient }

func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetGithub(g github.RepoLister) { githubClient = g }
func GetGithub() github.RepoLister  { return githubClient }
