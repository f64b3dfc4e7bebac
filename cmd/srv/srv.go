package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/hive-community/backend/config"
	"github.com/hive-community/backend/internal/common"
	"github.com/hive-community/backend/internal/domain"
	"github.com/hive-community/backend/internal/repository"
	"github.com/hive-community/backend/pkg/logger"
	"github.com/hive-community/backend/pkg/xcontext"
	"github.com/hive-community/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB
	redis   xredis.Client

	userRepo   repository.UserRepository
	threadRepo repository.ThreadRepository
	postRepo   repository.PostRepository
	replyRepo  repository.ReplyRepository

	blacklist *common.TokenBlacklist

	authDomain   domain.AuthDomain
	userDomain   domain.UserDomain
	threadDomain domain.ThreadDomain
	postDomain   domain.PostDomain
	replyDomain  domain.ReplyDomain
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

func (s *srv) loadConfig() {
	s.configs = config.Configs{
		Env: getEnv("ENV", "local"),
		ApiServer: config.ServerConfigs{
			Host:          getEnv("HOST", "localhost"),
			Port:          getEnv("PORT", "8080"),
			Cert:          getEnv("SERVER_CERT", ""),
			Key:           getEnv("SERVER_KEY", ""),
			AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
			DefaultLimit:  getEnvInt("API_DEFAULT_LIMIT", 10),
			MaxLimit:      getEnvInt("API_MAX_LIMIT", 50),
		},
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "hive"),
			User:     getEnv("MYSQL_USER", "hive"),
			Password: getEnv("MYSQL_PASSWORD", "secret"),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: getEnvDuration("ACCESS_TOKEN_DURATION", 7*24*time.Hour),
			},
			BcryptCost:          getEnvInt("BCRYPT_COST", 0),
			ModeratorReputation: getEnvInt("MODERATOR_REPUTATION", 100),
		},
		Redis: config.RedisConfigs{
			Addr:     getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		RateLimit: config.DefaultRateLimit(),
	}

	if path := os.Getenv("RATE_LIMIT_CONFIG"); path != "" {
		if err := s.configs.RateLimit.LoadFile(path); err != nil {
			panic(err)
		}
	}
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                      s.configs.Database.ConnectionString(),
		DefaultStringSize:        256,
		DisableDatetimePrecision: true,
		DontSupportRenameIndex:   true,
		DontSupportRenameColumn:  true,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRedis(ctx context.Context) {
	var err error
	s.redis, err = xredis.NewClient(ctx, s.configs.Redis)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.threadRepo = repository.NewThreadRepository()
	s.postRepo = repository.NewPostRepository()
	s.replyRepo = repository.NewReplyRepository()
}

func (s *srv) loadDomains() {
	s.blacklist = common.NewTokenBlacklist(s.redis)

	s.authDomain = domain.NewAuthDomain(s.userRepo, s.blacklist)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.threadDomain = domain.NewThreadDomain(s.threadRepo, common.NewModeratorVerifier(s.userRepo))
	s.postDomain = domain.NewPostDomain(s.postRepo, s.threadRepo, s.userRepo)
	s.replyDomain = domain.NewReplyDomain(s.replyRepo, s.postRepo, s.userRepo)
}

func (s *srv) newContext(cliCtx *cli.Context) context.Context {
	ctx := cliCtx.Context
	ctx = xcontext.WithConfigs(ctx, s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)
	return ctx
}
