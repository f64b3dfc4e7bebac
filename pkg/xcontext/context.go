// Package xcontext stores and retrieves the per-request collaborators
// (database handle, logger, configs, token engine, redis client) through the
// standard context.Context, so domains and repositories only ever receive a
// plain context.
package xcontext

import (
	"context"
	"net/http"

	"github.com/hive-community/backend/config"
	"github.com/hive-community/backend/pkg/authenticator"
	"github.com/hive-community/backend/pkg/logger"
	"github.com/hive-community/backend/pkg/xredis"
	"gorm.io/gorm"
)

type (
	configsKey     struct{}
	loggerKey      struct{}
	dbKey          struct{}
	txKey          struct{}
	redisKey       struct{}
	tokenEngineKey struct{}
	httpRequestKey struct{}
	httpWriterKey  struct{}
	userIDKey      struct{}
	responseKey    struct{}
	errorKey       struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	if cfg, ok := ctx.Value(configsKey{}).(config.Configs); ok {
		return cfg
	}

	return config.Configs{}
}

func WithLogger(ctx context.Context, log logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

func Logger(ctx context.Context) logger.Logger {
	if log, ok := ctx.Value(loggerKey{}).(logger.Logger); ok {
		return log
	}

	return logger.NewLogger(logger.SILENCE)
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the current transaction if one was begun by WithDBTransaction,
// otherwise the process-wide database handle.
func DB(ctx context.Context) *gorm.DB {
	if holder, ok := ctx.Value(txKey{}).(*txHolder); ok && holder.tx != nil {
		return holder.tx
	}

	if db, ok := ctx.Value(dbKey{}).(*gorm.DB); ok {
		return db
	}

	return nil
}

func WithRedisClient(ctx context.Context, client xredis.Client) context.Context {
	return context.WithValue(ctx, redisKey{}, client)
}

func RedisClient(ctx context.Context) xredis.Client {
	if client, ok := ctx.Value(redisKey{}).(xredis.Client); ok {
		return client
	}

	return nil
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine {
	if engine, ok := ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine); ok {
		return engine
	}

	return nil
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	if r, ok := ctx.Value(httpRequestKey{}).(*http.Request); ok {
		return r
	}

	return nil
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	if w, ok := ctx.Value(httpWriterKey{}).(http.ResponseWriter); ok {
		return w
	}

	return nil
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// RequestUserID returns the authenticated user id, or an empty string for an
// unauthenticated request.
func RequestUserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}

	return ""
}
