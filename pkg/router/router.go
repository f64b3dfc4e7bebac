package router

import (
	"context"
	"net/http"

	"github.com/hive-community/backend/config"
	"github.com/hive-community/backend/pkg/authenticator"
	"github.com/hive-community/backend/pkg/logger"
	"github.com/hive-community/backend/pkg/xcontext"
	"github.com/hive-community/backend/pkg/xredis"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It may return a derived context to
// pass information (like the authenticated user id) downstream, or an error
// to reject the request.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is rendered, for logging and metrics.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux

	cfg         config.Configs
	log         logger.Logger
	db          *gorm.DB
	redisClient xredis.Client
	tokenEngine authenticator.TokenEngine

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(
	db *gorm.DB,
	redisClient xredis.Client,
	cfg config.Configs,
	log logger.Logger,
) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		tokenEngine: authenticator.NewTokenEngine(cfg.Auth.TokenSecret),
	}
}

// Branch creates a router sharing the same mux but with independent
// middleware chains, so groups of endpoints can carry their own verifiers.
func (r *Router) Branch() *Router {
	branch := *r
	branch.befores = append([]MiddlewareFunc{}, r.befores...)
	branch.afters = append([]MiddlewareFunc{}, r.afters...)
	branch.closers = append([]CloserFunc{}, r.closers...)
	return &branch
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	register(r, http.MethodGet, pattern, handler)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	register(r, http.MethodPost, pattern, handler)
}

func register[Request, Response any](
	r *Router, method, pattern string, handler HandlerFunc[Request, Response],
) {
	befores := r.befores
	afters := r.afters
	closers := r.closers

	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		ctx := r.newRequestContext(req, w)

		if req.Method != method {
			xcontext.SetError(ctx, errMethodNotAllowed)
			handleResponse(ctx)
			runClosers(ctx, closers)
			return
		}

		func() {
			for _, m := range befores {
				newCtx, err := m(ctx)
				if err != nil {
					xcontext.SetError(ctx, err)
					return
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}

			request := new(Request)
			if err := bindRequest(req, request); err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			resp, err := handler(ctx, request)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			xcontext.SetResponse(ctx, resp)

			for _, m := range afters {
				newCtx, err := m(ctx)
				if err != nil {
					xcontext.SetError(ctx, err)
					return
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}
		}()

		handleResponse(ctx)
		runClosers(ctx, closers)
	})
}

func (r *Router) newRequestContext(req *http.Request, w http.ResponseWriter) context.Context {
	ctx := req.Context()
	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.log)
	ctx = xcontext.WithDB(ctx, r.db)
	ctx = xcontext.WithRedisClient(ctx, r.redisClient)
	ctx = xcontext.WithTokenEngine(ctx, r.tokenEngine)
	ctx = xcontext.WithHTTPRequest(ctx, req)
	ctx = xcontext.WithHTTPWriter(ctx, w)
	return xcontext.WithResponseAndError(ctx)
}

func runClosers(ctx context.Context, closers []CloserFunc) {
	for _, closer := range closers {
		closer(ctx)
	}
}
