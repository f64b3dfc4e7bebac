package main

import (
	"context"
	"net/http"

	"github.com/hive-community/backend/internal/middleware"
	"github.com/hive-community/backend/internal/model"
	"github.com/hive-community/backend/pkg/ratelimit"
	"github.com/hive-community/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cliCtx *cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis(cliCtx.Context)
	s.loadRepos()
	s.loadDomains()

	rootRouter := s.loadRouter()

	httpSrv := &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: middleware.AllowCors(s.configs, rootRouter.Handler()),
	}

	s.logger.Infof("Starting api server on %s", s.configs.ApiServer.Address())
	if s.configs.ApiServer.Cert != "" && s.configs.ApiServer.Key != "" {
		return httpSrv.ListenAndServeTLS(s.configs.ApiServer.Cert, s.configs.ApiServer.Key)
	}

	return httpSrv.ListenAndServe()
}

func (s *srv) loadRouter() *router.Router {
	cfg := s.configs.RateLimit

	apiLimiter := ratelimit.New(
		s.redis, "api", cfg.Api.Window.Duration, cfg.Api.Max, ratelimit.ByIP())
	authLimiter := ratelimit.New(
		s.redis, "auth", cfg.Auth.Window.Duration, cfg.Auth.Max, ratelimit.ByIP())
	postLimiter := ratelimit.New(
		s.redis, "post", cfg.Post.Window.Duration, cfg.Post.Max, ratelimit.ByUserOrIP())
	searchLimiter := ratelimit.New(
		s.redis, "search", cfg.Search.Window.Duration, cfg.Search.Max, ratelimit.ByIP())

	verifier := middleware.NewAuthVerifier(s.userRepo, s.blacklist)

	rootRouter := router.New(s.db, s.redis, s.configs, s.logger)
	rootRouter.Before(middleware.RateLimit(apiLimiter))
	rootRouter.AddCloser(middleware.Logger())

	router.GET(rootRouter, "/api/health", healthCheck)

	// Routes serving both anonymous and authenticated readers.
	publicRouter := rootRouter.Branch()
	publicRouter.Before(verifier.Optional())
	{
		router.GET(publicRouter, "/api/getUsers", s.userDomain.GetUsers)
		router.GET(publicRouter, "/api/getUser", s.userDomain.GetUser)
		router.GET(publicRouter, "/api/getMentors", s.userDomain.GetMentors)
		router.GET(publicRouter, "/api/getMentees", s.userDomain.GetMentees)
		router.GET(publicRouter, "/api/getUserStats", s.userDomain.GetUserStats)
		router.GET(publicRouter, "/api/getThread", s.threadDomain.GetThread)
		router.GET(publicRouter, "/api/getFeaturedThreads", s.threadDomain.GetFeaturedThreads)
		router.GET(publicRouter, "/api/getPosts", s.postDomain.GetPosts)
		router.GET(publicRouter, "/api/getPost", s.postDomain.GetPost)
		router.GET(publicRouter, "/api/getReplies", s.replyDomain.GetReplies)
		router.GET(publicRouter, "/api/getReply", s.replyDomain.GetReply)
	}

	searchRouter := publicRouter.Branch()
	searchRouter.Before(middleware.RateLimit(searchLimiter))
	{
		router.GET(searchRouter, "/api/getThreads", s.threadDomain.GetThreads)
		router.GET(searchRouter, "/api/searchUsers", s.userDomain.SearchUsers)
	}

	// Credential endpoints carry the stricter auth limiter.
	credentialRouter := rootRouter.Branch()
	credentialRouter.Before(middleware.RateLimit(authLimiter))
	{
		router.POST(credentialRouter, "/api/register", s.authDomain.Register)
		router.POST(credentialRouter, "/api/login", s.authDomain.Login)
		router.POST(credentialRouter, "/api/forgotPassword", s.authDomain.ForgotPassword)
		router.POST(credentialRouter, "/api/resetPassword", s.authDomain.ResetPassword)
	}

	authRouter := rootRouter.Branch()
	authRouter.Before(verifier.Required())
	{
		router.GET(authRouter, "/api/getMe", s.authDomain.GetMe)
		router.POST(authRouter, "/api/updateProfile", s.authDomain.UpdateProfile)
		router.POST(authRouter, "/api/changePassword", s.authDomain.ChangePassword)
		router.POST(authRouter, "/api/logout", s.authDomain.Logout)
		router.POST(authRouter, "/api/refreshToken", s.authDomain.RefreshToken)

		router.POST(authRouter, "/api/updateReputation", s.userDomain.UpdateReputation)

		router.POST(authRouter, "/api/updateThread", s.threadDomain.UpdateThread)
		router.POST(authRouter, "/api/deleteThread", s.threadDomain.DeleteThread)

		router.POST(authRouter, "/api/updatePost", s.postDomain.UpdatePost)
		router.POST(authRouter, "/api/deletePost", s.postDomain.DeletePost)
		router.POST(authRouter, "/api/likePost", s.postDomain.LikePost)
		router.POST(authRouter, "/api/dislikePost", s.postDomain.DislikePost)
		router.POST(authRouter, "/api/acceptAnswer", s.postDomain.AcceptAnswer)

		router.POST(authRouter, "/api/updateReply", s.replyDomain.UpdateReply)
		router.POST(authRouter, "/api/deleteReply", s.replyDomain.DeleteReply)
		router.POST(authRouter, "/api/likeReply", s.replyDomain.LikeReply)
		router.POST(authRouter, "/api/dislikeReply", s.replyDomain.DislikeReply)
		router.POST(authRouter, "/api/markHelpful", s.replyDomain.MarkHelpful)
		router.POST(authRouter, "/api/unmarkHelpful", s.replyDomain.UnmarkHelpful)
	}

	// Content creation adds the per-user write limiter on top of auth.
	createRouter := authRouter.Branch()
	createRouter.Before(middleware.RateLimit(postLimiter))
	{
		router.POST(createRouter, "/api/createThread", s.threadDomain.CreateThread)
		router.POST(createRouter, "/api/createPost", s.postDomain.CreatePost)
		router.POST(createRouter, "/api/createReply", s.replyDomain.CreateReply)
	}

	return rootRouter
}

func healthCheck(ctx context.Context, req *model.HealthRequest) (*model.HealthResponse, error) {
	return &model.HealthResponse{}, nil
}
