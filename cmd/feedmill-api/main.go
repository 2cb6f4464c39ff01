// @title         Feedmill API
// @version       0.1.0
// @description   Feed aggregation edge over the social resource services

package main

import (
	"context"
	"os/signal"
	"syscall"

	"feedmill/internal/platform/config"
	"feedmill/internal/platform/logger"
	phttp "feedmill/internal/platform/net/http"
	"feedmill/internal/upstream"

	"feedmill/internal/services/api"
	metahttp "feedmill/internal/services/api/meta/http"
	feedmod "feedmill/internal/services/feed/module"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("FEED_API_")      // HTTP edge (port, toggles)
	upCfg := root.Prefix("UPSTREAM_")       // resource service locations
	l := logger.Get()

	timeout := upCfg.MayDuration("TIMEOUT", 0) // 0 lets the client default apply
	newClient := func(name, urlKey, def string) *upstream.Client {
		return upstream.NewClient(name, upstream.Options{
			BaseURL: upCfg.MayString(urlKey, def),
			Timeout: timeout,
		})
	}

	follows := newClient("follows", "FOLLOW_URL", "http://localhost:8083")
	posts := newClient("posts", "POST_URL", "http://localhost:8084")
	comments := newClient("comments", "COMMENT_URL", "http://localhost:8085")
	likes := newClient("likes", "LIKE_URL", "http://localhost:8086")
	users := newClient("users", "USER_URL", "http://localhost:8081")

	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:   apiCfg,
			Upstream: upCfg,
			Logger:   l,
			Ports: feedmod.Ports{
				Follows:  upstream.NewFollows(follows),
				Posts:    upstream.NewPosts(posts),
				Likes:    upstream.NewLikes(likes),
				Comments: upstream.NewComments(comments),
				Users:    upstream.NewUsers(users),
			},
			Checks: []metahttp.Check{
				{Name: "follows", Pinger: follows},
				{Name: "posts", Pinger: posts},
				{Name: "comments", Pinger: comments},
				{Name: "likes", Pinger: likes},
				{Name: "users", Pinger: users},
			},
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
