// Package http provides http transport for the feed
package http

import (
	stdhttp "net/http"
	"strconv"

	"feedmill/internal/modkit/httpkit"
	perr "feedmill/internal/platform/errors"
	"feedmill/internal/services/feed/domain"
	svc "feedmill/internal/services/feed/service"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Register mounts the feed endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.feed)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /feed Feed getFeed
// @Summary Personalized feed
// @Description Paginated reverse-chronological posts from everyone the viewer follows
// @Tags Feed
// @Produce json
// @Param page query int false "Page number (0-indexed)"
// @Param size query int false "Page size (1..100)"
// @Success 200 {object} domain.FeedResponse "ok"
// @Router /feed [get]
func (h *handlers) feed(r *stdhttp.Request) (any, error) {
	v, err := viewerFrom(r)
	if err != nil {
		return nil, err
	}
	page, size := pageWindow(r)

	fp, err := h.svc.Feed(r.Context(), v, page, size)
	if err != nil {
		return nil, err
	}
	return fp.ToResponse(), nil
}

// viewerFrom builds the request-scoped viewer: id resolved by the auth
// middleware, raw bearer forwarded unmodified to upstreams
func viewerFrom(r *stdhttp.Request) (domain.Viewer, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return domain.Viewer{}, err
	}
	id, err := strconv.ParseInt(uid, 10, 64)
	if err != nil {
		return domain.Viewer{}, perr.Unauthorizedf("invalid viewer id")
	}
	// an absent bearer just means there is nothing to forward upstream
	token, _ := httpkit.JWT(r)
	return domain.Viewer{UserID: id, Token: token}, nil
}

// pageWindow parses page and size with clamping; bad values fall back to
// defaults rather than erroring, matching the rest of the read surface
func pageWindow(r *stdhttp.Request) (page, size int) {
	q := r.URL.Query()
	page = 0
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = v
	}
	size = defaultPageSize
	if v, err := strconv.Atoi(q.Get("size")); err == nil && v > 0 {
		size = v
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
