package module

import (
	"feedmill/internal/platform/config"
	feedsvc "feedmill/internal/services/feed/service"
)

// FromConfig builds the aggregation config from UPSTREAM_* env
func FromConfig(cfg config.Conf) feedsvc.Config {
	return feedsvc.Config{
		AuthorWindow: cfg.MayInt("AUTHOR_WINDOW", 100),
		FanoutLimit:  cfg.MayInt("FANOUT_LIMIT", 16),
	}
}
