package domain

import (
	"context"
	"regexp"
	"strings"

	"github.com/hive-community/backend/internal/model"
	"github.com/hive-community/backend/pkg/xcontext"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func checkEmail(email string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(email))
}

// normalizePagination clamps the requested page and limit to the configured
// bounds and returns the resulting offset.
func normalizePagination(ctx context.Context, page, limit int) (int, int, int) {
	cfg := xcontext.Configs(ctx).ApiServer

	if page < 1 {
		page = 1
	}

	if limit <= 0 {
		limit = cfg.DefaultLimit
	}

	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}

	return page, limit, (page - 1) * limit
}

func paginationOf(page, limit int, total int64) model.Pagination {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}

	return model.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

func parseBool(s string) *bool {
	switch strings.ToLower(s) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}

	return nil
}
