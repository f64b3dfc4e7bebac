package migration

import (
	"context"

	"github.com/hive-community/backend/internal/entity"
	"github.com/hive-community/backend/pkg/xcontext"
)

func Migrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Thread{},
		&entity.Post{},
		&entity.Reply{},
	)
}
