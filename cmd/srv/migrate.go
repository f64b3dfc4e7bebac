package main

import (
	"github.com/hive-community/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cliCtx *cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()

	ctx := s.newContext(cliCtx)
	if err := migration.Migrate(ctx); err != nil {
		return err
	}

	s.logger.Infof("Migration completed")
	return nil
}
