package main

import (
	"context"
	"fmt"
	"os"

	"github.com/binderyapp/bindery/pkg/config"
	"github.com/binderyapp/bindery/pkg/database"
	"github.com/binderyapp/bindery/pkg/fileutils"
	"github.com/binderyapp/bindery/pkg/importer"
	"github.com/binderyapp/bindery/pkg/migrations"
	"github.com/binderyapp/bindery/pkg/version"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.New()

	log.Info("starting bindery", logger.Data{"version": version.Version})

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	app := &cli.App{
		Name:    "bindery",
		Usage:   "import ONIX metadata feeds into the catalog",
		Version: version.Version,
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "process every pending file in the incoming directory",
				Action: func(c *cli.Context) error {
					imp, cleanup, err := setup(c.Context, cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					ctx := log.WithContext(c.Context)
					results, err := imp.ProcessPending(ctx)
					if err != nil {
						return err
					}
					return printJSON(results)
				},
			},
			{
				Name:      "file",
				Usage:     "process a single ONIX file",
				ArgsUsage: "<path/to/file.xml>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("usage: bindery file <path/to/file.xml>", 1)
					}

					imp, cleanup, err := setup(c.Context, cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					ctx := log.WithContext(c.Context)
					result := imp.ProcessFile(ctx, c.Args().First())
					if err := printJSON(result); err != nil {
						return err
					}
					if !result.Success {
						return cli.Exit("", 1)
					}
					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Err(err).Fatal("app run error")
	}
}

// setup prepares everything a subcommand needs: the import directories, the
// database, and an up-to-date schema.
func setup(ctx context.Context, cfg *config.Config) (*importer.Importer, func(), error) {
	log := logger.New()

	err := fileutils.EnsureDirs(cfg.ImportIncomingDir, cfg.ImportProcessedDir, cfg.ImportFailedDir)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	group, err := migrations.BringUpToDate(ctx, db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if group.ID != 0 {
		log.Info("migrated to new group", logger.Data{"group_id": group.ID, "migration_names": group.Migrations.String()})
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Err(err).Error("database close error")
		}
	}
	return importer.New(cfg, db), cleanup, nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
