// This is the main entry point of the Taskboard application.
// It loads configuration, builds the logger and the chosen store backend, runs schema
// migrations, and serves the HTTP API until SIGINT or SIGTERM, then shuts down
// gracefully. The `migrate` command manages the schema without starting the server.
//
// @title Taskboard API
// @version 1.0
// @description Personal task management: sign-up, bearer-token auth, task CRUD and dashboard metrics.
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	// `godotenv` loads environment variables from a .env file, useful for development.
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/user/taskboard-go/config"
	"github.com/user/taskboard-go/dashboard"
	"github.com/user/taskboard-go/db"
	"github.com/user/taskboard-go/logging"
	"github.com/user/taskboard-go/memstore"
	"github.com/user/taskboard-go/server"
	"github.com/user/taskboard-go/tasks"
	"github.com/user/taskboard-go/users"
)

func main() {
	// Load .env file if it exists. Real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: error loading .env file: %v\n", err)
	}

	app := &cli.App{
		Name:  "taskboard",
		Usage: "personal task management API",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and builds the process logger.
func bootstrap() (*config.AppConfig, *logging.SlogLogger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "store",
				Value:   "postgres",
				Usage:   "storage backend: postgres or memory",
				EnvVars: []string{"STORE"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var stores server.Stores
			switch backend := c.String("store"); backend {
			case "memory":
				log.Warn(ctx, "using in-memory store; data is lost on exit")
				mem := memstore.New()
				stores = server.Stores{Users: mem.Users(), Tasks: mem.Tasks(), Metrics: mem.Metrics()}

			case "postgres":
				if cfg.Database.AutoMigrate {
					if err := db.RunMigrations(cfg.Database); err != nil {
						return err
					}
					log.Info(ctx, "database migrations applied")
				}

				pool, err := db.NewPool(ctx, cfg.Database)
				if err != nil {
					return err
				}
				defer pool.Close()
				log.Info(ctx, "connected to database", "max_conns", cfg.Database.MaxSize)

				stores = server.Stores{
					Users:   users.NewPostgresStore(pool),
					Tasks:   tasks.NewPostgresStore(pool),
					Metrics: dashboard.NewPostgresStore(pool),
				}

			default:
				return fmt.Errorf("unknown store %q: want postgres or memory", backend)
			}

			handler := server.NewRouter(stores, server.Options{
				Auth:   cfg.Auth,
				Server: cfg.Server,
				Logger: log,
			})
			srv := server.New(cfg.Server, handler)
			srv.ErrorLog = slogErrorLog(log)

			return server.Run(ctx, srv, log)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "manage the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					cfg, log, err := bootstrap()
					if err != nil {
						return err
					}
					if err := db.RunMigrations(cfg.Database); err != nil {
						return err
					}
					log.Info(c.Context, "migrations applied")
					return nil
				},
			},
			{
				Name:  "down",
				Usage: "roll back the most recent migration",
				Action: func(c *cli.Context) error {
					cfg, log, err := bootstrap()
					if err != nil {
						return err
					}
					if err := db.RollbackMigration(cfg.Database); err != nil {
						return err
					}
					log.Info(c.Context, "rolled back one migration")
					return nil
				},
			},
			{
				Name:  "version",
				Usage: "print the applied schema version",
				Action: func(c *cli.Context) error {
					cfg, _, err := bootstrap()
					if err != nil {
						return err
					}
					version, dirty, err := db.MigrationVersion(cfg.Database)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "version %d (dirty: %t)\n", version, dirty)
					return nil
				},
			},
		},
	}
}
