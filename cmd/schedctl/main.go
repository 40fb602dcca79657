package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"guild-planning/config"
	"guild-planning/config/postgre"
	"guild-planning/internal/schedule/repository"
	scheduleRepo "guild-planning/internal/schedule/repository/postgre"
	"guild-planning/pkg/log"
	"guild-planning/pkg/weekcal"
)

// schedctl is a maintenance tool for the planning table. Run it while the bot is stopped:
// the bot only reads the table at startup, so changes made while it runs are not visible to it.
func main() {
	if err := newApp(os.Stdout, openRepository).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "schedctl:", err)
		os.Exit(1)
	}
}

// repoOpener returns a repository and a function releasing it.
type repoOpener func(ctx context.Context) (repository.Repository, *weekcal.Calendar, func(), error)

func openRepository(ctx context.Context) (repository.Repository, *weekcal.Calendar, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	calendar, err := weekcal.NewCalendar(cfg.Schedule.Timezone)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() { _ = postgre.Disconnect(context.Background(), db) }

	return scheduleRepo.New(db, logger), calendar, closeFn, nil
}

func newApp(out io.Writer, open repoOpener) *cli.App {
	communityFlag := &cli.Int64Flag{Name: "community", Aliases: []string{"c"}, Usage: "chat id", Required: true}

	withRepo := func(fn func(c *cli.Context, repo repository.Repository, cal *weekcal.Calendar) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			repo, cal, closeFn, err := open(c.Context)
			if err != nil {
				return err
			}
			defer closeFn()
			return fn(c, repo, cal)
		}
	}

	return &cli.App{
		Name:      "schedctl",
		Usage:     "Inspect and maintain the stored weekly planning.",
		Writer:    out,
		ErrWriter: out,
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create the planning table if it does not exist.",
				Action: withRepo(func(c *cli.Context, repo repository.Repository, _ *weekcal.Calendar) error {
					if err := repo.Initialize(c.Context); err != nil {
						return err
					}
					fmt.Fprintln(out, "planning table ready")
					return nil
				}),
			},
			{
				Name:  "dump",
				Usage: "Print every stored event of a community in insertion order.",
				Flags: []cli.Flag{communityFlag},
				Action: withRepo(func(c *cli.Context, repo repository.Repository, _ *weekcal.Calendar) error {
					rows, err := repo.LoadAll(c.Context)
					if err != nil {
						return err
					}
					community := c.Int64("community")
					for _, r := range rows {
						if r.Community == community {
							fmt.Fprintf(out, "%d\t%s\t%s\n", r.ID, r.Date, r.Text)
						}
					}
					return nil
				}),
			},
			{
				Name:  "count",
				Usage: "Print the number of stored events of a community.",
				Flags: []cli.Flag{communityFlag},
				Action: withRepo(func(c *cli.Context, repo repository.Repository, _ *weekcal.Calendar) error {
					n, err := repo.CountAll(c.Context, c.Int64("community"))
					if err != nil {
						return err
					}
					fmt.Fprintln(out, n)
					return nil
				}),
			},
			{
				Name:  "clear",
				Usage: "Delete a community's events, or only one day of the current week with --day.",
				Flags: []cli.Flag{
					communityFlag,
					&cli.StringFlag{Name: "day", Aliases: []string{"d"}, Usage: "day name, e.g. mardi"},
				},
				Action: withRepo(func(c *cli.Context, repo repository.Repository, cal *weekcal.Calendar) error {
					community := c.Int64("community")
					if c.String("day") == "" {
						n, err := repo.DeleteAll(c.Context, community)
						if err != nil {
							return err
						}
						fmt.Fprintf(out, "deleted %d event(s)\n", n)
						return nil
					}

					day, err := cal.Resolve(c.String("day"))
					if err != nil {
						return err
					}
					n, err := repo.DeleteDate(c.Context, repository.DeleteDateOptions{Community: community, Date: day.Date})
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "deleted %d event(s) on %s\n", n, day.Date)
					return nil
				}),
			},
		},
	}
}
