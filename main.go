package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alexflint/go-filemutex"

	"github.com/tidwall/buntdb"

	"github.com/urfave/cli/v2"

	"click/config"
	"click/export"
	"click/punch"
	"click/report"
	"click/view"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	app := &cli.App{
		Name:  "click",
		Usage: "daily work-time reports",
		Commands: []*cli.Command{
			addCommand,
			editCommand,
			rmCommand,
			listCommand,
			exportCommand,
			watchCommand,
		},
	}
	return app.Run(os.Args)
}

var dayFlag = &cli.StringFlag{
	Name:  "day",
	Usage: "report day (YYYY-MM-DD)",
}

var rangeFlags = []cli.Flag{
	&cli.StringFlag{Name: "from", Usage: "first day of the range (YYYY-MM-DD)"},
	&cli.StringFlag{Name: "to", Usage: "last day of the range (YYYY-MM-DD)"},
}

var addCommand = &cli.Command{
	Name:  "add",
	Usage: "create a report for a day",
	Flags: []cli.Flag{dayFlag},
	Action: func(c *cli.Context) error {
		db, err := initDB()
		if err != nil {
			return err
		}
		defer db.Close()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		day, err := dayOrToday(c)
		if err != nil {
			return err
		}

		repo := report.NewRepository(db)
		editor := view.NewReportEditor(repo, cfg.User, newLogger())
		return editor.Edit(report.Report{Day: day}, true)
	},
}

var editCommand = &cli.Command{
	Name:  "edit",
	Usage: "edit an existing report",
	Flags: []cli.Flag{dayFlag},
	Action: func(c *cli.Context) error {
		db, err := initDB()
		if err != nil {
			return err
		}
		defer db.Close()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		day, err := dayOrToday(c)
		if err != nil {
			return err
		}

		repo := report.NewRepository(db)
		r, err := repo.Get(cfg.User, day)
		if err != nil {
			return err
		}
		if r == nil {
			return fmt.Errorf("no report for %s", day)
		}
		editor := view.NewReportEditor(repo, cfg.User, newLogger())
		return editor.Edit(*r, false)
	},
}

var rmCommand = &cli.Command{
	Name:  "rm",
	Usage: "remove a report",
	Flags: []cli.Flag{dayFlag},
	Action: func(c *cli.Context) error {
		db, err := initDB()
		if err != nil {
			return err
		}
		defer db.Close()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		day, err := dayOrToday(c)
		if err != nil {
			return err
		}
		return report.NewRepository(db).Delete(cfg.User, day)
	},
}

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "show reports in a date range, newest first",
	Flags: rangeFlags,
	Action: func(c *cli.Context) error {
		db, err := initDB()
		if err != nil {
			return err
		}
		defer db.Close()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		repo := report.NewRepository(db)

		from, to := dateRange(c)
		reports, err := repo.FindByDateRange(cfg.User, from, to)
		if err != nil {
			return err
		}
		rows, totals := report.PrepareExportRows(reports, cfg.PolicyFor)
		view.RenderTable(os.Stdout, rows, totals)

		if today, err := repo.Get(cfg.User, report.NewDate(time.Now())); err == nil && today != nil {
			if exit := today.EstimatedExit(cfg.ReportUser().Quota()); exit != nil {
				fmt.Printf("estimated exit today: %s\n", exit)
			}
		}
		return nil
	},
}

var exportCommand = &cli.Command{
	Name:  "export",
	Usage: "export reports in a date range to PDF",
	Flags: append([]cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "summary_report.pdf", Usage: "output file"},
	}, rangeFlags...),
	Action: func(c *cli.Context) error {
		db, err := initDB()
		if err != nil {
			return err
		}
		defer db.Close()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		repo := report.NewRepository(db)

		from, to := dateRange(c)
		reports, err := repo.FindByDateRange(cfg.User, from, to)
		if err != nil {
			return err
		}
		rows, totals := report.PrepareExportRows(reports, cfg.PolicyFor)

		f, err := os.Create(c.String("output"))
		if err != nil {
			return err
		}
		defer f.Close()
		return export.WritePDF(f, rows, totals)
	},
}

var watchCommand = &cli.Command{
	Name:  "watch",
	Usage: "punch the first entry from activity and remind at the estimated exit",
	Action: func(c *cli.Context) error {
		db, err := initDB()
		if err != nil {
			return err
		}
		defer db.Close()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger()

		repo := report.NewRepository(db)
		puncher := punch.NewPuncher(repo, cfg.ReportUser(), &punch.MacNotifier{}, newFileMutex(), logger)
		ws := punch.NewAllWatchers(logger)
		mgr := punch.NewManager(puncher, ws, logger, 1*time.Minute)
		return mgr.Watch()
	},
}

func dayOrToday(c *cli.Context) (report.Date, error) {
	if s := c.String("day"); s != "" {
		return report.ParseDate(s)
	}
	return report.NewDate(time.Now()), nil
}

// dateRange applies the boundary defaults: 30 days ago through today, with
// unparseable values falling back to the default.
func dateRange(c *cli.Context) (report.Date, report.Date) {
	from := paramOrDefault(c.String("from"), report.NewDate(time.Now().AddDate(0, 0, -30)))
	to := paramOrDefault(c.String("to"), report.NewDate(time.Now()))
	return from, to
}

func paramOrDefault(s string, def report.Date) report.Date {
	if s == "" {
		return def
	}
	d, err := report.ParseDate(s)
	if err != nil {
		return def
	}
	return d
}

func initDB() (*buntdb.DB, error) {
	dir, err := getClickDir()
	if err != nil {
		return nil, err
	}

	db, err := buntdb.Open(filepath.Join(dir, "click.db"))
	if err != nil {
		return nil, err
	}
	return db, nil
}

func loadConfig() (config.Config, error) {
	dir, err := getClickDir()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(dir)
}

func newLogger() *slog.Logger {
	dir, err := getClickDir()
	if err != nil {
		panic(err)
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "log.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(err)
	}

	return slog.New(
		slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}),
	)
}

func newFileMutex() *filemutex.FileMutex {
	dir, err := getClickDir()
	if err != nil {
		panic(err)
	}

	mux, err := filemutex.New(filepath.Join(dir, "click.lock"))
	if err != nil {
		panic(err)
	}
	return mux
}

func getClickDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".click")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.Mkdir(dir, 0755); err != nil {
			return "", err
		}
	}
	return dir, nil
}
