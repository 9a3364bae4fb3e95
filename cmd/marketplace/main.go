package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	shell "marketplace/internal/cli"
	"marketplace/internal/config"
	"marketplace/internal/domain"
	applog "marketplace/internal/log"
	"marketplace/internal/repos"
	"marketplace/internal/services"
	"marketplace/internal/validate"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "marketplace:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "marketplace",
		Usage: "second-hand marketplace backed by CSV files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "optional dotenv file read before the environment"},
			&cli.StringFlag{Name: "data-dir", Usage: "directory holding users/items/listings/orders .csv"},
			&cli.StringFlag{Name: "backend", Usage: "record store: csv or sqlite"},
			&cli.StringFlag{Name: "dsn", Usage: "sqlite database file when backend is sqlite"},
			&cli.StringFlag{Name: "log-file", Usage: "append JSON logs here; empty logs to stderr"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "password-scheme", Usage: "plain or bcrypt"},
		},
		Action: runShell,
		Commands: []*cli.Command{
			{
				Name:   "shell",
				Usage:  "interactive menu (default)",
				Action: runShell,
			},
			{
				Name:  "listings",
				Usage: "print every active listing and exit",
				Action: func(c *cli.Context) error {
					return withDeps(c, "listings", func(d *shell.Deps) error {
						d.ListingHandler.Active(shell.NewTerm(os.Stdin, c.App.Writer))
						return nil
					})
				},
			},
			{
				Name:  "suggest-price",
				Usage: "print the suggested price for a category and condition",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "category", Required: true},
					&cli.StringFlag{Name: "condition", Value: string(domain.Good)},
				},
				Action: suggestPrice,
			},
		},
	}
}

// loadConfig reads env settings and lets explicit flags override them.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return cfg, err
	}
	override := func(flag string, dst *string) {
		if c.IsSet(flag) {
			*dst = c.String(flag)
		}
	}
	override("data-dir", &cfg.DataDir)
	override("backend", &cfg.Backend)
	override("dsn", &cfg.DBDSN)
	override("log-file", &cfg.LogFile)
	override("log-level", &cfg.LogLevel)
	override("password-scheme", &cfg.PasswordScheme)
	return cfg, nil
}

// withDeps wires config, logging and the record store, then runs fn.
func withDeps(c *cli.Context, command string, fn func(*shell.Deps) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logs, err := applog.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logs.Close()

	pw, err := services.NewPasswordManager(cfg.PasswordScheme)
	if err != nil {
		return err
	}
	st, err := repos.OpenStore(cfg.Backend, cfg.DataDir, cfg.DBDSN)
	if err != nil {
		applog.Error("store.open", err, map[string]any{"backend": cfg.Backend, "data_dir": cfg.DataDir})
		return err
	}
	r, err := repos.Open(st)
	if err != nil {
		applog.Error("store.load", err, map[string]any{"backend": cfg.Backend})
		_ = st.Close()
		return err
	}
	defer r.Close()

	applog.Info("app.start", map[string]any{
		"command":  command,
		"backend":  cfg.Backend,
		"data_dir": cfg.DataDir,
		"users":    r.Users.Len(),
		"listings": r.Listings.Len(),
	})
	return fn(shell.NewDeps(r, pw))
}

func runShell(c *cli.Context) error {
	return withDeps(c, "shell", func(d *shell.Deps) error {
		return shell.NewShell(os.Stdin, c.App.Writer, d).Run()
	})
}

func suggestPrice(c *cli.Context) error {
	category, ok := validate.Category(c.String("category"))
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown category %q, choose from: %s", c.String("category"), domain.CategoryNames()), 2)
	}
	condition, ok := validate.Condition(c.String("condition"))
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown condition %q, choose from: %s", c.String("condition"), domain.ConditionNames()), 2)
	}
	printSuggestion(c.App.Writer, category, condition, services.SuggestPrice(category, condition))
	return nil
}

func printSuggestion(w io.Writer, category domain.Category, condition domain.Condition, p services.PriceSuggestion) {
	fmt.Fprintf(w, "%s / %s: $%s (range $%s - $%s)\n", category, condition,
		p.Suggested.StringFixed(2), p.Low.StringFixed(2), p.High.StringFixed(2))
}
