package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/csg8/suanmingapp/internal/di"
	"github.com/csg8/suanmingapp/internal/domain/models"
	"github.com/csg8/suanmingapp/internal/presenter"
	"github.com/csg8/suanmingapp/pkg/config"
	"github.com/csg8/suanmingapp/pkg/util"
)

// chartFlags are shared by the bazi and ziwei commands.
type chartFlags struct {
	birth  string
	tz     string
	year   int
	month  int
	day    int
	hour   int
	gender string
	lunar  string
}

const defaultConfigPath = "config/config.yaml"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "suanming",
		Short: "Sexagenary calendar and destiny-chart service",
		Long: `suanming computes Four-Pillars (八字) readings and Zi Wei palace charts
from a solar birth moment, either as an HTTP service or one chart at a time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "config file path (empty for defaults)")

	root.AddCommand(
		newServeCmd(&configPath),
		newChartCmd(&configPath, "bazi", "Compute a Four-Pillars reading"),
		newChartCmd(&configPath, "ziwei", "Compute a Zi Wei palace chart"),
		newCatalogCmd(),
	)
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}
			app, err := di.InitializeApp(cfg)
			if err != nil {
				return fmt.Errorf("app initialization failed: %w", err)
			}
			return app.Run(cmd.Context())
		},
	}
}

func newChartCmd(configPath *string, kind, short string) *cobra.Command {
	f := &chartFlags{}
	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
		Example: fmt.Sprintf(`  suanming %[1]s --birth "1990-07-06 07:30" --tz Asia/Shanghai --gender f
  suanming %[1]s --year 2000 --month 1 --day 1 --hour 0 --lunar identity`, kind),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChart(cmd, *configPath, kind, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.birth, "birth", "", `birth moment, e.g. "1990-07-06 07:30" or RFC3339`)
	fl.StringVar(&f.tz, "tz", "Local", "time zone for --birth values without an offset")
	fl.IntVar(&f.year, "year", 0, "solar year")
	fl.IntVar(&f.month, "month", 0, "solar month 1-12")
	fl.IntVar(&f.day, "day", 0, "solar day of month")
	fl.IntVar(&f.hour, "hour", 0, "hour of day 0-23")
	fl.StringVar(&f.gender, "gender", "male", "male|female (男|女)")
	fl.StringVar(&f.lunar, "lunar", "", "lunar provider override: calendar|identity|http")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the stems, branches, palaces, stars and verdicts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), presenter.Catalog())
		},
	}
}

// loadConfig reads path over defaults and SUANMING_* variables. A missing
// default file falls back to defaults; an explicit --config must exist.
func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	if path == defaultConfigPath && !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	return cfg, nil
}

func runChart(cmd *cobra.Command, configPath, kind string, f *chartFlags) error {
	m, err := f.moment()
	if err != nil {
		return err
	}
	g, err := models.ParseGender(f.gender)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, configPath)
	if err != nil {
		return err
	}
	if f.lunar != "" {
		cfg.Lunar.Provider = f.lunar
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
	}
	// Logs go to stderr so stdout stays valid JSON; one-shot runs have no
	// scrape endpoint.
	cfg.Log.Output = "stderr"
	cfg.Metrics.Enabled = false

	svc, err := di.InitializeChartService(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, w := cmd.Context(), cmd.OutOrStdout()
	switch kind {
	case "bazi":
		r, err := svc.BaZi(ctx, m, g)
		if err != nil {
			return err
		}
		return writeJSON(w, presenter.BaZi(r))
	default:
		c, err := svc.ZiWei(ctx, m, g)
		if err != nil {
			return err
		}
		return writeJSON(w, presenter.ZiWei(c, m))
	}
}

func (f *chartFlags) moment() (models.CalendarMoment, error) {
	if f.birth == "" {
		if f.year == 0 && f.month == 0 && f.day == 0 {
			return models.CalendarMoment{}, errors.New("either --birth or --year/--month/--day is required")
		}
		return models.CalendarMoment{Year: f.year, Month: f.month, Day: f.day, Hour: f.hour}, nil
	}
	loc, err := time.LoadLocation(f.tz)
	if err != nil {
		return models.CalendarMoment{}, fmt.Errorf("invalid --tz: %w", err)
	}
	t, ok := util.ParseTimeIn(f.birth, loc)
	if !ok {
		return models.CalendarMoment{}, fmt.Errorf("cannot parse --birth %q", f.birth)
	}
	return models.MomentFromTime(t), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
