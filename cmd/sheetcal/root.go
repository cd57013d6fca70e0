package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/sheetcal/internal/app"
	"github.com/five82/sheetcal/internal/datemath"
)

var (
	configPath string
	prefsPath  string
	dateFlag   string
	expanded   bool
)

var rootCmd = &cobra.Command{
	Use:           "sheetcal",
	Short:         "Terminal calendar with a week strip that unfolds into a month grid",
	Long:          "sheetcal shows the selected week as a strip. Drag the handle or press space to unfold it into the month grid.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.config/sheetcal/config.toml)")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "Preferences file path (default: ~/.config/sheetcal/prefs.toml)")
	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "Initially selected date (today or YYYY-MM-DD)")
	rootCmd.Flags().BoolVar(&expanded, "expanded", false, "Start with the month grid (default: last used)")
}

func runRoot(cmd *cobra.Command, args []string) error {
	date, err := parseDate(dateFlag)
	if err != nil {
		return err
	}

	opts := app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		Date:       date,
	}
	if cmd.Flags().Changed("expanded") {
		opts.Expanded = &expanded
	}
	return app.Run(cmd.Context(), opts)
}

// parseDate accepts "", "today" or YYYY-MM-DD. Empty means today and is
// returned as the zero time.
func parseDate(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return time.Time{}, nil
	case "today":
		return datemath.StartOfDay(time.Now()), nil
	}
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}
