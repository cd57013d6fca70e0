package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/sheetcal/internal/app"
	"github.com/five82/sheetcal/internal/config"
	"github.com/five82/sheetcal/internal/prefs"
	"github.com/five82/sheetcal/internal/ui"
)

var showMode string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the selected week or month",
	Long:  "Render the week strip or the month grid for the selected date once and exit",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVar(&showMode, "mode", "week", "What to print (week, month)")
}

func runShow(cmd *cobra.Command, args []string) error {
	var month bool
	switch showMode {
	case "week":
	case "month":
		month = true
	default:
		return fmt.Errorf("invalid mode %q: want week or month", showMode)
	}

	date, err := parseDate(dateFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	path := prefsPath
	if path == "" {
		path = prefs.DefaultPath()
	}
	theme := prefs.Load(path).Theme

	st := app.NewCalendar(cfg, date)
	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderStatic(st, cfg, theme, month))
	return nil
}
