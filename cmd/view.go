package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"stock-terminal/core/catalog"
	"stock-terminal/core/config"
	"stock-terminal/core/logger"
	"stock-terminal/core/stock"
	"stock-terminal/feature/terminal"
	"stock-terminal/feature/terminal/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	viewSearch     string
	viewSortBy     string
	viewSortDir    string
	viewMode       string
	viewTooltip    bool
	viewRows       int
	viewCatalog    string
	viewJSONOutput bool
)

// viewCmd materializes a stock snapshot file without starting the server.
var viewCmd = &cobra.Command{
	Use:   "view <stock.json>",
	Short: "Print the terminal view of a stock snapshot",
	Long: `Reads a JSON array of stock deltas (the same body accepted by
POST /terminal/stock), applies the given search and sort settings and prints
the resulting view.

Item names come from --catalog when given, otherwise from the configured
catalog source.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg.Log.Level = "warn"
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read stock file: %w", err)
		}
		var body []models.StockDelta
		if err := json.Unmarshal(data, &body); err != nil {
			return fmt.Errorf("failed to parse stock file: %w", err)
		}

		var cat *catalog.Catalog
		if viewCatalog != "" {
			snap, err := readCatalogFile(viewCatalog)
			if err != nil {
				return err
			}
			cat = catalog.NewStatic(snap)
		} else {
			cat, err = buildCatalog(cmd.Context(), cfg, logg)
			if err != nil {
				return err
			}
		}

		controls, err := cfg.Search.Controls()
		if err != nil {
			return err
		}
		svc, err := terminal.NewService(terminal.Options{
			Catalog:  cat,
			Controls: controls,
			Logger:   logg,
			RowWidth: cfg.Server.RowWidth,
		})
		if err != nil {
			return err
		}

		deltas := make([]stock.Delta, len(body))
		for i, d := range body {
			deltas[i] = stock.Delta{
				Identity:  stock.Identity{Item: d.Item, Variant: d.Variant},
				Amount:    d.Amount,
				Craftable: d.Craftable,
			}
		}
		if _, err := svc.ApplyDeltas(deltas); err != nil {
			return err
		}

		req := models.SettingsRequest{Search: &viewSearch}
		if cmd.Flags().Changed("sort-by") {
			req.SortBy = &viewSortBy
		}
		if cmd.Flags().Changed("sort-dir") {
			req.SortDir = &viewSortDir
		}
		if cmd.Flags().Changed("view-mode") {
			req.ViewMode = &viewMode
		}
		if cmd.Flags().Changed("tooltip") {
			req.TooltipSearch = &viewTooltip
		}
		if err := svc.UpdateSettings(req); err != nil {
			return err
		}

		resp := svc.View(viewRows)
		out := cmd.OutOrStdout()
		if viewJSONOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}

		logg.Debug("View built", zap.Int("size", resp.Size), zap.Int("shown", len(resp.Entries)))
		fmt.Fprintf(out, "%d of %d entries match\n", len(resp.Entries), resp.Size)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SLOT\tNAME\tITEM\tQUANTITY\tCRAFTABLE")
		for _, e := range resp.Entries {
			id := e.Item
			if e.Variant != "" {
				id += "#" + e.Variant
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%t\n", e.Slot, e.Name, id, e.Quantity, e.Craftable)
		}
		return w.Flush()
	},
}

func init() {
	viewCmd.Flags().StringVarP(&viewSearch, "search", "s", "", "Search text")
	viewCmd.Flags().StringVar(&viewSortBy, "sort-by", "name", "Sort key: name, amount, mod or custom")
	viewCmd.Flags().StringVar(&viewSortDir, "sort-dir", "ascending", "Sort direction: ascending or descending")
	viewCmd.Flags().StringVar(&viewMode, "view-mode", "all", "View mode: all, stored or craftable")
	viewCmd.Flags().BoolVar(&viewTooltip, "tooltip", false, "Match plain terms against tooltips too")
	viewCmd.Flags().IntVar(&viewRows, "rows", 0, "Number of rows to print (all when 0)")
	viewCmd.Flags().StringVar(&viewCatalog, "catalog", "", "Local catalog JSON document")
	viewCmd.Flags().BoolVar(&viewJSONOutput, "json", false, "Print the view as JSON")
	RootCmd.AddCommand(viewCmd)
}
