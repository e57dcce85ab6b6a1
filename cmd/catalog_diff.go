package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"stock-terminal/core/catalog"
	"stock-terminal/core/config"
	"stock-terminal/core/database"
	"stock-terminal/core/storage"

	"github.com/spf13/cobra"
)

// catalogDiffCmd compares the database catalog with the uploaded document.
var catalogDiffCmd = &cobra.Command{
	Use:   "diff [left.json] [right.json]",
	Short: "Compare two catalog sources",
	Long: `Lists identities that are missing from one catalog or whose fields differ.

Without arguments the configured database (left) is compared with the
document in object storage (right). File arguments replace the left side,
then the right side.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		ctx := cmd.Context()

		var left, right *catalog.Snapshot
		if len(args) > 0 {
			if left, err = readCatalogFile(args[0]); err != nil {
				return err
			}
		} else {
			db, err := database.Connect(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if left, err = catalog.NewDatabaseSource(db).Load(ctx); err != nil {
				return err
			}
		}
		if len(args) > 1 {
			if right, err = readCatalogFile(args[1]); err != nil {
				return err
			}
		} else {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			src := catalog.NewObjectSource(client, cfg.Storage.Bucket, cfg.Catalog.ObjectName)
			if right, err = src.Load(ctx); err != nil {
				return err
			}
		}

		diffs := catalog.Diff(left, right)
		out := cmd.OutOrStdout()
		if len(diffs) == 0 {
			fmt.Fprintf(out, "Catalogs match (%d items)\n", left.Len())
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "IDENTITY\tNAME\tLEFT\tRIGHT\tMISMATCH")
		for _, d := range diffs {
			fmt.Fprintf(w, "%s\t%s\t%t\t%t\t%s\n",
				d.Identity, d.Name, d.LeftPresent, d.RightPresent, strings.Join(d.Mismatch, "; "))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		return fmt.Errorf("%d catalog differences", len(diffs))
	},
}

func readCatalogFile(path string) (*catalog.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return catalog.ParseDocument(data)
}

func init() {
	catalogCmd.AddCommand(catalogDiffCmd)
}
