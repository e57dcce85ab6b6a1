package cmd

import (
	"fmt"

	"stock-terminal/core/catalog"
	"stock-terminal/core/config"
	"stock-terminal/core/database"
	"stock-terminal/core/logger"
	"stock-terminal/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the item catalog",
}

// catalogPushCmd uploads a catalog document to object storage.
var catalogPushCmd = &cobra.Command{
	Use:   "push [catalog.json]",
	Short: "Upload the item catalog to object storage",
	Long: `Uploads a catalog document to the configured bucket so terminals using
the storage source can load it.

With a file argument the document is validated and uploaded as is. Without
one the catalog is exported from the configured database.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		ctx := cmd.Context()
		var snap *catalog.Snapshot
		if len(args) == 1 {
			if snap, err = readCatalogFile(args[0]); err != nil {
				return err
			}
		} else {
			db, err := database.Connect(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if snap, err = catalog.NewDatabaseSource(db).Load(ctx); err != nil {
				return err
			}
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		src := catalog.NewObjectSource(client, cfg.Storage.Bucket, cfg.Catalog.ObjectName)
		if err := src.Store(ctx, snap); err != nil {
			return err
		}

		logg.Info("Catalog uploaded",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", cfg.Catalog.ObjectName),
			zap.Int("items", snap.Len()),
		)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogPushCmd)
	RootCmd.AddCommand(catalogCmd)
}
