package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pehlione.com/storefront/internal/config"
	"pehlione.com/storefront/internal/modules/catalog"
	"pehlione.com/storefront/internal/storage"
)

var (
	dryRun      bool
	timeout     time.Duration
	concurrency int

	srcDir string
	force  bool
)

var rootCmd = &cobra.Command{
	Use:   "syncassets",
	Short: "Sync catalog product images with the configured asset storage",
	Long: `syncassets pushes the images referenced by the product catalog to the
storage selected by STORAGE_DRIVER (local directory or S3), or removes them.

Source files are looked up under --src by their storage key, e.g.
./assets/products/macbook-air-m2.jpg for key products/macbook-air-m2.jpg.`,
	SilenceUsage: true,
}

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload catalog images, skipping keys that already exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSyncer(cmd, func(ctx context.Context, s *syncer) (report, error) {
			return s.Upload(ctx, srcDir, catalogKeys(), force)
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete catalog images from storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSyncer(cmd, func(ctx context.Context, s *syncer) (report, error) {
			return s.Delete(ctx, catalogKeys())
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Only print what would happen")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Overall timeout")
	rootCmd.PersistentFlags().IntVar(&concurrency, "concurrency", 4, "Parallel storage operations")

	uploadCmd.Flags().StringVar(&srcDir, "src", "./assets", "Directory holding the images, laid out by storage key")
	uploadCmd.Flags().BoolVar(&force, "force", false, "Upload even when the key already exists")

	rootCmd.AddCommand(uploadCmd, deleteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func withSyncer(cmd *cobra.Command, run func(context.Context, *syncer) (report, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	res, err := storage.FromConfig(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Storage driver: %s\n", res.Driver)

	s := &syncer{store: res.Storage, out: cmd.OutOrStdout(), dryRun: dryRun, concurrency: concurrency}
	rep, err := run(ctx, s)
	fmt.Fprintln(cmd.OutOrStdout(), rep)
	return err
}

// catalogKeys lists the distinct image keys referenced by the catalog.
func catalogKeys() []string {
	seen := map[string]bool{}
	var keys []string
	for _, p := range catalog.All() {
		if p.Image == "" || seen[p.Image] {
			continue
		}
		seen[p.Image] = true
		keys = append(keys, p.Image)
	}
	return keys
}
