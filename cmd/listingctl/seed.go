package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"property-listings/internal/seed"
)

var seedFlags struct {
	file  string
	force bool
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load users and listings from a YAML seed file",
	Long: `Load users and listings from a YAML seed file.

The file defaults to seed.path from the config. A store that already holds
listings is left untouched unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFlags.file, "file", "f", "", "seed file (defaults to seed.path)")
	seedCmd.Flags().BoolVar(&seedFlags.force, "force", false, "seed even when listings exist")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	path := seedFlags.file
	if path == "" {
		path = a.cfg.Seed.Path
	}
	if path == "" {
		return fmt.Errorf("no seed file: pass --file or set seed.path")
	}

	file, err := seed.Load(path)
	if err != nil {
		return err
	}
	res, err := seed.Apply(ctx, file, a.users, a.listings, seedFlags.force, a.l)
	if err != nil {
		return err
	}

	if res.Skipped {
		fmt.Fprintln(cmd.OutOrStdout(), "store already has listings, nothing seeded (use --force)")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users and %d listings\n", res.Users, res.Listings)
	return nil
}
