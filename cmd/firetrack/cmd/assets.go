package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the asset color palette",
	Long: `List the colors assigned to tracked assets.

New assets get a random color on their first contribution; --reset restores
the default palette.`,
	RunE: runAssets,
}

var assetsReset bool

func init() {
	rootCmd.AddCommand(assetsCmd)
	assetsCmd.Flags().BoolVar(&assetsReset, "reset", false, "restore the default palette")
}

func runAssets(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if assetsReset {
		if err := env.colors.Reset(); err != nil {
			return err
		}
		fmt.Println("Palette reset to defaults.")
	}

	colors, err := env.colors.Load()
	if err != nil {
		return err
	}

	assets := make([]string, 0, len(colors))
	for asset := range colors {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	for _, asset := range assets {
		fmt.Printf("%-20s %s\n", asset, colors[asset])
	}
	return nil
}
