package main

import (
	"github.com/AvengeMedia/dankpages/internal/log"
)

var Version = "dev"

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&layoutFlag, "layout", "l", "", "page layout: preset name (two, three, four) or comma separated pages")
	rootCmd.PersistentFlags().StringVarP(&themeFlag, "theme", "t", "", "initial theme (light or dark)")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "only apply field changes on the page that owns the field")

	configCmd.AddCommand(configInitCmd, configPathCmd)
	configInitCmd.Flags().Bool("force", false, "replace an existing config (a backup is kept)")

	rootCmd.AddCommand(versionCmd, layoutsCmd, replayCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
