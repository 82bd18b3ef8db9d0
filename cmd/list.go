package cmd

import (
	"github.com/spf13/cobra"

	"devsetup/internal/catalog"
	"devsetup/internal/logger"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every tool devsetup can install",
	Run: func(cmd *cobra.Command, args []string) {
		for _, cat := range catalog.All() {
			logger.Log("%s (%s)\n", cat.Title, cat.Key)
			for _, item := range cat.Items {
				if item.Description != "" {
					logger.Msg("   • %-16s %s - %s\n", item.Key, item.Name, item.Description)
				} else {
					logger.Msg("   • %-16s %s\n", item.Key, item.Name)
				}
			}
		}
	},
}
