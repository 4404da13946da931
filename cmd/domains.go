package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studium/internal/domain"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List supported subject domains",
	Run: func(cmd *cobra.Command, args []string) {
		registry := domainRegistry()

		fmt.Printf("%-20s  %-24s  %s\n", "Key", "Display Name", "Content Types")
		fmt.Println(strings.Repeat("─", 80))
		for _, key := range registry.Keys() {
			cfg := registry.Get(key)
			types := strings.Join(cfg.ContentTypes, ", ")
			if len(types) > 34 {
				types = types[:34] + "..."
			}
			fmt.Printf("%-20s  %-24s  %s\n", key, cfg.DisplayName, types)
		}
	},
}

func domainRegistry() *domain.Registry {
	return domain.NewRegistry()
}
