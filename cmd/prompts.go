package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studium/internal/gateway"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Inspect prompt templates",
}

var promptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompt templates with validation status",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := promptStore(cmd)

		fmt.Printf("%-36s  %-8s  %s\n", "Template", "Params", "Status")
		fmt.Println(strings.Repeat("─", 60))
		for _, name := range store.List() {
			info := store.Validate(name)
			status := "ok"
			if !info.Valid {
				status = "invalid: " + info.Error
			}
			fmt.Printf("%-36s  %-8d  %s\n", name, info.ParameterCount, status)
		}
		return nil
	},
}

var promptsShowCmd = &cobra.Command{
	Use:   "show <template>",
	Short: "Show a template and its parameters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := promptStore(cmd)

		content, err := store.Load(args[0])
		if err != nil {
			return fmt.Errorf("load template: %w", err)
		}
		info := store.Validate(args[0])

		fmt.Printf("Template:   %s\n", args[0])
		fmt.Printf("Parameters: %s\n", strings.Join(info.Parameters, ", "))
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println(content)
		return nil
	},
}

var promptsPreviewCmd = &cobra.Command{
	Use:   "preview <template>",
	Short: "Render a template with placeholder sample values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := promptStore(cmd)

		info := store.Validate(args[0])
		if !info.Valid {
			return fmt.Errorf("invalid template: %s", info.Error)
		}

		params := make(map[string]string, len(info.Parameters))
		for _, p := range info.Parameters {
			params[p] = "<" + p + ">"
		}
		rendered, err := store.Preview(args[0], params)
		if err != nil {
			return fmt.Errorf("render template: %w", err)
		}
		fmt.Println(rendered)
		return nil
	},
}

func promptStore(cmd *cobra.Command) *gateway.TemplateStore {
	dir, _ := cmd.Flags().GetString("templates")
	return gateway.NewTemplateStore(dir)
}

func init() {
	promptsCmd.PersistentFlags().String("templates", "", "Directory with template overrides")

	promptsCmd.AddCommand(promptsListCmd)
	promptsCmd.AddCommand(promptsShowCmd)
	promptsCmd.AddCommand(promptsPreviewCmd)
}
