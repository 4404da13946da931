package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studium/internal/llm"
	"github.com/abhisek/studium/internal/store"
)

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Inspect AI request log and usage",
}

var aiListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent AI requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		requests, err := st.AIRequestRepo().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}
		if len(requests) == 0 {
			fmt.Println("No AI requests found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-22s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 108))

		for _, r := range requests {
			if purpose != "" && r.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			model := r.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-22s  %-28s  %-6d  %-6d  %-7d  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Purpose,
				model,
				r.InputTokens,
				r.OutputTokens,
				r.LatencyMS,
				ok,
			)
		}
		return nil
	},
}

var aiStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated AI token usage per purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		usage, err := st.AIRequestRepo().UsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No AI usage recorded yet.")
			return nil
		}

		fmt.Println("Usage by Purpose")
		fmt.Println(strings.Repeat("─", 76))
		fmt.Printf("%-22s  %8s  %8s  %10s  %10s  %10s\n",
			"Purpose", "Requests", "Failures", "Input", "Output", "Total")
		fmt.Println(strings.Repeat("─", 76))

		var totalRequests, totalIn, totalOut int
		for _, u := range usage {
			fmt.Printf("%-22s  %8d  %8d  %10d  %10d  %10d\n",
				u.Purpose, u.Requests, u.Failures, u.InputTokens, u.OutputTokens,
				u.InputTokens+u.OutputTokens)
			totalRequests += u.Requests
			totalIn += u.InputTokens
			totalOut += u.OutputTokens
		}

		fmt.Println(strings.Repeat("─", 76))
		fmt.Printf("%-22s  %8d  %8s  %10d  %10d  %10d\n",
			"TOTAL", totalRequests, "", totalIn, totalOut, totalIn+totalOut)

		// Rough cost: recent requests grouped by model.
		recent, err := st.AIRequestRepo().Recent(ctx, 0)
		if err != nil || len(recent) == 0 {
			return nil
		}
		type modelUsage struct {
			calls, in, out int
		}
		byModel := make(map[string]*modelUsage)
		var order []string
		for _, r := range recent {
			mu, ok := byModel[r.Model]
			if !ok {
				mu = &modelUsage{}
				byModel[r.Model] = mu
				order = append(order, r.Model)
			}
			mu.calls++
			mu.in += r.InputTokens
			mu.out += r.OutputTokens
		}

		fmt.Println()
		fmt.Println("Estimated Cost (USD)")
		fmt.Println(strings.Repeat("─", 76))
		var totalCost float64
		var unknown []string
		for _, model := range order {
			mu := byModel[model]
			cost := llm.LookupCost(model)
			if cost == nil {
				unknown = append(unknown, model)
				fmt.Printf("%-36s  %6d  %10s\n", truncate(model, 36), mu.calls, "?")
				continue
			}
			c := cost.Cost(mu.in, mu.out)
			totalCost += c
			fmt.Printf("%-36s  %6d  %10s\n", truncate(model, 36), mu.calls, formatCost(c))
		}
		fmt.Println(strings.Repeat("─", 76))
		label := "TOTAL"
		if len(unknown) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-36s  %6s  %10s\n", label, "", formatCost(totalCost))
		if len(unknown) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	aiListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	aiListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. quiz, qa, pdf_extraction)")

	aiCmd.AddCommand(aiListCmd)
	aiCmd.AddCommand(aiStatsCmd)
}
