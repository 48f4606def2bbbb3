package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vivadesk/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM usage by purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().UsageByPurpose(context.Background())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		purposes := make([]string, 0, len(stats))
		for p := range stats {
			purposes = append(purposes, p)
		}
		sort.Strings(purposes)

		fmt.Println("Usage by Purpose")
		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-18s  %8s  %8s  %10s  %10s  %8s\n",
			"Purpose", "Calls", "Failed", "Input", "Output", "Avg Ms")
		fmt.Println(strings.Repeat("─", 78))

		var totalCalls, totalIn, totalOut int64
		for _, p := range purposes {
			st := stats[p]
			fmt.Printf("%-18s  %8d  %8d  %10d  %10d  %8.0f\n",
				p, st.Requests, st.Failures, st.InputTokens, st.OutputTokens, st.AvgLatencyMs)
			totalCalls += st.Requests
			totalIn += st.InputTokens
			totalOut += st.OutputTokens
		}

		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-18s  %8d  %8s  %10d  %10d\n",
			"TOTAL", totalCalls, "", totalIn, totalOut)

		return nil
	},
}
