package cmd

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/studium/internal/store"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show course content statistics",
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
		courses, err := st.CourseRepo().List(ctx)
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}
		if len(courses) == 0 {
			fmt.Println("No courses yet.")
			return nil
		}

		fmt.Println(headerStyle.Render("Courses"))
		fmt.Printf("%-5s  %-32s  %-10s  %8s  %8s  %6s\n",
			"ID", "Name", "Level", "Subjects", "Chapters", "Hours")
		fmt.Println(strings.Repeat("─", 80))

		var totalSubjects, totalChapters int
		for _, c := range courses {
			name := c.Name
			if len(name) > 32 {
				name = name[:32]
			}
			fmt.Printf("%-5d  %-32s  %-10s  %8d  %8d  %6d\n",
				c.ID, name, c.AcademicLevel, c.TotalSubjects, c.TotalChapters, c.EstimatedStudyHours)
			totalSubjects += c.TotalSubjects
			totalChapters += c.TotalChapters
		}

		fmt.Println(strings.Repeat("─", 80))
		fmt.Printf("%-5s  %-32s  %-10s  %8d  %8d\n", "", "TOTAL", "", totalSubjects, totalChapters)
		return nil
	},
}
