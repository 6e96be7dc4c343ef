package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/catalog"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List practice topics by grade",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		cat := catalog.Default()

		grades := cat.Grades()
		if grade >= 0 {
			if cat.ListTopics(grade) == nil {
				return fmt.Errorf("no topics for grade %d (grades run %d-%d)", grade, grades[0], grades[len(grades)-1])
			}
			grades = []int{grade}
		}

		out := cmd.OutOrStdout()
		heading := color.New(color.FgHiCyan, color.Bold)
		for i, g := range grades {
			if i > 0 {
				fmt.Fprintln(out)
			}
			topics := cat.ListTopics(g)
			heading.Fprintf(out, "%s (%d topics)\n", cat.GradeName(g), len(topics))
			for _, t := range topics {
				fmt.Fprintf(out, "  %s\n", t)
			}
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().Int("grade", -1, "Only list this grade (0 = kindergarten)")
}
