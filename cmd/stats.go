package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/stats"
	"github.com/abhisek/mathlab/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show score, streak and per-topic accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		st, err := s.LoadStats(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		topics, err := s.TopicAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("topic accuracy: %w", err)
		}
		var attempts []store.Attempt
		if recent, _ := cmd.Flags().GetInt("recent"); recent > 0 {
			attempts, err = s.RecentAttempts(ctx, recent)
			if err != nil {
				return fmt.Errorf("recent attempts: %w", err)
			}
		}
		usage, err := s.LLMUsage(ctx)
		if err != nil {
			return fmt.Errorf("llm usage: %w", err)
		}

		out := cmd.OutOrStdout()
		bold := color.New(color.Bold)

		bold.Fprintln(out, "Progress")
		fmt.Fprintf(out, "  Score:     %d\n", st.Score)
		fmt.Fprintf(out, "  Streak:    %d (next goal %d)\n", st.Streak, stats.NextStreakMilestone(st.Streak))
		fmt.Fprintf(out, "  Answered:  %d\n", st.TotalAttempts)
		fmt.Fprintf(out, "  Correct:   %d (%.0f%%)\n", st.CorrectAnswers, st.Accuracy()*100)

		if len(topics) > 0 {
			fmt.Fprintln(out)
			bold.Fprintln(out, "By topic")
			fmt.Fprintf(out, "  %-40s  %8s  %8s\n", "Topic", "Answered", "Accuracy")
			fmt.Fprintln(out, "  "+strings.Repeat("─", 60))
			for _, t := range topics {
				line := fmt.Sprintf("  %-40s  %8d  %7.0f%%", t.Topic, t.Attempts, t.Accuracy()*100)
				switch acc := t.Accuracy(); {
				case acc >= 0.8:
					color.New(color.FgGreen).Fprintln(out, line)
				case acc < 0.5:
					color.New(color.FgRed).Fprintln(out, line)
				default:
					fmt.Fprintln(out, line)
				}
			}
		}

		if len(attempts) > 0 {
			fmt.Fprintln(out)
			bold.Fprintln(out, "Recent answers")
			for _, a := range attempts {
				mark, c := "✓", color.New(color.FgGreen)
				if !a.Correct {
					mark, c = "✗", color.New(color.FgRed)
				}
				c.Fprintf(out, "  %s ", mark)
				fmt.Fprintf(out, "%s  %s  (you: %s, answer: %s)\n",
					a.CreatedAt.Local().Format("2006-01-02 15:04"), a.Display, a.Input, a.Expected)
			}
		}

		if usage.Requests > 0 {
			fmt.Fprintln(out)
			bold.Fprintln(out, "Tutor")
			fmt.Fprintf(out, "  Requests:  %d (%d failed)\n", usage.Requests, usage.Failures)
			fmt.Fprintf(out, "  Tokens:    %d in / %d out\n", usage.InputTokens, usage.OutputTokens)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 5, "Number of recent answers to list (0 hides them)")
}
