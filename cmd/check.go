package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/answer"
	"github.com/abhisek/mathlab/internal/sampler"
)

// errIncorrect makes `check` exit non-zero on a wrong answer.
var errIncorrect = errors.New("answer is incorrect")

var checkCmd = &cobra.Command{
	Use:   "check <topic> <answer>",
	Short: "Grade an answer to a seeded problem",
	Long: `Regenerate the problem that ` + "`mathlab generate <topic> --seed N`" + ` printed
and grade an answer against it. Use --index for later problems of a batch.`,
	Example: `  mathlab check "Addition" --seed 7 42
  mathlab check "Simplifying Fractions" --seed 7 --index 3 "2/3"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetUint64("seed")
		index, _ := cmd.Flags().GetInt("index")
		if index < 1 {
			return fmt.Errorf("--index must be at least 1, got %d", index)
		}

		log, err := newLogger(cmd, "off")
		if err != nil {
			return err
		}
		defer log.Sync()

		reg, err := newRegistry(log)
		if err != nil {
			return err
		}
		topic, _, err := resolveTopic(reg, args[0])
		if err != nil {
			return err
		}

		problems, err := generateBatch(reg, sampler.NewSeeded(seed), topic, index)
		if err != nil {
			return err
		}
		p := problems[index-1]

		correct, err := answer.New(answer.ConfigFromEnv()).IsCorrect(p, args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, p.Display)
		if correct {
			color.New(color.FgGreen, color.Bold).Fprintln(out, "✓ correct")
			return nil
		}
		color.New(color.FgRed, color.Bold).Fprintf(out, "✗ incorrect, expected %s\n", p.Answer.String())
		cmd.SilenceErrors = true
		return errIncorrect
	},
}

func init() {
	checkCmd.Flags().Uint64("seed", 0, "Seed the problem was generated with (required)")
	checkCmd.Flags().Int("index", 1, "Position of the problem in the seeded batch")
	_ = checkCmd.MarkFlagRequired("seed")
}
