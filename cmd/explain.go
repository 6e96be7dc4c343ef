package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/explain"
	"github.com/abhisek/mathlab/internal/sampler"
)

var explainCmd = &cobra.Command{
	Use:   "explain <topic>",
	Short: "Show a worked example for a topic",
	Long: `Generate one problem and walk through its solution.

With --ai the configured LLM provider writes the walkthrough; without a
provider, or when the call fails, the recorded steps are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		useAI, _ := cmd.Flags().GetBool("ai")
		ctx := cmd.Context()

		log, err := newLogger(cmd, "off")
		if err != nil {
			return err
		}
		defer log.Sync()

		reg, err := newRegistry(log)
		if err != nil {
			return err
		}
		topic, grade, err := resolveTopic(reg, args[0])
		if err != nil {
			return err
		}

		s := sampler.New()
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			s = sampler.NewSeeded(seed)
		}
		p, err := reg.GenerateWith(s, topic)
		if err != nil {
			return err
		}

		exp := explain.Walkthrough(p)
		if useAI {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			exp = newTutor(ctx, cmd, st, log).Explain(ctx, p, reg.Catalog().GradeName(grade))
		}

		out := cmd.OutOrStdout()
		color.New(color.FgHiCyan, color.Bold).Fprintln(out, p.Display)
		fmt.Fprintln(out)
		for i, step := range exp.Steps {
			fmt.Fprintf(out, "%d. %s\n", i+1, step)
		}
		if exp.Tip != "" {
			fmt.Fprintln(out)
			color.New(color.FgYellow).Fprintf(out, "Tip: %s\n", exp.Tip)
		}
		if useAI && exp.Source != explain.SourceTutor {
			color.New(color.FgWhite).Fprintln(cmd.ErrOrStderr(), "(tutor unavailable, showing recorded steps)")
		}
		return nil
	},
}

func init() {
	explainCmd.Flags().Bool("ai", false, "Ask the LLM tutor for the walkthrough")
	explainCmd.Flags().Uint64("seed", 0, "Seed for a reproducible problem")
}
