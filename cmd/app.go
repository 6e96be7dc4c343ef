package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/app"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Open the terminal app on one topic",
	Example: `  mathlab practice --topic "Long Division"
  mathlab practice --topic multiplication --grade 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		topic, _ := cmd.Flags().GetString("topic")
		return runApp(cmd, grade, topic)
	},
}

func init() {
	practiceCmd.Flags().Int("grade", -1, "Grade (0 = kindergarten); defaults to the topic's grade")
	practiceCmd.Flags().String("topic", "", "Topic to practice (required)")
	_ = practiceCmd.MarkFlagRequired("topic")
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, grade int, topic string) error {
	ctx := cmd.Context()
	log, err := newLogger(cmd, "off")
	if err != nil {
		return err
	}
	defer log.Sync()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	reg, err := newRegistry(log)
	if err != nil {
		return err
	}

	opts := app.Options{
		Registry: reg,
		Store:    st,
		Tutor:    newTutor(ctx, cmd, st, log),
		Logger:   log,
	}
	if topic != "" {
		name, topicGrade, err := resolveTopic(reg, topic)
		if err != nil {
			return err
		}
		opts.Topic = name
		opts.Grade = topicGrade
		if grade >= 0 {
			opts.Grade = grade
		}
	}
	return app.Run(ctx, opts)
}
