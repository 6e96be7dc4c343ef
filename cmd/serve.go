package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/answer"
	"github.com/abhisek/mathlab/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the practice HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		addr, _ := cmd.Flags().GetString("addr")
		maxSessions, _ := cmd.Flags().GetInt("max-sessions")
		ttl, _ := cmd.Flags().GetDuration("session-ttl")

		log, err := newLogger(cmd, "dev")
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

		srv := server.New(server.Deps{
			Registry: reg,
			Checker:  answer.New(answer.ConfigFromEnv()),
			History:  st,
			Tutor:    newTutor(ctx, cmd, st, log),
			Logger:   log,

			MaxSessions: maxSessions,
			SessionTTL:  ttl,
		})
		log.Info("listening", "addr", addr)
		return srv.Run(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Listen address")
	serveCmd.Flags().Int("max-sessions", server.DefaultMaxSessions, "Most live practice sessions")
	serveCmd.Flags().Duration("session-ttl", server.DefaultSessionTTL, "Drop sessions idle for longer")
}
