package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobhunter/backend/agent"
	"github.com/jobhunter/backend/models"
)

const exitCommand = "exit"

var chatCmd = &cobra.Command{
	Use:   "chat <resume-file>",
	Short: "Parse a resume and chat with the job hunter agent in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		d, err := buildDeps(ctx, cfg, log, false)
		if err != nil {
			return err
		}
		defer d.close(log)

		if d.llm == nil {
			return errNoLanguageModel
		}

		profile, err := parseResumeFile(ctx, d.llm, args[0], log)
		if err != nil {
			return err
		}

		sessionID := uuid.NewString()
		d.agent.CreateSession(sessionID, profile)
		defer d.agent.DeleteSession(sessionID)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Loaded resume for %s (%d skills). Type %q to quit.\n\n",
			profile.Name, len(profile.Skills), exitCommand)

		prompt := promptui.Prompt{Label: "You"}
		for {
			message, err := prompt.Run()
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			message = strings.TrimSpace(message)
			if message == "" {
				continue
			}
			if strings.EqualFold(message, exitCommand) {
				return nil
			}

			reply, err := d.agent.Process(ctx, sessionID, message)
			if err != nil {
				log.Error("processing message", zap.Error(err))
				return err
			}
			printReply(out, reply)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func printReply(w io.Writer, reply models.ChatReply) {
	fmt.Fprintf(w, "\nAgent: %s\n", reply.Message)

	if len(reply.JobSuggestions) > 0 {
		fmt.Fprintln(w)
		for i, job := range reply.JobSuggestions {
			fmt.Fprintf(w, "  [%d] %s at %s (%d%% match)\n      %s\n",
				i+1, job.Title, job.Company, agent.MatchPercent(job.MatchScore), job.URL)
		}
	}
	fmt.Fprintln(w)
}
