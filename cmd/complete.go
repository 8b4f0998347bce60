package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tmkelleher/fibstudy/internal/parser"
)

// Complete command flags.
var (
	completeFlagSubject string
	completeFlagAt      string
)

// completeCmd records a finished review of a topic.
var completeCmd = &cobra.Command{
	Use:     "complete TOPIC",
	Aliases: []string{"done", "studied"},
	Short:   "Record a completed review",
	Long: `Record that you reviewed a topic. Each completion moves the topic one
step along the Fibonacci sequence, so the next review lands further
out.

Examples:
  fibstudy complete "Eigenvalues" --subject "Linear Algebra"
  fibstudy complete "Kanji N5" --subject Japanese --at "yesterday evening"`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().StringVarP(&completeFlagSubject, "subject", "s", "",
		"Subject the topic belongs to (required)")
	completeCmd.Flags().StringVar(&completeFlagAt, "at", "",
		"When the review happened (default: now)")

	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	subject, err := resolveSubject(completeFlagSubject)
	if err != nil {
		return err
	}

	topic, err := ctx.Planner.TopicByName(subject.UID, args[0])
	if err != nil {
		return err
	}

	when, err := parser.ParseTimestamp(completeFlagAt)
	if err != nil {
		return err
	}

	if err := ctx.Planner.CompleteTopicAt(topic.UID, when); err != nil {
		return err
	}

	// Re-read for the updated interval index, then predict the next due date.
	topic, err = ctx.Planner.Topic(topic.UID)
	if err != nil {
		return err
	}
	due, err := ctx.Planner.PredictAll()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCompleted(topic, due[topic.UID])
	}

	ctx.CLIFormatter().PrintTopicCompleted(topic, subject, due[topic.UID])
	return nil
}
