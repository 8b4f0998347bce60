package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tmkelleher/fibstudy/internal/model"
	"github.com/tmkelleher/fibstudy/internal/parser"
)

// topicCmd represents the topic command.
var topicCmd = &cobra.Command{
	Use:     "topic",
	Aliases: []string{"topics", "top"},
	Short:   "Manage topics",
	Long: `List the topics of a subject or create new ones. A topic is one
reviewable unit of material, scheduled independently of its siblings.

Examples:
  fibstudy topic add "Eigenvalues" --subject "Linear Algebra"
  fibstudy topic add "Kanji N5" --subject Japanese --studied yesterday
  fibstudy topic list --subject "Linear Algebra"`,
	RunE: runTopicList,
}

// Topic subcommand flags.
var (
	topicFlagSubject    string
	topicAddFlagStudied string
)

// topicAddCmd creates a new topic.
var topicAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a new topic under a subject",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicAdd,
}

// topicListCmd lists the topics of a subject.
var topicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the topics of a subject",
	Args:  cobra.NoArgs,
	RunE:  runTopicList,
}

func init() {
	topicCmd.PersistentFlags().StringVarP(&topicFlagSubject, "subject", "s", "",
		"Subject the topic belongs to (required)")
	topicAddCmd.Flags().StringVar(&topicAddFlagStudied, "studied", "",
		"When the topic was last studied (default: now)")

	topicCmd.AddCommand(topicAddCmd)
	topicCmd.AddCommand(topicListCmd)
	rootCmd.AddCommand(topicCmd)
}

func runTopicAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	subject, err := resolveSubject(topicFlagSubject)
	if err != nil {
		return err
	}

	studied, err := parser.ParseTimestamp(topicAddFlagStudied)
	if err != nil {
		return err
	}

	id, err := ctx.Planner.CreateTopic(name, subject.UID, studied)
	if err != nil {
		return err
	}

	topic, err := ctx.Planner.Topic(id)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCreated(model.KindTopic, string(id))
	}

	ctx.CLIFormatter().PrintTopicCreated(topic, subject)
	return nil
}

func runTopicList(cmd *cobra.Command, args []string) error {
	subject, err := resolveSubject(topicFlagSubject)
	if err != nil {
		return err
	}

	topics := ctx.Planner.ListTopicsForSubject(subject.UID)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTopics(subject, topics)
	}

	ctx.CLIFormatter().PrintTopicList(subject, topics)
	return nil
}
