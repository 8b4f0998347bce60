package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tmkelleher/fibstudy/internal/config"
	"github.com/tmkelleher/fibstudy/internal/model"
	"github.com/tmkelleher/fibstudy/internal/runtime"
	"github.com/tmkelleher/fibstudy/internal/uid"
)

// subjectCmd represents the subject command.
var subjectCmd = &cobra.Command{
	Use:     "subject",
	Aliases: []string{"subjects", "sub"},
	Short:   "Manage subjects",
	Long: `List subjects or create new ones. Every topic belongs to a subject,
and the subject's weight and bias shape the review intervals of all
its topics.

Examples:
  fibstudy subject list
  fibstudy subject add "Linear Algebra"
  fibstudy subject add "Japanese" --weight 0.5 --bias 1`,
	RunE: runSubjectList,
}

// Subject subcommand flags.
var (
	subjectAddFlagWeight float64
	subjectAddFlagBias   int
)

// subjectAddCmd creates a new subject.
var subjectAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a new subject",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubjectAdd,
}

// subjectListCmd lists all subjects.
var subjectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all subjects",
	Args:  cobra.NoArgs,
	RunE:  runSubjectList,
}

func init() {
	subjectAddCmd.Flags().Float64VarP(&subjectAddFlagWeight, "weight", "w",
		config.Global.Planner.DefaultWeight, "Interval multiplier (higher = less frequent reviews)")
	subjectAddCmd.Flags().IntVarP(&subjectAddFlagBias, "bias", "b",
		config.Global.Planner.DefaultBias, "Flat day offset added to every interval")

	subjectCmd.AddCommand(subjectAddCmd)
	subjectCmd.AddCommand(subjectListCmd)
	rootCmd.AddCommand(subjectCmd)
}

func runSubjectAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	id, err := ctx.Planner.CreateSubject(name, subjectAddFlagWeight, subjectAddFlagBias)
	if err != nil {
		return err
	}

	subject, err := ctx.Planner.Subject(id)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCreated(model.KindSubject, string(id))
	}

	ctx.CLIFormatter().PrintSubjectCreated(subject)
	return nil
}

func runSubjectList(cmd *cobra.Command, args []string) error {
	subjects := ctx.Planner.ListSubjects()

	topicCounts := make(map[string]int)
	for _, topic := range ctx.Planner.ListTopics() {
		topicCounts[string(topic.SubjectUID)]++
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSubjects(subjects, topicCounts)
	}

	ctx.CLIFormatter().PrintSubjectList(subjects, topicCounts)
	return nil
}

// resolveSubject turns a --subject flag value into a stored subject.
// Names are tried first, then raw UIDs.
func resolveSubject(name string) (*model.Subject, error) {
	if name == "" {
		return nil, runtime.ErrSubjectRequired
	}
	if subject, err := ctx.Planner.SubjectByName(name); err == nil {
		return subject, nil
	}
	return ctx.Planner.Subject(uid.Parse(name))
}
