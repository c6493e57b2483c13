package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/smolbuf/internal/app"
	"go.trai.ch/smolbuf/internal/core/domain"
)

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [FILE]",
		Short: "Summarize how the texts of a corpus file would be stored",
		Long: "Summarize how the texts of a corpus file would be stored.\n\n" +
			"FILE defaults to " + domain.DefaultCorpusFile + ". Use - to read the corpus from standard input.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			format, _ := cmd.Flags().GetString("format")
			inputFormat, _ := cmd.Flags().GetString("input-format")
			workers, _ := cmd.Flags().GetInt("workers")
			verbose, _ := cmd.Flags().GetBool("verbose")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Analyze(cmd.Context(), app.AnalyzeOptions{
				Path:        path,
				InputFormat: inputFormat,
				Format:      format,
				Workers:     workers,
				Verbose:     verbose,
				Watch:       watch,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	cmd.Flags().String("input-format", "yaml", "Format of a corpus read from standard input: yaml or json")
	cmd.Flags().IntP("workers", "j", 0, "Number of entries classified at once (0 uses all CPUs)")
	cmd.Flags().BoolP("verbose", "v", false, "List every entry after the summary")
	cmd.Flags().BoolP("watch", "w", false, "Analyze again whenever the corpus file changes")
	return cmd
}
