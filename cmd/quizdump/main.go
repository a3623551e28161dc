package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"quiz-dump/internal/adapter"
	"quiz-dump/internal/domain"
	"quiz-dump/internal/export"
	"quiz-dump/internal/parser"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "quizdump",
		Short: "Exam dump parser",
		Long: `quizdump turns a markdown exam dump into structured question records.

Records carry the question id, topic, body, options, the official answer,
the community vote line, the discussion link and whether the question
expects several answers.`,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("separator", "", "block separator line (default: 40 dashes)")
	rootCmd.PersistentFlags().String("metadata-marker", "", "line fragment that ends the metadata area of a block")
	rootCmd.PersistentFlags().Int("workers", 0, "parse blocks with this many goroutines (0 = sequential)")

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadQuestions reads the dump at path and parses it with the persistent flags.
func loadQuestions(cmd *cobra.Command, path string) ([]domain.Question, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	doc, _, err := adapter.NewFileDocumentSource(path).Load(ctx)
	if err != nil {
		return nil, err
	}

	var opts []parser.Option
	if sep, _ := cmd.Flags().GetString("separator"); sep != "" {
		opts = append(opts, parser.WithSeparator(sep))
	}
	if marker, _ := cmd.Flags().GetString("metadata-marker"); marker != "" {
		opts = append(opts, parser.WithMetadataEndMarker(marker))
	}
	workers, _ := cmd.Flags().GetInt("workers")
	if workers > 0 {
		opts = append(opts, parser.WithWorkers(workers))
	}

	p := parser.New(opts...)
	if workers > 0 {
		return p.ParseConcurrent(ctx, doc)
	}
	return p.Parse(doc), nil
}

func parseCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "parse <dump.md>",
		Short: "Parse a dump and print the records as JSON",
		Example: `  quizdump parse SAA_C03.md
  quizdump parse SAA_C03.md --workers 8 --output questions.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := loadQuestions(cmd, args[0])
			if err != nil {
				return err
			}
			if questions == nil {
				questions = []domain.Question{}
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(questions)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to this file instead of stdout")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <dump.md>",
		Short: "Summarize a dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := loadQuestions(cmd, args[0])
			if err != nil {
				return err
			}

			var multiselect, answered, suggested, linked int
			topics := make(map[string]int)
			for i := range questions {
				q := &questions[i]
				topics[q.Topic]++
				if q.IsMultiselect {
					multiselect++
				}
				if q.HasCorrectAnswer() {
					answered++
				}
				if q.SuggestedAnswerText != nil {
					suggested++
				}
				if q.DiscussionLink != nil {
					linked++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Questions:        %d\n", len(questions))
			fmt.Fprintf(out, "Multi-select:     %d\n", multiselect)
			fmt.Fprintf(out, "With answer:      %d\n", answered)
			fmt.Fprintf(out, "With vote line:   %d\n", suggested)
			fmt.Fprintf(out, "With discussion:  %d\n", linked)

			names := make([]string, 0, len(topics))
			for name := range topics {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintln(out, "Topics:")
			for _, name := range names {
				fmt.Fprintf(out, "  %-10s %d\n", name, topics[name])
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "export <dump.md>",
		Short:   "Export the records to an Excel workbook",
		Example: `  quizdump export SAA_C03.md --out questions.xlsx`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := loadQuestions(cmd, args[0])
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			if err := export.WriteXLSX(f, questions); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d questions to %s\n", len(questions), output)
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "out", "questions.xlsx", "output workbook path")
	return cmd
}
