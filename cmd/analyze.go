package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnsense/internal/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one explanation and print the result",
	Long: "Analyze sends a topic and your explanation of it to the configured LLM provider " +
		"and prints the diagnostic. Pass --understanding - to read the explanation from stdin.",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		understanding, _ := cmd.Flags().GetString("understanding")
		styleArg, _ := cmd.Flags().GetString("style")
		asJSON, _ := cmd.Flags().GetBool("json")

		if understanding == "-" {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			understanding = string(b)
		}

		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		log := openLogger(cfg)
		defer log.Sync() //nolint:errcheck

		style := cfg.DefaultStyle
		if styleArg != "" {
			if style, err = analysis.ParseLearningStyle(styleArg); err != nil {
				return err
			}
		}

		req := analysis.Request{Topic: topic, UserUnderstanding: understanding, LearningStyle: style}
		if err := req.Validate(); err != nil {
			return errors.New(analysis.UserMessage(err))
		}

		ctx := cmd.Context()
		analyzer, err := newAnalyzer(ctx, cfg, st, log)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		if cfg.LLM.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.LLM.Timeout)
			defer cancel()
		}

		resp, err := analyzer.Analyze(ctx, req)
		if err != nil {
			log.Warnw("analysis failed", "error", err)
			return errors.New(analysis.UserMessage(err))
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}
		printAnalysis(out, req, resp)
		return nil
	},
}

func printAnalysis(w io.Writer, req analysis.Request, r *analysis.Response) {
	sep := strings.Repeat("─", 60)
	list := func(title string, items []string) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, title)
		if len(items) == 0 {
			fmt.Fprintln(w, "  (none)")
			return
		}
		for _, item := range items {
			fmt.Fprintf(w, "  • %s\n", item)
		}
	}

	fmt.Fprintf(w, "Topic:     %s\n", strings.TrimSpace(req.Topic))
	fmt.Fprintf(w, "Style:     %s\n", req.LearningStyle)
	fmt.Fprintf(w, "Clarity:   %d/100\n", r.ClarityScore)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, "Invisible confusion")
	fmt.Fprintf(w, "  %s\n", r.InvisibleConfusion)

	list("Misconceptions", r.DetectedMisconceptions)
	list("Missing prerequisites", r.MissingPrerequisites)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Simplified explanation")
	fmt.Fprintf(w, "  %s\n", r.SimplifiedExplanation)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps")
	for i, step := range r.NextSteps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Study notes")
	fmt.Fprintf(w, "  %s\n", r.StudyNotes)

	list("Video searches", r.YoutubeSearchQueries)

	for i, p := range r.PracticeProblems {
		fmt.Fprintln(w, sep)
		fmt.Fprintf(w, "Problem %d: %s\n", i+1, p.Question)
		for j, opt := range p.Options {
			mark := " "
			if j == p.CorrectOptionIndex {
				mark = "*"
			}
			fmt.Fprintf(w, "  %s %c) %s\n", mark, 'A'+j, opt)
		}
		fmt.Fprintf(w, "  Hint: %s\n", p.Hint)
		fmt.Fprintf(w, "  Why:  %s\n", p.Explanation)
	}
}

func init() {
	analyzeCmd.Flags().StringP("topic", "t", "", "Topic you are studying")
	analyzeCmd.Flags().StringP("understanding", "u", "", "Your explanation in your own words, or - for stdin")
	analyzeCmd.Flags().StringP("style", "s", "", "Learning style: analogy, first-principles, eli5 or visual")
	analyzeCmd.Flags().Bool("json", false, "Print the raw result as JSON")
}
