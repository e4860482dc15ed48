package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"prakruti/internal/catalog"
	"prakruti/internal/quiz"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newQuizCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take the dosha quiz in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			variant := quiz.VariantFull
			if short {
				variant = quiz.VariantShort
			}
			products, err := catalog.Default()
			if err != nil {
				return err
			}
			return runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), variant, products)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "ask the three-question variant")
	return cmd
}

// runQuiz drives a quiz session from line input. Each line is an option
// number, a dosha name, or "r" to start over.
func runQuiz(in io.Reader, out io.Writer, variant quiz.Variant, products *catalog.Catalog) error {
	s, err := quiz.NewSession(uuid.New().String(), variant)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for !s.Done() {
		q := s.Current()
		fmt.Fprintf(out, "\n[%d/%d] %s\n", s.Step+1, s.Total(), q.Text)
		for i, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, o.Text)
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return fmt.Errorf("quiz aborted at question %d", s.Step+1)
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "r") {
			s.Reset()
			fmt.Fprintln(out, "Starting over.")
			continue
		}

		d, ok := pick(q, line)
		if !ok {
			fmt.Fprintln(out, "Please choose one of the listed options.")
			continue
		}
		if err := s.Answer(d); err != nil {
			return err
		}
	}

	result := *s.Result
	fmt.Fprintf(out, "\nYour dominant dosha is %s.\n%s\n", result.Title(), quiz.Profile(result))

	recs := products.Filter(string(result))
	if len(recs) > 0 {
		fmt.Fprintln(out, "\nRecommended for you:")
		for _, p := range recs {
			fmt.Fprintf(out, "  - %s (₹%.2f)\n", p.Name, p.Price)
		}
	}
	return nil
}

func pick(q *quiz.Question, line string) (quiz.Dosha, bool) {
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(q.Options) {
			return "", false
		}
		return q.Options[n-1].Value, true
	}
	d, err := quiz.ParseDosha(line)
	return d, err == nil
}
