/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eslsoft/benkyo/internal/entity"
	"github.com/eslsoft/benkyo/internal/usecase"
)

// quizCmd represents the quiz command
var quizCmd = &cobra.Command{
	Use:   "quiz <topic>",
	Short: "Interactive vocabulary quiz on one topic",
	Long: `quiz asks 10 or 20 shuffled questions from a topic and shows the
results at the end. jp-to-en prompts in Japanese (with a katakana hint) and
expects English; en-to-jp is the reverse. Type :q to finish early.`,
	Example: `  benkyo quiz Animals
  benkyo quiz Food --direction en-to-jp --count 20`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		direction, _ := cmd.Flags().GetString("direction")
		dir, err := entity.ParseQuizDirection(direction)
		if err != nil {
			return err
		}

		c, err := loadContainer()
		if err != nil {
			return err
		}
		cfg := entity.QuizConfig{
			Topic:         entity.Topic{Name: strings.TrimSpace(args[0])},
			Direction:     dir,
			QuestionCount: entity.QuestionCount(c.Config.Quiz.DefaultCount),
		}
		return runQuiz(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), c.Quiz, cfg)
	},
}

func runQuiz(ctx context.Context, in io.Reader, out io.Writer, uc usecase.QuizUsecase, cfg entity.QuizConfig) error {
	questions, err := uc.StartQuiz(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s (%s), %d questions\n", cfg.Topic.Name, cfg.Direction, len(questions))
	p := newPrompter(in, out)
	answered := questions[:0]
	for i, q := range questions {
		prompt := q.Prompt
		if q.Hint != "" && q.Hint != q.Prompt {
			prompt = fmt.Sprintf("%s (%s)", q.Prompt, q.Hint)
		}
		answer, ok := p.ask(fmt.Sprintf("[%d/%d] %s > ", i+1, len(questions), prompt))
		if !ok {
			break
		}
		q.UserAnswer = answer
		answered = append(answered, q)
		if uc.CheckAnswer(q, answer) {
			fmt.Fprintln(out, "  correct")
		} else {
			fmt.Fprintf(out, "  incorrect, answer: %s\n", q.Answer)
		}
	}
	if len(answered) == 0 {
		fmt.Fprintln(out, "no questions answered")
		return nil
	}

	report, err := uc.SubmitQuiz(ctx, answered)
	if err != nil {
		return err
	}
	printReport(out, report)
	return nil
}

func printReport(out io.Writer, report *entity.QuizReport) {
	fmt.Fprintf(out, "\nscore: %d/%d (%d%%)\n", report.Correct, report.Total, report.Score)
	var missed []string
	for _, r := range report.Results {
		if r.IsCorrect {
			continue
		}
		missed = append(missed, fmt.Sprintf("  %s = %s (you: %s)", r.Question.Prompt, r.Question.Answer, r.Question.UserAnswer))
	}
	if len(missed) > 0 {
		fmt.Fprintln(out, "review:")
		fmt.Fprintln(out, strings.Join(missed, "\n"))
	}
}

func init() {
	rootCmd.AddCommand(quizCmd)

	quizCmd.Flags().String("direction", string(entity.QuizDirectionJPToEN), "jp-to-en or en-to-jp")
	quizCmd.Flags().Int("count", 10, "number of questions, 10 or 20")
	quizCmd.Flags().Bool("hints", true, "show katakana reading hints")

	bindFlagToViper("quiz.default_count", quizCmd.Flags().Lookup("count"))
	bindFlagToViper("quiz.hints", quizCmd.Flags().Lookup("hints"))
}
