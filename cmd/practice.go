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
	"github.com/eslsoft/benkyo/pkg/japanese"
)

// practiceCmd represents the practice command
var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Interactive number reading drill",
	Long: `practice asks random numbers between 1 and 99999. With num-to-jp you
type the romaji reading, with jp-to-num the digits. Type :q to stop early.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		direction, _ := cmd.Flags().GetString("direction")
		count, _ := cmd.Flags().GetInt("count")
		dir, err := japanese.ParseDirection(direction)
		if err != nil {
			return err
		}
		if count < 0 {
			return fmt.Errorf("invalid count %d", count)
		}

		c, err := loadContainer()
		if err != nil {
			return err
		}
		return runPractice(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), c.Numbers, dir, count)
	},
}

// runPractice drills count questions, or until input ends when count is 0.
func runPractice(ctx context.Context, in io.Reader, out io.Writer, uc usecase.NumberUsecase, dir japanese.Direction, count int) error {
	p := newPrompter(in, out)
	correct, asked := 0, 0
	for count == 0 || asked < count {
		q, err := uc.NewQuestion(ctx, dir)
		if err != nil {
			return err
		}
		answer, ok := p.ask(fmt.Sprintf("[%d] %s > ", asked+1, q.Prompt))
		if !ok {
			break
		}
		asked++

		result, err := uc.Check(ctx, answer, q.Number, dir)
		if err != nil {
			return err
		}
		if result.Correct {
			correct++
			fmt.Fprintln(out, "  correct")
			continue
		}
		fmt.Fprintf(out, "  incorrect, expected %s\n", result.Expected)
		if len(result.Accepted) > 1 {
			fmt.Fprintf(out, "  also accepted: %s\n", strings.Join(result.Accepted[1:], ", "))
		}
	}

	fmt.Fprintf(out, "score: %d/%d (%d%%)\n", correct, asked, entity.ScorePercent(correct, asked))
	return nil
}

func init() {
	rootCmd.AddCommand(practiceCmd)

	practiceCmd.Flags().String("direction", string(japanese.DirectionNumToJP), "num-to-jp or jp-to-num")
	practiceCmd.Flags().Int("count", 10, "number of questions, 0 for unlimited")
}
