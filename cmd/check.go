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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eslsoft/benkyo/pkg/japanese"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <answer> <n>",
	Short: "Check an answer for a number drill question",
	Long: `check grades one answer. With --direction num-to-jp the answer is romaji
for the number n; with jp-to-num it is the digits of n. The exit status is 1
when the answer is incorrect.`,
	Example: `  benkyo check "yon juu nana" 47
  benkyo check 47 47 --direction jp-to-num`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		direction, _ := cmd.Flags().GetString("direction")
		err := runCheck(cmd.OutOrStdout(), args[0], args[1], direction)
		if err == errIncorrect {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
		}
		return err
	},
}

func runCheck(w io.Writer, answer, number, direction string) error {
	dir, err := japanese.ParseDirection(direction)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil {
		return fmt.Errorf("invalid number %q", number)
	}
	expected, err := japanese.NumberToJapanese(n)
	if err != nil {
		return fmt.Errorf("%d: %w", n, err)
	}
	if dir == japanese.DirectionJPToNum {
		expected = strconv.Itoa(n)
	}

	if japanese.CheckNumberAnswer(answer, n, dir) {
		fmt.Fprintln(w, "correct")
		return nil
	}
	fmt.Fprintf(w, "incorrect, expected %s\n", expected)
	return errIncorrect
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("direction", string(japanese.DirectionNumToJP), "num-to-jp or jp-to-num")
}
