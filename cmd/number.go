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

// numberCmd represents the number command
var numberCmd = &cobra.Command{
	Use:   "number <n>...",
	Short: "Print the romaji reading of numbers between 0 and 99999",
	Example: `  benkyo number 12345
  benkyo number --all 7800`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		return printReadings(cmd.OutOrStdout(), args, all)
	},
}

func printReadings(w io.Writer, args []string, all bool) error {
	for _, arg := range args {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return fmt.Errorf("invalid number %q", arg)
		}
		reading, err := japanese.NumberToJapanese(n)
		if err != nil {
			return fmt.Errorf("%d: %w", n, err)
		}
		if !all {
			fmt.Fprintf(w, "%d\t%s\n", n, reading)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\n", n, strings.Join(japanese.AllValidJapanese(n), ", "))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(numberCmd)

	numberCmd.Flags().Bool("all", false, "print every accepted reading, canonical first")
}
