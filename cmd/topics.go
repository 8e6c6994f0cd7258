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
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/eslsoft/benkyo/internal/repository"
	"github.com/eslsoft/benkyo/internal/usecase"
)

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List quiz topics",
	Example: `  benkyo topics
  benkyo topics --filter "questions >= 15" --order-by "questions desc"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		orderBy, _ := cmd.Flags().GetString("order-by")

		c, err := loadContainer()
		if err != nil {
			return err
		}
		return printTopics(cmd.Context(), cmd.OutOrStdout(), c.Quiz, filter, orderBy)
	},
}

func printTopics(ctx context.Context, w io.Writer, uc usecase.QuizUsecase, filter, orderBy string) error {
	items, _, err := uc.ListTopics(ctx, &repository.ListTopicQuery{
		Pagination:  repository.Pagination{PageNo: 1},
		FilterOrder: repository.FilterOrder{Filter: filter, OrderBy: orderBy},
	})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Topic", "Questions"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	for _, item := range items {
		table.Append([]string{item.Name, strconv.Itoa(item.QuestionCount)})
	}
	table.Render()
	return nil
}

func init() {
	rootCmd.AddCommand(topicsCmd)

	topicsCmd.Flags().String("filter", "", "CEL filter, e.g. name.startsWith('A') && questions >= 10")
	topicsCmd.Flags().String("order-by", "", "order keys: name, questions with optional asc|desc")
}
