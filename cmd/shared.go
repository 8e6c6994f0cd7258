package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eslsoft/benkyo/internal/app"
)

// errIncorrect reports a wrong answer through the exit status only.
var errIncorrect = errors.New("incorrect")

func bindFlagToViper(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func loadContainer() (*app.Container, error) {
	c, _, err := app.Initialize()
	if err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}
	return c, nil
}

// prompter reads one answer per line.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints prompt and returns the next line. ok is false at end of input or
// when the learner types :q.
func (p *prompter) ask(prompt string) (answer string, ok bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	answer = strings.TrimSpace(p.in.Text())
	if answer == ":q" {
		return "", false
	}
	return answer, true
}
