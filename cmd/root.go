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
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "benkyo",
	Short: "Japanese study drills: number readings and vocabulary quizzes",
	Long: `benkyo converts numbers to their Japanese readings, drills them in
both directions and runs vocabulary quizzes from topic files. It can be used
from the terminal or served as a Connect API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .env in . or ./config)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("topics-dir", "", "directory holding topics.json and topic files (default: built-in topics)")
	flags.Uint64("seed", 0, "random seed for question order, 0 draws one from the OS")

	bindFlagToViper("config", flags.Lookup("config"))
	bindFlagToViper("log.level", flags.Lookup("log-level"))
	bindFlagToViper("quiz.topics_dir", flags.Lookup("topics-dir"))
	bindFlagToViper("quiz.seed", flags.Lookup("seed"))
}
