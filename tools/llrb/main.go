package main

import "os"
import "fmt"

import "github.com/bnclabs/golog"
import "github.com/spf13/cobra"

var options struct {
	loglevel string
	seed     int64
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "llrb",
		Short: "Exercise bst and llrb trees",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setts := map[string]interface{}{
				"log.level":      options.loglevel,
				"log.colorfatal": "red",
				"log.colorerror": "hired",
				"log.colorwarn":  "yellow",
			}
			log.SetLogger(nil, setts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&options.loglevel, "log", "info",
		"log level, ignore|fatal|error|warn|info|verbose|debug|trace")
	rootCmd.PersistentFlags().Int64Var(&options.seed, "seed", 0,
		"seed for random generator, 0 pick current time")

	rootCmd.AddCommand(benchCmd(), loadCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
