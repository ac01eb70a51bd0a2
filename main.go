package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/habeanf/yap-ccg/app/ccgparse"
)

var cmd *commander.Command

func init() {
	cmd = &commander.Command{
		UsageLine: os.Args[0],
		Subcommands: []*commander.Command{
			ccgparse.ParseCmd(),
		},
		Flag: *flag.NewFlagSet("ccgparse", flag.ExitOnError),
	}
}

func main() {
	if err := cmd.Flag.Parse(os.Args[1:]); err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}

	args := cmd.Flag.Args()
	if err := cmd.Dispatch(args); err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}
