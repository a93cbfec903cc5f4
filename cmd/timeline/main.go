package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "timeline: %s\n", err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "timeline"
	app.HelpName = "timeline"
	app.Usage = "Play units along a shared timeline."
	app.UsageText = "timeline <command> [arguments...]"
	app.Version = version
	app.Commands = []cli.Command{
		{
			Name:      "play",
			Aliases:   []string{"p"},
			Usage:     "play a timeline script",
			ArgsUsage: "[script]",
			Action:    play,
			Flags:     playFlags(),
		},
		{
			Name:      "plan",
			Usage:     "print the bucketed schedule of a timeline script",
			ArgsUsage: "[script]",
			Action:    plan,
			Flags:     []cli.Flag{scriptFlag()},
		},
	}
	return app
}
