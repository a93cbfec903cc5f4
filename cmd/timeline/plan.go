package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hackebrot/go-timeline/internal/config"
	"github.com/hackebrot/go-timeline/pkg/clock"
	"github.com/hackebrot/go-timeline/pkg/timeline"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

func plan(ctx *cli.Context) error {
	path := ctx.String("script")
	if path == "" {
		path = ctx.Args().First()
	}
	if path == "" {
		return errNoScript
	}

	units, err := config.LoadScript(afero.NewOsFs(), path)
	if err != nil {
		return err
	}

	p := newPlayer(clock.NewManual(0), nil, 0)
	p.load(units)
	writePlan(ctx.App.Writer, p.tl)
	return nil
}

// writePlan prints one line per populated second.
func writePlan(w io.Writer, tl *timeline.Timeline) {
	for _, b := range tl.Buckets() {
		entries := make([]string, 0, len(b.Units))
		for _, u := range b.Units {
			entries = append(entries, fmt.Sprintf("%s@%v (%v)", u.ID(), u.ScheduledTime(), u.Duration()))
		}
		fmt.Fprintf(w, "second %d: %s\n", b.Second, strings.Join(entries, ", "))
	}
	fmt.Fprintf(w, "units: %d, total duration: %v\n", tl.Len(), tl.Duration())
}
