// Package vislog wires the vislog command line application.
package vislog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/arloliu/vislog/container"
	"github.com/arloliu/vislog/export"
	"github.com/arloliu/vislog/internal/config"
	"github.com/arloliu/vislog/loader"
)

// App returns the vislog root command writing its results to stdout.
func App() *cli.Command {
	return newApp(os.Stdout)
}

func newApp(stdout io.Writer) *cli.Command {
	o := config.Defaults()
	return &cli.Command{
		Name:  "vislog",
		Usage: "Inspect Vision sensor logs and export them resampled on a uniform time axis.",
		Flags: config.GlobalFlags(o),
		Commands: []*cli.Command{
			infoCMD(stdout),
			exportCMD(stdout, o),
		},
		EnableShellCompletion: true,
	}
}

func infoCMD(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "lists the datasets of a log file",
		ArgsUsage: "FILE",
		Action: func(ctx *cli.Context) error {
			path := ctx.Args().First()
			if path == "" {
				return errors.New("missing log file argument")
			}

			return info(stdout, path)
		},
	}
}

func info(w io.Writer, path string) error {
	r, err := container.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	fmt.Fprintf(w, "file:     %s\ncreated:  %s\ndatasets: %d\n\n", path, r.CreatedAt().Format("2006-01-02T15:04:05.000000Z07:00"), r.Len())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEVENT\tCOUNT\tENCODING\tCOMPRESSION\tSTORED")
	for _, name := range r.Datasets() {
		ds, err := r.Info(name)
		if err != nil {
			return err
		}
		event := ds.Event
		if event == "" {
			event = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%d\n", ds.Name, event, ds.Count, ds.Encoding, ds.Compression, ds.StoredSize)
	}

	return tw.Flush()
}

func exportCMD(stdout io.Writer, o *config.Options) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "loads log files, resamples and concatenates them, and writes a table",
		ArgsUsage: "FILE...",
		Flags:     config.ExportFlags(o),
		Action: func(ctx *cli.Context) error {
			paths := ctx.Args().Slice()
			if len(paths) == 0 {
				return errors.New("missing log file arguments")
			}

			format, err := export.ParseFormat(o.Format)
			if err != nil {
				return err
			}

			l, err := loader.New(config.LoaderOptions(o))
			if err != nil {
				return err
			}

			merged, err := l.LoadMany(ctx.Context, paths, config.Selector(o.Signals))
			if err != nil {
				return err
			}

			return writeOutput(stdout, o.Output, merged.Record, format)
		},
	}
}

func writeOutput(stdout io.Writer, path string, rec loader.Record, format export.Format) error {
	if path == "" || path == "-" {
		return export.Write(stdout, rec, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := export.Write(f, rec, format); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
