// cmd/calc.go

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"github.com/vbauerster/mpb/v8"

	"OneBRC/pkg/agg"
	"OneBRC/pkg/publish"
	"OneBRC/pkg/source"
	"OneBRC/pkg/utils"
)

func calcFlags() *cli.Command {
	return &cli.Command{
		Name:      "calc",
		Usage:     "compute min/mean/max per station",
		ArgsUsage: "FILE or sftp://USER@HOST/PATH",
		Action:    calc,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"p"},
				Value:   runtime.NumCPU(),
				Usage:   "number of parallel workers",
			},
			&cli.IntFlag{
				Name:  "capacity",
				Value: agg.DefaultCapacity,
				Usage: "hash table slots per worker (power of two, above the number of stations)",
			},
			&cli.IntFlag{
				Name:  "bwlimit",
				Value: 0,
				Usage: "bandwidth limit for reading the input in Mbps (0 means unlimited, disables mmap)",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "show a progress bar on stderr",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the result as JSON",
			},
			&cli.BoolFlag{
				Name:  "timing",
				Usage: "log elapsed and CPU time",
			},
			&cli.StringFlag{
				Name:  "publish",
				Usage: "also store the result into Redis (redis://host:port/db)",
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Value: 0,
				Usage: "expiration of published results (0 means never)",
			},
		},
	}
}

var stdout io.Writer = os.Stdout

type report struct {
	RunID    string
	Source   string
	Stations []agg.Station
}

func printJson(w io.Writer, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json: %s", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func calc(c *cli.Context) error {
	setLoggerLevel(c)
	if c.Args().Len() < 1 {
		return fmt.Errorf("FILE is needed")
	}
	uri := c.Args().Get(0)
	name := source.Redact(uri)
	runID := uuid.New().String()
	start := utils.Now()

	buf, err := source.Open(c.Context, uri, &source.Options{BwLimit: int64(c.Int("bwlimit")) * 1e6 / 8})
	if err != nil {
		return fmt.Errorf("open %s: %s", name, err)
	}
	defer buf.Release()
	logger.Debugf("run %s: %d bytes loaded in %s (mmap: %t)", runID, buf.Len(), time.Since(start), buf.Mapped())

	conf := &agg.Config{Workers: c.Int("workers"), Capacity: c.Int("capacity")}
	var progress *mpb.Progress
	var bar *mpb.Bar
	if c.Bool("progress") {
		progress, bar = utils.NewBytesProgressBar("scanned:", int64(buf.Len()), c.Bool("quiet"))
		conf.Progress = bar.IncrInt64
	}
	res, err := agg.Run(buf, conf)
	if progress != nil {
		bar.SetTotal(-1, true)
		progress.Wait()
	}
	if err != nil {
		return fmt.Errorf("calc %s: %s", name, err)
	}

	// stdout only carries the summary of a fully successful run
	if addr := c.String("publish"); addr != "" {
		r, err := publish.NewRedis(addr, 3, c.Duration("ttl"))
		if err != nil {
			return err
		}
		defer r.Close()
		if err = r.Publish(c.Context, runID, res); err != nil {
			return err
		}
	}

	if c.Bool("json") {
		err = printJson(stdout, &report{runID, name, res.Stations})
	} else {
		_, err = res.WriteTo(stdout)
	}
	if err != nil {
		return err
	}

	if c.Bool("timing") {
		ru := utils.GetRusage()
		logger.Infof("%d stations in %s (user %.2fs, sys %.2fs, process %s)",
			len(res.Stations), time.Since(start), ru.GetUtime(), ru.GetStime(), utils.Clock())
	}
	return nil
}
