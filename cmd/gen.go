// cmd/gen.go

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"OneBRC/pkg/compress"
	"OneBRC/pkg/gen"
	"OneBRC/pkg/utils"
)

func genFlags() *cli.Command {
	return &cli.Command{
		Name:      "gen",
		Usage:     "generate a measurements file",
		ArgsUsage: "FILE",
		Action:    generate,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "rows",
				Value: 1000000,
				Usage: "number of measurements",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed (default: current time)",
			},
			&cli.StringFlag{
				Name:  "compress",
				Value: "none",
				Usage: "compression algorithm (lz4, zstd, none)",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "overwrite existing file",
			},
		},
	}
}

func generate(c *cli.Context) error {
	setLoggerLevel(c)
	if c.Args().Len() < 1 {
		return fmt.Errorf("FILE is needed")
	}
	path := c.Args().Get(0)
	compressor := compress.NewCompressor(c.String("compress"))
	if compressor == nil {
		return fmt.Errorf("unsupported compress algorithm: %s", c.String("compress"))
	}
	if suffix := compress.Suffix(compressor); !strings.HasSuffix(path, suffix) {
		path += suffix
	}
	if utils.Exists(path) && !c.Bool("force") {
		return fmt.Errorf("%s already exists, use --force to overwrite it", path)
	}
	rows := c.Int64("rows")
	if rows < 0 {
		return fmt.Errorf("invalid number of rows: %d", rows)
	}
	seed := c.Int64("seed")
	if !c.IsSet("seed") {
		seed = time.Now().UnixNano()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var w io.Writer = f
	var raw bytes.Buffer
	stream := compress.NewStreamWriter(f, compressor)
	framed := stream == nil && compressor.Name() != "Noop"
	if stream != nil {
		w = stream
	} else if framed {
		// lz4 frames hold one block
		w = &raw
	}
	progress, bar := utils.NewProgressBar("rows:", rows, c.Bool("quiet"))
	err = gen.Generate(w, rows, gen.DefaultStations, seed, bar.IncrInt64)
	bar.SetTotal(-1, true)
	progress.Wait()
	if err != nil {
		return fmt.Errorf("generate %s: %s", path, err)
	}
	if stream != nil {
		if err = stream.Close(); err != nil {
			return fmt.Errorf("write %s: %s", path, err)
		}
	}
	if framed {
		if err = compress.WriteFrame(f, compressor, raw.Bytes()); err != nil {
			return fmt.Errorf("write %s: %s", path, err)
		}
	}
	if err = f.Close(); err != nil {
		return err
	}
	logger.Infof("Generated %d rows into %s (seed %d)", rows, path, seed)
	return nil
}
