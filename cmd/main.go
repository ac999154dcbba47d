// cmd/main.go

package main

import (
	"fmt"
	"os"

	"github.com/google/gops/agent"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"OneBRC/pkg/utils"
	"OneBRC/pkg/version"
)

var logger = utils.GetLogger("onebrc")

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug", "v"},
			Usage:   "enable debug log",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "enable trace log",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only warning and errors",
		},
		&cli.StringFlag{
			Name:  "log",
			Usage: "append logs to this file instead of stderr",
		},
		&cli.BoolFlag{
			Name:  "no-agent",
			Usage: "disable gops agent",
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 "onebrc",
		Usage:                "per-station min/mean/max over huge measurement files",
		Version:              version.Version(),
		EnableBashCompletion: true,
		Writer:               stdout,
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			calcFlags(),
			genFlags(),
		},
	}
}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "print only the version",
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

func setLoggerLevel(c *cli.Context) {
	if c.Bool("trace") {
		utils.SetLogLevel(logrus.TraceLevel)
	} else if c.Bool("verbose") {
		utils.SetLogLevel(logrus.DebugLevel)
	} else if c.Bool("quiet") {
		utils.SetLogLevel(logrus.WarnLevel)
	} else {
		utils.SetLogLevel(logrus.InfoLevel)
	}
	if name := c.String("log"); name != "" {
		if err := utils.SetOutFile(name); err != nil {
			logger.Warnf("open log file %s: %s", name, err)
		}
	}
	setupAgent(c)
}

func setupAgent(c *cli.Context) {
	if c.Bool("no-agent") {
		return
	}
	for port := 6070; port < 6100; port++ {
		if err := agent.Listen(agent.Options{Addr: fmt.Sprintf("127.0.0.1:%d", port)}); err == nil {
			logger.Debugf("gops agent listening on 127.0.0.1:%d", port)
			return
		}
	}
	logger.Debugf("no free port for gops agent")
}
