package main

import (
	"log"
	"os"

	"go.uber.org/zap"
	"gopkg.in/urfave/cli.v1"
)

var logger = zap.NewNop()

var (
	signedFlag = cli.BoolFlag{
		Name:  "signed",
		Usage: "treat values as two's complement I256",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "log parsing and dispatch details to stderr",
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "num256"
	app.Usage = "256-bit integer calculator and inspector"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{verboseFlag}
	app.Commands = []cli.Command{
		calcCommand,
		fmtCommand,
		bytesCommand,
		inspectCommand,
	}

	app.Before = func(ctx *cli.Context) error {
		if !ctx.GlobalBool(verboseFlag.Name) {
			logger = zap.NewNop()
			return nil
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
		return nil
	}
	app.After = func(ctx *cli.Context) error {
		_ = logger.Sync()
		return nil
	}
	return app
}
