package main

import (
	"fmt"
	"os"

	"git.gammaspectra.live/P2Pool/algebra/utils"
	"github.com/urfave/cli"
)

var app = cli.NewApp()

func init() {
	app.Name = "edkey"
	app.Usage = "Edwards25519 scalar and point toolbox"
	app.Version = "1.0.0"
	app.Before = before
	app.Commands = []cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"g"},
			Usage:   "generates random key pairs and prints them as JSON",
			Flags:   []cli.Flag{CountFlag, RoutinesFlag},
			Action:  withCommands(generateAction),
		},
		{
			Name:      "public",
			Usage:     "derives the public point of each scalar",
			ArgsUsage: "<scalar>...",
			Action:    withCommands(publicAction),
		},
		{
			Name:      "validate-scalar",
			Usage:     "checks each scalar is usable as a private key",
			ArgsUsage: "<scalar>...",
			Action:    withCommands(validateScalarAction),
		},
		{
			Name:      "validate-point",
			Usage:     "checks each point is in the prime order subgroup",
			ArgsUsage: "<point>...",
			Action:    withCommands(validatePointAction),
		},
		{
			Name:      "add-points",
			Usage:     "prints the sum of the points",
			ArgsUsage: "<point>...",
			Action:    withCommands(addPointsAction),
		},
		{
			Name:      "sort-points",
			Usage:     "prints the points in their deterministic order",
			ArgsUsage: "<point>...",
			Action:    withCommands(sortPointsAction),
		},
		{
			Name:      "hash-to-scalar",
			Usage:     "hashes the concatenated arguments to a scalar",
			ArgsUsage: "<data>...",
			Flags:     []cli.Flag{KeccakFlag},
			Action:    withCommands(hashToScalarAction),
		},
	}
	app.Flags = append(app.Flags, GlobalFlags...)
}

func before(ctx *cli.Context) error {
	level, err := utils.ParseLogLevel(ctx.String(LogLevelFlag.Name))
	if err != nil {
		return err
	}
	utils.GlobalLogLevel = level
	// keep stdout for command output
	utils.SetLogOutput(os.Stderr)
	utils.Debugf("edkey", "engine %s, cache %s/%d", ctx.String(EngineFlag.Name), ctx.String(CacheTypeFlag.Name), ctx.Int(CacheSizeFlag.Name))
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
