package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const appVersion = "v0.1.0"

var (
	helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}} command [command options]
   {{if .Commands}}
COMMANDS:
   {{range .Commands}}{{join .Names ", "}}{{ "\t" }}{{.Usage}}
   {{end}}{{end}}{{if .VisibleFlags}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}{{end}}
VERSION:
   {{.Version}}
`

	log = logger.GetOrCreate("main")
)

func main() {
	_ = logger.SetDisplayByteSlice(logger.ToHexShort)

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("could not load .env file", "error", err)
	}

	app := newApp()
	err = app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	cli.AppHelpTemplate = helpTemplate
	app.Name = "Schnorr signature tool"
	app.Version = appVersion
	app.Usage = "Signs messages and verifies Schnorr signatures over secp256k1 or ed25519"
	app.Flags = getFlags()
	app.Before = func(c *cli.Context) error {
		return logger.SetLogLevel(c.GlobalString(logLevel.Name))
	}
	app.Commands = []cli.Command{
		{
			Name:   "pubkey",
			Usage:  "Prints the public point for a private scalar",
			Flags:  []cli.Flag{privateKey},
			Action: pubkeyAction,
		},
		{
			Name:   "sign",
			Usage:  "Signs a message and prints the signature",
			Flags:  []cli.Flag{privateKey, message, messageFile},
			Action: signAction,
		},
		{
			Name:   "verify",
			Usage:  "Verifies a signature; exits with a non-zero status if it is invalid",
			Flags:  []cli.Flag{publicKey, message, messageFile, signature},
			Action: verifyAction,
		},
	}

	return app
}
