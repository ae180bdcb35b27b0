package main

import (
	"github.com/urfave/cli"
)

var (
	// curve defines the group keys and signatures belong to
	curve = cli.StringFlag{
		Name:   "curve",
		Usage:  "The group to operate in: secp256k1 or ed25519",
		Value:  "secp256k1",
		EnvVar: "SCHNORR_CURVE",
	}
	// hash defines the digest used for the challenge
	hash = cli.StringFlag{
		Name:   "hash",
		Usage:  "The challenge digest: sha256, sha3-256 or blake2b-256",
		Value:  "sha256",
		EnvVar: "SCHNORR_HASH",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,main:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the main package which will have DEBUG level.",
		Value:  "*:INFO",
		EnvVar: "SCHNORR_LOG_LEVEL",
	}

	privateKey = cli.StringFlag{
		Name:   "private-key",
		Usage:  "The hex encoded private scalar",
		EnvVar: "SCHNORR_PRIVATE_KEY",
	}
	publicKey = cli.StringFlag{
		Name:  "public-key",
		Usage: "The hex encoded public point",
	}
	message = cli.StringFlag{
		Name:  "message",
		Usage: "The hex encoded message. May be empty",
	}
	messageFile = cli.StringFlag{
		Name:  "message-file",
		Usage: "The `filepath` of a file whose raw contents are the message. Takes precedence over --message",
	}
	signature = cli.StringFlag{
		Name:  "signature",
		Usage: "The hex encoded signature, s followed by e",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		curve,
		hash,
		logLevel,
	}
}
