package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"

	schnorr "github.com/athanorlabs/go-schnorr"
	"github.com/athanorlabs/go-schnorr/ed25519"
	"github.com/athanorlabs/go-schnorr/secp256k1"
	"github.com/athanorlabs/go-schnorr/types"
)

var (
	errInvalidSignature = errors.New("invalid signature")
	errUnknownCurve     = errors.New("unknown curve")
	errUnknownHash      = errors.New("unknown hash")
	errMissingFlag      = errors.New("missing required flag")
)

func curveByName(name string) (types.Curve, error) {
	switch name {
	case "secp256k1":
		return secp256k1.NewCurve(), nil
	case "ed25519":
		return ed25519.NewCurve(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownCurve, name)
	}
}

func hashByName(name string) (schnorr.HashFunc, error) {
	switch name {
	case "sha256":
		return schnorr.SHA256, nil
	case "sha3-256":
		return schnorr.SHA3, nil
	case "blake2b-256":
		return schnorr.BLAKE2b256, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownHash, name)
	}
}

func schemeFromContext(c *cli.Context) (*schnorr.Scheme, error) {
	cv, err := curveByName(c.GlobalString(curve.Name))
	if err != nil {
		return nil, err
	}

	h, err := hashByName(c.GlobalString(hash.Name))
	if err != nil {
		return nil, err
	}

	return schnorr.New(cv, schnorr.WithHash(h)), nil
}

func requiredHex(c *cli.Context, flag cli.StringFlag) ([]byte, error) {
	value := c.String(flag.Name)
	if value == "" {
		return nil, fmt.Errorf("%w: --%s", errMissingFlag, flag.Name)
	}

	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid hex for --%s: %w", flag.Name, err)
	}

	return b, nil
}

// readMessage returns the message from --message-file if set, otherwise the
// hex decoded --message, which may be empty.
func readMessage(c *cli.Context) ([]byte, error) {
	path := c.String(messageFile.Name)
	if path != "" {
		return os.ReadFile(path)
	}

	m, err := hex.DecodeString(c.String(message.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid hex for --%s: %w", message.Name, err)
	}

	return m, nil
}

func readPrivateKey(c *cli.Context, s *schnorr.Scheme) (types.Scalar, error) {
	b, err := requiredHex(c, privateKey)
	if err != nil {
		return nil, err
	}

	x, err := s.Curve().DecodeToScalar(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}

	return x, nil
}

func pubkeyAction(c *cli.Context) error {
	s, err := schemeFromContext(c)
	if err != nil {
		return err
	}

	x, err := readPrivateKey(c, s)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, hex.EncodeToString(s.PublicKey(x).Encode()))
	return err
}

func signAction(c *cli.Context) error {
	s, err := schemeFromContext(c)
	if err != nil {
		return err
	}

	x, err := readPrivateKey(c, s)
	if err != nil {
		return err
	}

	m, err := readMessage(c)
	if err != nil {
		return err
	}

	sig, err := s.Sign(x, m)
	if err != nil {
		return err
	}

	log.Debug("message signed", "curve", s.Curve().Name(), "message", m)
	_, err = fmt.Fprintln(c.App.Writer, hex.EncodeToString(sig.Encode()))
	return err
}

func verifyAction(c *cli.Context) error {
	s, err := schemeFromContext(c)
	if err != nil {
		return err
	}

	pkBytes, err := requiredHex(c, publicKey)
	if err != nil {
		return err
	}

	p, err := s.Curve().DecodeToPoint(pkBytes)
	if err != nil {
		return fmt.Errorf("failed to decode public key: %w", err)
	}

	sigBytes, err := requiredHex(c, signature)
	if err != nil {
		return err
	}

	sig, err := schnorr.DecodeSignature(s.Curve(), sigBytes)
	if err != nil {
		return fmt.Errorf("failed to decode signature: %w", err)
	}

	m, err := readMessage(c)
	if err != nil {
		return err
	}

	if !s.Verify(p, m, sig) {
		return errInvalidSignature
	}

	log.Info("signature is valid", "curve", s.Curve().Name(), "public key", pkBytes)
	_, err = fmt.Fprintln(c.App.Writer, "ok")
	return err
}
