package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/fixedbytes/logger"
	"github.com/iotaledger/hive.go/fixedbytes/serializer"
	"github.com/iotaledger/hive.go/fixedbytes/serializer/hex"
	"github.com/iotaledger/hive.go/fixedbytes/types"
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	ErrMissingCommand  = ierrors.New("missing command, expected one of encode, decode or id")
	ErrUnknownCommand  = ierrors.New("unknown command")
	ErrMissingArgument = ierrors.New("missing argument")
)

func run(args []string, out io.Writer) error {
	flagSet := newFlagSet()
	flagSet.SetOutput(out)
	flagSet.Usage = func() {
		fmt.Fprintf(out, "Usage: fixedbytes [flags] encode <value> | decode <hex> | id <text>\n\n%s", flagSet.FlagUsages())
	}

	if err := flagSet.Parse(args); err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	if flagSet.NArg() == 0 {
		return ErrMissingCommand
	}
	command, commandArgs := flagSet.Arg(0), flagSet.Args()[1:]

	config, err := loadConfiguration(flagSet)
	if err != nil {
		return err
	}

	log, err := logger.NewRootLoggerFromConfiguration(config)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	display := ParametersDisplay{
		Upper:  config.Bool(keyDisplayUpper),
		Prefix: config.Bool(keyDisplayPrefix),
	}

	switch command {
	case "encode":
		return encode(log, out, config.String(keyType), display, commandArgs)
	case "decode":
		return decode(log, out, config.String(keyType), commandArgs)
	case "id":
		return identify(out, display, commandArgs)
	default:
		return ierrors.Wrapf(ErrUnknownCommand, "%q", command)
	}
}

func firstArg(args []string, name string) (string, error) {
	if len(args) == 0 {
		return "", ierrors.Wrap(ErrMissingArgument, name)
	}

	return args[0], nil
}

func encode(log *zap.Logger, out io.Writer, typeName string, display ParametersDisplay, args []string) error {
	c, err := codecFor(typeName)
	if err != nil {
		return err
	}

	text, err := firstArg(args, "value")
	if err != nil {
		return err
	}

	value, err := c.parse(text)
	if err != nil {
		return err
	}
	log.Debug("encoding value", zap.String("type", typeName), zap.Int("size", value.Size()))

	_, err = fmt.Fprintf(out, display.format()+"\n", hex.Display(value))

	return err
}

func decode(log *zap.Logger, out io.Writer, typeName string, args []string) error {
	c, err := codecFor(typeName)
	if err != nil {
		return err
	}

	hexString, err := firstArg(args, "hex")
	if err != nil {
		return err
	}

	decoded, err := c.format(trimHexPrefix(hexString))
	if err != nil {
		var seriErr serializer.Error
		if ierrors.As(err, &seriErr) {
			log.Debug("decoding failed", zap.Stringer("kind", seriErr.Kind), zap.String("input", hexString))
		}

		return ierrors.Wrapf(err, "failed to decode %s", typeName)
	}

	_, err = fmt.Fprintln(out, decoded)

	return err
}

// trimHexPrefix strips a leading "0x" or "0X".
func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}

	return s
}

func identify(out io.Writer, display ParametersDisplay, args []string) error {
	if len(args) == 0 {
		return ierrors.Wrap(ErrMissingArgument, "text")
	}
	data := []byte(strings.Join(args, " "))

	id := types.NewIdentifier(data)
	checksum := types.NewChecksum(data)

	format := display.format()
	_, err := fmt.Fprintf(out, "identifier: "+format+"\nbase58: %s\nchecksum: "+format+"\n", id, id.Base58(), checksum)

	return err
}
