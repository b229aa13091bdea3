package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/myaiplug/myaiplug-audioconvert/internal/cli"
	"github.com/myaiplug/myaiplug-audioconvert/internal/convert"
	"github.com/myaiplug/myaiplug-audioconvert/internal/engine"
	"github.com/myaiplug/myaiplug-audioconvert/internal/format"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

type appContext struct {
	log zerolog.Logger
}

func (c *appContext) converter() *convert.Converter {
	return convert.New(engine.New(c.log), c.log)
}

type convertCmd struct {
	Input      string `arg:"" help:"Input audio file."`
	Output     string `arg:"" help:"Output audio file."`
	Format     string `short:"f" placeholder:"FORMAT" help:"Output format (inferred from the output filename if not set)."`
	Bitrate    string `short:"b" default:"192k" placeholder:"BITRATE" help:"Bitrate for compressed formats (e.g. 192k, 320k)."`
	SampleRate int    `short:"r" placeholder:"HZ" help:"Target sample rate in Hz (e.g. 44100, 48000)."`
	Channels   int    `short:"c" placeholder:"N" help:"Number of channels (1=mono, 2=stereo)."`
}

func (c *convertCmd) Run(ctx *appContext) error {
	fmt.Printf("Converting %s to %s...\n", c.Input, c.Output)

	out, err := ctx.converter().Convert(convert.Request{
		Input:      c.Input,
		Output:     c.Output,
		Format:     c.Format,
		Bitrate:    c.Bitrate,
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
	})
	if err != nil {
		return err
	}

	cli.PrintSuccess(fmt.Sprintf("Successfully converted to %s", out))
	return nil
}

type infoCmd struct {
	Input string `arg:"" help:"Audio file to inspect."`
}

func (c *infoCmd) Run(ctx *appContext) error {
	fmt.Printf("Reading %s...\n", c.Input)

	info, err := ctx.converter().Info(c.Input)
	if err != nil {
		return err
	}

	cli.PrintInfo(info)
	return nil
}

type formatsCmd struct{}

func (c *formatsCmd) Run(_ *appContext) error {
	cli.PrintFormats(format.List())
	return nil
}

var root struct {
	Convert convertCmd `cmd:"" help:"Convert an audio file to a different format."`
	Info    infoCmd    `cmd:"" help:"Display information about an audio file."`
	Formats formatsCmd `cmd:"" help:"List all supported audio formats."`

	Verbose bool             `help:"Enable debug logging."`
	Version kong.VersionFlag `help:"Show version information."`
}

func main() {
	ctx := kong.Parse(&root,
		kong.Name("audioconvert"),
		kong.Description("High quality audio format converter."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	log := zerolog.Nop()
	if root.Verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	if err := ctx.Run(&appContext{log: log}); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
