package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fisherro/streams/pkg/filestream"
	"github.com/fisherro/streams/pkg/filter/buffered"
	"github.com/fisherro/streams/pkg/stream"
)

// ttyBufferSize keeps interactive output snappy. Pipes and files get the
// full buffered default instead.
const ttyBufferSize = 1024

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "streamcat [file ...]",
		Short: "concatenate files through stream compositions",
		Long: `streamcat reads each input and writes it to stdout or a file, moving
every byte through sink and source compositions.

With no arguments, or with the argument -, streamcat reads stdin.

Flags may also be set through STREAMCAT_* environment variables, for
example:
  STREAMCAT_BUFFER_SIZE=65536 streamcat big.dat
  streamcat --hex firmware.bin | less -R
`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runCat(args)
		},
	}

	setupRootCmd(rootCmd)
	return rootCmd
}

func setupRootCmd(rootCmd *cobra.Command) {
	rootCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")
	rootCmd.Flags().BoolP("append", "a", false, "append to the output file instead of truncating")
	rootCmd.Flags().IntP("buffer-size", "b", 0, "buffer capacity in bytes (0 picks a default)")
	rootCmd.Flags().Bool("hex", false, "render a hex dump instead of raw bytes")
	rootCmd.Flags().Bool("unbuffered", false, "skip the buffered filters entirely")
	rootCmd.Flags().Bool("no-color", false, "disable color in the hex dump")

	viper.SetEnvPrefix("STREAMCAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("append", rootCmd.Flags().Lookup("append"))
	_ = viper.BindPFlag("buffer-size", rootCmd.Flags().Lookup("buffer-size"))
	_ = viper.BindPFlag("hex", rootCmd.Flags().Lookup("hex"))
	_ = viper.BindPFlag("unbuffered", rootCmd.Flags().Lookup("unbuffered"))
	_ = viper.BindPFlag("no-color", rootCmd.Flags().Lookup("no-color"))
}

func runCat(args []string) error {
	outputPath := viper.GetString("output")
	appendMode := viper.GetBool("append")
	hexDump := viper.GetBool("hex")
	unbuffered := viper.GetBool("unbuffered")
	noColor := viper.GetBool("no-color")

	tty := outputPath == "" && isatty.IsTerminal(os.Stdout.Fd())
	useColor := hexDump && tty && !noColor
	size := pickBufferSize(viper.GetInt("buffer-size"), tty)

	// The destination leaf.
	var dest stream.Sink
	var closeDest func() error
	switch {
	case outputPath != "":
		f, err := openOutput(outputPath, appendMode)
		if err != nil {
			return err
		}
		dest = f
		closeDest = f.Close
	case useColor:
		dest = stream.FromWriter(colorable.NewColorableStdout())
	default:
		dest = filestream.Stdout()
	}

	// Buffered filter over the leaf, hex view on top, so rendered rows
	// are batched before they reach the handle.
	out := dest
	if !unbuffered {
		out = buffered.NewSinkSize(out, size)
	}
	if hexDump {
		out = newHexSink(out, useColor)
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		if err := catOne(out, path, size, unbuffered, tty); err != nil {
			if errors.Is(err, syscall.EPIPE) {
				// The reader went away (head, less). Not a failure.
				return nil
			}
			return err
		}
	}

	if err := out.Flush(); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			return nil
		}
		return err
	}
	if closeDest != nil {
		return closeDest()
	}
	return nil
}

// catOne pumps one input into out. On terminals each finished input is
// flushed so short files appear immediately.
func catOne(out stream.Sink, path string, size int, unbuffered, tty bool) error {
	src, err := openInput(path)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	var in stream.Source = src
	if !unbuffered {
		in = buffered.NewSourceSize(in, size)
	}

	if _, err := stream.Copy(out, in); err != nil {
		return fmt.Errorf("%s: %w", displayName(path), err)
	}
	if tty {
		return out.Flush()
	}
	return nil
}

func openInput(path string) (*filestream.Source, error) {
	if path == "-" {
		return filestream.Stdin(), nil
	}
	return filestream.Open(path)
}

func openOutput(path string, appendMode bool) (*filestream.Sink, error) {
	if appendMode {
		return filestream.Append(path)
	}
	return filestream.Create(path)
}

func pickBufferSize(requested int, tty bool) int {
	if requested > 0 {
		return requested
	}
	if tty {
		return ttyBufferSize
	}
	return buffered.DefaultBufferSize
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
