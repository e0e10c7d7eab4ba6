// SPDX-License-Identifier: MIT

// Command flipimg mirrors an image across one axis.
//
//	flipimg -in photo.png -out mirrored.png -axis h
//	flipimg -in scan.tiff -out upside.bmp -axis v -format bmp
//
// The image is reduced to 8-bit gray before flipping. The output format
// defaults to the input's.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/bytegrid/flip"
	"github.com/katalvlaran/bytegrid/grayimage"
	"github.com/katalvlaran/bytegrid/matrix"
)

var errAxis = errors.New("axis must be h or v")

type config struct {
	in, out string
	axis    string
	format  string
	verbose bool
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	grayimage.SetLogger(log)

	if err := run(cfg, log); err != nil {
		log.Error("flipimg failed", "err", err)
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config
	fs.StringVar(&cfg.in, "in", "", "input image (png, bmp or tiff)")
	fs.StringVar(&cfg.out, "out", "", "output image path")
	fs.StringVar(&cfg.axis, "axis", "h", "flip axis: h (mirror columns) or v (mirror rows)")
	fs.StringVar(&cfg.format, "format", "", "output format; defaults to the input format")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.in == "" || cfg.out == "" {
		fmt.Fprintln(fs.Output(), "flipimg: -in and -out are required")
		fs.Usage()
		return cfg, flag.ErrHelp
	}
	if _, err := kernel(cfg.axis); err != nil {
		fmt.Fprintf(fs.Output(), "flipimg: %v\n", err)
		return cfg, err
	}

	return cfg, nil
}

func kernel(axis string) (func(matrix.Matrix) (*matrix.Dense, error), error) {
	switch axis {
	case "h", "H":
		return flip.H, nil
	case "v", "V":
		return flip.V, nil
	}
	return nil, fmt.Errorf("%q: %w", axis, errAxis)
}

func run(cfg config, log *slog.Logger) error {
	f, err := os.Open(cfg.in)
	if err != nil {
		return err
	}
	defer f.Close()

	format, err := flipStream(f, cfg, log)
	if err != nil {
		return err
	}
	log.Info("wrote image", "path", cfg.out, "format", format, "axis", cfg.axis)

	return nil
}

// flipStream decodes r, flips it and writes cfg.out. It returns the output
// format used.
func flipStream(r io.Reader, cfg config, log *slog.Logger) (string, error) {
	fn, err := kernel(cfg.axis)
	if err != nil {
		return "", err
	}

	img, format, err := grayimage.Decode(r)
	if err != nil {
		return "", err
	}
	if cfg.format != "" {
		format = cfg.format
	}

	m := grayimage.FromImage(img)
	log.Debug("flipping", "rows", m.Rows(), "cols", m.Cols(), "axis", cfg.axis)
	flipped, err := fn(m)
	if err != nil {
		return "", err
	}
	g, err := grayimage.ToGray(flipped)
	if err != nil {
		return "", err
	}

	// encode fully before touching cfg.out so a failed encode leaves it intact
	var buf bytes.Buffer
	if err := grayimage.Encode(&buf, g, format); err != nil {
		return "", err
	}
	if err := os.WriteFile(cfg.out, buf.Bytes(), 0o644); err != nil {
		return "", err
	}

	return format, nil
}
