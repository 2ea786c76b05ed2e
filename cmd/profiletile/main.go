// seehuhn.de/go/tile - render Bézier profiles into image pyramid tiles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command profiletile renders one tile of an image pyramid from a stream
// of Bézier profiles.
//
// Usage:
//
//	profiletile [flags] column row level
//
// The profiles are read from the file given by -in, or from standard
// input.  The tile is written as a PNG image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/term"

	"seehuhn.de/go/tile"
	"seehuhn.de/go/tile/pdfcanvas"
	"seehuhn.de/go/tile/profile"
)

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// options holds the command line flags.
type options struct {
	source      string
	destination string
	width       int
	height      int
	pdfOut      string
	antialias   bool
	verbose     bool
}

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stderr))
}

// run executes the command and returns the exit status: 0 on success, 2
// for invalid arguments and 1 for all other errors.  No output file is
// written unless the tile was rendered successfully.
func run(args []string, stdin *os.File, stderr io.Writer) int {
	errLog := log.New(stderr, "profiletile: ", 0)

	var opt options
	fs := flag.NewFlagSet("profiletile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.source, "in", pipeName, "profile stream")
	fs.StringVar(&opt.destination, "out", "tile.png", "output PNG file or directory")
	fs.IntVar(&opt.width, "width", tile.DefaultWidth, "tile width in pixels")
	fs.IntVar(&opt.height, "height", tile.DefaultHeight, "tile height in pixels")
	fs.StringVar(&opt.pdfOut, "pdf", "", "also write the tile as a PDF file")
	fs.BoolVar(&opt.antialias, "aa", true, "anti-alias shape outlines")
	fs.BoolVar(&opt.verbose, "v", false, "write debug messages to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: profiletile [flags] column row level\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	column, row, level, err := parseArgs(fs.Args())
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return 2
	}
	if opt.width <= 0 || opt.height <= 0 {
		fmt.Fprintf(stderr, "invalid tile size %dx%d\n", opt.width, opt.height)
		fs.Usage()
		return 2
	}

	if opt.verbose {
		tile.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer tile.SetLogger(nil)
	}

	shapes, err := readProfiles(opt.source, stdin)
	if err != nil {
		errLog.Print(err)
		return 1
	}

	r := tile.NewRenderer()
	r.Width = opt.width
	r.Height = opt.height
	r.Antialias = opt.antialias
	img, err := r.Render(shapes, column, row, level)
	if err != nil {
		errLog.Print(err)
		return 1
	}

	outName, err := outputName(opt.destination, column, row, level)
	if err != nil {
		errLog.Print(err)
		return 1
	}
	if err := writePNG(outName, img); err != nil {
		errLog.Print(err)
		return 1
	}

	if opt.pdfOut != "" {
		err := writePDF(opt.pdfOut, shapes, tile.NewFrame(column, row, level, opt.width, opt.height))
		if err != nil {
			errLog.Print(err)
			return 1
		}
	}
	return 0
}

// parseArgs reads the tile address from the positional arguments.
func parseArgs(args []string) (column, row, level int, err error) {
	if len(args) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}
	var vals [3]int
	for i, name := range []string{"column", "row", "level"} {
		vals[i], err = strconv.Atoi(args[i])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid %s %q", name, args[i])
		}
	}
	return vals[0], vals[1], vals[2], nil
}

func readProfiles(name string, stdin *os.File) ([]*tile.Shape, error) {
	var in io.Reader
	if name == pipeName {
		if term.IsTerminal(int(stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		in = stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	shapes, err := profile.NewReader(in).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return shapes, nil
}

// outputName returns the PNG file name.  If dest is an existing directory,
// the tile is stored there under its pyramid file name.
func outputName(dest string, column, row, level int) (string, error) {
	fi, err := os.Stat(dest)
	if err == nil && fi.IsDir() {
		return filepath.Join(dest, tile.FileName(column, row, level, "png")), nil
	} else if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	return dest, nil
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
	}
	return err
}

func writePDF(name string, shapes []*tile.Shape, f tile.Frame) error {
	c, err := pdfcanvas.Create(name, f.Width, f.Height)
	if err != nil {
		return err
	}
	err = tile.Draw(c, shapes, f)
	if cerr := c.Close(); err == nil {
		err = cerr
	}
	return err
}
