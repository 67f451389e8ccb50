package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/studworks/brixel/internal/chroma"
	"github.com/studworks/brixel/internal/mosaic"
	"github.com/studworks/brixel/internal/palette"
	"github.com/studworks/brixel/internal/report"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags before flag parsing
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("brixel %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	// Errors bypass the logger so -quiet cannot swallow them.
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("brixel", flag.ExitOnError)

	var (
		inPath      = fs.String("in", "", "source image path (required)")
		outPath     = fs.String("out", "", "output PNG path (default <in>-mosaic.png)")
		width       = fs.Int("width", 0, "target width in studs, 0 keeps the source width")
		radius      = fs.Int("radius", 96, "stud radius in pixels")
		usePalette  = fs.Bool("palette", false, "quantize every stud to the classic brick palette")
		grayscale   = fs.Bool("grayscale", false, "convert to grayscale before building the mosaic")
		reduce      = fs.Int("reduce", 0, "reduce to at most N distinct colors before the grid")
		margin      = fs.Float64("margin", 0.5, "alpha threshold below which a pixel is treated as transparent")
		keepTransp  = fs.Bool("keep-transparent", false, "draw placeholder studs for transparent cells")
		placeholder = fs.String("placeholder", "", "placeholder color as hex, default fully transparent")
		background  = fs.String("background", "", "canvas background color as hex, default fully transparent")
		replace     = fs.String("replace", "", "comma-separated FROM=TO hex pairs, ignored with -palette")
		mark        = fs.String("mark", "brixel", "text stamped on every stud cap, empty disables")
		guide       = fs.Int("guide", 0, "draw assembly guide lines every N studs")
		reportPath  = fs.String("report", "", "write the text usage report to this file")
		jsonOut     = fs.Bool("json", false, "print the usage report as JSON instead of a table")
		dumpColors  = fs.String("dump-colors", "", "write the distinct source colors to this file")
		quiet       = fs.Bool("quiet", false, "suppress progress logging")
		verbose     = fs.Bool("verbose", false, "log per-stage detail")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Diagnostics go to stderr so stdout stays clean for reports.
	log.SetPrefix("[brixel] ")
	log.SetFlags(log.LstdFlags)
	log.SetOutput(os.Stderr)
	if *quiet {
		log.SetOutput(io.Discard)
	}

	if *inPath == "" {
		fs.Usage()
		return fmt.Errorf("missing required -in flag")
	}
	if *outPath == "" {
		ext := filepath.Ext(*inPath)
		*outPath = strings.TrimSuffix(*inPath, ext) + "-mosaic.png"
	}
	if *margin < 0 || *margin > 1 {
		return fmt.Errorf("margin %v outside [0,1]", *margin)
	}

	opts := mosaic.DefaultOptions()
	opts.WidthStuds = *width
	opts.StudRadius = *radius
	opts.PaletteOnly = *usePalette
	opts.Grayscale = *grayscale
	opts.ReduceColors = *reduce
	opts.TransparencyMargin = *margin
	opts.KeepTransparentStuds = *keepTransp
	opts.MarkText = *mark
	opts.GuideEvery = *guide

	if *placeholder != "" {
		c, err := chroma.FromHex(*placeholder)
		if err != nil {
			return fmt.Errorf("invalid -placeholder: %w", err)
		}
		opts.PlaceholderColor = c
	}
	if *background != "" {
		c, err := chroma.FromHex(*background)
		if err != nil {
			return fmt.Errorf("invalid -background: %w", err)
		}
		opts.Background = c
	}
	if *replace != "" && !*usePalette {
		m, err := parseReplace(*replace)
		if err != nil {
			return err
		}
		opts.Replace = m
	}

	start := time.Now()

	img, info, err := mosaic.Load(*inPath)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Loaded %s: %dx%d %s, alpha=%v", *inPath, info.Width, info.Height, info.Format, info.HasAlpha)
	}

	var pal *palette.Palette
	if *usePalette {
		pal = palette.Classic()
	}

	result, err := mosaic.Generate(img, pal, opts)
	if err != nil {
		return err
	}
	log.Printf("Mosaic generated: %dx%d studs, %d distinct colors", result.GridW, result.GridH, result.Distinct)

	if err := mosaic.Save(result.Image, *outPath); err != nil {
		return err
	}
	log.Printf("Saved %s", *outPath)

	if *dumpColors != "" {
		if err := writeFile(*dumpColors, func(f *os.File) error {
			return report.WriteColorList(f, result.DistinctColors)
		}); err != nil {
			return err
		}
		log.Printf("Wrote color dump %s", *dumpColors)
	}

	if result.Usage != nil {
		rows := report.Rows(result.Usage)

		if *reportPath != "" {
			if err := writeFile(*reportPath, func(f *os.File) error {
				return report.WriteText(f, rows)
			}); err != nil {
				return err
			}
			log.Printf("Wrote usage report %s", *reportPath)
		}

		if *jsonOut {
			err = report.WriteJSON(os.Stdout, rows)
		} else {
			err = report.WriteTerminal(os.Stdout, rows)
		}
		if err != nil {
			return err
		}

		if *verbose {
			log.Printf("Quantization: %d distinct -> %d palette colors, mean distance %.2f, max %.2f",
				result.Stats.Distinct, result.Stats.Mapped, result.Stats.MeanDistance, result.Stats.MaxDistance)
		}
	}

	if *verbose {
		log.Printf("Done in %s", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// parseReplace parses "FROM=TO,FROM=TO" hex pairs into a replacement map.
func parseReplace(arg string) (map[chroma.Color]chroma.Color, error) {
	out := make(map[chroma.Color]chroma.Color)
	for _, pair := range strings.Split(arg, ",") {
		from, to, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("invalid -replace pair %q, want FROM=TO", pair)
		}
		fc, err := chroma.FromHex(from)
		if err != nil {
			return nil, fmt.Errorf("invalid -replace source %q: %w", from, err)
		}
		tc, err := chroma.FromHex(to)
		if err != nil {
			return nil, fmt.Errorf("invalid -replace target %q: %w", to, err)
		}
		out[fc] = tc
	}
	return out, nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
