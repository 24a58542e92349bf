package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/seakay/imgderive/internal/derive"
	"github.com/seakay/imgderive/internal/geometry"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// fileConfig is the optional TOML configuration.
type fileConfig struct {
	Prefix          string  `toml:"prefix"`
	Sharp           bool    `toml:"sharp"`
	Anchor          string  `toml:"anchor"`
	Background      string  `toml:"background"`
	RotateThreshold float64 `toml:"rotate_threshold"`
	CornerRadius    int     `toml:"corner_radius"`
	LogLevel        string  `toml:"log_level"`
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("imgderive %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		}
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "imgderive: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("imgderive - derive resized, cropped, and fitted image variants")
	fmt.Println()
	fmt.Println("Usage: imgderive <command> [options] <file>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  thumbnail   derive a letterboxed thumbnail")
	fmt.Println("  crop        derive a crop-to-fill variant")
	fmt.Println("  format      conform a file to bounds and ratio")
	fmt.Println("  view        derive a sized view")
	fmt.Println("  probe       print the natural dimensions of an image")
	fmt.Println("  send        stream the transformed image to stdout")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -config FILE   TOML configuration file")
	fmt.Println("  -width N       target width in pixels")
	fmt.Println("  -height N      target height in pixels (format/send)")
	fmt.Println("  -ratio W:H     aspect ratio constraint")
	fmt.Println("  -suffix S      view filename suffix")
	fmt.Println("  -check         validate existing artifacts before reuse")
	fmt.Println("  -keep          keep an untouched .src copy (format)")
	fmt.Println("  -in-place      rewrite the file instead of suffixing (format)")
}

func run(command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration file")
	width := fs.Int("width", 0, "target width in pixels")
	height := fs.Int("height", 0, "target height in pixels")
	ratio := fs.String("ratio", "", "aspect ratio constraint, e.g. 3:2")
	suffix := fs.String("suffix", "", "view filename suffix")
	check := fs.Bool("check", false, "validate existing artifacts before reuse")
	keep := fs.Bool("keep", false, "keep an untouched .src copy")
	inPlace := fs.Bool("in-place", false, "rewrite the file instead of suffixing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%s needs exactly one file argument", command)
	}
	file := fs.Arg(0)

	var cfg fileConfig
	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "imgderive",
		Output: os.Stderr,
		Level:  hclog.LevelFromString(defaultString(cfg.LogLevel, "info")),
	})

	dcfg := derive.Config{
		Logger:          logger,
		Sharp:           cfg.Sharp,
		RotateThreshold: cfg.RotateThreshold,
		CornerRadius:    cfg.CornerRadius,
	}
	if cfg.Anchor != "" {
		anchor, err := geometry.ParseAnchor(cfg.Anchor)
		if err != nil {
			return err
		}
		dcfg.Anchor = anchor
	}
	if cfg.Background != "" {
		bg, err := colorful.Hex(cfg.Background)
		if err != nil {
			return fmt.Errorf("invalid background color: %w", err)
		}
		dcfg.Background = bg
	}

	d := derive.New(dcfg)

	switch command {
	case "thumbnail":
		return printPath(d.Thumbnail(file, *width, cfg.Prefix, *ratio, *check))
	case "crop":
		return printPath(d.Crop(file, *width, cfg.Prefix, *ratio, *check))
	case "format":
		return printPath(d.Format(file, *width, *height, *ratio, cfg.Prefix, *keep, !*inPlace))
	case "view":
		return printPath(d.View(file, *width, cfg.Prefix, *suffix, *ratio, *check))
	case "probe":
		dims, err := d.Probe(file)
		if err != nil {
			return err
		}
		fmt.Printf("%dx%d\n", dims.Width, dims.Height)
		return nil
	case "send":
		return d.Send(file, *width, *height, *ratio, os.Stdout)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func printPath(path string, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
