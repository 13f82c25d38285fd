// Command pointrace-probe runs the FindToChallenge decision against a saved
// screenshot with local Tesseract OCR, for calibrating ROIs.
//
//	pointrace-probe -image shot.png [-config calib.yaml] [-lang chi_sim]
//
// Exit code 0 means an opponent was selected, 2 means none, 1 a setup error.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/webp"

	"github.com/MaaXYZ/MaaPointRace/agent/go-service/logging"
	"github.com/MaaXYZ/MaaPointRace/agent/go-service/offline"
	"github.com/MaaXYZ/MaaPointRace/agent/go-service/pointrace"
	"github.com/MaaXYZ/MaaPointRace/agent/go-service/tessocr"
)

const (
	exitSelected = 0
	exitSetup    = 1
	exitNone     = 2
)

type options struct {
	imagePath  string
	configPath string
	lang       string
	logLevel   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	opts, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitSetup
	}

	cfg := logging.DefaultConfig()
	cfg.FileName = "pointrace-probe.log"
	// stdout carries the selection JSON
	cfg.Console = os.Stderr
	if opts.logLevel != "" {
		level, err := zerolog.ParseLevel(opts.logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", opts.logLevel, err)
			return exitSetup
		}
		cfg.ConsoleLevel = level
	}
	cleanup, err := logging.Init(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitSetup
	}
	defer cleanup()

	params, err := loadParams(opts.configPath)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load calibration")
		return exitSetup
	}
	if len(params.ButtonROIs) < len(params.EnemyROIs) {
		log.Warn().
			Int("buttons", len(params.ButtonROIs)).
			Int("enemies", len(params.EnemyROIs)).
			Msg("Fewer button_rois than enemy_rois, later rows cannot be located")
	}

	img, err := loadImage(opts.imagePath)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load screenshot")
		return exitSetup
	}

	engine, err := tessocr.NewEngine(opts.lang)
	if err != nil {
		log.Error().Err(err).Msg("Failed to start Tesseract")
		return exitSetup
	}
	defer engine.Close()

	eval := pointrace.NewEvaluator(offline.NewRecognizer(engine, params), params)
	sel := eval.Select(img, params.Reference(), params.Candidates())
	if err := printSelection(stdout, sel); err != nil {
		log.Error().Err(err).Msg("Failed to print selection")
		return exitSetup
	}
	if !sel.OK {
		return exitNone
	}
	return exitSelected
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pointrace-probe", flag.ContinueOnError)
	fs.StringVar(&opts.imagePath, "image", "", "screenshot to evaluate (png, jpeg or webp)")
	fs.StringVar(&opts.configPath, "config", "", "YAML calibration file, defaults when empty")
	fs.StringVar(&opts.lang, "lang", "chi_sim", "Tesseract language")
	fs.StringVar(&opts.logLevel, "log-level", "", "console log level")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.imagePath == "" {
		return options{}, fmt.Errorf("-image is required")
	}
	return opts, nil
}

func loadParams(path string) (pointrace.Params, error) {
	if path == "" {
		return pointrace.DefaultParams(), nil
	}
	return pointrace.LoadCalibration(path)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	log.Debug().Str("format", format).Str("bounds", img.Bounds().String()).Msg("Screenshot loaded")
	return img, nil
}

type selectionOutput struct {
	Selected bool  `json:"selected"`
	Index    int   `json:"index"`
	Box      []int `json:"box,omitempty"`
}

func printSelection(w io.Writer, sel pointrace.Selection) error {
	out := selectionOutput{Selected: sel.OK}
	if sel.OK {
		out.Index = sel.Index
		out.Box = []int{sel.Box.X(), sel.Box.Y(), sel.Box.Width(), sel.Box.Height()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
