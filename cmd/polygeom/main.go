// Command polygeom smooths, hit-tests, scales and renders polygons from the
// command line, or serves the same operations over HTTP.
//
// Polygons are read from stdin as newline separated "x y" points, with a blank
// line between polygons, or from an SVG file with --svg.
package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polygeom/geom"
	"github.com/osuushi/polygeom/internal/config"
	"github.com/osuushi/polygeom/internal/logger"
	"github.com/osuushi/polygeom/internal/polyio"
	"github.com/osuushi/polygeom/internal/render"
	"github.com/osuushi/polygeom/internal/server"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("polygeom", "Polygon smoothing and hit testing.")
	configPath = app.Flag("config", "YAML config file.").Short('c').Envar("POLYGEOM_CONFIG").String()
	envFiles   = app.Flag("env-file", ".env files to load before reading the environment.").Default(".env").Strings()
	svgPath    = app.Flag("svg", "Read shapes from an SVG file instead of stdin.").ExistingFile()
	curveInput = app.Flag("curve", "Treat stdin polygons as curves.").Bool()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()

	curveCmd      = app.Command("curve", "Print the spline samples for each shape.")
	curveClosed   = curveCmd.Flag("closed", "Close the curve back to the first point.").Bool()
	curveTension  = curveCmd.Flag("tension", "Spline tension (default from config).").String()
	curveSegments = curveCmd.Flag("segments", "Samples per span (default from config).").Int()

	containsCmd    = app.Command("contains", "Test points against each shape.")
	containsPoints = containsCmd.Arg("points", "Query points as x,y.").Required().Strings()
	containsLegacy = containsCmd.Flag("legacy-early-exit", "Stop scanning early like older annotation tools.").Bool()

	scaleCmd    = app.Command("scale", "Scale every shape by a factor.")
	scaleFactor = scaleCmd.Arg("factor", "Scale factor.").Required().Float64()

	renderCmd     = app.Command("render", "Draw the shapes to a PNG.")
	renderOut     = renderCmd.Flag("out", "Output file.").Short('o').Default("polygeom.png").String()
	renderScale   = renderCmd.Flag("scale", "Pixels per unit (default from config).").Float64()
	renderPreview = renderCmd.Flag("preview", "Print the image to the terminal (iTerm).").Bool()
	renderPoints  = renderCmd.Flag("point", "Query point to draw, as x,y. Repeatable.").Short('p').Strings()

	serveCmd  = app.Command("serve", "Serve the HTTP API.")
	serveAddr = serveCmd.Flag("addr", "Listen address (default from config).").String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	app.FatalIfError(loadEnvFiles(*envFiles), "env")
	cfg, err := config.Load(*configPath)
	app.FatalIfError(err, "config")

	log := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	geom.SetLogger(log)

	au := aurora.NewAurora(!*noColor)
	if err := run(command, cfg, log, au, os.Stdin, os.Stdout); err != nil {
		app.Fatalf("%v", err)
	}
}

func run(command string, cfg config.Config, log *slog.Logger, au aurora.Aurora, in io.Reader, out io.Writer) error {
	if command == serveCmd.FullCommand() {
		if *serveAddr != "" {
			cfg.Server.Addr = *serveAddr
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(cfg, log).ListenAndServe(ctx)
	}

	shapes, err := readShapes(in)
	if err != nil {
		return err
	}
	log.Debug("read shapes", "count", len(shapes))

	switch command {
	case curveCmd.FullCommand():
		tension := cfg.Curve.Tension
		if *curveTension != "" {
			parsed, err := strconv.ParseFloat(*curveTension, 64)
			if err != nil {
				return errors.Wrap(err, "--tension")
			}
			tension = parsed
		}
		segments := cfg.Curve.Segments
		if *curveSegments != 0 {
			segments = *curveSegments
		}
		return printCurves(out, shapes, tension, *curveClosed, segments)

	case containsCmd.FullCommand():
		queries, err := parsePoints(*containsPoints)
		if err != nil {
			return err
		}
		cfg.Containment.LegacyEarlyExit = cfg.Containment.LegacyEarlyExit || *containsLegacy
		printContains(out, au, shapes, queries, cfg)
		return nil

	case scaleCmd.FullCommand():
		polygons := make([]geom.Polygon, len(shapes))
		for i, shape := range shapes {
			polygons[i] = shape.Polygon.Scale(*scaleFactor)
		}
		return polyio.WritePolygons(out, polygons)

	case renderCmd.FullCommand():
		points, err := parsePoints(*renderPoints)
		if err != nil {
			return err
		}
		opts := render.DefaultOptions()
		opts.Scale = cfg.Render.Scale
		if *renderScale != 0 {
			opts.Scale = *renderScale
		}
		opts.Padding = cfg.Render.Padding
		opts.MaxSize = cfg.Render.MaxSize
		opts.Contains = cfg.ContainsOptions(geom.Straight)
		queries := make([]render.Query, len(points))
		for i, q := range points {
			queries[i] = render.Query{Point: q, Hit: hitsAny(shapes, q, opts.Contains)}
		}
		if err := render.SavePNG(*renderOut, shapes, queries, opts, *renderPreview); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", *renderOut)
		return nil
	}
	return errors.Errorf("unknown command %q", command)
}

// loadEnvFiles loads each .env file that exists. Missing files are skipped,
// malformed ones are an error.
func loadEnvFiles(files []string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Wrapf(err, "loading %s", f)
		}
	}
	return nil
}

func readShapes(in io.Reader) ([]polyio.Shape, error) {
	if *svgPath != "" {
		f, err := os.Open(*svgPath)
		if err != nil {
			return nil, errors.Wrap(err, "opening svg")
		}
		defer f.Close()
		return polyio.ReadSVG(f)
	}

	polygons, err := polyio.ReadPolygons(in)
	if err != nil {
		return nil, err
	}
	lineType := geom.Straight
	if *curveInput {
		lineType = geom.Curve
	}
	return polyio.Shapes(polygons, lineType), nil
}

func parsePoints(args []string) ([]geom.Point, error) {
	points := make([]geom.Point, len(args))
	for i, arg := range args {
		p, err := polyio.ParsePoint(arg)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

func printCurves(out io.Writer, shapes []polyio.Shape, tension float64, closed bool, segments int) error {
	polygons := make([]geom.Polygon, len(shapes))
	for i, shape := range shapes {
		samples := geom.GenerateSmoothCurve(shape.Polygon.Flatten(), tension, closed, segments)
		polygons[i] = geom.Polygon{Points: geom.Unflatten(samples)}
	}
	return polyio.WritePolygons(out, polygons)
}

func printContains(out io.Writer, au aurora.Aurora, shapes []polyio.Shape, queries []geom.Point, cfg config.Config) {
	for _, q := range queries {
		for _, shape := range shapes {
			verdict := au.Red("outside")
			if shape.Contains(q, cfg.ContainsOptions(shape.LineType)) {
				verdict = au.Green("inside")
			}
			fmt.Fprintf(out, "%s\t%s\t%s\n", q, au.Cyan(shape.Label), verdict)
		}
	}
}

func hitsAny(shapes []polyio.Shape, q geom.Point, opts geom.ContainsOptions) bool {
	for _, shape := range shapes {
		if shape.Contains(q, opts) {
			return true
		}
	}
	return false
}
