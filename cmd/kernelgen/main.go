// Command kernelgen generates 2D resampling filter kernels and writes them
// as single-band floating-point TIFF rasters.
//
// Usage:
//
//	kernelgen [flags] <family> <width> <samples-per-unit> [param]
//
// Families:
//
//	sinc               cardinal sine
//	lanczos [a]        windowed sinc, integer half-width (default 2)
//	bicubic [a]        Keys cubic, free parameter (default -0.5)
//	cubicbspline       cubic B-spline
//	gaussian [sigma]   isotropic Gaussian (default sigma 1)
//
// Examples:
//
//	kernelgen sinc 4 2
//	kernelgen -normalize lanczos 4 2 3
//	kernelgen -o gauss.tif -render gauss.png gaussian 6 4 1.5
//	kernelgen -info -v off bicubic 4 4
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-kernel2d/kernel"
	"github.com/cwbudde/algo-kernel2d/raster"
	"github.com/cwbudde/algo-kernel2d/render"
)

type familyEntry struct {
	name      string
	typ       kernel.Type
	hasParam  bool
	defParam  float64
	paramName string
}

var registry = []familyEntry{
	{"sinc", kernel.TypeSinc, false, 0, ""},
	{"lanczos", kernel.TypeLanczos, true, 2, "a"},
	{"bicubic", kernel.TypeBicubic, true, -0.5, "a"},
	{"cubicbspline", kernel.TypeCubicBSpline, false, 0, ""},
	{"gaussian", kernel.TypeGaussian, true, 1, "sigma"},
}

type request struct {
	entry          familyEntry
	width          int
	spu            int
	param          float64
	normalize      bool
	standardSpline bool
}

func main() {
	output := flag.String("o", "", "output TIFF path (default <family>-<width>-<spu>.tif)")
	normalize := flag.Bool("normalize", false, "normalize each polyphase phase to unit DC gain")
	renderPath := flag.String("render", "", "also write a PNG inspection panel to this path")
	info := flag.Bool("info", false, "print a kernel analysis table")
	standardBSpline := flag.Bool("standard-bspline", false, "use the textbook cubic B-spline far branch")
	verbosity := flag.String("v", "info", "log level: debug, info, warn, error, off")
	flag.Usage = usage
	flag.Parse()

	logger := newLogger(*verbosity)

	req, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}
	req.normalize = *normalize
	req.standardSpline = *standardBSpline

	if err := run(req, *output, *renderPath, *info, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: kernelgen [flags] <family> <width> <samples-per-unit> [param]\n\n")
	fmt.Fprintf(os.Stderr, "Generates a 2D resampling filter kernel and writes it as a\n")
	fmt.Fprintf(os.Stderr, "single-band floating-point TIFF raster.\n\n")
	fmt.Fprintf(os.Stderr, "Families:\n")
	for _, e := range registry {
		if e.hasParam {
			fmt.Fprintf(os.Stderr, "  %s [%s] (default %g)\n", e.name, e.paramName, e.defParam)
			continue
		}
		fmt.Fprintf(os.Stderr, "  %s\n", e.name)
	}
	fmt.Fprintf(os.Stderr, "\nFlags:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  kernelgen sinc 4 2\n")
	fmt.Fprintf(os.Stderr, "  kernelgen -normalize lanczos 4 2 3\n")
	fmt.Fprintf(os.Stderr, "  kernelgen -o gauss.tif -render gauss.png gaussian 6 4 1.5\n")
}

func newLogger(level string) *slog.Logger {
	var lv slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lv = slog.LevelDebug
	case "info":
		lv = slog.LevelInfo
	case "warn", "warning":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	case "off":
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	default:
		lv = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
}

func parseArgs(args []string) (request, error) {
	if len(args) < 3 {
		return request{}, fmt.Errorf("need <family> <width> <samples-per-unit>")
	}

	name := strings.ToLower(strings.TrimSpace(args[0]))
	var entry familyEntry
	found := false
	for _, e := range registry {
		if e.name == name {
			entry = e
			found = true
			break
		}
	}
	if !found {
		return request{}, fmt.Errorf("unsupported family %q", name)
	}

	width, err := strconv.Atoi(args[1])
	if err != nil {
		return request{}, fmt.Errorf("width %q is not an integer", args[1])
	}

	spu, err := strconv.Atoi(args[2])
	if err != nil {
		return request{}, fmt.Errorf("samples-per-unit %q is not an integer", args[2])
	}

	param := entry.defParam
	if len(args) > 3 {
		if !entry.hasParam {
			return request{}, fmt.Errorf("family %s takes no parameter", entry.name)
		}
		param, err = strconv.ParseFloat(args[3], 64)
		if err != nil {
			return request{}, fmt.Errorf("%s %q is not a number", entry.paramName, args[3])
		}
	}

	if len(args) > 4 {
		return request{}, fmt.Errorf("unexpected arguments: %v", args[4:])
	}

	return request{entry: entry, width: width, spu: spu, param: param}, nil
}

func (r request) kernelOptions() []kernel.Option {
	var opts []kernel.Option
	if r.entry.hasParam {
		switch r.entry.typ {
		case kernel.TypeGaussian:
			opts = append(opts, kernel.WithSigma(r.param))
		default:
			opts = append(opts, kernel.WithA(r.param))
		}
	}
	if r.normalize {
		opts = append(opts, kernel.WithNormalize())
	}
	if r.standardSpline {
		opts = append(opts, kernel.WithStandardBSpline())
	}
	return opts
}

func run(req request, output, renderPath string, info bool, logger *slog.Logger) error {
	opts := req.kernelOptions()
	label := kernel.Describe(req.entry.typ, req.width, req.spu, opts...)
	logger.Info("generating kernel", "kernel", label, "normalize", req.normalize)

	m, err := kernel.Generate(req.entry.typ, req.width, req.spu, opts...)
	if err != nil {
		return err
	}

	if output == "" {
		output = fmt.Sprintf("%s-%d-%d.tif", req.entry.name, req.width, req.spu)
	}

	logger.Info("writing raster", "path", output, "size", m.N())
	if err := raster.WriteFile(output, m); err != nil {
		return err
	}

	if renderPath != "" {
		logger.Info("rendering panel", "path", renderPath)
		img, err := render.Panel(m, label)
		if err != nil {
			return err
		}
		if err := render.WritePNG(renderPath, img); err != nil {
			return err
		}
	}

	if info {
		printAnalysis(m, req.spu, label)
	}

	return nil
}

func printAnalysis(m kernel.Matrix, phases int, label string) {
	a := kernel.Analyze(m, phases)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tN\tSum\tCenter\tMin\tMax\n")
	fmt.Fprintf(tw, "------\t-\t---\t------\t---\t---\n")
	fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\t%.6f\t%.6f\n", label, a.N, a.Sum, a.Center, a.Min, a.Max)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Phase\tSum\n")
	for p, s := range a.PhaseSums {
		fmt.Fprintf(tw, "%d\t%.6f\n", p, s)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
