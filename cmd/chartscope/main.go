package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/chartscope/chartscope/internal/classify"
	"github.com/chartscope/chartscope/internal/features"
	"github.com/chartscope/chartscope/internal/server"
	"github.com/chartscope/chartscope/internal/source"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	args := os.Args[1:]
	cmd := "serve"
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Printf("chartscope %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "serve", "detect", "params":
			cmd = args[0]
			args = args[1:]
		}
	}

	switch cmd {
	case "serve":
		runServe(args)
	case "detect":
		runDetect(args)
	case "params":
		runParams(args)
	}
}

func printUsage() {
	fmt.Println("chartscope - chart type detection service")
	fmt.Println()
	fmt.Println("Usage: chartscope [command] [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve            Run the HTTP detection API (default)")
	fmt.Println("  detect FILE...   Classify local files, printing one path/label line each")
	fmt.Println("  params           Write the default parameter file")
	fmt.Println("  version          Print version information")
	fmt.Println()
	fmt.Println("Options (serve):")
	fmt.Println("  -addr string     Listen address (default \":8001\")")
	fmt.Println("  -params string   YAML file overriding detection parameters")
	fmt.Println("  -debug           Log the feature vector of every detection")
	fmt.Println()
	fmt.Println("Options (detect):")
	fmt.Println("  -workers int     Parallel classifications (default: CPU count)")
	fmt.Println("  -params string   YAML file overriding detection parameters")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  CHARTSCOPE_DEBUG=true    Enable debug logging")
}

// debugEnabled folds the env switch into the flag value.
func debugEnabled(flagValue bool) bool {
	return flagValue || os.Getenv("CHARTSCOPE_DEBUG") == "true"
}

// newDetector builds a detector from the default parameters, with an
// optional YAML override file.
func newDetector(paramsPath string) (*classify.Detector, error) {
	params := features.DefaultParams()
	if paramsPath != "" {
		p, err := features.LoadParams(paramsPath)
		if err != nil {
			return nil, err
		}
		params = p
	}
	return classify.NewDetector(params), nil
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8001", "listen address")
	paramsPath := fs.String("params", "", "YAML file overriding detection parameters")
	debug := fs.Bool("debug", false, "log the feature vector of every detection")
	fs.Parse(args)
	if fs.NArg() > 0 {
		log.Fatalf("serve: unexpected arguments %v (use 'chartscope detect FILE...')", fs.Args())
	}

	detector, err := newDetector(*paramsPath)
	if err != nil {
		log.Fatalf("load parameters: %v", err)
	}
	dbg := debugEnabled(*debug)
	if dbg {
		log.Printf("chartscope v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}
	if err := server.New(detector, dbg).Run(*addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runDetect(args []string) {
	fs := flag.NewFlagSet("detect", flag.ExitOnError)
	paramsPath := fs.String("params", "", "YAML file overriding detection parameters")
	workers := fs.Int("workers", runtime.NumCPU(), "parallel classifications")
	debug := fs.Bool("debug", false, "log the feature vector of every file")
	fs.Parse(args)

	files := fs.Args()
	if len(files) == 0 {
		log.Fatal("detect: no input files")
	}
	if *workers < 1 {
		*workers = 1
	}
	detector, err := newDetector(*paramsPath)
	if err != nil {
		log.Fatalf("load parameters: %v", err)
	}
	dbg := debugEnabled(*debug)

	// Labels are collected by position so output order matches input
	// order regardless of scheduling.
	labels := make([]string, len(files))
	var g errgroup.Group
	g.SetLimit(*workers)
	for i, path := range files {
		g.Go(func() error {
			labels[i] = detectFile(detector, path, dbg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("detect: %v", err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i, path := range files {
		fmt.Fprintf(w, "%s\t%s\n", path, labels[i])
	}
}

// detectFile classifies one file. Unreadable files report the fixed
// fallback label so a batch always yields one line per input.
func detectFile(detector *classify.Detector, path string, debug bool) string {
	img, err := source.Load(path)
	if err != nil {
		log.Printf("%s: %v", path, err)
		return string(classify.Scatterplot)
	}
	res := detector.Detect(img)
	if res.Err != nil {
		log.Printf("%s: %v", path, res.Err)
	}
	if debug {
		log.Printf("%s: features %+v", path, res.Vector)
	}
	return string(res.ChartType)
}

func runParams(args []string) {
	fs := flag.NewFlagSet("params", flag.ExitOnError)
	out := fs.String("out", "chartscope.yaml", "output path for the default parameter file")
	fs.Parse(args)

	if err := features.SaveParams(features.DefaultParams(), *out); err != nil {
		log.Fatalf("write parameters: %v", err)
	}
	fmt.Printf("wrote default parameters to %s\n", *out)
}
