// Command rockfall reports tower heights for a wind pattern and drop counts.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/lixenwraith/rockfall/logging"
	"github.com/lixenwraith/rockfall/parameter"
	"github.com/lixenwraith/rockfall/render"
	"github.com/lixenwraith/rockfall/status"
	"github.com/lixenwraith/rockfall/tower"
	"github.com/lixenwraith/rockfall/wind"
)

// options holds the parsed command line
type options struct {
	input string
	drops []int64
	cfg   tower.Config
	stats bool
	group bool
	debug bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command and returns its exit status.
// Deferred cleanup runs before main exits.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	if logFile := logging.Setup(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts, stdin, stdout); err != nil {
		log.Printf("rockfall: %v", err)
		fmt.Fprintf(stderr, "rockfall: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags reads args on top of the environment configuration
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{cfg: tower.LoadConfig()}

	fs := flag.NewFlagSet("rockfall", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var drops string
	var literal bool
	fs.StringVar(&opts.input, "input", "input.txt", "Wind pattern file, '-' for stdin")
	fs.StringVar(&drops, "drops", "2022,1000000000000", "Comma-separated drop counts")
	fs.IntVar(&opts.cfg.SkylineDepth, "depth", opts.cfg.SkylineDepth, "Rows of reachable surface in the cycle fingerprint")
	fs.BoolVar(&literal, "literal", false, "Simulate every drop, no cycle detection")
	fs.BoolVar(&opts.stats, "stats", false, "Print simulation metrics after each run")
	fs.BoolVar(&opts.group, "group", false, "Group digits in the output")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to "+parameter.LogDir+"/"+parameter.LogFileName)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if literal {
		opts.cfg.DetectCycles = false
	}

	counts, err := parseDrops(drops)
	if err != nil {
		fmt.Fprintf(stderr, "rockfall: %v\n", err)
		return nil, err
	}
	opts.drops = counts
	return opts, nil
}

// parseDrops splits a comma-separated list of non-negative counts
func parseDrops(s string) ([]int64, error) {
	var counts []int64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid drop count %q: %w", field, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid drop count %q: %w", field, tower.ErrNegativeDrops)
		}
		counts = append(counts, n)
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no drop counts in %q", s)
	}
	return counts, nil
}

// readPattern loads the first line of path (or stdin) as a wind pattern
func readPattern(path string, stdin io.Reader) (wind.Pattern, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	sc := bufio.NewScanner(r)
	// Real inputs are a single line of ~10k pulses
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := ""
	if sc.Scan() {
		line = sc.Text()
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}

	pattern, err := wind.Parse(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("input %s: %w", path, err)
	}
	return pattern, nil
}

func run(opts *options, stdin io.Reader, stdout io.Writer) error {
	pattern, err := readPattern(opts.input, stdin)
	if err != nil {
		return err
	}
	log.Printf("loaded %d pulses from %s, config %+v", len(pattern), opts.input, opts.cfg)

	printf := func(format string, a ...any) { fmt.Fprintf(stdout, format, a...) }
	if opts.group {
		printer := message.NewPrinter(message.MatchLanguage("en"))
		printf = func(format string, a ...any) { printer.Fprintf(stdout, format, a...) }
	}

	for _, target := range opts.drops {
		sim, err := tower.NewSimulator(pattern, opts.cfg)
		if err != nil {
			return err
		}

		var reg *status.Registry
		if opts.stats {
			reg = status.NewRegistry()
			sim.Attach(reg)
		}

		height, err := sim.Run(target)
		if err != nil {
			return err
		}
		log.Printf("drops=%d height=%d literal=%d", target, height, sim.LiteralDrops())

		printf("drops=%d height=%d\n", target, height)
		if reg != nil {
			for _, line := range render.StatusLines(reg) {
				fmt.Fprintf(stdout, "  %s\n", line)
			}
		}
	}
	return nil
}
