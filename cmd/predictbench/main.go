package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"strconv"

	. "github.com/evilsocket/predict/common"

	"github.com/evilsocket/predict/backend"
	"github.com/evilsocket/predict/bench"

	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/fs"
	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/islazy/str"
)

const version = "1.0.0"

var (
	configFile  = flag.String("config", "", "YAML or JSON file with the run configuration.")
	sizes       = flag.String("sizes", "", "Comma separated list of input sizes, overrides the configuration.")
	strategies  = flag.String("strategies", "", "Comma separated list of strategies (direct, vectorized, compiled, deferred[:strategy]).")
	rounds      = flag.Int("rounds", 0, "Timed evaluations per strategy and size.")
	overlay     = flag.Bool("overlay", false, "Scale the results by 1.5.")
	seed        = flag.Int64("seed", 0, "Seed of the random inputs.")
	chunks      = flag.Int("chunks", 0, "Number of row partitions of the deferred strategies.")
	workers     = flag.Int("workers", 0, "Partitions evaluated in parallel by the deferred strategies.")
	metricsAddr = flag.String("metrics-addr", "", "If filled, expose Prometheus metrics on this address.")
	logFile     = flag.String("log-file", "", "If filled, predictbench will log to this file.")
	logDebug    = flag.Bool("debug", false, "Enable debug logs.")

	// stats

	cpuProfile = flag.String("cpu-profile", "", "Write CPU profile to this file.")
	memProfile = flag.String("mem-profile", "", "Write memory profile to this file.")
)

// apply the flags that have been explicitly set on top of the configuration.
func applyFlags(cfg *bench.Config) error {
	var err error

	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "sizes":
			cfg.Sizes = cfg.Sizes[:0]
			for _, s := range str.Comma(*sizes) {
				var size int
				if size, err = strconv.Atoi(s); err != nil {
					return
				}
				cfg.Sizes = append(cfg.Sizes, size)
			}
		case "strategies":
			cfg.Strategies = str.Comma(*strategies)
		case "rounds":
			cfg.Rounds = *rounds
		case "overlay":
			cfg.Overlay = *overlay
		case "seed":
			cfg.Seed = *seed
		case "chunks":
			cfg.Chunks = *chunks
		case "workers":
			cfg.Workers = *workers
		}
	})
	if err != nil {
		return err
	}

	return cfg.Validate()
}

func main() {
	flag.Parse()

	StartProfiling(cpuProfile)

	SetupSignals(func(_ os.Signal) { DoCleanup(cpuProfile, memProfile) })

	SetupLogging(logFile, logDebug)
	defer TeardownLogging()

	log.Info("predictbench v%s (%s backend, %s available) is starting ...",
		version,
		backend.Name(),
		humanize.Bytes(backend.Space()))

	if *configFile != "" && !fs.Exists(*configFile) {
		log.Fatal("configuration file %s does not exist", *configFile)
	}

	cfg, err := bench.LoadConfig(*configFile)
	if err != nil {
		log.Fatal("%v", err)
	} else if err = applyFlags(cfg); err != nil {
		log.Fatal("%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var metrics *bench.Metrics
	if *metricsAddr != "" {
		metrics = bench.NewMetrics()
		go func() {
			log.Info("exposing metrics on %s/metrics ...", *metricsAddr)
			if err := metrics.Serve(ctx, *metricsAddr); err != nil {
				log.Error("metrics server: %v", err)
			}
		}()
	}

	runner, err := bench.NewRunner(cfg, metrics)
	if err != nil {
		log.Fatal("%v", err)
	}

	log.Info("comparing %d strategies on %d sizes (%d rounds each) ...", len(cfg.Strategies), len(cfg.Sizes), cfg.Rounds)

	results, err := runner.Run(ctx)
	if err != nil {
		log.Fatal("%v", err)
	}

	bench.Report(os.Stdout, results)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Info("done, mem:%s numgc:%d", humanize.Bytes(m.Sys), m.NumGC)

	DoCleanup(cpuProfile, memProfile)
}
