// Command commsim walks through a prime field and sends one message over an
// OOK link through a BSC, BEC or AWGN channel.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/ppopth/commkit/field"
)

var log = logging.Logger("commsim")

func main() {
	os.Exit(exitCode(run(os.Args[1:])))
}

// exitCode maps the result of run to a process status. Asking for help is
// not a failure.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	log.Error(err)
	return 1
}

func run(args []string) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	// Set log level for all subsystems
	level, err := logging.LevelFromString(cfg.LogLevel)
	if err != nil {
		log.Warnf("Invalid log level %q, using info", cfg.LogLevel)
		level = logging.LevelInfo
	}
	logging.SetAllLoggers(level)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	f, err := field.NewPrimeField(int64(cfg.Prime))
	if err != nil {
		return err
	}
	log.Infof("Field %s elements: %v", f, f.Elements())
	log.Infof("Addition (3 + 5): %d", f.Add(3, 5))
	log.Infof("Addition ([3 3] + [5 5]): %v", f.AddVec([]int64{3, 3}, []int64{5, 5}))
	log.Infof("Subtraction (5 - 3): %d", f.Sub(5, 3))
	log.Infof("All primitive roots: %v", f.PrimitiveRoots())

	report := runLink(cfg)
	log.Infof("Sent %d bits over %s channel", len(report.Sent), cfg.Channel)
	switch cfg.Channel {
	case ChannelAWGN:
		log.Infof("SNR %.1f dB, measured noise variance %.4f", cfg.SNRDB, report.NoiseVariance)
	case ChannelBEC:
		log.Infof("Erasures: %d", report.Erasures)
	}
	log.Infof("Bit errors: %d/%d", report.BitErrors, len(report.Sent))
	log.Infof("Recovered message: %q", report.Recovered)

	return nil
}

// parseConfig builds the run configuration: defaults, then the optional
// YAML file, then any flags given explicitly on the command line.
func parseConfig(args []string) (*Config, error) {
	def := DefaultConfig()
	fs := flag.NewFlagSet("commsim", flag.ContinueOnError)
	var (
		configFile = fs.String("config", "", "Path to YAML config file")
		prime      = fs.Int64("prime", int64(def.Prime), "Prime modulus of the demonstrated field")
		message    = fs.String("message", def.Message, "Message sent over the link")
		channel    = fs.String("channel", def.Channel, "Channel model (awgn, bsc, bec)")
		snrDB      = fs.Float64("snr-db", def.SNRDB, "SNR in dB for the awgn channel")
		p          = fs.Float64("p", def.P, "Flip or erasure probability for bsc and bec")
		amplitude  = fs.Float64("amplitude", def.Amplitude, "OOK carrier amplitude")
		threshold  = fs.Float64("threshold", def.Threshold, "OOK decision threshold")
		seed       = fs.Uint64("seed", def.Seed, "Seed for the channel random source")
		logLevel   = fs.String("log-level", def.LogLevel, "Log level (debug, info, warn, error)")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := def
	if *configFile != "" {
		var err error
		if cfg, err = LoadConfig(*configFile); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "prime":
			cfg.Prime = Modulus(*prime)
		case "message":
			cfg.Message = *message
		case "channel":
			cfg.Channel = *channel
		case "snr-db":
			cfg.SNRDB = *snrDB
		case "p":
			cfg.P = *p
		case "amplitude":
			cfg.Amplitude = *amplitude
		case "threshold":
			cfg.Threshold = *threshold
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	return cfg, nil
}
