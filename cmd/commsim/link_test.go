package main

import (
	"math"
	"testing"
)

func TestRunLinkNoiseless(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"awgn_high_snr", func(c *Config) { c.Channel = ChannelAWGN; c.SNRDB = 100 }},
		{"bsc_zero", func(c *Config) { c.Channel = ChannelBSC; c.P = 0 }},
		{"bec_zero", func(c *Config) { c.Channel = ChannelBEC; c.P = 0 }},
		{"awgn_scaled", func(c *Config) { c.SNRDB = 100; c.Amplitude = 4; c.Threshold = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(cfg)

			r := runLink(cfg)
			if r.BitErrors != 0 || r.Erasures != 0 {
				t.Errorf("expected a clean link, got %d errors and %d erasures", r.BitErrors, r.Erasures)
			}
			if r.Recovered != cfg.Message {
				t.Errorf("recovered %q, expected %q", r.Recovered, cfg.Message)
			}
		})
	}
}

func TestRunLinkBSCFlipsEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Channel = ChannelBSC
	cfg.P = 1

	r := runLink(cfg)
	if r.BitErrors != len(r.Sent) {
		t.Errorf("p=1 should flip every bit, got %d/%d errors", r.BitErrors, len(r.Sent))
	}
}

func TestRunLinkBECErasesEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Channel = ChannelBEC
	cfg.P = 1

	r := runLink(cfg)
	if r.Erasures != len(r.Sent) {
		t.Errorf("p=1 should erase every bit, got %d/%d erasures", r.Erasures, len(r.Sent))
	}

	ones := 0
	for _, b := range r.Sent {
		ones += int(b)
	}
	// Erased bits decode as 0, so exactly the sent 1s are wrong
	if r.BitErrors != ones {
		t.Errorf("got %d bit errors, expected %d", r.BitErrors, ones)
	}
}

func TestRunLinkNoiseVariance(t *testing.T) {
	cfg := DefaultConfig()
	msg := make([]byte, 4096)
	for i := range msg {
		msg[i] = byte(i)
	}
	cfg.Message = string(msg)
	cfg.SNRDB = 0

	r := runLink(cfg)

	// Half the bits are 1 at amplitude 1, so the signal power is 0.5 and the
	// in-phase noise carries half of the total noise power.
	ones := 0
	for _, b := range r.Sent {
		ones += int(b)
	}
	power := float64(ones) / float64(len(r.Sent))
	expected := power / 2
	if math.Abs(r.NoiseVariance-expected)/expected > 0.05 {
		t.Errorf("measured noise variance %.4f, expected %.4f", r.NoiseVariance, expected)
	}
}

func TestRunLinkDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SNRDB = 3

	a := runLink(cfg)
	b := runLink(cfg)
	if a.BitErrors != b.BitErrors || a.Recovered != b.Recovered {
		t.Errorf("same seed produced different runs")
	}
}
