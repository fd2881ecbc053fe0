package main

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"

	"github.com/ppopth/commkit/bits"
	"github.com/ppopth/commkit/channel"
	"github.com/ppopth/commkit/modulation/ook"
)

// Report summarizes one pass of a message over the link
type Report struct {
	Sent      []uint8
	Received  []uint8
	BitErrors int
	// Erasures counts symbols the bec channel erased; they decode as 0
	Erasures int
	// NoiseVariance is the measured in-phase noise variance (awgn only)
	NoiseVariance float64
	Recovered     string
}

// runLink sends cfg.Message as OOK symbols over the configured channel.
// The awgn channel corrupts the complex waveform; bsc and bec corrupt the
// hard decisions taken from the clean waveform.
func runLink(cfg *Config) *Report {
	src := rand.NewPCG(cfg.Seed, cfg.Seed)
	sent := bits.FromBytes([]byte(cfg.Message))
	signal := ook.Modulate(sent, ook.WithAmplitude(cfg.Amplitude))
	threshold := ook.WithThreshold(cfg.Threshold)

	r := &Report{Sent: sent}
	switch cfg.Channel {
	case ChannelAWGN:
		rx := ook.RealPart(channel.AWGNComplex(signal, cfg.SNRDB, channel.WithSource(src)))

		noise := make([]float64, len(rx))
		for i := range rx {
			noise[i] = rx[i] - real(signal[i])
		}
		r.NoiseVariance = stat.Variance(noise, nil)
		r.Received = ook.Bits(ook.Demodulate(rx, threshold))

	case ChannelBSC:
		hard := ook.Bits(ook.Demodulate(ook.RealPart(signal), threshold))
		r.Received = channel.BSC(hard, cfg.P, channel.WithSource(src))

	case ChannelBEC:
		hard := ook.Bits(ook.Demodulate(ook.RealPart(signal), threshold))
		soft := channel.BEC(hard, cfg.P, channel.WithSource(src))

		r.Received = make([]uint8, len(soft))
		for i, v := range soft {
			if v == channel.DefaultErasureValue {
				r.Erasures++
				continue
			}
			r.Received[i] = uint8(v)
		}
	}

	r.BitErrors = bits.CountErrors(r.Sent, r.Received)
	r.Recovered = string(bits.ToBytes(r.Received))
	return r
}
