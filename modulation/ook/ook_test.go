package ook

import (
	"slices"
	"testing"
)

func TestModulate(t *testing.T) {
	tests := []struct {
		name     string
		data     []int
		opts     []Option
		expected []complex128
	}{
		{"default_amplitude", []int{0, 1, 1, 0}, nil, []complex128{0, 1, 1, 0}},
		{"amplitude_3", []int{1, 0, 1}, []Option{WithAmplitude(3)}, []complex128{3, 0, 3}},
		{"negative_amplitude", []int{1}, []Option{WithAmplitude(-0.5)}, []complex128{-0.5}},
		{"empty", []int{}, nil, []complex128{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := Modulate(tt.data, tt.opts...)
			if !slices.Equal(signal, tt.expected) {
				t.Errorf("Modulate(%v) = %v, expected %v", tt.data, signal, tt.expected)
			}
		})
	}
}

func TestModulateNumericTypes(t *testing.T) {
	if s := Modulate([]uint8{1, 0}); !slices.Equal(s, []complex128{1, 0}) {
		t.Errorf("Modulate on uint8 = %v", s)
	}
	if s := Modulate([]float32{1, 0}, WithAmplitude(2)); !slices.Equal(s, []complex128{2, 0}) {
		t.Errorf("Modulate on float32 = %v", s)
	}
}

func TestDemodulate(t *testing.T) {
	tests := []struct {
		name     string
		signal   []float64
		opts     []Option
		expected []complex128
	}{
		{"default_threshold", []float64{0.9, 0.2, 0.6}, nil, []complex128{1, 0, 1}},
		{"at_threshold", []float64{0.5, 0.4999}, nil, []complex128{1, 0}},
		{"custom_threshold", []float64{1.4, 1.6, -2}, []Option{WithThreshold(1.5)}, []complex128{0, 1, 0}},
		{"negative_threshold", []float64{-0.5, -1.5}, []Option{WithThreshold(-1)}, []complex128{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			symbols := Demodulate(tt.signal, tt.opts...)
			if !slices.Equal(symbols, tt.expected) {
				t.Errorf("Demodulate(%v) = %v, expected %v", tt.signal, symbols, tt.expected)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	data := []int{1, 0, 1, 1, 0, 0, 1, 0}
	signal := Modulate(data, WithAmplitude(2))
	symbols := Demodulate(RealPart(signal), WithThreshold(1))

	bits := Bits(symbols)
	for i := range data {
		if int(bits[i]) != data[i] {
			t.Errorf("bit %d: got %d, expected %d", i, bits[i], data[i])
		}
	}
}

func TestRealPart(t *testing.T) {
	r := RealPart([]complex128{1 + 2i, -3 - 4i, 0})
	if !slices.Equal(r, []float64{1, -3, 0}) {
		t.Errorf("RealPart = %v", r)
	}
}
