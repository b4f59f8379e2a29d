package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns every left-channel sample
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			out = append(out, sample[0])
		}
		if !ok || n == 0 {
			return out
		}
	}
	t.Fatal("Streamer never finished")
	return nil
}

func risingCrossings(samples []float64) int {
	count := 0
	for i := 1; i < len(samples); i++ {
		if samples[i-1] < 0 && samples[i] >= 0 {
			count++
		}
	}
	return count
}

func TestScoreToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	samples := drain(t, ScoreTone(rate, 5, 1))

	if len(samples) != rate.N(hitDuration) {
		t.Errorf("Expected %d samples, got %d", rate.N(hitDuration), len(samples))
	}
	for i, v := range samples {
		if v < -1 || v > 1 {
			t.Fatalf("Sample %d out of range: %f", i, v)
		}
	}
}

func TestScoreToneFadesOut(t *testing.T) {
	rate := beep.SampleRate(44100)

	samples := drain(t, ScoreTone(rate, 10, 1))

	if math.Abs(samples[0]) > 1e-9 {
		t.Errorf("Expected silent first sample, got %f", samples[0])
	}
	if last := samples[len(samples)-1]; math.Abs(last) > 0.01 {
		t.Errorf("Expected near-silent last sample, got %f", last)
	}
}

func TestScoreTonePitchRisesWithScore(t *testing.T) {
	rate := beep.SampleRate(44100)

	low := risingCrossings(drain(t, ScoreTone(rate, 1, 1)))
	high := risingCrossings(drain(t, ScoreTone(rate, 10, 1)))

	if high <= low {
		t.Errorf("Expected more cycles for a higher score, got %d (score 1) vs %d (score 10)", low, high)
	}
}

func TestMissToneLength(t *testing.T) {
	rate := beep.SampleRate(22050)

	samples := drain(t, MissTone(rate, 0.5))

	if expected := 2 * rate.N(missDuration); len(samples) != expected {
		t.Errorf("Expected %d samples, got %d", expected, len(samples))
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	rate := beep.SampleRate(22050)

	for i, v := range drain(t, FailTone(rate, 0)) {
		if v != 0 {
			t.Fatalf("Sample %d should be silent, got %f", i, v)
		}
	}
}
