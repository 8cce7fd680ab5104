package click

import "testing"

import "github.com/stretchr/testify/assert"

func TestGeneratorLength(t *testing.T) {
	gen := NewGenerator(SampleRate, 1.0)
	expected := SampleRate.N(Duration)
	samples := make([][2]float64, 128)
	total := 0
	for {
		n, ok := gen.Stream(samples)
		if !ok { break }
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, samples[i][0], 1.0)
			assert.GreaterOrEqual(t, samples[i][0], -1.0)
			assert.Equal(t, samples[i][0], samples[i][1])
		}
		total += n
	}
	assert.Equal(t, expected, total)
	assert.NoError(t, gen.Err())
}

func TestGeneratorVolume(t *testing.T) {
	silent := NewGenerator(SampleRate, -3)
	samples := make([][2]float64, 64)
	n, ok := silent.Stream(samples)
	assert.True(t, ok)
	for i := 0; i < n; i++ { assert.Zero(t, samples[i][0]) }
}

func TestPlayerUninitialized(t *testing.T) {
	var player Player
	player.Click(1.0) // no speaker, no effect
	player.Close()
}
