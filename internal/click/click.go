// Package click synthesizes the flip sound of electromechanical
// dot panels, played when the display changes.
package click

import "math"
import "sync"
import "time"

import "github.com/gopxl/beep"
import "github.com/gopxl/beep/speaker"

const SampleRate = beep.SampleRate(44100)

// Click length.
const Duration = 12*time.Millisecond

// A Generator streams a single click: a short burst of noise with a
// fast exponential decay. It implements [beep.Streamer].
type Generator struct {
	sampleRate beep.SampleRate
	pos int
	length int
	volume float64
	seed uint32
}

// Creates a click generator. The volume is clamped to [0, 1].
func NewGenerator(sampleRate beep.SampleRate, volume float64) *Generator {
	return &Generator{
		sampleRate: sampleRate,
		length: sampleRate.N(Duration),
		volume: min(max(volume, 0), 1),
		seed: 0x2545F491,
	}
}

// Implements [beep.Streamer].
func (self *Generator) Stream(samples [][2]float64) (int, bool) {
	if self.pos >= self.length { return 0, false }
	n := 0
	for i := range samples {
		if self.pos >= self.length { break }
		t := float64(self.pos)/float64(self.sampleRate)
		envelope := math.Exp(-t*600)

		self.seed ^= self.seed << 13 // xorshift32
		self.seed ^= self.seed >> 17
		self.seed ^= self.seed << 5
		noise := float64(self.seed)/float64(math.MaxUint32)*2 - 1

		sample := self.volume*envelope*noise
		samples[i][0], samples[i][1] = sample, sample
		self.pos += 1
		n += 1
	}
	return n, true
}

// Implements [beep.Streamer].
func (self *Generator) Err() error { return nil }

// A Player plays clicks through the speaker. The zero value is
// ready to use, but silent until [Player.Init]() succeeds.
type Player struct {
	mutex sync.Mutex
	mixer beep.Mixer
	initialized bool
	Volume float64
}

// Initializes the speaker. Calling it more than once is harmless.
func (self *Player) Init() error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.initialized { return nil }
	err := speaker.Init(SampleRate, SampleRate.N(time.Millisecond*50))
	if err != nil { return err }
	speaker.Play(&self.mixer)
	self.initialized = true
	return nil
}

// Plays a click, if the player has been initialized. The volume
// grows with the fraction of dots that changed, which must be in
// [0, 1].
func (self *Player) Click(changedFraction float64) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if !self.initialized || changedFraction <= 0 { return }
	volume := self.Volume
	if volume == 0 { volume = 0.5 }
	volume *= 0.25 + 0.75*min(changedFraction, 1)
	speaker.Lock()
	self.mixer.Add(NewGenerator(SampleRate, volume))
	speaker.Unlock()
}

// Stops the speaker.
func (self *Player) Close() {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if !self.initialized { return }
	speaker.Clear()
	speaker.Close()
	self.initialized = false
}
