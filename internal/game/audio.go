package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundMerge SoundKind = iota
	SoundYield
	SoundTrackSwitch
	SoundPause
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// activeVoices caps overlapping cues when a whole pack changes lanes at once.
var activeVoices int32

const maxVoices = 4

var sfxVolume float64 = 0.5

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

func SetSFXVolume(vol float64) {
	sfxVolume = clampF(vol, 0, 1)
}

// PlaySound plays a procedurally generated sound effect centred in the stereo field.
func PlaySound(kind SoundKind) {
	PlaySoundPanned(kind, 0)
}

// PlaySoundPanned plays kind panned between left (-1) and right (+1).
func PlaySoundPanned(kind SoundKind, pan float64) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if atomic.AddInt32(&activeVoices, 1) > maxVoices {
		atomic.AddInt32(&activeVoices, -1)
		return
	}
	samples := generateSound(kind, pan)
	if len(samples) == 0 {
		atomic.AddInt32(&activeVoices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&activeVoices, -1)
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// LanePan maps a lane index onto the stereo field: inner lane left, outer lane right.
func LanePan(lane, laneCount int) float64 {
	if laneCount <= 1 {
		return 0
	}
	lane = clamp(lane, 0, laneCount-1)
	return 2*float64(lane)/float64(laneCount-1) - 1
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// putPanned writes a mono sample with an equal-power pan.
func putPanned(buf []byte, i int, sample, pan float64) {
	a := (clampF(pan, -1, 1) + 1) * math.Pi / 4
	putStereoF32LR(buf, i, sample*math.Cos(a), sample*math.Sin(a))
}

// softSat applies gentle tanh-like saturation, no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind, pan float64) []byte {
	switch kind {
	case SoundMerge:
		return genMerge(pan)
	case SoundYield:
		return genYield(pan)
	case SoundTrackSwitch:
		return genTrackSwitch()
	case SoundPause:
		return genPause()
	}
	return nil
}

// genMerge: short rising chirp, a robot moving towards the inside.
func genMerge(pan float64) []byte {
	n := SampleRate * 90 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.05, 0.45, 0.3, 0.3)
		freq := 660 + 440*p
		s := fm(t, freq, 2.0, 0.8*(1-p)) * env * 0.32
		putPanned(buf, i, softSat(s), pan)
	}
	return buf
}

// genYield: falling two-operator blip with a little noise, a robot giving way.
func genYield(pan float64) []byte {
	n := SampleRate * 120 / 1000
	buf := makeBuf(n)
	seed := uint64(0x9e3779b97f4a7c15)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.6, 0.2, 0.2)
		freq := 520 - 260*p
		tone := fm(t, freq, 0.5, 1.2) * env * 0.34
		hiss := lcg(&seed) * math.Exp(-p*18) * 0.06
		putPanned(buf, i, softSat(tone+hiss), pan)
	}
	return buf
}

// genTrackSwitch: two-note chime, a fifth apart.
func genTrackSwitch() []byte {
	n := SampleRate * 320 / 1000
	buf := makeBuf(n)
	half := n / 2
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		freq, local, span := 523.25, i, half
		if i >= half {
			freq, local, span = 783.99, i-half, n-half
		}
		p := float64(local) / float64(span)
		env := adsr(p, 0.02, 0.5, 0.25, 0.3)
		s := fm(t, freq, 3.0, 0.5) * env * 0.3
		putPanned(buf, i, softSat(s), 0)
	}
	return buf
}

// genPause: a dry click.
func genPause() []byte {
	n := SampleRate * 40 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		s := fm(t, 1400-700*p, 1.0, 0.6) * math.Exp(-p*9) * 0.3
		putPanned(buf, i, softSat(s), 0)
	}
	return buf
}
