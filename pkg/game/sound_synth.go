package game

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// 音效资源ID
const (
	SoundShoot      = "SOUND_SHOOT"
	SoundHit        = "SOUND_HIT"
	SoundDestroy    = "SOUND_DESTROY"
	SoundStageClear = "SOUND_STAGE_CLEAR"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// AllSounds 全部内置音效ID，用于预加载
var AllSounds = []string{SoundShoot, SoundHit, SoundDestroy, SoundStageClear}

// waveType 振荡器波形
type waveType int

const (
	waveSquare waveType = iota
	waveNoise
)

// sweepOscillator 频率线性滑动的振荡器，附带线性衰减包络
type sweepOscillator struct {
	startHz, endHz float64
	wave           waveType
	rate           beep.SampleRate
	total          int
	position       int
	phase          float64
	rng            *rand.Rand
}

func newSweep(startHz, endHz float64, d time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &sweepOscillator{
		startHz: startHz,
		endHz:   endHz,
		wave:    wave,
		rate:    rate,
		total:   rate.N(d),
		// 固定种子，保证同一音效每次合成结果一致
		rng: rand.New(rand.NewPCG(0x5eed, uint64(startHz))),
	}
}

func (o *sweepOscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}
		progress := float64(o.position) / float64(o.total)
		freq := o.startHz + (o.endHz-o.startHz)*progress

		var val float64
		switch o.wave {
		case waveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweepOscillator) Err() error { return nil }

// withVolume 以线性音量缩放流（0 为静音）
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// newSoundStreamer 按ID构建音效流，未知ID返回 nil
func newSoundStreamer(soundID string, rate beep.SampleRate) beep.Streamer {
	switch soundID {
	case SoundShoot:
		return withVolume(newSweep(1400, 500, 70*time.Millisecond, waveSquare, rate), 0.35)
	case SoundHit:
		return withVolume(newSweep(0, 0, 60*time.Millisecond, waveNoise, rate), 0.4)
	case SoundDestroy:
		return beep.Take(rate.N(220*time.Millisecond), beep.Mix(
			withVolume(newSweep(0, 0, 220*time.Millisecond, waveNoise, rate), 0.45),
			withVolume(newSweep(220, 60, 220*time.Millisecond, waveSquare, rate), 0.3),
		))
	case SoundStageClear:
		notes := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
		seq := make([]beep.Streamer, 0, len(notes))
		for _, hz := range notes {
			tone, err := generators.SineTone(rate, hz)
			if err != nil {
				return nil
			}
			seq = append(seq, beep.Take(rate.N(140*time.Millisecond), tone))
		}
		return withVolume(beep.Seq(seq...), 0.4)
	default:
		return nil
	}
}

// SynthesizeSound 合成音效并编码为 16 位小端立体声 PCM
// 这是 ebiten audio 播放器接受的原始格式
//
// 返回:
//   - []byte: PCM 数据
//   - bool: 音效ID是否存在
func SynthesizeSound(soundID string, sampleRate int) ([]byte, bool) {
	rate := beep.SampleRate(sampleRate)
	streamer := newSoundStreamer(soundID, rate)
	if streamer == nil {
		return nil, false
	}

	buf := make([][2]float64, 512)
	pcm := make([]byte, 0, rate.N(250*time.Millisecond)*4)
	var frame [4]byte
	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:2], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:4], uint16(toInt16(buf[i][1])))
			pcm = append(pcm, frame[:]...)
		}
		if !ok {
			break
		}
	}
	return pcm, true
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
