// Package audio synthesizes and plays the completion alarms. Tones are
// rendered into beep buffers once at startup, so no audio assets ship with
// the binary.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"HabitTimers/timer"
)

const (
	sampleRate = beep.SampleRate(44100)
	// toneLength is the audible alarm length including the fade-out tail.
	toneLength = 2 * time.Second
	fadeLength = 400 * time.Millisecond
)

type waveform int

const (
	waveSine waveform = iota
	waveTriangle
	waveSquare
)

// segment is one note of an alarm tone.
type segment struct {
	wave     waveform
	freq     int
	duration time.Duration
}

// alarmSegments maps each audible alarm type to the notes composing it.
var alarmSegments = map[timer.AlarmType][]segment{
	timer.AlarmBell: {
		{waveSine, 880, toneLength},
	},
	timer.AlarmChime: {
		{waveTriangle, 660, toneLength / 2},
		{waveTriangle, 880, toneLength / 2},
	},
	timer.AlarmBeep: {
		{waveSquare, 440, toneLength},
	},
}

// Player renders alarm tones and plays them through the speaker. A Player
// whose speaker failed to initialize stays usable; Play just logs and
// returns.
type Player struct {
	format      beep.Format
	buffers     map[timer.AlarmType]*beep.Buffer
	speakerLock sync.Mutex
	ready       bool
}

// NewPlayer initializes the speaker and pre-renders one buffer per audible
// alarm type.
func NewPlayer() *Player {
	p := &Player{
		format:  beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2},
		buffers: make(map[timer.AlarmType]*beep.Buffer),
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: failed to initialize speaker: %v", err)
	} else {
		p.ready = true
	}

	for kind, segments := range alarmSegments {
		buffer, err := renderTone(p.format, segments)
		if err != nil {
			log.Printf("Failed to render %s alarm: %v", kind, err)
			continue
		}
		p.buffers[kind] = buffer
	}
	return p
}

// Play sounds the alarm for the given type with a short fade-out at the
// end. Silent and unknown types play nothing.
func (p *Player) Play(kind timer.AlarmType) {
	if kind == timer.AlarmSilent {
		return
	}
	buffer, ok := p.buffers[kind]
	if !ok {
		log.Printf("No alarm buffer for type %q", kind)
		return
	}
	if !p.ready {
		log.Printf("Speaker unavailable, skipping %s alarm", kind)
		return
	}

	p.speakerLock.Lock()
	defer p.speakerLock.Unlock()

	total := buffer.Len()
	fade := p.format.SampleRate.N(fadeLength)
	if fade > total {
		fade = total
	}
	body := buffer.Streamer(0, total-fade)
	tail := effects.Transition(buffer.Streamer(total-fade, total), fade, 1.0, 0.0, effects.TransitionEqualPower)
	speaker.Play(beep.Seq(body, tail))
}

// Buffered reports whether a buffer was rendered for the given alarm type.
// Used by tests; silent intentionally has none.
func (p *Player) Buffered(kind timer.AlarmType) bool {
	_, ok := p.buffers[kind]
	return ok
}

func renderTone(format beep.Format, segments []segment) (*beep.Buffer, error) {
	buffer := beep.NewBuffer(format)
	for _, seg := range segments {
		var (
			tone beep.Streamer
			err  error
		)
		switch seg.wave {
		case waveTriangle:
			tone, err = generators.TriangleTone(format.SampleRate, seg.freq)
		case waveSquare:
			tone, err = generators.SquareTone(format.SampleRate, seg.freq)
		default:
			tone, err = generators.SinTone(format.SampleRate, seg.freq)
		}
		if err != nil {
			return nil, fmt.Errorf("generate %d Hz tone: %w", seg.freq, err)
		}
		buffer.Append(beep.Take(format.SampleRate.N(seg.duration), tone))
	}
	return buffer, nil
}
