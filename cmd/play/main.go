// play plays a wavetable oscillator through the sound card, or renders it to a
// wav file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/wavetable"
	"github.com/pfcm/wavetable/io"
	"github.com/pfcm/wavetable/osc"
	"github.com/pfcm/wavetable/spectrum"
	"github.com/pfcm/wavetable/table"
)

var (
	waveFlag    = flag.String("wave", "square", "`shape` of the wave table: one of "+strings.Join(table.Names(), ", "))
	sizeFlag    = flag.Int("size", table.DefaultSize, "number of samples in the wave table")
	rateFlag    = flag.Int("rate", 44100, "output sample rate")
	freqFlag    = flag.Float64("freq", 220, "frequency to play, in Hz. Negative frequencies play the table backwards")
	noteFlag    = flag.Float64("note", -1, "if >= 0, the MIDI note to play instead of -freq")
	notesFlag   = flag.String("notes", "", "comma separated list of MIDI notes to step through, overriding -freq and -note")
	stepFlag    = flag.Duration("step", 250*time.Millisecond, "how long to play each of -notes")
	durFlag     = flag.Duration("dur", 5*time.Second, "how long to play for")
	gainFlag    = flag.Float64("gain", 1, "output gain")
	bits8Flag   = flag.Bool("bits8", false, "if true, crush the output down to 8 bits")
	backendFlag = flag.String("backend", "malgo", "audio `backend` to play through: one of "+strings.Join(io.BackendNames(), ", "))
	writeFlag   = flag.Bool("write", false, "if true, writes the output to a wav file in the current directory")
	renderFlag  = flag.String("render", "", "if set, renders -dur of output to this wav `file` instead of playing it")
	checkFlag   = flag.Bool("check", false, "if true, print the loudest frequency in a second of output before playing")
	profileFlag = flag.Bool("profile", false, "whether to write pprof profiles to the current working directory")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("play: ")

	if *profileFlag {
		finish, err := startProfiles()
		if err != nil {
			log.Fatalf("Starting profiling: %v", err)
		}
		defer func() {
			if err := finish(); err != nil {
				log.Fatalf("Finishing profiles: %v", err)
			}
		}()
	}

	p := message.NewPrinter(language.English)

	if *checkFlag {
		if err := check(p); err != nil {
			log.Fatal(err)
		}
	}

	src, err := source()
	if err != nil {
		log.Fatal(err)
	}

	if *renderFlag != "" {
		if err := render(*renderFlag, src, *durFlag); err != nil {
			log.Fatal(err)
		}
		p.Printf("Wrote %v of %v to %q\n", *durFlag, src, *renderFlag)
		return
	}

	var (
		rec      *io.Recorder
		filename string
	)
	m := newMeter(src.Channels())
	tap := io.Tap(m)
	if *writeFlag {
		filename = fmt.Sprintf("out-%d.wav", time.Now().Unix())
		fmt.Fprintf(os.Stderr, "Writing output to %q\n", filename)
		rec = io.NewRecorder(src, *durFlag)
		tap = io.Taps(m, rec)
	}

	ctx, cancel := context.WithTimeout(interruptContext(), *durFlag)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return io.Play(ctx, *backendFlag, src, tap)
	})
	g.Go(func() error {
		t0 := time.Now()
		t := time.NewTicker(100 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
				var s []string
				for _, f := range m.getRMS() {
					s = append(s, fmt.Sprintf("%.2f", f))
				}
				p.Printf("\r%.4f: %v", time.Since(t0).Seconds(), s)
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	fmt.Println()

	if rec != nil {
		if err := writeRecording(filename, rec); err != nil {
			log.Fatal(err)
		}
	}
	p.Printf("Played %d samples of %v through %s\n", m.getSamples(), src, *backendFlag)
}

// source builds the oscillator described by the flags, along with anything
// wrapped around it.
func source() (wavetable.Source, error) {
	tab, err := table.ByName(*waveFlag, *sizeFlag)
	if err != nil {
		return nil, err
	}
	o, err := osc.New(*rateFlag, tab)
	if err != nil {
		return nil, err
	}
	if *noteFlag >= 0 {
		o.SetNote(*noteFlag)
	} else {
		o.SetFrequency(*freqFlag)
	}

	var src wavetable.Source = o
	if *notesFlag != "" {
		notes, err := parseNotes(*notesFlag)
		if err != nil {
			return nil, err
		}
		src = wavetable.EveryDuration(src, *stepFlag, func(i int) {
			o.SetNote(notes[i%len(notes)])
		})
	}
	if *gainFlag != 1 {
		src = wavetable.Scale{Source: src, Mul: float32(*gainFlag)}
	}
	if *bits8Flag {
		src = wavetable.Crush{Source: src}
	}
	return src, nil
}

func parseNotes(s string) ([]float64, error) {
	var notes []float64
	for _, n := range strings.Split(s, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing -notes: %w", err)
		}
		notes = append(notes, f)
	}
	return notes, nil
}

// check renders a second of output from a fresh source and prints its
// loudest frequency.
func check(p *message.Printer) error {
	src, err := source()
	if err != nil {
		return err
	}
	buf := make([]float32, src.SampleRate())
	wavetable.Fill(src, buf)
	peak := spectrum.Peak(buf, src.SampleRate())
	p.Printf("Loudest frequency: %.2fHz\n", peak)
	return nil
}

func render(path string, src wavetable.Source, d time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	frames := int(d.Seconds() * float64(src.SampleRate()))
	if err := io.WriteWAV(f, src, frames); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}

func writeRecording(path string, rec *io.Recorder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rec.WriteWAV(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// meter keeps a running RMS of each channel of whatever it is shown.
type meter struct {
	channels int

	mu      sync.Mutex
	rms     []float32
	samples int
}

var _ io.Tap = &meter{}

func newMeter(channels int) *meter {
	return &meter{
		channels: channels,
		rms:      make([]float32, channels),
	}
}

func (m *meter) Tap(samples []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	frames := len(samples) / m.channels
	if frames == 0 {
		return
	}
	for c := range m.rms {
		rms := float64(0)
		for i := c; i < len(samples); i += m.channels {
			rms += float64(samples[i]) * float64(samples[i])
		}
		rms /= float64(frames)
		m.rms[c] = 0.01*m.rms[c] + 0.99*float32(math.Sqrt(rms))
	}
	m.samples += len(samples)
}

func (m *meter) getRMS() []float32 {
	results := make([]float32, m.channels)
	m.mu.Lock()
	defer m.mu.Unlock()
	copy(results, m.rms)
	return results
}

func (m *meter) getSamples() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.samples
}

func interruptContext() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}

func startProfiles() (func() error, error) {
	cpu, err := os.Create("cpu.pprof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(cpu); err != nil {
		return nil, fmt.Errorf("starting cpu profile: %w", err)
	}

	mem, err := os.Create("mem.pprof")
	if err != nil {
		return nil, err
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := cpu.Close(); err != nil {
			return err
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(mem); err != nil {
			return err
		}
		return mem.Close()
	}, nil
}
