package io

import (
	"context"
	"fmt"
	"os"

	"github.com/gen2brain/malgo"

	"github.com/pfcm/wavetable"
)

// PlayMalgo plays src on the default device using miniaudio.
func PlayMalgo(ctx context.Context, src wavetable.Source, tap Tap) error {
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(msg string) {
		fmt.Fprint(os.Stderr, msg)
	})
	if err != nil {
		return err
	}
	defer func() {
		mctx.Uninit()
		mctx.Free()
	}()

	channels := src.Channels()
	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatF32
	cfg.Playback.Channels = uint32(channels)
	cfg.SampleRate = uint32(src.SampleRate())

	buf := make([]float32, blockSize*channels)
	send := func(out, _ []byte, framecount uint32) {
		if framecount == 0 {
			return
		}
		buf = grow(buf, int(framecount)*channels)
		pull(src, tap, buf)
		// out is exactly the right size, so this writes in place.
		encodeF32(out[:0], buf)
	}

	device, err := malgo.InitDevice(mctx.Context, cfg, malgo.DeviceCallbacks{
		Data: send,
	})
	if err != nil {
		return err
	}
	defer device.Uninit()
	if err := device.Start(); err != nil {
		return err
	}

	<-ctx.Done()

	return device.Stop()
}
