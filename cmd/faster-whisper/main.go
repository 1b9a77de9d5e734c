// Command faster-whisper transcribes an audio file, or a fresh microphone
// recording, through the embedded inference runtime.
//
// Usage:
//
//	faster-whisper [flags] audio.wav
//	faster-whisper -record 5
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	fasterwhisper "github.com/abrowne2/faster-whisper-go"
	"github.com/abrowne2/faster-whisper-go/internal/audio"
)

const (
	captureSampleRate = 16000
	captureChannels   = 1
)

func main() {
	configPath := flag.String("config", "", "path to YAML transcription config (default: built-in defaults)")
	model := flag.String("model", "base.en", "model name")
	device := flag.String("device", "cpu", "device identifier")
	compute := flag.String("compute", "int8", "compute precision")
	persistent := flag.Bool("persistent", false, "construct the model once and reuse it")
	record := flag.Int("record", 0, "record N seconds from the microphone instead of reading a file")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *level)
		os.Exit(2)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(lvl)

	cfg := fasterwhisper.DefaultConfig()
	if *configPath != "" {
		cfg, err = fasterwhisper.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("config")
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	path := flag.Arg(0)
	if *record > 0 {
		path, err = recordClip(*record)
		if err != nil {
			log.Fatal().Err(err).Msg("recording")
		}
		defer os.Remove(path)
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: faster-whisper [flags] audio.wav")
		os.Exit(2)
	}

	result, err := transcribe(path, *model, *device, *compute, *persistent, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("transcription failed")
	}

	for _, seg := range result.Segments {
		log.Debug().
			Int("id", seg.ID).
			Float64("start", seg.Start).
			Float64("end", seg.End).
			Float64("no_speech_prob", seg.NoSpeechProb).
			Str("text", seg.Text).
			Msg("segment")
	}
	fmt.Println(result)
}

func transcribe(path, model, device, compute string, persistent bool, cfg fasterwhisper.Config) (fasterwhisper.Result, error) {
	start := time.Now()
	defer func() {
		log.Info().Dur("elapsed", time.Since(start)).Str("path", path).Msg("transcription done")
	}()

	if persistent {
		m, err := fasterwhisper.NewModel(model, device, compute, cfg)
		if err != nil {
			return fasterwhisper.Result{}, err
		}
		return m.Transcribe(path)
	}
	return fasterwhisper.NewTranscriber(model, device, compute, cfg).Transcribe(path)
}

// recordClip captures n seconds from the default microphone and writes them
// to a temporary WAV file. The caller removes the file.
func recordClip(n int) (string, error) {
	rec, err := audio.NewRecorder(captureSampleRate, captureChannels)
	if err != nil {
		return "", err
	}
	defer rec.Close()

	log.Info().Int("seconds", n).Msg("recording")
	if err := rec.Start(); err != nil {
		return "", err
	}
	time.Sleep(time.Duration(n) * time.Second)
	samples := rec.Stop()
	log.Info().Int("samples", len(samples)).Msg("recording finished")

	path := filepath.Join(os.TempDir(), fmt.Sprintf("faster-whisper-%d.wav", time.Now().UnixNano()))
	if err := audio.WriteWAV(path, samples, captureSampleRate, captureChannels); err != nil {
		return "", err
	}
	return path, nil
}
