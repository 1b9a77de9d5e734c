// Package fasterwhisper transcribes audio files through an inference script
// running in an embedded Lua interpreter.
//
// Two lifecycles are offered. Transcriber is ephemeral: it holds no
// interpreter state and reloads the script and model on every call. Model is
// persistent: it constructs the model once and keeps the script module and
// model handle alive for its whole lifetime. Both produce identical results
// for identical inputs; the choice is about cost per call, not semantics.
package fasterwhisper

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/abrowne2/faster-whisper-go/internal/luavm"
	"github.com/abrowne2/faster-whisper-go/internal/script"
)

const scriptName = "whisper.lua"

// scriptSource is swapped out by tests to stand in for the real runtime.
var scriptSource = script.Source()

// session abstracts how a transcription call obtains the script module and
// the model handle: loaded fresh per call, or reused from stored state.
type session interface {
	module(L *lua.LState) (*lua.LTable, error)
	handle(L *lua.LState, mod *lua.LTable) (lua.LValue, error)
	config() Config
}

// runTranscription is the single marshalling path shared by both
// lifecycles: acquire the interpreter, resolve module and model through the
// session, invoke transcribe_audio, decode the tuple sequence.
func runTranscription(s session, path string) (Result, error) {
	L, release := luavm.Acquire()
	defer release()

	mod, err := s.module(L)
	if err != nil {
		return Result{}, err
	}
	model, err := s.handle(L, mod)
	if err != nil {
		return Result{}, err
	}
	fn, err := luavm.EntryPoint(mod, "transcribe_audio")
	if err != nil {
		return Result{}, fmt.Errorf("fasterwhisper: %w", err)
	}
	ret, err := luavm.Call(L, fn, transcribeArgs(L, model, path, s.config())...)
	if err != nil {
		return Result{}, fmt.Errorf("fasterwhisper: transcribe %q: %w", path, err)
	}
	segments, err := decodeSegments(ret)
	if err != nil {
		return Result{}, err
	}
	return newResult(segments), nil
}

// transcribeArgs serializes the configuration into the script's positional
// argument convention. Optional fields pass through the sentinel encoder;
// the VAD sub-configuration travels as a 6-element tuple.
func transcribeArgs(L *lua.LState, model lua.LValue, path string, cfg Config) []lua.LValue {
	vad := L.NewTable()
	vad.Append(lua.LBool(cfg.VAD.Active))
	vad.Append(lua.LNumber(cfg.VAD.Threshold))
	vad.Append(lua.LNumber(cfg.VAD.MinSpeechDuration))
	vad.Append(lua.LString(sentinel(cfg.VAD.MaxSpeechDuration)))
	vad.Append(lua.LNumber(cfg.VAD.MinSilenceDuration))
	vad.Append(lua.LNumber(cfg.VAD.PaddingDuration))

	return []lua.LValue{
		model,
		lua.LString(path),
		lua.LString(sentinel(cfg.StartingPrompt)),
		lua.LString(sentinel(cfg.Prefix)),
		lua.LString(sentinel(cfg.Language)),
		lua.LNumber(cfg.BeamSize),
		lua.LNumber(cfg.BestOf),
		lua.LNumber(cfg.Patience),
		lua.LNumber(cfg.LengthPenalty),
		lua.LString(sentinel(cfg.ChunkLength)),
		vad,
	}
}

// constructModel calls the new_model entry point. The caller must hold the
// interpreter.
func constructModel(L *lua.LState, mod *lua.LTable, model, device, computeType string) (lua.LValue, error) {
	fn, err := luavm.EntryPoint(mod, "new_model")
	if err != nil {
		return nil, fmt.Errorf("fasterwhisper: %w", err)
	}
	handle, err := luavm.Call(L, fn, lua.LString(model), lua.LString(device), lua.LString(computeType))
	if err != nil {
		return nil, fmt.Errorf("fasterwhisper: construct model %q: %w", model, err)
	}
	return handle, nil
}

func loadScript(L *lua.LState) (*lua.LTable, error) {
	mod, err := luavm.LoadModule(L, scriptSource, scriptName)
	if err != nil {
		return nil, fmt.Errorf("fasterwhisper: load script: %w", err)
	}
	return mod, nil
}
