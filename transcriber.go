package fasterwhisper

import (
	lua "github.com/yuin/gopher-lua"
)

// Transcriber is the ephemeral lifecycle: construction touches nothing, and
// every Transcribe call loads the script and constructs the model from
// scratch inside one interpreter session. More expensive per call, but no
// interpreter references are held between calls.
type Transcriber struct {
	Model       string
	Device      string
	ComputeType string
	Config      Config
}

// NewTranscriber returns a Transcriber for the named model. It performs no
// interpreter work; failures surface on the first Transcribe call.
func NewTranscriber(model, device, computeType string, cfg Config) *Transcriber {
	return &Transcriber{
		Model:       model,
		Device:      device,
		ComputeType: computeType,
		Config:      cfg,
	}
}

// Transcribe runs inference on the audio file at path and returns the
// decoded result. The script is reloaded and the model reconstructed on
// every call.
func (t *Transcriber) Transcribe(path string) (Result, error) {
	return runTranscription(ephemeralSession{t}, path)
}

type ephemeralSession struct{ t *Transcriber }

func (s ephemeralSession) module(L *lua.LState) (*lua.LTable, error) {
	return loadScript(L)
}

func (s ephemeralSession) handle(L *lua.LState, mod *lua.LTable) (lua.LValue, error) {
	return constructModel(L, mod, s.t.Model, s.t.Device, s.t.ComputeType)
}

func (s ephemeralSession) config() Config { return s.t.Config }
