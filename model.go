package fasterwhisper

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/abrowne2/faster-whisper-go/internal/luavm"
)

// Model is the persistent lifecycle: the script module and the constructed
// model handle are owned by the Model and stay alive as long as it does.
// Each Transcribe call re-acquires the interpreter for the inference
// invocation only. The stored references must not be shared across Model
// instances.
type Model struct {
	mod    *lua.LTable
	handle lua.LValue
	cfg    Config
}

// NewModel loads the script and constructs the model handle up front.
// Construction failures (unknown model name, unsupported device, missing
// entry point) are returned, not deferred to Transcribe.
func NewModel(model, device, computeType string, cfg Config) (*Model, error) {
	L, release := luavm.Acquire()
	defer release()

	mod, err := loadScript(L)
	if err != nil {
		return nil, err
	}
	handle, err := constructModel(L, mod, model, device, computeType)
	if err != nil {
		return nil, err
	}
	return &Model{mod: mod, handle: handle, cfg: cfg}, nil
}

// DefaultModel constructs a Model for "base.en" on CPU with int8 compute
// and the default configuration. It panics if construction fails; it is a
// fail-fast shortcut for demos and tests, not a substitute for NewModel.
func DefaultModel() *Model {
	m, err := NewModel("base.en", "cpu", "int8", DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("fasterwhisper: default model: %v", err))
	}
	return m
}

// Transcribe runs inference on the audio file at path, reusing the stored
// script module and model handle.
func (m *Model) Transcribe(path string) (Result, error) {
	return runTranscription(persistentSession{m}, path)
}

// Config returns the configuration the Model was constructed with.
func (m *Model) Config() Config { return m.cfg }

type persistentSession struct{ m *Model }

func (s persistentSession) module(*lua.LState) (*lua.LTable, error) { return s.m.mod, nil }

func (s persistentSession) handle(*lua.LState, *lua.LTable) (lua.LValue, error) {
	return s.m.handle, nil
}

func (s persistentSession) config() Config { return s.m.cfg }
