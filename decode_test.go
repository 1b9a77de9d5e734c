package fasterwhisper

import (
	"errors"
	"testing"
)

// malformed return values are a broken script contract and must surface as
// ErrDecode, never a panic or a truncated segment list.
func TestDecodeMalformedReturn(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{
			"not a sequence",
			`local M = {}
function M.new_model() return {} end
function M.transcribe_audio() return "oops" end
return M`,
		},
		{
			"tuple too short",
			`local M = {}
function M.new_model() return {} end
function M.transcribe_audio()
  return { { 0, 0, 0.0, 1.0, "x", 0.0, -0.1, 1.0 } }
end
return M`,
		},
		{
			"tuple too long",
			`local M = {}
function M.new_model() return {} end
function M.transcribe_audio()
  return { { 0, 0, 0.0, 1.0, "x", 0.0, -0.1, 1.0, 0.0, 99 } }
end
return M`,
		},
		{
			"text field not a string",
			`local M = {}
function M.new_model() return {} end
function M.transcribe_audio()
  return { { 0, 0, 0.0, 1.0, 42, 0.0, -0.1, 1.0, 0.0 } }
end
return M`,
		},
		{
			"id field not a number",
			`local M = {}
function M.new_model() return {} end
function M.transcribe_audio()
  return { { "zero", 0, 0.0, 1.0, "x", 0.0, -0.1, 1.0, 0.0 } }
end
return M`,
		},
		{
			"fractional id",
			`local M = {}
function M.new_model() return {} end
function M.transcribe_audio()
  return { { 0.5, 0, 0.0, 1.0, "x", 0.0, -0.1, 1.0, 0.0 } }
end
return M`,
		},
		{
			"element not a tuple",
			`local M = {}
function M.new_model() return {} end
function M.transcribe_audio()
  return { "not a tuple" }
end
return M`,
		},
		{
			"bad tuple after good one",
			`local M = {}
function M.new_model() return {} end
function M.transcribe_audio()
  return {
    { 0, 0, 0.0, 1.0, "ok", 0.0, -0.1, 1.0, 0.0 },
    { 1, 0 },
  }
end
return M`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withScript(t, tt.script)

			res, err := NewTranscriber("base.en", "cpu", "int8", DefaultConfig()).Transcribe("x.wav")
			if err == nil {
				t.Fatalf("Transcribe() = %+v, want decode error", res)
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("error %q should wrap ErrDecode", err)
			}
		})
	}
}

func TestDecodeEmptySequence(t *testing.T) {
	withScript(t, `
local M = {}
function M.new_model() return {} end
function M.transcribe_audio() return {} end
return M
`)

	res, err := NewTranscriber("base.en", "cpu", "int8", DefaultConfig()).Transcribe("silence.wav")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if res.Text != "" {
		t.Errorf("Text = %q, want empty", res.Text)
	}
	if len(res.Segments) != 0 {
		t.Errorf("len(Segments) = %d, want 0", len(res.Segments))
	}
}
