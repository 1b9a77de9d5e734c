// Package script embeds the Lua source that drives the speech-to-text
// model. The script owns the two inference entry points, new_model and
// transcribe_audio; everything behind them (the model library itself,
// audio decoding, weight files) lives on the script's side of the boundary.
package script

import _ "embed"

//go:embed whisper.lua
var source string

// Source returns the embedded inference script.
func Source() string { return source }
