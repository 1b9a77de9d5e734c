package fasterwhisper

import (
	"errors"
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"
)

// ErrDecode reports a return value from the inference script that does not
// match the expected tuple-sequence shape. It signals a broken script
// contract, not bad caller input.
var ErrDecode = errors.New("fasterwhisper: malformed inference result")

// decodeSegments maps the script's return value, a sequence of 9-field
// tuples, onto Segment records. Field order is positional and fixed:
// (id, seek, start, end, text, temperature, avg_logprob, compression_ratio,
// no_speech_prob). Sequence order is preserved exactly. Any arity or type
// mismatch fails the whole decode.
func decodeSegments(v lua.LValue) ([]Segment, error) {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: expected a sequence, got %s", ErrDecode, v.Type())
	}

	n := tbl.Len()
	segments := make([]Segment, 0, n)
	for i := 1; i <= n; i++ {
		seg, err := decodeSegment(tbl.RawGetInt(i))
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func decodeSegment(v lua.LValue) (Segment, error) {
	tuple, ok := v.(*lua.LTable)
	if !ok {
		return Segment{}, fmt.Errorf("%w: expected a tuple, got %s", ErrDecode, v.Type())
	}
	if tuple.Len() != 9 {
		return Segment{}, fmt.Errorf("%w: expected 9 fields, got %d", ErrDecode, tuple.Len())
	}

	var (
		seg Segment
		err error
	)
	if seg.ID, err = intField(tuple, 1); err != nil {
		return Segment{}, err
	}
	if seg.Seek, err = intField(tuple, 2); err != nil {
		return Segment{}, err
	}
	if seg.Start, err = floatField(tuple, 3); err != nil {
		return Segment{}, err
	}
	if seg.End, err = floatField(tuple, 4); err != nil {
		return Segment{}, err
	}
	if seg.Text, err = stringField(tuple, 5); err != nil {
		return Segment{}, err
	}
	if seg.Temperature, err = floatField(tuple, 6); err != nil {
		return Segment{}, err
	}
	if seg.AvgLogProb, err = floatField(tuple, 7); err != nil {
		return Segment{}, err
	}
	if seg.CompressionRatio, err = floatField(tuple, 8); err != nil {
		return Segment{}, err
	}
	if seg.NoSpeechProb, err = floatField(tuple, 9); err != nil {
		return Segment{}, err
	}
	return seg, nil
}

func intField(tuple *lua.LTable, i int) (int, error) {
	n, ok := tuple.RawGetInt(i).(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%w: field %d: expected integer, got %s", ErrDecode, i, tuple.RawGetInt(i).Type())
	}
	if float64(n) != math.Trunc(float64(n)) {
		return 0, fmt.Errorf("%w: field %d: expected integer, got %v", ErrDecode, i, float64(n))
	}
	return int(n), nil
}

func floatField(tuple *lua.LTable, i int) (float64, error) {
	n, ok := tuple.RawGetInt(i).(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%w: field %d: expected number, got %s", ErrDecode, i, tuple.RawGetInt(i).Type())
	}
	return float64(n), nil
}

func stringField(tuple *lua.LTable, i int) (string, error) {
	s, ok := tuple.RawGetInt(i).(lua.LString)
	if !ok {
		return "", fmt.Errorf("%w: field %d: expected string, got %s", ErrDecode, i, tuple.RawGetInt(i).Type())
	}
	return string(s), nil
}
