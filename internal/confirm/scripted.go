package confirm

import (
	"context"
	"errors"
	"time"
)

// NoKey in a ScriptedKeys script stands for a poll that timed out.
const NoKey rune = 0

// ErrScriptExhausted is returned once a ScriptedKeys script runs out.
var ErrScriptExhausted = errors.New("key script exhausted")

// ScriptedKeys replays a fixed sequence of key presses. It backs the
// non-interactive --answer flag and tests.
type ScriptedKeys struct {
	script []rune
	repeat bool
	polls  int
	begun  int
	ended  int
}

// NewScriptedKeys creates a key source that returns keys in order.
func NewScriptedKeys(keys ...rune) *ScriptedKeys {
	return &ScriptedKeys{script: keys}
}

// NewRepeatingKeys creates a key source that cycles through keys forever.
func NewRepeatingKeys(keys ...rune) *ScriptedKeys {
	return &ScriptedKeys{script: keys, repeat: len(keys) > 0}
}

// Begin records that a prompt started.
func (s *ScriptedKeys) Begin() error {
	s.begun++
	return nil
}

// Poll returns the next scripted key without waiting.
func (s *ScriptedKeys) Poll(ctx context.Context, _ time.Duration) (rune, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	if s.polls >= len(s.script) && !s.repeat {
		return 0, false, ErrScriptExhausted
	}
	key := s.script[s.polls%len(s.script)]
	s.polls++
	if key == NoKey {
		return 0, false, nil
	}
	return key, true, nil
}

// End records that a prompt finished.
func (s *ScriptedKeys) End() error {
	s.ended++
	return nil
}

// Polls returns how many keys have been consumed.
func (s *ScriptedKeys) Polls() int { return s.polls }

// Prompts returns how many times Begin was called.
func (s *ScriptedKeys) Prompts() int { return s.begun }

// Balanced reports whether every Begin was matched by End.
func (s *ScriptedKeys) Balanced() bool { return s.begun == s.ended }
