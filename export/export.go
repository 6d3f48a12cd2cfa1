// Package export contains the JSON documents the command line prints for
// engine results.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rapidmidiex/fretui/theory"
)

type (
	MsgType int

	Envelope struct {
		// Document identifier
		ID uuid.UUID `json:"id"`
		// VoicingMsg | ScaleMsg | ProgressionMsg | PositionsMsg
		Typ MsgType `json:"type"`
		// Actual document data.
		Payload json.RawMessage `json:"payload"`
	}

	VoicingMsg struct {
		Chord     string        `json:"chord"`
		Type      string        `json:"triadType"`
		StringSet string        `json:"stringSet"`
		Inversion string        `json:"inversion"`
		Notes     []theory.Note `json:"notes"`
		Window    theory.Window `json:"window"`
	}

	ScaleMsg struct {
		Key    string        `json:"key"`
		Scale  string        `json:"scale"`
		Shape  string        `json:"shape"`
		Window theory.Window `json:"window"`
		Notes  []theory.Note `json:"notes"`
	}

	ProgressionMsg struct {
		Key      string   `json:"key"`
		Mode     string   `json:"mode"`
		Name     string   `json:"name"`
		Numerals string   `json:"numerals"`
		Chords   []string `json:"chords"`
	}

	PositionsMsg struct {
		Note      string            `json:"note"`
		Positions []theory.Position `json:"positions"`
	}
)

const (
	VOICING MsgType = iota
	SCALE
	PROGRESSION
	POSITIONS
)

var typeNames = map[MsgType]string{
	VOICING:     "voicing",
	SCALE:       "scale",
	PROGRESSION: "progression",
	POSITIONS:   "positions",
}

// New wraps payload in an envelope with a fresh id.
func New(typ MsgType, payload any) (Envelope, error) {
	e := Envelope{ID: uuid.New(), Typ: typ}
	if err := e.SetPayload(payload); err != nil {
		return Envelope{}, err
	}
	return e, nil
}

func (e *Envelope) SetPayload(payload any) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", e.Typ, err)
	}
	e.Payload = p
	return nil
}

func (e *Envelope) Unwrap(msg any) error {
	return json.Unmarshal(e.Payload, msg)
}

// Write prints envelopes as indented JSON, one document each.
func Write(w io.Writer, envs ...Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	for _, e := range envs {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

func (t MsgType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MsgType(%d)", int(t))
}

func (t *MsgType) UnmarshalJSON(data []byte) error {
	var rawType string
	if err := json.Unmarshal(data, &rawType); err != nil {
		return err
	}
	for typ, name := range typeNames {
		if name == rawType {
			*t = typ
			return nil
		}
	}
	return fmt.Errorf("unknown type: %s", rawType)
}

func (t MsgType) MarshalJSON() ([]byte, error) {
	name, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown MsgType value: %d", t)
	}
	return json.Marshal(name)
}
