package mfclassic

import (
	"fmt"
	"log/slog"
)

// Editor is one editing session over a dump. It holds the last validated
// dump and the sector bodies as the user currently has them. Any body change
// marks the session dirty; views and serialization are refused until
// Validate succeeds again.
//
// FileName and UID are supplied by whoever opened the session (file loader
// or tag reader) and are only used for the title.
type Editor struct {
	FileName string
	UID      []byte

	dump  *Dump
	texts []SectorText
	dirty bool
}

// NewEditor parses lines and opens a session on the result.
func NewEditor(lines []string) (*Editor, error) {
	d, err := Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("open editor: %w", err)
	}
	return &Editor{dump: d, texts: d.Texts()}, nil
}

// Sectors returns a copy of the editable sectors.
func (e *Editor) Sectors() []SectorText {
	out := make([]SectorText, len(e.texts))
	copy(out, e.texts)
	return out
}

// SetBody replaces the body text of the i-th sector.
func (e *Editor) SetBody(i int, text string) error {
	if i < 0 || i >= len(e.texts) {
		return fmt.Errorf("sector index %d out of range [0,%d)", i, len(e.texts))
	}
	if e.texts[i].Unreadable {
		return fmt.Errorf("sector %d is unreadable and has no blocks", e.texts[i].Number)
	}
	e.texts[i].Body = text
	e.dirty = true
	return nil
}

// Dirty reports whether bodies changed since the last successful Validate.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// Validate checks the current bodies. On success the validated dump replaces
// the previous one and the bodies are rewritten in canonical form. On
// failure nothing changes and the session stays dirty.
func (e *Editor) Validate() (Status, error) {
	d, err := Validate(e.texts)
	if err != nil {
		st := StatusOf(err)
		slog.Debug("dump validation failed", "status", st, "error", err)
		return st, err
	}
	e.dump = d
	e.texts = d.Texts()
	e.dirty = false
	slog.Debug("dump validated", "sectors", len(d.Sectors))
	return StatusOK, nil
}

// Dump returns the last validated dump.
func (e *Editor) Dump() *Dump {
	return e.dump
}

// Lines returns the canonical lines of the dump, ready to be saved or shared.
func (e *Editor) Lines() ([]string, error) {
	if e.dirty {
		return nil, ErrNotValidated
	}
	return e.dump.Lines(), nil
}

// ASCIIView is Dump.ASCIIView guarded by the dirty flag.
func (e *Editor) ASCIIView() (string, error) {
	if e.dirty {
		return "", ErrNotValidated
	}
	return e.dump.ASCIIView()
}

// AccessConditionView is Dump.AccessConditionView guarded by the dirty flag.
func (e *Editor) AccessConditionView() (string, error) {
	if e.dirty {
		return "", ErrNotValidated
	}
	return e.dump.AccessConditionView()
}

// ValueBlockView is Dump.ValueBlockView guarded by the dirty flag.
func (e *Editor) ValueBlockView() (string, error) {
	if e.dirty {
		return "", ErrNotValidated
	}
	return e.dump.ValueBlockView()
}

// Title returns base followed by the tag UID, or by the file name if no UID
// is known.
func (e *Editor) Title(base string) string {
	return FormatTitle(base, e.UID, e.FileName)
}

// FormatTitle formats "<base> (UID: <hex>)" or "<base> (<fileName>)". With
// neither it returns base.
func FormatTitle(base string, uid []byte, fileName string) string {
	switch {
	case len(uid) > 0:
		return fmt.Sprintf("%s (UID: %s)", base, hexUpper(uid))
	case fileName != "":
		return fmt.Sprintf("%s (%s)", base, fileName)
	default:
		return base
	}
}
