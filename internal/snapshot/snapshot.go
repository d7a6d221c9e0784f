// Package snapshot saves and restores interpreter variables as CBOR.
//
// Lists are stored by value: two variables that shared one list before a
// save refer to two equal lists after a load.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/fxamacker/cbor/v2"

	"github.com/tangzhangming/cubit/internal/i18n"
	"github.com/tangzhangming/cubit/internal/interpreter"
)

const version = 1

// entry is one encoded value. Kind selects which field is meaningful.
type entry struct {
	Kind  uint8   `cbor:"k"`
	Int   int64   `cbor:"i,omitempty"`
	Float float64 `cbor:"f,omitempty"`
	Str   string  `cbor:"s,omitempty"`
	Bool  bool    `cbor:"b,omitempty"`
	List  []entry `cbor:"l,omitempty"`
}

type document struct {
	Version int              `cbor:"v"`
	Vars    map[string]entry `cbor:"vars"`
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// Error is a snapshot failure with a translated message.
type Error struct {
	Key  string
	Args []any
	Err  error
}

func (e *Error) Error() string { return i18n.T(e.Key, e.Args...) }
func (e *Error) Unwrap() error { return e.Err }

// Encode serializes vars. Identical input always yields identical bytes.
func Encode(vars map[string]interpreter.Value) ([]byte, error) {
	doc := document{Version: version, Vars: make(map[string]entry, len(vars))}
	for name, v := range vars {
		e, err := toEntry(v, map[*interpreter.List]bool{})
		if err != nil {
			if errors.Is(err, errCycle) {
				return nil, &Error{Key: i18n.ErrSnapshotCycle, Args: []any{name}, Err: err}
			}
			return nil, err
		}
		doc.Vars[name] = e
	}
	return encMode.Marshal(doc)
}

// Decode deserializes data produced by Encode.
func Decode(data []byte) (map[string]interpreter.Value, error) {
	var doc document
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Key: i18n.ErrSnapshotDecode, Args: []any{err}, Err: err}
	}
	if doc.Version != version {
		err := fmt.Errorf("unsupported version %d", doc.Version)
		return nil, &Error{Key: i18n.ErrSnapshotDecode, Args: []any{err}, Err: err}
	}

	vars := make(map[string]interpreter.Value, len(doc.Vars))
	for name, e := range doc.Vars {
		v, err := fromEntry(e)
		if err != nil {
			return nil, err
		}
		vars[name] = v
	}
	return vars, nil
}

var errCycle = errors.New("list contains itself")

func toEntry(v interpreter.Value, seen map[*interpreter.List]bool) (entry, error) {
	e := entry{Kind: uint8(v.Kind())}
	switch v.Kind() {
	case interpreter.KindInt:
		e.Int = v.AsInt()
	case interpreter.KindFloat:
		e.Float = v.AsFloat()
	case interpreter.KindString:
		e.Str = v.AsString()
	case interpreter.KindBool:
		e.Bool = v.AsBool()
	case interpreter.KindList:
		l := v.AsList()
		if seen[l] {
			return entry{}, errCycle
		}
		seen[l] = true
		defer delete(seen, l)

		for _, elem := range l.Elements {
			child, err := toEntry(elem, seen)
			if err != nil {
				return entry{}, err
			}
			e.List = append(e.List, child)
		}
	}
	return e, nil
}

func fromEntry(e entry) (interpreter.Value, error) {
	switch interpreter.Kind(e.Kind) {
	case interpreter.KindNone:
		return interpreter.None, nil
	case interpreter.KindInt:
		return interpreter.NewInt(e.Int), nil
	case interpreter.KindFloat:
		return interpreter.NewFloat(e.Float), nil
	case interpreter.KindString:
		return interpreter.NewString(e.Str), nil
	case interpreter.KindBool:
		return interpreter.NewBool(e.Bool), nil
	case interpreter.KindList:
		elems := make([]interpreter.Value, len(e.List))
		for i, child := range e.List {
			v, err := fromEntry(child)
			if err != nil {
				return interpreter.None, err
			}
			elems[i] = v
		}
		return interpreter.NewList(elems...), nil
	}
	return interpreter.None, &Error{Key: i18n.ErrSnapshotKind, Args: []any{e.Kind}}
}

// Save writes every variable of in to path and returns how many were saved.
func Save(path string, in *interpreter.Interpreter) (int, error) {
	names := in.Vars()
	vars := make(map[string]interpreter.Value, len(names))
	for _, name := range names {
		vars[name], _ = in.Get(name)
	}

	data, err := Encode(vars)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, err
	}
	return len(vars), nil
}

// Load reads path and binds its variables in in, replacing existing ones with
// the same name. It returns the loaded names, sorted.
func Load(path string, in *interpreter.Interpreter) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	vars, err := Decode(data)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(vars))
	for name, v := range vars {
		in.Set(name, v)
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
