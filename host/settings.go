// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/pkg/errors"
)

type settings struct {
	HexMode         bool   `doc:"hexadecimal input mode"`
	MemDumpBytes    int    `doc:"default number of memory bytes to dump"`
	DisasmLines     int    `doc:"default number of lines to disassemble"`
	MaxStepLines    int    `doc:"max lines to disassemble when stepping"`
	NextDisasmAddr  uint16 `doc:"address of next disassembly"`
	NextMemDumpAddr uint16 `doc:"address of next memory dump"`
	Trace           bool   `doc:"print a trace line before each step"`
	Unstable        bool   `doc:"execute unstable unofficial opcodes"`
}

func newSettings() *settings {
	return &settings{
		MemDumpBytes: 64,
		DisasmLines:  10,
		MaxStepLines: 20,
		Unstable:     true,
	}
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	t := reflect.TypeFor[settings]()
	settingsFields = make([]settingsField, t.NumField())
	for i := range settingsFields {
		f := t.Field(i)
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			doc:   f.Tag.Get("doc"),
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

// Display writes every setting, its value and its description.
func (s *settings) Display(w io.Writer) {
	v := reflect.ValueOf(s).Elem()
	for _, f := range settingsFields {
		fv := v.Field(f.index)
		var str string
		switch f.kind {
		case reflect.Uint16:
			str = fmt.Sprintf("    %-16s $%04X", f.name, fv.Uint())
		default:
			str = fmt.Sprintf("    %-16s %v", f.name, fv.Interface())
		}
		fmt.Fprintf(w, "%-28s (%s)\n", str, f.doc)
	}
}

// Lookup finds a setting by unambiguous prefix and returns its full name.
func (s *settings) Lookup(key string) (string, error) {
	f, err := s.find(key)
	if err != nil {
		return "", err
	}
	return f.name, nil
}

// Set parses value according to the setting's type and stores it. Numeric
// settings are parsed with eval.
func (s *settings) Set(key, value string, eval func(expr string) (int64, error)) error {
	f, err := s.find(key)
	if err != nil {
		return err
	}

	out := reflect.ValueOf(s).Elem().Field(f.index)
	switch f.kind {
	case reflect.Bool:
		b, err := stringToBool(value)
		if err != nil {
			return err
		}
		out.SetBool(b)
	case reflect.Int:
		n, err := eval(value)
		if err != nil {
			return err
		}
		if n < 0 {
			return errors.Errorf("setting '%s' must not be negative", f.name)
		}
		out.SetInt(n)
	case reflect.Uint16:
		n, err := eval(value)
		if err != nil {
			return err
		}
		out.SetUint(uint64(uint16(n)))
	default:
		return errors.Errorf("setting '%s' has unsupported type", f.name)
	}
	return nil
}

func (s *settings) find(key string) (*settingsField, error) {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	switch err {
	case nil:
		return f, nil
	case prefixtree.ErrPrefixAmbiguous:
		return nil, errors.Errorf("setting '%s' is ambiguous", key)
	default:
		return nil, errors.Errorf("setting '%s' not found", key)
	}
}
