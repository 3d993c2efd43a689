// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
)

// OpKind is the verb of a script line
type OpKind int

const (
	OpInsert OpKind = iota
	OpDelete
	OpFind
	OpPrint
	OpCheck
	OpClear
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpFind:
		return "find"
	case OpPrint:
		return "print"
	case OpCheck:
		return "check"
	case OpClear:
		return "clear"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

var verbs = map[string]OpKind{
	"insert":   OpInsert,
	"add":      OpInsert,
	"i":        OpInsert,
	"delete":   OpDelete,
	"remove":   OpDelete,
	"del":      OpDelete,
	"d":        OpDelete,
	"find":     OpFind,
	"contains": OpFind,
	"f":        OpFind,
	"print":    OpPrint,
	"p":        OpPrint,
	"check":    OpCheck,
	"clear":    OpClear,
}

var (
	ErrUnknownVerb = errors.New("unknown operation")
	ErrMissingKey  = errors.New("operation needs at least one key")
	ErrUnexpected  = errors.New("operation takes no keys")
)

// Operation is a single step of a script. Key is empty for print, check
// and clear.
type Operation struct {
	Kind OpKind
	Key  string
	Line int
}

func (op Operation) String() string {
	if op.Key == "" {
		return op.Kind.String()
	}
	return op.Kind.String() + " " + op.Key
}

// ScriptError locates a parse failure in its source.
type ScriptError struct {
	Source string
	Line   int
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// splitLine tokenizes a line using shell quoting rules, so string keys with
// spaces can be written as "apple pie".
func splitLine(line string) ([]string, error) {
	return shellwords.Parse(line)
}

// ParseLine turns one script line into operations, one per key. Blank lines
// and comments produce none.
func ParseLine(line string) ([]Operation, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	parts, err := splitLine(trimmed)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, nil
	}

	kind, ok := verbs[strings.ToLower(parts[0])]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVerb, parts[0])
	}
	keys := parts[1:]

	switch kind {
	case OpPrint, OpCheck, OpClear:
		if len(keys) > 0 {
			return nil, fmt.Errorf("%s: %w", kind, ErrUnexpected)
		}
		return []Operation{{Kind: kind}}, nil
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("%s: %w", kind, ErrMissingKey)
	}
	ops := make([]Operation, 0, len(keys))
	for _, key := range keys {
		ops = append(ops, Operation{Kind: kind, Key: key})
	}
	return ops, nil
}

// ReadScript parses every line of r. name is used in error messages.
func ReadScript(r io.Reader, name string) ([]Operation, error) {
	var ops []Operation

	scanner := bufio.NewScanner(r)
	// Increase buffer size so very long lines of keys still parse
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		lineOps, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, &ScriptError{Source: name, Line: lineNo, Err: err}
		}
		for i := range lineOps {
			lineOps[i].Line = lineNo
		}
		ops = append(ops, lineOps...)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return ops, nil
}

// ReadScriptFile parses the script at path; "-" reads standard input.
func ReadScriptFile(path string) ([]Operation, error) {
	if path == "-" {
		return ReadScript(os.Stdin, "<stdin>")
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("script file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	return ReadScript(file, path)
}

// demoScript is the reference sequence shown by the demo command.
const demoScript = `# build the reference tree
insert 30 15 20 25 23 24 10 14 8 40 50 45 47 46 55
# 40 has two children, 45 takes its place
delete 40
print
check
`
