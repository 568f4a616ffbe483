package solutions

import (
	"encoding/json"
	"fmt"
	"strings"
)

// HandlerKind tags the platform mechanism backing a setting.
type HandlerKind string

const (
	// HandlerProcess observes whether a named process is in a requested
	// run state.
	HandlerProcess HandlerKind = "process"
	// HandlerKeyValue reads and writes a registry-style key/value store.
	HandlerKeyValue HandlerKind = "keyvalue"
)

// ProcessState is the run state a process handler checks for.
type ProcessState int

const (
	StateRunning ProcessState = iota
	StateNotRunning
)

// ParseProcessState converts a configured enum name, case-insensitively.
func ParseProcessState(s string) (ProcessState, error) {
	switch strings.ToLower(s) {
	case "running":
		return StateRunning, nil
	case "notrunning":
		return StateNotRunning, nil
	default:
		return StateRunning, fmt.Errorf("unknown process state: %q (expected running or notRunning)", s)
	}
}

// ValueType declares how a key/value handler's raw store value is typed.
type ValueType string

const (
	ValueString  ValueType = "string"
	ValueInteger ValueType = "integer"
	ValueBoolean ValueType = "boolean"
)

// ProcessHandler is the process-run-state variant.
type ProcessHandler struct {
	Exe   string
	State ProcessState
}

// KeyValueHandler is the registry-like store variant.
type KeyValueHandler struct {
	Root      string
	Key       string
	Name      string
	ValueType ValueType
}

// HandlerDescription is the closed variant set of setting backings: a kind
// tag plus exactly one populated variant. Decoding a malformed document
// fails instead of producing a partially populated description.
type HandlerDescription struct {
	Kind     HandlerKind
	Process  *ProcessHandler
	KeyValue *KeyValueHandler
}

// Equal reports structural equality: same kind, same variant fields.
func (d HandlerDescription) Equal(o HandlerDescription) bool {
	if d.Kind != o.Kind {
		return false
	}
	switch d.Kind {
	case HandlerProcess:
		return d.Process != nil && o.Process != nil && *d.Process == *o.Process
	case HandlerKeyValue:
		return d.KeyValue != nil && o.KeyValue != nil && *d.KeyValue == *o.KeyValue
	default:
		return false
	}
}

// rawHandler is the JSON shape of a handler description document.
type rawHandler struct {
	Kind      string  `json:"kind"`
	Exe       *string `json:"exe"`
	State     *string `json:"state"`
	Root      string  `json:"root"`
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	ValueType string  `json:"valueType"`
}

// UnmarshalJSON decodes and validates a handler description.
func (d *HandlerDescription) UnmarshalJSON(b []byte) error {
	var raw rawHandler
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch HandlerKind(strings.ToLower(raw.Kind)) {
	case HandlerProcess:
		if raw.Exe == nil || *raw.Exe == "" {
			return fmt.Errorf("process handler: missing exe")
		}
		if raw.State == nil {
			return fmt.Errorf("process handler: missing state")
		}
		state, err := ParseProcessState(*raw.State)
		if err != nil {
			return fmt.Errorf("process handler: %w", err)
		}
		*d = HandlerDescription{
			Kind:    HandlerProcess,
			Process: &ProcessHandler{Exe: *raw.Exe, State: state},
		}
		return nil

	case HandlerKeyValue:
		if raw.Root == "" || raw.Key == "" || raw.Name == "" {
			return fmt.Errorf("keyvalue handler: root, key, and name are required")
		}
		vt := ValueType(strings.ToLower(raw.ValueType))
		switch vt {
		case "":
			vt = ValueString
		case ValueString, ValueInteger, ValueBoolean:
		default:
			return fmt.Errorf("keyvalue handler: unknown value type %q", raw.ValueType)
		}
		*d = HandlerDescription{
			Kind: HandlerKeyValue,
			KeyValue: &KeyValueHandler{
				Root:      raw.Root,
				Key:       raw.Key,
				Name:      raw.Name,
				ValueType: vt,
			},
		}
		return nil

	default:
		return fmt.Errorf("unknown handler kind: %q", raw.Kind)
	}
}
