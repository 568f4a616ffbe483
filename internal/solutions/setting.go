package solutions

import (
	"fmt"
	"strconv"

	"github.com/mj1618/deskbar/internal/platform"
)

// Setting is a named, gettable/settable/incrementable value identified by a
// solution+name pair and backed by exactly one handler description.
type Setting struct {
	SolutionID string
	Name       string
	Handler    HandlerDescription
}

// ID returns the fully qualified setting id, "solution/name".
func (s *Setting) ID() string {
	return s.SolutionID + "/" + s.Name
}

// Get reads the setting's current value through its handler. For a process
// handler the value is whether the named process is currently in the
// requested run state.
func (s *Setting) Get(p *platform.Provider) (interface{}, error) {
	switch s.Handler.Kind {
	case HandlerProcess:
		h := s.Handler.Process
		running, err := p.Processes.Running(h.Exe)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", s.ID(), err)
		}
		return running == (h.State == StateRunning), nil

	case HandlerKeyValue:
		h := s.Handler.KeyValue
		raw, ok, err := p.Store.Get(h.Root, h.Key, h.Name)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", s.ID(), err)
		}
		if !ok {
			return nil, fmt.Errorf("setting %s: value not set", s.ID())
		}
		return convertFromStore(raw, h.ValueType)

	default:
		return nil, fmt.Errorf("setting %s: unknown handler kind %q", s.ID(), s.Handler.Kind)
	}
}

// Set writes a new value through the handler. Process handlers are
// observational only; Set on them is unsupported.
func (s *Setting) Set(p *platform.Provider, value interface{}) error {
	switch s.Handler.Kind {
	case HandlerProcess:
		return fmt.Errorf("setting %s: process handlers do not support set", s.ID())

	case HandlerKeyValue:
		h := s.Handler.KeyValue
		raw, err := convertToStore(value, h.ValueType)
		if err != nil {
			return fmt.Errorf("setting %s: %v", s.ID(), err)
		}
		if err := p.Store.Set(h.Root, h.Key, h.Name, raw); err != nil {
			return fmt.Errorf("setting %s: %w", s.ID(), err)
		}
		return nil

	default:
		return fmt.Errorf("setting %s: unknown handler kind %q", s.ID(), s.Handler.Kind)
	}
}

// Increment adds delta to an integer-typed setting. Non-integer value types
// and process handlers are unsupported.
func (s *Setting) Increment(p *platform.Provider, delta int) error {
	if s.Handler.Kind != HandlerKeyValue {
		return fmt.Errorf("setting %s: %s handlers do not support increment", s.ID(), s.Handler.Kind)
	}
	h := s.Handler.KeyValue
	if h.ValueType != ValueInteger {
		return fmt.Errorf("setting %s: increment requires an integer value type", s.ID())
	}

	current := 0
	raw, ok, err := p.Store.Get(h.Root, h.Key, h.Name)
	if err != nil {
		return fmt.Errorf("setting %s: %w", s.ID(), err)
	}
	if ok {
		current, err = strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("setting %s: stored value %q is not an integer", s.ID(), raw)
		}
	}

	if err := p.Store.Set(h.Root, h.Key, h.Name, strconv.Itoa(current+delta)); err != nil {
		return fmt.Errorf("setting %s: %w", s.ID(), err)
	}
	return nil
}

func convertFromStore(raw string, vt ValueType) (interface{}, error) {
	switch vt {
	case ValueInteger:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("stored value %q is not an integer", raw)
		}
		return n, nil
	case ValueBoolean:
		switch raw {
		case "1", "true":
			return true, nil
		case "0", "false":
			return false, nil
		}
		return nil, fmt.Errorf("stored value %q is not a boolean", raw)
	default:
		return raw, nil
	}
}

func convertToStore(value interface{}, vt ValueType) (string, error) {
	switch vt {
	case ValueInteger:
		switch v := value.(type) {
		case int:
			return strconv.Itoa(v), nil
		case float64:
			return strconv.Itoa(int(v)), nil
		case string:
			if _, err := strconv.Atoi(v); err == nil {
				return v, nil
			}
		}
		return "", fmt.Errorf("value %v is not an integer", value)
	case ValueBoolean:
		switch v := value.(type) {
		case bool:
			if v {
				return "1", nil
			}
			return "0", nil
		case string:
			switch v {
			case "1", "true", "on":
				return "1", nil
			case "0", "false", "off":
				return "0", nil
			}
		}
		return "", fmt.Errorf("value %v is not a boolean", value)
	default:
		return fmt.Sprint(value), nil
	}
}
