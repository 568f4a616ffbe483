package solutions

import (
	"errors"
	"testing"

	"github.com/mj1618/deskbar/internal/platform"
)

type fakeProcesses struct {
	running map[string]bool
}

func (f fakeProcesses) Windowed() ([]platform.ProcessInfo, error) { return nil, nil }
func (f fakeProcesses) Activate(int) error                        { return nil }
func (f fakeProcesses) Running(name string) (bool, error)         { return f.running[name], nil }

type fakeStore struct {
	values map[string]string
	setErr error
}

func storeKey(root, key, name string) string { return root + "|" + key + "|" + name }

func (f *fakeStore) Get(root, key, name string) (string, bool, error) {
	v, ok := f.values[storeKey(root, key, name)]
	return v, ok, nil
}

func (f *fakeStore) Set(root, key, name, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[storeKey(root, key, name)] = value
	return nil
}

func processSetting(exe string, state ProcessState) *Setting {
	return &Setting{
		SolutionID: "com.example.assist",
		Name:       "active",
		Handler:    HandlerDescription{Kind: HandlerProcess, Process: &ProcessHandler{Exe: exe, State: state}},
	}
}

func keyValueSetting(vt ValueType) *Setting {
	return &Setting{
		SolutionID: "com.example.assist",
		Name:       "zoom",
		Handler: HandlerDescription{
			Kind:     HandlerKeyValue,
			KeyValue: &KeyValueHandler{Root: "HKCU", Key: `Software\Assist`, Name: "zoom", ValueType: vt},
		},
	}
}

func TestSetting_GetProcessState(t *testing.T) {
	p := &platform.Provider{Processes: fakeProcesses{running: map[string]bool{"magnify.exe": true}}}

	got, err := processSetting("magnify.exe", StateRunning).Get(p)
	if err != nil {
		t.Fatal(err)
	}
	if got != true {
		t.Errorf("Get = %v, want true (process running, state Running)", got)
	}

	got, err = processSetting("magnify.exe", StateNotRunning).Get(p)
	if err != nil {
		t.Fatal(err)
	}
	if got != false {
		t.Errorf("Get = %v, want false (process running, state NotRunning)", got)
	}
}

func TestSetting_SetOnProcessHandlerUnsupported(t *testing.T) {
	p := &platform.Provider{Processes: fakeProcesses{}}
	if err := processSetting("magnify.exe", StateRunning).Set(p, true); err == nil {
		t.Error("set on a process handler must error")
	}
}

func TestSetting_KeyValueGetSet(t *testing.T) {
	store := &fakeStore{}
	p := &platform.Provider{Store: store}
	s := keyValueSetting(ValueInteger)

	if err := s.Set(p, 150); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(p)
	if err != nil {
		t.Fatal(err)
	}
	if got != 150 {
		t.Errorf("Get = %v (%T), want 150", got, got)
	}
}

func TestSetting_KeyValueBoolean(t *testing.T) {
	store := &fakeStore{}
	p := &platform.Provider{Store: store}
	s := keyValueSetting(ValueBoolean)

	if err := s.Set(p, true); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(p)
	if err != nil {
		t.Fatal(err)
	}
	if got != true {
		t.Errorf("Get = %v, want true", got)
	}
}

func TestSetting_GetUnsetValue(t *testing.T) {
	p := &platform.Provider{Store: &fakeStore{}}
	if _, err := keyValueSetting(ValueString).Get(p); err == nil {
		t.Error("get of an unset value must error")
	}
}

func TestSetting_Increment(t *testing.T) {
	store := &fakeStore{values: map[string]string{
		storeKey("HKCU", `Software\Assist`, "zoom"): "100",
	}}
	p := &platform.Provider{Store: store}
	s := keyValueSetting(ValueInteger)

	if err := s.Increment(p, 1); err != nil {
		t.Fatal(err)
	}
	if got, _ := store.values[storeKey("HKCU", `Software\Assist`, "zoom")]; got != "101" {
		t.Errorf("stored = %q, want 101", got)
	}

	if err := s.Increment(p, -2); err != nil {
		t.Fatal(err)
	}
	if got, _ := store.values[storeKey("HKCU", `Software\Assist`, "zoom")]; got != "99" {
		t.Errorf("stored = %q, want 99", got)
	}
}

func TestSetting_IncrementStartsAtZeroWhenUnset(t *testing.T) {
	store := &fakeStore{}
	p := &platform.Provider{Store: store}
	if err := keyValueSetting(ValueInteger).Increment(p, 5); err != nil {
		t.Fatal(err)
	}
	if got := store.values[storeKey("HKCU", `Software\Assist`, "zoom")]; got != "5" {
		t.Errorf("stored = %q, want 5", got)
	}
}

func TestSetting_IncrementUnsupportedKinds(t *testing.T) {
	p := &platform.Provider{Store: &fakeStore{}, Processes: fakeProcesses{}}

	if err := processSetting("x.exe", StateRunning).Increment(p, 1); err == nil {
		t.Error("increment on a process handler must error")
	}
	if err := keyValueSetting(ValueString).Increment(p, 1); err == nil {
		t.Error("increment on a string value must error")
	}
}

func TestSolutions_ParseAndLookup(t *testing.T) {
	doc := `{
		"solutions": [
			{
				"id": "com.example.magnifier",
				"settings": [
					{"name": "enabled", "handler": {"kind": "process", "exe": "magnify.exe", "state": "running"}},
					{"name": "zoom", "handler": {"kind": "keyvalue", "root": "HKCU", "key": "Software\\Magnifier", "name": "ZoomLevel", "valueType": "integer"}}
				]
			}
		]
	}`
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}

	setting, err := s.GetSetting("com.example.magnifier/zoom")
	if err != nil {
		t.Fatal(err)
	}
	if setting.Handler.Kind != HandlerKeyValue {
		t.Errorf("Kind = %q", setting.Handler.Kind)
	}

	if _, err := s.GetSetting("com.example.magnifier/missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("lookup of missing id: err = %v, want ErrNotFound", err)
	}

	ids := s.IDs()
	if len(ids) != 2 || ids[0] != "com.example.magnifier/enabled" {
		t.Errorf("IDs = %v", ids)
	}
}

func TestSolutions_ParseFailsOnMalformedHandler(t *testing.T) {
	doc := `{"solutions":[{"id":"s","settings":[{"name":"x","handler":{"kind":"process","state":"running"}}]}]}`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("missing exe must fail the whole load")
	}
}

func TestSolutions_ParseFailsOnDuplicate(t *testing.T) {
	doc := `{"solutions":[
		{"id":"s","settings":[
			{"name":"x","handler":{"kind":"keyvalue","root":"HKCU","key":"k","name":"v"}},
			{"name":"x","handler":{"kind":"keyvalue","root":"HKCU","key":"k","name":"v"}}
		]}
	]}`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("duplicate setting id must fail")
	}
}
