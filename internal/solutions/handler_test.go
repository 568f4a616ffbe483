package solutions

import (
	"encoding/json"
	"testing"
)

func TestHandlerDescription_DecodeProcess(t *testing.T) {
	var d HandlerDescription
	err := json.Unmarshal([]byte(`{"kind":"process","exe":"magnify.exe","state":"Running"}`), &d)
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind != HandlerProcess {
		t.Errorf("Kind = %q", d.Kind)
	}
	if d.Process == nil || d.Process.Exe != "magnify.exe" || d.Process.State != StateRunning {
		t.Errorf("Process = %+v", d.Process)
	}
}

func TestHandlerDescription_DecodeProcessStateCaseInsensitive(t *testing.T) {
	var d HandlerDescription
	err := json.Unmarshal([]byte(`{"kind":"process","exe":"magnify.exe","state":"notRunning"}`), &d)
	if err != nil {
		t.Fatal(err)
	}
	if d.Process.State != StateNotRunning {
		t.Errorf("State = %v, want StateNotRunning", d.Process.State)
	}
}

func TestHandlerDescription_DecodeFailures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing exe", `{"kind":"process","state":"running"}`},
		{"empty exe", `{"kind":"process","exe":"","state":"running"}`},
		{"missing state", `{"kind":"process","exe":"magnify.exe"}`},
		{"bad state", `{"kind":"process","exe":"magnify.exe","state":"paused"}`},
		{"unknown kind", `{"kind":"dbus","exe":"x"}`},
		{"keyvalue missing key", `{"kind":"keyvalue","root":"HKCU","name":"v"}`},
		{"keyvalue bad value type", `{"kind":"keyvalue","root":"HKCU","key":"k","name":"v","valueType":"float"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d HandlerDescription
			if err := json.Unmarshal([]byte(tt.doc), &d); err == nil {
				t.Errorf("decode succeeded: %+v", d)
			}
		})
	}
}

func TestHandlerDescription_DecodeKeyValue(t *testing.T) {
	var d HandlerDescription
	err := json.Unmarshal([]byte(`{"kind":"keyvalue","root":"HKCU","key":"Software\\Deskbar","name":"zoom","valueType":"integer"}`), &d)
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind != HandlerKeyValue {
		t.Errorf("Kind = %q", d.Kind)
	}
	if d.KeyValue.ValueType != ValueInteger {
		t.Errorf("ValueType = %q", d.KeyValue.ValueType)
	}
}

func TestHandlerDescription_ValueTypeDefaultsToString(t *testing.T) {
	var d HandlerDescription
	err := json.Unmarshal([]byte(`{"kind":"keyvalue","root":"HKCU","key":"k","name":"v"}`), &d)
	if err != nil {
		t.Fatal(err)
	}
	if d.KeyValue.ValueType != ValueString {
		t.Errorf("ValueType = %q, want string", d.KeyValue.ValueType)
	}
}

func TestHandlerDescription_Equal(t *testing.T) {
	a := HandlerDescription{Kind: HandlerProcess, Process: &ProcessHandler{Exe: "a.exe", State: StateRunning}}
	b := HandlerDescription{Kind: HandlerProcess, Process: &ProcessHandler{Exe: "a.exe", State: StateRunning}}
	c := HandlerDescription{Kind: HandlerProcess, Process: &ProcessHandler{Exe: "a.exe", State: StateNotRunning}}

	if !a.Equal(b) {
		t.Error("identical descriptions should be equal")
	}
	if a.Equal(c) {
		t.Error("different state should not be equal")
	}
	kv := HandlerDescription{Kind: HandlerKeyValue, KeyValue: &KeyValueHandler{Root: "HKCU", Key: "k", Name: "v", ValueType: ValueString}}
	if a.Equal(kv) {
		t.Error("different kinds should not be equal")
	}
}
