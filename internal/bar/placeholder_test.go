package bar

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestResolvePlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		template string
		inv      Invocation
		want     string
		ok       bool
	}{
		{
			name:     "no tokens unchanged",
			template: "--profile work",
			inv:      Invocation{},
			want:     "--profile work",
			ok:       true,
		},
		{
			name:     "button token",
			template: "--zoom {{button}}",
			inv:      Invocation{Source: "150"},
			want:     "--zoom 150",
			ok:       true,
		},
		{
			name:     "state token on",
			template: "{{state}}",
			inv:      Invocation{ToggleState: boolPtr(true)},
			want:     "on",
			ok:       true,
		},
		{
			name:     "state token off",
			template: "--mode={{state}}",
			inv:      Invocation{ToggleState: boolPtr(false)},
			want:     "--mode=off",
			ok:       true,
		},
		{
			name:     "button token without source",
			template: "{{button}}",
			inv:      Invocation{},
			ok:       false,
		},
		{
			name:     "state token without toggle state",
			template: "{{state}}",
			inv:      Invocation{Source: "x"},
			ok:       false,
		},
		{
			name:     "unrecognized token passes through",
			template: "{{mystery}}",
			inv:      Invocation{},
			want:     "{{mystery}}",
			ok:       true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolvePlaceholders(tt.template, tt.inv)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
