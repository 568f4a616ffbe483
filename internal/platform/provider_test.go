package platform

import "testing"

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	// Temporarily clear the provider func to simulate an unsupported platform.
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	if err != ErrUnsupported {
		t.Errorf("NewProvider() error = %v, want ErrUnsupported", err)
	}
}

func TestNewProvider_UsesRegisteredFunc(t *testing.T) {
	orig := NewProviderFunc
	want := &Provider{}
	NewProviderFunc = func() (*Provider, error) { return want, nil }
	defer func() { NewProviderFunc = orig }()

	got, err := NewProvider()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Error("NewProvider() did not return the registered provider")
	}
}
