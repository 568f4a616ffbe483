package resolve

import "testing"

type fakeAssociations struct {
	schemes  map[string]string
	exts     map[string]string
	commands map[string]string
}

func (f fakeAssociations) SchemeHandler(scheme string) (string, bool) {
	id, ok := f.schemes[scheme]
	return id, ok
}

func (f fakeAssociations) ExtensionHandler(ext string) (string, bool) {
	id, ok := f.exts[ext]
	return id, ok
}

func (f fakeAssociations) HandlerCommand(handlerID string) (string, bool) {
	cmd, ok := f.commands[handlerID]
	return cmd, ok
}

func TestResolveDefault_BrowserFromScheme(t *testing.T) {
	p := newTestProvider()
	p.Associations = fakeAssociations{
		schemes:  map[string]string{"https": "EdgeHTM"},
		commands: map[string]string{"EdgeHTM": `"C:\Program Files\Edge\msedge.exe" --single-argument %1`},
	}

	target, ok := ResolveDefault(p, DefaultBrowser)
	if !ok {
		t.Fatal("browser resolution unavailable")
	}
	if target.Kind != KindExe {
		t.Errorf("Kind = %v, want KindExe", target.Kind)
	}
	if target.Path != `C:\Program Files\Edge\msedge.exe` {
		t.Errorf("Path = %q, want argument tokens stripped", target.Path)
	}
}

func TestResolveDefault_BrowserFallsBackToExtension(t *testing.T) {
	p := newTestProvider()
	p.Associations = fakeAssociations{
		exts:     map[string]string{".htm": "FirefoxHTML"},
		commands: map[string]string{"FirefoxHTML": `"C:\Program Files\Firefox\firefox.exe" -osint -url "%1"`},
	}

	target, ok := ResolveDefault(p, DefaultBrowser)
	if !ok {
		t.Fatal("browser resolution unavailable")
	}
	if target.Path != `C:\Program Files\Firefox\firefox.exe` {
		t.Errorf("Path = %q", target.Path)
	}
}

func TestResolveDefault_BrowserNeverUnavailable(t *testing.T) {
	p := newTestProvider()
	p.Associations = fakeAssociations{}

	target, ok := ResolveDefault(p, DefaultBrowser)
	if !ok {
		t.Fatal("browser resolution must not end in unavailable")
	}
	if target.Kind != KindShellAlias || target.Path != "https:" {
		t.Errorf("target = %+v, want the https: shell alias", target)
	}
}

func TestResolveDefault_BrowserSkipsHandlerWithoutCommand(t *testing.T) {
	// A registered handler with no command template continues the chain.
	p := newTestProvider()
	p.Associations = fakeAssociations{
		schemes:  map[string]string{"https": "GhostHandler"},
		exts:     map[string]string{".htm": "FirefoxHTML"},
		commands: map[string]string{"FirefoxHTML": `C:\ff\firefox.exe -url %1`},
	}

	target, ok := ResolveDefault(p, DefaultBrowser)
	if !ok {
		t.Fatal("browser resolution unavailable")
	}
	if target.Path != `C:\ff\firefox.exe` {
		t.Errorf("Path = %q, want the .htm fallback", target.Path)
	}
}

func TestResolveDefault_Email(t *testing.T) {
	p := newTestProvider()
	target, ok := ResolveDefault(p, DefaultEmail)
	if !ok {
		t.Fatal("email resolution unavailable")
	}
	if target.Kind != KindShellAlias || target.Path != "mailto:" {
		t.Errorf("target = %+v, want the mailto: shell alias", target)
	}
}

func TestParseDefaultKind(t *testing.T) {
	if k, err := ParseDefaultKind("Browser"); err != nil || k != DefaultBrowser {
		t.Errorf("ParseDefaultKind(Browser) = %v, %v", k, err)
	}
	if k, err := ParseDefaultKind("EMAIL"); err != nil || k != DefaultEmail {
		t.Errorf("ParseDefaultKind(EMAIL) = %v, %v", k, err)
	}
	if _, err := ParseDefaultKind("printer"); err == nil {
		t.Error("ParseDefaultKind(printer) should fail")
	}
}
