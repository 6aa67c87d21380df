package textmatch

import (
	"reflect"
	"testing"
)

func TestCompile_CaseInsensitiveByDefault(t *testing.T) {
	m, err := Compile(`lol`, false)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !m.Matches("LOL that was great") {
		t.Fatal("expected case-insensitive match")
	}
	if m.Keyword() != "lol" {
		t.Fatalf("keyword = %q", m.Keyword())
	}
}

func TestCompile_CaseSensitive(t *testing.T) {
	m, err := Compile(`lol`, true)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if m.Matches("LOL") {
		t.Fatal("case-sensitive matcher must not match upper case")
	}
	if !m.Matches("lol") {
		t.Fatal("expected exact-case match")
	}
}

func TestCompile_BadPattern(t *testing.T) {
	if _, err := Compile(`(`, false); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestFindAll(t *testing.T) {
	m, err := Compile(`w+`, false)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got := m.FindAll("www other wwww")
	if !reflect.DeepEqual(got, []int{0, 10}) {
		t.Fatalf("FindAll = %v, want [0 10]", got)
	}
	if m.FindAll("nothing here") != nil {
		t.Fatal("expected nil for no matches")
	}
}

func TestCompileSet(t *testing.T) {
	matchers, err := CompileSet([]string{`草`, `！+`}, false)
	if err != nil {
		t.Fatalf("compile set: %v", err)
	}
	if len(matchers) != 2 {
		t.Fatalf("expected 2 matchers, got %d", len(matchers))
	}
	if matchers[0].Keyword() != "草" || matchers[1].Keyword() != "！+" {
		t.Fatal("order must be preserved")
	}

	if _, err := CompileSet([]string{`草`, `[`}, false); err == nil {
		t.Fatal("expected error for bad member pattern")
	}
}
