package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tx.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestRunMissingFixtureFlag(t *testing.T) {
	if code := run(nil); code == 0 {
		t.Fatal("expected nonzero exit code when -fixture is missing")
	}
}

func TestRunWrongArgsLength(t *testing.T) {
	path := writeFixture(t, `{
		"script": {"code_hash": "0x`+repeat("aa", 32)+`", "args": "0x1234"},
		"inputs": [{"cell": {"capacity": 1, "lock": {"code_hash": "0x`+repeat("bb", 32)+`", "args": ""}, "data": ""}, "out_point": {"tx_hash": "0x`+repeat("cc", 32)+`", "index": 0}}],
		"outputs": [],
		"witnesses": [],
		"header_deps": []
	}`)

	code := run([]string{"-fixture", path})
	if code != 13 {
		t.Fatalf("got exit code %d, want 13 (WrongScriptArgsLength)", code)
	}
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
