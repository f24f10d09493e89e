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

func TestRunEmptyValidatorList(t *testing.T) {
	stateID := repeat("00", 32) + "00000000" // 36 bytes of zeros, index LE
	args := stateID + repeat("99", 32)       // trustee_hash, no validators: 68 bytes
	path := writeFixture(t, `{
		"script": {"code_hash": "0x`+repeat("bb", 32)+`", "args": "0x`+args+`"},
		"inputs": [{"cell": {"capacity": 10, "lock": {"code_hash": "0x`+repeat("a0", 32)+`", "args": ""}, "data": ""}, "out_point": {"tx_hash": "0x`+repeat("00", 32)+`", "index": 0}}],
		"outputs": [{"capacity": 10, "lock": {"code_hash": "0x`+repeat("a0", 32)+`", "args": ""}, "type": {"code_hash": "0x`+repeat("bb", 32)+`", "args": "0x`+args+`"}, "data": ""}],
		"witnesses": [],
		"header_deps": []
	}`)

	code := run([]string{"-fixture", path})
	if code != 12 {
		t.Fatalf("got exit code %d, want 12 (EmptyValidatorList)", code)
	}
}

func TestRunBadParamsPath(t *testing.T) {
	path := writeFixture(t, `{"script":{"code_hash":"0x`+repeat("bb", 32)+`","args":"0x"},"inputs":[],"outputs":[],"witnesses":[],"header_deps":[]}`)
	code := run([]string{"-fixture", path, "-params", "/nonexistent/params.json"})
	if code == 0 {
		t.Fatal("expected nonzero exit code for unreadable params file")
	}
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
