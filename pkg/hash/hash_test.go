package hash

import (
	"testing"
)

func TestSHA256Hex(t *testing.T) {
	// Known SHA256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	got := SHA256Hex("hello")
	if got != want {
		t.Errorf("SHA256Hex(\"hello\") = %s, want %s", got, want)
	}
}

func TestSHA256Hex_Empty(t *testing.T) {
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	got := SHA256Hex("")
	if got != want {
		t.Errorf("SHA256Hex(\"\") = %s, want %s", got, want)
	}
}

func TestPrefix(t *testing.T) {
	fullHash := SHA256Hex("dQw4w9WgXcQ")

	tests := []struct {
		name      string
		input     string
		prefixLen int
		want      string
	}{
		{"4 char prefix", "dQw4w9WgXcQ", 4, fullHash[:4]},
		{"16 char prefix", "dQw4w9WgXcQ", 16, fullHash[:16]},
		{"full hash if prefix too long", "dQw4w9WgXcQ", 100, fullHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prefix(tt.input, tt.prefixLen)
			if got != tt.want {
				t.Errorf("Prefix(%q, %d) = %s, want %s", tt.input, tt.prefixLen, got, tt.want)
			}
		})
	}
}

func TestKeyFingerprint(t *testing.T) {
	fp := KeyFingerprint("AIzaSyExampleKey")
	if len(fp) != 16 {
		t.Errorf("KeyFingerprint length = %d, want 16", len(fp))
	}
	if fp == KeyFingerprint("AIzaSyOtherKey") {
		t.Error("different keys should have different fingerprints")
	}
}

func TestHashIP(t *testing.T) {
	ip := "192.168.1.1"
	salt := "random-salt-value"
	hash := HashIP(ip, salt)

	if len(hash) != 12 {
		t.Errorf("HashIP length = %d, want 12", len(hash))
	}
	if hash == HashIP(ip, "different-salt") {
		t.Error("different salts should produce different hashes")
	}
	if hash == HashIP("10.0.0.1", salt) {
		t.Error("different IPs should produce different hashes")
	}
}
