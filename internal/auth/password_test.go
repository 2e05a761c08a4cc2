package auth

import "testing"

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("correct horse battery staple")

	if !VerifyPassword("correct horse battery staple", digest) {
		t.Fatal("expected matching password to verify")
	}
	if VerifyPassword("wrong password", digest) {
		t.Fatal("expected mismatched password to fail")
	}
	if VerifyPassword("anything", "") {
		t.Fatal("expected empty stored digest to fail")
	}
}

func TestVerifyPasswordDigestCase(t *testing.T) {
	// Digests pasted into env vars sometimes arrive upper-cased.
	digest := HashPassword("hunter2")
	upper := ""
	for _, c := range digest {
		if c >= 'a' && c <= 'f' {
			upper += string(c - 32)
		} else {
			upper += string(c)
		}
	}
	if !VerifyPassword("hunter2", upper) {
		t.Fatal("expected upper-cased digest to verify")
	}
}

func TestHashPasswordKnownVector(t *testing.T) {
	// SHA-256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := HashPassword("abc"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
