package passhash

import "testing"

// Low iteration count keeps the test fast; correctness does not depend on it.
const testIters = 1_000

func TestHashVerify_RoundTrip(t *testing.T) {
	enc, err := HashPasswordWithIters("s3cret-passw0rd", testIters)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	ok, err := VerifyPassword("s3cret-passw0rd", enc)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !ok {
		t.Fatalf("correct password did not verify")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	enc, err := HashPasswordWithIters("right", testIters)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	ok, err := VerifyPassword("wrong", enc)
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if ok {
		t.Fatalf("wrong password verified")
	}
}

func TestHash_SaltedNotDeterministic(t *testing.T) {
	a, _ := HashPasswordWithIters("same", testIters)
	b, _ := HashPasswordWithIters("same", testIters)
	if a == b {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
}

func TestVerify_MalformedEncodings(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"pbkdf2_sha256$abc$def",
		"pbkdf2_sha256$0$c2FsdA$a2V5",
	}
	for _, c := range cases {
		if ok, err := VerifyPassword("x", c); err == nil || ok {
			t.Fatalf("expected error for %q", c)
		}
	}
}
