package httpapi

import "testing"

func Test_bearerToken(t *testing.T) {
	t.Parallel()

	got, ok := bearerToken("Bearer abc.def.ghi")
	if !ok || got != "abc.def.ghi" {
		t.Fatalf("ok: got=%q ok=%v", got, ok)
	}

	got, ok = bearerToken("bearer abc.def.ghi")
	if !ok || got != "abc.def.ghi" {
		t.Fatalf("case-insensitive scheme: got=%q ok=%v", got, ok)
	}

	if _, ok := bearerToken("Basic foo"); ok {
		t.Fatalf("want failure on non-bearer scheme")
	}
	if _, ok := bearerToken("Bearer   "); ok {
		t.Fatalf("want failure on blank token")
	}
	if _, ok := bearerToken(""); ok {
		t.Fatalf("want failure on empty header")
	}
	if _, ok := bearerToken("Bearer"); ok {
		t.Fatalf("want failure on scheme without token")
	}
}
