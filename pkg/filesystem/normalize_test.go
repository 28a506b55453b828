package filesystem

import "testing"

func TestNormalizeRelativePathComposesComponents(t *testing.T) {
	got := NormalizeRelativePath("sub/dir/file.txt")
	want := "sub/dir/file.txt"
	if got != want {
		t.Errorf("NormalizeRelativePath(%q) = %q, want %q", "sub/dir/file.txt", got, want)
	}
}

func TestNormalizeRelativePathNFDToNFC(t *testing.T) {
	// NFD form: "e" (U+0065) followed by a standalone combining acute
	// accent (U+0301), the way HFS+ stores an accented filename.
	decomposed := "café.txt"
	// NFC form: the single precomposed "é" code point.
	composed := "café.txt"

	if decomposed == composed {
		t.Fatal("test fixture error: decomposed and composed forms compare equal as byte strings")
	}

	got := NormalizeRelativePath(decomposed)
	if got != composed {
		t.Errorf("NormalizeRelativePath(%q) = %q, want %q", decomposed, got, composed)
	}
}
