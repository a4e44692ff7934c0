package mediatype

import "testing"

func TestIsImageEntry(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.jpg", true},
		{"img/Photo.PNG", true},
		{"deep/dir/x.JpEg", true},
		{"anim.gif", true},
		{"pic.webp", true},
		{"pic.avif", true},
		{"pic.bmp", true},
		{".png", true},
		{"readme.md", false},
		{"png", false},
		{"archive.tar.gz", false},
		{"dir.png/readme", false},
		{"trailingdot.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImageEntry(tt.name); got != tt.want {
				t.Errorf("IsImageEntry(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		base string
		want bool
	}{
		{"a.JPG", true},
		{"B.png", true},
		{"..png", true},
		{".png", false},
		{"c.txt", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			if got := IsImageFile(tt.base); got != tt.want {
				t.Errorf("IsImageFile(%q) = %v, want %v", tt.base, got, tt.want)
			}
		})
	}
}

func TestMIMETypeForEntry(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.jpg", "image/jpeg"},
		{"a.JPEG", "image/jpeg"},
		{"b.png", "image/png"},
		{"c.gif", "image/gif"},
		{"d.webp", "image/webp"},
		{"e.avif", "image/avif"},
		{"f.BMP", "image/bmp"},
		{"notes.txt", Fallback},
		{"noext", Fallback},
		{"png", Fallback},
		{"", Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MIMETypeForEntry(tt.name); got != tt.want {
				t.Errorf("MIMETypeForEntry(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestExtensions_AllMapped(t *testing.T) {
	exts := Extensions()
	if len(exts) != len(mimeTypes) {
		t.Fatalf("Extensions() has %d entries, table has %d", len(exts), len(mimeTypes))
	}
	for _, ext := range exts {
		if !IsRecognized(ext) {
			t.Errorf("IsRecognized(%q) = false", ext)
		}
		if MIMEType(ext) == Fallback {
			t.Errorf("MIMEType(%q) fell back", ext)
		}
	}
}

func TestSniff(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
	if got := Sniff(png); got != "image/png" {
		t.Errorf("Sniff(png header) = %q, want image/png", got)
	}

	if got := Sniff([]byte("just some text")); got != "" {
		t.Errorf("Sniff(text) = %q, want empty", got)
	}
}
