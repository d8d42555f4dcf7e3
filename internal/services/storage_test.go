package services

import "testing"

func newTestStore(t *testing.T, publicURL string, useSSL bool) *PhotoStorage {
	t.Helper()
	store, err := NewPhotoStorage("localhost:9000", "access", "secret", "house-photos", "us-east-1", publicURL, useSSL)
	if err != nil {
		t.Fatalf("NewPhotoStorage failed: %v", err)
	}
	return store
}

func TestPhotoURLAndKeyRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		publicURL string
		useSSL    bool
		wantURL   string
	}{
		{"endpoint derived", "", false, "http://localhost:9000/house-photos/houses/7/abc.jpg"},
		{"endpoint derived ssl", "", true, "https://localhost:9000/house-photos/houses/7/abc.jpg"},
		{"public url override", "https://cdn.example.com/photos", false, "https://cdn.example.com/photos/houses/7/abc.jpg"},
	}

	const key = "houses/7/abc.jpg"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, tt.publicURL, tt.useSSL)

			url := store.PhotoURL(key)
			if url != tt.wantURL {
				t.Errorf("PhotoURL(%q) = %q, want %q", key, url, tt.wantURL)
			}
			if got := store.PhotoKey(url); got != key {
				t.Errorf("PhotoKey(%q) = %q, want %q", url, got, key)
			}
		})
	}
}

func TestPhotoKeyRejectsForeignURLs(t *testing.T) {
	store := newTestStore(t, "", false)

	for _, url := range []string{
		"https://elsewhere.example.com/houses/7/abc.jpg",
		"http://localhost:9000/other-bucket/abc.jpg",
		"",
	} {
		if got := store.PhotoKey(url); got != "" {
			t.Errorf("PhotoKey(%q) = %q, want empty", url, got)
		}
	}
}
