package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGetSecureDownloadURL_SignatureVerifies(t *testing.T) {
	svc := NewStorageService(nil, "demo", "topsecret")

	url, err := svc.GetSecureDownloadURL(context.Background(), "image", "savora/avatars/u1", 15*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// https://res.cloudinary.com/<cloud>/<type>/authenticated/s--<sig>--/expires_<ts>/<publicID>
	parts := strings.Split(url, "/")
	if len(parts) < 9 {
		t.Fatalf("unexpected URL shape: %s", url)
	}
	if parts[3] != "demo" || parts[4] != "image" || parts[5] != "authenticated" {
		t.Fatalf("URL path segments wrong: %s", url)
	}

	sig := strings.TrimSuffix(strings.TrimPrefix(parts[6], "s--"), "--")
	expiresAt, err := strconv.ParseInt(strings.TrimPrefix(parts[7], "expires_"), 10, 64)
	if err != nil {
		t.Fatalf("could not parse expiry from %s: %v", url, err)
	}
	publicID := strings.Join(parts[8:], "/")
	if publicID != "savora/avatars/u1" {
		t.Errorf("public ID in URL = %q, want savora/avatars/u1", publicID)
	}

	h := sha1.Sum([]byte(fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, publicID, "topsecret")))
	if want := hex.EncodeToString(h[:]); sig != want {
		t.Errorf("signature = %s, want %s", sig, want)
	}

	wantExpiry := time.Now().Add(15 * time.Minute).Unix()
	if diff := wantExpiry - expiresAt; diff < 0 || diff > 5 {
		t.Errorf("expiry %d too far from expected %d", expiresAt, wantExpiry)
	}
}

func TestGetSecureDownloadURL_SignatureBindsPublicID(t *testing.T) {
	svc := NewStorageService(nil, "demo", "topsecret")

	a, err := svc.GetSecureDownloadURL(context.Background(), "video", "savora/videos/a", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := svc.GetSecureDownloadURL(context.Background(), "video", "savora/videos/b", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sigOf := func(url string) string {
		parts := strings.Split(url, "/")
		return parts[6]
	}
	if sigOf(a) == sigOf(b) {
		t.Error("different assets produced the same signature")
	}
}
