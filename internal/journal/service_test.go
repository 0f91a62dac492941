// ABOUTME: Tests for journal notes, captures, and media attachments.
package journal

import (
	"errors"
	"testing"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/store"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	eng, err := store.Open(store.Options{Schema: schema.Versions(), InMemory: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { eng.Close() })
	return NewService(eng)
}

func TestAddNoteRoundtrip(t *testing.T) {
	svc := setupService(t)

	n, err := svc.AddNote("Form check", "Depth improved", []string{"squat", "form"})
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}

	got, err := svc.GetNote(n.ID)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if got.Title != "Form check" || got.Type != models.NoteText {
		t.Errorf("note mismatch: got %+v", got)
	}
	if len(got.Tags) != 2 {
		t.Errorf("tags mismatch: got %v", got.Tags)
	}
}

func TestAttachMediaRequiresNote(t *testing.T) {
	svc := setupService(t)

	if _, err := svc.AttachMedia(999, "image/png", []byte{1}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error mismatch: got %v, want ErrNotFound", err)
	}
}

func TestCapturePhotoStoresNoteAndBlob(t *testing.T) {
	svc := setupService(t)

	blob := []byte{0x89, 0x50, 0x4e, 0x47}
	n, err := svc.CapturePhoto("image/png", blob)
	if err != nil {
		t.Fatalf("CapturePhoto failed: %v", err)
	}
	if n.Type != models.NoteImage || n.Title != "Photo Capture" || n.Content != "Image Log" {
		t.Errorf("capture note mismatch: got %+v", n)
	}

	media, err := svc.MediaForNote(n.ID)
	if err != nil {
		t.Fatalf("MediaForNote failed: %v", err)
	}
	if len(media) != 1 {
		t.Fatalf("attachment count mismatch: got %d, want 1", len(media))
	}
	if media[0].MIME != "image/png" || len(media[0].Blob) != len(blob) {
		t.Errorf("attachment mismatch: got %+v", media[0])
	}
}

func TestCaptureVoiceStoresNoteAndBlob(t *testing.T) {
	svc := setupService(t)

	n, err := svc.CaptureVoice("audio/ogg", []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("CaptureVoice failed: %v", err)
	}
	if n.Type != models.NoteVoice || n.Title != "Voice Memo" || n.Content != "Audio Recording" {
		t.Errorf("capture note mismatch: got %+v", n)
	}
}

func TestPhotosListsOnlyImageNotes(t *testing.T) {
	svc := setupService(t)

	if _, err := svc.AddNote("text", "body", nil); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if _, err := svc.CapturePhoto("image/jpeg", []byte{1}); err != nil {
		t.Fatalf("CapturePhoto failed: %v", err)
	}
	if _, err := svc.CaptureVoice("audio/ogg", []byte{2}); err != nil {
		t.Fatalf("CaptureVoice failed: %v", err)
	}

	photos, err := svc.Photos()
	if err != nil {
		t.Fatalf("Photos failed: %v", err)
	}
	if len(photos) != 1 || photos[0].Type != models.NoteImage {
		t.Errorf("photo filter mismatch: got %+v", photos)
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	svc := setupService(t)

	for _, title := range []string{"oldest", "middle", "newest"} {
		if _, err := svc.AddNote(title, "body", nil); err != nil {
			t.Fatalf("AddNote failed: %v", err)
		}
	}

	recent, err := svc.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("limit mismatch: got %d, want 2", len(recent))
	}
	if recent[0].Date.Before(recent[1].Date) {
		t.Error("recent notes not in newest-first order")
	}
}

func TestDeleteNoteRemovesAttachments(t *testing.T) {
	svc := setupService(t)

	n, err := svc.CapturePhoto("image/png", []byte{1, 2})
	if err != nil {
		t.Fatalf("CapturePhoto failed: %v", err)
	}
	if err := svc.DeleteNote(n.ID); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}

	if _, err := svc.GetNote(n.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("note survived delete: %v", err)
	}
	media, err := svc.MediaForNote(n.ID)
	if err != nil {
		t.Fatalf("MediaForNote failed: %v", err)
	}
	if len(media) != 0 {
		t.Errorf("attachments survived delete: got %d", len(media))
	}
}
