// ABOUTME: Journal service: notes and attached media blobs.
// ABOUTME: Media rows reference a note; capture helpers bundle both writes.
package journal

import (
	"fmt"
	"sort"

	"github.com/harperreed/vael/internal/models"
	"github.com/harperreed/vael/internal/schema"
	"github.com/harperreed/vael/internal/store"
)

// Service wraps the storage engine with journal operations.
type Service struct {
	notes *store.Table[models.Note, *models.Note]
	media *store.Table[models.Media, *models.Media]
}

// NewService binds the journal tables on the engine.
func NewService(eng *store.Engine) *Service {
	return &Service{
		notes: store.NewTable[models.Note](eng, schema.TableNotes),
		media: store.NewTable[models.Media](eng, schema.TableMedia),
	}
}

// AddNote stores a text note.
func (s *Service) AddNote(title, content string, tags []string) (*models.Note, error) {
	n := models.NewNote(title, content, models.NoteText)
	if len(tags) > 0 {
		n.WithTags(tags...)
	}
	if _, err := s.notes.Insert(n); err != nil {
		return nil, err
	}
	return n, nil
}

// AttachMedia stores a blob against an existing note.
func (s *Service) AttachMedia(noteID uint64, mime string, blob []byte) (*models.Media, error) {
	if _, err := s.notes.Get(noteID); err != nil {
		return nil, fmt.Errorf("attach media: %w", err)
	}
	m := models.NewMedia(noteID, mime, blob)
	if _, err := s.media.Insert(m); err != nil {
		return nil, err
	}
	return m, nil
}

// CaptureVoice stores a voice memo as a note plus its audio blob.
func (s *Service) CaptureVoice(mime string, blob []byte) (*models.Note, error) {
	return s.capture(models.NoteVoice, "Voice Memo", "Audio Recording", mime, blob)
}

// CapturePhoto stores a photo as a note plus its image blob.
func (s *Service) CapturePhoto(mime string, blob []byte) (*models.Note, error) {
	return s.capture(models.NoteImage, "Photo Capture", "Image Log", mime, blob)
}

// capture inserts the note then the blob. If the blob write fails, the
// note is deleted again so a capture never leaves a noteless blob or a
// blobless capture note behind.
func (s *Service) capture(typ models.NoteType, title, content, mime string, blob []byte) (*models.Note, error) {
	n := models.NewNote(title, content, typ)
	if _, err := s.notes.Insert(n); err != nil {
		return nil, err
	}
	if _, err := s.media.Insert(models.NewMedia(n.ID, mime, blob)); err != nil {
		if delErr := s.notes.Delete(n.ID); delErr != nil {
			return nil, fmt.Errorf("capture: %w (orphaned note %d: %v)", err, n.ID, delErr)
		}
		return nil, fmt.Errorf("capture: %w", err)
	}
	return n, nil
}

// Recent lists notes, newest first.
func (s *Service) Recent(limit int) ([]*models.Note, error) {
	return s.notes.OrderBy("date").Desc().Limit(limit).All()
}

// Photos lists image notes, newest first.
func (s *Service) Photos() ([]*models.Note, error) {
	notes, err := s.notes.Where("type").
		Equals(store.String(string(models.NoteImage))).All()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Date.After(notes[j].Date)
	})
	return notes, nil
}

// MediaForNote lists a note's attachments.
func (s *Service) MediaForNote(noteID uint64) ([]*models.Media, error) {
	return s.media.Where("note_id").Equals(store.Uint(noteID)).All()
}

// GetNote fetches a note.
func (s *Service) GetNote(id uint64) (*models.Note, error) {
	return s.notes.Get(id)
}

// DeleteNote removes a note and all of its attachments.
func (s *Service) DeleteNote(id uint64) error {
	attachments, err := s.MediaForNote(id)
	if err != nil {
		return err
	}
	for _, m := range attachments {
		if err := s.media.Delete(m.ID); err != nil {
			return err
		}
	}
	return s.notes.Delete(id)
}
