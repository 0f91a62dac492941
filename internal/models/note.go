// ABOUTME: Note and Media models for the capture/journal flow.
// ABOUTME: Large binaries live in their own table keyed by owning note id.
package models

import (
	"time"

	"github.com/harperreed/vael/internal/store"
)

// NoteType distinguishes text notes from captured media notes.
type NoteType string

const (
	NoteText  NoteType = "text"
	NoteVoice NoteType = "voice"
	NoteImage NoteType = "image"
	NoteVideo NoteType = "video"
)

// Note is a journal entry. Media notes carry their binary payload in a
// separate Media row so listing notes never loads blobs.
type Note struct {
	ID      uint64    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Type    NoteType  `json:"type"`
	Date    time.Time `json:"date"`
	Tags    []string  `json:"tags,omitempty"`
}

// NewNote creates a note dated now.
func NewNote(title, content string, typ NoteType) *Note {
	return &Note{
		Title:   title,
		Content: content,
		Type:    typ,
		Date:    time.Now(),
	}
}

// WithTags sets the note's tags.
func (n *Note) WithTags(tags ...string) *Note {
	n.Tags = tags
	return n
}

func (n *Note) RecordID() uint64      { return n.ID }
func (n *Note) SetRecordID(id uint64) { n.ID = id }

func (n *Note) IndexValues() map[string][]byte {
	return map[string][]byte{
		"title": store.String(n.Title),
		"type":  store.String(string(n.Type)),
		"date":  store.Time(n.Date),
	}
}

// Media is an opaque binary attachment owned by a note. The capture flow
// hands storage the blob and its content type; ownership transfers on
// insert.
type Media struct {
	ID     uint64 `json:"id"`
	NoteID uint64 `json:"note_id"`
	MIME   string `json:"mime"`
	Blob   []byte `json:"blob"`
}

// NewMedia attaches a blob to a note.
func NewMedia(noteID uint64, mime string, blob []byte) *Media {
	return &Media{NoteID: noteID, MIME: mime, Blob: blob}
}

func (m *Media) RecordID() uint64      { return m.ID }
func (m *Media) SetRecordID(id uint64) { m.ID = id }

func (m *Media) IndexValues() map[string][]byte {
	return map[string][]byte{
		"note_id": store.Uint(m.NoteID),
	}
}
