// ABOUTME: CLI commands for journal notes and media capture.
// ABOUTME: Supports add, list, show, capture, and delete subcommands.
package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vael/internal/models"
)

var (
	noteTags  []string
	noteLimit int
)

var noteCmd = &cobra.Command{
	Use:     "note",
	Aliases: []string{"n"},
	Short:   "Manage journal notes",
	Long: `Keep journal notes with optional media attachments.

Text notes take a title and body. Captures (voice memos, photos) store
the file as a blob in its own table, attached to an auto-created note.

EXAMPLES:

  vael note add "Form check" "Depth looked better today" --tags squat
  vael note capture photo progress.jpg
  vael note capture voice memo.ogg
  vael note list
  vael note show 3`,
}

var noteAddCmd = &cobra.Command{
	Use:   "add <title> <content>",
	Short: "Add a text note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := journalSvc.AddNote(args[0], args[1], noteTags)
		if err != nil {
			return fmt.Errorf("failed to add note: %w", err)
		}
		color.Green("✓ Added note %q", n.Title)
		fmt.Printf("  ID: %d\n", n.ID)
		return nil
	},
}

var noteCaptureCmd = &cobra.Command{
	Use:   "capture <photo|voice> <file>",
	Short: "Capture a photo or voice memo",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		blob, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[1], err)
		}
		mimeType := mime.TypeByExtension(filepath.Ext(args[1]))
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		var n *models.Note
		switch args[0] {
		case "photo":
			n, err = journalSvc.CapturePhoto(mimeType, blob)
		case "voice":
			n, err = journalSvc.CaptureVoice(mimeType, blob)
		default:
			return fmt.Errorf("unknown capture kind %q (want photo or voice)", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to capture: %w", err)
		}

		color.Green("✓ Captured %s (%d bytes)", args[0], len(blob))
		fmt.Printf("  Note ID: %d\n", n.ID)
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := journalSvc.Recent(noteLimit)
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}
		if len(notes) == 0 {
			fmt.Println("No notes yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, n := range notes {
			tags := ""
			if len(n.Tags) > 0 {
				tags = faint.Sprintf(" #%s", strings.Join(n.Tags, " #"))
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprintf("%4d", n.ID),
				faint.Sprint(n.Date.Format("2006-01-02 15:04")),
				padRight(string(n.Type), 6),
				truncate(n.Title, 40), tags)
		}
		return nil
	},
}

var noteShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note and its attachments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad note id %q", args[0])
		}

		n, err := journalSvc.GetNote(id)
		if err != nil {
			return fmt.Errorf("note not found: %w", err)
		}

		fmt.Println(color.New(color.Bold).Sprint(n.Title))
		fmt.Printf("%s · %s\n", n.Date.Format("2006-01-02 15:04"), n.Type)
		if len(n.Tags) > 0 {
			fmt.Printf("#%s\n", strings.Join(n.Tags, " #"))
		}
		fmt.Println()
		fmt.Println(n.Content)

		media, err := journalSvc.MediaForNote(id)
		if err != nil {
			return err
		}
		if len(media) > 0 {
			fmt.Println()
			faint := color.New(color.Faint)
			for _, m := range media {
				fmt.Println(faint.Sprintf("attachment %d: %s (%d bytes)", m.ID, m.MIME, len(m.Blob)))
			}
		}
		return nil
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note and its attachments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad note id %q", args[0])
		}
		if err := journalSvc.DeleteNote(id); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}
		color.Green("✓ Deleted note %d", id)
		return nil
	},
}

func init() {
	noteAddCmd.Flags().StringSliceVar(&noteTags, "tags", nil, "tags")
	noteListCmd.Flags().IntVarP(&noteLimit, "limit", "n", 20, "max results")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteCaptureCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	rootCmd.AddCommand(noteCmd)
}
