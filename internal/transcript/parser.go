// Package transcript converts raw thread messages into clean,
// chronologically ordered, speaker-labeled transcripts.
package transcript

import (
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/psychograph/psychograph/internal/export"
)

// Speaker labels used for transcript lines.
const (
	PatientLabel = "[PATIENT]"
	OtherLabel   = "[OTHER]"
)

// DefaultMaxLines bounds how much transcript is handed to downstream
// consumers; the most recent lines are kept.
const DefaultMaxLines = 150

// Message is a cleaned, normalized message ready for transcript
// formatting.
type Message struct {
	Sender      string
	Content     string
	TimestampMS int64
	IsPatient   bool
}

// ParseThread parses one conversation thread into clean messages.
// Empty messages (stickers, reactions, unsent messages, media-only) are
// dropped, double-encoded content is repaired, and the result is sorted
// oldest-first. Ties keep their input order.
func ParseThread(thread export.Thread, patientName string) []Message {
	messages := make([]Message, 0, len(thread.Messages))

	for _, raw := range thread.Messages {
		if strings.TrimSpace(raw.Content) == "" {
			continue
		}

		sender := raw.SenderName
		if sender == "" {
			sender = "Unknown"
		}

		messages = append(messages, Message{
			Sender:      sender,
			Content:     RepairEncoding(raw.Content),
			TimestampMS: raw.TimestampMS,
			IsPatient:   sender == patientName,
		})
	}

	// Exports arrive newest-first; analysis wants oldest-first.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].TimestampMS < messages[j].TimestampMS
	})

	return messages
}

// RepairEncoding fixes the export bug where UTF-8 text was read as
// Latin-1, turning "don't" into "donâ€™t". The repair is best-effort:
// if the content does not round-trip, it is returned unchanged.
func RepairEncoding(text string) string {
	raw, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		// Contains runes outside Latin-1, so it was decoded correctly.
		return text
	}
	if !utf8.Valid([]byte(raw)) {
		return text
	}
	return raw
}

// Format renders messages as one line each, labeled by speaker.
func Format(messages []Message) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		label := OtherLabel
		if msg.IsPatient {
			label = PatientLabel
		}
		lines = append(lines, label+": "+msg.Content)
	}
	return strings.Join(lines, "\n")
}

// Trim bounds a transcript to its trailing maxLines lines, discarding
// the oldest. Shorter transcripts are returned unchanged.
func Trim(text string, maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}
	slog.Debug("Trimming transcript", "from", len(lines), "to", maxLines)
	return strings.Join(lines[len(lines)-maxLines:], "\n")
}

// PatientLines returns the transcript lines attributed to the patient.
func PatientLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, PatientLabel+":") {
			lines = append(lines, line)
		}
	}
	return lines
}
