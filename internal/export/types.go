// Package export loads Instagram-style chat export files and merges
// multi-part conversations into unified threads.
package export

// Participant is one member of a conversation thread. The account owner
// is always listed first in the export.
type Participant struct {
	Name string `json:"name"`
}

// RawMessage is a single message record as it appears in an export file.
// Content is empty for attachments, reactions and unsent messages.
type RawMessage struct {
	SenderName  string `json:"sender_name"`
	Content     string `json:"content"`
	TimestampMS int64  `json:"timestamp_ms"`
}

// rawExportFile mirrors the JSON payload of one message_N.json file.
type rawExportFile struct {
	Title        string        `json:"title"`
	Participants []Participant `json:"participants"`
	Messages     []RawMessage  `json:"messages"`
}

// Thread is the unit of analysis: all message parts of one conversation
// folder merged together. Messages are raw and unsorted; ordering is the
// transcript parser's job.
type Thread struct {
	Name         string
	Title        string
	Participants []Participant
	Messages     []RawMessage
}

// PrimarySubject returns the name of the account owner, who is always
// the first listed participant.
func (t Thread) PrimarySubject() string {
	if len(t.Participants) > 0 {
		return t.Participants[0].Name
	}
	return "Patient"
}

// Label returns the human-readable label for the thread: the other
// participants' names when known, otherwise the title.
func (t Thread) Label() string {
	var others []string
	subject := t.PrimarySubject()
	for _, p := range t.Participants {
		if p.Name != subject {
			others = append(others, p.Name)
		}
	}
	if len(others) > 0 {
		return joinNames(others)
	}
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}

func joinNames(names []string) string {
	out := names[0]
	for _, n := range names[1:] {
		out += ", " + n
	}
	return out
}
