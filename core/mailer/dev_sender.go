package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development. It saves messages as
// HTML, plain-text and JSON files to a directory instead of delivering
// them through an email service.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that saves messages to disk.
// The directory is created on first use if it does not exist.
func NewDevSender(dir string) Sender {
	return &DevSender{dir: dir}
}

// messageMetadata is the message envelope saved to JSON (body excluded).
type messageMetadata struct {
	Timestamp string `json:"timestamp"`
	MessageID string `json:"message_id,omitempty"`
	SendTo    string `json:"send_to"`
	Subject   string `json:"subject"`
	Template  string `json:"template,omitempty"`
	Language  string `json:"language,omitempty"`
	Tag       string `json:"tag,omitempty"`
}

// Send saves the message bodies and metadata to the configured directory.
func (d *DevSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSend, err)
	}

	// Timestamp-based filenames keep the directory chronologically sorted.
	now := time.Now()
	timestamp := now.Format("2006_01_02_150405")

	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	base := fmt.Sprintf("%s_%s", timestamp, sanitizeFilename(identifier))

	htmlPath := filepath.Join(d.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(msg.BodyHTML), 0644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSend, err)
	}

	if msg.BodyText != "" {
		textPath := filepath.Join(d.dir, base+".txt")
		if err := os.WriteFile(textPath, []byte(msg.BodyText), 0644); err != nil {
			return fmt.Errorf("%w: failed to write text file: %v", ErrFailedToSend, err)
		}
	}

	metadata := messageMetadata{
		Timestamp: now.Format(time.RFC3339),
		MessageID: msg.ID,
		SendTo:    msg.SendTo,
		Subject:   msg.Subject,
		Template:  msg.Template,
		Language:  msg.Language,
		Tag:       msg.Tag,
	}
	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSend, err)
	}
	jsonPath := filepath.Join(d.dir, base+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSend, err)
	}

	return nil
}

// sanitizeRegex removes filesystem-unsafe characters from filenames
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
