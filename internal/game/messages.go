package game

import (
	"fmt"
	"io"
	"strings"
)

// Display is a sink for player-facing messages.
type Display interface {
	Display(message string)
}

// MsgPriority controls the color of a message in the comms log.
type MsgPriority uint8

const (
	MsgInfo     MsgPriority = iota // cyan
	MsgWarning                     // yellow
	MsgCritical                    // red
	MsgNav                         // green
)

// Message is a single entry in the comms log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// commsWidth is the wrap width of the comms panel.
const commsWidth = 55

// MessageLog is a bounded FIFO of messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize messages.
func NewMessageLog(maxSize int) *MessageLog {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Display adds message at info priority.
func (l *MessageLog) Display(message string) { l.Add(message, MsgInfo) }

// Addf formats and adds a message.
func (l *MessageLog) Addf(priority MsgPriority, format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...), priority)
}

// Add appends a message, wrapped to the comms width, evicting the oldest
// lines when full.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	for _, line := range wrapText(text, commsWidth) {
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages = l.Messages[:len(l.Messages)-1]
		}
		l.Messages = append(l.Messages, Message{Text: line, Priority: priority})
	}
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// wrapText splits text into lines no longer than maxWidth. Single words
// longer than maxWidth are kept whole.
func wrapText(s string, maxWidth int) []string {
	if len(s) <= maxWidth {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// ConsoleDisplay writes each message on its own line.
type ConsoleDisplay struct {
	W io.Writer
}

func (c ConsoleDisplay) Display(message string) {
	fmt.Fprintln(c.W, message)
}
