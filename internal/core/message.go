package core

import "time"

// timeLayout renders hour, minute and second the way the chat client
// displays them, e.g. "3:04:05 PM".
const timeLayout = "3:04:05 PM"

// Envelope is the canonical chat message sent to clients.
type Envelope struct {
	Name string
	Text string
	Time string
}

// BuildMessage stamps a {name, text} pair with the given clock reading.
// It accepts any strings, including empty ones, and never fails; content
// validation and sanitization are not this layer's concern.
func BuildMessage(name, text string, at time.Time) Envelope {
	return Envelope{
		Name: name,
		Text: text,
		Time: at.Format(timeLayout),
	}
}
