package watcher

import "context"

// Watcher defines the interface for inbox folder monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles a newly arrived inbox file
type EventHandler func(ctx context.Context, filePath string) error

// SupportedExtensions lists the audio formats and the plain transcript
// format picked up from the inbox.
var SupportedExtensions = []string{".wav", ".mp3", ".m4a", ".webm", ".ogg", ".flac", ".txt"}
