package storage

import (
	"context"
	"time"
)

// Entry фиксирует одну выполненную команду REPL.
type Entry struct {
	Verb   string
	Args   string
	Status string
	TS     time.Time
}

// Store описывает операции журнала команд.
type Store interface {
	SaveEntry(ctx context.Context, e Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}
