package core

import (
	"context"
	"fmt"
)

// Placeholder подставляется вместо отсутствующих полей ответа API.
const Placeholder = "N/A"

// Handler определяет контракт для команд-обработчиков.
type Handler interface {
	Name() string
	Usage() string
	Init(ctx context.Context) error
	Execute(ctx context.Context, args []string) ([]string, error)
}

// UsageError сообщает о недостающих или некорректных аргументах команды.
type UsageError struct {
	Verb  string
	Usage string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s", e.Usage)
}

// NewUsageError создает UsageError для обработчика.
func NewUsageError(h Handler) *UsageError {
	return &UsageError{Verb: h.Name(), Usage: h.Usage()}
}
