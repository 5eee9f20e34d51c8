package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	errHandlerExists    = errors.New("handler already registered")
	ErrUnknownVerb      = errors.New("unrecognized command")
	errInvalidArguments = errors.New("invalid arguments")
)

// Registry хранит зарегистрированные обработчики и выполняет команды.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry создает пустой реестр обработчиков.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register добавляет обработчик; verb должен быть уникальным.
func (r *Registry) Register(ctx context.Context, h Handler) error {
	if h == nil {
		return fmt.Errorf("handler is nil: %w", errInvalidArguments)
	}
	verb := strings.ToLower(h.Name())
	if verb == "" {
		return fmt.Errorf("handler verb is empty: %w", errInvalidArguments)
	}
	if _, exists := r.handlers[verb]; exists {
		return fmt.Errorf("%s: %w", verb, errHandlerExists)
	}
	if err := h.Init(ctx); err != nil {
		return fmt.Errorf("init %s: %w", verb, err)
	}
	r.handlers[verb] = h
	return nil
}

// Dispatch вызывает обработчик по verb без учета регистра.
func (r *Registry) Dispatch(ctx context.Context, verb string, args []string) ([]string, error) {
	h, ok := r.handlers[strings.ToLower(verb)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", verb, ErrUnknownVerb)
	}
	return h.Execute(ctx, args)
}

// Lookup возвращает обработчик по verb.
func (r *Registry) Lookup(verb string) (Handler, bool) {
	h, ok := r.handlers[strings.ToLower(verb)]
	return h, ok
}

// Verbs возвращает отсортированный список зарегистрированных команд.
func (r *Registry) Verbs() []string {
	verbs := make([]string, 0, len(r.handlers))
	for verb := range r.handlers {
		verbs = append(verbs, verb)
	}
	sort.Strings(verbs)
	return verbs
}
