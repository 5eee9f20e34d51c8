package netclient

import (
	"fmt"

	"upb/internal/core"
)

// Record представляет декодированный JSON-ответ стороннего API.
// Доступ к полям явный: отсутствующее поле дает placeholder, не ошибку.
type Record map[string]interface{}

// Str возвращает строковое поле или Placeholder, если его нет.
func (r Record) Str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return core.Placeholder
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return core.Placeholder
	}
	return s
}

// Num возвращает числовое поле; ok=false, если поля нет или тип не число.
func (r Record) Num(key string) (float64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// NumStr возвращает числовое поле как строку или Placeholder.
func (r Record) NumStr(key string) string {
	f, ok := r.Num(key)
	if !ok {
		return core.Placeholder
	}
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// Rec возвращает вложенный объект; пустой Record, если его нет.
func (r Record) Rec(key string) Record {
	v, ok := r[key]
	if !ok {
		return Record{}
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return Record{}
	}
	return Record(m)
}

// List возвращает поле-массив; nil, если его нет.
func (r Record) List(key string) []interface{} {
	v, ok := r[key]
	if !ok {
		return nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	return list
}
