package storage

import (
	"context"
)

// Locale returns the stored display language tag, or DefaultLocale when
// none has been set yet.
func (s *SQLiteStore) Locale(ctx context.Context) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	value, ok, err := s.getValue(ctx, localeKey)
	if err != nil {
		return "", err
	}
	if !ok || value == "" {
		return DefaultLocale, nil
	}
	return value, nil
}

// SetLocale persists the display language tag.
func (s *SQLiteStore) SetLocale(ctx context.Context, tag string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(tag, "tag"); err != nil {
		return err
	}
	return s.setValue(ctx, localeKey, tag)
}
