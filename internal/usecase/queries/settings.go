package queries

import (
	"context"
)

const maskedPrefix = "****"

type SettingsQueries interface {
	List(ctx context.Context) ([]*SettingView, error)
}

type SettingsReadStore interface {
	ListSettings(ctx context.Context) ([]*SettingView, error)
}

type settingsQueriesImpl struct {
	store SettingsReadStore
}

func NewSettingsQueries(store SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{store: store}
}

func (q *settingsQueriesImpl) List(ctx context.Context) ([]*SettingView, error) {
	items, err := q.store.ListSettings(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.IsSecret {
			item.Value = MaskSecret(item.Value)
		}
	}
	return items, nil
}

// MaskSecret keeps only the last four characters of a secret value.
func MaskSecret(value string) string {
	if value == "" {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= 4 {
		return maskedPrefix + value
	}
	return maskedPrefix + string(runes[len(runes)-4:])
}
