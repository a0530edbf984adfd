package data

import (
	"fmt"
	"sync"
)

var (
	loadOnce sync.Once
	loadErr  error
)

// LoadAll загружает все статические таблицы ровно один раз.
// Безопасно вызывать из нескольких goroutines; повторные вызовы возвращают
// результат первой загрузки.
func LoadAll() error {
	loadOnce.Do(func() {
		loadErr = loadAll()
	})
	return loadErr
}

func loadAll() error {
	if err := LoadItems(); err != nil {
		return fmt.Errorf("loading item catalog: %w", err)
	}
	if err := LoadLocations(Catalog()); err != nil {
		return fmt.Errorf("loading location tables: %w", err)
	}
	return nil
}
