package cmd

import (
	"fmt"
)

type StorageAdapter string

const (
	StorageAdapterPostgres StorageAdapter = "postgres"
	StorageAdapterSQLite   StorageAdapter = "sqlite"
	StorageAdapterMemory   StorageAdapter = "memory"
)

func ParseStorageAdapter(value string) (StorageAdapter, error) {
	switch adapter := StorageAdapter(value); adapter {
	case StorageAdapterPostgres, StorageAdapterSQLite, StorageAdapterMemory:
		return adapter, nil
	default:
		return "", fmt.Errorf("unknown storage adapter %q", value)
	}
}

func (a StorageAdapter) IsSQL() bool {
	return a == StorageAdapterPostgres || a == StorageAdapterSQLite
}
