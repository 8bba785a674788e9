// Package devstore implementa el almacén clave-valor de cadenas del
// dispositivo sobre SQLite (un archivo por terminal). Última escritura gana;
// no hay garantías transaccionales entre claves.
package devstore

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Store implementa port.SettingsStore.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) el archivo del almacén y asegura el esquema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir almacén del dispositivo: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema del almacén: %w", err)
	}
	return &Store{db: db}, nil
}

// Get devuelve el valor de la clave, o cadena vacía sin error si no existe.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("leer clave %q: %w", key, err)
	}
	return value, nil
}

// Set escribe la clave, reemplazando el valor anterior si lo hay.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("escribir clave %q: %w", key, err)
	}
	return nil
}

// Remove elimina la clave. Idempotente.
func (s *Store) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("eliminar clave %q: %w", key, err)
	}
	return nil
}

// Close cierra el archivo subyacente.
func (s *Store) Close() error {
	return s.db.Close()
}
