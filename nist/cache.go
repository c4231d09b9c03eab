/*
 * cache.go, part of atomphys.
 *
 *
 * Copyright 2024 The atomphys authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package nist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

//Cache stores raw replies from the database, keyed by query.
//Get reports false, and no error, when the key is not cached.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, data []byte) error
}

//MemoryCache keeps the replies in a map. It is safe for concurrent use.
type MemoryCache struct {
	mu sync.Mutex
	m  map[string][]byte
}

//NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{m: make(map[string][]byte)}
}

//Get returns the data for key.
func (M *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	M.mu.Lock()
	defer M.mu.Unlock()
	d, ok := M.m[key]
	return d, ok, nil
}

//Put stores data under key.
func (M *MemoryCache) Put(_ context.Context, key string, data []byte) error {
	M.mu.Lock()
	defer M.mu.Unlock()
	M.m[key] = append([]byte(nil), data...)
	return nil
}

//Len returns the number of cached keys.
func (M *MemoryCache) Len() int {
	M.mu.Lock()
	defer M.mu.Unlock()
	return len(M.m)
}

//FileCache keeps each reply in a zstd-compressed file in a directory.
type FileCache struct {
	Dir string
}

//NewFileCache returns a cache in dir, creating the directory if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("nist: create cache dir: %w", err)
	}
	return &FileCache{Dir: dir}, nil
}

//fileName maps a key to a file in the cache directory. Anything but letters, digits,
//'+' and '-' becomes '_', so keys can't point outside the directory.
func (F *FileCache) fileName(key string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '+', r == '-':
			return r
		}
		return '_'
	}, key)
	return filepath.Join(F.Dir, clean+".cache.zst")
}

//Get returns the data for key.
func (F *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(F.fileName(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("nist: read cache: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, false, err
	}
	defer dec.Close()
	data, err := dec.DecodeAll(raw, nil)
	if err != nil {
		return nil, false, fmt.Errorf("nist: corrupt cache entry %q: %w", key, err)
	}
	return data, true, nil
}

//Put stores data under key. The file is written to a temporary name and then renamed,
//so a reader never sees a partial entry.
func (F *FileCache) Put(_ context.Context, key string, data []byte) error {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return err
	}
	defer enc.Close()
	name := F.fileName(key)
	tmp, err := os.CreateTemp(F.Dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("nist: write cache: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(enc.EncodeAll(data, nil)); err != nil {
		tmp.Close()
		return fmt.Errorf("nist: write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("nist: write cache: %w", err)
	}
	return os.Rename(tmp.Name(), name)
}

//SQLiteCache keeps the replies in a table of a SQLite database.
type SQLiteCache struct {
	db *sql.DB
}

//OpenSQLiteCache opens, or creates, a cache database at path.
func OpenSQLiteCache(path string) (*SQLiteCache, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("nist: create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("nist: open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS replies (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		fetched INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("nist: create replies table: %w", err)
	}
	return &SQLiteCache{db: db}, nil
}

//Get returns the data for key.
func (C *SQLiteCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := C.db.QueryRowContext(ctx, `SELECT payload FROM replies WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("nist: select reply: %w", err)
	}
	return data, true, nil
}

//Put stores data under key, replacing any previous entry.
func (C *SQLiteCache) Put(ctx context.Context, key string, data []byte) error {
	_, err := C.db.ExecContext(ctx, `INSERT INTO replies (key, payload, fetched) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, fetched = excluded.fetched`,
		key, data, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("nist: store reply: %w", err)
	}
	return nil
}

//Close closes the database.
func (C *SQLiteCache) Close() error {
	return C.db.Close()
}
