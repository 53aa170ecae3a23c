package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

var errNoSerialize = errors.New("sqlite driver cannot serialize databases")

type serializer interface {
	Serialize() ([]byte, error)
}

type deserializer interface {
	Deserialize(buf []byte) error
}

// image is the decrypted vault database. It lives in memory on a single
// connection; the bytes only ever leave it to be encrypted.
type image struct {
	db   *sql.DB
	conn *sql.Conn
}

// openImage opens an in-memory database, loaded from buf when buf is not
// empty.
func openImage(ctx context.Context, buf []byte) (*image, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	img := &image{db: db, conn: conn}

	if len(buf) > 0 {
		if err := img.load(buf); err != nil {
			img.close()
			return nil, err
		}
	}
	if _, err := conn.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		img.close()
		return nil, err
	}
	return img, nil
}

func (img *image) load(buf []byte) error {
	return img.conn.Raw(func(dc any) error {
		d, ok := dc.(deserializer)
		if !ok {
			return errNoSerialize
		}
		if err := d.Deserialize(buf); err != nil {
			return fmt.Errorf("load vault database: %w", err)
		}
		return nil
	})
}

func (img *image) bytes() ([]byte, error) {
	var out []byte
	err := img.conn.Raw(func(dc any) error {
		s, ok := dc.(serializer)
		if !ok {
			return errNoSerialize
		}
		b, err := s.Serialize()
		if err != nil {
			return fmt.Errorf("serialize vault database: %w", err)
		}
		out = b
		return nil
	})
	return out, err
}

func (img *image) close() {
	if img == nil {
		return
	}
	_ = img.conn.Close()
	_ = img.db.Close()
}
