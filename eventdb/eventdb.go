// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package eventdb

import (
	"database/sql"
	"fmt"
	"math/big"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/ledger"
)

const eventTableSchema = `CREATE TABLE IF NOT EXISTS event (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT NOT NULL,
	primaryAddr BLOB,
	secondaryAddr BLOB,
	amount BLOB,
	newValue BLOB,
	topic BLOB,
	eventTime INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS event_i1 ON event(kind);
CREATE INDEX IF NOT EXISTS event_i2 ON event(primaryAddr);
CREATE INDEX IF NOT EXISTS event_i3 ON event(eventTime);`

// EventDB is a sqlite backed store of ledger events, for indexing
// and query only. It implements ledger.EventSink.
type EventDB struct {
	path          string
	db            *sql.DB
	driverVersion string
}

// New create or open event db at given path.
func New(path string) (eventDB *EventDB, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if eventDB == nil {
			db.Close()
		}
	}()
	if _, err := db.Exec(eventTableSchema); err != nil {
		return nil, err
	}

	driverVer, _, _ := sqlite3.Version()
	return &EventDB{
		path,
		db,
		driverVer,
	}, nil
}

// NewMem create an event db in ram.
func NewMem() (*EventDB, error) {
	return New(":memory:")
}

// Close close the event db.
func (db *EventDB) Close() {
	db.db.Close()
}

func (db *EventDB) Path() string {
	return db.path
}

// WriteEvents appends events in a single transaction.
func (db *EventDB) WriteEvents(events []*ledger.Event) (err error) {
	if len(events) == 0 {
		return nil
	}
	tx, err := db.db.Begin()
	if err != nil {
		return errors.WithMessage(err, "begin event batch")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(
		"INSERT INTO event(kind, primaryAddr, secondaryAddr, amount, newValue, topic, eventTime) VALUES(?,?,?,?,?,?,?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err = stmt.Exec(
			string(ev.Kind),
			addressBlob(ev.Primary),
			addressBlob(ev.Secondary),
			bigBlob(ev.Amount),
			bigBlob(ev.NewValue),
			topicBlob(ev.Topic),
			ev.Time,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Filter queries stored events. A nil filter returns everything in
// insertion order.
func (db *EventDB) Filter(filter *Filter) ([]*Event, error) {
	stmt := "SELECT seq, kind, primaryAddr, secondaryAddr, amount, newValue, topic, eventTime FROM event WHERE 1"
	var args []interface{}

	if filter != nil {
		if len(filter.Kinds) > 0 {
			stmt += " AND kind IN ("
			for i, kind := range filter.Kinds {
				if i > 0 {
					stmt += ","
				}
				stmt += "?"
				args = append(args, string(kind))
			}
			stmt += ")"
		}
		if filter.Principal != nil {
			args = append(args, addressBlob(*filter.Principal), addressBlob(*filter.Principal))
			stmt += " AND (primaryAddr = ? OR secondaryAddr = ?)"
		}
		if filter.Range != nil {
			args = append(args, filter.Range.From)
			stmt += " AND eventTime >= ?"
			if filter.Range.To >= filter.Range.From {
				args = append(args, filter.Range.To)
				stmt += " AND eventTime <= ?"
			}
		}
		if filter.Order == DESC {
			stmt += " ORDER BY seq DESC"
		} else {
			stmt += " ORDER BY seq ASC"
		}
		if filter.Options != nil {
			stmt += fmt.Sprintf(" LIMIT %v OFFSET %v", filter.Options.Limit, filter.Options.Offset)
		}
	}
	return db.queryEvents(stmt, args...)
}

func (db *EventDB) queryEvents(stmt string, args ...interface{}) ([]*Event, error) {
	rows, err := db.db.Query(stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var (
			ev            Event
			kind          string
			primaryAddr   []byte
			secondaryAddr []byte
			amount        []byte
			newValue      []byte
			topic         []byte
		)
		if err := rows.Scan(
			&ev.Seq,
			&kind,
			&primaryAddr,
			&secondaryAddr,
			&amount,
			&newValue,
			&topic,
			&ev.Time,
		); err != nil {
			return nil, err
		}
		ev.Kind = ledger.EventKind(kind)
		ev.Primary = aurum.BytesToAddress(primaryAddr)
		ev.Secondary = aurum.BytesToAddress(secondaryAddr)
		if len(amount) > 0 {
			ev.Amount = new(big.Int).SetBytes(amount)
		}
		if len(newValue) > 0 {
			ev.NewValue = new(big.Int).SetBytes(newValue)
		}
		ev.Topic = aurum.BytesToBytes32(topic)
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func addressBlob(addr aurum.Address) []byte {
	if addr.IsZero() {
		return nil
	}
	return addr.Bytes()
}

func topicBlob(topic aurum.Bytes32) []byte {
	if topic.IsZero() {
		return nil
	}
	return topic.Bytes()
}

func bigBlob(v *big.Int) []byte {
	if v == nil {
		return nil
	}
	return v.Bytes()
}
