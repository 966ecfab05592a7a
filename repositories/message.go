package repositories

import (
	"chat-engine/domain"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ArchiveRepository keeps every assistant message of a room in BadgerDB,
// including what the bounded in-memory history already evicted.
type ArchiveRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewArchiveRepository(db *badger.DB, log *slog.Logger) ArchiveRepository {
	return ArchiveRepository{db: db, log: log}
}

type archivedMessage struct {
	ID   uuid.UUID     `json:"id"`
	Room domain.RoomID `json:"room"`
	domain.ConversationMessage
}

// StoreMessage persists a message under "msg:{room}:{timestamp_padded}:{uuid}":
//  1. The 19-digit zero padded millisecond timestamp sorts keys chronologically.
//  2. The UUID keeps two messages of the same millisecond apart.
//
// The room is query escaped so a ':' in its id cannot leak into another room prefix.
func (a ArchiveRepository) StoreMessage(roomID domain.RoomID, message domain.ConversationMessage) error {
	id := uuid.New()
	key := fmt.Sprintf("%s%019d:%s", roomPrefix(roomID), message.Timestamp, id)
	bytes, err := json.Marshal(archivedMessage{ID: id, Room: roomID, ConversationMessage: message})
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetMessages returns up to limit messages of the room, newest first.
// A non positive limit returns them all.
func (a ArchiveRepository) GetMessages(roomID domain.RoomID, limit int) ([]domain.ConversationMessage, error) {
	var records []archivedMessage
	err := a.db.View(func(txn *badger.Txn) error {
		prefix := []byte(roomPrefix(roomID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts at the greatest key not above the seek key.
		seekKey := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) == limit {
				a.log.Debug(fmt.Sprintf("Maximum of %d message reached", limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var record archivedMessage
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(records, func(item archivedMessage, _ int) domain.ConversationMessage {
		return item.ConversationMessage
	}), nil
}

func roomPrefix(roomID domain.RoomID) string {
	return fmt.Sprintf("msg:%s:", url.QueryEscape(string(roomID)))
}
