package message

import "github.com/google/uuid"

// GameUid ties the decisions of one game together in the journal.
type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

// GameUidOr returns uid, or a fresh one when uid is empty.
func GameUidOr(uid GameUid) GameUid {
	if uid == "" {
		return NewGameUid()
	}
	return uid
}
