package state

// Cursor is the per-chat viewing state: the selected group and the weekday
// index shown. Day stays within the day count the store was built with.
type Cursor struct {
	Group string
	Day   int
}

// Store reads and writes chat cursors. Get reports false when the chat has
// never selected a group.
type Store interface {
	Get(chatID int64) (Cursor, bool)
	SetGroup(chatID int64, group string)
	SetDay(chatID int64, day int)
	// Lock serializes read-modify-write sequences for one chat. The returned
	// func releases it.
	Lock(chatID int64) func()
	Len() int
}
