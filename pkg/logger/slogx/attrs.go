package slogx

import "log/slog"

func Err(err error) slog.Attr {
	return slog.Any("err", err)
}

func UserID(id int64) slog.Attr {
	return slog.Int64("user_id", id)
}

func NoteID(id int64) slog.Attr {
	return slog.Int64("note_id", id)
}

func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}
