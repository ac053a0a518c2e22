package utils

import "time"

const DateTimeFormatForSQLite = "2006-01-02 15:04:05"

func SQLiteNow() string {
	return time.Now().UTC().Format(DateTimeFormatForSQLite)
}
