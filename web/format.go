package web

import "time"

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}
