package logging

import (
	"fmt"
	"log/slog"
)

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}

// Secret keeps only the first 5 characters of a credential so it can be logged.
func Secret(some string) slog.Attr {
	r := "***"
	if runes := []rune(some); len(runes) > 5 {
		r = fmt.Sprintf("%s***", string(runes[:5]))
	}
	if some == "" {
		r = "?"
	}
	return slog.String("secret", r)
}
