package utils

import (
	"log/slog"
	"strings"
)

func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {

	if logMessagesBuilder.Len() == logMessagesBuilder.Cap() {

		logMessagesBuilder.Grow(len(strToAdd))
	}

	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";")
	logMessagesBuilder.WriteString("\n")
}

// FlushLogMessage writes the accumulated handler trace as one record.
func FlushLogMessage(logger *slog.Logger, handler string, logMessagesBuilder *strings.Builder) {
	if logger == nil || logMessagesBuilder.Len() == 0 {
		return
	}
	logger.Info("request trace", "handler", handler, "trace", logMessagesBuilder.String())
}
