package renderer

import "go.uber.org/zap"

// LoggingProgress returns a Progress callback that logs a structured
// message every intervalRows rows, plus a final message on completion.
func LoggingProgress(logger *zap.Logger, intervalRows int) Progress {
	if intervalRows <= 0 {
		intervalRows = 1
	}
	return func(rowsDone, totalRows int) {
		if rowsDone%intervalRows != 0 && rowsDone != totalRows {
			return
		}
		logger.Info("render progress",
			zap.Int("rows_done", rowsDone),
			zap.Int("total_rows", totalRows),
			zap.Float64("fraction", float64(rowsDone)/float64(totalRows)),
		)
	}
}
