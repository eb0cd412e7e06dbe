package repositories

import (
	"strings"

	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
)

// logQuery logs a query flattened to a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
