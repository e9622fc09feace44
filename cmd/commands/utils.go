package commands

import (
	"os"

	"saukstas/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("saukstas error", "err", err.Error())
	os.Exit(1)
}
