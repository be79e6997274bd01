// Package logging routes the standard logger for the rockfall commands
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/rockfall/parameter"
)

// MaxLogSize is the size past which the log is rotated aside on startup
const MaxLogSize = 10 * 1024 * 1024

// Setup routes the standard logger to parameter.LogDir/LogFileName when
// enabled and discards it otherwise. Oversized logs are rotated aside first.
// The returned file, if any, must be closed by the caller.
func Setup(enabled bool) *os.File {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(parameter.LogDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(parameter.LogDir, parameter.LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > MaxLogSize {
		base := strings.TrimSuffix(parameter.LogFileName, filepath.Ext(parameter.LogFileName))
		rotated := filepath.Join(parameter.LogDir, fmt.Sprintf("%s-%s.log", base, time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f
}
