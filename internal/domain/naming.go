package domain

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strconv"
	"time"
)

// ConfigFileName is the name of the TOML configuration file.
const ConfigFileName = "config.toml"

// NewSessionID returns a fresh session ID.
// Format: sess_<epoch-ms>_<9 base36 chars>
func NewSessionID(now time.Time) string {
	return fmt.Sprintf("sess_%d_%s", Millis(now), randBase36(9))
}

// NewTaskID returns a fresh task ID.
// Format: task_<epoch-ms>
func NewTaskID(now time.Time) string {
	return "task_" + strconv.FormatInt(Millis(now), 10)
}

// SnapshotPath returns the path to the snapshot file.
func SnapshotPath(dataDir string) string {
	return filepath.Join(dataDir, "studyflow.json")
}

// LogPath returns the path to the application log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "studyflow.log")
}

func randBase36(n int) string {
	const chars = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = chars[rand.IntN(len(chars))]
	}
	return string(b)
}
