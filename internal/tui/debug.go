package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// DebugLogger logs keystrokes and events to a file for troubleshooting.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "intentionality-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{file: f, enabled: true}
	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
	}
}

func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = d.file.Write(append(line, '\n'))
}

func debugKey(key string, mode int) {
	debugLog.log("KEY", map[string]any{"key": key, "mode": mode})
}

func debugEvent(event string, data map[string]any) {
	debugLog.log(event, data)
}
