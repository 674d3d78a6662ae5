package logging

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// maxFileSizeMB is high enough that lumberjack never rolls a file over on
// size before the day ends.
const maxFileSizeMB = 1024

// dailyFile is an io.WriteCloser that starts a new log file on the first
// write of each local calendar day. Old files are named by lumberjack
// (name-<timestamp>.ext) and pruned beyond backups.
type dailyFile struct {
	mu  sync.Mutex
	out *lumberjack.Logger
	now func() time.Time
	day time.Time
}

func openDailyFile(path string, backups int, now func() time.Time) (*dailyFile, error) {
	if now == nil {
		now = time.Now
	}
	out := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxFileSizeMB,
		MaxBackups: backups,
		LocalTime:  true,
	}
	today := startOfDay(now())

	// A file left over from an earlier day is rolled over before the first
	// line of this process lands in it.
	if info, err := os.Stat(path); err == nil && info.Size() > 0 && startOfDay(info.ModTime()).Before(today) {
		if err := out.Rotate(); err != nil {
			return nil, fmt.Errorf("rotate stale log file %s: %w", path, err)
		}
	}
	return &dailyFile{out: out, now: now, day: today}, nil
}

func (f *dailyFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if today := startOfDay(f.now()); today.After(f.day) {
		if err := f.out.Rotate(); err != nil {
			return 0, fmt.Errorf("rotate log file: %w", err)
		}
		f.day = today
	}
	return f.out.Write(p)
}

func (f *dailyFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.Close()
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
