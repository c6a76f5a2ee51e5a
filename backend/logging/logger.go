package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logrus instance. Until InitLogger runs it writes to stderr,
// which is what tests see.
var Logger = logrus.New()
var once sync.Once

// CustomFormatter renders one line per entry with a fresh event id.
type CustomFormatter struct {
	SystemName string
	Location   *time.Location
}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	location := f.Location
	if location == nil {
		location = timezoneCEST()
	}
	localTime := entry.Time.In(location)

	b.WriteString(fmt.Sprintf("Date: %s, Time: %s, ", localTime.Format("2006-01-02"), localTime.Format("15:04:05")))
	b.WriteString(fmt.Sprintf("Event Source: %s, ", f.SystemName))
	b.WriteString(fmt.Sprintf("Event Type: %s, ", strings.ToUpper(entry.Level.String())))
	b.WriteString(fmt.Sprintf("Event ID: %s, ", uuid.New().String()))
	b.WriteString(fmt.Sprintf("Message: %s", entry.Message))

	for key, value := range entry.Data {
		b.WriteString(fmt.Sprintf(", %s=%v", key, value))
	}

	if entry.HasCaller() {
		b.WriteString(fmt.Sprintf(", Location: %s:%d in %s", entry.Caller.File, entry.Caller.Line, entry.Caller.Function))
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func timezoneCEST() *time.Location {
	return time.FixedZone("CEST", 2*60*60)
}

// InitLogger points the global logger at a rotating file for the given service.
// An empty filename keeps stderr output but still applies the formatter.
func InitLogger(systemName, filename string) {
	once.Do(func() {
		if filename != "" {
			dir := filepath.Dir(filename)
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0700); err != nil {
					logrus.Fatalf("Event ID: LOG_DIR_CREATE_FAILED, Description: Failed to create log directory: %v", err)
				}
			}

			logFile := &lumberjack.Logger{
				Filename:   filename,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
			Logger.SetOutput(logFile)
		}

		Logger.SetFormatter(&CustomFormatter{SystemName: systemName})
		Logger.SetLevel(logrus.InfoLevel)
		Logger.SetReportCaller(true)

		Logger.Infof("Event ID: LOGGER_INITIALIZED, Description: Logger initialized for %s, output to: %s", systemName, outputName(filename))
	})
}

func outputName(filename string) string {
	if filename == "" {
		return "stderr"
	}
	return filename
}
