package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02 15:04:05"

// Uploader sends a file body to a bucket.
type Uploader interface {
	Upload(ctx context.Context, bucketName string, objectKey string, body io.Reader, contentType string) error
}

// Logger for a run, printing to the console and keeping a copy of every line in a log file.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	logFile  *os.File
	filePath string
	log      zerolog.Logger
}

// Writes into the log file under the logger lock.
type fileWriter struct {
	l *Logger
}

func (w fileWriter) Write(p []byte) (int, error) {
	w.l.mu.Lock()
	defer w.l.mu.Unlock()
	return w.l.logFile.Write(p)
}

// Create the log instance printing to stdout, with a temporary file.
func CreateLogger(level string) (*Logger, error) {
	f, err := os.CreateTemp("", "skinmapping-*.log")
	if err != nil {
		return nil, err
	}

	return newLogger(os.Stdout, false, f, level), nil
}

// NewConsoleLogger logs only to the given writer, without colors or log file.
func NewConsoleLogger(out io.Writer, level string) *Logger {
	return newLogger(out, true, nil, level)
}

func newLogger(out io.Writer, noColor bool, f *os.File, level string) *Logger {
	l := &Logger{out: out, logFile: f}

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: out, NoColor: noColor, TimeFormat: timeFormat},
	}
	if f != nil {
		l.filePath = f.Name()
		writers = append(writers, zerolog.ConsoleWriter{Out: fileWriter{l: l}, NoColor: true, TimeFormat: timeFormat})
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}

	l.log = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(parsed).
		With().
		Timestamp().
		Logger()
	return l
}

// Log a debug line, only shown with LOG_LEVEL=debug.
func (l *Logger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

// Log a simple info.
func (l *Logger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

// Log a recoverable problem.
func (l *Logger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

// Log a error.
func (l *Logger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}

// Write a empty line.
func (l *Logger) EmptyLine() {
	fmt.Fprintln(l.out)
	if l.logFile == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logFile.WriteString("\n")
}

// Path of the log file, empty for console loggers.
func (l *Logger) FilePath() string {
	return l.filePath
}

// Clean the file contents.
func (l *Logger) CleanFile() {
	if l.logFile == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.Truncate(0)

	l.logFile.Seek(0, 0)
}

// Upload the log to a bucket, cleaning the file once sent.
func (l *Logger) UploadToS3Bucket(ctx context.Context, uploader Uploader, bucketName string, objectKey string) error {
	if l.logFile == nil {
		return fmt.Errorf("logger has no log file to upload")
	}

	l.mu.Lock()
	if _, err := l.logFile.Seek(0, 0); err != nil {
		l.mu.Unlock()
		return fmt.Errorf("failed to rewind file: %w", err)
	}
	err := uploader.Upload(ctx, bucketName, objectKey, l.logFile, "text/plain; charset=utf-8")
	l.logFile.Seek(0, io.SeekEnd)
	l.mu.Unlock()

	if err != nil {
		return err
	}

	// Clean the file after sending.
	l.CleanFile()

	return nil
}

// Close the log file and remove it from disk.
func (l *Logger) Close() error {
	if l.logFile == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.logFile.Close(); err != nil {
		return err
	}
	return os.Remove(l.filePath)
}
