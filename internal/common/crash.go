package common

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// CrashLogDir is where crash reports are written. Set by InstallCrashHandler.
var CrashLogDir = "./logs"

// InstallCrashHandler points crash reports at logDir and makes sure it exists.
// Pair it with a deferred RecoverWithCrashFile at the top of main.
func InstallCrashHandler(logDir string) {
	if logDir != "" {
		CrashLogDir = logDir
	}
	if err := os.MkdirAll(CrashLogDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "CRASH: Failed to create log directory: %v\n", err)
	}
}

// CrashReport renders the panic value, its stack and process details
func CrashReport(panicVal interface{}, stackTrace string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== YOUTUBE ASSISTANT CRASH REPORT ===\n")
	fmt.Fprintf(&b, "Time: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "Version: %s\n\n", GetFullVersion())

	fmt.Fprintf(&b, "=== PANIC VALUE ===\n%v\n\n", panicVal)
	fmt.Fprintf(&b, "=== STACK TRACE ===\n%s\n", stackTrace)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	fmt.Fprintf(&b, "=== SYSTEM INFO ===\n")
	fmt.Fprintf(&b, "NumGoroutine: %d\n", runtime.NumGoroutine())
	fmt.Fprintf(&b, "GOOS/GOARCH: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&b, "Alloc: %d MB\n", mem.Alloc/1024/1024)
	fmt.Fprintf(&b, "=== END CRASH REPORT ===\n")

	return b.String()
}

// WriteCrashFile writes a crash report into CrashLogDir and returns its path.
// Falls back to stderr when the file cannot be written.
func WriteCrashFile(panicVal interface{}, stackTrace string) string {
	report := CrashReport(panicVal, stackTrace)
	crashPath := filepath.Join(CrashLogDir, fmt.Sprintf("crash-%s.log", time.Now().Format("2006-01-02T15-04-05")))

	if err := os.WriteFile(crashPath, []byte(report), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "CRASH: Failed to write crash file: %v\n%s", err, report)
		return ""
	}

	fmt.Fprintf(os.Stderr, "\n!!! FATAL CRASH - Report saved to: %s !!!\n", crashPath)
	fmt.Fprintf(os.Stderr, "Panic: %v\n", panicVal)
	return crashPath
}

// GetStackTrace returns the current goroutine's stack trace.
func GetStackTrace() string {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}

// RecoverWithCrashFile writes a crash file for a panic and exits.
// Usage: defer common.RecoverWithCrashFile()
func RecoverWithCrashFile() {
	if r := recover(); r != nil {
		WriteCrashFile(r, GetStackTrace())
		os.Exit(1)
	}
}
