// utils/safelog.go
// ============================================================================
// SAFE LOGGING - masks financial figures in production
// ============================================================================
// Calculator requests carry incomes, costs and savings goals. In production
// those numbers never reach the logs; in development they are printed as-is.
// ============================================================================

package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"sort"
	"strings"
)

// ============================================================================
// CONFIGURATION
// ============================================================================

var (
	// IsProduction turns masking on
	IsProduction = os.Getenv("GIN_MODE") == "release" ||
		os.Getenv("ENVIRONMENT") == "production" ||
		os.Getenv("ENV") == "production"

	// LogLevel filters Safe* output (DEBUG, INFO, WARN, ERROR)
	LogLevel = ParseLogLevel(os.Getenv("LOG_LEVEL"))
)

const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// ParseLogLevel maps a LOG_LEVEL value to a level, defaulting to INFO.
func ParseLogLevel(level string) int {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

func levelName(level int) string {
	switch level {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ============================================================================
// MASKING PATTERNS
// ============================================================================

var (
	amountWithCurrencyRegex = regexp.MustCompile(`\b\d+([.,]\d{1,2})?\s*(€|EUR|USD|GBP|\$)`)

	// Any number with two or more digits is treated as a potential amount
	amountRegex = regexp.MustCompile(`\b\d{2,}([.,]\d+)?\b`)

	uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// ============================================================================
// MASKING
// ============================================================================

// MaskString hides amounts and shortens UUIDs when running in production
func MaskString(input string) string {
	if !IsProduction {
		return input
	}

	result := uuidRegex.ReplaceAllStringFunc(input, shortenUUID)
	result = amountWithCurrencyRegex.ReplaceAllString(result, "***")
	result = amountRegex.ReplaceAllString(result, "***")
	return result
}

func MaskAmount(amount float64) string {
	if IsProduction {
		return "***"
	}
	return fmt.Sprintf("%.2f", amount)
}

// MaskID keeps the first 8 characters of an ID in production
func MaskID(id string) string {
	if !IsProduction {
		return id
	}
	if len(id) <= 8 {
		return "***"
	}
	return id[:8] + "..."
}

func shortenUUID(uuid string) string {
	if len(uuid) > 8 {
		return uuid[:8] + "..."
	}
	return "***"
}

// ============================================================================
// LEVELLED LOGGING
// ============================================================================

func logAt(level int, format string, args ...interface{}) {
	if level < LogLevel {
		return
	}
	message := MaskString(fmt.Sprintf(format, args...))
	log.Printf("[%s] %s", levelName(level), message)
}

func SafeDebug(format string, args ...interface{}) {
	logAt(LogLevelDebug, format, args...)
}

func SafeInfo(format string, args ...interface{}) {
	logAt(LogLevelInfo, format, args...)
}

func SafeWarn(format string, args ...interface{}) {
	logAt(LogLevelWarn, format, args...)
}

// SafeError is never filtered out
func SafeError(format string, args ...interface{}) {
	message := MaskString(fmt.Sprintf(format, args...))
	log.Printf("[ERROR] %s", message)
}

// ============================================================================
// DOMAIN LOGGING
// ============================================================================

// FormatAmounts renders named amounts in a stable order, masked in production
func FormatAmounts(amounts map[string]float64) string {
	keys := make([]string, 0, len(amounts))
	for k := range amounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+MaskAmount(amounts[k]))
	}
	return strings.Join(parts, " ")
}

// LogCalculation records that a calculator ran, at debug level since every
// request produces one
func LogCalculation(calc string, requestID string, amounts map[string]float64) {
	if LogLevel > LogLevelDebug {
		return
	}
	log.Printf("[DEBUG] [Calc] %s - Request: %s %s",
		calc,
		MaskID(requestID),
		FormatAmounts(amounts))
}

// LogAPIRequest logs a finished request; request bodies are never logged
func LogAPIRequest(method string, path string, requestID string, statusCode int, duration string) {
	if LogLevel > LogLevelInfo {
		return
	}
	log.Printf("[API] %s %s - Request: %s Status: %d Duration: %s",
		method,
		path,
		MaskID(requestID),
		statusCode,
		duration)
}

func LogWebSocket(action string, sessionID string) {
	log.Printf("[WS] %s - Session: %s", action, MaskID(sessionID))
}

// ============================================================================
// STARTUP
// ============================================================================

func GetEnvMode() string {
	if IsProduction {
		return "production"
	}
	return "development"
}

func LogStartup(appName string, version string, port string) {
	log.Printf("🚀 %s v%s starting...", appName, version)
	log.Printf("   Mode: %s", GetEnvMode())
	log.Printf("   Port: %s", port)
	log.Printf("   Log Level: %s", levelName(LogLevel))
	if IsProduction {
		log.Printf("   ⚠️  Production mode: amounts will be masked in logs")
	}
}
