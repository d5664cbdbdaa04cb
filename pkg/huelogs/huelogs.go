package huelogs

import (
    "bytes"
    "encoding/json"
    "fmt"
    "log"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

// Logger interface defines logging methods
type Logger interface {
    GetMemoryLog() string
    Debug(msg string, fields ...zap.Field)
    Info(msg string, fields ...zap.Field)
    Warn(msg string, fields ...zap.Field)
    Error(msg string, fields ...zap.Field)
    DPanic(msg string, fields ...zap.Field)
    Panic(msg string, fields ...zap.Field)
    Fatal(msg string, fields ...zap.Field)
}

// LoggerManager wraps the local logger behind the leveled dispatch API
type LoggerManager struct {
    LocalLogger Logger
}

// NewLoggerManager initializes the local file logger, or a memory-backed
// logger when requested for tests.
//
// @Parameters
// - localLogFile:  Path where the logs will be stored locally on file
// - logToMemory:  Boolean toggler whether to log to memory or not
//
// @Returns
// - The initialzed logging manager
// - Error if it occurs, otherwise nil on success
//
func NewLoggerManager(localLogFile string,
                      logToMemory bool) (*LoggerManager, error) {
    // Initialize file-based local logger with optional memory logging
    localLogger, err := NewZapLogger(localLogFile, logToMemory)
    if err != nil {
        return nil, err
    }

    return &LoggerManager{LocalLogger: localLogger}, nil
}

// Gets the log from the logging instance and
// returns it be stored in memory variable.
//
// @Returns
// - The string JSON log from the zap logging instance
//
func (logMan *LoggerManager) GetLog() string {
    return logMan.LocalLogger.GetMemoryLog()
}

// Parses the variable length args based on data type into different lists.
//
// @Parameters
// - level:  The level of logging
// - message:  The message to be logged, supports printf format with below args
// - args:  Variadic length list of args with zap.Fields and regular data types
//          supporting printf format
//
func (logMan *LoggerManager) LogMessage(level string, message string, args ...any) {
    argList := []any{}
    zapFields := []zap.Field{}
    formattedMessage := ""

    // Iterate through passed in arg list
    for _, arg := range args {
        // Case logic based on arg data type
        switch argType := arg.(type) {
        // If the arg type is a zap field, add it to the zap field list
        case zap.Field:
            zapFields = append(zapFields, argType)
        // For other arg types, add it to the arg list
        default:
            argList = append(argList, argType)
        }
    }

    // If there are any non-zap args to format into the message
    if len(argList) > 0 {
        formattedMessage = fmt.Sprintf(message, argList...)
    } else {
        formattedMessage = message
    }

    // Log based on the level (info, error, warn) and include the fields
    switch level {
    case "debug":
        logMan.LocalLogger.Debug(formattedMessage, zapFields...)
    case "info":
        logMan.LocalLogger.Info(formattedMessage, zapFields...)
    case "warn":
        logMan.LocalLogger.Warn(formattedMessage, zapFields...)
    case "error":
        logMan.LocalLogger.Error(formattedMessage, zapFields...)
    case "dpanic":
        logMan.LocalLogger.DPanic(formattedMessage, zapFields...)
    case "panic":
        logMan.LocalLogger.Panic(formattedMessage, zapFields...)
    case "fatal":
        logMan.LocalLogger.Fatal(formattedMessage, zapFields...)
    default:
        log.Fatalf("[*] Error: Unknown logging level specified %v", level)
    }
}


// ZapLogger implements Logger interface using file
// and optional memory logging
type ZapLogger struct {
    logger       *zap.Logger
    memoryBuffer *bytes.Buffer
}

// NewZapLogger creates a zap logger instance with either file or memory logging.
//
// @Parameters
// - logFile:  The path for the output log file
// - logToMemory:  Boolean toggle to specify whether to log to memory or not
//
// @Returns
// - Initialzed zap logging instance
// - Error if it occurs, otherwise nil on success
//
func NewZapLogger(logFile string, logToMemory bool) (Logger, error) {
    // If logging to memory
    if logToMemory {
        // Create a buffer to capture logs in memory
        memoryBuffer := new(bytes.Buffer)

        // Use zapcore directly for logging to memory
        core := zapcore.NewCore(
            zapcore.NewJSONEncoder(zap.NewProductionConfig().EncoderConfig),
            zapcore.AddSync(memoryBuffer),
            zap.InfoLevel,
        )

        // Return the logger along with the memory buffer
        return &ZapLogger{
            logger:       zap.New(core),
            memoryBuffer: memoryBuffer,
        }, nil
    }

    // Otherwise logging to file
    cfg := zap.NewProductionConfig()
    cfg.OutputPaths = []string{logFile}
    cfg.ErrorOutputPaths = []string{"stderr", logFile}

    // Build the file-based logger
    logger, err := cfg.Build()
    if err != nil {
        return nil, fmt.Errorf("could not create file logger: %w", err)
    }

    return &ZapLogger{
        logger:       logger,
        memoryBuffer: nil,
    }, nil
}

// Gets the zap log from the zap logging instance and
// returns it be stored in memory variable.
//
// @Returns
// - The string JSON log from the zap logging instance
//
func (zapLog *ZapLogger) GetMemoryLog() string {
    if zapLog.memoryBuffer != nil {
        return zapLog.memoryBuffer.String()
    }
    return ""
}

// Logs a debug message to zap logger
func (zapLog *ZapLogger) Debug(msg string, fields ...zap.Field) {
    zapLog.logger.Debug(msg, fields...)
}

// Logs a info message to zap logger
func (zapLog *ZapLogger) Info(msg string, fields ...zap.Field) {
    zapLog.logger.Info(msg, fields...)
}

// Logs a warning message to zap logger
func (zapLog *ZapLogger) Warn(msg string, fields ...zap.Field) {
    zapLog.logger.Warn(msg, fields...)
}

// Logs a error message to zap logger
func (zapLog *ZapLogger) Error(msg string, fields ...zap.Field) {
    zapLog.logger.Error(msg, fields...)
}

// Logs a developer panic message to zap logger
func (zapLog *ZapLogger) DPanic(msg string, fields ...zap.Field) {
    zapLog.logger.DPanic(msg, fields...)
}

// Logs a panic message to zap logger
func (zapLog *ZapLogger) Panic(msg string, fields ...zap.Field) {
    zapLog.logger.Panic(msg, fields...)
}

// Logs a fatal message to zap logger
func (zapLog *ZapLogger) Fatal(msg string, fields ...zap.Field) {
    zapLog.logger.Fatal(msg, fields...)
}


// Takes the passed in JSON formatted string and maps into a map via unmarshal.
//
// @Parameters
// - jsonStr:  The JSON string to unmarshal into map
//
// @Returns
// - The map with unmarshaled JSON data
// - Error if it occurs, otherwise nil on success
//
func LogToMap(jsonStr string) (map[string]any, error) {
    var logMap map[string]any

    // Store the json string data as key-values in log map
    err := json.Unmarshal([]byte(jsonStr), &logMap)
    if err != nil {
        return nil, fmt.Errorf("failed to unmarshal JSON log: %w", err)
    }

    return logMap, nil
}
