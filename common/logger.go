package common

import (
	"fmt"

	"github.com/devlights/gomy/output"
)

// LogLevel is a bitmask so a deployment can enable several levels at once
// via LogLevelSetting.
type LogLevel int32

const (
	DEBUG_INFO_DETAIL LogLevel = 1 << iota
	DEBUG_INFO
	RDB_OP_FUNC_CALL
	DEBUGGING
	INFO
	WARN
	ERROR
	FATAL
)

// LogLevelSetting controls which ShPrintf calls actually print. It is a
// bitmask checked against each call's LogLevel.
var LogLevelSetting = ERROR | FATAL | WARN

func (l LogLevel) label() string {
	switch l {
	case DEBUG_INFO_DETAIL:
		return "DEBUG_DETAIL"
	case DEBUG_INFO:
		return "DEBUG"
	case RDB_OP_FUNC_CALL:
		return "CALL"
	case DEBUGGING:
		return "DEBUGGING"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "LOG"
	}
}

// ShPrintf prints a formatted message through gomy/output when logLevel
// is enabled in LogLevelSetting. Buffer pool operations use it for the
// "Op called. field:value" call-tracing convention (see storage/buffer).
func ShPrintf(logLevel LogLevel, fmtStr string, a ...interface{}) {
	if logLevel&LogLevelSetting == 0 {
		return
	}
	output.Stdoutl(logLevel.label(), fmt.Sprintf(fmtStr, a...))
}
