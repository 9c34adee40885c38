//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package log

import (
	"os"
	"path/filepath"

	"waben/pkg/define"
	"waben/pkg/paths"

	"github.com/sirupsen/logrus"
)

const MaxSizeInMB = 5

// Setup outType: file, console
// if outType is file, workspace is required
// if outType is console, all output stays on the terminal's stderr
func Setup(outType string, workspace string) {
	logrus.SetLevel(levelFromEnv())
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		ForceColors:     true,
		DisableColors:   false,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	logrus.SetOutput(os.Stderr)

	if outType != define.LogOutFile {
		return
	}

	logPath := filepath.Join(workspace, define.LogPrefixDir, define.LogFileName)
	logFile := paths.New(logPath)
	if logFile.Exist() {
		logrus.Infof("Log file %q already exists, discarding the first %d MiB", logPath, MaxSizeInMB)
		if err := logFile.DiscardBytesAtBegin(MaxSizeInMB); err != nil {
			logrus.Warnf("failed to discard log file: %q", err)
		}
	} else if err := logFile.MakeBaseDir(); err != nil {
		logrus.Warnf("failed to create log dir: %q", err)
		return
	}

	logrus.Infof("Save log to %q", logPath)
	if fd, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.ModePerm); err == nil {
		os.Stdout = fd
		os.Stderr = fd
		logrus.SetOutput(fd)
	}
}

func levelFromEnv() logrus.Level {
	switch os.Getenv(define.LogLevelEnv) {
	case "DEBUG":
		return logrus.DebugLevel
	case "INFO":
		return logrus.InfoLevel
	case "WARN":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	case "FATAL":
		return logrus.FatalLevel
	case "PANIC":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}
