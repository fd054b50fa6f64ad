package logging

import (
	"bytes"
	"encoding/json"
	"github.com/bokysan/transcode/internal/args"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func Test_VerbosityLevel(t *testing.T) {
	require.Equal(t, log.WarnLevel, verbosityLevel(0))
	require.Equal(t, log.InfoLevel, verbosityLevel(1))
	require.Equal(t, log.DebugLevel, verbosityLevel(2))
	require.Equal(t, log.TraceLevel, verbosityLevel(3))
	require.Equal(t, log.TraceLevel, verbosityLevel(10))
}

func Test_SetVerbosity(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	SetVerbosity([]bool{true, true})
	require.Equal(t, "DEBUG", VerbosityName())
	SetVerbosity(nil)
	require.Equal(t, "WARN", VerbosityName())
}

func Test_NewFormatter(t *testing.T) {
	_, ok := newFormatter("json", "auto", false).(*log.JSONFormatter)
	require.True(t, ok)

	f, ok := newFormatter("text", "yes", true).(*log.TextFormatter)
	require.True(t, ok)
	require.True(t, f.ForceColors)
	require.True(t, f.FullTimestamp)

	f, ok = newFormatter("text", " False ", false).(*log.TextFormatter)
	require.True(t, ok)
	require.True(t, f.DisableColors)
}

func Test_SetupLogging_LogFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	defer log.SetOutput(os.Stderr)
	defer log.SetFormatter(&log.TextFormatter{})
	defer log.SetLevel(log.GetLevel())

	logFile := filepath.Join(dir, "transcode.log")
	args.General.LogFile = &logFile
	args.General.LogFormat = "json"
	args.General.Verbose = []bool{true}
	defer func() {
		args.General.LogFile = nil
		args.General.LogFormat = ""
		args.General.Verbose = nil
	}()

	require.NoError(t, SetupLogging())
	log.Infof("hello from the test")

	data, err := ioutil.ReadFile(logFile)
	require.NoError(t, err)

	entry := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	require.Equal(t, "hello from the test", entry["message"])
	require.Equal(t, "info", entry["@level"])
}

func Test_SetupLogging_InvalidLogFile(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	logFile := filepath.Join("does", "not", "exist", "transcode.log")
	args.General.LogFile = &logFile
	defer func() { args.General.LogFile = nil }()

	require.Error(t, SetupLogging())
}

func Test_SetupLogging_HooksNotDuplicated(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	defer log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	defer log.SetReportCaller(false)

	args.General.LogReportCaller = true
	defer func() { args.General.LogReportCaller = false }()

	require.NoError(t, SetupLogging())
	require.NoError(t, SetupLogging())
	require.Len(t, log.StandardLogger().Hooks[log.InfoLevel], 1, "Repeated setup should not stack hooks")

	args.General.LogReportCaller = false
	require.NoError(t, SetupLogging())
	require.Empty(t, log.StandardLogger().Hooks[log.InfoLevel])
}

func Test_ContextHook(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&log.JSONFormatter{})
	logger.AddHook(&ContextHook{})

	logger.Warnf("where am I")

	entry := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "logging_test.go", entry["file"])
}
