package server

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

var levelOrdinals = map[schema.LoggingLevel]int{
	schema.LoggingLevelDebug: 0,
	schema.Info:              1,
	schema.Notice:            2,
	schema.Warning:           3,
	schema.Err:               4,
	schema.Critical:          5,
	schema.Alert:             6,
	schema.Emergency:         7,
}

// loggingLevel is the client selected threshold; unset means no log notifications.
type loggingLevel struct {
	mux   sync.RWMutex
	value schema.LoggingLevel
	isSet bool
}

func (l *loggingLevel) set(level schema.LoggingLevel) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.value = level
	l.isSet = true
}

func (l *loggingLevel) enabled(level schema.LoggingLevel) bool {
	l.mux.RLock()
	defer l.mux.RUnlock()
	if !l.isSet {
		return false
	}
	return levelOrdinals[level] >= levelOrdinals[l.value]
}

// Logger sends notifications/message to the client of one session.
type Logger struct {
	name     string
	level    *loggingLevel
	notifier transport.Notifier
}

func (l *Logger) log(ctx context.Context, level schema.LoggingLevel, data any) error {
	if l.level == nil || !l.level.enabled(level) {
		//skip logging since level is too verbose
		return nil
	}
	request := &jsonrpc.Notification{Method: schema.MethodNotificationMessage}
	params := schema.LoggingMessageNotificationParams{
		Level:  level,
		Logger: &l.name,
		Data:   data,
	}
	var err error
	request.Params, err = json.Marshal(params)
	if err != nil {
		return err
	}
	return l.notifier.Notify(ctx, request)
}

func (l *Logger) Debug(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.LoggingLevelDebug, data)
}

func (l *Logger) Info(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Info, data)
}

func (l *Logger) Warning(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Warning, data)
}

func (l *Logger) Error(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Err, data)
}

// newLogger creates a logger notifying through notifier at or above level.
func newLogger(name string, level *loggingLevel, notifier transport.Notifier) *Logger {
	return &Logger{
		name:     name,
		level:    level,
		notifier: notifier,
	}
}
