package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего ядра.
// Инициализирован значениями по умолчанию, поэтому библиотечный код
// (генератор, поиск пути) можно вызывать и без Init().
var Log = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Init настраивает глобальный логгер из окружения.
// Вызывается один раз при старте приложения (main) или в TestMain.
func Init() {
	Log = newDefault()

	// Уровень логирования: LOG_LEVEL, по умолчанию "info".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" - для сбора логов, всё остальное - читаемый текст.
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// Silence глушит вывод (для бенчмарков и шумных тестов генератора).
func Silence() {
	Log.SetOutput(io.Discard)
}

// Component возвращает запись с полем component - так пишут все подсистемы.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
