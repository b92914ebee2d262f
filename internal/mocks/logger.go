package mocks

import "github.com/rafabene/sheetsync-backend/internal/domain/ports"

// Logger é um ports.Logger que descarta tudo (para testes)
type Logger struct{}

func NewLogger() ports.Logger { return &Logger{} }

func (l *Logger) Info(msg string, args ...any)  {}
func (l *Logger) Error(msg string, args ...any) {}
func (l *Logger) Debug(msg string, args ...any) {}
func (l *Logger) Warn(msg string, args ...any)  {}
func (l *Logger) With(args ...any) ports.Logger { return l }
