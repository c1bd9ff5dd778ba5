// Package mocks provides no-op tracing for tests.
package mocks

import (
	"context"

	"tripbook/infras/otel"
)

type otelImpl struct{}

func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return &otelImpl{}
}

type scopeImpl struct{}

func (s *scopeImpl) End()                                {}
func (s *scopeImpl) TraceError(_ error)                  {}
func (s *scopeImpl) TraceIfError(_ error)                {}
func (s *scopeImpl) AddEvent(_ string, _ map[string]any) {}
func (s *scopeImpl) SetAttribute(_ string, _ any)        {}
func (s *scopeImpl) SetAttributes(_ map[string]any)      {}

func NewScope() otel.Scope {
	return &scopeImpl{}
}
