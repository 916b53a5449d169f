// Package service provides the registry that routes tool calls to providers.
//
// Tool IDs are "<service>.<tool>"; the service part selects the provider and
// the full ID is handed to its Execute.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(docProvider)
//	result, err := registry.Execute(ctx, "document.select", params, appCtx)
package service
