// Package md2docx converts a small markdown subset into Word documents.
//
// The converter lives in internal/convert and the command in cmd/md2docx.
//
//go:generate go run ./internal/tools/bootstrapgen -o ./examples -force
package md2docx
