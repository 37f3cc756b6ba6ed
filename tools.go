//go:build tools

package tools

// This file tracks CLI tools used during development. It is not compiled
// into the binary.
//
//   - github.com/matryer/moq: go:generate directives next to each consumer
//     interface produce the *_mock.go / *_mock_test.go files.
//   - github.com/pressly/goose/v3/cmd/goose: optional; `santa migrate`
//     embeds the same migrations.
