// Package transportmock mocks the transport collaborator contracts of
// pkg/remote.
package transportmock

//go:generate go tool mockgen -package transportmock -destination ./transportmock.gen.go github.com/act3-ai/refsync/pkg/remote Transport,Connection,PushBatch
