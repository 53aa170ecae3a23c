// Package proto holds the generated messages and gRPC stubs of the
// aliaskeeper.v1.AliasKeeper service defined in api/proto.
package proto

//go:generate protoc -I ../../api/proto --go_out=. --go_opt=module=github.com/dmitrijs2005/aliaskeeper/internal/proto --go-grpc_out=. --go-grpc_opt=module=github.com/dmitrijs2005/aliaskeeper/internal/proto aliaskeeper/v1/aliaskeeper.proto
