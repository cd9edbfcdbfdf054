// Package rpc holds the wire contract shared by the gRPC server and the gRPC
// client adapter: the service and method names and a JSON codec.
//
// Messages are the plain structs of the models package encoded as JSON, so no
// generated protobuf code is involved. Importing this package registers the
// codec under the "json" content-subtype.
package rpc
