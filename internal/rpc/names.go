package rpc

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "pent.credentials.v1.Credentials"

// Method names of [ServiceName].
const (
	MethodRegister     = "Register"
	MethodAuthenticate = "Authenticate"
	MethodLookupByID   = "LookupByID"
	MethodVersion      = "Version"
)

// FullMethod returns "/<service>/<method>" as used by grpc.ClientConn.Invoke
// and grpc.UnaryServerInfo.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// Empty is the request of methods that take no arguments.
type Empty struct{}
