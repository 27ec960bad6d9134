package localsocket

import "context"

// Dial connects to the local socket endpoint identified by name.
func Dial(name Name) (*Stream, error) {
	return DialContext(context.Background(), name)
}

// DialContext is Dial with cooperative cancellation: the connection
// attempt is abandoned when ctx ends first.
func DialContext(ctx context.Context, name Name) (*Stream, error) {
	conn, err := dialBackend(ctx, name)
	if err != nil {
		return nil, err
	}
	return &Stream{Conn: conn}, nil
}
