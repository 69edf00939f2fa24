package anysock

// Bind a listener to the address denoted by r, using DefaultTransport
func Bind(r Resolver) (*Listener, error) {
	return DefaultTransport.Bind(r)
}

// Connect to the address denoted by r, using DefaultTransport
func Connect(r Resolver) (*Stream, error) {
	return DefaultTransport.Connect(r)
}
