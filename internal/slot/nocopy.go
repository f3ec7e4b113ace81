package slot

// noCopy can be embedded to provide "go vet" linting
// when a type should not be copied after first use
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
