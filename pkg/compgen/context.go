package compgen

type Context struct {
	State
}

type State struct {
	OptionName string   // current option's name
	Visited    []string // complex-type names already entered on this path
}

// Entered reports whether a complex type is already on the resolution path.
// Re-entry of any visited type terminates expansion, covering multi-step
// cycles as well as direct self-references.
func (s State) Entered(typeName string) bool {
	for _, v := range s.Visited {
		if v == typeName {
			return true
		}
	}
	return false
}

// Enter returns a new context extended with typeName. The chain is copied,
// so sibling branches never observe each other's types.
func (c Context) Enter(typeName string) Context {
	chain := make([]string, 0, len(c.Visited)+1)
	chain = append(chain, c.Visited...)
	chain = append(chain, typeName)
	return Context{State{
		OptionName: c.OptionName,
		Visited:    chain,
	}}
}

// Named returns a copy of the context positioned at another option.
func (c Context) Named(optionName string) Context {
	return Context{State{
		OptionName: optionName,
		Visited:    c.Visited,
	}}
}
