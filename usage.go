package cmdline

// Synopsis renders the token a help renderer shows for the provided
// parameter: the long name followed by the argument placeholder for kinds
// that consume one. When the definition carried no argument name a per kind
// default token is used.
func Synopsis(p Parameter) string {
	a, ok := p.(Argumented)
	if !ok {
		return p.LongName()
	}
	name := a.ArgumentName()
	if name == "" {
		name = defaultArgumentName(p.Kind())
	}
	return p.LongName() + " " + name
}

func defaultArgumentName(k Kind) string {
	switch k {
	case KindChoice:
		return "CHOICE"
	case KindInteger:
		return "NUMBER"
	case KindString, KindStringList:
		return "STRING"
	default:
		return "ARG"
	}
}
