package types

// ErrorView is the serializable form of a reconstruction error.
type ErrorView struct {
	Kind    string `json:"kind" yaml:"kind"`
	Key     int    `json:"key,omitempty" yaml:"key,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// ResponseView is the serializable form of a Response.
type ResponseView struct {
	ID     string     `json:"id" yaml:"id"`
	Source string     `json:"source" yaml:"source"`
	Secret string     `json:"secret,omitempty" yaml:"secret,omitempty"`
	Error  *ErrorView `json:"error,omitempty" yaml:"error,omitempty"`
	Digest string     `json:"digest,omitempty" yaml:"digest,omitempty"`
	Cached bool       `json:"cached" yaml:"cached"`
}

// View converts the response for display or transport.
func (r Response) View() ResponseView {
	view := ResponseView{
		ID:     r.ID,
		Source: r.Source,
		Digest: r.Digest,
		Cached: r.Cached,
	}

	if r.Err == nil {
		view.Secret = r.Secret.String()
		return view
	}

	kind := KindOf(r.Err)
	if kind == "" {
		kind = "Error"
	}
	view.Error = &ErrorView{
		Kind:    string(kind),
		Key:     KeyOf(r.Err),
		Message: r.Err.Error(),
	}
	return view
}
