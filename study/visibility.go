package study

// Visibility shows the three access levels available to a Go type:
// an exported field anyone may touch, and two unexported fields that only
// this package can reach directly. Other packages go through the accessors.
type Visibility struct {
	// Public is readable and writable from any package.
	Public string

	internal string
	secret   string
}

// NewVisibility returns a Visibility with its initial messages.
func NewVisibility() *Visibility {
	return &Visibility{
		Public:   "I am public and can be accessed directly.",
		internal: "I am for internal use within the package.",
		secret:   "I am unexported and reached only through accessors.",
	}
}

// Internal returns the package-internal attribute.
func (v *Visibility) Internal() string { return v.internal }

// SetInternal replaces the package-internal attribute.
func (v *Visibility) SetInternal(s string) { v.internal = s }

// Secret returns the unexported attribute.
func (v *Visibility) Secret() string { return v.secret }

// SetSecret replaces the unexported attribute.
func (v *Visibility) SetSecret(s string) { v.secret = s }

func (v *Visibility) reveal() string {
	return "This is a result from an unexported method."
}

// UsePrivate calls the unexported helper and reports it along with the
// unexported attribute.
func (v *Visibility) UsePrivate() (result, secret string) {
	return v.reveal(), v.secret
}
