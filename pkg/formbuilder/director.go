package formbuilder

// CreateLoginForm drives b through the login form layout and returns the
// finalized artifact. It depends only on the Builder protocol; swapping the
// builder is the only way to change the medium.
func CreateLoginForm(b Builder) (string, error) {
	steps := []func() error{
		func() error { return b.AddTitle("Login") },
		func() error { return b.AddLabel("Username", 0, 0, Target("username")) },
		func() error { return b.AddEntry("username", 0, 1) },
		func() error { return b.AddLabel("Password", 1, 0, Target("password")) },
		func() error { return b.AddEntry("password", 1, 1, Kind(KindPassword)) },
		func() error { return b.AddButton("Login", 2, 0) },
		func() error { return b.AddButton("Cancel", 2, 1) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return "", err
		}
	}
	return b.Form()
}
