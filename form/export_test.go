package form

// Text returns the rendered form as plain text.
func (m *Model) Text() string {
	return m.render()
}
