package models

// Kind identifies which family of entries a section holds.
type Kind string

const (
	KindTool       Kind = "tool"
	KindExperience Kind = "experience"
)
